// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"fmt"
)

// ConfigError is the single fatal error kind of the generation pipeline.
// It marks a configuration the pipeline refuses to run with: invalid
// lengths, mutually exclusive options, out-of-range separators, an empty
// alphabet, or an infeasible uniqueness constraint. No partial results
// accompany a ConfigError.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// configErrorf builds a ConfigError with a formatted message.
func configErrorf(format string, v ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, v...)}
}

// asConfigError lifts err into a ConfigError unless it already is one.
// Collaborator errors such as charset filter failures stay reachable via
// errors.Is through the wrapped chain.
func asConfigError(err error) error {
	if err == nil || IsConfigError(err) {
		return err
	}
	return &ConfigError{Msg: "invalid character selection", Err: err}
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
