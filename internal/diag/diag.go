// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package diag provides the advisory sink the generation pipeline reports
// through. Advisories never interrupt control flow; they are only visible
// when a verbose sink is injected. Identical messages are emitted once per
// sink so parallel bundle generation cannot flood the log.
package diag

import (
	"fmt"
	"io"
	"sync"

	clog "github.com/charmbracelet/log"
)

// Sink receives advisory and informational messages from the pipeline.
// Implementations must be safe for concurrent use.
type Sink interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
}

// Logger is the standard Sink, backed by charmbracelet/log. Repeated
// messages with identical text are dropped after the first emission.
type Logger struct {
	l *clog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// New returns a Logger writing to w. When verbose is false only warnings
// and errors pass through; debug and info advisories are suppressed.
func New(w io.Writer, verbose bool) *Logger {
	l := clog.New(w)
	if verbose {
		l.SetLevel(clog.DebugLevel)
	} else {
		l.SetLevel(clog.WarnLevel)
	}
	return &Logger{l: l, seen: make(map[string]struct{})}
}

// firstTime records msg and reports whether it has not been seen before.
func (d *Logger) firstTime(msg string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, dup := d.seen[msg]; dup {
		return false
	}
	d.seen[msg] = struct{}{}
	return true
}

// Debugf logs a debug-level formatted message, once per distinct text.
func (d *Logger) Debugf(format string, v ...any) {
	if msg := fmt.Sprintf(format, v...); d.firstTime(msg) {
		d.l.Debug(msg)
	}
}

// Infof logs an info-level formatted message, once per distinct text.
func (d *Logger) Infof(format string, v ...any) {
	if msg := fmt.Sprintf(format, v...); d.firstTime(msg) {
		d.l.Info(msg)
	}
}

// Warnf logs a warning-level formatted message, once per distinct text.
func (d *Logger) Warnf(format string, v ...any) {
	if msg := fmt.Sprintf(format, v...); d.firstTime(msg) {
		d.l.Warn(msg)
	}
}

// Discard is a Sink that drops everything. It is the default when no sink
// is injected.
var Discard Sink = discard{}

type discard struct{}

func (discard) Debugf(string, ...any) {}
func (discard) Infof(string, ...any)  {}
func (discard) Warnf(string, ...any)  {}
