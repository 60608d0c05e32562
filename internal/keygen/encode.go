// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import "encoding/base64"

// Encoding selects the textual-to-binary transform applied to a finished
// key.
type Encoding string

const (
	// EncodingPlain is the identity byte encoding of the key text.
	EncodingPlain Encoding = "plain"
	// EncodingURLSafe applies URL-safe base64 to the key bytes.
	EncodingURLSafe Encoding = "urlsafe"
)

// Encode transforms a key into its binary form under the given encoding.
func Encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingPlain:
		return []byte(text), nil
	case EncodingURLSafe:
		return []byte(base64.URLEncoding.EncodeToString([]byte(text))), nil
	default:
		return nil, configErrorf("invalid encoding %q: must be %q or %q", enc, EncodingPlain, EncodingURLSafe)
	}
}

// Decode mirrors Encode, recovering the key text from its binary form.
func Decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingPlain:
		return string(data), nil
	case EncodingURLSafe:
		raw, err := base64.URLEncoding.DecodeString(string(data))
		if err != nil {
			return "", &ConfigError{Msg: "invalid url-safe base64 key", Err: err}
		}
		return string(raw), nil
	default:
		return "", configErrorf("invalid encoding %q: must be %q or %q", enc, EncodingPlain, EncodingURLSafe)
	}
}
