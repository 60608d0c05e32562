// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key is one generated key, immutable once produced.
type Key struct {
	// Text is the final textual form, after wrapping.
	Text string
	// Data is the encoded binary form; nil when no encoding was requested.
	Data []byte
	// Encoding names the transform applied to produce Data.
	Encoding Encoding
}

// String returns the form a caller should display: the encoded bytes when
// encoding was requested, the wrapped text otherwise.
func (k Key) String() string {
	if k.Data != nil {
		return string(k.Data)
	}
	return k.Text
}

// Fingerprint returns the SHA-256 hex digest of the displayed key text.
// History records store this instead of the key material itself.
func (k Key) Fingerprint() string {
	sum := sha256.Sum256([]byte(k.String()))
	return hex.EncodeToString(sum[:])
}

// Bundle is an ordered collection of independently generated keys from one
// configuration, named positionally key1..keyN.
type Bundle struct {
	Keys []Key
}

// Name returns the positional name of the i-th key (0-based index,
// 1-based name).
func (b Bundle) Name(i int) string {
	return fmt.Sprintf("key%d", i+1)
}

// Names returns the positional names in submission order.
func (b Bundle) Names() []string {
	names := make([]string, len(b.Keys))
	for i := range b.Keys {
		names[i] = b.Name(i)
	}
	return names
}

// OutputKind discriminates the variants of Output.
type OutputKind int

const (
	// KindKey marks a single-key result.
	KindKey OutputKind = iota
	// KindBundle marks a multi-key result.
	KindBundle
)

// Output is the tagged result of a generation run: exactly one variant is
// populated, selected by Kind.
type Output struct {
	Kind   OutputKind
	Key    Key
	Bundle Bundle
}

// SingleOutput wraps one key as an Output.
func SingleOutput(k Key) Output {
	return Output{Kind: KindKey, Key: k}
}

// BundleOutput wraps a bundle as an Output.
func BundleOutput(b Bundle) Output {
	return Output{Kind: KindBundle, Bundle: b}
}
