// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charset holds the character universe Keyforge samples from and the
// catalog of named exclusion options. The catalog is a fixed, ordered table:
// every option maps a symbolic tag (or its 1-based ordinal) to the union of
// character ranges it removes from the working alphabet.
package charset

import "strings"

// Character ranges, matching the classic ASCII partitions.
const (
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	AsciiLower  = "abcdefghijklmnopqrstuvwxyz"
	AsciiUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Ascii       = AsciiLower + AsciiUpper
	Digits      = "0123456789"
	HexDigits   = Digits + "abcdef" + "ABCDEF"
	OctDigits   = "01234567"
	Whitespace  = " \t\n\r\v\f"

	// All is the combined alphabet: every character a key may contain
	// before filtering. Whitespace is never part of it.
	All = Ascii + Digits + Punctuation
)

// RFC 4122 partitions. UUID-shaped keys are produced by excluding the
// non_rfc_4122 option, which leaves the digits plus 'a'..'e'.
const (
	rfc4122Excluded    = "abcde" + AsciiUpper + Punctuation
	nonRFC4122Excluded = "fghijklmnopqrstuvwxyz" + AsciiUpper + Punctuation
)

// Option is one entry of the exclusion catalog.
type Option struct {
	Tag   string
	Chars string
}

// catalog is the ordered exclusion table. Index lookups and the chart
// printer rely on this order being stable.
var catalog = []Option{
	{"punct", Punctuation},
	{"ascii", Ascii},
	{"ascii_lower", AsciiLower},
	{"ascii_upper", AsciiUpper},
	{"ascii_punct", Ascii + Punctuation},
	{"ascii_lower_punct", AsciiLower + Punctuation},
	{"ascii_upper_punct", AsciiUpper + Punctuation},
	{"digits", Digits},
	{"digits_ascii", Digits + Ascii},
	{"digits_punct", Digits + Punctuation},
	{"digits_ascii_lower", Digits + AsciiLower},
	{"digits_ascii_upper", Digits + AsciiUpper},
	{"digits_ascii_lower_punct", Digits + AsciiLower + Punctuation},
	{"digits_ascii_upper_punct", Digits + AsciiUpper + Punctuation},
	{"hexdigits", HexDigits},
	{"hex_punct", HexDigits + Punctuation},
	{"hex_ascii", HexDigits + Ascii},
	{"hex_ascii_lower", HexDigits + AsciiLower},
	{"hex_ascii_upper", HexDigits + AsciiUpper},
	{"hex_ascii_lower_punct", HexDigits + AsciiLower + Punctuation},
	{"hex_ascii_upper_punct", HexDigits + AsciiUpper + Punctuation},
	{"octdigits", OctDigits},
	{"oct_punct", OctDigits + Punctuation},
	{"oct_ascii", OctDigits + Ascii},
	{"oct_ascii_lower", OctDigits + AsciiLower},
	{"oct_ascii_upper", OctDigits + AsciiUpper},
	{"oct_ascii_punct", OctDigits + Ascii + Punctuation},
	{"oct_ascii_lower_punct", OctDigits + AsciiLower + Punctuation},
	{"oct_ascii_upper_punct", OctDigits + AsciiUpper + Punctuation},
	{"rfc_4122", rfc4122Excluded},
	{"non_rfc_4122", nonRFC4122Excluded},
}

// byTag indexes the catalog for tag lookups.
var byTag = func() map[string]string {
	m := make(map[string]string, len(catalog))
	for _, o := range catalog {
		m[o.Tag] = o.Chars
	}
	return m
}()

// UniqueDisabled maps catalog tags whose filtered alphabets are too small
// for meaningful uniqueness to the number of distinct characters that
// survive filtering. For these options the uniqueness constraint is
// silently disabled instead of failing.
var UniqueDisabled = map[string]int{
	"ascii_punct":     10,
	"oct_ascii_punct": 2,
}

// Options returns the catalog entries in their canonical order.
func Options() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// Len returns the number of catalog entries.
func Len() int { return len(catalog) }

// Resolve looks a tag up in the catalog. The second return is false when
// the tag is not a catalog option; callers fall back to treating the tag
// text as literal characters to exclude.
func Resolve(tag string) (string, bool) {
	chars, ok := byTag[tag]
	return chars, ok
}

// ResolveIndex resolves a 1-based catalog ordinal. The second return is
// false when the ordinal is out of range.
func ResolveIndex(i int) (string, bool) {
	if i < 1 || i > len(catalog) {
		return "", false
	}
	return catalog[i-1].Chars, true
}

// TagAt returns the tag at a 1-based catalog ordinal, or "" when out of
// range.
func TagAt(i int) string {
	if i < 1 || i > len(catalog) {
		return ""
	}
	return catalog[i-1].Tag
}

// NamesWhitespace reports whether an exclusion tag spells out, or textually
// contains, whitespace. Whitespace is always excluded from the alphabet, so
// such a tag earns the caller an advisory rather than an error.
func NamesWhitespace(tag string) bool {
	if tag == "" {
		return false
	}
	return strings.EqualFold(tag, "whitespace") || strings.ContainsAny(tag, Whitespace)
}
