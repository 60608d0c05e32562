// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import (
	"strings"
	"testing"
)

func TestCatalogSize(t *testing.T) {
	if Len() != 31 {
		t.Fatalf("expected 31 catalog entries, got %d", Len())
	}
}

func TestResolveKnownTags(t *testing.T) {
	cases := map[string]string{
		"punct":       Punctuation,
		"ascii":       Ascii,
		"ascii_lower": AsciiLower,
		"digits":      Digits,
		"hexdigits":   HexDigits,
		"octdigits":   OctDigits,
	}
	for tag, want := range cases {
		got, ok := Resolve(tag)
		if !ok {
			t.Fatalf("tag %q not found in catalog", tag)
		}
		if got != want {
			t.Fatalf("tag %q resolved to %q, want %q", tag, got, want)
		}
	}
}

func TestResolveUnknownTag(t *testing.T) {
	if _, ok := Resolve("no_such_tag"); ok {
		t.Fatal("expected unknown tag to miss")
	}
}

func TestResolveIndexBounds(t *testing.T) {
	if _, ok := ResolveIndex(0); ok {
		t.Fatal("index 0 should be out of range")
	}
	if _, ok := ResolveIndex(Len() + 1); ok {
		t.Fatal("index past the end should be out of range")
	}
	first, ok := ResolveIndex(1)
	if !ok {
		t.Fatal("index 1 should resolve")
	}
	if want, _ := Resolve("punct"); first != want {
		t.Fatalf("index 1 should be the punct entry, got %q", first)
	}
	if TagAt(1) != "punct" {
		t.Fatalf("TagAt(1) = %q, want punct", TagAt(1))
	}
}

func TestCatalogOrderStable(t *testing.T) {
	opts := Options()
	if opts[0].Tag != "punct" || opts[len(opts)-1].Tag != "non_rfc_4122" {
		t.Fatalf("unexpected catalog boundary tags: %q .. %q", opts[0].Tag, opts[len(opts)-1].Tag)
	}
	for i, o := range opts {
		if TagAt(i+1) != o.Tag {
			t.Fatalf("TagAt(%d) = %q, want %q", i+1, TagAt(i+1), o.Tag)
		}
	}
}

func TestRFC4122Alphabets(t *testing.T) {
	// non_rfc_4122 strips everything a UUID may not contain, leaving the
	// digits plus the lowercase letters a through e.
	chars, ok := Resolve("non_rfc_4122")
	if !ok {
		t.Fatal("non_rfc_4122 missing")
	}
	remaining, err := Filter(All, chars, "")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	for _, c := range "abcde0123456789" {
		if !strings.ContainsRune(remaining, c) {
			t.Fatalf("expected %q in the non_rfc_4122 alphabet %q", c, remaining)
		}
	}
	if strings.ContainsAny(remaining, "fghijklmnopqrstuvwxyzABCDEF!@#") {
		t.Fatalf("unexpected characters in non_rfc_4122 alphabet %q", remaining)
	}
}

func TestUniqueDisabledSizes(t *testing.T) {
	for tag, size := range UniqueDisabled {
		chars, ok := Resolve(tag)
		if !ok {
			t.Fatalf("unique-disabled tag %q not in catalog", tag)
		}
		remaining, err := Filter(All, chars, "")
		if err != nil {
			t.Fatalf("filter failed: %v", err)
		}
		if Distinct(remaining) != size {
			t.Fatalf("tag %q leaves %d distinct chars, recorded size is %d", tag, Distinct(remaining), size)
		}
	}
}

func TestNamesWhitespace(t *testing.T) {
	if !NamesWhitespace(" ") {
		t.Fatal("a literal space names whitespace")
	}
	if NamesWhitespace("punct") {
		t.Fatal("punct does not name whitespace")
	}
}
