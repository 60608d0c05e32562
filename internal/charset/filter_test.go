// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import (
	"strings"
	"testing"
)

func TestFilterDropsExcluded(t *testing.T) {
	got, err := Filter("abcdef123", "abc", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "def123" {
		t.Fatalf("got %q, want def123", got)
	}
}

func TestFilterAlwaysDropsWhitespace(t *testing.T) {
	got, err := Filter("a b\tc\nd", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abcd" {
		t.Fatalf("got %q, want abcd", got)
	}
}

func TestFilterIncludeOverrides(t *testing.T) {
	// A single space survives when explicitly included; other whitespace
	// is still dropped.
	got, err := Filter("a b\tc", "", " ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a bc" {
		t.Fatalf("got %q, want \"a bc\"", got)
	}
}

func TestFilterEntireAlphabetFatal(t *testing.T) {
	if _, err := Filter(All, All, ""); err != ErrAllExcluded {
		t.Fatalf("expected ErrAllExcluded, got %v", err)
	}
}

func TestFilterResultDisjointFromExclusion(t *testing.T) {
	for _, opt := range Options() {
		got, err := Filter(All, opt.Chars, "")
		if err != nil {
			t.Fatalf("tag %q: unexpected error: %v", opt.Tag, err)
		}
		if got == "" {
			t.Fatalf("tag %q: filtering the full alphabet left nothing", opt.Tag)
		}
		if strings.ContainsAny(got, opt.Chars) {
			t.Fatalf("tag %q: result %q intersects its exclusion set", opt.Tag, got)
		}
	}
}

func TestDistinct(t *testing.T) {
	if n := Distinct("aabbcc"); n != 3 {
		t.Fatalf("Distinct(aabbcc) = %d, want 3", n)
	}
	if n := Distinct(""); n != 0 {
		t.Fatalf("Distinct(empty) = %d, want 0", n)
	}
	if chars := DistinctChars("banana"); chars != "ban" {
		t.Fatalf("DistinctChars(banana) = %q, want ban", chars)
	}
}

func TestContainsPunctuation(t *testing.T) {
	if !ContainsPunctuation("ab!cd") {
		t.Fatal("expected punctuation to be detected")
	}
	if ContainsPunctuation("abcd123") {
		t.Fatal("no punctuation present")
	}
}

func TestEntropy(t *testing.T) {
	if e := Entropy("0123456789abcdef"); e != 4 {
		t.Fatalf("16-char alphabet should be 4 bits per char, got %v", e)
	}
	if e := Entropy(""); e != 0 {
		t.Fatalf("empty alphabet entropy should be 0, got %v", e)
	}
}
