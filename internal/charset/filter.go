// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import "errors"

// ErrAllExcluded is returned when a filter would remove the entire combined
// alphabet. An empty alphabet can never produce a key, so this is the one
// alphabet-level violation that is fatal rather than advisory.
var ErrAllExcluded = errors.New("excluding the entire character set is prohibited")

// Filter removes from source every character present in exclude, plus all
// whitespace. Characters listed in include survive the cut even when they
// appear in exclude or are whitespace; that is how a single literal space
// inside a separator stays alive while tabs and newlines are still dropped.
//
// The removal set is built once, so filtering is a single O(n) pass over
// source rather than repeated scans.
func Filter(source, exclude, include string) (string, error) {
	if exclude == All {
		return "", ErrAllExcluded
	}

	var drop [256]bool
	for i := 0; i < len(Whitespace); i++ {
		drop[Whitespace[i]] = true
	}
	for i := 0; i < len(exclude); i++ {
		drop[exclude[i]] = true
	}
	for i := 0; i < len(include); i++ {
		drop[include[i]] = false
	}

	out := make([]byte, 0, len(source))
	for i := 0; i < len(source); i++ {
		if !drop[source[i]] {
			out = append(out, source[i])
		}
	}
	return string(out), nil
}

// Distinct returns the number of distinct characters in s.
func Distinct(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			n++
		}
	}
	return n
}

// DistinctChars returns the distinct characters of s, preserving first
// occurrence order.
func DistinctChars(s string) string {
	var seen [256]bool
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ContainsPunctuation reports whether s contains any punctuation character.
func ContainsPunctuation(s string) bool {
	var punct [256]bool
	for i := 0; i < len(Punctuation); i++ {
		punct[Punctuation[i]] = true
	}
	for i := 0; i < len(s); i++ {
		if punct[s[i]] {
			return true
		}
	}
	return false
}
