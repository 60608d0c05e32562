// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"sort"
	"strings"

	"github.com/toeirei/keyforge/internal/charset"
	"github.com/toeirei/keyforge/internal/diag"
)

// DefaultWrapWidth is the chunk width used when a separator is requested
// without an explicit width.
const DefaultWrapWidth = 4

// Wrapper inserts a separator into an assembled key, either at fixed-width
// intervals or immediately before an explicit ascending set of character
// offsets.
type Wrapper struct {
	// Sep is the separator glyph. Outside word mode it must be exactly one
	// character; that is enforced by the Generator before wrapping.
	Sep string
	// Width is the fixed chunk width. Zero selects DefaultWrapWidth.
	// Ignored when Offsets is set.
	Width int
	// Offsets selects explicit-offset mode: the separator is inserted
	// immediately before the character at each offset. Offset 0 prefixes
	// the whole string.
	Offsets []int
	// WordMode passes text through untouched; word joining applies the
	// separator itself.
	WordMode bool
	// AllowPunct skips the punctuation guard for include-all runs.
	AllowPunct bool

	Sink diag.Sink
}

func (w *Wrapper) sink() diag.Sink {
	if w.Sink == nil {
		return diag.Discard
	}
	return w.Sink
}

// Wrap applies the configured separator placement to text.
//
// The pipeline is defined for alphanumeric payloads plus a single chosen
// separator glyph: outside word mode, text containing punctuation other
// than the separator itself is rejected rather than escaped.
func (w *Wrapper) Wrap(text string) (string, error) {
	if w.WordMode {
		return text, nil
	}

	if !w.AllowPunct {
		stripped := strings.ReplaceAll(text, w.Sep, "")
		if charset.ContainsPunctuation(stripped) {
			return "", configErrorf("special characters detected in the text; wrapping supports alphanumeric payloads plus the separator only")
		}
	}

	if len(w.Offsets) > 0 {
		return w.wrapAt(text)
	}
	return w.wrapWidth(text)
}

// wrapWidth chunks text into runs of Width characters joined by Sep.
func (w *Wrapper) wrapWidth(text string) (string, error) {
	width := w.Width
	if width == 0 {
		width = DefaultWrapWidth
	}
	if width < 0 {
		return "", configErrorf("the separator width must be a positive integer, got %d", width)
	}

	if len(text) != 1 && width >= len(text) {
		if width-len(text) <= 1 {
			// Equal (or one past) the text length would swallow the
			// separator entirely; shrink by one so it still appears.
			width--
			w.sink().Warnf("separator width %d adjusted to %d to fit the text length %d", width+1, width, len(text))
		} else {
			return "", configErrorf("the separator width %d must be less than the text length %d so the separator is not excluded", width, len(text))
		}
	}

	var b strings.Builder
	for i := 0; i < len(text); i += width {
		if i > 0 {
			b.WriteString(w.Sep)
		}
		end := i + width
		if end > len(text) {
			end = len(text)
		}
		b.WriteString(text[i:end])
	}
	return b.String(), nil
}

// wrapAt inserts Sep immediately before the character at each configured
// offset.
func (w *Wrapper) wrapAt(text string) (string, error) {
	offsets := make([]int, 0, len(w.Offsets))
	seen := make(map[int]struct{}, len(w.Offsets))
	for _, off := range w.Offsets {
		if off < 0 {
			return "", configErrorf("separator offsets must be non-negative integers, got %d", off)
		}
		if _, dup := seen[off]; dup {
			continue
		}
		seen[off] = struct{}{}
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	if last := offsets[len(offsets)-1]; last > len(text) {
		return "", configErrorf("separator offset %d exceeds the text length %d", last, len(text))
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if _, hit := seen[i]; hit {
			b.WriteString(w.Sep)
		}
		b.WriteByte(text[i])
	}
	// An offset equal to the text length is allowed and trails the key.
	if _, hit := seen[len(text)]; hit {
		b.WriteString(w.Sep)
	}
	return b.String(), nil
}
