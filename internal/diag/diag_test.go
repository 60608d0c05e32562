// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestWarnDeduplicated(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Warnf("separator width %d adjusted", 3)
	l.Warnf("separator width %d adjusted", 3)
	l.Warnf("separator width %d adjusted", 3)

	if n := strings.Count(buf.String(), "adjusted"); n != 1 {
		t.Fatalf("repeated warning emitted %d times, want 1", n)
	}
}

func TestDistinctMessagesBothEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Warnf("width %d adjusted", 3)
	l.Warnf("width %d adjusted", 4)

	out := buf.String()
	if !strings.Contains(out, "3") || !strings.Contains(out, "4") {
		t.Fatalf("distinct warnings must both appear, got %q", out)
	}
}

func TestDebugSuppressedWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debugf("internal detail")
	if buf.Len() != 0 {
		t.Fatalf("debug output leaked: %q", buf.String())
	}

	buf.Reset()
	lv := New(&buf, true)
	lv.Debugf("internal detail")
	if !strings.Contains(buf.String(), "internal detail") {
		t.Fatalf("verbose sink must emit debug output, got %q", buf.String())
	}
}

func TestDiscardIsSilent(t *testing.T) {
	// Must not panic and must accept any message.
	Discard.Debugf("a %d", 1)
	Discard.Infof("b")
	Discard.Warnf("c %s", "x")
}
