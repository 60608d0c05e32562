// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataset(t *testing.T) {
	list, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Words()) == 0 {
		t.Fatal("embedded dataset is empty")
	}
	if list.Total() != len(list.Words()) {
		t.Fatalf("total hint %d does not match %d words", list.Total(), len(list.Words()))
	}
	seen := map[string]bool{}
	for _, w := range list.Words() {
		if w == "" {
			t.Fatal("empty word in dataset")
		}
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
	}
}

func TestLoadCustomDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`{"total": 2, "words": ["alpha", "beta"]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	list, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total() != 2 || len(list.Words()) != 2 {
		t.Fatalf("got total %d with %d words", list.Total(), len(list.Words()))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file must fail")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"words": []}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("empty dataset must fail")
	}

	if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed JSON must fail")
	}
}
