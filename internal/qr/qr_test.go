// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package qr

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.png")
	if err := WritePNG("s3cr3t-key-material", path, 0); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("%s does not start with the PNG signature", path)
	}
}

func TestWritePNGRejectsEmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := WritePNG("", path, 0); err == nil {
		t.Fatal("empty text must not render")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written, stat err = %v", err)
	}
}

func TestTerminal(t *testing.T) {
	s, err := Terminal("s3cr3t-key-material")
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if strings.Count(s, "\n") < 10 {
		t.Fatalf("terminal drawing looks too small:\n%s", s)
	}
}
