// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Run inside a temp dir so config discovery and exports stay isolated.
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	execErr := cmd.Execute()
	return out.String(), execErr
}

func TestGenerateCommandLength(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "generate", "--length", "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := strings.TrimSpace(out)
	if len(key) != 20 {
		t.Fatalf("got %d characters, want 20: %q", len(key), key)
	}
}

func TestGenerateCommandCount(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "generate", "--length", "8", "--count", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	for i, want := range []string{"key1:", "key2:", "key3:"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Fatalf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestGenerateCommandRejectsConflictingFlags(t *testing.T) {
	gen = genOpts{}
	if _, err := runCommand(t, "generate", "--exclude", "punct", "--include-all"); err == nil {
		t.Fatal("conflicting flags must fail")
	}
}

func TestUUIDCommandShape(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "uuid", "--validate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := strings.TrimSpace(out)
	parts := strings.Split(key, "-")
	if len(parts) != 5 {
		t.Fatalf("expected 5 groups in %q", key)
	}
}

func TestChartCommandPlain(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "chart", "--plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "punct") {
		t.Fatalf("chart output missing catalog tags:\n%s", out)
	}
}

func TestConfigFileSetsLanguage(t *testing.T) {
	gen = genOpts{}
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	if err := os.WriteFile("keyforge.yaml", []byte("language: de\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"history"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Keine Einträge gefunden.") {
		t.Fatalf("config file language not applied, got %q", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("version command printed nothing")
	}
}

func TestGenerateCommandQRFile(t *testing.T) {
	gen = genOpts{}
	if _, err := runCommand(t, "generate", "--length", "12", "--qr", "key.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile("key.png")
	if err != nil {
		t.Fatalf("qr file missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatal("key.png is not a PNG file")
	}
}

func TestGenerateCommandQRRejectsBundles(t *testing.T) {
	gen = genOpts{}
	if _, err := runCommand(t, "generate", "--count", "2", "--qr", "keys.png"); err == nil {
		t.Fatal("qr output with a bundle must fail")
	}
}

func TestGenerateCommandExport(t *testing.T) {
	gen = genOpts{}
	out, err := runCommand(t, "generate", "--length", "10", "--out", "exported")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "exported.key") {
		t.Fatalf("expected export confirmation, got %q", out)
	}
	if _, err := os.Stat("exported.key"); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}
