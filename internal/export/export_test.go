// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/keyforge/internal/keygen"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestExportKeyWritesText(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	path, err := e.ExportKey(keygen.Key{Text: "abcd-efgh"}, "mykey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "mykey.key" {
		t.Fatalf("got path %q, want mykey.key", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "abcd-efgh" {
		t.Fatalf("file content %q", data)
	}
}

func TestExportKeyDefaultName(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	path, err := e.ExportKey(keygen.Key{Text: "x"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "generated_key.key" {
		t.Fatalf("got %q", path)
	}
}

func TestExportKeyNoOverwrite(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	first, err := e.ExportKey(keygen.Key{Text: "one"}, "dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.ExportKey(keygen.Key{Text: "two"}, "dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second == first {
		t.Fatalf("second export reused path %q", first)
	}
	if ok, _ := regexp.MatchString(`^dup_ID\d{5}\.key$`, filepath.Base(second)); !ok {
		t.Fatalf("unique name %q does not carry an ID tag", second)
	}
	data, _ := os.ReadFile(first)
	if string(data) != "one" {
		t.Fatalf("original file was clobbered: %q", data)
	}
}

func TestExportKeyOverwrite(t *testing.T) {
	inTempDir(t)
	e := &Exporter{Overwrite: true}
	if _, err := e.ExportKey(keygen.Key{Text: "one"}, "dup"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := e.ExportKey(keygen.Key{Text: "two"}, "dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "dup.key" {
		t.Fatalf("overwrite must reuse the path, got %q", path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Fatalf("file content %q, want two", data)
	}
}

func TestExportBundleJSON(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	b := keygen.Bundle{Keys: []keygen.Key{{Text: "aa"}, {Text: "bb"}}}
	path, err := e.ExportBundle(b, "bundle", FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "bundle.json" {
		t.Fatalf("got %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["key1"] != "aa" || m["key2"] != "bb" {
		t.Fatalf("unexpected content %v", m)
	}
	// key1 must come before key2 in the document.
	if strings.Index(string(data), "key1") > strings.Index(string(data), "key2") {
		t.Fatalf("bundle keys out of order: %s", data)
	}
}

func TestExportBundleYAML(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	b := keygen.Bundle{Keys: []keygen.Key{{Text: "aa"}, {Text: "bb"}}}
	path, err := e.ExportBundle(b, "bundle", FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "key1: aa") || !strings.Contains(out, "key2: bb") {
		t.Fatalf("unexpected YAML:\n%s", out)
	}
}

func TestExportBundleRejectsUnknownFormat(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	if _, err := e.ExportBundle(keygen.Bundle{Keys: []keygen.Key{{Text: "a"}}}, "b", Format("xml")); err == nil {
		t.Fatal("unknown format must fail")
	}
}

func TestExportCompressed(t *testing.T) {
	inTempDir(t)
	e := &Exporter{Compress: true}
	path, err := e.ExportKey(keygen.Key{Text: "squeeze me"}, "packed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".key.zst") {
		t.Fatalf("compressed export should end in .key.zst, got %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if buf.String() != "squeeze me" {
		t.Fatalf("round trip mismatch: %q", buf.String())
	}
}

func TestExportOutputDispatch(t *testing.T) {
	inTempDir(t)
	e := &Exporter{}
	single := keygen.SingleOutput(keygen.Key{Text: "solo"})
	path, err := e.ExportOutput(single, "one", FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "one.key" {
		t.Fatalf("single output must export as text, got %q", path)
	}

	bundle := keygen.BundleOutput(keygen.Bundle{Keys: []keygen.Key{{Text: "a"}}})
	path, err = e.ExportOutput(bundle, "many", FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "many.json" {
		t.Fatalf("bundle output must export structured, got %q", path)
	}
}
