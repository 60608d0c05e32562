// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes generated keys and bundles to disk. Single keys
// become plain text files; bundles become structured JSON or YAML keyed by
// positional name. Existing files are never clobbered unless overwriting
// is explicitly requested — the exporter derives a fresh name with a short
// random ID tag instead.
package export

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/keyforge/internal/diag"
	"github.com/toeirei/keyforge/internal/keygen"
)

// Format selects the structured encoding for bundle export.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Default base names, matching the single/bundle split.
const (
	defaultKeyName    = "generated_key"
	defaultBundleName = "generated_keys"
	keyExt            = ".key"
)

// Exporter writes keys to disk.
type Exporter struct {
	// Overwrite replaces an existing file instead of deriving a unique
	// name.
	Overwrite bool
	// Compress wraps the output in a zstd stream and appends ".zst" to the
	// file name.
	Compress bool

	Sink diag.Sink
}

func (e *Exporter) sink() diag.Sink {
	if e.Sink == nil {
		return diag.Discard
	}
	return e.Sink
}

// ExportKey writes a single key as text and returns the resolved path.
// An empty name selects the default base name.
func (e *Exporter) ExportKey(key keygen.Key, name string) (string, error) {
	path, err := e.resolvePath(name, defaultKeyName, keyExt)
	if err != nil {
		return "", err
	}
	if err := e.writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, key.String())
		return err
	}); err != nil {
		return "", err
	}
	e.sink().Infof("%s has successfully been exported", path)
	return path, nil
}

// ExportBundle writes a bundle as JSON or YAML keyed key1..keyN and
// returns the resolved path.
func (e *Exporter) ExportBundle(b keygen.Bundle, name string, format Format) (string, error) {
	ext := "." + string(format)
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return "", fmt.Errorf("invalid export format %q: must be %q or %q", format, FormatJSON, FormatYAML)
	}

	path, err := e.resolvePath(name, defaultBundleName, ext)
	if err != nil {
		return "", err
	}
	if err := e.writeFile(path, func(w io.Writer) error {
		return encodeBundle(w, b, format)
	}); err != nil {
		return "", err
	}
	e.sink().Infof("%s has successfully been exported", path)
	return path, nil
}

// ExportOutput dispatches on the output variant: single keys go to
// ExportKey, bundles to ExportBundle.
func (e *Exporter) ExportOutput(out keygen.Output, name string, format Format) (string, error) {
	switch out.Kind {
	case keygen.KindBundle:
		return e.ExportBundle(out.Bundle, name, format)
	default:
		return e.ExportKey(out.Key, name)
	}
}

func encodeBundle(w io.Writer, b keygen.Bundle, format Format) error {
	// Preserve submission order by encoding an ordered document rather
	// than a Go map.
	switch format {
	case FormatYAML:
		doc := yaml.MapSlice{}
		for i, k := range b.Keys {
			doc = append(doc, yaml.MapItem{Key: b.Name(i), Value: k.String()})
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode bundle: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		var sb strings.Builder
		sb.WriteString("{\n")
		for i, k := range b.Keys {
			nameJSON, _ := json.Marshal(b.Name(i))
			valJSON, err := json.Marshal(k.String())
			if err != nil {
				return fmt.Errorf("encode bundle: %w", err)
			}
			sb.Write(nameJSON)
			sb.WriteString(": ")
			sb.Write(valJSON)
			if i != len(b.Keys)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("}\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}
}

// resolvePath turns the requested base name into the final target path,
// deriving a unique name when the target exists and overwriting is off.
func (e *Exporter) resolvePath(name, defaultName, ext string) (string, error) {
	base := name
	if base == "" {
		base = defaultName
	}
	// Strip a caller-supplied extension; the exporter owns it.
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if e.Compress {
		ext += ".zst"
	}

	path := base + ext
	if _, err := os.Stat(path); err == nil {
		if e.Overwrite {
			e.sink().Warnf("key file %s already exists; overwriting with the new key(s)", path)
			return path, nil
		}
		return uniquePath(base, ext)
	}
	return path, nil
}

// uniquePath suffixes base with a short random ID tag until the name is
// free.
func uniquePath(base, ext string) (string, error) {
	for {
		tag, err := randomTag(5)
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("%s_ID%s%s", base, tag, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
}

// randomTag returns n random decimal digits from the system entropy
// source.
func randomTag(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		out[i] = byte('0' + d.Int64())
	}
	return string(out), nil
}

// writeFile writes through fn with scoped acquisition of the target file:
// the handle is flushed and closed on every exit path.
func (e *Exporter) writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if e.Compress {
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return fmt.Errorf("create zstd writer: %w", zerr)
		}
		defer func() {
			if cerr := zw.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = zw
	}
	return fn(w)
}
