// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wordlist supplies the word dataset for passphrase generation.
// The default dataset is embedded into the binary; alternative datasets
// can be loaded from a JSON file of the same shape.
package wordlist

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed words.json
var embeddedFS embed.FS

// dataset is the on-disk shape of a word dataset.
type dataset struct {
	Total int      `json:"total"`
	Words []string `json:"words"`
}

// List is a finite word dataset. It satisfies keygen.WordProvider.
type List struct {
	words []string
	total int
}

// Words returns the candidate words.
func (l *List) Words() []string { return l.words }

// Total returns the dataset's total-count hint.
func (l *List) Total() int { return l.total }

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// Default returns the embedded word dataset, loaded once.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		data, err := embeddedFS.ReadFile("words.json")
		if err != nil {
			defaultErr = fmt.Errorf("read embedded word list: %w", err)
			return
		}
		defaultList, defaultErr = parse(data)
	})
	return defaultList, defaultErr
}

// Load reads a word dataset from a JSON file.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*List, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	if len(ds.Words) == 0 {
		return nil, fmt.Errorf("word list contains no words")
	}
	if ds.Total == 0 {
		ds.Total = len(ds.Words)
	}
	return &List{words: ds.Words, total: ds.Total}, nil
}
