// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for consistency. It scans the Go
// source for i18n.T() calls, compares them against the primary locale,
// and verifies every secondary locale carries the same keys.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

func main() {
	usedKeys, err := findUsedKeys(projectRoot)
	if err != nil {
		fmt.Printf("error scanning source: %v\n", err)
		os.Exit(1)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("error loading primary locale: %v\n", err)
		os.Exit(1)
	}

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("error listing locales: %v\n", err)
		os.Exit(1)
	}

	failed := false

	for _, key := range missingFrom(usedKeys, primaryKeys) {
		fmt.Printf("missing from %s: %s\n", primaryLocale, key)
		failed = true
	}
	for _, key := range missingFrom(primaryKeys, usedKeys) {
		fmt.Printf("orphaned in %s: %s\n", primaryLocale, key)
	}

	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		for _, key := range missingFrom(primaryKeys, secondaryKeys) {
			fmt.Printf("missing from %s: %s\n", filepath.Base(file), key)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("locale files are consistent")
}

// missingFrom returns the keys of want that have is missing, sorted.
func missingFrom(want, have map[string]struct{}) []string {
	var out []string
	for key := range want {
		if _, ok := have[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// findUsedKeys scans all non-test .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.T\("([^"]+)"\)`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_") || strings.HasPrefix(info.Name(), ".")) {
			if path != root {
				return filepath.SkipDir
			}
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads the flat key set of one locale file.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(doc))
	for key := range doc {
		keys[key] = struct{}{}
	}
	return keys, nil
}
