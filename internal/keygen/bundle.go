// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"runtime"
	"sync"

	"github.com/toeirei/keyforge/internal/diag"
)

// GenerateBundle runs n independent pipeline instances of cfg on a bounded
// worker pool and collects the results in submission order: the key
// generated for slot i is always named key(i+1), regardless of which
// worker finished first. workers <= 0 selects a pool sized to the host.
//
// The runs share no mutable state; each worker builds its own Generator.
// On error the first failure (in submission order) is returned and no
// partial bundle is produced.
func GenerateBundle(cfg Config, n, workers int, opts ...Option) (Bundle, error) {
	probe := &Generator{sink: diag.Discard}
	for _, opt := range opts {
		opt(probe)
	}
	asm := &Assembler{Sink: probe.sink}
	if err := asm.checkLength(n, "number of keys"); err != nil {
		return Bundle{}, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	keys := make([]Key, n)
	errs := make([]error, n)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				keys[i], errs[i] = generateOne(cfg, opts...)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Bundle{}, err
		}
	}
	return Bundle{Keys: keys}, nil
}

// generateOne runs a single independent pipeline instance.
func generateOne(cfg Config, opts ...Option) (Key, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return Key{}, err
	}
	return g.Key()
}
