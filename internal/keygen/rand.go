// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randInt returns a uniform random int in [0, n) from the operating
// system's entropy source. Keys must not be reproducible, so a seeded
// pseudorandom generator is never used here.
func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// sample draws k characters from population without replacement, uniformly
// at random. It is a partial Fisher-Yates over a scratch copy: each drawn
// position is swapped out of the remaining pool, so no position can be
// chosen twice. Characters may still repeat in the result when the
// population itself contains repeats.
func sample(population string, k int) (string, error) {
	if k > len(population) {
		k = len(population)
	}
	pool := []byte(population)
	out := make([]byte, k)
	n := len(pool)
	for i := 0; i < k; i++ {
		j, err := randInt(n)
		if err != nil {
			return "", err
		}
		out[i] = pool[j]
		n--
		pool[j] = pool[n]
	}
	return string(out), nil
}

// shuffleStrings returns a new slice holding s in uniformly random order.
func shuffleStrings(s []string) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
