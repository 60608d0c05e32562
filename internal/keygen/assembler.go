// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"math"

	"github.com/toeirei/keyforge/internal/charset"
	"github.com/toeirei/keyforge/internal/diag"
)

// Capacity bounds for key lengths and working buffers.
const (
	// MinCapacity is the soft threshold: lengths at or above it trigger a
	// performance advisory, and shorter lengths use it as the working
	// buffer size so the randomness draw cost is amortized.
	MinCapacity = 100_000

	// MaxCapacity is the hard ceiling for any length value.
	MaxCapacity = math.MaxInt64
)

// maxUniqueAttempts caps re-sampling for the uniqueness constraint. A
// capped loop turns pathological inputs into a clean infeasibility error
// instead of regenerating forever.
const maxUniqueAttempts = 8

// UniquePolicy describes how the assembler treats the uniqueness
// constraint for one run.
type UniquePolicy struct {
	// Enabled requires all characters of the key to be pairwise distinct.
	Enabled bool
	// Bypass accepts a non-unique key when the length exceeds the distinct
	// character budget, instead of failing.
	Bypass bool
	// Exempt marks runs whose exclusion option is a known unique-disabled
	// catalog entry; uniqueness is silently dropped for those.
	Exempt bool
}

// Assembler expands a filtered alphabet into a working buffer and draws
// raw keys from it. The zero value is usable; Sink defaults to discard.
type Assembler struct {
	Sink diag.Sink
}

func (a *Assembler) sink() diag.Sink {
	if a.Sink == nil {
		return diag.Discard
	}
	return a.Sink
}

// checkLength validates a requested length against the capacity bounds.
// what names the value in error and advisory text ("key", "word count").
func (a *Assembler) checkLength(length int, what string) error {
	if length <= 0 {
		return configErrorf("the %s length must be a positive integer", what)
	}
	if length >= MaxCapacity {
		return configErrorf("%s length %d exceeds the maximum capacity of %d", what, length, int64(MaxCapacity))
	}
	if length >= MinCapacity {
		a.sink().Warnf("%s length %d exceeds the soft capacity of %d; generation may need significant processing time", what, length, MinCapacity)
	}
	return nil
}

// sigLarger reports whether two values are within a log-scaled significance
// threshold of each other, and returns the governing threshold (the larger
// of the inputs and the threshold itself). A zero threshold defaults to
// the full capacity range.
func sigLarger(a, b, threshold int) (bool, int) {
	if threshold <= 0 {
		threshold = MaxCapacity - MinCapacity
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	status := math.Log1p(float64(diff)) <= math.Log1p(float64(threshold))
	governing := max(max(a, b), threshold)
	return status, governing
}

// scaleBuffer sizes the working buffer for a validated length. Short
// lengths are padded up to MinCapacity, lengths crowding the capacity
// ceiling are doubled, and everything else uses the length itself or the
// capacity-range fallback.
func scaleBuffer(length int) int {
	largeOK, largeThr := sigLarger(length, MaxCapacity-length, 0)
	rngOK, rngThr := sigLarger(length, MinCapacity, len(charset.All))

	if length >= MinCapacity {
		if largeOK {
			if length > MaxCapacity/2 {
				return MaxCapacity
			}
			return length * 2
		}
		if rngOK {
			return length
		}
		return largeThr
	}
	return rngThr
}

// cycleTo repeats alphabet wrap-around style until size characters are
// accumulated. Repetition is cyclic, not random: the buffer is sampling
// material, not the key itself.
func cycleTo(alphabet string, size int) string {
	if len(alphabet) == 0 || size <= 0 {
		return ""
	}
	buf := make([]byte, size)
	for i := 0; i < size; i++ {
		buf[i] = alphabet[i%len(alphabet)]
	}
	return string(buf)
}

// Assemble draws a raw key of exactly length characters from the filtered
// alphabet. The alphabet is the already-filtered working material (it may
// contain repeats from cyclic expansion). Uniqueness handling follows
// policy; see UniquePolicy.
func (a *Assembler) Assemble(alphabet string, length int, policy UniquePolicy) (string, error) {
	if err := a.checkLength(length, "key"); err != nil {
		return "", err
	}
	if len(alphabet) == 0 {
		return "", configErrorf("the filtered alphabet is empty; nothing to sample from")
	}

	key, err := sample(alphabet, min(length, len(alphabet)))
	if err != nil {
		return "", err
	}

	if policy.Enabled {
		key, err = a.applyUnique(key, alphabet, length, policy)
		if err != nil {
			return "", err
		}
	}

	if len(key) > length {
		key = key[:length]
	}
	return key, nil
}

// applyUnique enforces the pairwise-distinct constraint on a candidate.
func (a *Assembler) applyUnique(candidate, alphabet string, length int, policy UniquePolicy) (string, error) {
	if isUnique(candidate) {
		a.sink().Debugf("generated key is already unique; no regeneration needed")
		return candidate, nil
	}

	distinct := charset.DistinctChars(alphabet)
	if length > len(distinct) {
		if policy.Bypass || policy.Exempt {
			a.sink().Warnf("uniqueness constraint disabled: key length %d exceeds the %d distinct characters available", length, len(distinct))
			return candidate, nil
		}
		return "", configErrorf("unable to generate a unique key: length %d exceeds the %d distinct characters of the filtered alphabet (set the bypass option to accept a non-unique key)", length, len(distinct))
	}

	a.sink().Warnf("regenerating key to satisfy the uniqueness constraint")
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		key, err := sample(distinct, min(length, len(distinct)))
		if err != nil {
			return "", err
		}
		if isUnique(key) {
			return key, nil
		}
	}
	return "", configErrorf("unable to generate a unique key after %d attempts", maxUniqueAttempts)
}

// isUnique reports whether no character repeats in key.
func isUnique(key string) bool {
	return charset.Distinct(key) == len(key)
}
