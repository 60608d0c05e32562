// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import "math"

// Entropy estimates the information content of an alphabet as log2 of its
// size. It is a coarse per-position estimate used by the exclusion chart,
// not an audited entropy measurement.
func Entropy(alphabet string) float64 {
	if len(alphabet) == 0 {
		return 0
	}
	return math.Log2(float64(len(alphabet)))
}
