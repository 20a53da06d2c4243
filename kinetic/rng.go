// Package kinetic - RNG utilities for scenario generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical scenarios across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package kinetic

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// SampleSeed mixes a base seed and a sample number into an independent seed,
// so that experiment sample k is reproducible on its own.
//
// SplitMix64 finalizer; see Vigna 2014 for the constants.
//
// Complexity: O(1).
func SampleSeed(base int64, sample uint64) int64 {
	x := uint64(base) ^ (sample + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
