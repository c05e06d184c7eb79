// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and fuzz targets only.
// It provides a seeded RNG for generating bit patterns and operation
// sequences, and Reference, a plain []bool model that the packed
// implementation is checked against.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	pattern := rng.Bools(100, 0.3) // ~30% true
//
// # Reference Model
//
//	ref := testutil.NewReference(len(pattern))
//	ref.Set(3)
//	ref.ShiftLeft(2)
//	n := ref.LongestRun(0)
package testutil
