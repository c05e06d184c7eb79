// Package bitvec provides a fixed-capacity bit vector.
//
// A BitVector holds between 1 and MaxSize-1 positions, all cleared at
// construction. Every indexed operation is bounds-checked and reports
// ErrIndexOutOfBounds instead of truncating or wrapping.
//
// # Quick Start
//
//	v, err := bitvec.New(8)
//	if err != nil {
//	    return err
//	}
//	_ = v.Set(0)
//	_ = v.Set(1)
//	_ = v.Set(3)
//
//	n, _ := v.LongestSetSequenceStartingAt(0) // 2
//	v.ShiftLeft(1)                             // "10100000"
//
// # Value Semantics
//
// BitVector is a plain value: assignment copies it and == compares it.
// Mutating methods take a pointer receiver, so call them on an addressable
// variable. There is no internal locking; concurrent readers are fine, writers
// need exclusive access.
//
// # Interop
//
// ToRoaring/FromRoaring and ToBitSet/FromBitSet convert to and from
// github.com/RoaringBitmap/roaring/v2 and github.com/bits-and-blooms/bitset.
package bitvec
