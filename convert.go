package bitvec

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToRoaring returns a roaring bitmap containing the set positions.
func (v *BitVector) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range v.SetIndices() {
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring builds a vector of the given length from the members of rb.
// A member at or above length is reported as an IndexError.
func FromRoaring(length int, rb *roaring.Bitmap) (BitVector, error) {
	v, err := New(length)
	if err != nil {
		return BitVector{}, err
	}
	if rb == nil || rb.IsEmpty() {
		return v, nil
	}
	if maxID := rb.Maximum(); uint64(maxID) >= uint64(length) {
		return BitVector{}, &IndexError{Op: "from_roaring", Index: int(maxID), Length: length}
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		v.words[i/wordBits] |= 1 << (i % wordBits)
	}
	return v, nil
}

// ToBitSet returns a bitset of the same length with the same positions set.
func (v *BitVector) ToBitSet() *bitset.BitSet {
	b := bitset.New(uint(v.length))
	for i := range v.SetIndices() {
		b.Set(uint(i))
	}
	return b
}

// FromBitSet builds a vector whose length is b.Len(). The length must satisfy
// the same bounds as New.
func FromBitSet(b *bitset.BitSet) (BitVector, error) {
	if b == nil {
		return BitVector{}, &LengthError{Length: 0}
	}
	if b.Len() >= MaxSize {
		return BitVector{}, &LengthError{Length: int(b.Len())}
	}
	v, err := New(int(b.Len()))
	if err != nil {
		return BitVector{}, err
	}
	for i, ok := b.NextSet(0); ok && i < b.Len(); i, ok = b.NextSet(i + 1) {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	}
	return v, nil
}
