package bitvec

import (
	"iter"
	"math/bits"
	"strings"
)

// MaxSize is the exclusive upper bound on the length of a BitVector.
const MaxSize = 1024

const (
	wordBits = 64
	numWords = MaxSize / wordBits
)

// BitVector is a fixed-length sequence of bits.
//
// BitVector is a value type: assignment copies it and == compares length and
// contents. Positions at or above Len are always zero.
//
// The zero value has length 0; every indexed operation on it fails with
// ErrIndexOutOfBounds. Use New to create a usable vector.
type BitVector struct {
	length int
	words  [numWords]uint64
}

// New creates a BitVector with length positions, all cleared.
// It returns ErrInvalidLength unless 0 < length < MaxSize.
func New(length int) (BitVector, error) {
	if length <= 0 || length >= MaxSize {
		return BitVector{}, &LengthError{Length: length}
	}
	return BitVector{length: length}, nil
}

// Len returns the number of usable positions.
func (v *BitVector) Len() int {
	return v.length
}

// Set sets position i.
func (v *BitVector) Set(i int) error {
	if err := v.checkIndex("set", i); err != nil {
		return err
	}
	v.words[i/wordBits] |= 1 << (i % wordBits)
	return nil
}

// Unset clears position i.
func (v *BitVector) Unset(i int) error {
	if err := v.checkIndex("unset", i); err != nil {
		return err
	}
	v.words[i/wordBits] &^= 1 << (i % wordBits)
	return nil
}

// IsIndexSet reports whether position i is set.
func (v *BitVector) IsIndexSet(i int) (bool, error) {
	if err := v.checkIndex("is_index_set", i); err != nil {
		return false, err
	}
	return v.test(i), nil
}

// ShiftLeft moves every bit amount positions toward index 0. Position i takes
// the previous value of position i+amount, and the vacated high positions are
// cleared. An amount of Len or more clears the whole vector.
func (v *BitVector) ShiftLeft(amount uint) {
	if amount == 0 {
		return
	}
	if amount >= uint(v.length) {
		v.words = [numWords]uint64{}
		return
	}

	ws := int(amount / wordBits)
	bs := amount % wordBits

	// Destinations ascend and every source word sits at or above its
	// destination, so each word is read before it is overwritten.
	for i := range numWords {
		var w uint64
		if src := i + ws; src < numWords {
			w = v.words[src] >> bs
			if bs != 0 && src+1 < numWords {
				w |= v.words[src+1] << (wordBits - bs)
			}
		}
		v.words[i] = w
	}
}

// LongestSetSequenceStartingAt returns the number of consecutive set positions
// beginning at start. It returns 0 when start itself is clear.
func (v *BitVector) LongestSetSequenceStartingAt(start int) (int, error) {
	if err := v.checkIndex("longest_set_sequence_starting_at", start); err != nil {
		return 0, err
	}

	wi := start / wordBits
	off := start % wordBits

	// ^w >> off would shift in ones; shift first, then invert.
	run := bits.TrailingZeros64(^(v.words[wi] >> off))
	if run < wordBits-off {
		return run, nil
	}

	for wi++; wi < numWords; wi++ {
		n := bits.TrailingZeros64(^v.words[wi])
		run += n
		if n < wordBits {
			break
		}
	}

	// Bits past length are zero, so the run never exceeds it.
	return run, nil
}

// Count returns the number of set positions.
func (v *BitVector) Count() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// SetIndices returns an iterator over the set positions in ascending order.
func (v *BitVector) SetIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range v.words {
			for w != 0 {
				i := wi*wordBits + bits.TrailingZeros64(w)
				if !yield(i) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// String renders the vector as '1' and '0' characters, position 0 first.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)
	for i := range v.length {
		if v.test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseString is the inverse of String.
func ParseString(s string) (BitVector, error) {
	v, err := New(len(s))
	if err != nil {
		return BitVector{}, err
	}
	for i := range len(s) {
		switch s[i] {
		case '1':
			v.words[i/wordBits] |= 1 << (i % wordBits)
		case '0':
		default:
			return BitVector{}, &BitStringError{Pos: i, Char: s[i]}
		}
	}
	return v, nil
}

func (v *BitVector) test(i int) bool {
	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (v *BitVector) checkIndex(op string, i int) error {
	if i < 0 || i >= v.length {
		return &IndexError{Op: op, Index: i, Length: v.length}
	}
	return nil
}
