package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a length is not in (0, MaxSize).
	ErrInvalidLength = errors.New("invalid length")

	// ErrIndexOutOfBounds is returned when an index is not in [0, Len).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidBitString is returned by ParseString for characters other than '0' and '1'.
	ErrInvalidBitString = errors.New("invalid bit string")
)

// IndexError reports an index outside the vector.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// LengthError reports a rejected vector length.
//
// It matches ErrInvalidLength via errors.Is.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length: %d (must be in (0, %d))", e.Length, MaxSize)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// BitStringError reports an unexpected character in a bit string.
type BitStringError struct {
	Pos  int
	Char byte
}

func (e *BitStringError) Error() string {
	return fmt.Sprintf("invalid bit string: unexpected %q at position %d", e.Char, e.Pos)
}

func (e *BitStringError) Unwrap() error { return ErrInvalidBitString }
