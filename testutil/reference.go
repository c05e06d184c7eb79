package testutil

import "strings"

// Reference is a straightforward []bool bit vector used as a test oracle.
// It performs no bounds checking beyond Go's own slice checks.
type Reference []bool

// NewReference returns a cleared Reference of length n.
func NewReference(n int) Reference {
	return make(Reference, n)
}

// Set sets position i.
func (r Reference) Set(i int) { r[i] = true }

// Unset clears position i.
func (r Reference) Unset(i int) { r[i] = false }

// Get returns position i.
func (r Reference) Get(i int) bool { return r[i] }

// ShiftLeft moves every value amount positions toward index 0, zero-filling the end.
func (r Reference) ShiftLeft(amount uint) {
	for i := range r {
		src := uint(i) + amount
		if src < uint(len(r)) {
			r[i] = r[src]
		} else {
			r[i] = false
		}
	}
}

// LongestRun counts consecutive true values starting at start.
func (r Reference) LongestRun(start int) int {
	n := 0
	for i := start; i < len(r) && r[i]; i++ {
		n++
	}
	return n
}

// Count returns the number of true values.
func (r Reference) Count() int {
	n := 0
	for _, b := range r {
		if b {
			n++
		}
	}
	return n
}

// String renders the reference as '1'/'0' characters.
func (r Reference) String() string {
	var sb strings.Builder
	for _, b := range r {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
