package eventchan

import (
	"golang.org/x/exp/constraints"
)

// intRange returns the half-open range [from, to) as a slice.
func intRange[E constraints.Integer](from, to E) []E {
	s := make([]E, 0, int(to-from))
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}
