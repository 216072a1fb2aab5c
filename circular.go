package eventchan

// sentinel is a reserved index value (all ones), used to encode both an
// exhausted iterator and an inactive reader slot. It is distinct from every
// valid position, as buffer capacities are far below it.
const sentinel = ^uint(0)

// circularIndex is an integer position paired with a modulus, supporting
// forward stepping and signed distance arithmetic on a ring.
type circularIndex struct {
	index uint
	size  uint
}

func newCircularIndex(index, size uint) circularIndex {
	return circularIndex{index: index, size: size}
}

// circularIndexAtEnd returns the position just before the first write, so
// that advancing by one lands on index zero.
func circularIndexAtEnd(size uint) circularIndex {
	return circularIndex{index: size - 1, size: size}
}

func circularIndexSentinel(size uint) circularIndex {
	return circularIndex{index: sentinel, size: size}
}

func (x circularIndex) isSentinel() bool {
	return x.index == sentinel
}

// add returns the position rhs steps forward, modulo the ring size.
func (x circularIndex) add(rhs uint) uint {
	return (x.index + rhs) % x.size
}

// sub returns the position rhs steps backward, modulo the ring size.
func (x circularIndex) sub(rhs uint) uint {
	return (x.index + x.size - rhs%x.size) % x.size
}

// step yields each position in [x.index, inclusiveEnd] in ring order
// exactly once, then reports false forever. Returning the end position
// transitions the index to the sentinel, which encodes both "empty"
// (started in the sentinel state) and "full wrap" (started one past the
// end).
func (x *circularIndex) step(inclusiveEnd uint) (uint, bool) {
	switch i := x.index; {
	case i == sentinel:
		return 0, false
	case i == inclusiveEnd:
		x.index = sentinel
		return i, true
	default:
		x.index = x.add(1)
		return i, true
	}
}
