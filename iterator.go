package eventchan

import "iter"

// EventIterator is a finite, single-pass iterator over the events returned
// by a single [EventChannel.Read] call. Events are yielded in write order.
//
// The iterator borrows the channel's storage: the channel must not be
// written to (or closed) while any iterator is outstanding. The reader's
// cursor is advanced by Read itself, so discarding an iterator without
// consuming it skips those events permanently.
type EventIterator[E any] struct {
	data  *dataStore[E]
	index circularIndex
	end   uint
}

// Next returns the next event, or the zero value and false once the
// iterator is exhausted.
func (x *EventIterator[E]) Next() (event E, ok bool) {
	i, ok := x.index.step(x.end)
	if ok {
		event = x.data.get(i)
	}
	return
}

// Len returns the exact number of events remaining.
func (x *EventIterator[E]) Len() int {
	if x.index.isSentinel() {
		return 0
	}
	return int(newCircularIndex(x.end, x.index.size).sub(x.index.index)) + 1
}

// All returns the remaining events as a single-use range-over-func
// sequence.
func (x *EventIterator[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for event, ok := x.Next(); ok; event, ok = x.Next() {
			if !yield(event) {
				return
			}
		}
	}
}

// Slice collects the remaining events into a new slice, nil if none.
func (x *EventIterator[E]) Slice() (events []E) {
	if n := x.Len(); n != 0 {
		events = make([]E, 0, n)
		for event, ok := x.Next(); ok; event, ok = x.Next() {
			events = append(events, event)
		}
	}
	return
}
