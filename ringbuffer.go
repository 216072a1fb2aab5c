package eventchan

import (
	"strconv"

	"github.com/joeycumines/logiface"
)

// ringBuffer is the orchestrating core: circular storage with on-demand
// growth, a monotonically advancing write generation, and the registry of
// reader cursors bounding how much capacity may be reused.
//
// lastIndex tracks the most recently written slot. available caches the
// number of slots that may be written before any open reader would be
// overrun, and is recomputed from the registry only when it runs out.
type ringBuffer[E any] struct {
	logger     *logiface.Logger[logiface.Event]
	instance   *instanceID
	drops      *dropQueue
	data       dataStore[E]
	readers    readerRegistry
	lastIndex  circularIndex
	generation uint64
	available  uint
}

func newRingBuffer[E any](size uint, logger *logiface.Logger[logiface.Event]) ringBuffer[E] {
	if size < 2 {
		panic(`eventchan: buffer size must be at least 2`)
	}
	return ringBuffer[E]{
		logger:    logger,
		instance:  newInstanceID(),
		drops:     new(dropQueue),
		data:      newDataStore[E](size),
		lastIndex: circularIndexAtEnd(size),
		available: size,
	}
}

// writeSlice appends every element of events, in order, growing the buffer
// as necessary. An empty slice leaves the buffer untouched, including the
// generation.
func (x *ringBuffer[E]) writeSlice(events []E) {
	n := uint(len(events))
	if n == 0 {
		return
	}
	x.ensureAdditional(n)
	for i := range events {
		next := x.lastIndex.add(1)
		x.data.put(next, events[i])
		x.lastIndex.index = next
	}
	if n <= x.available {
		x.available -= n
	} else {
		// only reachable with no open readers and a batch exceeding
		// capacity, where the buffer wrapped in place instead of growing
		x.available = 0
	}
	x.generation++
}

func (x *ringBuffer[E]) singleWrite(event E) {
	x.writeSlice([]E{event})
}

// wouldWrite reports whether any reader would observe an additional event,
// e.g. to skip expensive event construction entirely.
func (x *ringBuffer[E]) wouldWrite() bool {
	x.maintain()
	return x.readers.hasReader()
}

// ensureAdditional makes room for num writes, growing the buffer if some
// open reader has yet to observe an event that would be overwritten.
func (x *ringBuffer[E]) ensureAdditional(num uint) {
	if x.available >= num {
		return
	}
	x.ensureAdditionalSlow(num)
}

func (x *ringBuffer[E]) ensureAdditionalSlow(num uint) {
	x.maintain()

	nearest, ok := x.readers.nearest(x.lastIndex, x.generation)
	if !ok {
		x.available = x.lastIndex.size
		return
	}

	left := nearest.distanceFrom(x.lastIndex, x.generation)
	x.available = left
	if left >= num {
		return
	}

	// target the smallest power-of-two multiple of the current capacity
	// that fits the shortfall
	minTargetSize := x.lastIndex.size + (num - left)
	size := 2 * x.lastIndex.size
	for size < minTargetSize {
		size *= 2
	}
	growBy := size - x.lastIndex.size

	oldSize := x.lastIndex.size
	cursor := x.lastIndex.add(1)
	x.data.grow(cursor, growBy)
	x.lastIndex.size = size
	if cursor == 0 {
		// the write head sat on the final slot, so the insertion point
		// wrapped and the whole ring relocated, write head included
		x.readers.shiftWrapped(x.lastIndex.index, x.generation, growBy)
		x.lastIndex.index = size - 1
	} else {
		x.readers.shift(x.lastIndex.index, x.generation, growBy)
	}
	x.available = left + growBy

	x.logger.Debug().
		Stringer(`channel`, x.instance).
		Uint64(`oldCapacity`, uint64(oldSize)).
		Uint64(`newCapacity`, uint64(size)).
		Uint64(`requested`, uint64(num)).
		Uint64(`unread`, uint64(oldSize-left)).
		Log(`event buffer grown`)
}

// maintain drains the drop notification queue, recycling the registry
// entries of closed reader handles.
func (x *ringBuffer[E]) maintain() {
	for _, id := range x.drops.take() {
		x.readers.remove(id)
		x.logger.Trace().
			Stringer(`channel`, x.instance).
			Int(`reader`, id).
			Log(`reader reclaimed`)
	}
}

// newReaderID registers a new reader, positioned such that only events
// written after this call are observable.
func (x *ringBuffer[E]) newReaderID() *ReaderID[E] {
	x.maintain()
	id := x.readers.alloc(x.lastIndex.index, x.generation)
	x.logger.Trace().
		Stringer(`channel`, x.instance).
		Int(`reader`, id).
		Log(`reader registered`)
	return &ReaderID[E]{
		reference: x.instance,
		drops:     x.drops,
		id:        id,
	}
}

// read returns an iterator over the events written since the reader's last
// read (or registration), and advances the reader's cursor to the write
// head immediately. The advancement happens here, not on iteration, so a
// reader that discards the iterator still acknowledges the events rather
// than forcing unbounded growth.
func (x *ringBuffer[E]) read(readerID *ReaderID[E]) *EventIterator[E] {
	// readerID is a token granting access to a registry entry, so a handle
	// from another channel must be trapped before it can alias an entry
	x.instance.assertEq(readerID.reference)
	if readerID.closed.Load() {
		panic(`eventchan: read: reader is closed`)
	}
	if readerID.id >= len(x.readers.readers) {
		panic(`eventchan: read: reader not registered: ` + strconv.Itoa(readerID.id))
	}

	reader := &x.readers.readers[readerID.id]
	oldIndex, oldGen := reader.lastIndex, reader.generation
	reader.lastIndex = x.lastIndex.index
	reader.generation = x.generation

	index := newCircularIndex(oldIndex, x.lastIndex.size)
	index.index = index.add(1)
	if oldGen == x.generation {
		index = circularIndexSentinel(index.size)
	}

	return &EventIterator[E]{
		data:  &x.data,
		end:   x.lastIndex.index,
		index: index,
	}
}

// close releases every buffered element. The buffer must not be used
// afterwards.
func (x *ringBuffer[E]) close() {
	x.data.clean(x.lastIndex.add(1))
}
