package eventchan

// DefaultCapacity is the initial ring buffer capacity used by New when
// WithCapacity is not provided.
const DefaultCapacity = 64

// EventChannel is a pull-based broadcast queue carrying events of type E.
// One writer appends events, and every open reader observes the full
// stream of events written after its registration, at its own pace.
//
// Instances must be initialized using the New factory. See the package
// documentation for the access rules; in short, all methods except Read
// require exclusive access.
type EventChannel[E any] struct {
	buffer ringBuffer[E]
}

// New initializes a new EventChannel. A panic will occur if an invalid
// capacity is configured.
func New[E any](options ...Option) *EventChannel[E] {
	cfg := resolveChannelOptions(options)
	if cfg.capacity < 2 {
		panic(`eventchan: capacity must be at least 2`)
	}
	return &EventChannel[E]{
		buffer: newRingBuffer[E](uint(cfg.capacity), cfg.logger),
	}
}

// RegisterReader subscribes a new reader to the channel. Only events
// written after this call are observable through the returned handle.
//
// The handle's Close method should be called when the subscription is no
// longer needed, as the buffer grows to retain anything an open reader has
// not yet read.
func (x *EventChannel[E]) RegisterReader() *ReaderID[E] {
	return x.buffer.newReaderID()
}

// Write appends a single event, growing the buffer if needed.
func (x *EventChannel[E]) Write(event E) {
	x.buffer.singleWrite(event)
}

// WriteSlice appends every event in order, growing the buffer if needed.
// The input slice is not retained.
func (x *EventChannel[E]) WriteSlice(events []E) {
	x.buffer.writeSlice(events)
}

// DrainWrite appends every event in order, then empties the caller's
// slice, releasing its references while keeping its capacity.
func (x *EventChannel[E]) DrainWrite(events *[]E) {
	x.buffer.writeSlice(*events)
	clear(*events)
	*events = (*events)[:0]
}

// Read returns an iterator over the events written since the last Read
// with this handle, or since its registration. The handle's position
// advances immediately, whether or not the iterator is consumed.
//
// Read panics if the handle was created by a different channel, or has
// been closed.
func (x *EventChannel[E]) Read(readerID *ReaderID[E]) *EventIterator[E] {
	return x.buffer.read(readerID)
}

// WouldWrite reports whether any reader would observe an additional event,
// e.g. to skip expensive event construction when nothing is listening.
func (x *EventChannel[E]) WouldWrite() bool {
	return x.buffer.wouldWrite()
}

// Close releases all buffered events. Every ReaderID must be closed
// first, and the channel must not be used afterwards.
func (x *EventChannel[E]) Close() error {
	x.buffer.close()
	return nil
}
