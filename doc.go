// Package eventchan provides an in-process single-producer multi-consumer
// event channel, a pull-based broadcast queue where one writer appends
// events and any number of independent readers each observe the full stream
// of events produced after their registration.
//
// See also [github.com/joeycumines/go-longpoll] and
// [github.com/joeycumines/go-microbatch], for push-based batching over Go
// channels, e.g. if you need blocking receives or cross-goroutine handoff
// rather than frame-style polling.
//
// # Architecture
//
// An [EventChannel] owns a growing ring buffer. Writes append into a
// power-of-two sized circular store, and each registered reader tracks a
// cursor (position and generation) into that store. Whenever a write would
// overwrite an event that some live reader has not yet observed, the buffer
// doubles instead, inserting the new free region immediately after the
// write head so that the logical order of buffered events is preserved.
// Once every reader has caught up, capacity is reused in place, so a
// channel whose readers keep pace never allocates after construction.
//
// Readers are registered via [EventChannel.RegisterReader], which returns a
// [ReaderID]. Each call to [EventChannel.Read] with that handle returns the
// events written since the previous call (or since registration), and
// advances the handle's cursor immediately, whether or not the returned
// iterator is consumed. Closing the handle cancels the subscription and
// releases its claim on the buffer, allowing capacity to be reclaimed.
//
// Note that as long as a [ReaderID] is open, it is crucial to use it to
// read the events; otherwise the buffer will keep growing.
//
// # Thread Safety
//
// The channel is a single-writer resource. Write, WriteSlice, DrainWrite,
// WouldWrite, RegisterReader and Close require exclusive access. Read
// requires shared access to the channel, but exclusive access to the
// handle, which makes it safe for multiple readers, each holding their own
// [ReaderID], to read concurrently, provided no write overlaps any read
// (e.g. guarded by a [sync.RWMutex]). [ReaderID.Close] may be called from
// any goroutine at any time.
//
// # Usage
//
//	channel := eventchan.New[int]()
//	reader := channel.RegisterReader()
//	defer reader.Close()
//
//	channel.WriteSlice([]int{1, 2, 3})
//
//	for event := range channel.Read(reader).All() {
//		fmt.Println(event)
//	}
package eventchan
