package eventchan

import (
	"strconv"
	"sync/atomic"
)

var instanceSerial atomic.Uint64

// instanceID is a process-unique identity token for a single ring buffer.
// Reader handles carry a pointer to their buffer's instanceID, and every
// read asserts the handle and buffer identities match. Identity is pointer
// identity; the serial only exists for diagnostics.
type instanceID struct {
	serial uint64
}

func newInstanceID() *instanceID {
	return &instanceID{serial: instanceSerial.Add(1)}
}

// assertEq panics unless reference is this exact instance. A mismatch means
// a handle is being used with a channel that did not create it, which is a
// memory-safety-relevant bug in the caller, not a recoverable condition.
func (x *instanceID) assertEq(reference *instanceID) {
	if x != reference {
		panic(`eventchan: reader was not registered by this channel`)
	}
}

func (x *instanceID) String() string {
	return `eventchan-` + strconv.FormatUint(x.serial, 10)
}
