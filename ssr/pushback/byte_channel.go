// The pushback package provides a byte channel that can have bytes pushed
// back onto it.  A frame scanner that reads a few bytes, finds that they
// are not the start of a frame and needs to look at them again pushes them
// back and carries on.
package pushback

import (
	"errors"
)

// ErrDone is returned when the channel has been closed and drained.
var ErrDone = errors.New("done")

// ErrNilChannel is returned when the ByteChannel has no channel.
var ErrNilChannel = errors.New("channel is nil")

// ByteChannel is a channel of bytes with pushback.
type ByteChannel struct {
	// pushBackBuffer contains any bytes that have been pushed back.
	pushBackBuffer []byte
	// ch is the source of the bytes.
	ch chan byte
}

// New creates a ByteChannel containing the given byte channel.  ch should
// be a buffered channel.
func New(ch chan byte) *ByteChannel {
	return &ByteChannel{ch: ch}
}

// Close closes the channel.
func (bc *ByteChannel) Close() {
	close(bc.ch)
}

// get reads the next byte from the channel, ignoring any pushed back bytes.
func (bc *ByteChannel) get() (byte, error) {
	if bc.ch == nil {
		return 0, ErrNilChannel
	}
	b, more := <-bc.ch
	if !more {
		return 0, ErrDone
	}
	return b, nil
}

// GetNextByte returns the first pushed back byte if there is one,
// otherwise the next byte from the channel.  When the channel has been
// closed and drained it returns ErrDone.
func (bc *ByteChannel) GetNextByte() (byte, error) {
	if len(bc.pushBackBuffer) > 0 {
		b := bc.pushBackBuffer[0]
		bc.pushBackBuffer = bc.pushBackBuffer[1:]
		return b, nil
	}
	return bc.get()
}

// PushBack pushes back a run of bytes.  They are returned next, in the
// order given, before any bytes that were pushed back earlier.
func (bc *ByteChannel) PushBack(bytes ...byte) {
	bc.pushBackBuffer = append(append([]byte(nil), bytes...), bc.pushBackBuffer...)
}
