// The bitcursor package provides a bounds-checked sequential reader over a
// string of bits.
//
// CSSR and HAS messages are tightly packed bit streams that don't respect
// byte boundaries, and a message may be split across several broadcast
// frames.  A Cursor holds the bits received so far plus a read position.
// A read that asks for more bits than remain fails with ErrInsufficientData
// and leaves the position where it was, so the caller can wait for more
// bits and try again.
//
// A Cursor is a small value.  A decoder that must either consume a whole
// message or nothing at all copies the cursor, reads from the copy and
// assigns the copy back only when the message is complete:
//
//	c := *cursor
//	... read from &c, return on error ...
//	*cursor = c
package bitcursor

import (
	"errors"
	"fmt"

	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrInsufficientData is returned when a read needs more bits than remain.
var ErrInsufficientData = errors.New("insufficient data")

// maxFieldLength is the widest integer field that can be read in one go.
const maxFieldLength = 64

// Cursor reads bits sequentially from a buffer.
type Cursor struct {
	// buf holds the bits, most significant bit first.  Bits beyond
	// length are ignored.
	buf []byte
	// length is the number of valid bits in buf.
	length uint
	// pos is the read position.
	pos uint
}

// New creates a cursor over all the bits in buf.
func New(buf []byte) Cursor {
	return Cursor{buf: buf, length: uint(len(buf)) * 8}
}

// NewWithLength creates a cursor over the first nbits bits of buf.  If buf
// is too short, the length is cut down to fit.
func NewWithLength(buf []byte, nbits uint) Cursor {
	max := uint(len(buf)) * 8
	if nbits > max {
		nbits = max
	}
	return Cursor{buf: buf, length: nbits}
}

// Len returns the total number of bits, read or not.
func (c Cursor) Len() uint {
	return c.length
}

// Position returns the read position.
func (c Cursor) Position() uint {
	return c.pos
}

// Remaining returns the number of bits left to read.
func (c Cursor) Remaining() uint {
	return c.length - c.pos
}

// Seek moves the read position.
func (c *Cursor) Seek(pos uint) error {
	if pos > c.length {
		return fmt.Errorf("seek to %d beyond %d bits: %w", pos, c.length, ErrInsufficientData)
	}
	c.pos = pos
	return nil
}

// Skip moves the read position forward by n bits.
func (c *Cursor) Skip(n uint) error {
	if c.Remaining() < n {
		return ErrInsufficientData
	}
	c.pos += n
	return nil
}

// ReadUint reads an n-bit unsigned integer.
func (c *Cursor) ReadUint(n uint) (uint64, error) {
	if n > maxFieldLength {
		return 0, fmt.Errorf("field length %d exceeds %d bits", n, maxFieldLength)
	}
	if c.Remaining() < n {
		return 0, ErrInsufficientData
	}
	v := getBits(c.buf, c.pos, n)
	c.pos += n
	return v, nil
}

// ReadInt reads an n-bit two's complement signed integer.
func (c *Cursor) ReadInt(n uint) (int64, error) {
	if n > maxFieldLength {
		return 0, fmt.Errorf("field length %d exceeds %d bits", n, maxFieldLength)
	}
	if c.Remaining() < n {
		return 0, ErrInsufficientData
	}
	v := signExtend(getBits(c.buf, c.pos, n), n)
	c.pos += n
	return v, nil
}

// ReadBool reads a single bit.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint(1)
	return v == 1, err
}

// ReadBits reads n bits and returns them packed into bytes, most
// significant bit first.  The last byte is padded with zero bits.
func (c *Cursor) ReadBits(n uint) ([]byte, error) {
	if c.Remaining() < n {
		return nil, ErrInsufficientData
	}
	out := make([]byte, utils.BytesForBits(n))
	copyBits(out, 0, c.buf, c.pos, n)
	c.pos += n
	return out, nil
}

// SubRange returns a new cursor over bits [from, to) of this one, with its
// read position at the start.
func (c Cursor) SubRange(from, to uint) (Cursor, error) {
	if from > to || to > c.length {
		return Cursor{}, fmt.Errorf("range %d-%d outside %d bits: %w", from, to, c.length, ErrInsufficientData)
	}
	n := to - from
	out := make([]byte, utils.BytesForBits(n))
	copyBits(out, 0, c.buf, from, n)
	return Cursor{buf: out, length: n}, nil
}

// Append adds the first nbits bits of bits to the end of the cursor.  The
// read position doesn't change.
func (c *Cursor) Append(bits []byte, nbits uint) {
	if max := uint(len(bits)) * 8; nbits > max {
		nbits = max
	}
	newLength := c.length + nbits
	needed := utils.BytesForBits(newLength)
	// Always build a new slice so that copies of the cursor taken earlier
	// keep seeing the same bits.
	buf := make([]byte, needed)
	copy(buf, c.buf[:utils.BytesForBits(c.length)])
	copyBits(buf, c.length, bits, 0, nbits)
	c.buf = buf
	c.length = newLength
}

// AnySet returns true if any bit from the read position onwards is set.
func (c Cursor) AnySet() bool {
	for i := c.pos; i < c.length; {
		if i%8 == 0 && c.length-i >= 8 {
			if c.buf[i/8] != 0 {
				return true
			}
			i += 8
			continue
		}
		if getBits(c.buf, i, 1) == 1 {
			return true
		}
		i++
	}
	return false
}

// Bytes returns the bits from start up to the read position, packed MSB
// first, and the number of bits.
func (c Cursor) Bytes(start uint) ([]byte, uint) {
	if start > c.pos {
		start = c.pos
	}
	n := c.pos - start
	out := make([]byte, utils.BytesForBits(n))
	copyBits(out, 0, c.buf, start, n)
	return out, n
}

// copyBits copies n bits from src starting at srcPos into dst starting at
// dstPos.
func copyBits(dst []byte, dstPos uint, src []byte, srcPos uint, n uint) {
	for n > 0 {
		chunk := n
		if chunk > maxFieldLength {
			chunk = maxFieldLength
		}
		putBits(dst, dstPos, chunk, getBits(src, srcPos, chunk))
		srcPos += chunk
		dstPos += chunk
		n -= chunk
	}
}
