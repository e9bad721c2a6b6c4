package bitcursor

import (
	"github.com/goblimey/go-ssr/ssr/utils"
)

// Writer builds a string of bits field by field.  It's the mirror image of
// Cursor.
type Writer struct {
	buf    []byte
	length uint
}

// grow makes room for n more bits.
func (w *Writer) grow(n uint) {
	needed := utils.BytesForBits(w.length + n)
	for uint(len(w.buf)) < needed {
		w.buf = append(w.buf, 0)
	}
}

// PutUint writes the bottom n bits of v.
func (w *Writer) PutUint(n uint, v uint64) *Writer {
	w.grow(n)
	putBits(w.buf, w.length, n, v)
	w.length += n
	return w
}

// PutInt writes v as an n-bit two's complement integer.
func (w *Writer) PutInt(n uint, v int64) *Writer {
	return w.PutUint(n, uint64(v))
}

// PutBool writes a single bit.
func (w *Writer) PutBool(b bool) *Writer {
	if b {
		return w.PutUint(1, 1)
	}
	return w.PutUint(1, 0)
}

// PutBits writes the first n bits of bits.
func (w *Writer) PutBits(bits []byte, n uint) *Writer {
	w.grow(n)
	copyBits(w.buf, w.length, bits, 0, n)
	w.length += n
	return w
}

// Len returns the number of bits written.
func (w *Writer) Len() uint {
	return w.length
}

// Bytes returns the bits written so far, padded with zero bits to a whole
// number of bytes, and the number of bits.
func (w *Writer) Bytes() ([]byte, uint) {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out, w.length
}

// Cursor returns a cursor over the bits written so far.
func (w *Writer) Cursor() Cursor {
	b, n := w.Bytes()
	return NewWithLength(b, n)
}
