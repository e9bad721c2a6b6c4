package bitcursor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRead checks reading a sequence of signed and unsigned fields.
func TestRead(t *testing.T) {
	// 0xfe9 is 4073, followed by subtype 1, then -2 in 4 bits and 5 in 8 bits.
	var w Writer
	w.PutUint(12, 4073).PutUint(4, 1).PutInt(4, -2).PutUint(8, 5)
	b, n := w.Bytes()
	c := NewWithLength(b, n)

	if c.Len() != 28 {
		t.Fatalf("want 28 bits, got %d", c.Len())
	}

	msgnum, err := c.ReadUint(12)
	if err != nil || msgnum != 4073 {
		t.Errorf("want 4073, got %d %v", msgnum, err)
	}
	subtype, _ := c.ReadUint(4)
	if subtype != 1 {
		t.Errorf("want 1, got %d", subtype)
	}
	v, _ := c.ReadInt(4)
	if v != -2 {
		t.Errorf("want -2, got %d", v)
	}
	if c.Position() != 20 || c.Remaining() != 8 {
		t.Errorf("want position 20 remaining 8, got %d %d", c.Position(), c.Remaining())
	}
	u, _ := c.ReadUint(8)
	if u != 5 {
		t.Errorf("want 5, got %d", u)
	}
}

// TestInsufficientData checks that a read which runs off the end fails
// and leaves the position alone.
func TestInsufficientData(t *testing.T) {
	c := New([]byte{0xff, 0x00})
	c.ReadUint(10)

	var testData = []struct {
		Description string
		Read        func(c *Cursor) error
	}{
		{"uint", func(c *Cursor) error { _, err := c.ReadUint(7); return err }},
		{"int", func(c *Cursor) error { _, err := c.ReadInt(7); return err }},
		{"bits", func(c *Cursor) error { _, err := c.ReadBits(7); return err }},
		{"skip", func(c *Cursor) error { return c.Skip(7) }},
	}

	for _, td := range testData {
		err := td.Read(&c)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%s: want ErrInsufficientData, got %v", td.Description, err)
		}
		if c.Position() != 10 {
			t.Errorf("%s: want position 10, got %d", td.Description, c.Position())
		}
	}

	// Reading exactly what remains succeeds.
	if _, err := c.ReadUint(6); err != nil {
		t.Errorf("want no error, got %v", err)
	}
}

// TestAppend checks that appending bits keeps the read position and that
// copies taken before the append don't change.
func TestAppend(t *testing.T) {
	var w Writer
	w.PutUint(5, 0x1f)
	c := w.Cursor()
	c.ReadUint(3)

	saved := c

	// Append 0b101 to give 11111101.
	c.Append([]byte{0xa0}, 3)

	if c.Len() != 8 {
		t.Errorf("want 8 bits, got %d", c.Len())
	}
	if c.Position() != 3 {
		t.Errorf("want position 3, got %d", c.Position())
	}
	got, err := c.ReadUint(5)
	if err != nil || got != 0x1d {
		t.Errorf("want 1d, got %x %v", got, err)
	}

	if saved.Len() != 5 || saved.Remaining() != 2 {
		t.Errorf("copy changed: len %d remaining %d", saved.Len(), saved.Remaining())
	}
}

// TestAnySet checks null padding detection.
func TestAnySet(t *testing.T) {
	var testData = []struct {
		Description string
		Buf         []byte
		Len         uint
		Skip        uint
		Want        bool
	}{
		{"empty", nil, 0, 0, false},
		{"all zero", []byte{0, 0, 0}, 24, 0, false},
		{"set bit beyond length", []byte{0, 0x01}, 15, 0, false},
		{"last bit set", []byte{0, 0x01}, 16, 0, true},
		{"set bit already read", []byte{0x80, 0}, 16, 1, false},
		{"unaligned", []byte{0x00, 0x20}, 16, 3, true},
	}

	for _, td := range testData {
		c := NewWithLength(td.Buf, td.Len)
		c.Skip(td.Skip)
		got := c.AnySet()
		if got != td.Want {
			t.Errorf("%s: want %v, got %v", td.Description, td.Want, got)
		}
	}
}

// TestSubRangeAndBytes checks SubRange, ReadBits and Bytes.
func TestSubRangeAndBytes(t *testing.T) {
	c := New([]byte{0x12, 0x34, 0x56})

	sub, err := c.SubRange(4, 20)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := sub.ReadUint(16)
	if v != 0x2345 {
		t.Errorf("want 2345, got %x", v)
	}

	if _, err := c.SubRange(20, 25); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("want ErrInsufficientData, got %v", err)
	}

	c.Skip(4)
	bits, err := c.ReadBits(12)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(bits, []byte{0x23, 0x40}) {
		t.Errorf("want 23 40, got %x", bits)
	}

	consumed, n := c.Bytes(0)
	if n != 16 || !cmp.Equal(consumed, []byte{0x12, 0x34}) {
		t.Errorf("want 1234/16, got %x/%d", consumed, n)
	}
}
