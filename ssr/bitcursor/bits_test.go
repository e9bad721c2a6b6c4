package bitcursor

import (
	"testing"
)

// TestGetBits checks unsigned and signed extraction, including fields that
// straddle bytes.
func TestGetBits(t *testing.T) {
	// 1111 1110  0000 0001  1000 0000
	buf := []byte{0xfe, 0x01, 0x80}

	var testData = []struct {
		Description string
		Pos         uint
		Len         uint
		WantUint    uint64
		WantInt     int64
	}{
		{"whole first byte", 0, 8, 0xfe, -2},
		{"single bit", 0, 1, 1, -1},
		{"zero length", 3, 0, 0, 0},
		{"straddling bytes", 7, 2, 0, 0},
		{"straddling bytes with sign", 15, 2, 3, -1},
		{"positive value", 8, 8, 1, 1},
		{"twelve bits", 4, 12, 0xe01, -511},
		{"three bytes", 0, 24, 0xfe0180, -130688},
	}

	for _, td := range testData {
		gotUint := getBits(buf, td.Pos, td.Len)
		if gotUint != td.WantUint {
			t.Errorf("%s: want %x, got %x", td.Description, td.WantUint, gotUint)
		}
		gotInt := signExtend(gotUint, td.Len)
		if gotInt != td.WantInt {
			t.Errorf("%s: want %d, got %d", td.Description, td.WantInt, gotInt)
		}
	}

	all := []byte{0x80, 0, 0, 0, 0, 0, 0, 1}
	if got := getBits(all, 0, 64); got != 0x8000000000000001 {
		t.Errorf("64 bits: want 8000000000000001, got %x", got)
	}
}

// TestPutBits checks that values written with putBits read back and that
// the bits around them are untouched.
func TestPutBits(t *testing.T) {
	var testData = []struct {
		Pos   uint
		Len   uint
		Value int64
	}{
		{0, 12, 4073},
		{3, 15, -16384},
		{9, 13, 4095},
		{17, 11, -1024},
		{1, 40, 0x8000000001},
		{30, 1, 1},
		{5, 3, 5},
	}

	for _, td := range testData {
		buf := make([]byte, 8)
		putBits(buf, td.Pos, td.Len, uint64(td.Value))
		var got int64
		if td.Value < 0 {
			got = signExtend(getBits(buf, td.Pos, td.Len), td.Len)
		} else {
			got = int64(getBits(buf, td.Pos, td.Len))
		}
		if got != td.Value {
			t.Errorf("pos %d len %d: want %d, got %d", td.Pos, td.Len, td.Value, got)
		}
	}

	buf := []byte{0xff, 0xff}
	putBits(buf, 4, 8, 0)
	if buf[0] != 0xf0 || buf[1] != 0x0f {
		t.Errorf("want f0 0f, got %02x %02x", buf[0], buf[1])
	}
	buf = []byte{0x00, 0x00}
	putBits(buf, 6, 3, 0b111)
	if buf[0] != 0x03 || buf[1] != 0x80 {
		t.Errorf("want 03 80, got %02x %02x", buf[0], buf[1])
	}
}
