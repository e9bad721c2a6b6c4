package rtcm3

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/goblimey/go-ssr/ssr/correction"
)

// A CSSR message frame.  The message is 26 bits, fe 91 23 then two bits
// of the last byte, padded with zeros.
const cssrFrame = "d30004fe912340432be6"

// TestFrame checks that Frame produces the right leader, padding and CRC.
func TestFrame(t *testing.T) {
	var testData = []struct {
		description string
		bits        []byte
		nbits       uint
		want        string
	}{
		{"empty", nil, 0, "d3000047ea4b"},
		{"CSSR", []byte{0xfe, 0x91, 0x23, 0x7f}, 26, cssrFrame},
		{"CSSR already padded", []byte{0xfe, 0x91, 0x23, 0x40}, 32, cssrFrame},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			got, err := Frame(td.bits, td.nbits)
			if err != nil {
				t.Fatal(err)
			}
			if hex.EncodeToString(got) != td.want {
				t.Errorf("want %s, got %x", td.want, got)
			}
			// The result must pass the CRC check.
			if err := CheckCRC(got); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestFrameErrors checks the errors from Frame.
func TestFrameErrors(t *testing.T) {
	if _, err := Frame(make([]byte, 1024), 1024*8); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("want ErrMessageTooLong, got %v", err)
	}
	// The largest message that fits.
	if _, err := Frame(make([]byte, 1023), 1023*8); err != nil {
		t.Errorf("1023 bytes: %v", err)
	}
	if _, err := Frame([]byte{0xff}, 16); !errors.Is(err, ErrNotFrame) {
		t.Errorf("want ErrNotFrame, got %v", err)
	}
}

// TestParse checks that Parse returns the message and spots bad frames.
func TestParse(t *testing.T) {
	good, _ := hex.DecodeString(cssrFrame)

	badCRC := append([]byte(nil), good...)
	badCRC[len(badCRC)-1] ^= 1

	badLeader := append([]byte(nil), good...)
	badLeader[0] = 0xd2

	long := append(append([]byte(nil), good...), 0)

	var testData = []struct {
		description string
		frame       []byte
		want        error
	}{
		{"good", good, nil},
		{"bad CRC", badCRC, ErrCRC},
		{"bad leader", badLeader, ErrNotFrame},
		{"wrong length", long, ErrNotFrame},
		{"too short", good[:4], ErrNotFrame},
		{"nil", nil, ErrNotFrame},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			got, err := Parse(td.frame)
			if !errors.Is(err, td.want) {
				t.Fatalf("want %v, got %v", td.want, err)
			}
			if td.want != nil {
				return
			}
			if !bytes.Equal(got, []byte{0xfe, 0x91, 0x23, 0x40}) {
				t.Errorf("got message %x", got)
			}
			if MessageNumber(got) != 4073 {
				t.Errorf("want message number 4073, got %d", MessageNumber(got))
			}
		})
	}
}

// TestWriter checks that the Writer frames messages and counts them.
func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	m := &correction.Message{Bits: []byte{0xfe, 0x91, 0x23, 0x7f}, BitLength: 26}
	for i := 0; i < 2; i++ {
		if err := w.WriteMessage(m); err != nil {
			t.Fatal(err)
		}
	}
	if w.Frames() != 2 {
		t.Errorf("want 2 frames, got %d", w.Frames())
	}
	want := cssrFrame + cssrFrame
	if hex.EncodeToString(buf.Bytes()) != want {
		t.Errorf("want %s, got %x", want, buf.Bytes())
	}
}
