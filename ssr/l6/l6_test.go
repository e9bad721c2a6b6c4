package l6

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goblimey/go-ssr/ssr/pushback"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// makeFrame creates a 250-byte frame.  The data bytes are filled with
// fill, after the first byte which is first.
func makeFrame(prn, mtid, first, fill byte) []byte {
	frame := make([]byte, utils.L6FrameLengthBytes)
	copy(frame, syncWord[:])
	frame[4] = prn
	frame[5] = mtid
	frame[6] = first
	for i := 7; i < 6+utils.L6DataLengthBytes; i++ {
		frame[i] = fill
	}
	for i := 6 + utils.L6DataLengthBytes; i < len(frame); i++ {
		frame[i] = 0xee
	}
	return frame
}

// TestParse checks that the fields of the message type ID are decoded.
func TestParse(t *testing.T) {
	var testData = []struct {
		description string
		mtid        byte
		want        Frame
	}{
		{
			"CLAS first part", 0b101_0_0_0_0_1,
			Frame{Vendor: VendorCLAS, Facility: "Hitachi-Ota:0", Service: "Clk/Eph", Extension: "LNAV", SubframeIndicator: true},
		},
		{
			"MADOCA-PPP iono", 0b010_1_1_1_1_0,
			Frame{Vendor: VendorMADOCAPPP, Facility: "Kobe:1", Service: "Ionosph", Extension: "CNAV"},
		},
		{
			"QZNMA", 0b011_0_1_0_0_0,
			Frame{Vendor: VendorQZNMA, Facility: "Hitachi-Ota:1", Service: "Clk/Eph", Extension: "LNAV"},
		},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			frame, err := Parse(makeFrame(199, td.mtid, 0x80, 0))
			if err != nil {
				t.Fatal(err)
			}
			want := td.want
			want.PRN = 199
			want.MTID = td.mtid
			want.Alert = true
			got := *frame
			got.Data = nil
			got.Parity = nil
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("unexpected frame (-want +got):\n%s", diff)
			}
			if len(frame.Data) != utils.L6DataLengthBytes || len(frame.Parity) != utils.L6ParityLengthBytes {
				t.Errorf("want %d data and %d parity bytes, got %d %d",
					utils.L6DataLengthBytes, utils.L6ParityLengthBytes, len(frame.Data), len(frame.Parity))
			}
		})
	}
}

// TestParseErrors checks frames with the wrong length or no sync word.
func TestParseErrors(t *testing.T) {
	good := makeFrame(193, 0xa1, 0, 0)
	noSync := append([]byte(nil), good...)
	noSync[3] = 0x1e

	var testData = []struct {
		description string
		frame       []byte
		want        error
	}{
		{"short", good[:249], ErrFrameLength},
		{"long", append(append([]byte(nil), good...), 0), ErrFrameLength},
		{"no sync", noSync, ErrNoSyncWord},
	}
	for _, td := range testData {
		_, err := Parse(td.frame)
		if !errors.Is(err, td.want) {
			t.Errorf("%s: want %v, got %v", td.description, td.want, err)
		}
	}
}

// TestIsCSSR checks which vendors carry Compact SSR.
func TestIsCSSR(t *testing.T) {
	var testData = []struct {
		vendor Vendor
		want   bool
		name   string
	}{
		{VendorMADOCA, false, "MADOCA"},
		{VendorMADOCAPPP, true, "MADOCA-PPP"},
		{VendorQZNMA, false, "QZNMA"},
		{VendorCLAS, true, "CLAS"},
		{Vendor(0b110), false, "vendor 0b110"},
	}
	for _, td := range testData {
		f := Frame{Vendor: td.vendor}
		if got := f.IsCSSR(); got != td.want {
			t.Errorf("%s: want %v, got %v", td.name, td.want, got)
		}
		if got := td.vendor.String(); got != td.name {
			t.Errorf("want %s, got %s", td.name, got)
		}
	}
}

// TestDataPart checks that the alert bit is dropped from the data.
func TestDataPart(t *testing.T) {
	// Alert bit set, then 0101 0101 ...
	frame, err := Parse(makeFrame(199, 0xa1, 0xaa, 0xaa))
	if err != nil {
		t.Fatal(err)
	}

	bits, n := frame.DataPart()

	if n != 1695 {
		t.Errorf("want 1695 bits, got %d", n)
	}
	if len(bits) != 212 {
		t.Fatalf("want 212 bytes, got %d", len(bits))
	}
	if bits[0] != 0x55 {
		t.Errorf("want 0x55, got 0x%02x", bits[0])
	}
	// The last byte holds seven bits of data.
	if bits[211] != 0x54 {
		t.Errorf("want 0x54, got 0x%02x", bits[211])
	}
}

// TestString checks the one-line summary.
func TestString(t *testing.T) {
	var testData = []struct {
		mtid  byte
		first byte
		want  string
	}{
		{0b101_0_0_0_0_1, 0, "199 Hitachi-Ota:0  CLAS"},
		{0b101_1_1_0_0_1, 0x80, "199 Kobe:1        *CLAS"},
		{0b010_1_0_1_1_0, 0, "199 Kobe:0         MADOCA-PPP (Ionosph CNAV)"},
	}
	for _, td := range testData {
		frame, err := Parse(makeFrame(199, td.mtid, td.first, 0))
		if err != nil {
			t.Fatal(err)
		}
		if got := frame.String(); got != td.want {
			t.Errorf("want %q, got %q", td.want, got)
		}
	}
}

// TestNextFrame checks that frames are found among junk and that a
// partial frame at the end of the input is dropped.
func TestNextFrame(t *testing.T) {
	var input []byte
	input = append(input, 0x1a, 0xcf, 0x00, 0x01) // junk that looks like a sync word
	input = append(input, makeFrame(193, 0xa1, 0, 1)...)
	input = append(input, makeFrame(194, 0xa0, 0, 2)...)
	input = append(input, 'x', 'y')
	input = append(input, makeFrame(195, 0xa0, 0, 3)[:100]...)

	ch := make(chan byte, len(input))
	for _, b := range input {
		ch <- b
	}
	close(ch)
	pb := pushback.New(ch)
	scanner := NewScanner(nil)

	for _, want := range []uint{193, 194} {
		frame, err := scanner.NextFrame(pb)
		if err != nil {
			t.Fatal(err)
		}
		if frame.PRN != want {
			t.Errorf("want PRN %d, got %d", want, frame.PRN)
		}
	}

	_, err := scanner.NextFrame(pb)
	if !errors.Is(err, pushback.ErrDone) {
		t.Errorf("want ErrDone, got %v", err)
	}
	if scanner.Skipped() != 6 {
		t.Errorf("want 6 bytes skipped, got %d", scanner.Skipped())
	}
	if scanner.Truncated() != 1 {
		t.Errorf("want 1 truncated frame, got %d", scanner.Truncated())
	}
}

// TestNextFrameFalseSync checks that a sync word that turns up by chance
// is passed over and that a real frame starting inside the false one is
// still found.
func TestNextFrameFalseSync(t *testing.T) {
	var input []byte
	// PRN 5 is not a QZSS PRN.
	input = append(input, syncWord[:]...)
	input = append(input, 5, 0xa1)
	input = append(input, bytes.Repeat([]byte{'z'}, 10)...)
	input = append(input, makeFrame(199, 0xa1, 0, 7)...)
	// A good PRN but vendor 0.
	input = append(input, syncWord[:]...)
	input = append(input, 195, 0x01)
	input = append(input, makeFrame(194, 0xa0, 0, 8)...)

	ch := make(chan byte, len(input))
	for _, b := range input {
		ch <- b
	}
	close(ch)
	pb := pushback.New(ch)
	scanner := NewScanner(nil)

	var testData = []struct {
		prn  uint
		fill byte
	}{
		{199, 7},
		{194, 8},
	}
	for _, td := range testData {
		frame, err := scanner.NextFrame(pb)
		if err != nil {
			t.Fatal(err)
		}
		if frame.PRN != td.prn {
			t.Errorf("want PRN %d, got %d", td.prn, frame.PRN)
		}
		if frame.Data[1] != td.fill {
			t.Errorf("PRN %d: want data %d, got %d", td.prn, td.fill, frame.Data[1])
		}
	}

	if _, err := scanner.NextFrame(pb); !errors.Is(err, pushback.ErrDone) {
		t.Errorf("want ErrDone, got %v", err)
	}
	if scanner.FalseSyncs() != 2 {
		t.Errorf("want 2 false sync words, got %d", scanner.FalseSyncs())
	}
	// 4+2+10 bytes before the first frame and 4+2 before the second.
	if scanner.Skipped() != 22 {
		t.Errorf("want 22 bytes skipped, got %d", scanner.Skipped())
	}
	if scanner.Truncated() != 0 {
		t.Errorf("want no truncated frames, got %d", scanner.Truncated())
	}
}

// TestPlausible checks which PRNs and vendors are taken as a real frame.
func TestPlausible(t *testing.T) {
	var testData = []struct {
		prn  byte
		mtid byte
		want bool
	}{
		{193, 0xa1, true},
		{211, 0x21, true},
		{199, 0x41, true},
		{199, 0x61, true},
		{192, 0xa1, false},
		{212, 0xa1, false},
		{199, 0x01, false},
		{199, 0x81, false},
		{199, 0xc1, false},
		{199, 0xe1, false},
	}
	for _, td := range testData {
		if got := plausible(makeFrame(td.prn, td.mtid, 0, 0)); got != td.want {
			t.Errorf("PRN %d MTID %#x: want %v, got %v", td.prn, td.mtid, td.want, got)
		}
	}
}

// TestHandleFrames checks that HandleFrames passes on frames and closes the
// output channel at the end of the input.
func TestHandleFrames(t *testing.T) {
	input := append(makeFrame(193, 0xa1, 0, 0), makeFrame(199, 0xa0, 0, 0)...)
	chIn := make(chan byte, len(input))
	for _, b := range input {
		chIn <- b
	}
	close(chIn)
	chOut := make(chan Frame, 10)

	NewScanner(nil).HandleFrames(chIn, chOut)

	var prns []uint
	for f := range chOut {
		prns = append(prns, f.PRN)
	}
	if diff := cmp.Diff([]uint{193, 199}, prns); diff != "" {
		t.Errorf("unexpected PRNs (-want +got):\n%s", diff)
	}
}
