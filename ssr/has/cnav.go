package has

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goblimey/go-crc24q/crc24q"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// An E6B C/NAV page is 492 bits: 14 reserved bits, the 448-bit HAS page,
// a 24-bit CRC and 6 tail bits.  Receivers deliver it in 61 or 62 bytes.

// ErrCRC is returned when the CRC of a C/NAV page is wrong.
var ErrCRC = errors.New("E6B C/NAV page CRC error")

// ErrNotCNAV is returned by ParseCNAV for a line that isn't a $CNAV
// sentence.
var ErrNotCNAV = errors.New("not a $CNAV sentence")

// ErrShortCNAV is returned when a C/NAV page is too short to hold a HAS
// page and its CRC.
var ErrShortCNAV = errors.New("C/NAV page too short")

const (
	cnavReservedBits = 14
	cnavCRCBits      = 24
	// cnavMinBytes is the number of bytes needed to hold the reserved bits,
	// the HAS page and the CRC.
	cnavMinBytes = (cnavReservedBits + utils.HASPageBits + cnavCRCBits + 7) / 8
)

// CNAVRecordBytes is the size of a binary C/NAV record: a one-byte
// satellite ID followed by the page padded to 62 bytes.
const CNAVRecordBytes = 63

// CNAVPage is an E6B C/NAV page taken from receiver output.
type CNAVPage struct {
	// SatelliteID is the Galileo satellite number.
	SatelliteID uint
	// Raw is the whole C/NAV page.
	Raw []byte
}

// ParseCNAV parses a line of Pocket SDR output such as
//
//	$CNAV,1.000,5,11,<hex>
//
// where the fourth field is the satellite ID and the fifth is the C/NAV
// page in hex.
func ParseCNAV(line string) (*CNAVPage, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$CNAV") {
		return nil, ErrNotCNAV
	}
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: %d fields", ErrNotCNAV, len(fields))
	}
	satID, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: satellite ID %q", ErrNotCNAV, fields[3])
	}
	raw, err := hex.DecodeString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCNAV, err)
	}
	if len(raw) < cnavMinBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortCNAV, len(raw))
	}
	return &CNAVPage{SatelliteID: uint(satID), Raw: raw}, nil
}

// ParseBinaryRecord parses a 63-byte binary record: the satellite ID then
// the C/NAV page.
func ParseBinaryRecord(record []byte) (*CNAVPage, error) {
	if len(record) != CNAVRecordBytes {
		return nil, fmt.Errorf("%w: record is %d bytes, want %d", ErrShortCNAV, len(record), CNAVRecordBytes)
	}
	return &CNAVPage{SatelliteID: uint(record[0]), Raw: append([]byte(nil), record[1:]...)}, nil
}

// HASPage returns the 56-byte HAS page from the C/NAV page.
func (p *CNAVPage) HASPage() ([]byte, error) {
	c := bitcursor.New(p.Raw)
	if err := c.Skip(cnavReservedBits); err != nil {
		return nil, ErrShortCNAV
	}
	page, err := c.ReadBits(utils.HASPageBits)
	if err != nil {
		return nil, ErrShortCNAV
	}
	return page, nil
}

// CheckCRC checks the CRC-24Q of the page.  The CRC covers the reserved
// bits and the HAS page, 462 bits, which are padded on the left with two
// zero bits to make whole bytes.
func (p *CNAVPage) CheckCRC() error {
	const covered = cnavReservedBits + utils.HASPageBits
	c := bitcursor.New(p.Raw)
	data, err := c.ReadBits(covered)
	if err != nil {
		return ErrShortCNAV
	}
	want, err := c.ReadUint(cnavCRCBits)
	if err != nil {
		return ErrShortCNAV
	}

	// Shift the covered bits right by two.
	var w bitcursor.Writer
	w.PutUint(2, 0).PutBits(data, covered)
	padded, _ := w.Bytes()

	got := crc24q.Hash(padded)
	if uint64(got) != want {
		return fmt.Errorf("%w: got %06x, want %06x", ErrCRC, got, want)
	}
	return nil
}
