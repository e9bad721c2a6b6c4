// The has package decodes the Galileo High Accuracy Service (HAS)
// corrections broadcast on the E6B signal.
//
// A HAS message is too big for one E6B page, so it's cut into MS rows of
// 53 bytes and Reed-Solomon encoded into up to 255 pages, each of which is
// broadcast with a 24-bit header:
//
//	HAS status       2 bits
//	reserved         2 bits
//	message type     2 bits  always 1
//	message ID       5 bits
//	message size     5 bits  MS-1
//	page ID          8 bits  1-255
//
// Any MS pages with the same message ID are enough to recover the message.
// The PageStore collects them and Recover rebuilds the message, which the
// Decoder then turns into corrections.  Stream chains the three together.
//
// Pages that carry no data are marked by 0xaf3bc3 in the header position
// and are dropped.
package has

import (
	"errors"
	"fmt"

	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrDummyPage is returned by ParsePage for a dummy page.
var ErrDummyPage = errors.New("dummy page")

// ErrMalformedHeader is returned by ParsePage when the page header can't be
// right.
var ErrMalformedHeader = errors.New("malformed HAS page header")

// dummyPageMarker is the value of the first 24 bits of a dummy page.
const dummyPageMarker = 0xaf3bc3

// SupportedMessageType is the only message type defined for HAS.
const SupportedMessageType = 1

// Status is the HAS status field of a page.
type Status uint

var statusNames = [4]string{"Test", "Operational", "Reserved", "Don't use"}

// String returns the name of the status.
func (s Status) String() string {
	if s >= Status(len(statusNames)) {
		return fmt.Sprintf("status %d", uint(s))
	}
	return statusNames[s]
}

// Page is one E6B HAS page.
type Page struct {
	Status      Status
	MessageType uint
	MessageID   uint
	// MessageSize is the number of pages needed to recover the message,
	// 1-32.
	MessageSize uint
	PageID      uint
	// Payload is the 53 bytes of encoded message.
	Payload []byte
}

// ParsePage parses a 56-byte HAS page.  The payload of the result is a
// copy.
func ParsePage(raw []byte) (*Page, error) {
	if len(raw) != utils.HASPageBytes {
		return nil, fmt.Errorf("%w: page is %d bytes, want %d",
			ErrMalformedHeader, len(raw), utils.HASPageBytes)
	}
	// The header is the first three bytes.
	header := uint(raw[0])<<16 | uint(raw[1])<<8 | uint(raw[2])
	if header == dummyPageMarker {
		return nil, ErrDummyPage
	}

	page := Page{
		Status:      Status(header >> 22),
		MessageType: header >> 18 & 0x3,
		MessageID:   header >> 13 & 0x1f,
		MessageSize: header>>8&0x1f + 1,
		PageID:      header & 0xff,
		Payload:     append([]byte(nil), raw[3:]...),
	}
	if page.PageID == 0 {
		return nil, fmt.Errorf("%w: page ID 0", ErrMalformedHeader)
	}
	return &page, nil
}

// String returns a one-line summary of the page header.
func (p *Page) String() string {
	return fmt.Sprintf("HASS=%s(%d) MT=%d MID=%2d MS=%2d PID=%3d",
		p.Status, uint(p.Status), p.MessageType, p.MessageID, p.MessageSize, p.PageID)
}
