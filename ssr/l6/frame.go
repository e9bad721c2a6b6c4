// The l6 package handles the frames broadcast by QZSS satellites on the L6
// frequency.
//
// A frame is 250 bytes long:
//
//	sync word   4 bytes  0x1a 0xcf 0xfc 0x1d
//	PRN         1 byte
//	MTID        1 byte   message type ID
//	data      212 bytes  an alert bit followed by a 1695-bit data part
//	parity     32 bytes  Reed-Solomon parity
//
// The message type ID is split into bit fields:
//
//	bits 7-5  vendor ID
//	bit  4    facility, 0 is Hitachi-Ota and 1 is Kobe
//	bit  3    facility sub-identifier
//	bit  2    service, 0 is Clk/Eph and 1 is Ionosph
//	bit  1    message extension, 0 is LNAV and 1 is CNAV
//	bit  0    subframe indicator, 1 in the first data part of a subframe
//
// CLAS and MADOCA-PPP carry Compact SSR messages in the data parts.  The
// parity is kept but not checked.
package l6

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrFrameLength is returned by Parse when the frame is the wrong length.
var ErrFrameLength = errors.New("L6 frame must be 250 bytes")

// ErrNoSyncWord is returned by Parse when the frame doesn't start with the
// sync word.
var ErrNoSyncWord = errors.New("L6 frame doesn't start with the sync word")

// Vendor identifies the provider of the data in a frame.
type Vendor uint8

const (
	VendorMADOCA    Vendor = 0b001
	VendorMADOCAPPP Vendor = 0b010
	VendorQZNMA     Vendor = 0b011
	VendorCLAS      Vendor = 0b101
)

// String returns the vendor name.
func (v Vendor) String() string {
	switch v {
	case VendorMADOCA:
		return "MADOCA"
	case VendorMADOCAPPP:
		return "MADOCA-PPP"
	case VendorQZNMA:
		return "QZNMA"
	case VendorCLAS:
		return "CLAS"
	default:
		return fmt.Sprintf("vendor 0b%03b", uint8(v))
	}
}

// MarshalText returns the vendor name for JSON.
func (v Vendor) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Frame is a parsed L6 frame.
type Frame struct {
	// PRN is the satellite's PRN number.
	PRN uint
	// MTID is the raw message type ID.
	MTID byte
	// Vendor is taken from the top three bits of the MTID.
	Vendor Vendor
	// Facility is the uplink station, for example "Kobe:1".
	Facility string
	// Service is "Clk/Eph" or "Ionosph".
	Service string
	// Extension is "LNAV" or "CNAV".
	Extension string
	// SubframeIndicator is true in the first data part of a subframe.
	SubframeIndicator bool
	// Alert is the alert flag, the first bit of the data.
	Alert bool
	// Data is the 212 bytes of data, alert bit included.
	Data []byte
	// Parity is the 32 bytes of Reed-Solomon parity.
	Parity []byte
}

// Parse parses a complete 250-byte frame, sync word included.  The data
// and parity of the result are copies.
func Parse(frame []byte) (*Frame, error) {
	if len(frame) != utils.L6FrameLengthBytes {
		return nil, ErrFrameLength
	}
	if !bytes.Equal(frame[:len(syncWord)], syncWord[:]) {
		return nil, ErrNoSyncWord
	}

	const dataStart = 6
	const parityStart = dataStart + utils.L6DataLengthBytes

	mtid := frame[5]
	f := Frame{
		PRN:               uint(frame[4]),
		MTID:              mtid,
		Vendor:            Vendor(mtid >> 5),
		Facility:          facility(mtid),
		Service:           "Clk/Eph",
		Extension:         "LNAV",
		SubframeIndicator: mtid&1 == 1,
		Alert:             frame[dataStart]&0x80 != 0,
		Data:              append([]byte(nil), frame[dataStart:parityStart]...),
		Parity:            append([]byte(nil), frame[parityStart:]...),
	}
	if (mtid>>2)&1 == 1 {
		f.Service = "Ionosph"
	}
	if (mtid>>1)&1 == 1 {
		f.Extension = "CNAV"
	}
	return &f, nil
}

// facility returns the name of the uplink station and its sub-identifier.
func facility(mtid byte) string {
	name := "Hitachi-Ota"
	if (mtid>>4)&1 == 1 {
		name = "Kobe"
	}
	return fmt.Sprintf("%s:%d", name, (mtid>>3)&1)
}

// IsCSSR returns true if the frame's data part carries Compact SSR.
func (f *Frame) IsCSSR() bool {
	return f.Vendor == VendorCLAS || f.Vendor == VendorMADOCAPPP
}

// DataPart returns the 1695 bits of data after the alert bit, packed from
// the most significant bit of the first byte, and the number of bits.
func (f *Frame) DataPart() ([]byte, uint) {
	c := bitcursor.New(f.Data)
	if err := c.Skip(1); err != nil {
		return nil, 0
	}
	bits, err := c.ReadBits(utils.L6DataPartBits)
	if err != nil {
		return nil, 0
	}
	return bits, utils.L6DataPartBits
}

// String returns a one-line summary of the frame, for example
// "199 Hitachi-Ota:0   CLAS" with an asterisk before the vendor if the
// alert flag is set.
func (f *Frame) String() string {
	alert := " "
	if f.Alert {
		alert = "*"
	}
	s := fmt.Sprintf("%d %-13s %s%s", f.PRN, f.Facility, alert, f.Vendor)
	if f.Vendor == VendorMADOCAPPP {
		s += fmt.Sprintf(" (%s %s)", f.Service, f.Extension)
	}
	return s
}
