// The utils package contains general-purpose functions and constants for the
// SSR correction software.
package utils

import (
	"math/bits"
)

// MessageNumberCSSR is the RTCM message number that carries Compact SSR.
// Every CSSR message starts with this value in its first 12 bits.
const MessageNumberCSSR = 4073

// StartOfMessageFrame is the value of the byte that starts an RTCM3 message
// frame.
const StartOfMessageFrame byte = 0xd3

// LeaderLengthBytes is the length of the RTCM3 message frame leader in bytes.
const LeaderLengthBytes = 3

// LeaderLengthBits is the length of the RTCM3 message frame leader in bits.
const LeaderLengthBits = LeaderLengthBytes * 8

// CRCLengthBytes is the length of the Cyclic Redundancy check value in bytes.
const CRCLengthBytes = 3

// CRCLengthBits is the length of the Cyclic Redundancy check value in bits.
const CRCLengthBits = CRCLengthBytes * 8

// MaxRTCMPayloadBytes is the largest payload that the 10-bit length field of
// an RTCM3 frame can describe.
const MaxRTCMPayloadBytes = 1023

// QZSS L6 frame layout.  A frame is 250 bytes: a four byte sync word, the
// PRN, the message type ID, 212 bytes of data and 32 bytes of Reed-Solomon
// parity.

// L6SyncWord is the preamble that starts every L6 frame.
const L6SyncWord uint32 = 0x1acffc1d

// L6FrameLengthBytes is the length of a whole L6 frame, sync word included.
const L6FrameLengthBytes = 250

// L6DataLengthBytes is the length of the data part of an L6 frame.
const L6DataLengthBytes = 212

// L6ParityLengthBytes is the length of the Reed-Solomon parity at the end of
// an L6 frame.
const L6ParityLengthBytes = 32

// L6DataPartBits is the number of payload bits in the data part, which is
// the data less the leading alert flag.
const L6DataPartBits = L6DataLengthBytes*8 - 1

// Galileo E6B layout.

// HASPageBits is the length of a HAS page: a 24-bit page header followed by
// the 424-bit payload.
const HASPageBits = 448

// HASPageBytes is HASPageBits in bytes.
const HASPageBytes = HASPageBits / 8

// HASPayloadBytes is the length of the page payload, the part that carries
// encoded message data.
const HASPayloadBytes = 53

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n uint) uint {
	return (n + 7) / 8
}

// CountSetBits returns the number of bits that are set in the bottom len
// bits of a bitmap.
func CountSetBits(bitmap uint64, len uint) uint {
	if len < 64 {
		bitmap &= 1<<len - 1
	}
	return uint(bits.OnesCount64(bitmap))
}
