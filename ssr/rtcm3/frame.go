// The rtcm3 package wraps decoded CSSR messages in RTCM3 message frames so
// that they can be passed to a GNSS receiver or an NTRIP caster.
//
// An RTCM3 frame is a three byte leader, the message and a three byte
// Cyclic Redundancy Check (CRC).  The leader is 0xd3, six reserved zero bits
// and a ten bit message length in bytes.  The message is padded with zero
// bits to a whole number of bytes.  The CRC is CRC-24Q computed over the
// leader and the message.
package rtcm3

import (
	"errors"
	"fmt"
	"io"

	"github.com/goblimey/go-crc24q/crc24q"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrMessageTooLong is returned when a message won't fit into a frame.
var ErrMessageTooLong = errors.New("message too long for an RTCM3 frame")

// ErrNotFrame is returned by Parse when the data doesn't start with the
// RTCM3 frame leader or the length doesn't match.
var ErrNotFrame = errors.New("not an RTCM3 message frame")

// ErrCRC is returned when the CRC at the end of a frame is wrong.
var ErrCRC = errors.New("RTCM3 CRC check failed")

// Frame wraps the first nbits of bits in an RTCM3 frame.
func Frame(bits []byte, nbits uint) ([]byte, error) {
	length := utils.BytesForBits(nbits)
	if length > utils.MaxRTCMPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLong, length)
	}
	if uint(len(bits)) < length {
		return nil, fmt.Errorf("%w: %d bits in %d bytes", ErrNotFrame, nbits, len(bits))
	}

	var w bitcursor.Writer
	w.PutUint(8, uint64(utils.StartOfMessageFrame)).
		PutUint(6, 0).
		PutUint(10, uint64(length)).
		PutBits(bits, nbits)
	// Bytes pads the message with zero bits.
	frame, _ := w.Bytes()

	crc := crc24q.Hash(frame)
	frame = append(frame, crc24q.HiByte(crc), crc24q.MiByte(crc), crc24q.LoByte(crc))
	return frame, nil
}

// FrameMessage wraps a decoded CSSR message in an RTCM3 frame.
func FrameMessage(m *correction.Message) ([]byte, error) {
	return Frame(m.Bits, m.BitLength)
}

// CheckCRC checks the CRC of a message frame and returns an error
// if the calculated CRC does not match the CRC bytes in the frame.
func CheckCRC(frame []byte) error {
	if len(frame) < utils.LeaderLengthBytes+utils.CRCLengthBytes {
		return fmt.Errorf("%w: cannot check CRC, frame is too short", ErrNotFrame)
	}
	// The CRC is the last three bytes of the message frame.
	// The rest of the frame should produce the same CRC.
	startOfCRC := len(frame) - utils.CRCLengthBytes
	crcHiByte := frame[startOfCRC]
	crcMiByte := frame[startOfCRC+1]
	crcLoByte := frame[startOfCRC+2]

	newCRC := crc24q.Hash(frame[:startOfCRC])

	if crc24q.HiByte(newCRC) != crcHiByte ||
		crc24q.MiByte(newCRC) != crcMiByte ||
		crc24q.LoByte(newCRC) != crcLoByte {

		return fmt.Errorf("%w: given %02x %02x %02x, calculated %02x %02x %02x",
			ErrCRC,
			crcHiByte, crcMiByte, crcLoByte,
			crc24q.HiByte(newCRC), crc24q.MiByte(newCRC), crc24q.LoByte(newCRC),
		)
	}

	return nil
}

// Parse checks an RTCM3 frame and returns the message it carries.
func Parse(frame []byte) ([]byte, error) {
	if len(frame) < utils.LeaderLengthBytes+utils.CRCLengthBytes ||
		frame[0] != utils.StartOfMessageFrame {
		return nil, ErrNotFrame
	}
	// Six reserved bits, then a 10-bit length.
	length := int(frame[1]&0x03)<<8 | int(frame[2])
	if len(frame) != utils.LeaderLengthBytes+length+utils.CRCLengthBytes {
		return nil, fmt.Errorf("%w: length field %d, frame is %d bytes", ErrNotFrame, length, len(frame))
	}
	if err := CheckCRC(frame); err != nil {
		return nil, err
	}
	return frame[utils.LeaderLengthBytes : utils.LeaderLengthBytes+length], nil
}

// MessageNumber returns the message number from the first 12 bits of a
// frame's message.
func MessageNumber(message []byte) uint {
	if len(message) < 2 {
		return 0
	}
	return uint(message[0])<<4 | uint(message[1]>>4)
}

// Writer writes framed CSSR messages to an io.Writer.  It's not safe for
// concurrent use.
type Writer struct {
	out    io.Writer
	frames uint64
}

// NewWriter creates a Writer.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Frames returns the number of frames written.
func (w *Writer) Frames() uint64 {
	return w.frames
}

// WriteMessage frames the message and writes it.
func (w *Writer) WriteMessage(m *correction.Message) error {
	frame, err := FrameMessage(m)
	if err != nil {
		return err
	}
	if _, err := w.out.Write(frame); err != nil {
		return err
	}
	w.frames++
	return nil
}
