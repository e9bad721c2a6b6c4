// The reassembler package collects the data parts of QZSS L6 frames into
// a buffer and decodes CSSR messages from it.
//
// CSSR messages are packed end to end into a subframe of up to five L6
// data parts, and a message can start in one data part and finish in the
// next.  The first data part of each subframe is flagged.  The
// reassembler waits for a subframe that starts with a mask message
// (subtype 1), since nothing else can be decoded without a mask.  From
// then on it appends each data part to its buffer and decodes as many
// whole messages as the buffer holds.  A message that isn't complete is
// left in the buffer until the next data part arrives.  The zero bits
// that pad out the end of a subframe end it.
package reassembler

import (
	"errors"
	"log/slog"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/cssr"
)

// MaxDataParts is the part number at which a subframe is abandoned.  A
// subframe has at most five data parts.
const MaxDataParts = 6

// State is the state of the reassembler.
type State int

const (
	// Syncing means waiting for a subframe that starts with a mask.
	Syncing State = iota
	// Active means a mask has been seen and data parts are being decoded.
	Active
)

// String returns the name of the state.
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "syncing"
}

// Reassembler turns a stream of data parts into CSSR messages.  Each input
// stream needs its own Reassembler.  It's not safe for concurrent use.
type Reassembler struct {
	decoder  *cssr.Decoder
	logger   *slog.Logger
	state    State
	buf      bitcursor.Cursor
	subframe int
	part     int
}

// New creates a Reassembler.  If decoder is nil a new one is created.  If
// logger is nil the default logger is used.
func New(decoder *cssr.Decoder, logger *slog.Logger) *Reassembler {
	if logger == nil {
		logger = slog.Default()
	}
	if decoder == nil {
		decoder = cssr.New(logger)
	}
	return &Reassembler{decoder: decoder, logger: logger}
}

// State returns the current state.
func (r *Reassembler) State() State {
	return r.state
}

// Subframe returns the subframe number, counting from 1 at the last mask
// message.  It's 0 while syncing.
func (r *Reassembler) Subframe() int {
	return r.subframe
}

// Part returns the number of the last data part within its subframe.
func (r *Reassembler) Part() int {
	return r.part
}

// Statistics returns the decoder's bit statistics.
func (r *Reassembler) Statistics() correction.Statistics {
	return r.decoder.Statistics()
}

// Decoder returns the CSSR decoder.
func (r *Reassembler) Decoder() *cssr.Decoder {
	return r.decoder
}

// Buffered returns the number of bits waiting to be decoded.
func (r *Reassembler) Buffered() uint {
	return r.buf.Remaining()
}

// clear empties the buffer.
func (r *Reassembler) clear() {
	r.buf = bitcursor.Cursor{}
}

// Push adds a data part of nbits bits.  first is true if the part starts a
// subframe.  It returns the messages that could be decoded.  An error
// means that the buffer held something that isn't a valid CSSR message.
// Its length is unknown, so the messages after it can't be found and the
// buffer is emptied.  Messages decoded before the error are still
// returned.
func (r *Reassembler) Push(part []byte, nbits uint, first bool) ([]*correction.Message, error) {
	partCursor := bitcursor.NewWithLength(part, nbits)

	if first {
		r.part = 1
		peek := partCursor
		header, err := cssr.DecodeHeader(&peek)
		switch {
		case err != nil:
			r.logger.Debug("first data part has no CSSR header", "error", err)
			r.clear()
		case header.Subtype == cssr.SubtypeMask:
			r.buf = partCursor
			r.state = Active
			r.subframe = 1
		case r.state == Active:
			// The buffer is normally empty here, since padding ends a
			// subframe.  Bits left over are a message whose last part was
			// lost.
			if r.buf.AnySet() {
				r.logger.Debug("new subframe after an unfinished message", "subframe", r.subframe, "bits", r.buf.Remaining())
			}
			r.buf.Append(part, nbits)
			r.subframe++
		default:
			// Still waiting for a mask.
			r.clear()
		}
	} else {
		if r.state != Active {
			return nil, nil
		}
		r.part++
		if r.part == MaxDataParts {
			r.logger.Warn("too many data parts in subframe", "subframe", r.subframe, "part", r.part)
			r.state = Syncing
			r.subframe = 0
			r.part = 0
			r.clear()
			return nil, nil
		}
		r.buf.Append(part, nbits)
	}

	return r.decodeAll()
}

// decodeAll decodes messages from the buffer until it runs out.
func (r *Reassembler) decodeAll() ([]*correction.Message, error) {
	var messages []*correction.Message
	for {
		msg, err := r.decoder.Decode(&r.buf)
		switch {
		case err == nil:
			messages = append(messages, msg)
		case errors.Is(err, bitcursor.ErrInsufficientData):
			// Wait for the next data part.
			return messages, nil
		case errors.Is(err, cssr.ErrNullData):
			// Padding: the subframe is finished.
			r.clear()
			return messages, nil
		default:
			r.logger.Warn("CSSR decode failed", "subframe", r.subframe, "part", r.part, "error", err)
			r.clear()
			return messages, err
		}
	}
}
