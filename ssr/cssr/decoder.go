// The cssr package decodes Compact SSR messages, as broadcast by QZSS on
// the L6 signal (CLAS and MADOCA-PPP).
//
// A CSSR message is RTCM message number 4073 with a 4-bit subtype.
// Subtype 1 carries the mask, which says which satellites and signals
// the other subtypes carry values for.  The other subtypes send their
// values in mask order without saying which satellite or signal each
// value belongs to, so they can't be decoded until a mask has been seen.
//
// A Decoder holds the current mask and the bit statistics.  Decode
// consumes one message from a bit cursor.  If the cursor doesn't hold the
// whole message, Decode returns bitcursor.ErrInsufficientData and changes
// nothing, so the caller can add more bits and call it again.
package cssr

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/mask"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrNullData is returned when the rest of the buffer has no bits set.
// The transmitter pads the end of a subframe with zeros.
var ErrNullData = errors.New("null data")

// ErrUnrecognizedMessageNumber is returned when the message number isn't
// 4073.
var ErrUnrecognizedMessageNumber = errors.New("unrecognized message number")

// ErrUnsupportedSubtype is returned for subtype 0 and subtypes above 12.
var ErrUnsupportedSubtype = errors.New("unsupported subtype")

// ErrMaskNotEstablished is returned for a message that needs a mask when
// no subtype 1 message has been seen.
var ErrMaskNotEstablished = errors.New("mask not established")

// Field lengths in the header.
const (
	lenMessageNumber   = 12
	lenSubtype         = 4
	lenEpoch           = 20
	lenHourlyEpoch     = 12
	lenInterval        = 4
	lenMultipleMessage = 1
	lenIOD             = 4
)

// The subtypes.
const (
	SubtypeMask          = 1
	SubtypeOrbit         = 2
	SubtypeClock         = 3
	SubtypeCodeBias      = 4
	SubtypePhaseBias     = 5
	SubtypeCodePhaseBias = 6
	SubtypeURA           = 7
	SubtypeSTEC          = 8
	SubtypeGrid          = 9
	SubtypeServiceInfo   = 10
	SubtypeOrbitClock    = 11
	SubtypeAtmosphere    = 12
)

// category says which statistics count the per-unit bits of a subtype.
type category int

const (
	categoryOther category = iota
	categorySatellite
	categorySignal
)

var subtypeCategory = map[uint]category{
	SubtypeOrbit:         categorySatellite,
	SubtypeClock:         categorySatellite,
	SubtypeCodeBias:      categorySignal,
	SubtypePhaseBias:     categorySignal,
	SubtypeCodePhaseBias: categorySignal,
	SubtypeURA:           categorySatellite,
	SubtypeSTEC:          categorySatellite,
	SubtypeGrid:          categoryOther,
	SubtypeServiceInfo:   categoryOther,
	SubtypeOrbitClock:    categorySatellite,
	SubtypeAtmosphere:    categorySatellite,
}

// Decoder decodes a stream of CSSR messages.  It's not safe for concurrent
// use.  Each input stream needs its own Decoder.
type Decoder struct {
	mask   *mask.Context
	stats  correction.Statistics
	logger *slog.Logger
}

// New creates a Decoder.  If logger is nil, the default logger is used.
func New(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{logger: logger}
}

// Mask returns the current mask, or nil if there isn't one yet.
func (d *Decoder) Mask() *mask.Context {
	return d.mask
}

// Statistics returns a copy of the bit statistics.
func (d *Decoder) Statistics() correction.Statistics {
	return d.stats
}

// DecodeHeader reads a CSSR message header.  On failure the cursor is not
// moved.
func DecodeHeader(cursor *bitcursor.Cursor) (*correction.Header, error) {
	c := *cursor
	start := c.Position()
	r := reader{c: &c}

	var h correction.Header
	h.MessageNumber = r.uint(lenMessageNumber)
	if r.err != nil {
		return nil, r.err
	}
	if h.MessageNumber != utils.MessageNumberCSSR {
		return nil, fmt.Errorf("message number %d: %w", h.MessageNumber, ErrUnrecognizedMessageNumber)
	}

	h.Subtype = r.uint(lenSubtype)
	if r.err != nil {
		return nil, r.err
	}
	if h.Subtype < SubtypeMask || h.Subtype > SubtypeAtmosphere {
		return nil, fmt.Errorf("subtype %d: %w", h.Subtype, ErrUnsupportedSubtype)
	}

	switch h.Subtype {
	case SubtypeMask:
		h.Epoch = r.uint(lenEpoch)
	case SubtypeServiceInfo:
		// The service information header stops at the subtype.
	default:
		h.HourlyEpoch = r.uint(lenHourlyEpoch)
	}

	if h.Subtype != SubtypeServiceInfo {
		h.Interval = r.uint(lenInterval)
		h.MultipleMessage = r.bool()
		h.IOD = r.uint(lenIOD)
	}

	if r.err != nil {
		return nil, r.err
	}

	h.BitLength = c.Position() - start
	*cursor = c
	return &h, nil
}

// Decode reads one message.  On success the cursor is moved past the
// message.  On ErrNullData the cursor is moved to the end, consuming the
// padding.  On any other error nothing changes: not the cursor, the mask
// or the statistics.
func (d *Decoder) Decode(cursor *bitcursor.Cursor) (*correction.Message, error) {
	if cursor.Remaining() == 0 {
		return nil, bitcursor.ErrInsufficientData
	}

	if !cursor.AnySet() {
		n := cursor.Remaining()
		d.stats.NullBits += n
		cursor.Skip(n)
		d.logger.Debug("cssr null data", "bits", n)
		return nil, ErrNullData
	}

	c := *cursor
	start := c.Position()

	header, err := DecodeHeader(&c)
	if err != nil {
		return nil, err
	}

	if header.Subtype != SubtypeMask && header.Subtype != SubtypeServiceInfo && d.mask == nil {
		return nil, fmt.Errorf("subtype %d: %w", header.Subtype, ErrMaskNotEstablished)
	}

	var record correction.Record
	var newMask *mask.Context
	// unitStart is where the per-satellite or per-signal values start.
	var unitStart uint

	switch header.Subtype {
	case SubtypeMask:
		newMask, err = mask.Decode(&c, mask.VariantCSSR)
		if err == nil {
			record = &correction.MaskUpdate{Mask: newMask}
		}
	case SubtypeOrbit:
		record, unitStart, err = d.decodeOrbit(&c)
	case SubtypeClock:
		record, unitStart, err = d.decodeClock(&c)
	case SubtypeCodeBias:
		record, unitStart, err = d.decodeCodeBias(&c)
	case SubtypePhaseBias:
		record, unitStart, err = d.decodePhaseBias(&c)
	case SubtypeCodePhaseBias:
		record, unitStart, err = d.decodeCodePhaseBias(&c)
	case SubtypeURA:
		record, unitStart, err = d.decodeURA(&c)
	case SubtypeSTEC:
		record, unitStart, err = d.decodeSTECPolynomial(&c)
	case SubtypeGrid:
		record, err = d.decodeGrid(&c)
		unitStart = c.Position()
	case SubtypeServiceInfo:
		record, err = decodeServiceInfo(&c)
		unitStart = c.Position()
	case SubtypeOrbitClock:
		record, unitStart, err = d.decodeOrbitClock(&c)
	case SubtypeAtmosphere:
		record, unitStart, err = d.decodeAtmosphere(&c)
	}

	if err != nil {
		return nil, err
	}

	end := c.Position()
	bits, n := c.Bytes(start)
	message := correction.Message{
		Header:    *header,
		Record:    record,
		Bits:      bits,
		BitLength: n,
	}

	// Commit.
	*cursor = c
	if newMask != nil {
		d.mask = newMask
		d.stats.StartMask(newMask.NumSatellites(), newMask.NumActiveCells(), end-start)
	} else {
		d.stats.OtherBits += unitStart - start
		switch subtypeCategory[header.Subtype] {
		case categorySatellite:
			d.stats.SatelliteBits += end - unitStart
		case categorySignal:
			d.stats.SignalBits += end - unitStart
		default:
			d.stats.OtherBits += end - unitStart
		}
	}

	d.logger.Debug("cssr message", "subtype", header.Subtype, "iod", header.IOD, "bits", n)

	return &message, nil
}

// reader wraps a cursor and remembers the first error, so that a run of
// reads can be checked once at the end.  After an error every read
// returns a zero value.
type reader struct {
	c   *bitcursor.Cursor
	err error
}

func (r *reader) uint(n uint) uint {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadUint(n)
	if err != nil {
		r.err = err
		return 0
	}
	return uint(v)
}

func (r *reader) bool() bool {
	return r.uint(1) == 1
}

func (r *reader) scaled(width uint, scale float64, sentinels ...int64) correction.Value {
	if r.err != nil {
		return correction.Value{}
	}
	v, err := correction.ReadScaled(r.c, width, scale, sentinels...)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *reader) bits(n uint) []byte {
	if r.err != nil {
		return nil
	}
	b, err := r.c.ReadBits(n)
	if err != nil {
		r.err = err
	}
	return b
}

func (r *reader) subMask(ctx *mask.Context) mask.SubMask {
	if r.err != nil {
		return nil
	}
	sub, err := ctx.ReadSubMask(r.c)
	if err != nil {
		r.err = err
	}
	return sub
}

// network builds the network description from a sub-mask.  A sub-mask
// that doesn't fit the mask sets the error.
func (r *reader) network(ctx *mask.Context, present bool, id uint, sub mask.SubMask) correction.NetworkInfo {
	info := correction.NetworkInfo{Present: present, ID: id}
	if !present || r.err != nil {
		return info
	}
	satellites, err := sub.Satellites(ctx)
	if err != nil {
		r.err = err
		return info
	}
	info.Satellites = satellites
	return info
}
