package has

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/mask"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// ErrMaskNotEstablished is returned when a message carries corrections but
// no mask, and no mask has been seen yet.
var ErrMaskNotEstablished = errors.New("no HAS mask received yet")

// ErrMaskIDMismatch is returned when a message refers to a mask other than
// the one held by the decoder.
var ErrMaskIDMismatch = errors.New("HAS mask ID doesn't match the current mask")

// ErrSubsetSystem is returned when a clock subset names a system that isn't
// in the mask.
var ErrSubsetSystem = errors.New("clock subset system not in mask")

// Field lengths and scale factors.
const (
	lenTOH             = 12
	lenMaskID          = 5
	lenIODSet          = 5
	lenHeaderReserved  = 4
	lenValidity        = 4
	lenIODEGalileo     = 10
	lenIODE            = 8
	lenRadial          = 13
	lenAlongCross      = 12
	lenClock           = 13
	lenMultiplier      = 2
	lenSubsetSystems   = 4
	lenCodeBias        = 11
	lenPhaseBias       = 11
	lenDiscontinuity   = 2
	scaleRadial        = 0.0025
	scaleAlongCross    = 0.008
	scaleClock         = 0.0025
	scaleCodeBias      = 0.02
	scalePhaseBias     = 0.01
	radialUnavailable  = -4096
	alongUnavailable   = -2048
	clockUnavailable   = -4096
	clockDoNotUse      = 4095
	biasUnavailable    = -1024
	headerLengthInBits = lenTOH + 6 + lenHeaderReserved + lenMaskID + lenIODSet
)

// validityIntervals gives the validity interval in seconds for each value
// of the 4-bit index.  The last value is reserved.
var validityIntervals = [16]uint{5, 10, 15, 20, 30, 60, 90, 120, 180, 240, 300, 600, 900, 1800, 3600, 0}

// ValidityInterval returns the validity interval in seconds for an index,
// and false if the index is reserved.
func ValidityInterval(index uint) (uint, bool) {
	if index >= uint(len(validityIntervals)-1) {
		return 0, false
	}
	return validityIntervals[index], true
}

// validityString displays a validity index and its interval.
func validityString(index uint) string {
	seconds, ok := ValidityInterval(index)
	if !ok {
		return fmt.Sprintf("VI=%d (reserved)", index)
	}
	return fmt.Sprintf("VI=%d (%ds)", index, seconds)
}

// Header is the HAS message header.
type Header struct {
	// TOH is the time of hour in seconds.
	TOH             uint
	MaskFlag        bool
	OrbitFlag       bool
	ClockFullFlag   bool
	ClockSubsetFlag bool
	CodeBiasFlag    bool
	PhaseBiasFlag   bool
	MaskID          uint
	IODSetID        uint
}

// String returns the header on one line.
func (h *Header) String() string {
	return fmt.Sprintf("TOH=%d mask=%s orbit=%s ckful=%s cksub=%s cbias=%s pbias=%s maskID=%d IOD=%d",
		h.TOH, onOff(h.MaskFlag), onOff(h.OrbitFlag), onOff(h.ClockFullFlag), onOff(h.ClockSubsetFlag),
		onOff(h.CodeBiasFlag), onOff(h.PhaseBiasFlag), h.MaskID, h.IODSetID)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Orbit is the orbit correction section.
type Orbit struct {
	ValidityIndex uint
	Satellites    []correction.SatelliteOrbit
}

// ClockFull is the clock full-set section.  The values already include the
// multiplier of their system.
type ClockFull struct {
	ValidityIndex uint
	// Multipliers holds the multiplier, 1-4, for each system in the mask.
	Multipliers []uint
	Satellites  []correction.SatelliteClock
}

// ClockSubsetSystem is the clock subset for one system.
type ClockSubsetSystem struct {
	System     signal.System
	Multiplier uint
	Satellites []correction.SatelliteClock
}

// ClockSubset is the clock subset section: clocks for some satellites of
// some systems.
type ClockSubset struct {
	ValidityIndex uint
	Systems       []ClockSubsetSystem
}

// CodeBias is the code bias section, one bias per active cell.
type CodeBias struct {
	ValidityIndex uint
	Biases        []correction.SignalCodeBias
}

// PhaseBias is the phase bias section, one bias in cycles per active cell.
type PhaseBias struct {
	ValidityIndex uint
	Biases        []correction.SignalPhaseBias
}

// Message is a decoded HAS message.  The sections not flagged in the
// header are nil.
type Message struct {
	Header

	// Mask is the mask that the corrections refer to, either from this
	// message or from an earlier one.
	Mask *mask.Context

	Orbit       *Orbit
	ClockFull   *ClockFull
	ClockSubset *ClockSubset
	CodeBias    *CodeBias
	PhaseBias   *PhaseBias

	// BitLength is the length of the message without the padding.
	BitLength uint

	// PaddingBits is the number of bits after the last section.
	PaddingBits uint

	// Raw is the recovered message, padding included.
	Raw []byte `json:"-"`
}

// Kind returns correction.KindHAS.
func (m *Message) Kind() correction.Kind {
	return correction.KindHAS
}

// String returns a readable version of the message.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString("HAS " + m.Header.String() + "\n")
	if m.MaskFlag && m.Mask != nil {
		b.WriteString(m.Mask.String())
	}
	if m.Orbit != nil {
		b.WriteString("orbit " + validityString(m.Orbit.ValidityIndex) + "\n")
		for i := range m.Orbit.Satellites {
			b.WriteString(m.Orbit.Satellites[i].String() + "\n")
		}
	}
	if m.ClockFull != nil {
		fmt.Fprintf(&b, "clock full-set %s multipliers=%v\n", validityString(m.ClockFull.ValidityIndex), m.ClockFull.Multipliers)
		for i := range m.ClockFull.Satellites {
			b.WriteString(m.ClockFull.Satellites[i].String() + "\n")
		}
	}
	if m.ClockSubset != nil {
		b.WriteString("clock subset " + validityString(m.ClockSubset.ValidityIndex) + "\n")
		for _, sys := range m.ClockSubset.Systems {
			for i := range sys.Satellites {
				fmt.Fprintf(&b, "%s (x%d)\n", sys.Satellites[i].String(), sys.Multiplier)
			}
		}
	}
	if m.CodeBias != nil {
		b.WriteString("code bias " + validityString(m.CodeBias.ValidityIndex) + "\n")
		for i := range m.CodeBias.Biases {
			b.WriteString(m.CodeBias.Biases[i].String() + "\n")
		}
	}
	if m.PhaseBias != nil {
		b.WriteString("phase bias " + validityString(m.PhaseBias.ValidityIndex) + "\n")
		for i := range m.PhaseBias.Biases {
			b.WriteString(m.PhaseBias.Biases[i].String() + "\n")
		}
	}
	fmt.Fprintf(&b, "padding %d bits\n", m.PaddingBits)
	return b.String()
}

// Decoder decodes recovered HAS messages.  It holds the last mask, which
// later messages refer to.  Each input stream needs its own Decoder.  It's
// not safe for concurrent use.
type Decoder struct {
	mask   *mask.Context
	maskID uint
	stats  correction.Statistics
	logger *slog.Logger
}

// NewDecoder creates a Decoder.  If logger is nil the default logger is
// used.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{logger: logger}
}

// Mask returns the current mask, nil if there isn't one yet.
func (d *Decoder) Mask() *mask.Context {
	return d.mask
}

// Statistics returns the bit statistics since the last mask.
func (d *Decoder) Statistics() correction.Statistics {
	return d.stats
}

// DecodeHeader decodes the 32-bit message header.  On failure the cursor is
// not moved.
func DecodeHeader(cursor *bitcursor.Cursor) (*Header, error) {
	if cursor.Remaining() < headerLengthInBits {
		return nil, bitcursor.ErrInsufficientData
	}
	c := *cursor
	r := reader{c: &c}
	h := Header{
		TOH:             r.uint(lenTOH),
		MaskFlag:        r.bool(),
		OrbitFlag:       r.bool(),
		ClockFullFlag:   r.bool(),
		ClockSubsetFlag: r.bool(),
		CodeBiasFlag:    r.bool(),
		PhaseBiasFlag:   r.bool(),
	}
	r.uint(lenHeaderReserved)
	h.MaskID = r.uint(lenMaskID)
	h.IODSetID = r.uint(lenIODSet)
	if r.err != nil {
		return nil, r.err
	}
	*cursor = c
	return &h, nil
}

// Decode decodes a recovered message.  If the message fails to decode the
// decoder's mask is unchanged.
func (d *Decoder) Decode(msg []byte) (*Message, error) {
	c := bitcursor.New(msg)

	header, err := DecodeHeader(&c)
	if err != nil {
		return nil, fmt.Errorf("HAS header: %w", err)
	}

	m := Message{Header: *header, Mask: d.mask, Raw: msg}
	stats := d.stats
	stats.OtherBits += headerLengthInBits

	if header.MaskFlag {
		ctx, err := mask.Decode(&c, mask.VariantHAS)
		if err != nil {
			return nil, fmt.Errorf("HAS mask: %w", err)
		}
		m.Mask = ctx
		stats.StartMask(ctx.NumSatellites(), ctx.NumActiveCells(), headerLengthInBits+ctx.BitLength)
		for i := range ctx.Systems {
			if ctx.Systems[i].NavMessage != 0 {
				d.logger.Warn("HAS mask navigation message is not zero",
					"system", ctx.Systems[i].System.String(), "nm", ctx.Systems[i].NavMessage)
			}
		}
	}

	corrections := header.OrbitFlag || header.ClockFullFlag || header.ClockSubsetFlag ||
		header.CodeBiasFlag || header.PhaseBiasFlag
	if corrections {
		if m.Mask == nil {
			return nil, ErrMaskNotEstablished
		}
		if !header.MaskFlag && header.MaskID != d.maskID {
			return nil, fmt.Errorf("%w: message has %d, mask has %d", ErrMaskIDMismatch, header.MaskID, d.maskID)
		}
	}

	sections := []struct {
		flag   bool
		name   string
		decode func(*reader, *mask.Context, *Message)
		signal bool
	}{
		{header.OrbitFlag, "orbit", decodeOrbit, false},
		{header.ClockFullFlag, "clock full-set", decodeClockFull, false},
		{header.ClockSubsetFlag, "clock subset", decodeClockSubset, false},
		{header.CodeBiasFlag, "code bias", decodeCodeBias, true},
		{header.PhaseBiasFlag, "phase bias", decodePhaseBias, true},
	}
	for _, section := range sections {
		if !section.flag {
			continue
		}
		start := c.Position()
		r := reader{c: &c}
		section.decode(&r, m.Mask, &m)
		if r.err != nil {
			return nil, fmt.Errorf("HAS %s: %w", section.name, r.err)
		}
		// The validity interval index counts as other.
		stats.OtherBits += lenValidity
		used := c.Position() - start - lenValidity
		if section.signal {
			stats.SignalBits += used
		} else {
			stats.SatelliteBits += used
		}
	}

	m.BitLength = c.Position()
	m.PaddingBits = c.Remaining()
	stats.NullBits += m.PaddingBits

	if header.MaskFlag {
		d.mask = m.Mask
		d.maskID = header.MaskID
	}
	d.stats = stats

	d.logger.Debug("HAS message decoded", "toh", header.TOH, "maskID", header.MaskID,
		"iod", header.IODSetID, "bits", m.BitLength, "padding", m.PaddingBits)

	return &m, nil
}

// decodeOrbit decodes the orbit section.
func decodeOrbit(r *reader, ctx *mask.Context, m *Message) {
	o := Orbit{ValidityIndex: r.uint(lenValidity)}
	for i := range ctx.Systems {
		sys := &ctx.Systems[i]
		lenIODEForSystem := uint(lenIODE)
		if sys.System == signal.Galileo {
			lenIODEForSystem = lenIODEGalileo
		}
		for _, sat := range sys.Satellites {
			o.Satellites = append(o.Satellites, correction.SatelliteOrbit{
				Satellite:  sat,
				IODE:       r.uint(lenIODEForSystem),
				Radial:     r.scaled(lenRadial, scaleRadial, radialUnavailable),
				AlongTrack: r.scaled(lenAlongCross, scaleAlongCross, alongUnavailable),
				CrossTrack: r.scaled(lenAlongCross, scaleAlongCross, alongUnavailable),
			})
		}
	}
	m.Orbit = &o
}

// clock reads a 13-bit clock correction and applies the multiplier.
func clock(r *reader, sat signal.Satellite, multiplier uint) correction.SatelliteClock {
	return correction.SatelliteClock{
		Satellite: sat,
		C0:        r.scaled(lenClock, scaleClock*float64(multiplier), clockUnavailable, clockDoNotUse),
	}
}

// decodeClockFull decodes the clock full-set section: one multiplier per
// system, then a clock for every satellite in the mask.
func decodeClockFull(r *reader, ctx *mask.Context, m *Message) {
	cf := ClockFull{ValidityIndex: r.uint(lenValidity)}
	for range ctx.Systems {
		cf.Multipliers = append(cf.Multipliers, r.uint(lenMultiplier)+1)
	}
	for i := range ctx.Systems {
		for _, sat := range ctx.Systems[i].Satellites {
			cf.Satellites = append(cf.Satellites, clock(r, sat, cf.Multipliers[i]))
		}
	}
	m.ClockFull = &cf
}

// decodeClockSubset decodes the clock subset section.  Each system block
// holds the GNSS ID, the multiplier and a sub-mask over that system's
// satellites in the mask, followed by a clock for each selected satellite.
func decodeClockSubset(r *reader, ctx *mask.Context, m *Message) {
	cs := ClockSubset{ValidityIndex: r.uint(lenValidity)}
	n := r.uint(lenSubsetSystems)
	for k := uint(0); k < n && r.err == nil; k++ {
		system, err := signal.FromGNSSID(r.uint(4))
		if r.err != nil {
			return
		}
		if err != nil {
			r.err = err
			return
		}
		sys := ctx.Find(system)
		if sys == nil {
			r.err = fmt.Errorf("%w: %s", ErrSubsetSystem, system)
			return
		}
		entry := ClockSubsetSystem{System: system, Multiplier: r.uint(lenMultiplier) + 1}
		selected := make([]bool, len(sys.Satellites))
		for i := range selected {
			selected[i] = r.bool()
		}
		for i, sat := range sys.Satellites {
			if selected[i] {
				entry.Satellites = append(entry.Satellites, clock(r, sat, entry.Multiplier))
			}
		}
		cs.Systems = append(cs.Systems, entry)
	}
	m.ClockSubset = &cs
}

// forEachCell calls f for each active cell in mask order.
func forEachCell(ctx *mask.Context, f func(sat signal.Satellite, sig signal.Signal)) {
	for i := range ctx.Systems {
		sys := &ctx.Systems[i]
		for k, sat := range sys.Satellites {
			for j, sig := range sys.Signals {
				if sys.CellActive(k, j) {
					f(sat, sig)
				}
			}
		}
	}
}

// decodeCodeBias decodes the code bias section.
func decodeCodeBias(r *reader, ctx *mask.Context, m *Message) {
	cb := CodeBias{ValidityIndex: r.uint(lenValidity)}
	forEachCell(ctx, func(sat signal.Satellite, sig signal.Signal) {
		cb.Biases = append(cb.Biases, correction.SignalCodeBias{
			Satellite: sat,
			Signal:    sig,
			Bias:      r.scaled(lenCodeBias, scaleCodeBias, biasUnavailable),
		})
	})
	m.CodeBias = &cb
}

// decodePhaseBias decodes the phase bias section.
func decodePhaseBias(r *reader, ctx *mask.Context, m *Message) {
	pb := PhaseBias{ValidityIndex: r.uint(lenValidity)}
	forEachCell(ctx, func(sat signal.Satellite, sig signal.Signal) {
		pb.Biases = append(pb.Biases, correction.SignalPhaseBias{
			Satellite:     sat,
			Signal:        sig,
			Bias:          r.scaled(lenPhaseBias, scalePhaseBias, biasUnavailable),
			Discontinuity: r.uint(lenDiscontinuity),
		})
	})
	m.PhaseBias = &pb
}

// reader reads fields until the first error, after which it returns zero
// values.  The caller checks err once at the end.
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
