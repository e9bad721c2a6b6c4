// The correction package holds the records produced by decoding CSSR
// messages, and the statistics that the decoder keeps about them.
//
// Each CSSR message has a common header and a body whose layout depends on
// the subtype.  The body decodes to one Record.  Values in a record are
// held as Value, which is either a scaled physical quantity or the
// "unavailable" marker sent when the raw field holds its reserved code.
package correction

import (
	"fmt"
	"strings"

	"github.com/goblimey/go-ssr/ssr/mask"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// Kind names the type of a record.  It's used as the last part of the
// topic when records are published.
type Kind string

// The record kinds.
const (
	KindMask          Kind = "mask"
	KindOrbit         Kind = "orbit"
	KindClock         Kind = "clock"
	KindCodeBias      Kind = "code-bias"
	KindPhaseBias     Kind = "phase-bias"
	KindCodePhaseBias Kind = "code-phase-bias"
	KindURA           Kind = "ura"
	KindSTEC          Kind = "stec"
	KindSTECGrid      Kind = "stec-grid"
	KindAux           Kind = "aux"
	KindOrbitClock    Kind = "orbit-clock"
	KindAtmosphere    Kind = "atmosphere"
	KindHAS           Kind = "has"
)

// Record is the decoded body of a message.
type Record interface {
	Kind() Kind
	String() string
}

// updateIntervals gives the CSSR update interval in seconds for each value
// of the 4-bit interval field.
var updateIntervals = [16]uint{1, 2, 5, 10, 15, 30, 60, 120, 240, 300, 600, 900, 1800, 3600, 7200, 10800}

// Header is the common CSSR message header.
type Header struct {
	// MessageNumber is always 4073 for CSSR.
	MessageNumber uint

	// Subtype is the CSSR subtype, 1-12.
	Subtype uint

	// Epoch is the GPS time of week in seconds.  Only subtype 1 has it.
	Epoch uint

	// HourlyEpoch is the time in seconds since the start of the GNSS hour.
	// Subtypes other than 1 and 10 have it.
	HourlyEpoch uint

	// Interval is the raw update interval field.
	Interval uint

	// MultipleMessage is true if more messages with the same epoch follow.
	MultipleMessage bool

	// IOD is the SSR issue of data.  A correction message applies to the
	// mask with the same IOD.
	IOD uint

	// BitLength is the length of the header.
	BitLength uint
}

// IntervalSeconds returns the update interval in seconds.
func (h *Header) IntervalSeconds() uint {
	return updateIntervals[h.Interval&0xf]
}

// String returns a one-line summary of the header.
func (h *Header) String() string {
	switch h.Subtype {
	case 1:
		return fmt.Sprintf("ST%-2d epoch=%d iod=%d", h.Subtype, h.Epoch, h.IOD)
	case 10:
		return fmt.Sprintf("ST%-2d", h.Subtype)
	default:
		return fmt.Sprintf("ST%-2d hepoch=%d iod=%d", h.Subtype, h.HourlyEpoch, h.IOD)
	}
}

// Message is one decoded CSSR message.
type Message struct {
	Header Header

	Record Record

	// Bits is the raw message, header included, packed MSB first.  It's
	// what gets wrapped into an RTCM frame.
	Bits []byte

	// BitLength is the number of bits in the message.
	BitLength uint
}

// String returns a readable version of the message.
func (m *Message) String() string {
	return m.Header.String() + "\n" + m.Record.String()
}

// MaskUpdate is subtype 1: a new mask.
type MaskUpdate struct {
	Mask *mask.Context
}

// Kind returns KindMask.
func (r *MaskUpdate) Kind() Kind { return KindMask }

// String returns the mask.
func (r *MaskUpdate) String() string {
	return r.Mask.String()
}

// SatelliteOrbit is the orbit correction for one satellite.
type SatelliteOrbit struct {
	Satellite signal.Satellite
	// IODE is the issue of data of the broadcast ephemeris that the
	// correction applies to.
	IODE       uint
	Radial     Value
	AlongTrack Value
	CrossTrack Value
}

// String returns the orbit correction in metres.
func (o *SatelliteOrbit) String() string {
	return fmt.Sprintf("%s IODE=%d radial=%s along=%s cross=%s",
		o.Satellite, o.IODE, o.Radial, o.AlongTrack, o.CrossTrack)
}

// OrbitCorrection is subtype 2.
type OrbitCorrection struct {
	Satellites []SatelliteOrbit
}

// Kind returns KindOrbit.
func (r *OrbitCorrection) Kind() Kind { return KindOrbit }

// String returns one line per satellite.
func (r *OrbitCorrection) String() string {
	var b strings.Builder
	for i := range r.Satellites {
		b.WriteString(r.Satellites[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SatelliteClock is the clock correction for one satellite.
type SatelliteClock struct {
	Satellite signal.Satellite
	C0        Value
}

// String returns the clock correction in metres.
func (c *SatelliteClock) String() string {
	return fmt.Sprintf("%s c0=%s", c.Satellite, c.C0)
}

// ClockCorrection is subtype 3.
type ClockCorrection struct {
	Satellites []SatelliteClock
}

// Kind returns KindClock.
func (r *ClockCorrection) Kind() Kind { return KindClock }

// String returns one line per satellite.
func (r *ClockCorrection) String() string {
	var b strings.Builder
	for i := range r.Satellites {
		b.WriteString(r.Satellites[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SignalCodeBias is the code bias for one signal of one satellite.
type SignalCodeBias struct {
	Satellite signal.Satellite
	Signal    signal.Signal
	Bias      Value
}

// String returns the bias in metres.
func (cb *SignalCodeBias) String() string {
	return fmt.Sprintf("%s %s code_bias=%s", cb.Satellite, cb.Signal, cb.Bias)
}

// CodeBias is subtype 4: one bias per active cell.
type CodeBias struct {
	Biases []SignalCodeBias
}

// Kind returns KindCodeBias.
func (r *CodeBias) Kind() Kind { return KindCodeBias }

// String returns one line per cell.
func (r *CodeBias) String() string {
	var b strings.Builder
	for i := range r.Biases {
		b.WriteString(r.Biases[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SignalPhaseBias is the phase bias for one signal of one satellite.
type SignalPhaseBias struct {
	Satellite signal.Satellite
	Signal    signal.Signal
	Bias      Value
	// Discontinuity is incremented when the bias has a discontinuity.
	Discontinuity uint
}

// String returns the bias and the discontinuity indicator.
func (pb *SignalPhaseBias) String() string {
	return fmt.Sprintf("%s %s phase_bias=%s discont=%d", pb.Satellite, pb.Signal, pb.Bias, pb.Discontinuity)
}

// PhaseBias is subtype 5: one bias per active cell.
type PhaseBias struct {
	Biases []SignalPhaseBias
}

// Kind returns KindPhaseBias.
func (r *PhaseBias) Kind() Kind { return KindPhaseBias }

// String returns one line per cell.
func (r *PhaseBias) String() string {
	var b strings.Builder
	for i := range r.Biases {
		b.WriteString(r.Biases[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// NetworkInfo says which satellites a network message carries values for.
// When Present is false the message covers every satellite in the mask.
type NetworkInfo struct {
	Present    bool
	ID         uint
	Satellites []signal.Satellite
}

// String returns the network ID and satellites.
func (n *NetworkInfo) String() string {
	if !n.Present {
		return "network=off"
	}
	sats := make([]string, 0, len(n.Satellites))
	for _, s := range n.Satellites {
		sats = append(sats, s.String())
	}
	return fmt.Sprintf("network=%d sats %s", n.ID, strings.Join(sats, " "))
}

// CodePhaseBias is subtype 6: code and/or phase biases, optionally for the
// satellites of one network.
type CodePhaseBias struct {
	CodeBiasPresent  bool
	PhaseBiasPresent bool
	Network          NetworkInfo
	CodeBiases       []SignalCodeBias
	PhaseBiases      []SignalPhaseBias
}

// Kind returns KindCodePhaseBias.
func (r *CodePhaseBias) Kind() Kind { return KindCodePhaseBias }

// String returns the flags and one line per bias.
func (r *CodePhaseBias) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "code_bias=%v phase_bias=%v %s\n", r.CodeBiasPresent, r.PhaseBiasPresent, r.Network.String())
	for i := range r.CodeBiases {
		b.WriteString(r.CodeBiases[i].String())
		b.WriteString("\n")
	}
	for i := range r.PhaseBiases {
		b.WriteString(r.PhaseBiases[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SatelliteURA is the user range accuracy index for one satellite.
type SatelliteURA struct {
	Satellite signal.Satellite
	// Index is the 6-bit URA field: class in the top 3 bits, value in the
	// bottom 3.
	Index uint
}

// Metres returns the URA in metres.  Index 0 means undefined and index 63
// means more than 5.4665 metres, and both give an unavailable Value.
func (u *SatelliteURA) Metres() Value {
	if u.Index == 0 || u.Index >= 63 {
		return Unavailable()
	}
	class := u.Index >> 3
	value := float64(u.Index & 7)
	pow := 1.0
	for i := uint(0); i < class; i++ {
		pow *= 3
	}
	mm := pow*(1+value/4) - 1
	return Available(mm / 1000)
}

// String returns the index and the URA in metres.
func (u *SatelliteURA) String() string {
	return fmt.Sprintf("%s URA=%d (%s)", u.Satellite, u.Index, u.Metres())
}

// URA is subtype 7.
type URA struct {
	Satellites []SatelliteURA
}

// Kind returns KindURA.
func (r *URA) Kind() Kind { return KindURA }

// String returns one line per satellite.
func (r *URA) String() string {
	var b strings.Builder
	for i := range r.Satellites {
		b.WriteString(r.Satellites[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SatelliteSTEC is the STEC polynomial for one satellite in TECU.  Which
// coefficients are present depends on the type: 0 has C00, 1 adds C01 and
// C10, 2 adds C11 and 3 adds C02 and C20.  Absent coefficients are
// unavailable.
type SatelliteSTEC struct {
	Satellite signal.Satellite
	Quality   uint
	Type      uint
	C00       Value
	C01       Value
	C10       Value
	C11       Value
	C02       Value
	C20       Value
}

// String returns the polynomial.
func (s *SatelliteSTEC) String() string {
	line := fmt.Sprintf("%s quality=%d c00=%s", s.Satellite, s.Quality, s.C00)
	if s.Type >= 1 {
		line += fmt.Sprintf(" c01=%s c10=%s", s.C01, s.C10)
	}
	if s.Type >= 2 {
		line += fmt.Sprintf(" c11=%s", s.C11)
	}
	if s.Type >= 3 {
		line += fmt.Sprintf(" c02=%s c20=%s", s.C02, s.C20)
	}
	return line
}

// STECPolynomial is subtype 8.
type STECPolynomial struct {
	Type       uint
	Network    NetworkInfo
	Satellites []SatelliteSTEC
}

// Kind returns KindSTEC.
func (r *STECPolynomial) Kind() Kind { return KindSTEC }

// String returns the type and one line per satellite.
func (r *STECPolynomial) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "type=%d %s\n", r.Type, r.Network.String())
	for i := range r.Satellites {
		b.WriteString(r.Satellites[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// SatelliteResidual is a STEC residual for one satellite at one grid point.
type SatelliteResidual struct {
	Satellite signal.Satellite
	Residual  Value
}

// GridPoint is the troposphere delay and the STEC residuals at one grid
// point.
type GridPoint struct {
	Hydrostatic Value
	Wet         Value
	Residuals   []SatelliteResidual
}

// STECGridResidual is subtype 9: troposphere delays and STEC residuals for
// each grid point of a network.
type STECGridResidual struct {
	TropoType uint
	// WideResiduals is true if the residuals are 16 bits rather than 7.
	WideResiduals bool
	Network       NetworkInfo
	TropoQuality  uint
	Grids         []GridPoint
}

// Kind returns KindSTECGrid.
func (r *STECGridResidual) Kind() Kind { return KindSTECGrid }

// String returns one line per grid point and one per residual.
func (r *STECGridResidual) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tropo_type=%d wide=%v quality=%d %s\n",
		r.TropoType, r.WideResiduals, r.TropoQuality, r.Network.String())
	for i := range r.Grids {
		g := &r.Grids[i]
		fmt.Fprintf(&b, "grid %d/%d dry=%s wet=%s\n", i+1, len(r.Grids), g.Hydrostatic, g.Wet)
		for _, res := range g.Residuals {
			fmt.Fprintf(&b, "grid %d/%d %s residual=%s\n", i+1, len(r.Grids), res.Satellite, res.Residual)
		}
	}
	return b.String()
}

// AuxFrameData is subtype 10: service information passed through as raw
// bits.
type AuxFrameData struct {
	Counter uint
	// Size is the length of Data in bits.
	Size uint
	Data []byte
}

// Kind returns KindAux.
func (r *AuxFrameData) Kind() Kind { return KindAux }

// String returns the counter and the data in hex.
func (r *AuxFrameData) String() string {
	return fmt.Sprintf("counter=%d size=%d data=%x\n", r.Counter, r.Size, r.Data)
}

// OrbitClock is subtype 11: orbit and/or clock corrections, optionally for
// the satellites of one network.
type OrbitClock struct {
	OrbitPresent bool
	ClockPresent bool
	Network      NetworkInfo
	Orbits       []SatelliteOrbit
	Clocks       []SatelliteClock
}

// Kind returns KindOrbitClock.
func (r *OrbitClock) Kind() Kind { return KindOrbitClock }

// String returns the flags and one line per correction.
func (r *OrbitClock) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "orbit=%v clock=%v %s\n", r.OrbitPresent, r.ClockPresent, r.Network.String())
	for i := range r.Orbits {
		b.WriteString(r.Orbits[i].String())
		b.WriteString("\n")
	}
	for i := range r.Clocks {
		b.WriteString(r.Clocks[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// TroposphereModel is the troposphere polynomial of subtype 12, in metres.
// Type 0 has T00, 1 adds T01 and T10 and 2 adds T11.
type TroposphereModel struct {
	Quality uint
	Type    uint
	T00     Value
	T01     Value
	T10     Value
	T11     Value
}

// String returns the polynomial.
func (t *TroposphereModel) String() string {
	line := fmt.Sprintf("tropo quality=%d type=%d t00=%s", t.Quality, t.Type, t.T00)
	if t.Type >= 1 {
		line += fmt.Sprintf(" t01=%s t10=%s", t.T01, t.T10)
	}
	if t.Type >= 2 {
		line += fmt.Sprintf(" t11=%s", t.T11)
	}
	return line
}

// TroposphereGridResidual is the troposphere residual part of subtype 12.
type TroposphereGridResidual struct {
	// Wide is true if the residuals are 8 bits rather than 6.
	Wide      bool
	Offset    Value
	Residuals []Value
}

// String returns the offset and the residuals.
func (t *TroposphereGridResidual) String() string {
	res := make([]string, 0, len(t.Residuals))
	for _, r := range t.Residuals {
		res = append(res, r.String())
	}
	return fmt.Sprintf("tropo offset=%s residuals %s", t.Offset, strings.Join(res, " "))
}

// SatelliteSTECGrid is the STEC part of subtype 12 for one satellite: a
// polynomial plus a residual per grid point.
type SatelliteSTECGrid struct {
	SatelliteSTEC
	// ResidualSize is the 2-bit selector for the residual width and scale.
	ResidualSize uint
	Residuals    []Value
}

// String returns the polynomial and the residuals.
func (s *SatelliteSTECGrid) String() string {
	res := make([]string, 0, len(s.Residuals))
	for _, r := range s.Residuals {
		res = append(res, r.String())
	}
	return s.SatelliteSTEC.String() + " residuals " + strings.Join(res, " ")
}

// Atmosphere is subtype 12: troposphere and STEC corrections for a network.
type Atmosphere struct {
	// TropoAvailability has bit 1 set for the model and bit 0 for the
	// residuals.
	TropoAvailability uint
	// STECAvailability has bit 1 set for the STEC part.
	STECAvailability uint
	NetworkID        uint
	NumGrids         uint
	Model            *TroposphereModel
	TropoResidual    *TroposphereGridResidual
	Network          NetworkInfo
	STEC             []SatelliteSTECGrid
}

// Kind returns KindAtmosphere.
func (r *Atmosphere) Kind() Kind { return KindAtmosphere }

// String returns the parts that are present.
func (r *Atmosphere) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tropo=%02b stec=%02b network=%d grids=%d\n",
		r.TropoAvailability, r.STECAvailability, r.NetworkID, r.NumGrids)
	if r.Model != nil {
		b.WriteString(r.Model.String())
		b.WriteString("\n")
	}
	if r.TropoResidual != nil {
		b.WriteString(r.TropoResidual.String())
		b.WriteString("\n")
	}
	for i := range r.STEC {
		b.WriteString(r.STEC[i].String())
		b.WriteString("\n")
	}
	return b.String()
}
