// The mask package decodes and holds the satellite, signal and cell masks
// that CSSR and HAS corrections refer to.
//
// A mask message lists, for each satellite system, the satellites that
// corrections will be sent for (a 40-bit satellite mask), the signals (a
// 16-bit signal mask) and optionally which signals apply to which
// satellites (the cell mask, nSat X nSig bits).  If the cell mask is not
// sent, every satellite carries every signal.  Later messages send their
// values in mask order without naming the satellite or signal, so they
// can't be decoded without the mask.
//
// For example, if satellites 1 and 3 are in the mask with signals 0, 7 and
// 13, and the cell mask is 101 011, then the first satellite carries
// signals 0 and 13 and the second carries signals 7 and 13.  A per-cell
// correction message will then contain four values in that order.
package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/signal"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// Variant selects the layout of the mask message.
type Variant int

const (
	// VariantCSSR is the body of a CSSR subtype 1 message.
	VariantCSSR Variant = iota
	// VariantHAS is the mask section of a Galileo HAS message.  It carries a
	// navigation message field per system and 6 reserved bits at the end.
	VariantHAS
)

// Field lengths.
const (
	lenNumberOfSystems = 4
	lenGNSSID          = 4
	lenSatelliteMask   = signal.MaxSatelliteSlots
	lenSignalMask      = signal.MaxSignalSlots
	lenCellMaskFlag    = 1
	lenNavMessage      = 3
	lenHASReserved     = 6
)

// SystemMask is the mask for one satellite system.
type SystemMask struct {
	// System is the satellite system.
	System signal.System

	// SatelliteBits is the raw 40-bit satellite mask.  The most significant
	// of the 40 bits is satellite 1.
	SatelliteBits uint64

	// SignalBits is the raw 16-bit signal mask.  The most significant of the
	// 16 bits is signal slot 0.
	SignalBits uint64

	// Satellites lists the satellites in the mask, in ascending slot order.
	Satellites []signal.Satellite

	// Signals lists the signals in the mask, in ascending slot order.
	Signals []signal.Signal

	// Cells is the cell mask, satellite-major.  Cells[i*len(Signals)+j] is
	// true if satellite i carries signal j.  Its length is always
	// len(Satellites) * len(Signals).
	Cells []bool

	// CellMaskPresent is true if the cell mask was sent explicitly rather
	// than defaulting to all ones.
	CellMaskPresent bool

	// NavMessage is the HAS navigation message field (0 is I/NAV for
	// Galileo and LNAV for GPS).  Always zero in CSSR.
	NavMessage uint
}

// NumSatellites returns the number of satellites in the mask.
func (sm *SystemMask) NumSatellites() int {
	return len(sm.Satellites)
}

// NumSignals returns the number of signals in the mask.
func (sm *SystemMask) NumSignals() int {
	return len(sm.Signals)
}

// CellActive is true if satellite i carries signal j.  Both are indices
// into Satellites and Signals, not slot numbers.
func (sm *SystemMask) CellActive(i, j int) bool {
	if i < 0 || j < 0 || i >= len(sm.Satellites) || j >= len(sm.Signals) {
		return false
	}
	return sm.Cells[i*len(sm.Signals)+j]
}

// NumActiveCells returns the number of set bits in the cell mask.
func (sm *SystemMask) NumActiveCells() int {
	n := 0
	for _, c := range sm.Cells {
		if c {
			n++
		}
	}
	return n
}

// ActiveSignals returns the signals carried by satellite i.
func (sm *SystemMask) ActiveSignals(i int) []signal.Signal {
	var result []signal.Signal
	for j, sig := range sm.Signals {
		if sm.CellActive(i, j) {
			result = append(result, sig)
		}
	}
	return result
}

// Context is a complete mask: one SystemMask per system, in the order the
// systems appeared in the message.  Later messages follow that order.
type Context struct {
	Systems []SystemMask

	// Variant is the layout the mask was decoded from.
	Variant Variant

	// BitLength is the number of bits the mask occupied.
	BitLength uint
}

// NumSatellites returns the number of satellites across all systems.
func (ctx *Context) NumSatellites() int {
	n := 0
	for i := range ctx.Systems {
		n += ctx.Systems[i].NumSatellites()
	}
	return n
}

// NumActiveCells returns the number of active cells across all systems.
func (ctx *Context) NumActiveCells() int {
	n := 0
	for i := range ctx.Systems {
		n += ctx.Systems[i].NumActiveCells()
	}
	return n
}

// Find returns the mask for a system, or nil if the system isn't in the
// mask.
func (ctx *Context) Find(system signal.System) *SystemMask {
	for i := range ctx.Systems {
		if ctx.Systems[i].System == system {
			return &ctx.Systems[i]
		}
	}
	return nil
}

// String returns a readable version of the mask, one line per system.
func (ctx *Context) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mask: %d systems, %d satellites, %d cells\n",
		len(ctx.Systems), ctx.NumSatellites(), ctx.NumActiveCells())
	for i := range ctx.Systems {
		sm := &ctx.Systems[i]
		sats := make([]string, 0, len(sm.Satellites))
		for _, s := range sm.Satellites {
			sats = append(sats, s.String())
		}
		sigs := make([]string, 0, len(sm.Signals))
		for _, s := range sm.Signals {
			sigs = append(sigs, s.String())
		}
		cellMask := "all"
		if sm.CellMaskPresent {
			cellMask = "explicit"
		}
		fmt.Fprintf(&b, "%s sats %s\n", sm.System, strings.Join(sats, " "))
		fmt.Fprintf(&b, "%s sigs %s (%s cells)\n", sm.System, strings.Join(sigs, ", "), cellMask)
	}
	return b.String()
}

// Decode reads a mask from the cursor.  On success the cursor is moved past
// the mask.  On failure the cursor is not moved and no context is
// returned, so a caller holding an earlier context keeps it.
func Decode(cursor *bitcursor.Cursor, variant Variant) (*Context, error) {
	c := *cursor
	start := c.Position()

	n, err := c.ReadUint(lenNumberOfSystems)
	if err != nil {
		return nil, err
	}

	ctx := Context{Variant: variant, Systems: make([]SystemMask, 0, n)}

	for i := uint64(0); i < n; i++ {
		sm, err := decodeSystem(&c, variant)
		if err != nil {
			return nil, err
		}
		ctx.Systems = append(ctx.Systems, *sm)
	}

	if variant == VariantHAS {
		if err := c.Skip(lenHASReserved); err != nil {
			return nil, err
		}
	}

	ctx.BitLength = c.Position() - start
	*cursor = c
	return &ctx, nil
}

// decodeSystem reads the mask for one system.  The length of the cell mask
// depends on the satellite and signal masks, so it's checked after they
// are read.
func decodeSystem(c *bitcursor.Cursor, variant Variant) (*SystemMask, error) {
	// Read the fixed part in one go so that the error for a short buffer
	// is ErrInsufficientData rather than a bad GNSS ID read from garbage.
	fixed := uint(lenGNSSID + lenSatelliteMask + lenSignalMask + lenCellMaskFlag)
	if c.Remaining() < fixed {
		return nil, bitcursor.ErrInsufficientData
	}

	gnssID, _ := c.ReadUint(lenGNSSID)
	system, err := signal.FromGNSSID(uint(gnssID))
	if err != nil {
		return nil, err
	}

	satBits, _ := c.ReadUint(lenSatelliteMask)
	sigBits, _ := c.ReadUint(lenSignalMask)
	cellMaskPresent, _ := c.ReadBool()

	sm := SystemMask{
		System:          system,
		SatelliteBits:   satBits,
		SignalBits:      sigBits,
		CellMaskPresent: cellMaskPresent,
	}

	sm.Satellites = getSatellites(system, satBits)
	sm.Signals, err = getSignals(system, sigBits)
	if err != nil {
		return nil, err
	}

	nCells := len(sm.Satellites) * len(sm.Signals)
	sm.Cells = make([]bool, nCells)
	if cellMaskPresent {
		if c.Remaining() < uint(nCells) {
			return nil, bitcursor.ErrInsufficientData
		}
		for i := range sm.Cells {
			sm.Cells[i], _ = c.ReadBool()
		}
	} else {
		for i := range sm.Cells {
			sm.Cells[i] = true
		}
	}

	if variant == VariantHAS {
		nm, err := c.ReadUint(lenNavMessage)
		if err != nil {
			return nil, err
		}
		sm.NavMessage = uint(nm)
	}

	return &sm, nil
}

// getSatellites turns a 40-bit satellite mask into a list of satellites.
// If the mask is 1010 0000 ... then the list is {1, 3}.
func getSatellites(system signal.System, mask uint64) []signal.Satellite {
	satellites := make([]signal.Satellite, 0, utils.CountSetBits(mask, lenSatelliteMask))
	for slot := uint(1); slot <= lenSatelliteMask; slot++ {
		if mask&(1<<(lenSatelliteMask-slot)) != 0 {
			satellites = append(satellites, signal.Satellite{System: system, Slot: slot})
		}
	}
	return satellites
}

// getSignals turns a 16-bit signal mask into a list of signals.  Reserved
// slots stay in the list so that the cell mask lines up.
func getSignals(system signal.System, mask uint64) ([]signal.Signal, error) {
	signals := make([]signal.Signal, 0, utils.CountSetBits(mask, lenSignalMask))
	for slot := uint(0); slot < lenSignalMask; slot++ {
		if mask&(1<<(lenSignalMask-1-slot)) == 0 {
			continue
		}
		sig, err := signal.Lookup(system, slot)
		if err != nil {
			return nil, err
		}
		signals = append(signals, sig)
	}
	return signals, nil
}

// ErrSubMaskMismatch is returned when a sub-mask doesn't fit the mask it's
// applied to.
var ErrSubMaskMismatch = errors.New("sub-mask doesn't match mask")

// SubMask selects a subset of the satellites in a mask.  SubMask[i][k] is
// true if satellite k of system i is selected.  The network messages use
// it to send values for only the satellites visible from a network.
type SubMask [][]bool

// ReadSubMask reads a sub-mask: for each system in the mask, one bit per
// satellite in that system's mask.  On failure the cursor is not moved.
func (ctx *Context) ReadSubMask(cursor *bitcursor.Cursor) (SubMask, error) {
	need := uint(ctx.NumSatellites())
	if cursor.Remaining() < need {
		return nil, bitcursor.ErrInsufficientData
	}
	c := *cursor
	sub := make(SubMask, len(ctx.Systems))
	for i := range ctx.Systems {
		sub[i] = make([]bool, len(ctx.Systems[i].Satellites))
		for k := range sub[i] {
			sub[i][k], _ = c.ReadBool()
		}
	}
	*cursor = c
	return sub, nil
}

// FullSubMask returns a sub-mask that selects every satellite.
func (ctx *Context) FullSubMask() SubMask {
	sub := make(SubMask, len(ctx.Systems))
	for i := range ctx.Systems {
		sub[i] = make([]bool, len(ctx.Systems[i].Satellites))
		for k := range sub[i] {
			sub[i][k] = true
		}
	}
	return sub
}

// Selected is true if satellite k of system i is selected.
func (sub SubMask) Selected(i, k int) bool {
	if i < 0 || i >= len(sub) || k < 0 || k >= len(sub[i]) {
		return false
	}
	return sub[i][k]
}

// Count returns the number of selected satellites.
func (sub SubMask) Count() int {
	n := 0
	for _, sys := range sub {
		for _, s := range sys {
			if s {
				n++
			}
		}
	}
	return n
}

// Satellites returns the selected satellites in mask order.
func (sub SubMask) Satellites(ctx *Context) ([]signal.Satellite, error) {
	if len(sub) != len(ctx.Systems) {
		return nil, ErrSubMaskMismatch
	}
	var result []signal.Satellite
	for i := range ctx.Systems {
		if len(sub[i]) != len(ctx.Systems[i].Satellites) {
			return nil, ErrSubMaskMismatch
		}
		for k, sat := range ctx.Systems[i].Satellites {
			if sub[i][k] {
				result = append(result, sat)
			}
		}
	}
	return result, nil
}
