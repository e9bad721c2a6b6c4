package correction

import "fmt"

// Statistics counts what a stream of CSSR messages spent its bits on.  A
// mask message sets the satellite and signal counts and starts the bit
// counts again, so the totals cover one mask period.
type Statistics struct {
	// Satellites is the number of satellites in the current mask.
	Satellites int
	// Signals is the number of active cells in the current mask.
	Signals int
	// SatelliteBits counts bits of per-satellite values.
	SatelliteBits uint
	// SignalBits counts bits of per-signal values.
	SignalBits uint
	// OtherBits counts headers, masks and other fields.
	OtherBits uint
	// NullBits counts padding.
	NullBits uint
}

// TotalBits returns the sum of the bit counts.
func (s *Statistics) TotalBits() uint {
	return s.SatelliteBits + s.SignalBits + s.OtherBits + s.NullBits
}

// StartMask resets the counts for a new mask of length maskBits, header
// included.
func (s *Statistics) StartMask(satellites, signals int, maskBits uint) {
	*s = Statistics{Satellites: satellites, Signals: signals, OtherBits: maskBits}
}

// String returns the statistics as a single line.
func (s *Statistics) String() string {
	return fmt.Sprintf("stat n_sat %d n_sig %d bit_sat %d bit_sig %d bit_other %d bit_null %d bit_total %d",
		s.Satellites, s.Signals, s.SatelliteBits, s.SignalBits, s.OtherBits, s.NullBits, s.TotalBits())
}
