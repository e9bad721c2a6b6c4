// The signal package is the catalogue of satellite systems and signals used
// by CSSR and HAS masks.
//
// A mask names satellites by their bit position in a 40-bit satellite mask
// and signals by their bit position in a 16-bit signal mask.  The meaning
// of a signal bit depends on the satellite system.  Some signal bits are
// reserved.  A reserved bit can still be set in a mask and it still takes
// its place in the signal order, so it's represented here as a Signal with
// no name rather than as an error.
package signal

import (
	"errors"
	"fmt"
)

// ErrUnknownGNSSID is returned when a GNSS ID doesn't map to a satellite
// system.
var ErrUnknownGNSSID = errors.New("unknown GNSS ID")

// ErrUnassignedSignal is returned when a signal slot is outside the
// catalogue.
var ErrUnassignedSignal = errors.New("unassigned signal slot")

// System is a satellite system (constellation).
type System int

// The satellite systems, in GNSS ID order.
const (
	GPS System = iota
	GLONASS
	Galileo
	BeiDou
	QZSS
	SBAS
)

// NumberOfSystems is the number of satellite systems.
const NumberOfSystems = 6

// MaxSignalSlots is the number of bits in a signal mask.
const MaxSignalSlots = 16

// MaxSatelliteSlots is the number of bits in a satellite mask.
const MaxSatelliteSlots = 40

var systemCodes = [NumberOfSystems]byte{'G', 'R', 'E', 'C', 'J', 'S'}

var systemNames = [NumberOfSystems]string{"GPS", "GLONASS", "Galileo", "BeiDou", "QZSS", "SBAS"}

// signalNames gives the signal for each bit of the signal mask, per
// system.  An empty name marks a reserved slot.
var signalNames = [NumberOfSystems][MaxSignalSlots]string{
	GPS: {
		"L1 C/A", "L1 P", "L1 Z-tracking", "L1C(D)", "L1C(P)", "L1C(D+P)",
		"L2 CM", "L2 CL", "L2 CM+CL", "L2 P", "L2 Z-tracking",
		"L5 I", "L5 Q", "L5 I+Q",
	},
	GLONASS: {
		"G1 C/A", "G1 P", "G2 C/A", "G2 P",
		"G1a(D)", "G1a(P)", "G1a(D+P)", "G2a(D)", "G2a(P)", "G2a(D+P)",
		"G3 I", "G3 Q", "G3 I+Q",
	},
	Galileo: {
		"E1 B", "E1 C", "E1 B+C",
		"E5a I", "E5a Q", "E5a I+Q",
		"E5b I", "E5b Q", "E5b I+Q",
		"E5 I", "E5 Q", "E5 I+Q",
		"E6 B", "E6 C", "E6 B+C",
	},
	BeiDou: {
		"B1 I", "B1 Q", "B1 I+Q",
		"B3 I", "B3 Q", "B3 I+Q",
		"B2 I", "B2 Q", "B2 I+Q",
	},
	QZSS: {
		"L1 C/A", "L1 L1C(D)", "L1 L1C(P)", "L1 L1C(D+P)",
		"L2 L2C(M)", "L2 L2C(L)", "L2 L2C(M+L)",
		"L5 I", "L5 Q", "L5 I+Q",
	},
	SBAS: {
		"L1 C/A", "L5 I", "L5 Q", "L5 I+Q",
	},
}

// FromGNSSID returns the satellite system for a 4-bit GNSS ID.
func FromGNSSID(id uint) (System, error) {
	if id >= NumberOfSystems {
		return 0, fmt.Errorf("GNSS ID %d: %w", id, ErrUnknownGNSSID)
	}
	return System(id), nil
}

// GNSSID returns the GNSS ID of the system.
func (s System) GNSSID() uint {
	return uint(s)
}

// Valid is true if s is one of the known systems.
func (s System) Valid() bool {
	return s >= 0 && s < NumberOfSystems
}

// Code returns the one-letter system code, for example 'G' for GPS.
func (s System) Code() byte {
	if !s.Valid() {
		return '?'
	}
	return systemCodes[s]
}

// String returns the name of the system, for example "Galileo".
func (s System) String() string {
	if !s.Valid() {
		return fmt.Sprintf("system %d", int(s))
	}
	return systemNames[s]
}

// MarshalText renders the system as its name, for JSON keys and values.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Satellite identifies a satellite by system and slot.  Slot 1 is the
// first (most significant) bit of the satellite mask.
type Satellite struct {
	System System
	Slot   uint
}

// String returns the satellite ID, for example "G01".
func (s Satellite) String() string {
	return fmt.Sprintf("%c%02d", s.System.Code(), s.Slot)
}

// MarshalText renders the satellite as its ID.
func (s Satellite) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Signal identifies a signal by system and slot.  Slot 0 is the first
// (most significant) bit of the signal mask.
type Signal struct {
	System System
	Slot   uint
	// Name is the signal name, empty if the slot is reserved.
	Name string
}

// Reserved is true if the slot has no signal assigned.
func (s Signal) Reserved() bool {
	return len(s.Name) == 0
}

// String returns the signal name or, for a reserved slot, a placeholder
// containing the slot number.
func (s Signal) String() string {
	if s.Reserved() {
		return fmt.Sprintf("reserved(%d)", s.Slot)
	}
	return s.Name
}

// MarshalText renders the signal as its name.
func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Lookup returns the signal for a slot in the signal mask of a system.
func Lookup(system System, slot uint) (Signal, error) {
	if !system.Valid() {
		return Signal{}, fmt.Errorf("system %d: %w", int(system), ErrUnknownGNSSID)
	}
	if slot >= MaxSignalSlots {
		return Signal{}, fmt.Errorf("%s signal slot %d: %w", system, slot, ErrUnassignedSignal)
	}
	return Signal{System: system, Slot: slot, Name: signalNames[system][slot]}, nil
}
