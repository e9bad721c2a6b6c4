package signal

import (
	"errors"
	"testing"
)

// TestFromGNSSID checks the GNSS ID to system mapping.
func TestFromGNSSID(t *testing.T) {
	var testData = []struct {
		ID       uint
		WantCode byte
		WantName string
		WantErr  error
	}{
		{0, 'G', "GPS", nil},
		{1, 'R', "GLONASS", nil},
		{2, 'E', "Galileo", nil},
		{3, 'C', "BeiDou", nil},
		{4, 'J', "QZSS", nil},
		{5, 'S', "SBAS", nil},
		{6, 0, "", ErrUnknownGNSSID},
		{15, 0, "", ErrUnknownGNSSID},
	}

	for _, td := range testData {
		got, err := FromGNSSID(td.ID)
		if td.WantErr != nil {
			if !errors.Is(err, td.WantErr) {
				t.Errorf("%d: want %v, got %v", td.ID, td.WantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: %v", td.ID, err)
			continue
		}
		if got.Code() != td.WantCode {
			t.Errorf("%d: want %c, got %c", td.ID, td.WantCode, got.Code())
		}
		if got.String() != td.WantName {
			t.Errorf("%d: want %s, got %s", td.ID, td.WantName, got.String())
		}
		if got.GNSSID() != td.ID {
			t.Errorf("%d: round trip gave %d", td.ID, got.GNSSID())
		}
	}
}

// TestLookup checks the signal tables, including reserved slots.
func TestLookup(t *testing.T) {
	var testData = []struct {
		System       System
		Slot         uint
		WantName     string
		WantReserved bool
	}{
		{GPS, 0, "L1 C/A", false},
		{GPS, 3, "L1C(D)", false},
		{GPS, 6, "L2 CM", false},
		{GPS, 7, "L2 CL", false},
		{GPS, 13, "L5 I+Q", false},
		{GPS, 14, "", true},
		{Galileo, 0, "E1 B", false},
		{Galileo, 1, "E1 C", false},
		{Galileo, 4, "E5a Q", false},
		{Galileo, 12, "E6 B", false},
		{Galileo, 13, "E6 C", false},
		{Galileo, 15, "", true},
		{GLONASS, 12, "G3 I+Q", false},
		{BeiDou, 9, "", true},
		{QZSS, 1, "L1 L1C(D)", false},
		{QZSS, 4, "L2 L2C(M)", false},
		{SBAS, 3, "L5 I+Q", false},
		{SBAS, 4, "", true},
	}

	for _, td := range testData {
		got, err := Lookup(td.System, td.Slot)
		if err != nil {
			t.Errorf("%s %d: %v", td.System, td.Slot, err)
			continue
		}
		if got.Name != td.WantName {
			t.Errorf("%s %d: want %q, got %q", td.System, td.Slot, td.WantName, got.Name)
		}
		if got.Reserved() != td.WantReserved {
			t.Errorf("%s %d: want reserved %v", td.System, td.Slot, td.WantReserved)
		}
	}

	if _, err := Lookup(GPS, 16); !errors.Is(err, ErrUnassignedSignal) {
		t.Errorf("want ErrUnassignedSignal, got %v", err)
	}
}

// TestSatelliteString checks the satellite ID format.
func TestSatelliteString(t *testing.T) {
	var testData = []struct {
		Satellite Satellite
		Want      string
	}{
		{Satellite{GPS, 1}, "G01"},
		{Satellite{Galileo, 36}, "E36"},
		{Satellite{QZSS, 2}, "J02"},
		{Satellite{SBAS, 40}, "S40"},
	}

	for _, td := range testData {
		got := td.Satellite.String()
		if got != td.Want {
			t.Errorf("want %s, got %s", td.Want, got)
		}
	}
}
