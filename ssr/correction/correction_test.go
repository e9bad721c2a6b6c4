package correction

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// TestScaled checks that a sentinel gives an unavailable value whatever
// the scale, and anything else gives raw * scale.
func TestScaled(t *testing.T) {
	var testData = []struct {
		Raw       int64
		Scale     float64
		Sentinels []int64
		WantValid bool
		WantValue float64
	}{
		{-16384, 0.0016, []int64{-16384}, false, 0},
		{-16384, 1.0, []int64{-16384}, false, 0},
		{-16383, 0.0016, []int64{-16384}, true, -26.2128},
		{20, 0.0025, []int64{-4096}, true, 0.05},
		{4095, 0.0025, []int64{-4096, 4095}, false, 0},
		{-64, 0.04, nil, true, -2.56},
	}

	for _, td := range testData {
		v := Scaled(td.Raw, td.Scale, td.Sentinels...)
		f, ok := v.Float()
		if ok != td.WantValid {
			t.Errorf("%d: want valid %v, got %v", td.Raw, td.WantValid, ok)
			continue
		}
		if !cmp.Equal(td.WantValue, f, cmpopts.EquateApprox(0, 1e-6)) {
			t.Errorf("%d: want %f, got %f", td.Raw, td.WantValue, f)
		}
		if v.Raw() != td.Raw {
			t.Errorf("%d: raw value %d", td.Raw, v.Raw())
		}
	}
}

// TestValueText checks the text and JSON versions of a value.
func TestValueText(t *testing.T) {
	var testData = []struct {
		Value    Value
		WantText string
		WantJSON string
	}{
		{Scaled(5, 0.25), "1.2500", "1.25"},
		{Scaled(-1024, 0.02, -1024), "n/a", "null"},
		{Unavailable(), "n/a", "null"},
		{Available(1.5), "1.5000", "1.5"},
	}

	for _, td := range testData {
		if td.Value.String() != td.WantText {
			t.Errorf("want %s, got %s", td.WantText, td.Value.String())
		}
		j, err := json.Marshal(td.Value)
		if err != nil {
			t.Fatal(err)
		}
		if string(j) != td.WantJSON {
			t.Errorf("want %s, got %s", td.WantJSON, string(j))
		}
	}
}

// TestReadScaled checks reading a value and running out of bits.
func TestReadScaled(t *testing.T) {
	var w bitcursor.Writer
	w.PutInt(15, -16384).PutInt(15, 100)
	c := w.Cursor()

	v, err := ReadScaled(&c, 15, 0.0016, -16384)
	if err != nil || v.Valid() {
		t.Errorf("want unavailable, got %v %v", v, err)
	}
	v, err = ReadScaled(&c, 15, 0.0016, -16384)
	if err != nil || v.String() != "0.1600" {
		t.Errorf("want 0.1600, got %v %v", v, err)
	}
	if _, err := ReadScaled(&c, 1, 1); !errors.Is(err, bitcursor.ErrInsufficientData) {
		t.Errorf("want ErrInsufficientData, got %v", err)
	}
}

// TestURAMetres checks the URA class and value conversion.
func TestURAMetres(t *testing.T) {
	var testData = []struct {
		Index     uint
		WantValid bool
		WantMetre float64
	}{
		{0, false, 0},
		// class 0 value 1: 1.25 - 1 = 0.25mm
		{1, true, 0.00025},
		// class 1 value 0: 3 - 1 = 2mm
		{8, true, 0.002},
		// class 7 value 6: 2187 * 2.5 - 1 = 5466.5mm
		{62, true, 5.4665},
		{63, false, 0},
	}

	for _, td := range testData {
		u := SatelliteURA{Satellite: signal.Satellite{System: signal.GPS, Slot: 1}, Index: td.Index}
		f, ok := u.Metres().Float()
		if ok != td.WantValid {
			t.Errorf("%d: want valid %v, got %v", td.Index, td.WantValid, ok)
			continue
		}
		if !cmp.Equal(td.WantMetre, f, cmpopts.EquateApprox(0, 1e-7)) {
			t.Errorf("%d: want %f, got %f", td.Index, td.WantMetre, f)
		}
	}
}

// TestHeaderString checks the header summary for the three header layouts.
func TestHeaderString(t *testing.T) {
	var testData = []struct {
		Header Header
		Want   string
	}{
		{Header{Subtype: 1, Epoch: 345600, IOD: 3}, "ST1  epoch=345600 iod=3"},
		{Header{Subtype: 2, HourlyEpoch: 1234, IOD: 3}, "ST2  hepoch=1234 iod=3"},
		{Header{Subtype: 10}, "ST10"},
		{Header{Subtype: 12, HourlyEpoch: 7, IOD: 15}, "ST12 hepoch=7 iod=15"},
	}

	for _, td := range testData {
		got := td.Header.String()
		if got != td.Want {
			t.Errorf("want %q, got %q", td.Want, got)
		}
	}

	h := Header{Interval: 6}
	if h.IntervalSeconds() != 60 {
		t.Errorf("want 60 seconds, got %d", h.IntervalSeconds())
	}
}

// TestStatistics checks the statistics line.
func TestStatistics(t *testing.T) {
	var s Statistics
	s.NullBits = 99
	s.StartMask(31, 62, 300)
	s.SatelliteBits += 100
	s.SignalBits += 50
	s.OtherBits += 37
	s.NullBits += 13

	const want = "stat n_sat 31 n_sig 62 bit_sat 100 bit_sig 50 bit_other 337 bit_null 13 bit_total 500"
	if s.String() != want {
		t.Errorf("want %s\n got %s", want, s.String())
	}
}
