package mask

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/diff"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// satMask returns a 40-bit satellite mask with the given slots set.
func satMask(slots ...uint) uint64 {
	var m uint64
	for _, s := range slots {
		m |= 1 << (40 - s)
	}
	return m
}

// sigMask returns a 16-bit signal mask with the given slots set.
func sigMask(slots ...uint) uint64 {
	var m uint64
	for _, s := range slots {
		m |= 1 << (15 - s)
	}
	return m
}

// writeTwoSystems writes a mask with GPS satellites 1 and 3, signals 0, 7
// and 13 and cell mask 101 011, followed by Galileo satellite 36 with
// signals 1 and 13 and no cell mask.
func writeTwoSystems(w *bitcursor.Writer, variant Variant) {
	w.PutUint(4, 2)
	w.PutUint(4, 0).PutUint(40, satMask(1, 3)).PutUint(16, sigMask(0, 7, 13))
	w.PutBool(true).PutUint(6, 0x2b)
	if variant == VariantHAS {
		w.PutUint(3, 0)
	}
	w.PutUint(4, 2).PutUint(40, satMask(36)).PutUint(16, sigMask(1, 13))
	w.PutBool(false)
	if variant == VariantHAS {
		w.PutUint(3, 1)
		w.PutUint(6, 0)
	}
}

// TestDecode checks that decoding a mask reproduces the encoded sets.
func TestDecode(t *testing.T) {
	var w bitcursor.Writer
	writeTwoSystems(&w, VariantCSSR)
	// Something after the mask, which should be left alone.
	w.PutUint(8, 0xa5)
	c := w.Cursor()

	ctx, err := Decode(&c, VariantCSSR)
	if err != nil {
		t.Fatal(err)
	}

	const wantLength = 4 + 61 + 6 + 61
	if ctx.BitLength != wantLength {
		t.Errorf("want length %d, got %d", wantLength, ctx.BitLength)
	}
	if c.Position() != wantLength {
		t.Errorf("want position %d, got %d", wantLength, c.Position())
	}

	if len(ctx.Systems) != 2 {
		t.Fatalf("want 2 systems, got %d", len(ctx.Systems))
	}

	gps := ctx.Systems[0]
	wantSats := []signal.Satellite{{System: signal.GPS, Slot: 1}, {System: signal.GPS, Slot: 3}}
	if !cmp.Equal(wantSats, gps.Satellites) {
		t.Errorf("GPS satellites: %s", cmp.Diff(wantSats, gps.Satellites))
	}
	wantNames := []string{"L1 C/A", "L2 CL", "L5 I+Q"}
	for j, sig := range gps.Signals {
		if sig.Name != wantNames[j] {
			t.Errorf("signal %d: want %s, got %s", j, wantNames[j], sig.Name)
		}
	}
	wantCells := []bool{true, false, true, false, true, true}
	if !cmp.Equal(wantCells, gps.Cells) {
		t.Errorf("GPS cells: want %v, got %v", wantCells, gps.Cells)
	}
	if !gps.CellMaskPresent {
		t.Error("GPS: want explicit cell mask")
	}
	if gps.CellActive(0, 1) || !gps.CellActive(1, 1) || gps.CellActive(2, 0) {
		t.Error("GPS: CellActive disagrees with the cell mask")
	}

	gal := ctx.Systems[1]
	if len(gal.Cells) != len(gal.Satellites)*len(gal.Signals) {
		t.Errorf("Galileo: cell mask length %d", len(gal.Cells))
	}
	if gal.NumActiveCells() != 2 || gal.CellMaskPresent {
		t.Errorf("Galileo: want 2 implicit cells, got %d %v", gal.NumActiveCells(), gal.CellMaskPresent)
	}
	if gal.Satellites[0].String() != "E36" {
		t.Errorf("Galileo: want E36, got %s", gal.Satellites[0])
	}

	if ctx.NumSatellites() != 3 || ctx.NumActiveCells() != 6 {
		t.Errorf("want 3 satellites and 6 cells, got %d %d", ctx.NumSatellites(), ctx.NumActiveCells())
	}

	if ctx.Find(signal.Galileo) != &ctx.Systems[1] || ctx.Find(signal.QZSS) != nil {
		t.Error("Find gave the wrong system")
	}

	next, _ := c.ReadUint(8)
	if next != 0xa5 {
		t.Errorf("want a5 after the mask, got %x", next)
	}
}

// TestDecodeHAS checks the HAS layout with its navigation message fields.
func TestDecodeHAS(t *testing.T) {
	var w bitcursor.Writer
	writeTwoSystems(&w, VariantHAS)
	c := w.Cursor()

	ctx, err := Decode(&c, VariantHAS)
	if err != nil {
		t.Fatal(err)
	}
	if c.Remaining() != 0 {
		t.Errorf("want all bits consumed, %d left", c.Remaining())
	}
	if ctx.Systems[1].NavMessage != 1 {
		t.Errorf("want nav message 1, got %d", ctx.Systems[1].NavMessage)
	}
}

// TestDecodeTruncated checks that every prefix of a mask fails with
// ErrInsufficientData and leaves the cursor where it was.
func TestDecodeTruncated(t *testing.T) {
	for _, variant := range []Variant{VariantCSSR, VariantHAS} {
		var w bitcursor.Writer
		writeTwoSystems(&w, variant)
		full := w.Cursor()

		for n := uint(0); n < full.Len(); n++ {
			c, _ := full.SubRange(0, n)
			ctx, err := Decode(&c, variant)
			if !errors.Is(err, bitcursor.ErrInsufficientData) {
				t.Fatalf("variant %d prefix %d: want ErrInsufficientData, got %v", variant, n, err)
			}
			if ctx != nil {
				t.Errorf("variant %d prefix %d: want no context", variant, n)
			}
			if c.Position() != 0 {
				t.Errorf("variant %d prefix %d: cursor moved to %d", variant, n, c.Position())
			}
		}
	}
}

// TestDecodeUnknownSystem checks that a bad GNSS ID is rejected.
func TestDecodeUnknownSystem(t *testing.T) {
	var w bitcursor.Writer
	w.PutUint(4, 1).PutUint(4, 9).PutUint(40, satMask(1)).PutUint(16, sigMask(0)).PutBool(false)
	c := w.Cursor()

	_, err := Decode(&c, VariantCSSR)
	if !errors.Is(err, signal.ErrUnknownGNSSID) {
		t.Errorf("want ErrUnknownGNSSID, got %v", err)
	}
	if c.Position() != 0 {
		t.Errorf("cursor moved to %d", c.Position())
	}
}

// TestReservedSignal checks that a reserved signal slot keeps its place.
func TestReservedSignal(t *testing.T) {
	var w bitcursor.Writer
	w.PutUint(4, 1).PutUint(4, 0).PutUint(40, satMask(5)).PutUint(16, sigMask(0, 14)).PutBool(false)
	c := w.Cursor()

	ctx, err := Decode(&c, VariantCSSR)
	if err != nil {
		t.Fatal(err)
	}
	sigs := ctx.Systems[0].Signals
	if len(sigs) != 2 || !sigs[1].Reserved() || sigs[1].Slot != 14 {
		t.Errorf("want a reserved signal in slot 14, got %v", sigs)
	}
}

// TestSubMask checks reading and applying a sub-mask.
func TestSubMask(t *testing.T) {
	var w bitcursor.Writer
	writeTwoSystems(&w, VariantCSSR)
	// GPS 01, Galileo 1.
	w.PutUint(3, 0x3)
	c := w.Cursor()

	ctx, err := Decode(&c, VariantCSSR)
	if err != nil {
		t.Fatal(err)
	}

	short, _ := c.SubRange(c.Position(), c.Position()+2)
	if _, err := ctx.ReadSubMask(&short); !errors.Is(err, bitcursor.ErrInsufficientData) {
		t.Errorf("want ErrInsufficientData, got %v", err)
	}

	sub, err := ctx.ReadSubMask(&c)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Count() != 2 || sub.Selected(0, 0) || !sub.Selected(0, 1) || !sub.Selected(1, 0) {
		t.Errorf("wrong sub-mask %v", sub)
	}
	sats, err := sub.Satellites(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sats) != 2 || sats[0].String() != "G03" || sats[1].String() != "E36" {
		t.Errorf("want G03 E36, got %v", sats)
	}

	full := ctx.FullSubMask()
	if full.Count() != ctx.NumSatellites() {
		t.Errorf("full sub-mask selects %d of %d", full.Count(), ctx.NumSatellites())
	}

	if _, err := (SubMask{}).Satellites(ctx); !errors.Is(err, ErrSubMaskMismatch) {
		t.Errorf("want ErrSubMaskMismatch, got %v", err)
	}
}

// TestString checks the readable version of the mask.
func TestString(t *testing.T) {
	const want = `mask: 2 systems, 3 satellites, 6 cells
GPS sats G01 G03
GPS sigs L1 C/A, L2 CL, L5 I+Q (explicit cells)
Galileo sats E36
Galileo sigs E1 C, E6 C (all cells)
`
	var w bitcursor.Writer
	writeTwoSystems(&w, VariantCSSR)
	c := w.Cursor()
	ctx, err := Decode(&c, VariantCSSR)
	if err != nil {
		t.Fatal(err)
	}

	got := ctx.String()
	if got != want {
		t.Error(diff.Diff(want, got))
	}
}
