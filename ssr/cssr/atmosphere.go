package cssr

import (
	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/mask"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// STEC and troposphere field layouts.
const (
	lenSTECType      = 2
	lenQuality       = 6
	lenNumberOfGrids = 6

	lenC00 = 14
	lenC01 = 12
	lenC11 = 10
	lenC02 = 8

	scaleC00 = 0.05
	scaleC01 = 0.02
	scaleC11 = 0.02
	scaleC02 = 0.005

	invalidC00 = -8192
	invalidC01 = -2048
	invalidC11 = -512
	invalidC02 = -128

	lenTropoType      = 2
	lenGridRange      = 1
	lenHydrostatic    = 9
	lenWet            = 8
	scaleVertical     = 0.004
	invalidHydro      = -256
	invalidWet        = -128
	scaleGridSTEC     = 0.04
	lenGridSTECWide   = 16
	lenGridSTEC       = 7
	invalidWideSTEC   = -32767
	invalidNarrowSTEC = -64

	lenAvailability      = 2
	lenTropoModelType    = 2
	lenT00               = 9
	lenT01               = 7
	scaleT00             = 0.004
	scaleT01             = 0.002
	scaleT11             = 0.001
	invalidT00           = -256
	invalidT01           = -64
	lenTropoResidualSize = 1
	lenTropoOffset       = 4
	scaleTropoOffset     = 0.02
	scaleTropoResidual   = 0.004
	lenTropoResidualWide = 8
	lenTropoResidual     = 6
	invalidTropoWide     = -128
	invalidTropoNarrow   = -32
	lenSTECResidualSize  = 2
)

// stecResidualFormat is the width, scale and reserved code of the subtype
// 12 STEC residuals, chosen by a 2-bit selector.
var stecResidualFormat = [4]struct {
	width   uint
	scale   float64
	invalid int64
}{
	{4, 0.04, -8},
	{4, 0.12, -8},
	{5, 0.16, -16},
	{7, 0.24, -64},
}

// stecPolynomial reads the STEC polynomial coefficients for one satellite.
// The type decides how many there are.
func (r *reader) stecPolynomial(s *correction.SatelliteSTEC) {
	s.C00 = r.scaled(lenC00, scaleC00, invalidC00)
	if s.Type >= 1 {
		s.C01 = r.scaled(lenC01, scaleC01, invalidC01)
		s.C10 = r.scaled(lenC01, scaleC01, invalidC01)
	}
	if s.Type >= 2 {
		s.C11 = r.scaled(lenC11, scaleC11, invalidC11)
	}
	if s.Type >= 3 {
		s.C02 = r.scaled(lenC02, scaleC02, invalidC02)
		s.C20 = r.scaled(lenC02, scaleC02, invalidC02)
	}
}

// selectedSatellites calls f for each satellite selected by the sub-mask.
func (d *Decoder) selectedSatellites(sub mask.SubMask, f func(sat signal.Satellite)) {
	for i := range d.mask.Systems {
		for k, sat := range d.mask.Systems[i].Satellites {
			if sub.Selected(i, k) {
				f(sat)
			}
		}
	}
}

// decodeSTECPolynomial decodes subtype 8: a STEC polynomial for each
// satellite of a network.
func (d *Decoder) decodeSTECPolynomial(c *bitcursor.Cursor) (correction.Record, uint, error) {
	r := reader{c: c}
	var record correction.STECPolynomial
	record.Type = r.uint(lenSTECType)
	networkID := r.uint(lenNetworkID)
	unitStart := c.Position()
	sub := r.subMask(d.mask)
	if r.err != nil {
		return nil, 0, r.err
	}
	record.Network = r.network(d.mask, true, networkID, sub)

	d.selectedSatellites(sub, func(sat signal.Satellite) {
		s := correction.SatelliteSTEC{Satellite: sat, Type: record.Type}
		s.Quality = r.uint(lenQuality)
		r.stecPolynomial(&s)
		record.Satellites = append(record.Satellites, s)
	})
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodeGrid decodes subtype 9: for each grid point of a network, the
// troposphere delays and a STEC residual for each satellite of the
// network.
func (d *Decoder) decodeGrid(c *bitcursor.Cursor) (correction.Record, error) {
	r := reader{c: c}
	var record correction.STECGridResidual
	record.TropoType = r.uint(lenTropoType)
	record.WideResiduals = r.uint(lenGridRange) == 1
	networkID := r.uint(lenNetworkID)
	sub := r.subMask(d.mask)
	record.TropoQuality = r.uint(lenQuality)
	numGrids := r.uint(lenNumberOfGrids)
	if r.err != nil {
		return nil, r.err
	}
	record.Network = r.network(d.mask, true, networkID, sub)
	if r.err != nil {
		return nil, r.err
	}

	width, invalid := uint(lenGridSTEC), int64(invalidNarrowSTEC)
	if record.WideResiduals {
		width, invalid = lenGridSTECWide, invalidWideSTEC
	}

	record.Grids = make([]correction.GridPoint, 0, numGrids)
	for g := uint(0); g < numGrids; g++ {
		var point correction.GridPoint
		point.Hydrostatic = r.scaled(lenHydrostatic, scaleVertical, invalidHydro)
		point.Wet = r.scaled(lenWet, scaleVertical, invalidWet)
		d.selectedSatellites(sub, func(sat signal.Satellite) {
			res := correction.SatelliteResidual{
				Satellite: sat,
				Residual:  r.scaled(width, scaleGridSTEC, invalid),
			}
			point.Residuals = append(point.Residuals, res)
		})
		if r.err != nil {
			return nil, r.err
		}
		record.Grids = append(record.Grids, point)
	}
	return &record, nil
}

// decodeAtmosphere decodes subtype 12: an optional troposphere model,
// optional troposphere residuals and an optional STEC part, for one
// network.
func (d *Decoder) decodeAtmosphere(c *bitcursor.Cursor) (correction.Record, uint, error) {
	r := reader{c: c}
	var record correction.Atmosphere
	record.TropoAvailability = r.uint(lenAvailability)
	record.STECAvailability = r.uint(lenAvailability)
	record.NetworkID = r.uint(lenNetworkID)
	record.NumGrids = r.uint(lenNumberOfGrids)

	if record.TropoAvailability&2 != 0 {
		model := correction.TroposphereModel{
			Quality: r.uint(lenQuality),
			Type:    r.uint(lenTropoModelType),
		}
		model.T00 = r.scaled(lenT00, scaleT00, invalidT00)
		if model.Type >= 1 {
			model.T01 = r.scaled(lenT01, scaleT01, invalidT01)
			model.T10 = r.scaled(lenT01, scaleT01, invalidT01)
		}
		if model.Type >= 2 {
			model.T11 = r.scaled(lenT01, scaleT11, invalidT01)
		}
		record.Model = &model
	}

	if record.TropoAvailability&1 != 0 {
		var residual correction.TroposphereGridResidual
		residual.Wide = r.uint(lenTropoResidualSize) == 1
		residual.Offset = correction.Scaled(int64(r.uint(lenTropoOffset)), scaleTropoOffset)
		width, invalid := uint(lenTropoResidual), int64(invalidTropoNarrow)
		if residual.Wide {
			width, invalid = lenTropoResidualWide, invalidTropoWide
		}
		residual.Residuals = make([]correction.Value, 0, record.NumGrids)
		for g := uint(0); g < record.NumGrids; g++ {
			residual.Residuals = append(residual.Residuals, r.scaled(width, scaleTropoResidual, invalid))
		}
		record.TropoResidual = &residual
	}

	if r.err != nil {
		return nil, 0, r.err
	}
	unitStart := c.Position()

	if record.STECAvailability&2 != 0 {
		sub := r.subMask(d.mask)
		if r.err != nil {
			return nil, 0, r.err
		}
		record.Network = r.network(d.mask, true, record.NetworkID, sub)

		d.selectedSatellites(sub, func(sat signal.Satellite) {
			var s correction.SatelliteSTECGrid
			s.Satellite = sat
			s.Quality = r.uint(lenQuality)
			s.Type = r.uint(lenSTECType)
			r.stecPolynomial(&s.SatelliteSTEC)
			s.ResidualSize = r.uint(lenSTECResidualSize)
			format := stecResidualFormat[s.ResidualSize&3]
			s.Residuals = make([]correction.Value, 0, record.NumGrids)
			for g := uint(0); g < record.NumGrids; g++ {
				s.Residuals = append(s.Residuals, r.scaled(format.width, format.scale, format.invalid))
			}
			record.STEC = append(record.STEC, s)
		})
		if r.err != nil {
			return nil, 0, r.err
		}
	}

	return &record, unitStart, nil
}

// Service information field layouts.
const (
	lenServiceCounter  = 3
	lenServiceDataSize = 2
	serviceDataUnit    = 40
)

// decodeServiceInfo decodes subtype 10: a counter, a size and the raw
// service information bits.
func decodeServiceInfo(c *bitcursor.Cursor) (correction.Record, error) {
	r := reader{c: c}
	var record correction.AuxFrameData
	record.Counter = r.uint(lenServiceCounter)
	record.Size = (r.uint(lenServiceDataSize) + 1) * serviceDataUnit
	if r.err != nil {
		return nil, r.err
	}
	record.Data = r.bits(record.Size)
	if r.err != nil {
		return nil, r.err
	}
	return &record, nil
}
