package cssr

import (
	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/mask"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// Bias field layouts.
const (
	lenCodeBias      = 11
	lenPhaseBias     = 15
	lenDiscontinuity = 2

	scaleCodeBias  = 0.02
	scalePhaseBias = 0.001

	invalidCodeBias  = -1024
	invalidPhaseBias = -16384
)

func (r *reader) codeBias(sat signal.Satellite, sig signal.Signal) correction.SignalCodeBias {
	return correction.SignalCodeBias{
		Satellite: sat,
		Signal:    sig,
		Bias:      r.scaled(lenCodeBias, scaleCodeBias, invalidCodeBias),
	}
}

func (r *reader) phaseBias(sat signal.Satellite, sig signal.Signal) correction.SignalPhaseBias {
	return correction.SignalPhaseBias{
		Satellite:     sat,
		Signal:        sig,
		Bias:          r.scaled(lenPhaseBias, scalePhaseBias, invalidPhaseBias),
		Discontinuity: r.uint(lenDiscontinuity),
	}
}

// forEachCell calls f for each active cell of each satellite selected by
// sub, in mask order.
func forEachCell(ctx *mask.Context, sub mask.SubMask, f func(sat signal.Satellite, sig signal.Signal)) {
	for i := range ctx.Systems {
		sm := &ctx.Systems[i]
		for k, sat := range sm.Satellites {
			if !sub.Selected(i, k) {
				continue
			}
			for j, sig := range sm.Signals {
				if sm.CellActive(k, j) {
					f(sat, sig)
				}
			}
		}
	}
}

// decodeCodeBias decodes subtype 4: a code bias for each active cell.
func (d *Decoder) decodeCodeBias(c *bitcursor.Cursor) (correction.Record, uint, error) {
	unitStart := c.Position()
	r := reader{c: c}
	var record correction.CodeBias
	forEachCell(d.mask, d.mask.FullSubMask(), func(sat signal.Satellite, sig signal.Signal) {
		record.Biases = append(record.Biases, r.codeBias(sat, sig))
	})
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodePhaseBias decodes subtype 5: a phase bias and a discontinuity
// indicator for each active cell.
func (d *Decoder) decodePhaseBias(c *bitcursor.Cursor) (correction.Record, uint, error) {
	unitStart := c.Position()
	r := reader{c: c}
	var record correction.PhaseBias
	forEachCell(d.mask, d.mask.FullSubMask(), func(sat signal.Satellite, sig signal.Signal) {
		record.Biases = append(record.Biases, r.phaseBias(sat, sig))
	})
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodeCodePhaseBias decodes subtype 6.  Three flags say whether code
// biases, phase biases and a network sub-mask are present.  Each active
// cell of each selected satellite then has a code bias and/or a phase
// bias.  Without a network sub-mask every satellite is selected.
func (d *Decoder) decodeCodePhaseBias(c *bitcursor.Cursor) (correction.Record, uint, error) {
	r := reader{c: c}
	var record correction.CodePhaseBias
	record.CodeBiasPresent = r.bool()
	record.PhaseBiasPresent = r.bool()
	networkPresent := r.bool()
	unitStart := c.Position()

	var networkID uint
	sub := d.mask.FullSubMask()
	if networkPresent {
		networkID = r.uint(lenNetworkID)
		sub = r.subMask(d.mask)
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	record.Network = r.network(d.mask, networkPresent, networkID, sub)

	forEachCell(d.mask, sub, func(sat signal.Satellite, sig signal.Signal) {
		if record.CodeBiasPresent {
			record.CodeBiases = append(record.CodeBiases, r.codeBias(sat, sig))
		}
		if record.PhaseBiasPresent {
			record.PhaseBiases = append(record.PhaseBiases, r.phaseBias(sat, sig))
		}
	})
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}
