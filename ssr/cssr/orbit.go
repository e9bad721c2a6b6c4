package cssr

import (
	"github.com/goblimey/go-ssr/ssr/bitcursor"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/signal"
)

// Orbit and clock field layouts.
const (
	lenIODE        = 8
	lenIODEGalileo = 10
	lenRadial      = 15
	lenAlongTrack  = 13
	lenCrossTrack  = 13
	lenClockC0     = 15
	lenURA         = 6
	lenNetworkID   = 5

	scaleRadial = 0.0016
	scaleAlong  = 0.0064
	scaleCross  = 0.0064
	scaleClock  = 0.0016

	invalidRadial = -16384
	// The along and cross track fields are 13 bits, so their reserved code
	// is the most negative 13-bit value.
	invalidAlongCross = -4096
	invalidClock      = -16384
)

// orbit reads the orbit correction for one satellite.
func (r *reader) orbit(sat signal.Satellite) correction.SatelliteOrbit {
	lenIODEField := uint(lenIODE)
	if sat.System == signal.Galileo {
		lenIODEField = lenIODEGalileo
	}
	return correction.SatelliteOrbit{
		Satellite:  sat,
		IODE:       r.uint(lenIODEField),
		Radial:     r.scaled(lenRadial, scaleRadial, invalidRadial),
		AlongTrack: r.scaled(lenAlongTrack, scaleAlong, invalidAlongCross),
		CrossTrack: r.scaled(lenCrossTrack, scaleCross, invalidAlongCross),
	}
}

// clock reads the clock correction for one satellite.
func (r *reader) clock(sat signal.Satellite) correction.SatelliteClock {
	return correction.SatelliteClock{
		Satellite: sat,
		C0:        r.scaled(lenClockC0, scaleClock, invalidClock),
	}
}

// decodeOrbit decodes subtype 2: an orbit correction for each satellite in
// the mask.
func (d *Decoder) decodeOrbit(c *bitcursor.Cursor) (correction.Record, uint, error) {
	unitStart := c.Position()
	r := reader{c: c}
	var record correction.OrbitCorrection
	for i := range d.mask.Systems {
		for _, sat := range d.mask.Systems[i].Satellites {
			record.Satellites = append(record.Satellites, r.orbit(sat))
		}
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodeClock decodes subtype 3: a clock correction for each satellite in
// the mask.
func (d *Decoder) decodeClock(c *bitcursor.Cursor) (correction.Record, uint, error) {
	unitStart := c.Position()
	r := reader{c: c}
	var record correction.ClockCorrection
	for i := range d.mask.Systems {
		for _, sat := range d.mask.Systems[i].Satellites {
			record.Satellites = append(record.Satellites, r.clock(sat))
		}
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodeURA decodes subtype 7: a URA index for each satellite in the mask.
func (d *Decoder) decodeURA(c *bitcursor.Cursor) (correction.Record, uint, error) {
	unitStart := c.Position()
	r := reader{c: c}
	var record correction.URA
	for i := range d.mask.Systems {
		for _, sat := range d.mask.Systems[i].Satellites {
			ura := correction.SatelliteURA{Satellite: sat, Index: r.uint(lenURA)}
			record.Satellites = append(record.Satellites, ura)
		}
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}

// decodeOrbitClock decodes subtype 11: orbit and/or clock corrections.  If
// the network flag is set, a network ID and a satellite sub-mask follow and
// only the selected satellites have values.  Otherwise every satellite in
// the mask has values.
func (d *Decoder) decodeOrbitClock(c *bitcursor.Cursor) (correction.Record, uint, error) {
	r := reader{c: c}
	var record correction.OrbitClock
	record.OrbitPresent = r.bool()
	record.ClockPresent = r.bool()
	networkPresent := r.bool()
	var networkID uint
	if networkPresent {
		networkID = r.uint(lenNetworkID)
	}
	unitStart := c.Position()

	sub := d.mask.FullSubMask()
	if networkPresent {
		sub = r.subMask(d.mask)
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	record.Network = r.network(d.mask, networkPresent, networkID, sub)

	for i := range d.mask.Systems {
		for k, sat := range d.mask.Systems[i].Satellites {
			if !sub.Selected(i, k) {
				continue
			}
			if record.OrbitPresent {
				record.Orbits = append(record.Orbits, r.orbit(sat))
			}
			if record.ClockPresent {
				record.Clocks = append(record.Clocks, r.clock(sat))
			}
		}
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	return &record, unitStart, nil
}
