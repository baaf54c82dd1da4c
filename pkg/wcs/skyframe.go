package wcs

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// SkySystem identifies the celestial coordinate system of a SkyFrame.
type SkySystem string

const (
	// SystemICRS is the International Celestial Reference System.
	SystemICRS SkySystem = "ICRS"

	// SystemFK5 is the FK5 equatorial system (J2000 equinox).
	SystemFK5 SkySystem = "FK5"

	// SystemGalactic is the IAU 1958 galactic coordinate system.
	SystemGalactic SkySystem = "GALACTIC"
)

// SkyFrame is a two-axis celestial coordinate system.
//
// Axis 0 is longitude and axis 1 is latitude, both in radians. Distances
// and offsets follow great circles on the celestial sphere. Normalized
// longitudes lie in [0, 2*pi) unless NegLon is set, in which case they
// lie in [-pi, pi].
type SkyFrame struct {
	system SkySystem
	domain string
	negLon bool
}

// NewSkyFrame creates a SkyFrame for the given celestial system.
func NewSkyFrame(system SkySystem) *SkyFrame {
	return &SkyFrame{system: system, domain: "SKY"}
}

// System returns the celestial coordinate system of the frame.
func (f *SkyFrame) System() SkySystem { return f.system }

// NegLon reports whether Norm wraps longitudes into [-pi, pi] instead of
// the default [0, 2*pi).
func (f *SkyFrame) NegLon() bool { return f.negLon }

// SetNegLon selects the longitude range used by Norm: [-pi, pi] when set,
// [0, 2*pi) otherwise.
func (f *SkyFrame) SetNegLon(neg bool) { f.negLon = neg }

// Naxes returns 2 (longitude, latitude).
func (f *SkyFrame) Naxes() int { return 2 }

// Domain returns "SKY".
func (f *SkyFrame) Domain() string { return f.domain }

// Distance returns the great-circle distance between two sky positions,
// in radians.
func (f *SkyFrame) Distance(p1, p2 []float64) float64 {
	if p1[0] == Bad || p1[1] == Bad || p2[0] == Bad || p2[1] == Bad {
		return Bad
	}
	a := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(p1[1]), Lng: s1.Angle(p1[0])})
	b := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(p2[1]), Lng: s1.Angle(p2[0])})
	return a.Distance(b).Radians()
}

// AxDistance returns the signed distance from v1 to v2 along one axis.
// Longitude differences are wrapped into [-pi, pi].
func (f *SkyFrame) AxDistance(axis int, v1, v2 float64) float64 {
	if v1 == Bad || v2 == Bad {
		return Bad
	}
	d := v2 - v1
	if axis == 0 {
		d = math.Remainder(d, 2*math.Pi)
	}
	return d
}

// Offset returns the sky position at the given arc distance from p1 along
// the great circle through p1 and p2.
func (f *SkyFrame) Offset(p1, p2 []float64, dist float64) []float64 {
	a := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(p1[1]), Lng: s1.Angle(p1[0])})
	b := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(p2[1]), Lng: s1.Angle(p2[0])})
	c := s2.InterpolateAtDistance(s1.Angle(dist), a, b)
	ll := s2.LatLngFromPoint(c)
	return []float64{ll.Lng.Radians(), ll.Lat.Radians()}
}

// Norm normalizes a sky position in place. Latitude is folded into
// [-pi/2, pi/2], moving over the pole when necessary: a position past a
// pole reflects to the far meridian, so the longitude gains pi. Longitude
// then wraps into [0, 2*pi), or [-pi, pi] when NegLon is set.
func (f *SkyFrame) Norm(p []float64) {
	if p[0] == Bad || p[1] == Bad {
		return
	}
	lat := math.Remainder(p[1], 2*math.Pi)
	lon := p[0]
	switch {
	case lat > math.Pi/2:
		lat = math.Pi - lat
		lon += math.Pi
	case lat < -math.Pi/2:
		lat = -math.Pi - lat
		lon += math.Pi
	}
	if f.negLon {
		lon = math.Remainder(lon, 2*math.Pi)
	} else {
		lon = math.Mod(lon, 2*math.Pi)
		if lon < 0 {
			lon += 2 * math.Pi
		}
	}
	p[0] = lon
	p[1] = lat
}

// Equal reports whether the other frame is a SkyFrame with the same system.
func (f *SkyFrame) Equal(other Frame) bool {
	o, ok := other.(*SkyFrame)
	return ok && o.system == f.system
}
