package wcs

import "math"

// Frame describes a coordinate system.
//
// A Frame knows its axis count and supplies the geometric primitives that
// depend on the nature of the coordinate system: point-to-point distance,
// offsets along geodesics, and normalization of axis values into their
// canonical ranges.
type Frame interface {
	// Naxes returns the number of axes in the coordinate system.
	Naxes() int

	// Domain returns an identifier for the physical domain of the frame
	// (e.g. "GRID", "SKY"). May be empty.
	Domain() string

	// Distance returns the geodesic distance between two points.
	Distance(p1, p2 []float64) float64

	// AxDistance returns the signed distance from v1 to v2 along one axis
	// (zero-based), taking any cyclic axis ranges into account.
	AxDistance(axis int, v1, v2 float64) float64

	// Offset returns the point at the given geodesic distance from p1
	// along the geodesic passing through p1 and p2.
	Offset(p1, p2 []float64, dist float64) []float64

	// Norm normalizes the axis values of a point in place into their
	// canonical ranges.
	Norm(p []float64)

	// Equal reports whether the other frame describes the same coordinate
	// system.
	Equal(other Frame) bool
}

// CartesianFrame is a flat Euclidean coordinate system with an arbitrary
// number of axes.
type CartesianFrame struct {
	naxes  int
	domain string
}

// NewFrame creates a Cartesian frame with the given axis count and domain.
func NewFrame(naxes int, domain string) *CartesianFrame {
	return &CartesianFrame{naxes: naxes, domain: domain}
}

// Naxes returns the number of axes.
func (f *CartesianFrame) Naxes() int { return f.naxes }

// Domain returns the frame's domain identifier.
func (f *CartesianFrame) Domain() string { return f.domain }

// Distance returns the Euclidean distance between two points.
func (f *CartesianFrame) Distance(p1, p2 []float64) float64 {
	sum := 0.0
	for i := 0; i < f.naxes; i++ {
		if p1[i] == Bad || p2[i] == Bad {
			return Bad
		}
		d := p2[i] - p1[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// AxDistance returns the signed difference v2-v1 along an axis.
func (f *CartesianFrame) AxDistance(axis int, v1, v2 float64) float64 {
	if v1 == Bad || v2 == Bad {
		return Bad
	}
	return v2 - v1
}

// Offset returns the point at distance dist from p1 along the straight line
// through p1 and p2.
func (f *CartesianFrame) Offset(p1, p2 []float64, dist float64) []float64 {
	out := make([]float64, f.naxes)
	sep := f.Distance(p1, p2)
	if sep == Bad || sep == 0 {
		copy(out, p1)
		return out
	}
	frac := dist / sep
	for i := 0; i < f.naxes; i++ {
		out[i] = p1[i] + frac*(p2[i]-p1[i])
	}
	return out
}

// Norm is a no-op for Cartesian frames: all axis values are canonical.
func (f *CartesianFrame) Norm(p []float64) {}

// Equal reports whether the other frame is a Cartesian frame with the same
// axis count and domain.
func (f *CartesianFrame) Equal(other Frame) bool {
	o, ok := other.(*CartesianFrame)
	return ok && o.naxes == f.naxes && o.domain == f.domain
}

// Convert finds a mapping which converts positions in the "from" frame into
// positions in the "to" frame.
//
// Two frames are convertible when they describe the same coordinate system:
// Cartesian frames with equal axis counts and compatible domains (an empty
// domain matches anything), or sky frames with the same celestial system.
// The returned mapping is then the identity. An ErrNoConversion error is
// returned when no connection exists.
func Convert(from, to Frame) (Mapping, error) {
	if from == to {
		return NewUnitMap(from.Naxes()), nil
	}
	switch f := from.(type) {
	case *CartesianFrame:
		t, ok := to.(*CartesianFrame)
		if ok && t.naxes == f.naxes &&
			(t.domain == f.domain || t.domain == "" || f.domain == "") {
			return NewUnitMap(f.naxes), nil
		}
	case *SkyFrame:
		t, ok := to.(*SkyFrame)
		if ok && t.system == f.system {
			return NewUnitMap(2), nil
		}
	}
	return nil, &ErrNoConversion{From: frameName(from), To: frameName(to)}
}

func frameName(f Frame) string {
	if f.Domain() != "" {
		return f.Domain()
	}
	switch f.(type) {
	case *SkyFrame:
		return "SKY"
	default:
		return "CARTESIAN"
	}
}
