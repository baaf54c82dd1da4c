package wcs

import "math"

// Bad is the sentinel value used to flag an undefined coordinate.
//
// Mappings assign Bad to every axis of a point that falls outside their
// domain, and the region package uses the same convention to flag points
// outside a region when a region is applied as a mapping.
const Bad = -math.MaxFloat64

// PointSet holds a batch of positions within a coordinate system.
//
// Each point is a slice of axis values. All points in a set have the same
// number of axes. Points flagged with Bad on any axis are considered
// undefined.
type PointSet struct {
	naxes  int
	points [][]float64
}

// NewPointSet creates an empty PointSet with the given number of axes.
func NewPointSet(naxes int) *PointSet {
	return &PointSet{naxes: naxes}
}

// NewPointSetFrom creates a PointSet with the given axis count and points.
// The point slices are used directly, not copied.
func NewPointSetFrom(naxes int, points [][]float64) *PointSet {
	return &PointSet{naxes: naxes, points: points}
}

// Naxes returns the number of axis values per point.
func (ps *PointSet) Naxes() int { return ps.naxes }

// Len returns the number of points in the set.
func (ps *PointSet) Len() int { return len(ps.points) }

// Point returns the i'th point. The returned slice is not a copy.
func (ps *PointSet) Point(i int) []float64 { return ps.points[i] }

// Points returns the underlying point slices.
func (ps *PointSet) Points() [][]float64 { return ps.points }

// Append adds a point to the set. The slice is used directly, not copied.
func (ps *PointSet) Append(p []float64) { ps.points = append(ps.points, p) }

// Copy returns a deep copy of the point set.
func (ps *PointSet) Copy() *PointSet {
	out := &PointSet{naxes: ps.naxes, points: make([][]float64, len(ps.points))}
	for i, p := range ps.points {
		q := make([]float64, len(p))
		copy(q, p)
		out.points[i] = q
	}
	return out
}

// IsBad reports whether the i'th point has a Bad value on any axis.
func (ps *PointSet) IsBad(i int) bool {
	for _, v := range ps.points[i] {
		if v == Bad {
			return true
		}
	}
	return false
}

// SetBad flags every axis of the i'th point with the Bad value.
func (ps *PointSet) SetBad(i int) {
	for ax := range ps.points[i] {
		ps.points[i][ax] = Bad
	}
}

// Equal reports whether two point sets have the same axis count and
// identical point values.
func (ps *PointSet) Equal(other *PointSet) bool {
	if ps == nil || other == nil {
		return ps == other
	}
	if ps.naxes != other.naxes || len(ps.points) != len(other.points) {
		return false
	}
	for i, p := range ps.points {
		q := other.points[i]
		for ax, v := range p {
			if v != q[ax] {
				return false
			}
		}
	}
	return true
}
