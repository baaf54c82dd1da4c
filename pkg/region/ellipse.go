package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// ellipse is a two dimensional elliptical area described by its centre,
// two semi-axis lengths and the position angle of the first semi-axis,
// measured anti-clockwise from the first frame axis in radians.
type ellipse struct {
	frame  wcs.Frame
	centre []float64
	a, b   float64
	angle  float64
}

// NewEllipse creates an elliptical region in a two dimensional frame. The
// semi-axis lengths a and b must be positive; angle gives the orientation
// of the first semi-axis in radians, anti-clockwise from the first frame
// axis.
func NewEllipse(frame wcs.Frame, centre []float64, a, b, angle float64) (*Region, error) {
	if frame.Naxes() != 2 {
		return nil, &ErrDimensionMismatch{Op: "NewEllipse", Want: 2, Got: frame.Naxes()}
	}
	if len(centre) != 2 {
		return nil, &ErrDimensionMismatch{Op: "NewEllipse", Want: 2, Got: len(centre)}
	}
	if !(a > 0) || !(b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("NewEllipse: invalid semi-axis lengths (%g, %g)", a, b)
	}
	e := &ellipse{
		frame:  frame,
		centre: append([]float64(nil), centre...),
		a:      a,
		b:      b,
		angle:  angle,
	}
	return newRegion(e)
}

func (e *ellipse) Kind() string     { return "Ellipse" }
func (e *ellipse) Frame() wcs.Frame { return e.frame }

// DefiningPoints returns the centre followed by the ends of the two
// semi-axes.
func (e *ellipse) DefiningPoints() *wcs.PointSet {
	ps := wcs.NewPointSet(2)
	ps.Append(append([]float64(nil), e.centre...))
	ps.Append(e.boundaryPoint(0))
	ps.Append(e.boundaryPoint(math.Pi / 2))
	return ps
}

// boundaryPoint returns the boundary position at ellipse parameter t.
func (e *ellipse) boundaryPoint(t float64) []float64 {
	u := e.a * math.Cos(t)
	v := e.b * math.Sin(t)
	cosA, sinA := math.Cos(e.angle), math.Sin(e.angle)
	return []float64{
		e.centre[0] + u*cosA - v*sinA,
		e.centre[1] + u*sinA + v*cosA,
	}
}

func (e *ellipse) BaseBox() (lbnd, ubnd []float64) {
	cosA, sinA := math.Cos(e.angle), math.Sin(e.angle)
	ex := math.Hypot(e.a*cosA, e.b*sinA)
	ey := math.Hypot(e.a*sinA, e.b*cosA)
	lbnd = []float64{e.centre[0] - ex, e.centre[1] - ey}
	ubnd = []float64{e.centre[0] + ex, e.centre[1] + ey}
	return lbnd, ubnd
}

func (e *ellipse) BaseMesh(size int) (*wcs.PointSet, error) {
	ps := wcs.NewPointSet(2)
	for k := 0; k < size; k++ {
		t := 2 * math.Pi * float64(k) / float64(size)
		ps.Append(e.boundaryPoint(t))
	}
	return ps, nil
}

// scaled returns the normalised elliptical radius of a point: below one
// inside, one on the boundary, above one outside.
func (e *ellipse) scaled(p []float64) float64 {
	dx := p[0] - e.centre[0]
	dy := p[1] - e.centre[1]
	cosA, sinA := math.Cos(e.angle), math.Sin(e.angle)
	u := dx*cosA + dy*sinA
	v := -dx*sinA + dy*cosA
	return math.Hypot(u/e.a, v/e.b)
}

func (e *ellipse) Inside(p []float64) Membership {
	q := e.scaled(p)
	switch {
	case q < 1:
		return Inside
	case q == 1:
		return OnBoundary
	default:
		return Outside
	}
}

// Pins converts the normalised radius of each point into an approximate
// linear distance from the boundary and compares it against the combined
// tolerance.
func (e *ellipse) Pins(ps *wcs.PointSet, tol []float64) bool {
	rtol := normOf(tol)
	short := math.Min(e.a, e.b)
	for i := 0; i < ps.Len(); i++ {
		if ps.IsBad(i) {
			continue
		}
		q := e.scaled(ps.Point(i))
		if math.Abs(q-1)*short > rtol {
			return false
		}
	}
	return true
}

func (e *ellipse) Bounded(negated bool) bool { return !negated }

func (e *ellipse) Centre() []float64 { return append([]float64(nil), e.centre...) }

func (e *ellipse) WithCentre(p []float64) (Shape, error) {
	if len(p) != 2 {
		return nil, &ErrDimensionMismatch{Op: "Ellipse.WithCentre", Want: 2, Got: len(p)}
	}
	return &ellipse{
		frame:  e.frame,
		centre: append([]float64(nil), p...),
		a:      e.a,
		b:      e.b,
		angle:  e.angle,
	}, nil
}
