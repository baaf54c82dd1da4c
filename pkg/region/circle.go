package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// circle is a hypersphere: all points within a given geodesic distance of
// a centre position.
type circle struct {
	frame  wcs.Frame
	centre []float64
	radius float64
}

// NewCircle creates a circular region (a hypersphere for frames with more
// than two axes) with the given centre and radius in the supplied frame.
//
// Example:
//
//	frm := wcs.NewFrame(2, "")
//	c, err := region.NewCircle(frm, []float64{0, 0}, 1.0)
func NewCircle(frame wcs.Frame, centre []float64, radius float64) (*Region, error) {
	if len(centre) != frame.Naxes() {
		return nil, &ErrDimensionMismatch{Op: "NewCircle", Want: frame.Naxes(), Got: len(centre)}
	}
	if radius < 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		return nil, fmt.Errorf("NewCircle: invalid radius %g", radius)
	}
	c := &circle{
		frame:  frame,
		centre: append([]float64(nil), centre...),
		radius: radius,
	}
	return newRegion(c)
}

func (c *circle) Kind() string     { return "Circle" }
func (c *circle) Frame() wcs.Frame { return c.frame }

// DefiningPoints returns the centre followed by a point on the
// circumference, reached by a geodesic offset along the first axis.
func (c *circle) DefiningPoints() *wcs.PointSet {
	ps := wcs.NewPointSet(len(c.centre))
	ps.Append(append([]float64(nil), c.centre...))
	ps.Append(c.edgePoint())
	return ps
}

func (c *circle) edgePoint() []float64 {
	dir := append([]float64(nil), c.centre...)
	dir[0]++
	return c.frame.Offset(c.centre, dir, c.radius)
}

// BaseBox returns the centre +/- radius box. For curved frames this is the
// locally flat approximation.
func (c *circle) BaseBox() (lbnd, ubnd []float64) {
	n := len(c.centre)
	lbnd = make([]float64, n)
	ubnd = make([]float64, n)
	for i := 0; i < n; i++ {
		lbnd[i] = c.centre[i] - c.radius
		ubnd[i] = c.centre[i] + c.radius
	}
	return lbnd, ubnd
}

func (c *circle) BaseMesh(size int) (*wcs.PointSet, error) {
	n := len(c.centre)
	ps := wcs.NewPointSet(n)
	switch n {
	case 1:
		ps.Append([]float64{c.centre[0] - c.radius})
		ps.Append([]float64{c.centre[0] + c.radius})
	case 2:
		for k := 0; k < size; k++ {
			t := 2 * math.Pi * float64(k) / float64(size)
			ps.Append([]float64{
				c.centre[0] + c.radius*math.Cos(t),
				c.centre[1] + c.radius*math.Sin(t),
			})
		}
	default:
		// Deterministic quasi-random directions, normalized onto the
		// hypersphere.
		for k := 0; k < size; k++ {
			dir := make([]float64, n)
			norm := 0.0
			for j := 0; j < n; j++ {
				dir[j] = 2*latticeCoord(k, j) - 1
				norm += dir[j] * dir[j]
			}
			if norm == 0 {
				dir[0], norm = 1, 1
			}
			norm = math.Sqrt(norm)
			for j := 0; j < n; j++ {
				dir[j] = c.centre[j] + c.radius*dir[j]/norm
			}
			ps.Append(dir)
		}
	}
	return ps, nil
}

func (c *circle) Inside(p []float64) Membership {
	d := c.frame.Distance(c.centre, p)
	switch {
	case d < c.radius:
		return Inside
	case d == c.radius:
		return OnBoundary
	default:
		return Outside
	}
}

// Pins checks that every point lies within the combined uncertainty of the
// circumference. The per-axis tolerances are collapsed to a single radial
// tolerance, the half-diagonal of the uncertainty box.
func (c *circle) Pins(ps *wcs.PointSet, tol []float64) bool {
	rtol := normOf(tol)
	for i := 0; i < ps.Len(); i++ {
		if ps.IsBad(i) {
			continue
		}
		d := c.frame.Distance(c.centre, ps.Point(i))
		if math.Abs(d-c.radius) > rtol {
			return false
		}
	}
	return true
}

func (c *circle) Bounded(negated bool) bool { return !negated }

func (c *circle) Centre() []float64 { return append([]float64(nil), c.centre...) }

func (c *circle) WithCentre(p []float64) (Shape, error) {
	if len(p) != len(c.centre) {
		return nil, &ErrDimensionMismatch{Op: "Circle.WithCentre", Want: len(c.centre), Got: len(p)}
	}
	return &circle{
		frame:  c.frame,
		centre: append([]float64(nil), p...),
		radius: c.radius,
	}, nil
}

func normOf(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// latticeCoord returns the fractional part of (k+1) times an irrational
// constant chosen per axis, giving a deterministic low-discrepancy lattice.
func latticeCoord(k, j int) float64 {
	irr := [...]float64{
		math.Sqrt2, math.Sqrt(3), math.Sqrt(5), math.Sqrt(7),
		math.Sqrt(11), math.Sqrt(13), math.Sqrt(17), math.Sqrt(19),
	}
	v := float64(k+1) * irr[j%len(irr)]
	return v - math.Floor(v)
}
