package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// box is an axis-aligned hyper-rectangle described by its centre and a
// non-negative half-width on every axis.
type box struct {
	frame  wcs.Frame
	centre []float64
	half   []float64
}

// NewBox creates an axis-aligned box region spanning the two supplied
// opposite corners. The corners may be given in any order.
//
// Example:
//
//	frm := wcs.NewFrame(2, "")
//	b, err := region.NewBox(frm, []float64{-2, -2}, []float64{2, 2})
func NewBox(frame wcs.Frame, p1, p2 []float64) (*Region, error) {
	nax := frame.Naxes()
	if len(p1) != nax {
		return nil, &ErrDimensionMismatch{Op: "NewBox", Want: nax, Got: len(p1)}
	}
	if len(p2) != nax {
		return nil, &ErrDimensionMismatch{Op: "NewBox", Want: nax, Got: len(p2)}
	}
	b := &box{
		frame:  frame,
		centre: make([]float64, nax),
		half:   make([]float64, nax),
	}
	for i := 0; i < nax; i++ {
		if math.IsInf(p1[i], 0) || math.IsInf(p2[i], 0) ||
			math.IsNaN(p1[i]) || math.IsNaN(p2[i]) {
			return nil, fmt.Errorf("NewBox: corner value on axis %d is not finite", i+1)
		}
		b.centre[i] = (p1[i] + p2[i]) / 2
		b.half[i] = math.Abs(p2[i]-p1[i]) / 2
	}
	return newRegion(b)
}

func (b *box) Kind() string     { return "Box" }
func (b *box) Frame() wcs.Frame { return b.frame }

// DefiningPoints returns the centre followed by the upper corner.
func (b *box) DefiningPoints() *wcs.PointSet {
	ps := wcs.NewPointSet(len(b.centre))
	ps.Append(append([]float64(nil), b.centre...))
	corner := make([]float64, len(b.centre))
	for i := range corner {
		corner[i] = b.centre[i] + b.half[i]
	}
	ps.Append(corner)
	return ps
}

func (b *box) BaseBox() (lbnd, ubnd []float64) {
	n := len(b.centre)
	lbnd = make([]float64, n)
	ubnd = make([]float64, n)
	for i := 0; i < n; i++ {
		lbnd[i] = b.centre[i] - b.half[i]
		ubnd[i] = b.centre[i] + b.half[i]
	}
	return lbnd, ubnd
}

func (b *box) BaseMesh(size int) (*wcs.PointSet, error) {
	return boxMesh(b.centre, b.half, size)
}

// boxMesh builds a boundary mesh for an axis-aligned box, shared with the
// interval shape. In one dimension the mesh is the two end points, in two
// the perimeter is subdivided evenly, and in higher dimensions each face
// carries a lattice of points.
func boxMesh(centre, half []float64, size int) (*wcs.PointSet, error) {
	n := len(centre)
	ps := wcs.NewPointSet(n)
	switch n {
	case 1:
		ps.Append([]float64{centre[0] - half[0]})
		ps.Append([]float64{centre[0] + half[0]})
	case 2:
		perEdge := size / 4
		if perEdge < 1 {
			perEdge = 1
		}
		x0, x1 := centre[0]-half[0], centre[0]+half[0]
		y0, y1 := centre[1]-half[1], centre[1]+half[1]
		for k := 0; k < perEdge; k++ {
			t := float64(k) / float64(perEdge)
			ps.Append([]float64{x0 + t*(x1-x0), y0})
			ps.Append([]float64{x1, y0 + t*(y1-y0)})
			ps.Append([]float64{x1 - t*(x1-x0), y1})
			ps.Append([]float64{x0, y1 - t*(y1-y0)})
		}
	default:
		perFace := size / (2 * n)
		if perFace < 1 {
			perFace = 1
		}
		for face := 0; face < 2*n; face++ {
			axis := face / 2
			sign := 1.0
			if face%2 == 1 {
				sign = -1
			}
			for k := 0; k < perFace; k++ {
				p := make([]float64, n)
				lat := 0
				for j := 0; j < n; j++ {
					if j == axis {
						p[j] = centre[j] + sign*half[j]
						continue
					}
					p[j] = centre[j] + (2*latticeCoord(k, lat)-1)*half[j]
					lat++
				}
				ps.Append(p)
			}
		}
	}
	return ps, nil
}

func (b *box) Inside(p []float64) Membership {
	return boxInside(b.centre, b.half, p)
}

func boxInside(centre, half, p []float64) Membership {
	onEdge := false
	for i := range centre {
		d := math.Abs(p[i] - centre[i])
		switch {
		case d > half[i]:
			return Outside
		case d == half[i]:
			onEdge = true
		}
	}
	if onEdge {
		return OnBoundary
	}
	return Inside
}

// Pins checks that every point lies on a face of the box, to within the
// per-axis tolerances.
func (b *box) Pins(ps *wcs.PointSet, tol []float64) bool {
	return boxPins(b.centre, b.half, ps, tol)
}

func boxPins(centre, half []float64, ps *wcs.PointSet, tol []float64) bool {
	for i := 0; i < ps.Len(); i++ {
		if ps.IsBad(i) {
			continue
		}
		p := ps.Point(i)
		onFace := false
		for j := range centre {
			d := math.Abs(p[j] - centre[j])
			if d > half[j]+tol[j] {
				return false
			}
			if d >= half[j]-tol[j] {
				onFace = true
			}
		}
		if !onFace {
			return false
		}
	}
	return true
}

func (b *box) Bounded(negated bool) bool { return !negated }

func (b *box) Centre() []float64 { return append([]float64(nil), b.centre...) }

func (b *box) WithCentre(p []float64) (Shape, error) {
	if len(p) != len(b.centre) {
		return nil, &ErrDimensionMismatch{Op: "Box.WithCentre", Want: len(b.centre), Got: len(p)}
	}
	return &box{
		frame:  b.frame,
		centre: append([]float64(nil), p...),
		half:   append([]float64(nil), b.half...),
	}, nil
}
