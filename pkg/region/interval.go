package region

import (
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// interval is an axis interval: every axis is constrained to lie between a
// lower and an upper limit, either of which may be infinite. With all
// limits finite an interval is equivalent to a box; with some infinite it
// describes an unbounded slab.
type interval struct {
	frame      wcs.Frame
	lbnd, ubnd []float64
}

// NewInterval creates an axis-interval region. Bounds may be -Inf or +Inf
// to leave an axis unconstrained on that side. Each lower bound must not
// exceed the corresponding upper bound.
func NewInterval(frame wcs.Frame, lbnd, ubnd []float64) (*Region, error) {
	nax := frame.Naxes()
	if len(lbnd) != nax {
		return nil, &ErrDimensionMismatch{Op: "NewInterval", Want: nax, Got: len(lbnd)}
	}
	if len(ubnd) != nax {
		return nil, &ErrDimensionMismatch{Op: "NewInterval", Want: nax, Got: len(ubnd)}
	}
	for i := 0; i < nax; i++ {
		if lbnd[i] > ubnd[i] {
			return nil, &ErrInvalidInterval{Axis: i, Lower: lbnd[i], Upper: ubnd[i]}
		}
	}
	iv := &interval{
		frame: frame,
		lbnd:  append([]float64(nil), lbnd...),
		ubnd:  append([]float64(nil), ubnd...),
	}
	return newRegion(iv)
}

func (iv *interval) Kind() string     { return "Interval" }
func (iv *interval) Frame() wcs.Frame { return iv.frame }

func (iv *interval) allFinite() bool {
	for i := range iv.lbnd {
		if math.IsInf(iv.lbnd[i], 0) || math.IsInf(iv.ubnd[i], 0) {
			return false
		}
	}
	return true
}

// DefiningPoints returns the two limit corners. Infinite limits appear
// as infinities.
func (iv *interval) DefiningPoints() *wcs.PointSet {
	ps := wcs.NewPointSet(len(iv.lbnd))
	ps.Append(append([]float64(nil), iv.lbnd...))
	ps.Append(append([]float64(nil), iv.ubnd...))
	return ps
}

func (iv *interval) BaseBox() (lbnd, ubnd []float64) {
	return append([]float64(nil), iv.lbnd...), append([]float64(nil), iv.ubnd...)
}

func (iv *interval) BaseMesh(size int) (*wcs.PointSet, error) {
	if !iv.allFinite() {
		return nil, &ErrUnboundedRegion{Kind: "Interval", Op: "BaseMesh"}
	}
	centre, half := iv.centreHalf()
	return boxMesh(centre, half, size)
}

func (iv *interval) centreHalf() (centre, half []float64) {
	n := len(iv.lbnd)
	centre = make([]float64, n)
	half = make([]float64, n)
	for i := 0; i < n; i++ {
		centre[i] = (iv.lbnd[i] + iv.ubnd[i]) / 2
		half[i] = (iv.ubnd[i] - iv.lbnd[i]) / 2
	}
	return centre, half
}

func (iv *interval) Inside(p []float64) Membership {
	onEdge := false
	for i := range iv.lbnd {
		switch {
		case p[i] < iv.lbnd[i] || p[i] > iv.ubnd[i]:
			return Outside
		case p[i] == iv.lbnd[i] || p[i] == iv.ubnd[i]:
			onEdge = true
		}
	}
	if onEdge {
		return OnBoundary
	}
	return Inside
}

// Pins checks that every point lies on one of the finite limit planes,
// within the others, to the given per-axis tolerances.
func (iv *interval) Pins(ps *wcs.PointSet, tol []float64) bool {
	for i := 0; i < ps.Len(); i++ {
		if ps.IsBad(i) {
			continue
		}
		p := ps.Point(i)
		onFace := false
		for j := range iv.lbnd {
			if p[j] < iv.lbnd[j]-tol[j] || p[j] > iv.ubnd[j]+tol[j] {
				return false
			}
			if (!math.IsInf(iv.lbnd[j], 0) && p[j] <= iv.lbnd[j]+tol[j]) ||
				(!math.IsInf(iv.ubnd[j], 0) && p[j] >= iv.ubnd[j]-tol[j]) {
				onFace = true
			}
		}
		if !onFace {
			return false
		}
	}
	return true
}

// Bounded reports finite coverage: with any infinite limit the interval is
// unbounded in both negation polarities.
func (iv *interval) Bounded(negated bool) bool {
	return !negated && iv.allFinite()
}

func (iv *interval) Centre() []float64 {
	if !iv.allFinite() {
		return nil
	}
	centre, _ := iv.centreHalf()
	return centre
}

func (iv *interval) WithCentre(p []float64) (Shape, error) {
	if !iv.allFinite() {
		return nil, &ErrUnsupportedOperation{Kind: "Interval", Op: "re-centring an unbounded interval"}
	}
	if len(p) != len(iv.lbnd) {
		return nil, &ErrDimensionMismatch{Op: "Interval.WithCentre", Want: len(iv.lbnd), Got: len(p)}
	}
	_, half := iv.centreHalf()
	lbnd := make([]float64, len(p))
	ubnd := make([]float64, len(p))
	for i := range p {
		lbnd[i] = p[i] - half[i]
		ubnd[i] = p[i] + half[i]
	}
	return &interval{frame: iv.frame, lbnd: lbnd, ubnd: ubnd}, nil
}
