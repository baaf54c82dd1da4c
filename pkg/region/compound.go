package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// CmpOp selects how a compound region combines its two operands.
type CmpOp int

const (
	// CmpAnd keeps the intersection of the two operand regions.
	CmpAnd CmpOp = iota

	// CmpOr keeps the union of the two operand regions.
	CmpOr
)

func (op CmpOp) String() string {
	if op == CmpAnd {
		return "AND"
	}
	return "OR"
}

// compound combines two complete regions with a boolean operator. Its
// geometry lives in the current frame of the first operand; the second
// operand is converted into that frame when the compound is built.
type compound struct {
	frame wcs.Frame
	op    CmpOp
	a, b  *Region
}

// NewCompound creates a region combining two operand regions with the
// given boolean operator. The operands are deep-copied, and the second is
// converted into the coordinate system of the first; the conversion must
// exist. The operands keep their own Negated and Closed settings, so an
// intersection with a negated circle punches a hole.
func NewCompound(op CmpOp, a, b *Region) (*Region, error) {
	if op != CmpAnd && op != CmpOr {
		return nil, fmt.Errorf("NewCompound: unknown operator %d", int(op))
	}
	if a.Naxes() != b.Naxes() {
		return nil, &ErrDimensionMismatch{Op: "NewCompound", Want: a.Naxes(), Got: b.Naxes()}
	}
	conv, err := wcs.Convert(b.currentFrame(), a.currentFrame())
	if err != nil {
		return nil, fmt.Errorf("NewCompound: cannot align the operand frames: %w", err)
	}
	var b2 *Region
	if wcs.IsUnit(conv.Simplify()) {
		b2 = b.Copy()
	} else {
		if b2, err = b.MapRegion(conv, a.currentFrame()); err != nil {
			return nil, err
		}
	}
	c := &compound{
		frame: a.currentFrame(),
		op:    op,
		a:     a.Copy(),
		b:     b2,
	}
	return newRegion(c)
}

func (c *compound) Kind() string     { return "Compound" }
func (c *compound) Frame() wcs.Frame { return c.frame }

// DefiningPoints returns nil; a compound has no defining points of its
// own.
func (c *compound) DefiningPoints() *wcs.PointSet { return nil }

func (c *compound) equalShape(other Shape) bool {
	o, ok := other.(*compound)
	if !ok {
		return false
	}
	return c.op == o.op && c.a.Equal(o.a) && c.b.Equal(o.b)
}

// member reports plain membership of a compound-frame point in an operand.
func member(reg *Region, p []float64) bool {
	in, err := reg.Contains(p)
	return err == nil && in
}

func (c *compound) combine(inA, inB bool) bool {
	if c.op == CmpAnd {
		return inA && inB
	}
	return inA || inB
}

func (c *compound) Inside(p []float64) Membership {
	if c.combine(member(c.a, p), member(c.b, p)) {
		return Inside
	}
	return Outside
}

// BaseBox intersects or unions the operand bounding boxes. An operand
// whose bounds cannot be evaluated contributes an infinite box.
func (c *compound) BaseBox() (lbnd, ubnd []float64) {
	la, ua := operandBounds(c.a)
	lb, ub := operandBounds(c.b)
	n := c.frame.Naxes()
	lbnd = make([]float64, n)
	ubnd = make([]float64, n)
	for i := 0; i < n; i++ {
		if c.op == CmpAnd {
			lbnd[i] = maxf(la[i], lb[i])
			ubnd[i] = minf(ua[i], ub[i])
		} else {
			lbnd[i] = minf(la[i], lb[i])
			ubnd[i] = maxf(ua[i], ub[i])
		}
	}
	return lbnd, ubnd
}

func operandBounds(reg *Region) (lbnd, ubnd []float64) {
	lbnd, ubnd, err := reg.Bounds()
	if err != nil {
		n := reg.Naxes()
		lbnd = make([]float64, n)
		ubnd = make([]float64, n)
		for i := 0; i < n; i++ {
			lbnd[i] = math.Inf(-1)
			ubnd[i] = math.Inf(1)
		}
	}
	return lbnd, ubnd
}

// BaseMesh meshes each operand and keeps the points that lie on the
// compound's own boundary: for an intersection the parts of each boundary
// inside the other operand, for a union the parts outside. If filtering
// removes everything (e.g. a disjoint intersection) the unfiltered points
// are returned so callers still have a finite probe set.
func (c *compound) BaseMesh(size int) (*wcs.PointSet, error) {
	half := size / 2
	if half < 5 {
		half = 5
	}
	keepIfMember := c.op == CmpAnd

	out := wcs.NewPointSet(c.frame.Naxes())
	all := wcs.NewPointSet(c.frame.Naxes())
	if err := c.meshOperand(c.a, c.b, half, keepIfMember, out, all); err != nil {
		return nil, err
	}
	if err := c.meshOperand(c.b, c.a, half, keepIfMember, out, all); err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return all, nil
	}
	return out, nil
}

func (c *compound) meshOperand(reg, other *Region, size int, keepIfMember bool, out, all *wcs.PointSet) error {
	rc := reg.Copy()
	rc.SetMeshSize(size)
	mesh, err := rc.Mesh()
	if err != nil {
		return err
	}
	for i := 0; i < mesh.Len(); i++ {
		if mesh.IsBad(i) {
			continue
		}
		p := mesh.Point(i)
		all.Append(append([]float64(nil), p...))
		if member(other, p) == keepIfMember {
			out.Append(append([]float64(nil), p...))
		}
	}
	return nil
}

// Pins accepts a point when it sits on the boundary of either operand, to
// within the given tolerances.
func (c *compound) Pins(ps *wcs.PointSet, tol []float64) bool {
	for i := 0; i < ps.Len(); i++ {
		if ps.IsBad(i) {
			continue
		}
		p := ps.Point(i)
		if !onOperandBoundary(c.a, p, tol) && !onOperandBoundary(c.b, p, tol) {
			return false
		}
	}
	return true
}

// onOperandBoundary maps a compound-frame point into the operand's base
// frame and tests it against the operand's own boundary. The tolerances
// are carried over unscaled, so for operands with a non-trivial
// base-to-current mapping the test is approximate.
func onOperandBoundary(reg *Region, p []float64, tol []float64) bool {
	m, err := reg.regMapping()
	if err != nil {
		return false
	}
	base := p
	if !wcs.IsUnit(m) {
		ps := wcs.NewPointSet(len(p))
		ps.Append(append([]float64(nil), p...))
		out, err := m.Tran(ps, false)
		if err != nil || out.IsBad(0) {
			return false
		}
		base = out.Point(0)
	}
	one := wcs.NewPointSet(len(base))
	one.Append(append([]float64(nil), base...))
	return reg.shape.Pins(one, tol)
}

// Bounded follows De Morgan's laws: an intersection is bounded when either
// operand is, a union when both are, and the negated forms swap the roles
// with the operands' own negations flipped.
func (c *compound) Bounded(negated bool) bool {
	if !negated {
		bA := c.a.Bounded()
		bB := c.b.Bounded()
		if c.op == CmpAnd {
			return bA || bB
		}
		return bA && bB
	}
	nA := c.a.shape.Bounded(!c.a.Negated())
	nB := c.b.shape.Bounded(!c.b.Negated())
	if c.op == CmpAnd {
		return nA && nB
	}
	return nA || nB
}

// Centre returns nil; compound regions have no defined centre.
func (c *compound) Centre() []float64 { return nil }

func (c *compound) WithCentre(p []float64) (Shape, error) {
	return nil, &ErrUnsupportedOperation{Kind: "Compound", Op: "re-centring"}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
