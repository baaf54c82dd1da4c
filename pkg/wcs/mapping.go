package wcs

import "fmt"

// Mapping is a bidirectional transform between two coordinate systems.
//
// A mapping has a defined number of input and output axes and may define a
// forward transformation, an inverse transformation, or both. Points that
// fall outside the domain of a transformation are flagged with the Bad value
// on every axis of the output.
type Mapping interface {
	// Nin returns the number of input axes of the forward transformation.
	Nin() int

	// Nout returns the number of output axes of the forward transformation.
	Nout() int

	// HasForward reports whether the forward transformation is defined.
	HasForward() bool

	// HasInverse reports whether the inverse transformation is defined.
	HasInverse() bool

	// Tran transforms a set of points, forward or inverse.
	Tran(in *PointSet, forward bool) (*PointSet, error)

	// Simplify returns an equivalent, possibly simpler mapping.
	Simplify() Mapping
}

// UnitMap is the identity mapping.
type UnitMap struct {
	naxes int
}

// NewUnitMap creates an identity mapping with the given axis count.
func NewUnitMap(naxes int) *UnitMap { return &UnitMap{naxes: naxes} }

func (m *UnitMap) Nin() int          { return m.naxes }
func (m *UnitMap) Nout() int         { return m.naxes }
func (m *UnitMap) HasForward() bool  { return true }
func (m *UnitMap) HasInverse() bool  { return true }
func (m *UnitMap) Simplify() Mapping { return m }

// Tran returns a copy of the input points.
func (m *UnitMap) Tran(in *PointSet, forward bool) (*PointSet, error) {
	if in.Naxes() != m.naxes {
		return nil, &ErrAxisMismatch{Op: "UnitMap.Tran", Want: m.naxes, Got: in.Naxes()}
	}
	return in.Copy(), nil
}

// WinMap is a linear per-axis scale-and-shift mapping, defined by mapping
// one axis-aligned window onto another.
type WinMap struct {
	scale []float64
	shift []float64
}

// NewWinMap creates a mapping which transforms the window with corners
// (ina, inb) onto the window with corners (outa, outb), scaling and shifting
// each axis independently.
func NewWinMap(ina, inb, outa, outb []float64) (*WinMap, error) {
	n := len(ina)
	if len(inb) != n || len(outa) != n || len(outb) != n {
		return nil, &ErrAxisMismatch{Op: "NewWinMap", Want: n, Got: len(inb)}
	}
	m := &WinMap{scale: make([]float64, n), shift: make([]float64, n)}
	for i := 0; i < n; i++ {
		den := inb[i] - ina[i]
		if den == 0 {
			return nil, fmt.Errorf("NewWinMap: degenerate input window on axis %d", i+1)
		}
		m.scale[i] = (outb[i] - outa[i]) / den
		m.shift[i] = outa[i] - m.scale[i]*ina[i]
	}
	return m, nil
}

// NewScaleMap creates a WinMap applying a per-axis scale with no shift.
func NewScaleMap(scale []float64) *WinMap {
	m := &WinMap{scale: make([]float64, len(scale)), shift: make([]float64, len(scale))}
	copy(m.scale, scale)
	return m
}

// NewShiftMap creates a WinMap applying a per-axis shift with unit scale.
func NewShiftMap(shift []float64) *WinMap {
	m := &WinMap{scale: make([]float64, len(shift)), shift: make([]float64, len(shift))}
	for i := range m.scale {
		m.scale[i] = 1
	}
	copy(m.shift, shift)
	return m
}

func (m *WinMap) Nin() int         { return len(m.scale) }
func (m *WinMap) Nout() int        { return len(m.scale) }
func (m *WinMap) HasForward() bool { return true }
func (m *WinMap) HasInverse() bool {
	for _, s := range m.scale {
		if s == 0 {
			return false
		}
	}
	return true
}

// Simplify returns a UnitMap when every axis has unit scale and zero shift.
func (m *WinMap) Simplify() Mapping {
	for i := range m.scale {
		if m.scale[i] != 1 || m.shift[i] != 0 {
			return m
		}
	}
	return NewUnitMap(len(m.scale))
}

// Tran applies the scale and shift to each point.
func (m *WinMap) Tran(in *PointSet, forward bool) (*PointSet, error) {
	n := len(m.scale)
	if in.Naxes() != n {
		return nil, &ErrAxisMismatch{Op: "WinMap.Tran", Want: n, Got: in.Naxes()}
	}
	if !forward && !m.HasInverse() {
		return nil, &ErrNoTransform{Op: "WinMap.Tran", Forward: false}
	}
	out := NewPointSet(n)
	for i := 0; i < in.Len(); i++ {
		p := in.Point(i)
		q := make([]float64, n)
		bad := false
		for ax := 0; ax < n; ax++ {
			if p[ax] == Bad {
				bad = true
				break
			}
			if forward {
				q[ax] = m.scale[ax]*p[ax] + m.shift[ax]
			} else {
				q[ax] = (p[ax] - m.shift[ax]) / m.scale[ax]
			}
		}
		out.Append(q)
		if bad {
			out.SetBad(i)
		}
	}
	return out, nil
}

// FuncMap is a mapping defined by caller-supplied point functions.
//
// Either function may be nil, in which case the corresponding transform
// direction is undefined. A function signals an out-of-domain input by
// returning nil or by setting Bad axis values in its result.
type FuncMap struct {
	nin, nout int
	fwd, inv  func(p []float64) []float64
}

// NewFuncMap creates a mapping from the supplied forward and inverse point
// functions.
func NewFuncMap(nin, nout int, fwd, inv func(p []float64) []float64) *FuncMap {
	return &FuncMap{nin: nin, nout: nout, fwd: fwd, inv: inv}
}

func (m *FuncMap) Nin() int          { return m.nin }
func (m *FuncMap) Nout() int         { return m.nout }
func (m *FuncMap) HasForward() bool  { return m.fwd != nil }
func (m *FuncMap) HasInverse() bool  { return m.inv != nil }
func (m *FuncMap) Simplify() Mapping { return m }

// Tran applies the forward or inverse point function to each point.
func (m *FuncMap) Tran(in *PointSet, forward bool) (*PointSet, error) {
	nin, nout, f := m.nin, m.nout, m.fwd
	if !forward {
		nin, nout, f = m.nout, m.nin, m.inv
	}
	if f == nil {
		return nil, &ErrNoTransform{Op: "FuncMap.Tran", Forward: forward}
	}
	if in.Naxes() != nin {
		return nil, &ErrAxisMismatch{Op: "FuncMap.Tran", Want: nin, Got: in.Naxes()}
	}
	out := NewPointSet(nout)
	for i := 0; i < in.Len(); i++ {
		q := []float64(nil)
		if !in.IsBad(i) {
			q = f(in.Point(i))
		}
		if q == nil {
			q = make([]float64, nout)
			for ax := range q {
				q[ax] = Bad
			}
		}
		out.Append(q)
		if out.IsBad(i) {
			out.SetBad(i)
		}
	}
	return out, nil
}

// CmpMap is a serial composition of mappings: the forward transformation
// applies each component in order.
type CmpMap struct {
	maps []Mapping
}

// NewCmpMap composes mappings in series. The output axis count of each
// component must equal the input axis count of the next.
func NewCmpMap(maps ...Mapping) (*CmpMap, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("NewCmpMap: no component mappings supplied")
	}
	for i := 1; i < len(maps); i++ {
		if maps[i-1].Nout() != maps[i].Nin() {
			return nil, &ErrAxisMismatch{
				Op: "NewCmpMap", Want: maps[i-1].Nout(), Got: maps[i].Nin(),
			}
		}
	}
	return &CmpMap{maps: maps}, nil
}

func (m *CmpMap) Nin() int  { return m.maps[0].Nin() }
func (m *CmpMap) Nout() int { return m.maps[len(m.maps)-1].Nout() }

func (m *CmpMap) HasForward() bool {
	for _, c := range m.maps {
		if !c.HasForward() {
			return false
		}
	}
	return true
}

func (m *CmpMap) HasInverse() bool {
	for _, c := range m.maps {
		if !c.HasInverse() {
			return false
		}
	}
	return true
}

// Simplify simplifies each component, flattens nested compositions and
// drops identity components. A composition that reduces to nothing becomes
// a UnitMap.
func (m *CmpMap) Simplify() Mapping {
	var flat []Mapping
	var walk func(mm Mapping)
	walk = func(mm Mapping) {
		s := mm.Simplify()
		if c, ok := s.(*CmpMap); ok {
			for _, inner := range c.maps {
				walk(inner)
			}
			return
		}
		if _, ok := s.(*UnitMap); ok {
			return
		}
		flat = append(flat, s)
	}
	for _, c := range m.maps {
		walk(c)
	}
	if len(flat) == 0 {
		return NewUnitMap(m.Nin())
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &CmpMap{maps: flat}
}

// Tran applies the components in series, in reverse order with the inverse
// transformation when forward is false.
func (m *CmpMap) Tran(in *PointSet, forward bool) (*PointSet, error) {
	ps := in
	var err error
	if forward {
		for _, c := range m.maps {
			if ps, err = c.Tran(ps, true); err != nil {
				return nil, err
			}
		}
	} else {
		for i := len(m.maps) - 1; i >= 0; i-- {
			if ps, err = m.maps[i].Tran(ps, false); err != nil {
				return nil, err
			}
		}
	}
	if ps == in {
		ps = in.Copy()
	}
	return ps, nil
}

// InvertMap swaps the forward and inverse directions of another mapping.
type InvertMap struct {
	m Mapping
}

// NewInverted returns a mapping whose forward transformation is the inverse
// of the supplied mapping. Inverting an InvertMap unwraps it.
func NewInverted(m Mapping) Mapping {
	if im, ok := m.(*InvertMap); ok {
		return im.m
	}
	if _, ok := m.(*UnitMap); ok {
		return m
	}
	return &InvertMap{m: m}
}

func (m *InvertMap) Nin() int         { return m.m.Nout() }
func (m *InvertMap) Nout() int        { return m.m.Nin() }
func (m *InvertMap) HasForward() bool { return m.m.HasInverse() }
func (m *InvertMap) HasInverse() bool { return m.m.HasForward() }

func (m *InvertMap) Simplify() Mapping {
	s := m.m.Simplify()
	if _, ok := s.(*UnitMap); ok {
		return s
	}
	if w, ok := s.(*WinMap); ok && w.HasInverse() {
		inv := &WinMap{scale: make([]float64, len(w.scale)), shift: make([]float64, len(w.scale))}
		for i := range w.scale {
			inv.scale[i] = 1 / w.scale[i]
			inv.shift[i] = -w.shift[i] / w.scale[i]
		}
		return inv
	}
	if s == m.m {
		return m
	}
	return &InvertMap{m: s}
}

// Tran transforms points using the wrapped mapping with the direction
// reversed.
func (m *InvertMap) Tran(in *PointSet, forward bool) (*PointSet, error) {
	return m.m.Tran(in, !forward)
}

// IsUnit reports whether a mapping simplifies to the identity.
func IsUnit(m Mapping) bool {
	_, ok := m.Simplify().(*UnitMap)
	return ok
}

// MappingsEqual reports whether two mappings are equivalent after
// simplification. It recognizes unit maps, window maps with identical
// coefficients, compositions with pairwise-equal components, and otherwise
// falls back to pointer identity.
func MappingsEqual(a, b Mapping) bool {
	sa, sb := a.Simplify(), b.Simplify()
	switch ma := sa.(type) {
	case *UnitMap:
		mb, ok := sb.(*UnitMap)
		return ok && ma.naxes == mb.naxes
	case *WinMap:
		mb, ok := sb.(*WinMap)
		if !ok || len(ma.scale) != len(mb.scale) {
			return false
		}
		for i := range ma.scale {
			if ma.scale[i] != mb.scale[i] || ma.shift[i] != mb.shift[i] {
				return false
			}
		}
		return true
	case *CmpMap:
		mb, ok := sb.(*CmpMap)
		if !ok || len(ma.maps) != len(mb.maps) {
			return false
		}
		for i := range ma.maps {
			if !MappingsEqual(ma.maps[i], mb.maps[i]) {
				return false
			}
		}
		return true
	}
	return sa == sb
}
