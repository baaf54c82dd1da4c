package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// option is an explicit tri-state attribute holder: an attribute is either
// unset (and reads as a documented default) or carries an explicit value.
type option[T any] struct {
	value T
	set   bool
}

func (o option[T]) get(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Region is a subset of a coordinate frame, queryable for point membership.
//
// A Region owns a FrameSet whose base frame is the coordinate system the
// shape's native geometry is defined in, and whose current frame is the
// coordinate system presented to callers. The two are related by a mapping
// which may change over the Region's lifetime (see MapRegion).
//
// Regions are created by the shape constructors (NewCircle, NewBox,
// NewEllipse, NewInterval, NewCompound). A Region also acts as a Mapping:
// transforming points through it leaves interior points unchanged and flags
// exterior points with the wcs.Bad value on every axis, in both transform
// directions.
type Region struct {
	shape  Shape
	fs     *wcs.FrameSet
	points *wcs.PointSet

	negated    option[bool]
	closed     option[bool]
	meshSize   option[int]
	fillFactor option[float64]
	regionFS   option[bool]

	unc    *Region // uncertainty; current frame equals this Region's base frame
	defUnc bool    // uncertainty is absent or auto-generated

	// Boundary mesh cache, keyed by a version stamp bumped whenever the
	// mesh size or the geometry changes.
	basemesh    *wcs.PointSet
	geomVersion int
	meshStamp   int
}

// newRegion wraps a shape in a fresh Region. The FrameSet holds two copies
// of the base frame joined by a unit mapping, so the base and current
// frames start out identical but independent.
func newRegion(shape Shape) (*Region, error) {
	frame := shape.Frame()
	pts := shape.DefiningPoints()
	if pts != nil && pts.Naxes() != frame.Naxes() {
		return nil, &ErrDimensionMismatch{
			Op: "New" + shape.Kind(), Want: frame.Naxes(), Got: pts.Naxes(),
		}
	}
	fs := wcs.NewFrameSet(frame)
	if _, err := fs.AddFrame(0, wcs.NewUnitMap(frame.Naxes()), frame); err != nil {
		return nil, err
	}
	return &Region{
		shape:     shape,
		fs:        fs,
		points:    pts,
		defUnc:    true,
		meshStamp: -1,
	}, nil
}

// Kind returns the shape class of the region ("Circle", "Box", ...).
func (r *Region) Kind() string { return r.shape.Kind() }

// Naxes returns the number of axes in the region's current frame.
func (r *Region) Naxes() int { return r.currentFrame().Naxes() }

// Frame returns the region's current frame, the coordinate system in which
// the region is presented to callers.
func (r *Region) Frame() wcs.Frame { return r.currentFrame() }

func (r *Region) baseFrame() wcs.Frame    { return r.fs.BaseFrame() }
func (r *Region) currentFrame() wcs.Frame { return r.fs.CurrentFrame() }

// regMapping returns the simplified base-to-current mapping.
func (r *Region) regMapping() (wcs.Mapping, error) {
	m, err := r.fs.Mapping(r.fs.Base(), r.fs.Current())
	if err != nil {
		return nil, err
	}
	return m.Simplify(), nil
}

// Negated reports whether region membership is logically inverted.
// The default is false.
func (r *Region) Negated() bool { return r.negated.get(false) }

// SetNegated sets the Negated attribute.
func (r *Region) SetNegated(v bool) { r.negated = option[bool]{value: v, set: true} }

// ClearNegated resets the Negated attribute to its unset (default) state.
func (r *Region) ClearNegated() { r.negated = option[bool]{} }

// TestNegated reports whether the Negated attribute has been explicitly set.
func (r *Region) TestNegated() bool { return r.negated.set }

// Negate inverts the inside/outside sense of the region. Only the Negated
// flag changes; the geometry, frames and uncertainty are untouched.
func (r *Region) Negate() { r.SetNegated(!r.Negated()) }

// Closed reports whether boundary points count as inside the region.
// The default is true.
func (r *Region) Closed() bool { return r.closed.get(true) }

// SetClosed sets the Closed attribute.
func (r *Region) SetClosed(v bool) { r.closed = option[bool]{value: v, set: true} }

// ClearClosed resets the Closed attribute to its unset (default) state.
func (r *Region) ClearClosed() { r.closed = option[bool]{} }

// TestClosed reports whether the Closed attribute has been explicitly set.
func (r *Region) TestClosed() bool { return r.closed.set }

// MeshSize returns the number of points used when meshing the region's
// boundary. The default is 2 for one-dimensional regions, 200 for
// two-dimensional regions and 2000 otherwise.
func (r *Region) MeshSize() int {
	if r.meshSize.set {
		return r.meshSize.value
	}
	switch r.Naxes() {
	case 1:
		return 2
	case 2:
		return 200
	default:
		return 2000
	}
}

// SetMeshSize sets the MeshSize attribute. Values below 5 are raised to 5.
// Any cached boundary mesh is invalidated.
func (r *Region) SetMeshSize(v int) {
	if v < 5 {
		v = 5
	}
	r.meshSize = option[int]{value: v, set: true}
	r.geomVersion++
}

// ClearMeshSize resets the MeshSize attribute to its unset (default) state
// and invalidates any cached boundary mesh.
func (r *Region) ClearMeshSize() {
	r.meshSize = option[int]{}
	r.geomVersion++
}

// TestMeshSize reports whether the MeshSize attribute has been explicitly set.
func (r *Region) TestMeshSize() bool { return r.meshSize.set }

// FillFactor returns the fraction of the region's area which is of
// interest. It is informational only; no algorithm uses it. The default
// is 1.
func (r *Region) FillFactor() float64 { return r.fillFactor.get(1.0) }

// SetFillFactor sets the FillFactor attribute. Values outside [0, 1] are
// rejected with an ErrAttributeRange error and leave the state unchanged.
func (r *Region) SetFillFactor(v float64) error {
	if v < 0 || v > 1 {
		return &ErrAttributeRange{Attr: "FillFactor", Value: v}
	}
	r.fillFactor = option[float64]{value: v, set: true}
	return nil
}

// ClearFillFactor resets the FillFactor attribute to its unset state.
func (r *Region) ClearFillFactor() { r.fillFactor = option[float64]{} }

// TestFillFactor reports whether FillFactor has been explicitly set.
func (r *Region) TestFillFactor() bool { return r.fillFactor.set }

// RegionFS reports whether the region's FrameSet should be persisted when
// the region is serialized. The default is true. It is cleared when the
// base and current frames are trivially identical.
func (r *Region) RegionFS() bool { return r.regionFS.get(true) }

func (r *Region) setRegionFS(v bool) { r.regionFS = option[bool]{value: v, set: true} }

// Bounded reports whether the region, taking its Negated flag into
// account, covers a finite area.
func (r *Region) Bounded() bool { return r.shape.Bounded(r.Negated()) }

// hasFiniteBoundary reports whether the region is bounded in at least one
// negation polarity, i.e. whether a finite boundary mesh exists for it.
func (r *Region) hasFiniteBoundary() bool {
	return r.shape.Bounded(false) || r.shape.Bounded(true)
}

// Copy returns a deep, independent copy of the region. The cached boundary
// mesh is not carried over.
func (r *Region) Copy() *Region {
	out := &Region{
		shape:       r.shape,
		fs:          r.fs.Copy(),
		points:      r.points,
		negated:     r.negated,
		closed:      r.closed,
		meshSize:    r.meshSize,
		fillFactor:  r.fillFactor,
		regionFS:    r.regionFS,
		defUnc:      r.defUnc,
		geomVersion: r.geomVersion,
		meshStamp:   -1,
	}
	if r.unc != nil {
		out.unc = r.unc.Copy()
	}
	return out
}

// Equal reports whether two regions are equivalent: same shape class,
// identical defining points, equal base and current frames, equivalent
// base-to-current mappings, and matching Negated and Closed flags.
func (r *Region) Equal(other *Region) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.shape.Kind() != other.shape.Kind() {
		return false
	}
	if se, ok := r.shape.(shapeEqualer); ok {
		if !se.equalShape(other.shape) {
			return false
		}
	} else if !r.points.Equal(other.points) {
		return false
	}
	if !r.baseFrame().Equal(other.baseFrame()) || !r.currentFrame().Equal(other.currentFrame()) {
		return false
	}
	m1, err1 := r.regMapping()
	m2, err2 := other.regMapping()
	if err1 != nil || err2 != nil || !wcs.MappingsEqual(m1, m2) {
		return false
	}
	return r.Negated() == other.Negated() && r.Closed() == other.Closed()
}

// contains reports whether a base-frame point is a member of the region,
// honouring the Negated and Closed flags.
func (r *Region) contains(p []float64) bool {
	for _, v := range p {
		if v == wcs.Bad {
			return false
		}
	}
	switch r.shape.Inside(p) {
	case Inside:
		return !r.Negated()
	case Outside:
		return r.Negated()
	default:
		return r.Closed()
	}
}

// Contains reports whether a current-frame position lies inside the
// region, honouring the Negated and Closed flags.
func (r *Region) Contains(p []float64) (bool, error) {
	if len(p) != r.Naxes() {
		return false, &ErrDimensionMismatch{Op: "Contains", Want: r.Naxes(), Got: len(p)}
	}
	ps := wcs.NewPointSet(r.Naxes())
	q := make([]float64, len(p))
	copy(q, p)
	ps.Append(q)
	out, err := r.Tran(ps, true)
	if err != nil {
		return false, err
	}
	return !out.IsBad(0), nil
}

// ensureBaseMesh computes (or returns the cached) boundary mesh in the
// base frame. The cache is invalidated whenever MeshSize or the geometry
// changes.
func (r *Region) ensureBaseMesh() (*wcs.PointSet, error) {
	if r.basemesh == nil || r.meshStamp != r.geomVersion {
		bm, err := r.shape.BaseMesh(r.MeshSize())
		if err != nil {
			return nil, err
		}
		r.basemesh = bm
		r.meshStamp = r.geomVersion
	}
	return r.basemesh, nil
}

// Mesh returns a set of points spread over the boundary of the region,
// expressed in the current frame. The points are not necessarily evenly
// spaced. The base-frame mesh is cached; the current-frame mesh is not,
// since the base-to-current mapping can change at any time.
func (r *Region) Mesh() (*wcs.PointSet, error) {
	bm, err := r.ensureBaseMesh()
	if err != nil {
		return nil, err
	}
	m, err := r.regMapping()
	if err != nil {
		return nil, err
	}
	if wcs.IsUnit(m) {
		return bm.Copy(), nil
	}
	return m.Tran(bm, true)
}

// Bounds returns the axis-aligned bounding box of the region in its
// current frame, ignoring negation.
//
// When the base and current frames differ the box is estimated by
// transforming the base-frame boundary mesh and bounding-box corners, so
// it is a tight superset only up to mesh resolution.
func (r *Region) Bounds() (lbnd, ubnd []float64, err error) {
	lb, ub := r.shape.BaseBox()
	m, err := r.regMapping()
	if err != nil {
		return nil, nil, err
	}
	if wcs.IsUnit(m) {
		lbnd = append([]float64(nil), lb...)
		ubnd = append([]float64(nil), ub...)
		return lbnd, ubnd, nil
	}

	probes, err := r.ensureBaseMesh()
	if err != nil {
		return nil, nil, err
	}
	probes = probes.Copy()
	appendCorners(probes, lb, ub)
	out, err := m.Tran(probes, true)
	if err != nil {
		return nil, nil, err
	}

	nax := r.Naxes()
	lbnd = make([]float64, nax)
	ubnd = make([]float64, nax)
	for ax := 0; ax < nax; ax++ {
		lbnd[ax] = math.Inf(1)
		ubnd[ax] = math.Inf(-1)
	}
	good := false
	for i := 0; i < out.Len(); i++ {
		if out.IsBad(i) {
			continue
		}
		good = true
		p := out.Point(i)
		for ax := 0; ax < nax; ax++ {
			lbnd[ax] = math.Min(lbnd[ax], p[ax])
			ubnd[ax] = math.Max(ubnd[ax], p[ax])
		}
	}
	if !good {
		return nil, nil, fmt.Errorf("Bounds: no boundary point maps into the current frame")
	}
	return lbnd, ubnd, nil
}

// appendCorners adds the corners of the box (lb, ub) to the point set,
// skipping boxes with infinite extent.
func appendCorners(ps *wcs.PointSet, lb, ub []float64) {
	n := len(lb)
	for _, v := range lb {
		if math.IsInf(v, 0) {
			return
		}
	}
	for _, v := range ub {
		if math.IsInf(v, 0) {
			return
		}
	}
	for mask := 0; mask < 1<<n; mask++ {
		p := make([]float64, n)
		for ax := 0; ax < n; ax++ {
			if mask&(1<<ax) != 0 {
				p[ax] = ub[ax]
			} else {
				p[ax] = lb[ax]
			}
		}
		ps.Append(p)
	}
}

// Centre returns the centre of the region in its current frame, or nil
// for shapes without a defined centre.
func (r *Region) Centre() []float64 {
	c := r.shape.Centre()
	if c == nil {
		return nil
	}
	m, err := r.regMapping()
	if err != nil {
		return nil
	}
	if wcs.IsUnit(m) {
		return append([]float64(nil), c...)
	}
	ps := wcs.NewPointSet(len(c))
	ps.Append(append([]float64(nil), c...))
	out, err := m.Tran(ps, true)
	if err != nil || out.IsBad(0) {
		return nil
	}
	return out.Point(0)
}

// recentre moves the shape's centre to the given current-frame position.
func (r *Region) recentre(p []float64) error {
	m, err := r.regMapping()
	if err != nil {
		return err
	}
	base := append([]float64(nil), p...)
	if !wcs.IsUnit(m) {
		ps := wcs.NewPointSet(len(p))
		ps.Append(base)
		out, terr := m.Tran(ps, false)
		if terr != nil {
			return terr
		}
		base = out.Point(0)
	}
	ns, err := r.shape.WithCentre(base)
	if err != nil {
		return err
	}
	r.shape = ns
	r.points = ns.DefiningPoints()
	r.geomVersion++
	return nil
}

// pins reports whether all points in the set (expressed in the base frame)
// lie on the region's boundary, to within the combined uncertainty of this
// region and the supplied uncertainty region. Bad points are ignored, but
// a set with no good point at all is never pinned: boundary coincidence
// needs at least one usable point as evidence.
//
// The uncertainty region must be expressed such that its current frame
// equals this region's base frame.
func (r *Region) pins(ps *wcs.PointSet, unc *Region) (bool, error) {
	good := false
	for i := 0; i < ps.Len(); i++ {
		if !ps.IsBad(i) {
			good = true
			break
		}
	}
	if !good {
		return false, nil
	}

	tol, err := r.uncHalfWidths(true)
	if err != nil {
		return false, err
	}
	if unc != nil {
		lb, ub, err := unc.Bounds()
		if err != nil {
			return false, err
		}
		for ax := range tol {
			tol[ax] += math.Abs(ub[ax]-lb[ax]) / 2
		}
	}
	return r.shape.Pins(ps, tol), nil
}

// uncHalfWidths returns the per-axis half-widths of the bounding box of
// the region's uncertainty, expressed in the base frame when base is true.
func (r *Region) uncHalfWidths(base bool) ([]float64, error) {
	u, err := r.Unc(base)
	if err != nil {
		return nil, err
	}
	lb, ub, err := u.Bounds()
	if err != nil {
		return nil, err
	}
	tol := make([]float64, len(lb))
	for ax := range tol {
		tol[ax] = math.Abs(ub[ax]-lb[ax]) / 2
	}
	return tol, nil
}
