package region

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// SetUnc stores a new uncertainty region.
//
// The uncertainty describes the positional tolerance of every point on the
// region's boundary: conceptually it is re-centred on each boundary point,
// and the area it then covers is where the true boundary position may be.
//
// The supplied region must be a Box, Circle or Ellipse, and its coordinate
// system must be convertible to the coordinate system of the region's
// native geometry. A deep copy is stored, converted into the owning
// region's base frame, forced to be bounded, and re-centred at the
// region's first defining point. Passing nil clears any stored
// uncertainty.
func (r *Region) SetUnc(unc *Region) error {
	r.unc = nil
	r.defUnc = true
	if unc == nil {
		return nil
	}

	switch unc.Kind() {
	case "Box", "Circle", "Ellipse":
	default:
		return &ErrUnsupportedUncertainty{Kind: unc.Kind()}
	}

	conv, err := wcs.Convert(unc.currentFrame(), r.baseFrame())
	if err != nil {
		return fmt.Errorf("SetUnc: cannot convert the uncertainty to the frame of the %s: %w", r.Kind(), err)
	}
	mapped, err := unc.MapRegion(conv, r.baseFrame())
	if err != nil {
		return err
	}

	// Box, Circle and Ellipse are always bounded in one of the two
	// negation polarities.
	if !mapped.Bounded() {
		mapped.Negate()
	}

	if r.points != nil && r.points.Len() > 0 {
		if err := mapped.recentre(r.points.Point(0)); err != nil {
			return err
		}
	}

	// The uncertainty's FrameSet need not be persisted when its base and
	// current frames are still connected by a unit mapping.
	if m, err := mapped.regMapping(); err == nil && wcs.IsUnit(m) {
		mapped.setRegionFS(false)
	}

	r.unc = mapped
	r.defUnc = false
	return nil
}

// ClearUnc discards any stored uncertainty, default or not. A default
// uncertainty will be regenerated lazily when next needed.
func (r *Region) ClearUnc() {
	r.unc = nil
	r.defUnc = true
}

// TestUnc reports whether the region carries an explicitly supplied
// (non-default) uncertainty.
func (r *Region) TestUnc() bool { return !r.defUnc }

// Unc returns a deep copy of the region's uncertainty, generating the
// default uncertainty first if none has been supplied. With base true the
// result is expressed in the region's base frame; otherwise it is mapped
// into the current frame.
func (r *Region) Unc(base bool) (*Region, error) {
	if r.unc == nil {
		def, err := r.defaultUnc()
		if err != nil {
			return nil, err
		}
		r.unc = def
		r.defUnc = true
	}
	if base {
		return r.unc.Copy(), nil
	}
	m, err := r.fs.Mapping(r.fs.Base(), r.fs.Current())
	if err != nil {
		return nil, err
	}
	if wcs.IsUnit(m.Simplify()) {
		return r.unc.Copy(), nil
	}
	return r.unc.MapRegion(m, r.currentFrame())
}

// defaultUnc builds the default uncertainty: a box centred at the origin
// of the base frame whose half-width on each axis is 5e-7 of the region's
// bounding-box extent on that axis.
func (r *Region) defaultUnc() (*Region, error) {
	bfrm := r.baseFrame()
	nax := bfrm.Naxes()
	lb, ub := r.shape.BaseBox()

	lo := make([]float64, nax)
	hi := make([]float64, nax)
	for ax := 0; ax < nax; ax++ {
		axlen := math.Abs(bfrm.AxDistance(ax, lb[ax], ub[ax]))
		if math.IsInf(axlen, 0) || math.IsNaN(axlen) {
			// Unconstrained axis: no usable size, so no tolerance.
			axlen = 0
		}
		hi[ax] = 0.5e-6 * axlen
		lo[ax] = -hi[ax]
	}
	return NewBox(bfrm, lo, hi)
}
