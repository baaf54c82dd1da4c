package region

import "github.com/beetlebugorg/wcs/pkg/wcs"

// MapRegion returns a new region which represents, within the supplied
// frame, the same area that this region represents in its own current
// frame. The mapping's forward transformation must convert positions from
// the region's current frame into the new frame, and both transform
// directions must be defined (membership tests need the inverse).
//
// The original region is never modified; the result is a deep copy whose
// FrameSet has the supplied frame spliced in as the new current frame.
// The result is not simplified; see MapRegionSimplify.
func (r *Region) MapRegion(m wcs.Mapping, frame wcs.Frame) (*Region, error) {
	if !m.HasInverse() {
		return nil, &ErrMissingTransform{Op: "MapRegion", Forward: false}
	}
	if !m.HasForward() {
		return nil, &ErrMissingTransform{Op: "MapRegion", Forward: true}
	}
	if m.Nin() != r.Naxes() {
		return nil, &ErrDimensionMismatch{Op: "MapRegion", Want: r.Naxes(), Got: m.Nin()}
	}
	if m.Nout() != frame.Naxes() {
		return nil, &ErrDimensionMismatch{Op: "MapRegion", Want: m.Nout(), Got: frame.Naxes()}
	}

	out := r.Copy()
	icurr := out.fs.Current()
	if _, err := out.fs.AddFrame(icurr, m, frame); err != nil {
		return nil, err
	}
	if err := out.fs.RemoveFrame(icurr); err != nil {
		return nil, err
	}

	// The base and current frames are no longer trivially identical, so
	// the FrameSet must survive serialization.
	out.setRegionFS(true)
	return out, nil
}

// MapRegionSimplify is the public variant of MapRegion which additionally
// simplifies the returned region.
func (r *Region) MapRegionSimplify(m wcs.Mapping, frame wcs.Frame) (*Region, error) {
	out, err := r.MapRegion(m, frame)
	if err != nil {
		return nil, err
	}
	return out.Simplified()
}

// Simplified returns a copy of the region with the base-to-current mapping
// of its FrameSet and the uncertainty region simplified. No shape
// re-fitting is attempted: the result has the same shape class as the
// receiver.
func (r *Region) Simplified() (*Region, error) {
	out := r.Copy()
	m, err := out.fs.Mapping(out.fs.Base(), out.fs.Current())
	if err != nil {
		return nil, err
	}
	sm := m.Simplify()

	// Rebuild the FrameSet as base -> simplified mapping -> current.
	fs := wcs.NewFrameSet(out.baseFrame())
	if _, err := fs.AddFrame(0, sm, out.currentFrame()); err != nil {
		return nil, err
	}
	out.fs = fs
	if wcs.IsUnit(sm) {
		out.setRegionFS(false)
	}

	if out.unc != nil {
		su, err := out.unc.Simplified()
		if err != nil {
			return nil, err
		}
		out.unc = su
	}
	return out, nil
}
