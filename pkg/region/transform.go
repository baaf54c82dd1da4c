package region

import "github.com/beetlebugorg/wcs/pkg/wcs"

// Region implements wcs.Mapping: applying a region as a mapping performs a
// membership test. Interior points pass through numerically unchanged and
// exterior points come out flagged with wcs.Bad on every axis. The forward
// and inverse transformations behave identically, and both work on
// current-frame coordinates.
var _ wcs.Mapping = (*Region)(nil)

// Nin returns the region's axis count.
func (r *Region) Nin() int { return r.Naxes() }

// Nout returns the region's axis count.
func (r *Region) Nout() int { return r.Naxes() }

// HasForward reports true: the membership transform is always defined.
func (r *Region) HasForward() bool { return true }

// HasInverse reports true: the membership transform is always defined.
func (r *Region) HasInverse() bool { return true }

// Simplify returns the region itself; use Simplified for region-level
// simplification.
func (r *Region) Simplify() wcs.Mapping { return r }

// Tran applies the region as a mapping: the output is a copy of the input
// in which every point not contained in the region (honouring the Negated
// and Closed flags) is flagged with wcs.Bad on every axis. The direction
// flag is ignored; both directions perform the same membership test.
func (r *Region) Tran(in *wcs.PointSet, forward bool) (*wcs.PointSet, error) {
	if in.Naxes() != r.Naxes() {
		return nil, &ErrDimensionMismatch{Op: "Region.Tran", Want: r.Naxes(), Got: in.Naxes()}
	}
	m, err := r.regMapping()
	if err != nil {
		return nil, err
	}
	base := in
	if !wcs.IsUnit(m) {
		if base, err = m.Tran(in, false); err != nil {
			return nil, err
		}
	}
	out := in.Copy()
	for i := 0; i < in.Len(); i++ {
		if base.IsBad(i) || !r.contains(base.Point(i)) {
			out.SetBad(i)
		}
	}
	return out, nil
}
