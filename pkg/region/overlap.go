package region

import "github.com/beetlebugorg/wcs/pkg/wcs"

// OverlapResult classifies the spatial relationship between two regions.
type OverlapResult int

const (
	// OverlapUnknown means the relationship could not be determined,
	// usually because no conversion exists between the two coordinate
	// systems.
	OverlapUnknown OverlapResult = iota

	// OverlapNone means there is no overlap between the two regions.
	OverlapNone

	// OverlapInside means the first region is completely inside the
	// second.
	OverlapInside

	// OverlapContains means the second region is completely inside the
	// first.
	OverlapContains

	// OverlapPartial means the two regions partially overlap.
	OverlapPartial

	// OverlapSame means the two regions cover the same area.
	OverlapSame

	// OverlapNegation means the two regions are mutual negations,
	// together covering the whole coordinate space without overlapping.
	OverlapNegation
)

func (o OverlapResult) String() string {
	switch o {
	case OverlapNone:
		return "no overlap"
	case OverlapInside:
		return "first inside second"
	case OverlapContains:
		return "second inside first"
	case OverlapPartial:
		return "partial overlap"
	case OverlapSame:
		return "identical"
	case OverlapNegation:
		return "mutual negation"
	default:
		return "unknown"
	}
}

// Overlap determines how this region is related to another region, which
// may be expressed in a different coordinate system as long as a
// conversion between the two systems exists.
//
// The test is performed by checking the other region's boundary mesh
// against this region, so its resolution is set by the MeshSize
// attributes, and boundary coincidence is judged to within the combined
// uncertainties of the two regions.
//
// Overlap is symmetric up to the obvious exchange of OverlapInside and
// OverlapContains. It returns OverlapUnknown (and no error) when the two
// coordinate systems cannot be aligned, and an error when neither region
// has a finite boundary to mesh.
func (r *Region) Overlap(other *Region) (OverlapResult, error) {
	if r.Equal(other) {
		return OverlapSame, nil
	}
	neg := other.Copy()
	neg.Negate()
	if r.Equal(neg) {
		return OverlapNegation, nil
	}

	if !r.hasFiniteBoundary() && !other.hasFiniteBoundary() {
		return OverlapUnknown, &ErrIndeterminateOverlap{Kind1: r.Kind(), Kind2: other.Kind()}
	}

	// reg2 is the region whose boundary gets meshed. Prefer the second
	// region; results computed the other way round are swapped at the
	// end.
	reg1, reg2 := r, other
	swapped := false
	if !other.hasFiniteBoundary() {
		reg1, reg2 = other, r
		swapped = true
	}

	res, err := overlapMeshed(reg1, reg2)
	if err != nil || !swapped {
		return res, err
	}
	switch res {
	case OverlapInside:
		return OverlapContains, nil
	case OverlapContains:
		return OverlapInside, nil
	default:
		return res, nil
	}
}

// overlapMeshed classifies reg2's boundary mesh against reg1. The result
// is expressed with reg1 first: OverlapInside means reg1 inside reg2.
func overlapMeshed(reg1, reg2 *Region) (OverlapResult, error) {
	cmap, err := wcs.Convert(reg2.currentFrame(), reg1.currentFrame())
	if err != nil {
		return OverlapUnknown, nil
	}
	m1, err := reg1.regMapping()
	if err != nil {
		return OverlapUnknown, err
	}
	toBase, err := wcs.NewCmpMap(cmap, wcs.NewInverted(m1))
	if err != nil {
		return OverlapUnknown, err
	}

	mesh, err := reg2.Mesh()
	if err != nil {
		return OverlapUnknown, err
	}
	meshBase, err := toBase.Tran(mesh, true)
	if err != nil {
		return OverlapUnknown, err
	}
	if meshBase.Len() == 0 {
		return OverlapUnknown, nil
	}

	// Boundary coincidence first: if every mesh point sits on reg1's
	// boundary to within the combined uncertainties, the two regions are
	// either the same area or exact complements.
	unc2, err := reg2.Unc(false)
	if err != nil {
		return OverlapUnknown, err
	}
	unc2, err = unc2.MapRegion(toBase, reg1.baseFrame())
	if err != nil {
		return OverlapUnknown, err
	}
	pinned, err := reg1.pins(meshBase, unc2)
	if err != nil {
		return OverlapUnknown, err
	}
	if pinned {
		if reg1.Bounded() == reg2.Bounded() {
			return OverlapSame, nil
		}
		return OverlapNegation, nil
	}

	nIn, nOut := 0, 0
	for i := 0; i < meshBase.Len(); i++ {
		if !meshBase.IsBad(i) && reg1.contains(meshBase.Point(i)) {
			nIn++
		} else {
			nOut++
		}
	}

	switch {
	case nOut == 0:
		// All of reg2's boundary lies inside reg1.
		if reg2.Bounded() {
			return OverlapContains, nil
		}
		return OverlapPartial, nil

	case nIn > 0:
		return OverlapPartial, nil

	case !reg1.Bounded():
		// None of reg2's boundary touches the infinite reg1.
		if reg2.Bounded() {
			return OverlapNone, nil
		}
		return OverlapInside, nil

	default:
		// reg1 is bounded and entirely avoids reg2's boundary, so it is
		// either completely inside or completely outside reg2. One probe
		// point from reg1's own boundary settles it.
		return probeOverlap(reg1, reg2, cmap)
	}
}

// probeOverlap tests a single boundary point of reg1 for membership of
// reg2, distinguishing disjoint regions from full containment.
func probeOverlap(reg1, reg2 *Region, cmap wcs.Mapping) (OverlapResult, error) {
	mesh1, err := reg1.Mesh()
	if err != nil {
		return OverlapUnknown, err
	}
	probe, err := cmap.Tran(mesh1, false)
	if err != nil {
		return OverlapUnknown, err
	}
	for i := 0; i < probe.Len(); i++ {
		if probe.IsBad(i) {
			continue
		}
		in, err := reg2.Contains(probe.Point(i))
		if err != nil {
			return OverlapUnknown, err
		}
		if in {
			return OverlapInside, nil
		}
		return OverlapNone, nil
	}
	return OverlapNone, nil
}
