package region

import "github.com/beetlebugorg/wcs/pkg/wcs"

// Membership classifies a point against the un-negated boundary of a shape.
type Membership int

const (
	// Outside means the point is strictly outside the shape.
	Outside Membership = iota

	// OnBoundary means the point lies on the shape's boundary.
	OnBoundary

	// Inside means the point is strictly inside the shape.
	Inside
)

// Shape supplies the geometry-specific primitives of a concrete region
// class. All coordinates handled by a Shape refer to the base frame the
// shape's geometry is defined in; negation, closure and frame conversion
// are handled by the Region core on top of these primitives.
type Shape interface {
	// Kind returns the shape class name ("Circle", "Box", ...).
	Kind() string

	// Frame returns the base frame the geometry is defined in.
	Frame() wcs.Frame

	// DefiningPoints returns the defining points of the shape (centre
	// first, where the shape has a centre). May be nil for compound
	// shapes.
	DefiningPoints() *wcs.PointSet

	// BaseBox returns the bounding box of the un-negated shape. Axis
	// bounds may be infinite for unbounded shapes.
	BaseBox() (lbnd, ubnd []float64)

	// BaseMesh returns about size points spread over the shape's
	// boundary. It fails with an ErrUnboundedRegion error if the
	// boundary is not finite.
	BaseMesh(size int) (*wcs.PointSet, error)

	// Inside classifies a point against the un-negated shape.
	Inside(p []float64) Membership

	// Pins reports whether every point in the set lies on the shape's
	// boundary to within the given per-axis tolerances. Bad points are
	// ignored.
	Pins(ps *wcs.PointSet, tol []float64) bool

	// Bounded reports whether the shape, negated or not as given,
	// covers a finite area.
	Bounded(negated bool) bool

	// Centre returns the shape's centre, or nil if the shape has no
	// defined centre.
	Centre() []float64

	// WithCentre returns a copy of the shape translated so its centre
	// is at p. Shapes without a centre return an
	// ErrUnsupportedOperation error.
	WithCentre(p []float64) (Shape, error)
}

// shapeEqualer lets a shape without defining points (a compound) supply
// its own equality test.
type shapeEqualer interface {
	equalShape(other Shape) bool
}
