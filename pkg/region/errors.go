package region

import "fmt"

// ErrDimensionMismatch indicates axis counts disagree between a region,
// mapping, point set or grid involved in an operation.
type ErrDimensionMismatch struct {
	Op   string
	Want int
	Got  int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d axis value(s), got %d", e.Op, e.Want, e.Got)
}

// ErrUnsupportedUncertainty indicates an uncertainty region of an unusable
// shape class (only Box, Circle and Ellipse may describe uncertainties).
type ErrUnsupportedUncertainty struct {
	Kind string
}

func (e *ErrUnsupportedUncertainty) Error() string {
	return fmt.Sprintf("bad uncertainty shape (%s): the uncertainty must be a Box, Circle or Ellipse", e.Kind)
}

// ErrMissingTransform indicates a mapping lacks a transform direction
// required by an operation.
type ErrMissingTransform struct {
	Op      string
	Forward bool
}

func (e *ErrMissingTransform) Error() string {
	dir := "an inverse"
	if e.Forward {
		dir = "a forward"
	}
	return fmt.Sprintf("%s: the supplied mapping does not define %s transformation", e.Op, dir)
}

// ErrIndeterminateOverlap indicates neither of two regions being compared
// has a finite boundary in either negation polarity, so no boundary mesh
// can be built for the comparison.
type ErrIndeterminateOverlap struct {
	Kind1, Kind2 string
}

func (e *ErrIndeterminateOverlap) Error() string {
	return fmt.Sprintf("cannot determine overlap: neither region (%s, %s) has a finite boundary", e.Kind1, e.Kind2)
}

// ErrInvalidBounds indicates a grid lower bound exceeds the corresponding
// upper bound.
type ErrInvalidBounds struct {
	Axis         int
	Lower, Upper int
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("lower bound of input grid (%d) exceeds corresponding upper bound (%d) on dimension %d",
		e.Lower, e.Upper, e.Axis+1)
}

// ErrInvalidInterval indicates an interval lower limit exceeds the
// corresponding upper limit.
type ErrInvalidInterval struct {
	Axis         int
	Lower, Upper float64
}

func (e *ErrInvalidInterval) Error() string {
	return fmt.Sprintf("lower limit %g exceeds upper limit %g on axis %d",
		e.Lower, e.Upper, e.Axis+1)
}

// ErrAttributeRange indicates an attribute value outside its legal range.
type ErrAttributeRange struct {
	Attr  string
	Value float64
}

func (e *ErrAttributeRange) Error() string {
	return fmt.Sprintf("attribute %s value %g is outside its legal range", e.Attr, e.Value)
}

// ErrUnboundedRegion indicates an operation requiring a finite boundary was
// applied to a region without one (e.g. meshing an infinite Interval).
type ErrUnboundedRegion struct {
	Kind string
	Op   string
}

func (e *ErrUnboundedRegion) Error() string {
	return fmt.Sprintf("%s: %s region has no finite boundary", e.Op, e.Kind)
}

// ErrUnsupportedOperation indicates a shape does not implement an optional
// primitive (e.g. the centre of a compound region).
type ErrUnsupportedOperation struct {
	Kind string
	Op   string
}

func (e *ErrUnsupportedOperation) Error() string {
	return fmt.Sprintf("%s is not supported by %s regions", e.Op, e.Kind)
}
