package wcs

import "fmt"

// ErrNoConversion indicates no mapping could be found connecting two frames.
type ErrNoConversion struct {
	From, To string
}

func (e *ErrNoConversion) Error() string {
	return fmt.Sprintf("no conversion between coordinate systems %q and %q", e.From, e.To)
}

// ErrAxisMismatch indicates a point or mapping has the wrong number of axes.
type ErrAxisMismatch struct {
	Op   string
	Want int
	Got  int
}

func (e *ErrAxisMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d axis values, got %d", e.Op, e.Want, e.Got)
}

// ErrNoTransform indicates a mapping lacks the requested transform direction.
type ErrNoTransform struct {
	Op      string
	Forward bool
}

func (e *ErrNoTransform) Error() string {
	dir := "inverse"
	if e.Forward {
		dir = "forward"
	}
	return fmt.Sprintf("%s: mapping does not define a %s transformation", e.Op, dir)
}

// ErrBadFrameIndex indicates a frame index outside a FrameSet.
type ErrBadFrameIndex struct {
	Index int
	Size  int
}

func (e *ErrBadFrameIndex) Error() string {
	return fmt.Sprintf("frame index %d out of range (frame set has %d frames)", e.Index, e.Size)
}
