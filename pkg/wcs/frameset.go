package wcs

import "fmt"

// FrameSet is a collection of frames connected by mappings.
//
// The frames form a tree: every frame except the root is attached to a
// parent frame by a mapping whose forward transformation converts parent
// coordinates into the frame's coordinates. Two member frames are
// distinguished: the base frame and the current frame. The mapping between
// any two member frames can be extracted by composing mappings along the
// tree path that connects them.
type FrameSet struct {
	nodes   []fsNode
	base    int
	current int
}

type fsNode struct {
	frame   Frame
	parent  int     // -1 for the root frame
	mapping Mapping // parent -> this frame; nil for the root
}

// NewFrameSet creates a FrameSet containing a single frame, which becomes
// both the base and the current frame.
func NewFrameSet(f Frame) *FrameSet {
	return &FrameSet{
		nodes:   []fsNode{{frame: f, parent: -1}},
		base:    0,
		current: 0,
	}
}

// Size returns the number of frames in the set.
func (fs *FrameSet) Size() int { return len(fs.nodes) }

// Base returns the index of the base frame.
func (fs *FrameSet) Base() int { return fs.base }

// Current returns the index of the current frame.
func (fs *FrameSet) Current() int { return fs.current }

// Frame returns the frame at the given index.
func (fs *FrameSet) Frame(i int) Frame { return fs.nodes[i].frame }

// BaseFrame returns the base frame.
func (fs *FrameSet) BaseFrame() Frame { return fs.nodes[fs.base].frame }

// CurrentFrame returns the current frame.
func (fs *FrameSet) CurrentFrame() Frame { return fs.nodes[fs.current].frame }

// SetCurrent makes the frame at the given index the current frame.
func (fs *FrameSet) SetCurrent(i int) error {
	if i < 0 || i >= len(fs.nodes) {
		return &ErrBadFrameIndex{Index: i, Size: len(fs.nodes)}
	}
	fs.current = i
	return nil
}

// AddFrame attaches a new frame to the frame at the given index, connected
// by the supplied mapping (whose forward transformation converts positions
// in the attachment frame into positions in the new frame). The new frame
// becomes the current frame and its index is returned.
func (fs *FrameSet) AddFrame(position int, m Mapping, f Frame) (int, error) {
	if position < 0 || position >= len(fs.nodes) {
		return 0, &ErrBadFrameIndex{Index: position, Size: len(fs.nodes)}
	}
	if m.Nin() != fs.nodes[position].frame.Naxes() {
		return 0, &ErrAxisMismatch{Op: "FrameSet.AddFrame", Want: fs.nodes[position].frame.Naxes(), Got: m.Nin()}
	}
	if m.Nout() != f.Naxes() {
		return 0, &ErrAxisMismatch{Op: "FrameSet.AddFrame", Want: f.Naxes(), Got: m.Nout()}
	}
	fs.nodes = append(fs.nodes, fsNode{frame: f, parent: position, mapping: m})
	fs.current = len(fs.nodes) - 1
	return fs.current, nil
}

// RemoveFrame deletes the frame at the given index. Frames attached to the
// removed frame are re-spliced onto the rest of the tree with composed
// mappings, so the mappings between all remaining frames are preserved.
// The base or current frame cannot be removed, and neither can the only
// frame in the set. Indices above the removed frame shift down by one.
func (fs *FrameSet) RemoveFrame(position int) error {
	if position < 0 || position >= len(fs.nodes) {
		return &ErrBadFrameIndex{Index: position, Size: len(fs.nodes)}
	}
	if len(fs.nodes) == 1 {
		return fmt.Errorf("FrameSet.RemoveFrame: cannot remove the only frame")
	}
	if position == fs.base || position == fs.current {
		return fmt.Errorf("FrameSet.RemoveFrame: cannot remove the base or current frame")
	}

	removed := fs.nodes[position]
	if removed.parent >= 0 {
		// Children of the removed frame hang off its parent with a
		// composed mapping.
		for i := range fs.nodes {
			if i != position && fs.nodes[i].parent == position {
				cm, err := NewCmpMap(removed.mapping, fs.nodes[i].mapping)
				if err != nil {
					return err
				}
				fs.nodes[i].parent = removed.parent
				fs.nodes[i].mapping = cm
			}
		}
	} else {
		// Removing the root: promote its first child to root and attach
		// the other children to it through the inverted child mapping.
		root := -1
		for i := range fs.nodes {
			if i != position && fs.nodes[i].parent == position {
				if root < 0 {
					root = i
					continue
				}
				cm, err := NewCmpMap(NewInverted(fs.nodes[root].mapping), fs.nodes[i].mapping)
				if err != nil {
					return err
				}
				fs.nodes[i].parent = root
				fs.nodes[i].mapping = cm
			}
		}
		if root < 0 {
			return fmt.Errorf("FrameSet.RemoveFrame: root frame has no children")
		}
		fs.nodes[root].parent = -1
		fs.nodes[root].mapping = nil
	}

	fs.nodes = append(fs.nodes[:position], fs.nodes[position+1:]...)
	shift := func(i int) int {
		if i > position {
			return i - 1
		}
		return i
	}
	for i := range fs.nodes {
		if fs.nodes[i].parent >= 0 {
			fs.nodes[i].parent = shift(fs.nodes[i].parent)
		}
	}
	fs.base = shift(fs.base)
	fs.current = shift(fs.current)
	return nil
}

// Mapping returns the mapping whose forward transformation converts
// positions in the frame at index "from" into positions in the frame at
// index "to".
func (fs *FrameSet) Mapping(from, to int) (Mapping, error) {
	if from < 0 || from >= len(fs.nodes) {
		return nil, &ErrBadFrameIndex{Index: from, Size: len(fs.nodes)}
	}
	if to < 0 || to >= len(fs.nodes) {
		return nil, &ErrBadFrameIndex{Index: to, Size: len(fs.nodes)}
	}
	if from == to {
		return NewUnitMap(fs.nodes[from].frame.Naxes()), nil
	}

	pathFrom := fs.pathFromRoot(from)
	pathTo := fs.pathFromRoot(to)

	// Strip the common prefix: mappings on the shared part of the two
	// paths cancel.
	common := 0
	for common < len(pathFrom) && common < len(pathTo) && pathFrom[common] == pathTo[common] {
		common++
	}

	var parts []Mapping
	// Walk up from "from" to the junction, inverting each step.
	for i := len(pathFrom) - 1; i >= common; i-- {
		parts = append(parts, NewInverted(fs.nodes[pathFrom[i]].mapping))
	}
	// Walk down from the junction to "to".
	for i := common; i < len(pathTo); i++ {
		parts = append(parts, fs.nodes[pathTo[i]].mapping)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return NewCmpMap(parts...)
}

// pathFromRoot lists the nodes from (but excluding) the root down to i.
// The mapping stored on each listed node is one forward step on the path.
func (fs *FrameSet) pathFromRoot(i int) []int {
	var rev []int
	for n := i; fs.nodes[n].parent >= 0; n = fs.nodes[n].parent {
		rev = append(rev, n)
	}
	path := make([]int, len(rev))
	for j := range rev {
		path[j] = rev[len(rev)-1-j]
	}
	return path
}

// Copy returns a deep copy of the FrameSet structure. Frames and mappings
// are immutable and are shared between the copies.
func (fs *FrameSet) Copy() *FrameSet {
	out := &FrameSet{
		nodes:   make([]fsNode, len(fs.nodes)),
		base:    fs.base,
		current: fs.current,
	}
	copy(out.nodes, fs.nodes)
	return out
}
