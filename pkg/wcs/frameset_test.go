package wcs

import (
	"math"
	"testing"
)

func TestFrameSetAddAndMapping(t *testing.T) {
	fs := NewFrameSet(NewFrame(1, "A"))
	i1, err := fs.AddFrame(0, NewScaleMap([]float64{2}), NewFrame(1, "B"))
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}
	i2, err := fs.AddFrame(i1, NewShiftMap([]float64{1}), NewFrame(1, "C"))
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	if fs.Current() != i2 {
		t.Errorf("newly added frame should become current, got %d", fs.Current())
	}
	if fs.Base() != 0 {
		t.Errorf("base frame should stay at 0, got %d", fs.Base())
	}

	m, err := fs.Mapping(0, i2)
	if err != nil {
		t.Fatalf("Mapping failed: %v", err)
	}
	got := tranOne(t, m, []float64{3}, true)
	if got[0] != 7 {
		t.Errorf("A->C: got %g, want 7", got[0])
	}

	// And the reverse path.
	back, err := fs.Mapping(i2, 0)
	if err != nil {
		t.Fatalf("Mapping failed: %v", err)
	}
	gotBack := tranOne(t, back, []float64{7}, true)
	if gotBack[0] != 3 {
		t.Errorf("C->A: got %g, want 3", gotBack[0])
	}
}

func TestFrameSetMappingBetweenSiblings(t *testing.T) {
	fs := NewFrameSet(NewFrame(1, "ROOT"))
	left, err := fs.AddFrame(0, NewScaleMap([]float64{2}), NewFrame(1, "L"))
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}
	right, err := fs.AddFrame(0, NewShiftMap([]float64{10}), NewFrame(1, "R"))
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	m, err := fs.Mapping(left, right)
	if err != nil {
		t.Fatalf("Mapping failed: %v", err)
	}
	// L -> ROOT is division by 2, ROOT -> R adds 10.
	got := tranOne(t, m, []float64{6}, true)
	if got[0] != 13 {
		t.Errorf("L->R: got %g, want 13", got[0])
	}
}

func TestFrameSetRemoveFrameResplices(t *testing.T) {
	fs := NewFrameSet(NewFrame(1, "A"))
	i1, _ := fs.AddFrame(0, NewScaleMap([]float64{2}), NewFrame(1, "B"))
	i2, _ := fs.AddFrame(i1, NewShiftMap([]float64{1}), NewFrame(1, "C"))

	if err := fs.RemoveFrame(i1); err != nil {
		t.Fatalf("RemoveFrame failed: %v", err)
	}
	if fs.Size() != 2 {
		t.Fatalf("Size after removal: got %d, want 2", fs.Size())
	}

	// C moved down one slot; the composite mapping must survive.
	i2--
	m, err := fs.Mapping(0, i2)
	if err != nil {
		t.Fatalf("Mapping failed: %v", err)
	}
	got := tranOne(t, m, []float64{3}, true)
	if got[0] != 7 {
		t.Errorf("A->C after removal: got %g, want 7", got[0])
	}
}

func TestFrameSetRemoveFrameRestrictions(t *testing.T) {
	fs := NewFrameSet(NewFrame(1, "A"))
	if err := fs.RemoveFrame(0); err == nil {
		t.Error("removing the only frame should fail")
	}
	i1, _ := fs.AddFrame(0, NewUnitMap(1), NewFrame(1, "B"))
	if err := fs.RemoveFrame(i1); err == nil {
		t.Error("removing the current frame should fail")
	}
	if err := fs.RemoveFrame(fs.Base()); err == nil {
		t.Error("removing the base frame should fail")
	}
}

func TestFrameSetSetCurrent(t *testing.T) {
	fs := NewFrameSet(NewFrame(2, "A"))
	i1, _ := fs.AddFrame(0, NewUnitMap(2), NewFrame(2, "B"))
	if err := fs.SetCurrent(0); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}
	if fs.Current() != 0 {
		t.Errorf("Current: got %d, want 0", fs.Current())
	}
	if err := fs.SetCurrent(i1 + 1); err == nil {
		t.Error("SetCurrent out of range should fail")
	}
}

func TestFrameSetAddFrameAxisMismatch(t *testing.T) {
	fs := NewFrameSet(NewFrame(2, "A"))
	if _, err := fs.AddFrame(0, NewUnitMap(2), NewFrame(3, "B")); err == nil {
		t.Error("AddFrame with mismatched frame axes should fail")
	}
	if _, err := fs.AddFrame(0, NewUnitMap(3), NewFrame(3, "B")); err == nil {
		t.Error("AddFrame with mismatched mapping input should fail")
	}
}

func TestFrameSetCopyIndependence(t *testing.T) {
	fs := NewFrameSet(NewFrame(1, "A"))
	i1, _ := fs.AddFrame(0, NewScaleMap([]float64{2}), NewFrame(1, "B"))

	cp := fs.Copy()
	if _, err := cp.AddFrame(i1, NewShiftMap([]float64{5}), NewFrame(1, "C")); err != nil {
		t.Fatalf("AddFrame on copy failed: %v", err)
	}
	if fs.Size() != 2 || cp.Size() != 3 {
		t.Errorf("sizes after copy mutation: got %d/%d, want 2/3", fs.Size(), cp.Size())
	}

	m, err := fs.Mapping(0, i1)
	if err != nil {
		t.Fatalf("Mapping failed: %v", err)
	}
	got := tranOne(t, m, []float64{1.5}, true)
	if math.Abs(got[0]-3) > 1e-12 {
		t.Errorf("original mapping disturbed: got %g, want 3", got[0])
	}
}
