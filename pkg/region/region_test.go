package region

import (
	"math"
	"testing"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

func mustCircle(t *testing.T, centre []float64, radius float64) *Region {
	t.Helper()
	r, err := NewCircle(wcs.NewFrame(len(centre), ""), centre, radius)
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	return r
}

func mustBox(t *testing.T, p1, p2 []float64) *Region {
	t.Helper()
	r, err := NewBox(wcs.NewFrame(len(p1), ""), p1, p2)
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}
	return r
}

func mustContain(t *testing.T, r *Region, p []float64, want bool) {
	t.Helper()
	got, err := r.Contains(p)
	if err != nil {
		t.Fatalf("Contains(%v) failed: %v", p, err)
	}
	if got != want {
		t.Errorf("Contains(%v): got %v, want %v", p, got, want)
	}
}

func TestCircleMembership(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)

	tests := []struct {
		name string
		p    []float64
		want bool
	}{
		{"centre", []float64{0, 0}, true},
		{"interior", []float64{0.5, 0.5}, true},
		{"boundary", []float64{1, 0}, true},
		{"outside", []float64{1.5, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustContain(t, c, tt.p, tt.want)
		})
	}
}

func TestClosedControlsBoundary(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)
	boundary := []float64{1, 0}

	mustContain(t, c, boundary, true)
	c.SetClosed(false)
	mustContain(t, c, boundary, false)

	// The boundary belongs to a closed region whether or not it is
	// negated.
	c.SetClosed(true)
	c.Negate()
	mustContain(t, c, boundary, true)
}

func TestNegateFlipsMembership(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)
	c.Negate()

	mustContain(t, c, []float64{0, 0}, false)
	mustContain(t, c, []float64{5, 5}, true)

	c.Negate()
	mustContain(t, c, []float64{0, 0}, true)
	if c.Bounded() != true {
		t.Error("double negation should restore boundedness")
	}
}

func TestBoxMembership(t *testing.T) {
	b := mustBox(t, []float64{-2, -1}, []float64{2, 1})

	mustContain(t, b, []float64{0, 0}, true)
	mustContain(t, b, []float64{2, 1}, true) // corner, closed by default
	mustContain(t, b, []float64{2.1, 0}, false)

	b.SetClosed(false)
	mustContain(t, b, []float64{2, 1}, false)
}

func TestEllipseMembership(t *testing.T) {
	e, err := NewEllipse(wcs.NewFrame(2, ""), []float64{0, 0}, 2, 1, 0)
	if err != nil {
		t.Fatalf("NewEllipse failed: %v", err)
	}
	mustContain(t, e, []float64{1.9, 0}, true)
	mustContain(t, e, []float64{0, 0.9}, true)
	mustContain(t, e, []float64{0, 1.5}, false)
	mustContain(t, e, []float64{2, 0}, true) // on the boundary

	// Rotate the same ellipse a quarter turn: extents swap.
	e2, err := NewEllipse(wcs.NewFrame(2, ""), []float64{0, 0}, 2, 1, math.Pi/2)
	if err != nil {
		t.Fatalf("NewEllipse failed: %v", err)
	}
	mustContain(t, e2, []float64{0, 1.9}, true)
	mustContain(t, e2, []float64{1.5, 0}, false)
}

func TestIntervalMembershipAndBoundedness(t *testing.T) {
	inf := math.Inf(1)
	iv, err := NewInterval(wcs.NewFrame(2, ""), []float64{0, -inf}, []float64{1, inf})
	if err != nil {
		t.Fatalf("NewInterval failed: %v", err)
	}

	mustContain(t, iv, []float64{0.5, 1e6}, true)
	mustContain(t, iv, []float64{2, 0}, false)

	if iv.Bounded() {
		t.Error("interval with an infinite axis must be unbounded")
	}
	if iv.hasFiniteBoundary() {
		t.Error("interval with an infinite axis has no finite boundary")
	}
	if _, err := iv.Mesh(); err == nil {
		t.Error("meshing an unbounded interval should fail")
	}

	finite, err := NewInterval(wcs.NewFrame(2, ""), []float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewInterval failed: %v", err)
	}
	if !finite.Bounded() {
		t.Error("fully finite interval should be bounded")
	}
}

func TestIntervalRejectsSwappedBounds(t *testing.T) {
	_, err := NewInterval(wcs.NewFrame(1, ""), []float64{2.5}, []float64{1.25})
	if err == nil {
		t.Fatal("NewInterval with lower > upper should fail")
	}
	ie, ok := err.(*ErrInvalidInterval)
	if !ok {
		t.Fatalf("error type: got %T", err)
	}
	if ie.Lower != 2.5 || ie.Upper != 1.25 {
		t.Errorf("error limits: got [%g, %g], want [2.5, 1.25]", ie.Lower, ie.Upper)
	}

	// Infinite limits survive into the error untouched.
	_, err = NewInterval(wcs.NewFrame(1, ""), []float64{math.Inf(1)}, []float64{0})
	ie, ok = err.(*ErrInvalidInterval)
	if !ok {
		t.Fatalf("error type: got %T", err)
	}
	if !math.IsInf(ie.Lower, 1) {
		t.Errorf("infinite lower limit lost: got %g", ie.Lower)
	}
}

func TestMeshSizeDefaultsAndFloor(t *testing.T) {
	tests := []struct {
		naxes int
		want  int
	}{
		{1, 2},
		{2, 200},
		{3, 2000},
	}
	for _, tt := range tests {
		centre := make([]float64, tt.naxes)
		c := mustCircle(t, centre, 1)
		if got := c.MeshSize(); got != tt.want {
			t.Errorf("naxes=%d: default MeshSize got %d, want %d", tt.naxes, got, tt.want)
		}
	}

	c := mustCircle(t, []float64{0, 0}, 1)
	c.SetMeshSize(3)
	if got := c.MeshSize(); got != 5 {
		t.Errorf("MeshSize floor: got %d, want 5", got)
	}
	c.ClearMeshSize()
	if c.TestMeshSize() {
		t.Error("ClearMeshSize should reset the set flag")
	}
}

func TestMeshSizeControlsMesh(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 2)
	c.SetMeshSize(40)
	mesh, err := c.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.Len() != 40 {
		t.Errorf("mesh size: got %d, want 40", mesh.Len())
	}
	for i := 0; i < mesh.Len(); i++ {
		p := mesh.Point(i)
		if d := math.Hypot(p[0], p[1]); math.Abs(d-2) > 1e-12 {
			t.Fatalf("mesh point %d at distance %g, want 2", i, d)
		}
	}
}

func TestMeshCacheInvalidation(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)
	c.SetMeshSize(10)
	m1, err := c.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	m2, err := c.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if m1.Len() != m2.Len() {
		t.Fatal("repeated meshing changed the mesh")
	}

	c.SetMeshSize(20)
	m3, err := c.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if m3.Len() != 20 {
		t.Errorf("mesh after resize: got %d points, want 20", m3.Len())
	}
}

func TestFillFactorRange(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)
	if got := c.FillFactor(); got != 1 {
		t.Errorf("default FillFactor: got %g, want 1", got)
	}
	if err := c.SetFillFactor(0.5); err != nil {
		t.Fatalf("SetFillFactor(0.5) failed: %v", err)
	}
	if err := c.SetFillFactor(1.5); err == nil {
		t.Fatal("SetFillFactor(1.5) should fail")
	}
	if got := c.FillFactor(); got != 0.5 {
		t.Errorf("failed set must not change the value: got %g", got)
	}
}

func TestBoundsIdentityFrame(t *testing.T) {
	b := mustBox(t, []float64{-2, -1}, []float64{2, 1})
	lb, ub, err := b.Bounds()
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	want := [][]float64{{-2, -1}, {2, 1}}
	for ax := 0; ax < 2; ax++ {
		if lb[ax] != want[0][ax] || ub[ax] != want[1][ax] {
			t.Errorf("axis %d: got [%g, %g], want [%g, %g]",
				ax, lb[ax], ub[ax], want[0][ax], want[1][ax])
		}
	}
}

func TestCentre(t *testing.T) {
	c := mustCircle(t, []float64{3, -4}, 1)
	got := c.Centre()
	if got[0] != 3 || got[1] != -4 {
		t.Errorf("Centre: got %v, want [3 -4]", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)
	cp := c.Copy()
	cp.Negate()
	cp.SetMeshSize(10)

	if c.Negated() {
		t.Error("negating a copy changed the original")
	}
	if c.MeshSize() != 200 {
		t.Error("resizing a copy's mesh changed the original")
	}
	if !c.Equal(c.Copy()) {
		t.Error("a fresh copy should compare equal to the original")
	}
	if c.Equal(cp) {
		t.Error("a negated copy must not compare equal")
	}
}

func TestEqual(t *testing.T) {
	a := mustCircle(t, []float64{0, 0}, 1)
	tests := []struct {
		name  string
		other *Region
		want  bool
	}{
		{"same geometry", mustCircle(t, []float64{0, 0}, 1), true},
		{"different radius", mustCircle(t, []float64{0, 0}, 2), false},
		{"different centre", mustCircle(t, []float64{1, 0}, 1), false},
		{"different class", mustBox(t, []float64{-1, -1}, []float64{1, 1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegionAsMapping(t *testing.T) {
	c := mustCircle(t, []float64{0, 0}, 1)

	ps := wcs.NewPointSet(2)
	ps.Append([]float64{0.5, 0})
	ps.Append([]float64{3, 0})

	for _, forward := range []bool{true, false} {
		out, err := c.Tran(ps, forward)
		if err != nil {
			t.Fatalf("Tran failed: %v", err)
		}
		if out.IsBad(0) {
			t.Error("interior point flagged bad")
		}
		if p := out.Point(0); p[0] != 0.5 || p[1] != 0 {
			t.Errorf("interior point altered: %v", p)
		}
		if !out.IsBad(1) {
			t.Error("exterior point not flagged bad")
		}
	}
}

func TestConstructorValidation(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	if _, err := NewCircle(frm, []float64{0}, 1); err == nil {
		t.Error("NewCircle with short centre should fail")
	}
	if _, err := NewCircle(frm, []float64{0, 0}, -1); err == nil {
		t.Error("NewCircle with negative radius should fail")
	}
	if _, err := NewBox(frm, []float64{0, 0}, []float64{1}); err == nil {
		t.Error("NewBox with short corner should fail")
	}
	if _, err := NewEllipse(wcs.NewFrame(3, ""), []float64{0, 0, 0}, 1, 1, 0); err == nil {
		t.Error("NewEllipse outside two dimensions should fail")
	}
}

func BenchmarkCircleContains(b *testing.B) {
	c, err := NewCircle(wcs.NewFrame(2, ""), []float64{0, 0}, 1)
	if err != nil {
		b.Fatal(err)
	}
	p := []float64{0.5, 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Contains(p); err != nil {
			b.Fatal(err)
		}
	}
}
