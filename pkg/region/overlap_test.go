package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

func TestOverlapClassification(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	circle := func(cx, cy, r float64) *Region {
		reg, err := NewCircle(frm, []float64{cx, cy}, r)
		require.NoError(t, err)
		return reg
	}
	box := func(x1, y1, x2, y2 float64) *Region {
		reg, err := NewBox(frm, []float64{x1, y1}, []float64{x2, y2})
		require.NoError(t, err)
		return reg
	}
	negated := func(reg *Region) *Region {
		reg.Negate()
		return reg
	}

	tests := []struct {
		name string
		a, b *Region
		want OverlapResult
	}{
		{"disjoint", circle(0, 0, 1), box(5, 5, 6, 6), OverlapNone},
		{"circle inside box", circle(0, 0, 1), box(-2, -2, 2, 2), OverlapInside},
		{"box contains circle", box(-2, -2, 2, 2), circle(0, 0, 1), OverlapContains},
		{"partial", circle(0, 0, 1), box(0, 0, 2, 2), OverlapPartial},
		{"overlapping circles", circle(0, 0, 1), circle(1, 0, 1), OverlapPartial},
		{"concentric circles", circle(0, 0, 1), circle(0, 0, 2), OverlapInside},
		{"box inside negated circle", negated(circle(0, 0, 1)), box(5, 5, 6, 6), OverlapContains},
		{"circle avoids negated self", circle(0, 0, 1), negated(circle(0, 0, 1)), OverlapNegation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Overlap(tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapIdentical(t *testing.T) {
	c, err := NewCircle(wcs.NewFrame(2, ""), []float64{0, 0}, 1)
	require.NoError(t, err)

	got, err := c.Overlap(c.Copy())
	require.NoError(t, err)
	require.Equal(t, OverlapSame, got)
}

func TestOverlapSymmetry(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	a, err := NewCircle(frm, []float64{0, 0}, 1)
	require.NoError(t, err)
	b, err := NewBox(frm, []float64{-2, -2}, []float64{2, 2})
	require.NoError(t, err)

	ab, err := a.Overlap(b)
	require.NoError(t, err)
	ba, err := b.Overlap(a)
	require.NoError(t, err)

	require.Equal(t, OverlapInside, ab)
	require.Equal(t, OverlapContains, ba)
}

func TestOverlapCoincidentBoundaries(t *testing.T) {
	frm := wcs.NewFrame(2, "")

	// Same geometry but a different Closed setting: not Equal, yet the
	// boundaries coincide exactly.
	a, err := NewCircle(frm, []float64{0, 0}, 1)
	require.NoError(t, err)
	b, err := NewCircle(frm, []float64{0, 0}, 1)
	require.NoError(t, err)
	b.SetClosed(false)

	got, err := a.Overlap(b)
	require.NoError(t, err)
	require.Equal(t, OverlapSame, got)

	// Same boundary, opposite coverage.
	b.Negate()
	got, err = a.Overlap(b)
	require.NoError(t, err)
	require.Equal(t, OverlapNegation, got)
}

func TestOverlapAcrossMappedFrames(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	a, err := NewCircle(frm, []float64{0, 0}, 1)
	require.NoError(t, err)

	// The same unit circle, built at the origin and shifted to (0,0)...
	// i.e. built at (-5,-5) and re-expressed through a +5 shift.
	c, err := NewCircle(frm, []float64{-5, -5}, 1)
	require.NoError(t, err)
	b, err := c.MapRegion(wcs.NewShiftMap([]float64{5, 5}), frm)
	require.NoError(t, err)

	got, err := a.Overlap(b)
	require.NoError(t, err)
	require.Equal(t, OverlapSame, got)
}

func TestOverlapUnknownFrames(t *testing.T) {
	a, err := NewCircle(wcs.NewFrame(2, "PIXEL"), []float64{0, 0}, 1)
	require.NoError(t, err)
	b, err := NewCircle(wcs.NewSkyFrame(wcs.SystemICRS), []float64{0, 0}, 0.1)
	require.NoError(t, err)

	got, err := a.Overlap(b)
	require.NoError(t, err)
	require.Equal(t, OverlapUnknown, got)
}

func TestOverlapNeitherBoundaryFinite(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	inf := math.Inf(1)
	a, err := NewInterval(frm, []float64{0, -inf}, []float64{1, inf})
	require.NoError(t, err)
	b, err := NewInterval(frm, []float64{-inf, 0}, []float64{inf, 1})
	require.NoError(t, err)

	_, err = a.Overlap(b)
	require.Error(t, err)
	require.IsType(t, &ErrIndeterminateOverlap{}, err)
}

func TestOverlapWithHalfPlane(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	inf := math.Inf(1)
	half, err := NewInterval(frm, []float64{0, -inf}, []float64{inf, inf})
	require.NoError(t, err)
	c, err := NewCircle(frm, []float64{5, 0}, 1)
	require.NoError(t, err)

	got, err := half.Overlap(c)
	require.NoError(t, err)
	require.Equal(t, OverlapContains, got)

	got, err = c.Overlap(half)
	require.NoError(t, err)
	require.Equal(t, OverlapInside, got)
}

func TestOverlapBeyondInverseDomain(t *testing.T) {
	frm := wcs.NewFrame(2, "")
	c, err := NewCircle(frm, []float64{0, 0}, 1)
	require.NoError(t, err)

	// A mapping whose inverse is only defined near the origin: remote
	// current-frame positions have no base-frame counterpart, so a far
	// region's boundary mesh transforms to all-bad points. That must not
	// read as boundary coincidence.
	clip := wcs.NewFuncMap(2, 2,
		func(p []float64) []float64 { return append([]float64(nil), p...) },
		func(p []float64) []float64 {
			if math.Hypot(p[0], p[1]) > 10 {
				return nil
			}
			return append([]float64(nil), p...)
		})
	mapped, err := c.MapRegion(clip, frm)
	require.NoError(t, err)

	far, err := NewCircle(frm, []float64{100, 100}, 1)
	require.NoError(t, err)

	got, err := mapped.Overlap(far)
	require.NoError(t, err)
	require.Equal(t, OverlapNone, got)

	got, err = far.Overlap(mapped)
	require.NoError(t, err)
	require.Equal(t, OverlapNone, got)
}

func BenchmarkOverlap(b *testing.B) {
	frm := wcs.NewFrame(2, "")
	c1, err := NewCircle(frm, []float64{0, 0}, 1)
	if err != nil {
		b.Fatal(err)
	}
	c2, err := NewCircle(frm, []float64{0.5, 0}, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c1.Overlap(c2); err != nil {
			b.Fatal(err)
		}
	}
}
