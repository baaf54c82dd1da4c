package region

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/beetlebugorg/wcs/pkg/wcs"
)

// Numeric covers the element types a grid mask can operate on.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Mask assigns val to the elements of a gridded array selected by a
// region, and returns the number of elements whose value actually changed.
//
// The grid spans lbnd..ubnd (inclusive) on each dimension and is stored
// with the first dimension varying fastest, one element per cell. The
// mapping m must convert positions in the region's current frame into
// grid coordinates, where the centre of cell (i, j, ...) is at the
// position (i, j, ...); pass nil when the region is already expressed in
// grid coordinates. With inside true the elements whose cell centres fall
// inside the region (honouring its Negated and Closed flags) are
// assigned; with inside false the elements outside are.
//
// Masking the same region twice with the same value is idempotent: the
// second call reports zero changed elements.
func Mask[T Numeric](r *Region, m wcs.Mapping, inside bool, lbnd, ubnd []int, grid []T, val T) (int, error) {
	ndim := len(lbnd)
	if len(ubnd) != ndim {
		return 0, &ErrDimensionMismatch{Op: "Mask", Want: ndim, Got: len(ubnd)}
	}
	npix := 1
	for ax := 0; ax < ndim; ax++ {
		if lbnd[ax] > ubnd[ax] {
			return 0, &ErrInvalidBounds{Axis: ax, Lower: lbnd[ax], Upper: ubnd[ax]}
		}
		npix *= ubnd[ax] - lbnd[ax] + 1
	}
	if len(grid) != npix {
		return 0, &ErrDimensionMismatch{Op: "Mask", Want: npix, Got: len(grid)}
	}

	if m == nil {
		m = wcs.NewUnitMap(r.Naxes())
	}
	if m.Nin() != r.Naxes() {
		return 0, &ErrDimensionMismatch{Op: "Mask", Want: r.Naxes(), Got: m.Nin()}
	}
	if m.Nout() != ndim {
		return 0, &ErrDimensionMismatch{Op: "Mask", Want: ndim, Got: m.Nout()}
	}

	// Re-express the region in grid coordinates and find the grid cells
	// its boundary can reach, with a two pixel safety margin. Unbounded
	// geometries fall back to scanning the whole grid.
	used, err := r.MapRegion(m, wcs.NewFrame(ndim, "GRID"))
	if err != nil {
		return 0, err
	}
	blo := append([]int(nil), lbnd...)
	bhi := append([]int(nil), ubnd...)
	if flo, fhi, err := used.Bounds(); err == nil {
		for ax := 0; ax < ndim; ax++ {
			if v := flo[ax]; !math.IsInf(v, 0) {
				blo[ax] = clampInt(int(math.Floor(v))-2, lbnd[ax], ubnd[ax])
			}
			if v := fhi[ax]; !math.IsInf(v, 0) {
				bhi[ax] = clampInt(int(math.Ceil(v))+2, lbnd[ax], ubnd[ax])
			}
		}
	}

	// Cells outside the bounding box cannot be covered by the un-negated
	// geometry, so their membership equals the Negated flag.
	fillOutside := inside == used.Negated()

	changed := 0
	centres := wcs.NewPointSet(ndim)
	var offsets []int

	idx := append([]int(nil), lbnd...)
	for off := 0; off < npix; off++ {
		inBox := true
		for ax := 0; ax < ndim; ax++ {
			if idx[ax] < blo[ax] || idx[ax] > bhi[ax] {
				inBox = false
				break
			}
		}
		if inBox {
			p := make([]float64, ndim)
			for ax := 0; ax < ndim; ax++ {
				p[ax] = float64(idx[ax])
			}
			centres.Append(p)
			offsets = append(offsets, off)
		} else if fillOutside && grid[off] != val {
			grid[off] = val
			changed++
		}

		for ax := 0; ax < ndim; ax++ {
			idx[ax]++
			if idx[ax] <= ubnd[ax] {
				break
			}
			idx[ax] = lbnd[ax]
		}
	}

	if centres.Len() > 0 {
		// The region acts as its own membership transform: cell centres
		// outside come back flagged bad.
		out, err := used.Tran(centres, true)
		if err != nil {
			return changed, err
		}
		for k, off := range offsets {
			member := !out.IsBad(k)
			if member == inside && grid[off] != val {
				grid[off] = val
				changed++
			}
		}
	}
	return changed, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
