package region

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Index provides fast spatial queries over a collection of regions.
//
// Each region is stored together with its current-frame bounding box in an
// R-tree, so candidate lookups are O(log N) instead of an O(N) scan over
// every region. Bounding boxes overestimate curved or mapped regions, so
// QueryOverlap re-checks each candidate with a full Overlap test.
//
// Example:
//
//	idx := region.NewIndex(2)
//	idx.Add("fov", camera)
//	idx.Add("source", src)
//
//	hits, err := idx.QueryOverlap(target)
type Index struct {
	entries []IndexEntry
	rtree   *rtreego.Rtree
}

// IndexEntry is a region stored in an Index together with its label and
// the bounding box it was indexed under.
type IndexEntry struct {
	Label      string
	Region     *Region
	lbnd, ubnd []float64
}

// Bounds converts the entry's bounding box into an R-tree rectangle.
func (e IndexEntry) Bounds() rtreego.Rect {
	point := make(rtreego.Point, len(e.lbnd))
	lengths := make([]float64, len(e.lbnd))
	for ax := range e.lbnd {
		point[ax] = e.lbnd[ax]
		lengths[ax] = e.ubnd[ax] - e.lbnd[ax]
		if lengths[ax] <= 0 {
			lengths[ax] = 1e-12
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex creates an empty index for regions with the given number of
// axes.
func NewIndex(naxes int) *Index {
	return &Index{
		rtree: rtreego.NewTree(naxes, 25, 50),
	}
}

// Add indexes a region under a label. The region's current-frame bounding
// box must be finite and computable; unbounded regions are rejected.
func (idx *Index) Add(label string, r *Region) error {
	if idx.rtree.Dim != r.Naxes() {
		return &ErrDimensionMismatch{Op: "Index.Add", Want: idx.rtree.Dim, Got: r.Naxes()}
	}
	lbnd, ubnd, err := r.Bounds()
	if err != nil {
		return err
	}
	for ax := range lbnd {
		if lbnd[ax] < -1e300 || ubnd[ax] > 1e300 {
			return &ErrUnboundedRegion{Kind: r.Kind(), Op: "Index.Add"}
		}
	}
	entry := IndexEntry{Label: label, Region: r, lbnd: lbnd, ubnd: ubnd}
	idx.entries = append(idx.entries, entry)
	idx.rtree.Insert(entry)
	return nil
}

// Query returns the entries whose bounding boxes intersect the given box,
// sorted by label. This is a coarse test: a hit means only that the
// bounding boxes touch.
func (idx *Index) Query(lbnd, ubnd []float64) []IndexEntry {
	probe := IndexEntry{lbnd: lbnd, ubnd: ubnd}
	spatials := idx.rtree.SearchIntersect(probe.Bounds())

	result := make([]IndexEntry, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(IndexEntry))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Label < result[j].Label
	})
	return result
}

// QueryOverlap returns the entries whose regions genuinely overlap the
// supplied region, each paired with its Overlap classification. Candidates
// are found through the R-tree and then confirmed with a full Overlap
// test, so bounding-box-only near misses are filtered out.
func (idx *Index) QueryOverlap(r *Region) ([]OverlapMatch, error) {
	lbnd, ubnd, err := r.Bounds()
	if err != nil {
		return nil, err
	}

	var result []OverlapMatch
	for _, entry := range idx.Query(lbnd, ubnd) {
		res, err := r.Overlap(entry.Region)
		if err != nil {
			return nil, err
		}
		switch res {
		case OverlapNone, OverlapUnknown:
			continue
		}
		result = append(result, OverlapMatch{Entry: entry, Result: res})
	}
	return result, nil
}

// OverlapMatch pairs an index entry with how the queried region relates
// to it.
type OverlapMatch struct {
	Entry  IndexEntry
	Result OverlapResult
}

// Count returns the number of regions in the index.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// All returns every entry in the index, in insertion order.
func (idx *Index) All() []IndexEntry {
	return idx.entries
}
