// Package region implements geometric regions within world coordinate
// frames: circles, boxes, ellipses, axis intervals and boolean
// combinations of them.
//
// A Region couples a shape with a FrameSet, so the same geometry can be
// presented in any coordinate system reachable from the one it was
// defined in (see MapRegion). Regions support point membership tests,
// boundary meshing, mutual overlap classification (Overlap), pixel-grid
// masking (Mask) and R-tree indexed spatial queries (Index).
//
// Each region carries an uncertainty region describing the positional
// tolerance of its boundary; overlap tests use it to decide when two
// boundaries coincide. A default uncertainty of about one part in a
// million of the region's size applies until SetUnc supplies a better
// one.
//
// Regions also satisfy wcs.Mapping: transforming points through a region
// flags every exterior point with the wcs.Bad value, which is how masking
// and overlap classification are implemented internally.
package region
