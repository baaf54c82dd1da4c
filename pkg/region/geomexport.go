package region

import (
	"github.com/twpayne/go-geom"
)

// Outline returns the region's boundary mesh as a go-geom LineString in
// the current frame, for export to GeoJSON, WKT or other geometry
// tooling. Only two dimensional regions can be outlined. Mesh points that
// do not map into the current frame are dropped.
func (r *Region) Outline() (*geom.LineString, error) {
	coords, err := r.outlineCoords()
	if err != nil {
		return nil, err
	}
	ls := geom.NewLineString(geom.XY)
	return ls.SetCoords(coords)
}

// OutlinePolygon returns the region's boundary as a closed go-geom
// Polygon: the boundary mesh with the first point repeated at the end.
// Only two dimensional regions are supported.
func (r *Region) OutlinePolygon() (*geom.Polygon, error) {
	coords, err := r.outlineCoords()
	if err != nil {
		return nil, err
	}
	if len(coords) > 0 {
		coords = append(coords, coords[0])
	}
	poly := geom.NewPolygon(geom.XY)
	return poly.SetCoords([][]geom.Coord{coords})
}

func (r *Region) outlineCoords() ([]geom.Coord, error) {
	if r.Naxes() != 2 {
		return nil, &ErrDimensionMismatch{Op: "Outline", Want: 2, Got: r.Naxes()}
	}
	mesh, err := r.Mesh()
	if err != nil {
		return nil, err
	}
	coords := make([]geom.Coord, 0, mesh.Len())
	for i := 0; i < mesh.Len(); i++ {
		if mesh.IsBad(i) {
			continue
		}
		p := mesh.Point(i)
		coords = append(coords, geom.Coord{p[0], p[1]})
	}
	return coords, nil
}
