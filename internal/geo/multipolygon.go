package geo

import "fmt"

// MultiPolygon groups one or more non-overlapping polygons into a single
// logical shape, such as an island plus the atoll surrounding it. The
// non-overlap expectation is a caller contract and is not checked here.
//
// The member slice is copied at construction but the members themselves
// keep their identity; a polygon handed to NewMultiPolygon is the same
// polygon the accessor later returns.
//
// A MultiPolygon cannot be added to the map view as a single overlay.
// Route it through a shape source, or add its Polygons individually.
type MultiPolygon struct {
	polygons []*Polygon
	bounds   Bounds
}

// NewMultiPolygon builds a multipolygon from a copy of the polys slice.
// Nil entries are rejected with ErrInvalidGeometry. An empty slice is
// accepted and yields an empty shape.
func NewMultiPolygon(polys []*Polygon) (*MultiPolygon, error) {
	mp := &MultiPolygon{}
	if len(polys) == 0 {
		return mp, nil
	}
	mp.polygons = make([]*Polygon, len(polys))
	for i, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("polygon %d is nil: %w", i, ErrInvalidGeometry)
		}
		mp.polygons[i] = p
		mp.bounds = mp.bounds.Union(p.Bounds())
	}
	return mp, nil
}

// Polygons returns the member polygons in construction order.
func (mp *MultiPolygon) Polygons() []*Polygon {
	if len(mp.polygons) == 0 {
		return nil
	}
	out := make([]*Polygon, len(mp.polygons))
	copy(out, mp.polygons)
	return out
}

// Len returns the member count.
func (mp *MultiPolygon) Len() int { return len(mp.polygons) }

// Bounds returns the union of the members' bounds.
func (mp *MultiPolygon) Bounds() Bounds { return mp.bounds }
