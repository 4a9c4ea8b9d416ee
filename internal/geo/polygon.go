package geo

import "fmt"

// Polygon is a closed shape: an outer ring of vertices plus zero or more
// interior polygons (holes) whose area is excluded from the fill.
//
// Vertices are connected in the order supplied. Close the ring by repeating
// the first coordinate as the last one; the constructor does not enforce
// closure or a minimum vertex count, so degenerate shapes are representable.
// To straddle the antimeridian, supply longitudes beyond ±180.
//
// A Polygon is immutable once constructed. Input slices are copied in and
// accessors copy out, so no caller ever aliases internal storage; the shape
// may be read from any number of goroutines without synchronization.
type Polygon struct {
	vertices []Coordinate
	holes    []*Polygon
	bounds   Bounds
}

// NewPolygon builds a polygon with no holes from a copy of coords.
func NewPolygon(coords []Coordinate) (*Polygon, error) {
	return NewPolygonWithHoles(coords, nil)
}

// NewPolygonWithHoles builds a polygon whose holes are the given interior
// polygons. Holes nest exactly one level: an interior polygon that itself
// has interior polygons is rejected with ErrInvalidGeometry, as is a nil
// entry. An empty or nil holes slice yields a polygon with no holes.
//
// Both coords and the hole polygons are copied; the new polygon owns its
// storage outright and later mutation of the caller's slices has no effect.
func NewPolygonWithHoles(coords []Coordinate, holes []*Polygon) (*Polygon, error) {
	p := &Polygon{
		vertices: cloneCoordinates(coords),
		bounds:   boundsOf(coords),
	}
	if len(holes) == 0 {
		return p, nil
	}
	p.holes = make([]*Polygon, len(holes))
	for i, h := range holes {
		if h == nil {
			return nil, fmt.Errorf("interior polygon %d is nil: %w", i, ErrInvalidGeometry)
		}
		if len(h.holes) > 0 {
			return nil, fmt.Errorf("interior polygon %d has interior polygons of its own: %w", i, ErrInvalidGeometry)
		}
		p.holes[i] = &Polygon{
			vertices: cloneCoordinates(h.vertices),
			bounds:   h.bounds,
		}
	}
	return p, nil
}

// Coordinates returns a copy of the outer ring's vertices.
func (p *Polygon) Coordinates() []Coordinate {
	return cloneCoordinates(p.vertices)
}

// NumCoordinates returns the outer ring's vertex count.
func (p *Polygon) NumCoordinates() int { return len(p.vertices) }

// InteriorPolygons returns the polygon's holes in construction order,
// or nil when the polygon has none. The distinction between "no holes"
// and an empty list is deliberate: callers get nil, never a zero-length
// slice.
func (p *Polygon) InteriorPolygons() []*Polygon {
	if len(p.holes) == 0 {
		return nil
	}
	out := make([]*Polygon, len(p.holes))
	copy(out, p.holes)
	return out
}

// Rings returns the outer ring followed by each hole ring, copied out.
// This is the flat layout renderers and encoders consume.
func (p *Polygon) Rings() [][]Coordinate {
	out := make([][]Coordinate, 0, 1+len(p.holes))
	out = append(out, cloneCoordinates(p.vertices))
	for _, h := range p.holes {
		out = append(out, cloneCoordinates(h.vertices))
	}
	return out
}

// Bounds returns the box enclosing the outer ring.
func (p *Polygon) Bounds() Bounds { return p.bounds }

// Equal reports structural equality: same outer vertices and the same
// holes in the same order.
func (p *Polygon) Equal(o *Polygon) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.vertices) != len(o.vertices) || len(p.holes) != len(o.holes) {
		return false
	}
	for i := range p.vertices {
		if p.vertices[i] != o.vertices[i] {
			return false
		}
	}
	for i := range p.holes {
		if !p.holes[i].Equal(o.holes[i]) {
			return false
		}
	}
	return true
}

func (p *Polygon) overlay() {}
