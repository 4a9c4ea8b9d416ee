package geo

// Polyline is an open path of vertices: the stroked, unfilled sibling of
// Polygon. Use it when a boundary should be drawn without filling the
// enclosed area. Same copy-in contract as Polygon; immutable once built.
type Polyline struct {
	vertices []Coordinate
	bounds   Bounds
}

// NewPolyline builds a polyline from a copy of coords.
func NewPolyline(coords []Coordinate) *Polyline {
	return &Polyline{
		vertices: cloneCoordinates(coords),
		bounds:   boundsOf(coords),
	}
}

// Coordinates returns a copy of the path's vertices.
func (l *Polyline) Coordinates() []Coordinate {
	return cloneCoordinates(l.vertices)
}

// NumCoordinates returns the vertex count.
func (l *Polyline) NumCoordinates() int { return len(l.vertices) }

// Bounds returns the box enclosing the path.
func (l *Polyline) Bounds() Bounds { return l.bounds }

func (l *Polyline) overlay() {}
