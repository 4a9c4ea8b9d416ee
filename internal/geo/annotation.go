package geo

// PointAnnotation is a single marked coordinate with an optional title.
type PointAnnotation struct {
	coord Coordinate
	title string
}

// NewPointAnnotation builds a point annotation at c.
func NewPointAnnotation(c Coordinate, title string) *PointAnnotation {
	return &PointAnnotation{coord: c, title: title}
}

// Coordinate returns the annotated position.
func (a *PointAnnotation) Coordinate() Coordinate { return a.coord }

// Title returns the annotation's label, possibly empty.
func (a *PointAnnotation) Title() string { return a.title }

// Bounds returns a degenerate box at the annotated position.
func (a *PointAnnotation) Bounds() Bounds {
	return Bounds{MinLon: a.coord.Lon, MinLat: a.coord.Lat, MaxLon: a.coord.Lon, MaxLat: a.coord.Lat}
}

func (a *PointAnnotation) overlay() {}
