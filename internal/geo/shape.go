package geo

// Shape is anything the map can display, directly or through a source.
type Shape interface {
	// Bounds returns the shape's enclosing lon/lat box.
	Bounds() Bounds
}

// Overlay marks shapes that may be added directly to the map view's
// overlay list. Polygon, Polyline and PointAnnotation qualify.
// MultiPolygon does not: it is routed through a shape source, or its
// member polygons are added individually.
type Overlay interface {
	Shape
	overlay()
}
