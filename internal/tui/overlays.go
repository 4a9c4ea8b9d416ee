package tui

import (
	"shapemap/internal/geo"
)

// AddOverlay puts a shape directly onto the map. Only types carrying the
// overlay capability are accepted: a MultiPolygon cannot come through
// here, which is why AddMultiPolygonMembers exists.
func (m *Model) AddOverlay(o geo.Overlay) {
	if o == nil {
		return
	}
	m.overlays = append(m.overlays, o)
	m.refreshBounds()
	m.refreshLayerVisibility()
}

// AddMultiPolygonMembers adds each member polygon of mp as an individual
// overlay, in order.
func (m *Model) AddMultiPolygonMembers(mp *geo.MultiPolygon) {
	if mp == nil {
		return
	}
	for _, p := range mp.Polygons() {
		m.overlays = append(m.overlays, p)
	}
	m.refreshBounds()
	m.refreshLayerVisibility()
}

// RemoveOverlay removes the first overlay identical to o.
func (m *Model) RemoveOverlay(o geo.Overlay) {
	for i, existing := range m.overlays {
		if existing == o {
			m.overlays = append(m.overlays[:i], m.overlays[i+1:]...)
			m.refreshBounds()
			return
		}
	}
}

// Overlays returns the current overlays in add order.
func (m *Model) Overlays() []geo.Overlay {
	out := make([]geo.Overlay, len(m.overlays))
	copy(out, m.overlays)
	return out
}

// ClearShapes drops all overlays and the active source.
func (m *Model) ClearShapes() {
	m.overlays = nil
	m.src = nil
	m.refreshBounds()
}

// refreshBounds recomputes the view bounds from overlays and source.
func (m *Model) refreshBounds() {
	var b geo.Bounds
	for _, o := range m.overlays {
		b = b.Union(o.Bounds())
	}
	if m.src != nil {
		b = b.Union(m.src.Bounds())
	}
	m.bounds = b
}

// refreshLayerVisibility prefers polys > lines > points so fresh data is
// immediately visible, matching what a load or paste implies.
func (m *Model) refreshLayerVisibility() {
	polys := m.visiblePolygons()
	lines := m.visiblePolylines()
	points := m.visiblePoints()
	m.showPolys = len(polys) > 0
	m.showLines = len(lines) > 0 && !m.showPolys
	m.showPoints = len(points) > 0 && !m.showPolys
}

// visiblePolygons collects polygons from overlays and the source,
// flattening multipolygon members.
func (m *Model) visiblePolygons() []*geo.Polygon {
	var out []*geo.Polygon
	for _, o := range m.overlays {
		if p, ok := o.(*geo.Polygon); ok {
			out = append(out, p)
		}
	}
	if m.src != nil {
		for _, sh := range m.src.Shapes() {
			switch s := sh.(type) {
			case *geo.Polygon:
				out = append(out, s)
			case *geo.MultiPolygon:
				out = append(out, s.Polygons()...)
			}
		}
	}
	return out
}

func (m *Model) visiblePolylines() []*geo.Polyline {
	var out []*geo.Polyline
	for _, o := range m.overlays {
		if l, ok := o.(*geo.Polyline); ok {
			out = append(out, l)
		}
	}
	if m.src != nil {
		for _, sh := range m.src.Shapes() {
			if l, ok := sh.(*geo.Polyline); ok {
				out = append(out, l)
			}
		}
	}
	return out
}

func (m *Model) visiblePoints() []*geo.PointAnnotation {
	var out []*geo.PointAnnotation
	for _, o := range m.overlays {
		if p, ok := o.(*geo.PointAnnotation); ok {
			out = append(out, p)
		}
	}
	if m.src != nil {
		for _, sh := range m.src.Shapes() {
			if p, ok := sh.(*geo.PointAnnotation); ok {
				out = append(out, p)
			}
		}
	}
	return out
}
