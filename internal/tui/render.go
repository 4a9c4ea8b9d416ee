package tui

import (
	"sort"
	"strings"

	"shapemap/internal/geo"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using the
// view bounds, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bounds.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bounds.MinLon + nx*(m.bounds.MaxLon-m.bounds.MinLon)
	lat := m.bounds.MinLat + ny*(m.bounds.MaxLat-m.bounds.MinLat)
	return lon, lat, true
}

// renderMap rasterizes the visible shapes into a w x h block of text.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	pal := newPalette()

	// Polygons first: fill, then edges over the fill.
	if m.showPolys {
		for _, p := range m.visiblePolygons() {
			m.drawPolygon(br, pal, p, w, h)
		}
	}

	// Line strings
	if m.showLines {
		for _, l := range m.visiblePolylines() {
			stroke := pal.id(m.styles.StrokeColor(l))
			var prev *[2]int
			for _, c := range l.Coordinates() {
				mx, my, ok := m.screenXYMicro(c.Lon, c.Lat, w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my, stroke)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	// Points
	if m.showPoints {
		for _, p := range m.visiblePoints() {
			stroke := pal.id(m.styles.StrokeColor(p))
			c := p.Coordinate()
			mx, my, ok := m.screenXYMicro(c.Lon, c.Lat, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my, stroke)
		}
	}

	lines := br.toLines(pal)

	// Hover highlight: an orange circle at the hovered vertex cell.
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) && cx >= 0 && cx < w {
			lines[cy] = br.rowWithOverride(pal, cy, cx, hoverStyle.Render("◯"))
		}
	}
	return strings.Join(lines, "\n")
}

// drawPolygon fills a polygon (honoring its holes) and strokes all of its
// rings. Fill and stroke colors come from the style delegate, keyed on
// the polygon instance.
func (m Model) drawPolygon(br *brailleBuf, pal *palette, p *geo.Polygon, w, h int) {
	var ringsMic [][][2]int
	for _, ring := range p.Rings() {
		var sm [][2]int
		for _, c := range ring {
			mx, my, ok := m.screenXYMicro(c.Lon, c.Lat, w, h)
			if !ok {
				continue
			}
			sm = append(sm, [2]int{mx, my})
		}
		if len(sm) >= 3 {
			ringsMic = append(ringsMic, sm)
		}
	}
	if len(ringsMic) == 0 {
		return
	}
	fill := pal.id(m.styles.FillColor(p))
	stroke := pal.id(m.styles.StrokeColor(p))

	// Even-odd scanline fill across every ring: crossing a hole edge
	// toggles out of the filled span, so holes stay empty.
	hMic := h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, ring := range ringsMic {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					x := int(float64(x0) + t*float64(x1-x0))
					xs = append(xs, x)
				}
			}
		}
		if len(xs) >= 2 {
			sort.Ints(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				xstart, xend := xs[i], xs[i+1]
				if xstart > xend {
					xstart, xend = xend, xstart
				}
				for xMic := max(0, xstart); xMic <= xend; xMic++ {
					br.setPixel(xMic, yMic, fill)
				}
			}
		}
	}

	// Edges over the fill.
	for _, ring := range ringsMic {
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			br.drawLineMicro(a[0], a[1], b[0], b[1], stroke)
		}
	}
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bounds.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bounds.MinLon) / (m.bounds.MaxLon - m.bounds.MinLon)
	ny := (lat - m.bounds.MinLat) / (m.bounds.MaxLat - m.bounds.MinLat)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to screen cell coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bounds.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bounds.MinLon) / (m.bounds.MaxLon - m.bounds.MinLon)
	ny := (lat - m.bounds.MinLat) / (m.bounds.MaxLat - m.bounds.MinLat)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best geo.Coordinate
	consider := func(c geo.Coordinate) {
		sx, sy, ok2 := m.screenXY(c.Lon, c.Lat, w, h)
		if !ok2 {
			return
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = c
		}
	}
	for _, p := range m.visiblePoints() {
		consider(p.Coordinate())
	}
	for _, l := range m.visiblePolylines() {
		for _, c := range l.Coordinates() {
			consider(c)
		}
	}
	for _, p := range m.visiblePolygons() {
		for _, ring := range p.Rings() {
			for _, c := range ring {
				consider(c)
			}
		}
	}
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best.Lon, best.Lat, true
}
