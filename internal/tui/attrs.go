package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"shapemap/internal/geo"
)

// refreshShapeTable rebuilds the inventory table from the current
// overlays and source shapes.
func (m *Model) refreshShapeTable() {
	rows := m.buildShapeRows()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no shapes to list"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 12},
		{Title: "via", Width: 8},
		{Title: "name", Width: 16},
		{Title: "vertices", Width: 8},
		{Title: "holes", Width: 6},
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		trows = append(trows, append(table.Row{fmt.Sprintf("%d", i+1)}, r...))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(trows)
}

func (m *Model) buildShapeRows() []table.Row {
	var rows []table.Row
	for _, o := range m.overlays {
		rows = append(rows, shapeRow(o, "overlay"))
	}
	if m.src != nil {
		for _, sh := range m.src.Shapes() {
			rows = append(rows, shapeRow(sh, "source"))
		}
	}
	return rows
}

func shapeRow(sh geo.Shape, via string) table.Row {
	switch s := sh.(type) {
	case *geo.Polygon:
		return table.Row{"polygon", via, "", fmt.Sprintf("%d", s.NumCoordinates()), fmt.Sprintf("%d", len(s.InteriorPolygons()))}
	case *geo.MultiPolygon:
		total := 0
		for _, p := range s.Polygons() {
			total += p.NumCoordinates()
		}
		return table.Row{"multipolygon", via, fmt.Sprintf("%d members", s.Len()), fmt.Sprintf("%d", total), ""}
	case *geo.Polyline:
		return table.Row{"polyline", via, "", fmt.Sprintf("%d", s.NumCoordinates()), ""}
	case *geo.PointAnnotation:
		return table.Row{"point", via, s.Title(), "1", ""}
	default:
		return table.Row{"shape", via, "", "", ""}
	}
}
