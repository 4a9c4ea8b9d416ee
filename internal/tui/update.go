package tui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"shapemap/internal/logging"
	"shapemap/internal/source"
)

// sourceLoadedMsg delivers a fetched shape source to the model.
type sourceLoadedMsg struct {
	src *source.Source
}

// sourceErrMsg reports a failed fetch.
type sourceErrMsg struct {
	err error
}

// fetchCmd retrieves a GeoJSON document off the UI goroutine.
func (m Model) fetchCmd(url string) tea.Cmd {
	client := m.client
	timeout := m.fetchTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		src, err := client.Fetch(ctx, url)
		if err != nil {
			return sourceErrMsg{err: err}
		}
		return sourceLoadedMsg{src: src}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case sourceLoadedMsg:
		m.fetching = false
		m.SetSource(msg.src)
		m.zoom = 1.0
		m.offsetX, m.offsetY = 0, 0
		m.status = fmt.Sprintf("fetched: %s  shapes: %d", msg.src.Name(), msg.src.Len())
		m.logger.Info("source_fetched", slog.String("source", msg.src.Name()), slog.Int("shapes", msg.src.Len()))
	case sourceErrMsg:
		m.fetching = false
		m.status = "fetch error: " + msg.err.Error()
		logging.Error(m.logger, "fetch failed", msg.err)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				shapes, err := source.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				src := source.New("pasted")
				for _, sh := range shapes {
					src.Add(sh)
				}
				m.SetSource(src)
				// reset viewport for immediate visibility
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.selPath = ""
				m.status = fmt.Sprintf("rendered WKT  shapes: %d", src.Len())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.urlMode {
			switch msg.String() {
			case "esc":
				m.urlMode = false
				m.urlInput.Blur()
				return m, nil
			case "enter":
				url := strings.TrimSpace(m.urlInput.Value())
				if url == "" {
					m.status = "fetch: empty url"
					return m, nil
				}
				m.urlMode = false
				m.urlInput.Blur()
				m.fetching = true
				m.status = "fetching " + url
				return m, m.fetchCmd(url)
			}
			var cmd tea.Cmd
			m.urlInput, cmd = m.urlInput.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "u":
			m.urlMode = !m.urlMode
			if m.urlMode {
				m.urlInput.SetValue("")
				m.status = "fetch mode"
				m.urlInput.Focus()
			} else {
				m.status = "view mode"
				m.urlInput.Blur()
			}
		case "c":
			m.ClearShapes()
			m.selPath = ""
			m.status = "cleared"
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshShapeTable()
			}
		case "i":
			lon, lat, ok := m.inspectNearest()
			if ok {
				name := filepath.Base(m.selPath)
				if m.selPath == "" {
					name = "<unsaved>"
				}
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("bounds: [%.5f, %.5f, %.5f, %.5f]", m.bounds.MinLon, m.bounds.MinLat, m.bounds.MaxLon, m.bounds.MaxLat),
					fmt.Sprintf("overlays: %d", len(m.overlays)),
					fmt.Sprintf("source shapes: %d", m.sourceLen()),
					fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no feature nearby"
				m.status = m.inspectPopup
			}
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.trackHover(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sourceLen() int {
	if m.src == nil {
		return 0
	}
	return m.src.Len()
}

// trackHover follows the mouse over the map area and snaps to the nearest
// shape vertex. Layout math must match View.
func (m *Model) trackHover(msg tea.MouseMsg) {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(28-2, contentHeight-2)
	}

	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight
	mapOriginX := sidebarWidth
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY := headerHeight

	cx, cy := msg.X, msg.Y
	if cx < mapOriginX || cx >= mapOriginX+mapWidth || cy < mapOriginY || cy >= mapOriginY+mapHeight {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - mapOriginX
	m.hoverCellY = cy - mapOriginY
	if lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
		m.hoverHasGeo = true
		m.hoverLon = lon
		m.hoverLat = lat
	} else {
		m.hoverHasGeo = false
	}

	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	snap := func(lon, lat float64) {
		mx, my, ok := m.screenXYMicro(lon, lat, mapWidth, mapHeight)
		if !ok {
			return
		}
		dx := mx - hxMic
		dy := my - hyMic
		d := dx*dx + dy*dy
		if d < best {
			best = d
			bx, by = mx, my
		}
	}
	for _, p := range m.visiblePoints() {
		c := p.Coordinate()
		snap(c.Lon, c.Lat)
	}
	for _, l := range m.visiblePolylines() {
		for _, c := range l.Coordinates() {
			snap(c.Lon, c.Lat)
		}
	}
	for _, p := range m.visiblePolygons() {
		for _, ring := range p.Rings() {
			for _, c := range ring {
				snap(c.Lon, c.Lat)
			}
		}
	}
	m.hoverMicX, m.hoverMicY = bx, by
}
