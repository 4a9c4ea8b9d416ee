package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"shapemap/internal/logging"
	"shapemap/internal/source"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case ".geojson", ".json", ".csv", ".kml", ".wkt":
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a supported file into the model as the active source.
func (m *Model) loadPath(p string) {
	src, err := source.LoadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		logging.Error(m.logger, "load failed", err, slog.String("path", p))
		return
	}
	m.selPath = p
	m.SetSource(src)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("loaded: %s  shapes: %d", filepath.Base(p), src.Len())
	m.logger.Info("source_loaded", slog.String("path", p), slog.Int("shapes", src.Len()))

	// If the shape table is open, rebuild it for the new dataset.
	if m.showAttrs {
		m.refreshShapeTable()
	}
}
