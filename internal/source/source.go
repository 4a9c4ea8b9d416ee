// Package source loads shapes from files, pasted text, and remote URLs.
// A Source is the style-driven route onto the map: shapes grouped here are
// rendered collectively, as opposed to overlays added to the view one by one.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shapemap/internal/geo"
)

// ErrNoShapes is returned when an input parses cleanly but contains nothing drawable.
var ErrNoShapes = errors.New("no shapes found")

// Source is an ordered, named collection of shapes with aggregate bounds.
type Source struct {
	name   string
	shapes []geo.Shape
	bounds geo.Bounds
}

// New returns an empty source.
func New(name string) *Source {
	return &Source{name: name}
}

// Name returns the source's identifier (usually a file name).
func (s *Source) Name() string { return s.name }

// Add appends a shape and grows the aggregate bounds.
func (s *Source) Add(sh geo.Shape) {
	if sh == nil {
		return
	}
	s.shapes = append(s.shapes, sh)
	s.bounds = s.bounds.Union(sh.Bounds())
}

// Shapes returns the shapes in insertion order.
func (s *Source) Shapes() []geo.Shape {
	out := make([]geo.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len returns the shape count.
func (s *Source) Len() int { return len(s.shapes) }

// Bounds returns the union of all member bounds.
func (s *Source) Bounds() geo.Bounds { return s.bounds }

// LoadFile dispatches on the file extension and returns a source named
// after the file. Supported: .geojson/.json, .wkt, .kml, .csv.
func LoadFile(path string) (*Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		shapes, err := ParseWKT(string(data))
		if err != nil {
			return nil, err
		}
		return fromShapes(filepath.Base(path), shapes)
	case ".kml":
		return LoadKML(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

func fromShapes(name string, shapes []geo.Shape) (*Source, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	s := New(name)
	for _, sh := range shapes {
		s.Add(sh)
	}
	return s, nil
}
