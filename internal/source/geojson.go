package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shapemap/internal/geo"
)

// GeoJSON positions are [lon, lat, ...]; extra members are ignored.
type position []float64

type geoJSON struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoJSON        `json:"geometry"`
	Geometries  []*geoJSON      `json:"geometries"`
	Features    []*geoJSON      `json:"features"`
	Properties  map[string]any  `json:"properties"`
}

// LoadGeoJSON reads a GeoJSON file into a source named after the file.
func LoadGeoJSON(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	shapes, err := ParseGeoJSON(data)
	if err != nil {
		return nil, err
	}
	return fromShapes(filepath.Base(path), shapes)
}

// ParseGeoJSON decodes a GeoJSON document into shapes. Supported types:
// Point, MultiPoint, LineString, MultiLineString, Polygon, MultiPolygon,
// GeometryCollection, Feature, FeatureCollection. Polygon hole rings map
// onto interior polygons.
func ParseGeoJSON(data []byte) ([]geo.Shape, error) {
	var doc geoJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid geojson: %w", err)
	}
	shapes, err := walkGeoJSON(&doc, "")
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	return shapes, nil
}

func walkGeoJSON(g *geoJSON, title string) ([]geo.Shape, error) {
	if g == nil {
		return nil, nil
	}
	switch g.Type {
	case "Feature":
		return walkGeoJSON(g.Geometry, featureTitle(g.Properties))
	case "FeatureCollection":
		var out []geo.Shape
		for _, f := range g.Features {
			shapes, err := walkGeoJSON(f, "")
			if err != nil {
				return nil, err
			}
			out = append(out, shapes...)
		}
		return out, nil
	case "GeometryCollection":
		var out []geo.Shape
		for _, gg := range g.Geometries {
			shapes, err := walkGeoJSON(gg, title)
			if err != nil {
				return nil, err
			}
			out = append(out, shapes...)
		}
		return out, nil
	case "Point":
		var pos position
		if err := json.Unmarshal(g.Coordinates, &pos); err != nil {
			return nil, fmt.Errorf("point coordinates: %w", err)
		}
		c, ok := toCoordinate(pos)
		if !ok {
			return nil, nil
		}
		return []geo.Shape{geo.NewPointAnnotation(c, title)}, nil
	case "MultiPoint":
		var poss []position
		if err := json.Unmarshal(g.Coordinates, &poss); err != nil {
			return nil, fmt.Errorf("multipoint coordinates: %w", err)
		}
		var out []geo.Shape
		for _, pos := range poss {
			if c, ok := toCoordinate(pos); ok {
				out = append(out, geo.NewPointAnnotation(c, title))
			}
		}
		return out, nil
	case "LineString":
		var poss []position
		if err := json.Unmarshal(g.Coordinates, &poss); err != nil {
			return nil, fmt.Errorf("linestring coordinates: %w", err)
		}
		return []geo.Shape{geo.NewPolyline(toCoordinates(poss))}, nil
	case "MultiLineString":
		var lines [][]position
		if err := json.Unmarshal(g.Coordinates, &lines); err != nil {
			return nil, fmt.Errorf("multilinestring coordinates: %w", err)
		}
		var out []geo.Shape
		for _, poss := range lines {
			out = append(out, geo.NewPolyline(toCoordinates(poss)))
		}
		return out, nil
	case "Polygon":
		var rings [][]position
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("polygon coordinates: %w", err)
		}
		p, err := polygonFromRings(rings)
		if err != nil {
			return nil, err
		}
		return []geo.Shape{p}, nil
	case "MultiPolygon":
		var polys [][][]position
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("multipolygon coordinates: %w", err)
		}
		members := make([]*geo.Polygon, 0, len(polys))
		for _, rings := range polys {
			p, err := polygonFromRings(rings)
			if err != nil {
				return nil, err
			}
			members = append(members, p)
		}
		mp, err := geo.NewMultiPolygon(members)
		if err != nil {
			return nil, err
		}
		return []geo.Shape{mp}, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported geojson type: %s", g.Type)
	}
}

// polygonFromRings maps the GeoJSON ring layout (first outer, rest holes)
// onto a polygon with interior polygons.
func polygonFromRings(rings [][]position) (*geo.Polygon, error) {
	if len(rings) == 0 {
		return geo.NewPolygon(nil)
	}
	outer := toCoordinates(rings[0])
	var holes []*geo.Polygon
	for _, r := range rings[1:] {
		h, err := geo.NewPolygon(toCoordinates(r))
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return geo.NewPolygonWithHoles(outer, holes)
}

func toCoordinate(pos position) (geo.Coordinate, bool) {
	if len(pos) < 2 {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lon: pos[0], Lat: pos[1]}, true
}

func toCoordinates(poss []position) []geo.Coordinate {
	var out []geo.Coordinate
	for _, pos := range poss {
		if c, ok := toCoordinate(pos); ok {
			out = append(out, c)
		}
	}
	return out
}

func featureTitle(props map[string]any) string {
	for _, key := range []string{"name", "title"} {
		if v, ok := props[key].(string); ok {
			return v
		}
	}
	return ""
}
