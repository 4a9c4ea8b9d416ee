package source

import (
	"errors"
	"strconv"
	"strings"

	"shapemap/internal/geo"
)

// ParseWKT parses a subset of WKT into shapes.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((outer), (hole), ...), MULTIPOLYGON(((outer), (hole)), ...).
// WKT tuples are "x y", i.e. lon lat.
func ParseWKT(wkt string) ([]geo.Shape, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		body, err := parenBody(s, "(((", ")))")
		if err != nil {
			return nil, errors.New("wkt multipolygon: invalid")
		}
		mp, err := multiPolygonFromWKT(body)
		if err != nil {
			return nil, err
		}
		return []geo.Shape{mp}, nil
	case strings.HasPrefix(up, "MULTIPOINT"):
		body, err := parenBody(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt multipoint: invalid")
		}
		coords := parseTuples(body)
		if len(coords) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		var out []geo.Shape
		for _, c := range coords {
			out = append(out, geo.NewPointAnnotation(c, ""))
		}
		return out, nil
	case strings.HasPrefix(up, "POINT"):
		body, err := parenBody(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt point: invalid")
		}
		coords := parseTuples(body)
		if len(coords) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return []geo.Shape{geo.NewPointAnnotation(coords[0], "")}, nil
	case strings.HasPrefix(up, "LINESTRING"):
		body, err := parenBody(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt linestring: invalid")
		}
		coords := parseTuples(body)
		if len(coords) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return []geo.Shape{geo.NewPolyline(coords)}, nil
	case strings.HasPrefix(up, "POLYGON"):
		body, err := parenBody(s, "((", "))")
		if err != nil {
			return nil, errors.New("wkt polygon: invalid")
		}
		p, err := polygonFromWKTRings(body)
		if err != nil {
			return nil, err
		}
		return []geo.Shape{p}, nil
	default:
		return nil, errors.New("unsupported wkt type")
	}
}

// parenBody extracts the text between the first open and last closing marker.
func parenBody(s, open, closing string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, closing)
	if i < 0 || j <= i {
		return "", errors.New("unbalanced parentheses")
	}
	return s[i+len(open) : j], nil
}

// splitRings splits ring-separated bodies, tolerating spaces around separators.
func splitRings(body, sep string) []string {
	norm := strings.ReplaceAll(body, ") , (", "),(")
	norm = strings.ReplaceAll(norm, "), (", "),(")
	return strings.Split(norm, sep)
}

func polygonFromWKTRings(body string) (*geo.Polygon, error) {
	parts := splitRings(body, "),(")
	outer := parseTuples(parts[0])
	var holes []*geo.Polygon
	for _, rp := range parts[1:] {
		h, err := geo.NewPolygon(parseTuples(rp))
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return geo.NewPolygonWithHoles(outer, holes)
}

func multiPolygonFromWKT(body string) (*geo.MultiPolygon, error) {
	var members []*geo.Polygon
	for _, pb := range splitRings(body, ")),((") {
		p, err := polygonFromWKTRings(pb)
		if err != nil {
			return nil, err
		}
		members = append(members, p)
	}
	return geo.NewMultiPolygon(members)
}

// parseTuples splits "x y, x y, ..." into coordinates, skipping malformed tuples.
func parseTuples(block string) []geo.Coordinate {
	var out []geo.Coordinate
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, geo.Coordinate{Lon: x, Lat: y})
	}
	return out
}
