package source

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"shapemap/internal/geo"
)

// KML containers. Coordinates are "lon,lat[,alt]" tuples separated by
// whitespace; altitude is ignored.
type kmlLinearRing struct {
	Coordinates string `xml:"coordinates"`
}

type kmlBoundary struct {
	LinearRing kmlLinearRing `xml:"LinearRing"`
}

type kmlPolygon struct {
	OuterBoundaryIs kmlBoundary   `xml:"outerBoundaryIs"`
	InnerBoundaryIs []kmlBoundary `xml:"innerBoundaryIs"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name       string         `xml:"name"`
	Point      *kmlPoint      `xml:"Point"`
	LineString *kmlLineString `xml:"LineString"`
	Polygon    *kmlPolygon    `xml:"Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Flat       []kmlPlacemark `xml:"Placemark"`
}

// LoadKML reads Placemark points, line strings, and polygons (with inner
// boundaries as holes) from a KML file.
func LoadKML(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	shapes, err := ParseKML(data)
	if err != nil {
		return nil, err
	}
	return fromShapes(filepath.Base(path), shapes)
}

// ParseKML decodes a KML document into shapes.
func ParseKML(data []byte) ([]geo.Shape, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	placemarks := doc.Placemarks
	if len(placemarks) == 0 {
		placemarks = doc.Flat
	}
	var out []geo.Shape
	for _, pm := range placemarks {
		if pm.Point != nil {
			for _, c := range parseKMLCoordinates(pm.Point.Coordinates) {
				out = append(out, geo.NewPointAnnotation(c, pm.Name))
			}
		}
		if pm.LineString != nil {
			if coords := parseKMLCoordinates(pm.LineString.Coordinates); len(coords) > 0 {
				out = append(out, geo.NewPolyline(coords))
			}
		}
		if pm.Polygon != nil {
			p, err := polygonFromKML(pm.Polygon)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoShapes
	}
	return out, nil
}

func polygonFromKML(kp *kmlPolygon) (*geo.Polygon, error) {
	outer := parseKMLCoordinates(kp.OuterBoundaryIs.LinearRing.Coordinates)
	var holes []*geo.Polygon
	for _, inner := range kp.InnerBoundaryIs {
		h, err := geo.NewPolygon(parseKMLCoordinates(inner.LinearRing.Coordinates))
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return geo.NewPolygonWithHoles(outer, holes)
}

func parseKMLCoordinates(s string) []geo.Coordinate {
	var out []geo.Coordinate
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, geo.Coordinate{Lon: lon, Lat: lat})
	}
	return out
}
