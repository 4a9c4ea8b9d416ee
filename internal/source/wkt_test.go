package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapemap/internal/geo"
)

func TestParseWKTPoint(t *testing.T) {
	shapes, err := ParseWKT("POINT(2.35 48.85)")
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	pt, ok := shapes[0].(*geo.PointAnnotation)
	require.True(t, ok)
	assert.Equal(t, geo.Coordinate{Lat: 48.85, Lon: 2.35}, pt.Coordinate())
}

func TestParseWKTLineString(t *testing.T) {
	shapes, err := ParseWKT("LINESTRING(0 0, 1 1, 2 0)")
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	line, ok := shapes[0].(*geo.Polyline)
	require.True(t, ok)
	assert.Equal(t, 3, line.NumCoordinates())
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	shapes, err := ParseWKT("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 4, 2 2))")
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	p, ok := shapes[0].(*geo.Polygon)
	require.True(t, ok)
	assert.Equal(t, 5, p.NumCoordinates())

	holes := p.InteriorPolygons()
	require.Len(t, holes, 1)
	assert.Equal(t, 5, holes[0].NumCoordinates())
	assert.Equal(t, geo.Coordinate{Lat: 2, Lon: 2}, holes[0].Coordinates()[0])
}

func TestParseWKTMultiPolygon(t *testing.T) {
	wkt := "MULTIPOLYGON(((0 0, 4 0, 4 4, 0 4, 0 0)), ((10 10, 12 10, 12 12, 10 12, 10 10), (10.5 10.5, 11 10.5, 11 11, 10.5 10.5)))"
	shapes, err := ParseWKT(wkt)
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	mp, ok := shapes[0].(*geo.MultiPolygon)
	require.True(t, ok)
	require.Equal(t, 2, mp.Len())

	polys := mp.Polygons()
	assert.Nil(t, polys[0].InteriorPolygons())
	assert.Len(t, polys[1].InteriorPolygons(), 1)
}

func TestParseWKTMultiPoint(t *testing.T) {
	shapes, err := ParseWKT("MULTIPOINT(0 0, 1 1)")
	require.NoError(t, err)
	assert.Len(t, shapes, 2)
}

func TestParseWKTErrors(t *testing.T) {
	_, err := ParseWKT("")
	assert.Error(t, err)

	_, err = ParseWKT("CIRCLE(0 0, 5)")
	assert.Error(t, err)

	_, err = ParseWKT("POLYGON(0 0, 1 1)")
	assert.Error(t, err)

	_, err = ParseWKT("POINT()")
	assert.Error(t, err)
}

func TestParseWKTSkipsMalformedTuples(t *testing.T) {
	shapes, err := ParseWKT("LINESTRING(0 0, bogus, 2 2)")
	require.NoError(t, err)
	line := shapes[0].(*geo.Polyline)
	assert.Equal(t, 2, line.NumCoordinates())
}
