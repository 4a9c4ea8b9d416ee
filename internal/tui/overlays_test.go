package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapemap/internal/geo"
	"shapemap/internal/source"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Options{DataDir: t.TempDir()})
}

func testSquare(t *testing.T, lat, lon, size float64) *geo.Polygon {
	t.Helper()
	p, err := geo.NewPolygon([]geo.Coordinate{
		{Lat: lat, Lon: lon},
		{Lat: lat, Lon: lon + size},
		{Lat: lat + size, Lon: lon + size},
		{Lat: lat + size, Lon: lon},
		{Lat: lat, Lon: lon},
	})
	require.NoError(t, err)
	return p
}

func TestAddRemoveOverlay(t *testing.T) {
	m := testModel(t)
	p := testSquare(t, 0, 0, 10)
	l := geo.NewPolyline([]geo.Coordinate{{Lat: 0, Lon: 0}, {Lat: 5, Lon: 5}})

	m.AddOverlay(p)
	m.AddOverlay(l)
	require.Len(t, m.Overlays(), 2)
	assert.True(t, m.bounds.Valid())

	m.RemoveOverlay(p)
	overlays := m.Overlays()
	require.Len(t, overlays, 1)
	assert.Equal(t, geo.Overlay(l), overlays[0])

	m.RemoveOverlay(p) // absent: no-op
	assert.Len(t, m.Overlays(), 1)
}

func TestAddMultiPolygonMembersIndividually(t *testing.T) {
	m := testModel(t)
	a := testSquare(t, 0, 0, 2)
	b := testSquare(t, 5, 5, 2)
	mp, err := geo.NewMultiPolygon([]*geo.Polygon{a, b})
	require.NoError(t, err)

	// The multipolygon itself has no direct path onto the view; its
	// members go on one by one.
	m.AddMultiPolygonMembers(mp)
	overlays := m.Overlays()
	require.Len(t, overlays, 2)
	assert.Equal(t, geo.Overlay(a), overlays[0])
	assert.Equal(t, geo.Overlay(b), overlays[1])
}

func TestClearShapes(t *testing.T) {
	m := testModel(t)
	m.AddOverlay(testSquare(t, 0, 0, 10))

	src := source.New("s")
	src.Add(geo.NewPointAnnotation(geo.Coordinate{Lat: 1, Lon: 1}, ""))
	m.SetSource(src)

	m.ClearShapes()
	assert.Empty(t, m.Overlays())
	assert.Nil(t, m.Source())
	assert.True(t, m.bounds.Empty())
}

func TestVisiblePolygonsFlattensSourceMultiPolygons(t *testing.T) {
	m := testModel(t)
	direct := testSquare(t, 20, 20, 2)
	m.AddOverlay(direct)

	a := testSquare(t, 0, 0, 2)
	b := testSquare(t, 5, 5, 2)
	mp, err := geo.NewMultiPolygon([]*geo.Polygon{a, b})
	require.NoError(t, err)
	src := source.New("s")
	src.Add(mp)
	m.SetSource(src)

	polys := m.visiblePolygons()
	assert.Len(t, polys, 3)
}

func TestLayerVisibilityPrefersPolygons(t *testing.T) {
	m := testModel(t)
	src := source.New("s")
	src.Add(geo.NewPointAnnotation(geo.Coordinate{}, ""))
	src.Add(testSquare(t, 0, 0, 1))
	m.SetSource(src)

	assert.True(t, m.showPolys)
	assert.False(t, m.showPoints)
	assert.False(t, m.showLines)
}
