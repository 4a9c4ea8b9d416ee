package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultiPolygonPreservesOrder(t *testing.T) {
	island, err := NewPolygon(square(3, 3, 2))
	require.NoError(t, err)
	atoll, err := NewPolygon(square(0, 0, 10))
	require.NoError(t, err)

	mp, err := NewMultiPolygon([]*Polygon{island, atoll})
	require.NoError(t, err)

	got := mp.Polygons()
	require.Len(t, got, 2)
	assert.Same(t, island, got[0])
	assert.Same(t, atoll, got[1])
	assert.Equal(t, 2, mp.Len())
}

func TestMultiPolygonCopiesSliceNotMembers(t *testing.T) {
	a, err := NewPolygon(square(0, 0, 1))
	require.NoError(t, err)
	b, err := NewPolygon(square(2, 2, 1))
	require.NoError(t, err)

	polys := []*Polygon{a, b}
	mp, err := NewMultiPolygon(polys)
	require.NoError(t, err)

	// Swapping the caller's slice entries must not reorder the shape.
	polys[0], polys[1] = polys[1], polys[0]
	assert.Same(t, a, mp.Polygons()[0])

	// Mutating the returned slice must not affect later reads.
	got := mp.Polygons()
	got[0] = b
	assert.Same(t, a, mp.Polygons()[0])
}

func TestMultiPolygonRejectsNilMember(t *testing.T) {
	a, err := NewPolygon(square(0, 0, 1))
	require.NoError(t, err)
	_, err = NewMultiPolygon([]*Polygon{a, nil})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestMultiPolygonEmpty(t *testing.T) {
	mp, err := NewMultiPolygon(nil)
	require.NoError(t, err)
	assert.Nil(t, mp.Polygons())
	assert.Zero(t, mp.Len())
	assert.True(t, mp.Bounds().Empty())
}

func TestMultiPolygonBoundsUnion(t *testing.T) {
	a, err := NewPolygon(square(0, 0, 1))
	require.NoError(t, err)
	b, err := NewPolygon(square(5, 5, 1))
	require.NoError(t, err)

	mp, err := NewMultiPolygon([]*Polygon{a, b})
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinLon: 0, MinLat: 0, MaxLon: 6, MaxLat: 6}, mp.Bounds())
}

// The overlay capability belongs to Polygon, Polyline and PointAnnotation.
// MultiPolygon is kept off the map view's direct path: only its members go on.
func TestOverlayCapability(t *testing.T) {
	var _ Overlay = (*Polygon)(nil)
	var _ Overlay = (*Polyline)(nil)
	var _ Overlay = (*PointAnnotation)(nil)

	var s Shape = &MultiPolygon{}
	_, isOverlay := s.(Overlay)
	assert.False(t, isOverlay)
}
