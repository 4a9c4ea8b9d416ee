package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsExtendFromZero(t *testing.T) {
	var b Bounds
	assert.True(t, b.Empty())

	b = b.Extend(Coordinate{Lat: 10, Lon: 20})
	assert.Equal(t, Bounds{MinLon: 20, MinLat: 10, MaxLon: 20, MaxLat: 10}, b)
	assert.False(t, b.Valid())

	b = b.Extend(Coordinate{Lat: -5, Lon: 25})
	assert.Equal(t, Bounds{MinLon: 20, MinLat: -5, MaxLon: 25, MaxLat: 10}, b)
	assert.True(t, b.Valid())
}

func TestBoundsUnion(t *testing.T) {
	a := Bounds{MinLon: 0, MinLat: 0, MaxLon: 2, MaxLat: 2}
	b := Bounds{MinLon: 1, MinLat: -1, MaxLon: 5, MaxLat: 1}

	assert.Equal(t, Bounds{MinLon: 0, MinLat: -1, MaxLon: 5, MaxLat: 2}, a.Union(b))
	assert.Equal(t, a, a.Union(Bounds{}))
	assert.Equal(t, a, Bounds{}.Union(a))
}

func TestPolylineCopySemantics(t *testing.T) {
	coords := ring([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
	l := NewPolyline(coords)

	coords[0] = Coordinate{Lat: 9, Lon: 9}
	assert.Equal(t, Coordinate{Lat: 0, Lon: 0}, l.Coordinates()[0])
	assert.Equal(t, 3, l.NumCoordinates())
	assert.Equal(t, Bounds{MinLon: 0, MinLat: 0, MaxLon: 2, MaxLat: 2}, l.Bounds())
}

func TestPointAnnotation(t *testing.T) {
	a := NewPointAnnotation(Coordinate{Lat: 48.85, Lon: 2.35}, "paris")
	assert.Equal(t, "paris", a.Title())
	assert.Equal(t, Coordinate{Lat: 48.85, Lon: 2.35}, a.Coordinate())
	assert.False(t, a.Bounds().Valid())
	assert.False(t, a.Bounds().Empty())
}
