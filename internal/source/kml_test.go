package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapemap/internal/geo"
)

const kmlSample = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>lake</name>
      <Polygon>
        <outerBoundaryIs><LinearRing>
          <coordinates>0,0,0 10,0,0 10,10,0 0,10,0 0,0,0</coordinates>
        </LinearRing></outerBoundaryIs>
        <innerBoundaryIs><LinearRing>
          <coordinates>2,2 4,2 4,4 2,4 2,2</coordinates>
        </LinearRing></innerBoundaryIs>
      </Polygon>
    </Placemark>
    <Placemark>
      <name>dock</name>
      <Point><coordinates>5.5,1.25</coordinates></Point>
    </Placemark>
  </Document>
</kml>`

func TestParseKMLPolygonWithInnerBoundary(t *testing.T) {
	shapes, err := ParseKML([]byte(kmlSample))
	require.NoError(t, err)
	require.Len(t, shapes, 2)

	p, ok := shapes[0].(*geo.Polygon)
	require.True(t, ok)
	assert.Equal(t, 5, p.NumCoordinates())

	holes := p.InteriorPolygons()
	require.Len(t, holes, 1)
	assert.Equal(t, geo.Coordinate{Lon: 2, Lat: 2}, holes[0].Coordinates()[0])

	pt, ok := shapes[1].(*geo.PointAnnotation)
	require.True(t, ok)
	assert.Equal(t, "dock", pt.Title())
	assert.Equal(t, geo.Coordinate{Lon: 5.5, Lat: 1.25}, pt.Coordinate())
}

func TestParseKMLEmpty(t *testing.T) {
	_, err := ParseKML([]byte(`<kml><Document></Document></kml>`))
	assert.ErrorIs(t, err, ErrNoShapes)
}

func TestParseKMLMalformed(t *testing.T) {
	_, err := ParseKML([]byte(`<kml><unclosed`))
	assert.Error(t, err)
}
