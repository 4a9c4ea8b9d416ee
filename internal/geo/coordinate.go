package geo

// Coordinate is a geographic latitude/longitude pair in degrees.
//
// Latitude is meaningful in [-90, 90]. Longitude is deliberately
// unconstrained: shapes that straddle the antimeridian use longitudes
// below -180 or above 180, and those values pass through unmodified.
type Coordinate struct {
	Lat float64
	Lon float64
}

// cloneCoordinates returns an independent copy of coords, or nil for empty input.
func cloneCoordinates(coords []Coordinate) []Coordinate {
	if len(coords) == 0 {
		return nil
	}
	out := make([]Coordinate, len(coords))
	copy(out, coords)
	return out
}
