package geo

// Bounds is a lon/lat bounding box.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Valid reports whether the box encloses a nonzero area.
func (b Bounds) Valid() bool {
	return b.MaxLon > b.MinLon && b.MaxLat > b.MinLat
}

// Empty reports whether the box was never extended.
func (b Bounds) Empty() bool {
	return b == Bounds{}
}

// Extend grows the box to include c. The zero box snaps to c on first use.
func (b Bounds) Extend(c Coordinate) Bounds {
	if b.Empty() {
		return Bounds{MinLon: c.Lon, MinLat: c.Lat, MaxLon: c.Lon, MaxLat: c.Lat}
	}
	if c.Lon < b.MinLon {
		b.MinLon = c.Lon
	}
	if c.Lat < b.MinLat {
		b.MinLat = c.Lat
	}
	if c.Lon > b.MaxLon {
		b.MaxLon = c.Lon
	}
	if c.Lat > b.MaxLat {
		b.MaxLat = c.Lat
	}
	return b
}

// Union merges two boxes; an empty side yields the other unchanged.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	if o.MinLon < b.MinLon {
		b.MinLon = o.MinLon
	}
	if o.MinLat < b.MinLat {
		b.MinLat = o.MinLat
	}
	if o.MaxLon > b.MaxLon {
		b.MaxLon = o.MaxLon
	}
	if o.MaxLat > b.MaxLat {
		b.MaxLat = o.MaxLat
	}
	return b
}

func boundsOf(coords []Coordinate) Bounds {
	var b Bounds
	for _, c := range coords {
		b = b.Extend(c)
	}
	return b
}
