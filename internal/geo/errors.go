package geo

import "errors"

// ErrInvalidGeometry is returned when a shape constructor rejects its input.
// Construction is atomic: on error no shape is produced.
var ErrInvalidGeometry = errors.New("invalid geometry")
