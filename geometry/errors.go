package geometry

import "github.com/pkg/errors"

// Per-polygon failures are ordinary error values threaded up to the engine,
// which skips the offending polygon and continues. Only the record source
// can kill a run.

// ErrInsufficientVertices is returned by Area and Perimeter when a polygon
// has fewer than three vertices. The polygon stays in the collection; it is
// just unrankable.
var ErrInsufficientVertices = errors.New("not enough vertices to calculate metric")

// ErrRankingUnderflow is returned when a top-k cut is requested from a
// ranking with fewer than k entries.
var ErrRankingUnderflow = errors.New("fewer valid polygons than requested ranks")
