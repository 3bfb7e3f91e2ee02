package geometry

import (
	"fmt"
	"strings"
)

type Point struct {
	X float64
	Y float64
}

// Note that vertices are plain values, not pointers. A polygon owns its
// vertex slice outright; transforms allocate a fresh slice rather than
// sharing, so nothing downstream can mutate a polygon after construction.
type Polygon struct {
	ID       int
	Vertices []Point
}

// AffineMatrix is a 3x3 transform over homogeneous 2D coordinates, row
// major. The bottom row is conventionally [0 0 1] but is never read when
// transforming, so callers may pass anything there.
type AffineMatrix [3][3]float64

func Identity() AffineMatrix {
	return AffineMatrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// String renders the vertex list as "(x,y);(x,y);...". This is the report
// format for transformed shapes.
func (poly Polygon) String() string {
	parts := make([]string, len(poly.Vertices))
	for i, v := range poly.Vertices {
		parts[i] = fmt.Sprintf("(%g,%g)", v.X, v.Y)
	}
	return strings.Join(parts, ";")
}
