package geometry

import "math"

// Area computes the polygon's area by the shoelace formula, treating the
// vertex slice as a closed loop. The absolute value makes the result
// independent of winding order. Self-intersecting polygons get whatever the
// formula says; we don't validate simplicity.
func (poly Polygon) Area() (float64, error) {
	n := len(poly.Vertices)
	if n < 3 {
		return 0, ErrInsufficientVertices
	}

	var sum float64
	for i, v := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return math.Abs(sum) / 2, nil
}

// Perimeter sums the Euclidean lengths of all n edges, including the closing
// edge back to the first vertex.
func (poly Polygon) Perimeter() (float64, error) {
	n := len(poly.Vertices)
	if n < 3 {
		return 0, ErrInsufficientVertices
	}

	var total float64
	for i, v := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		total += math.Hypot(v.X-next.X, v.Y-next.Y)
	}
	return total, nil
}

// TransformedBy maps every vertex through the top two rows of the matrix,
// with the usual implicit homogeneous coordinate of 1. The receiver is
// untouched; the result carries the given id and a fresh vertex slice.
// Degenerate polygons (fewer than three vertices) transform fine — they
// just stay degenerate.
func (poly Polygon) TransformedBy(m AffineMatrix, id int) Polygon {
	vertices := make([]Point, len(poly.Vertices))
	for i, v := range poly.Vertices {
		vertices[i] = Point{
			X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2],
			Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2],
		}
	}
	return Polygon{ID: id, Vertices: vertices}
}

// Reverse returns the polygon with its winding order flipped. Same identity;
// this is a view of the same shape, not a new one.
func (poly Polygon) Reverse() Polygon {
	vertices := make([]Point, 0, len(poly.Vertices))
	for i := len(poly.Vertices) - 1; i >= 0; i-- {
		vertices = append(vertices, poly.Vertices[i])
	}
	return Polygon{ID: poly.ID, Vertices: vertices}
}
