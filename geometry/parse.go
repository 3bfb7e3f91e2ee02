package geometry

import (
	"strconv"
	"strings"
)

// Vertex fields look like "x;y". The field delimiter between vertices is the
// record source's concern (comma-separated records); the semicolon inside a
// field is ours.
const pairSeparator = ";"

// ParseVertices converts one record's raw fields into an ordered vertex
// slice. A field that doesn't split into exactly two float-parseable tokens
// is dropped whole — no partial points, no error. Field order becomes vertex
// order. The result may have fewer than three points; that's for the metric
// computations to complain about, not the parser.
func ParseVertices(fields []string) []Point {
	vertices := make([]Point, 0, len(fields))
	for _, field := range fields {
		pair := strings.Split(field, pairSeparator)
		if len(pair) != 2 {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(pair[0]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(pair[1]), 64)
		if err != nil {
			continue
		}
		vertices = append(vertices, Point{X: x, Y: y})
	}
	return vertices
}
