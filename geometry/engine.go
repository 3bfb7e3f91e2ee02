package geometry

import (
	"io"
	"sort"

	"github.com/pkg/errors"
)

// RecordSource yields one record's raw fields per call, returning io.EOF
// when the input is exhausted. The CSV implementation lives in the records
// package; the engine only sees field slices.
type RecordSource interface {
	Next() ([]string, error)
}

// RankingEntry pairs a polygon's identity with one computed metric value.
type RankingEntry struct {
	ID    int
	Value float64
}

// Rankings holds both metric orderings, each sorted descending.
type Rankings struct {
	ByArea      []RankingEntry
	ByPerimeter []RankingEntry
}

// Engine owns the polygon collection for one run. IDs are assigned from a
// counter at construction time, so identity is stable and printable — never
// a memory address.
type Engine struct {
	polygons []Polygon
	nextID   int
}

func NewEngine() *Engine {
	return &Engine{}
}

// Add builds a polygon from parsed vertices and keeps it unless it is empty.
// A one- or two-vertex polygon is kept on purpose: it only fails later, when
// a metric is requested. Only a record that produced no usable vertices at
// all is dropped.
func (e *Engine) Add(vertices []Point) (Polygon, bool) {
	if len(vertices) == 0 {
		return Polygon{}, false
	}
	poly := Polygon{ID: e.allocID(), Vertices: vertices}
	e.polygons = append(e.polygons, poly)
	return poly, true
}

func (e *Engine) allocID() int {
	id := e.nextID
	e.nextID++
	return id
}

// Ingest drains the record source, parsing every record into a polygon.
// Parse failures inside a record are the parser's business (fields are
// skipped); only a read error from the source aborts.
func (e *Engine) Ingest(src RecordSource) error {
	for {
		fields, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading record")
		}
		e.Add(ParseVertices(fields))
	}
}

// Rank computes area and perimeter for every polygon and returns both
// orderings, descending. A polygon below three vertices fails both metrics
// and appears in neither list; nothing else about the batch is affected.
// The sort is stable, so equal values keep their input order.
func (e *Engine) Rank() Rankings {
	var r Rankings
	for _, poly := range e.polygons {
		area, err := poly.Area()
		if err != nil {
			continue
		}
		// Perimeter has the same precondition as Area, so it cannot fail here.
		perimeter, _ := poly.Perimeter()
		r.ByArea = append(r.ByArea, RankingEntry{ID: poly.ID, Value: area})
		r.ByPerimeter = append(r.ByPerimeter, RankingEntry{ID: poly.ID, Value: perimeter})
	}
	sort.SliceStable(r.ByArea, func(i, j int) bool {
		return r.ByArea[i].Value > r.ByArea[j].Value
	})
	sort.SliceStable(r.ByPerimeter, func(i, j int) bool {
		return r.ByPerimeter[i].Value > r.ByPerimeter[j].Value
	})
	return r
}

// TopRanked cuts a ranking down to its first k entries. Asking for more
// ranks than exist is an error rather than a short list; the original tool
// would have walked off the end here, and we would rather fail loudly.
func TopRanked(entries []RankingEntry, k int) ([]RankingEntry, error) {
	if len(entries) < k {
		return nil, errors.Wrapf(ErrRankingUnderflow, "want %d, have %d", k, len(entries))
	}
	return entries[:k], nil
}

// PolygonByID finds a polygon by identity. Linear scan; the collection is
// one input file's worth of shapes.
func (e *Engine) PolygonByID(id int) (Polygon, bool) {
	for _, poly := range e.polygons {
		if poly.ID == id {
			return poly, true
		}
	}
	return Polygon{}, false
}

// TransformTop applies the matrix to the rank-1 polygon of the area list and
// returns the transformed polygon along with its recomputed area.
func (e *Engine) TransformTop(byArea []RankingEntry, m AffineMatrix) (Polygon, float64, error) {
	if len(byArea) == 0 {
		return Polygon{}, 0, errors.Wrap(ErrRankingUnderflow, "no ranked polygons to transform")
	}
	poly, ok := e.PolygonByID(byArea[0].ID)
	if !ok {
		return Polygon{}, 0, errors.Errorf("ranked polygon %d not in collection", byArea[0].ID)
	}
	transformed := poly.TransformedBy(m, e.allocID())
	area, err := transformed.Area()
	if err != nil {
		return Polygon{}, 0, errors.Wrapf(err, "area of transformed polygon %d", transformed.ID)
	}
	return transformed, area, nil
}

// Polygons exposes the collection for rendering and reporting. Callers must
// not mutate the returned slice.
func (e *Engine) Polygons() []Polygon {
	return e.polygons
}
