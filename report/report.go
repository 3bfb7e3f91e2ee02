// Package report renders ranking lists and transformed shapes as text. It
// sits outside the geometry core: the engine hands it entries and polygons,
// and it owns the exact line formats.
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/yudarik/shape-area-calculator/geometry"
)

// Namer turns a polygon id into a display label. Nil means ids stay
// anonymous and rank lines carry metrics only.
type Namer func(id int) string

type Formatter struct {
	out   io.Writer
	namer Namer
}

func New(out io.Writer, namer Namer) *Formatter {
	return &Formatter{out: out, namer: namer}
}

// Ranked prints one line per rank, pairing the nth-largest area with the
// nth-largest perimeter. The two columns are independent rankings; the
// polygon behind the area value is not necessarily the one behind the
// perimeter value on the same line.
func (f *Formatter) Ranked(areas, perimeters []geometry.RankingEntry) {
	for i := range areas {
		rank := aurora.Bold(fmt.Sprintf("%d)", i+1))
		if f.namer != nil {
			fmt.Fprintf(f.out, "%s Area: %.2f (%s), Circumference: %.2f (%s)\n",
				rank, areas[i].Value, f.namer(areas[i].ID),
				perimeters[i].Value, f.namer(perimeters[i].ID))
			continue
		}
		fmt.Fprintf(f.out, "%s Area: %.2f, Circumference: %.2f\n",
			rank, areas[i].Value, perimeters[i].Value)
	}
	fmt.Fprint(f.out, "\n\n\n")
}

// Transformed prints the transformed shape's vertex list and its recomputed
// area.
func (f *Formatter) Transformed(poly geometry.Polygon, area float64) {
	fmt.Fprintf(f.out, "Transformed shape: %s\n\n", poly)
	fmt.Fprintf(f.out, "Transformed shape area: %s\n", aurora.Green(fmt.Sprintf("%.2f", area)))
}
