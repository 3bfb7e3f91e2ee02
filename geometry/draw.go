package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const drawPadding = 10

// DrawPNG renders a set of polygons to a PNG at the given path, scaled and
// fit to their joint bounding box with the origin at the bottom left.
// Degenerate polygons (under two vertices) still count toward the bounds but
// draw nothing visible.
func DrawPNG(polygons []Polygon, path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		for _, v := range poly.Vertices {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	if minX > maxX {
		return errors.New("nothing to draw")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range polygons {
		if len(poly.Vertices) < 2 {
			continue
		}
		c.MoveTo(poly.Vertices[0].X, poly.Vertices[0].Y)
		for _, v := range poly.Vertices[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// CatPNG prints a previously rendered PNG inline on terminals that support
// the imgcat escape sequence.
func CatPNG(path string) {
	imgcat.CatFile(path, os.Stdout)
}
