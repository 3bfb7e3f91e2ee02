// Command shaperank reads a CSV of polygons (one polygon per record, each
// field an "x;y" vertex pair, first line a header), ranks them by area and
// circumference, prints the top entries of both rankings, then applies an
// affine transform to the largest-area polygon and prints the transformed
// shape and its area.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/yudarik/shape-area-calculator/dbg"
	"github.com/yudarik/shape-area-calculator/geometry"
	"github.com/yudarik/shape-area-calculator/records"
	"github.com/yudarik/shape-area-calculator/report"
)

var (
	file = kingpin.Arg("file", "CSV file of polygon records.").Required().String()
	top  = kingpin.Flag("top", "How many ranks to report.").Default("10").Int()
	matrixSpec = kingpin.Flag("matrix",
		"Affine transform for the top-area polygon, nine row-major values.").
		Default("4,0,-3,-1,2,2,0,0,1").String()
	renderPath = kingpin.Flag("render", "Render all polygons to a PNG at this path.").String()
	renderCat  = kingpin.Flag("imgcat", "Print the rendered PNG inline (iTerm2).").Bool()
	verbose    = kingpin.Flag("verbose", "Label ranked polygons with readable names.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	matrix, err := parseMatrix(*matrixSpec)
	if err != nil {
		return err
	}

	src, err := records.Open(*file)
	if err != nil {
		return err
	}
	defer src.Close()

	engine := geometry.NewEngine()
	if err := engine.Ingest(src); err != nil {
		return err
	}

	rankings := engine.Rank()
	topAreas, err := geometry.TopRanked(rankings.ByArea, *top)
	if err != nil {
		return err
	}
	topPerimeters, err := geometry.TopRanked(rankings.ByPerimeter, *top)
	if err != nil {
		return err
	}

	var namer report.Namer
	if *verbose {
		namer = dbg.Name
	}
	formatter := report.New(os.Stdout, namer)
	formatter.Ranked(topAreas, topPerimeters)

	transformed, area, err := engine.TransformTop(rankings.ByArea, matrix)
	if err != nil {
		return err
	}
	formatter.Transformed(transformed, area)

	if *renderPath != "" {
		polygons := append([]geometry.Polygon(nil), engine.Polygons()...)
		polygons = append(polygons, transformed)
		if err := geometry.DrawPNG(polygons, *renderPath, 20); err != nil {
			// Rendering is a bonus; a failed PNG shouldn't fail the run.
			fmt.Fprintln(os.Stderr, err)
		} else if *renderCat {
			geometry.CatPNG(*renderPath)
		}
	}
	return nil
}

func parseMatrix(spec string) (geometry.AffineMatrix, error) {
	var m geometry.AffineMatrix
	parts := strings.Split(spec, ",")
	if len(parts) != 9 {
		return m, errors.Errorf("matrix needs 9 values, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return m, errors.Wrapf(err, "matrix value %q", part)
		}
		m[i/3][i%3] = v
	}
	return m, nil
}
