package geometry

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG, finds the single polygon
// element, and converts it into a Polygon. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var vertices []Point
	for _, pointString := range strings.Fields(pointString) {
		tokens := strings.Split(pointString, ",")
		if len(tokens) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", tokens[0], err)
		}
		y, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", tokens[1], err)
		}
		vertices = append(vertices, Point{x, y})
	}
	return Polygon{Vertices: vertices}
}
