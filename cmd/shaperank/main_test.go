package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudarik/shape-area-calculator/geometry"
	"github.com/yudarik/shape-area-calculator/records"
)

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix("4,0,-3,-1,2,2,0,0,1")
	require.NoError(t, err)
	assert.Equal(t, geometry.AffineMatrix{
		{4, 0, -3},
		{-1, 2, 2},
		{0, 0, 1},
	}, m)
}

func TestParseMatrix_Invalid(t *testing.T) {
	_, err := parseMatrix("1,2,3")
	assert.Error(t, err)

	_, err = parseMatrix("1,2,3,4,5,6,7,8,x")
	assert.Error(t, err)
}

// End to end over a real file: ingest, rank, cut, transform.
func TestPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.csv")
	content := "shape,vertices\n" +
		"0;0,4;0,4;3\n" + // triangle, area 6
		"0;0,1;1\n" + // degenerate, kept but unranked
		"0;0,10;0,10;10,0;10\n" + // square, area 100
		"garbage\n" // dropped entirely
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	src, err := records.Open(path)
	require.NoError(t, err)
	defer src.Close()

	engine := geometry.NewEngine()
	require.NoError(t, engine.Ingest(src))
	assert.Len(t, engine.Polygons(), 3)

	rankings := engine.Rank()
	top, err := geometry.TopRanked(rankings.ByArea, 2)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, top[0].Value, geometry.Tolerance)
	assert.InDelta(t, 6.0, top[1].Value, geometry.Tolerance)

	transformed, area, err := engine.TransformTop(rankings.ByArea, geometry.Identity())
	require.NoError(t, err)
	assert.InDelta(t, 100.0, area, geometry.Tolerance)
	assert.Len(t, transformed.Vertices, 4)
}
