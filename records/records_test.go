package records

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestNext_SkipsHeaderAndYieldsFields(t *testing.T) {
	path := writeFile(t, "shape,vertices\n0;0,4;0,4;3\n0;0,1;1\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	fields, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"0;0", "4;0", "4;3"}, fields)

	fields, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"0;0", "1;1"}, fields)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNext_RaggedRecords(t *testing.T) {
	// Records are vertex lists, so field counts vary per line
	path := writeFile(t, "header\n0;0,1;0,1;1,0;1\n0;0\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	fields, err := src.Next()
	require.NoError(t, err)
	assert.Len(t, fields, 4)

	fields, err = src.Next()
	require.NoError(t, err)
	assert.Len(t, fields, 1)
}

func TestNext_HeaderOnly(t *testing.T) {
	path := writeFile(t, "just,a,header\n")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNext_EmptyFile(t *testing.T) {
	path := writeFile(t, "")
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}
