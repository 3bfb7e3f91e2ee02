// Package records is the line-oriented record source for the geometry
// engine. It reads comma-delimited records from a file, skips the single
// header line, and hands raw field slices to the caller. It knows nothing
// about vertices; splitting a field into coordinates is the parser's job.
package records

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source yields one record per Next call and io.EOF at end of input.
type Source struct {
	file   *os.File
	reader *csv.Reader
	header bool
}

// Open opens the file and prepares to skip its header line. A failure to
// open is the one fatal condition in the whole pipeline; the caller turns
// it into a non-zero exit.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening record source %s", path)
	}
	reader := csv.NewReader(file)
	// Records are free-form vertex lists, so there is no fixed field count,
	// and a stray quote in a garbage field shouldn't kill the run.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &Source{file: file, reader: reader}, nil
}

// Next returns the next record's fields, or io.EOF when the input is done.
// The first record is the header and is consumed silently.
func (s *Source) Next() ([]string, error) {
	if !s.header {
		s.header = true
		if _, err := s.reader.Read(); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, errors.Wrap(err, "skipping header")
		}
	}
	fields, err := s.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading record")
	}
	return fields, nil
}

func (s *Source) Close() error {
	return s.file.Close()
}
