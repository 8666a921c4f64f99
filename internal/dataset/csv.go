package dataset

import (
	"encoding/csv"
	"os"
	"strings"
)

type csvSource struct{}

func (csvSource) CanLoad(path string) bool {
	name := strings.ToLower(path)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvSource) Open(path string, opt Options) (rowReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	r.Comma = delim
	return &csvRows{f: f, r: r}, nil
}

type csvRows struct {
	f *os.File
	r *csv.Reader
}

// Next returns the next record; the slice is owned by the caller.
func (c *csvRows) Next() ([]string, error) { return c.r.Read() }

func (c *csvRows) Close() error { return c.f.Close() }

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	// Filename heuristic only; the file is not read twice.
	return ','
}
