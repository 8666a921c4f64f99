package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Options controls how dataset sources are read.
type Options struct {
	// MaxRows limits rows processed; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, '\t' for .tsv and ',' otherwise.
	Delimiter rune
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune // optional; if 0, auto-detect common separators (',' '.' space)
	// XLSX sheet selection; SheetName wins over the 1-based SheetIndex.
	SheetName  string
	SheetIndex int
}

// DefaultOptions returns the loader defaults: every row, auto-detected format.
func DefaultOptions() Options {
	return Options{SheetIndex: 1}
}

// Source opens one dataset format.
type Source interface {
	CanLoad(path string) bool
	Open(path string, opt Options) (rowReader, error)
}

type rowReader interface {
	// Next returns the next record or io.EOF.
	Next() ([]string, error)
	Close() error
}

// Loader resolves dataset refs under Root into validated tables.
type Loader struct {
	Root    string
	opt     Options
	sources []Source
	// fallback is used when no source claims the ref.
	fallback Source
}

// NewLoader returns a loader reading CSV/TSV and XLSX datasets under root.
func NewLoader(root string, opt Options) *Loader {
	return &Loader{
		Root:     root,
		opt:      opt,
		sources:  []Source{xlsxSource{}, csvSource{}},
		fallback: csvSource{},
	}
}

// Path resolves ref against the loader root.
func (l *Loader) Path(ref string) string {
	if filepath.IsAbs(ref) || l.Root == "" {
		return ref
	}
	return filepath.Join(l.Root, ref)
}

// Load reads ref and validates the views/likes columns.
func (l *Loader) Load(ref string) (*Table, error) {
	path := l.Path(ref)
	src := l.fallback
	for _, s := range l.sources {
		if s.CanLoad(path) {
			src = s
			break
		}
	}
	rr, err := src.Open(path, l.opt)
	if err != nil {
		return nil, &UnavailableError{Ref: ref, Err: err}
	}
	defer rr.Close()

	header, err := rr.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// No header at all: neither required column exists.
			return nil, &SchemaError{Ref: ref, Missing: []string{ColumnViews, ColumnLikes}}
		}
		return nil, &UnavailableError{Ref: ref, Err: fmt.Errorf("read header: %w", err)}
	}
	t := &Table{Ref: ref, index: make(map[string]int, len(header))}
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.Columns = append(t.Columns, name)
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
	var missing []string
	for _, c := range []string{ColumnViews, ColumnLikes} {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Ref: ref, Missing: missing}
	}
	vi, li := t.index[ColumnViews], t.index[ColumnLikes]

	maxRows := l.opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}
	rows := 0
	for {
		rec, err := rr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &UnavailableError{Ref: ref, Err: fmt.Errorf("read row %d: %w", rows+1, err)}
		}
		rows++
		if t.Len() >= maxRows {
			continue
		}
		v, err := l.numericCell(ref, rec, vi, ColumnViews, rows)
		if err != nil {
			return nil, err
		}
		k, err := l.numericCell(ref, rec, li, ColumnLikes, rows)
		if err != nil {
			return nil, err
		}
		t.Records = append(t.Records, rec)
		t.Views = append(t.Views, v)
		t.Likes = append(t.Likes, k)
	}
	if t.Len() < rows {
		t.Warnings = append(t.Warnings, fmt.Sprintf("processed only %d/%d rows due to MaxRows", t.Len(), rows))
	}
	return t, nil
}

func (l *Loader) numericCell(ref string, rec []string, idx int, col string, row int) (float64, error) {
	var raw string
	if idx < len(rec) {
		raw = strings.TrimSpace(rec[idx])
	}
	if raw == "" {
		return 0, &SchemaError{Ref: ref, Column: col, Row: row}
	}
	x, ok := parseNumeric(raw, l.opt)
	if !ok {
		return 0, &SchemaError{Ref: ref, Column: col, Row: row, Value: raw}
	}
	return x, nil
}

func parseNumeric(s string, opt Options) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		if cpos >= 0 && dpos >= 0 {
			if cpos > dpos {
				dec = ','
				thou = '.'
			} else {
				dec = '.'
				thou = ','
			}
		} else if cpos >= 0 && thou != 0 && thou != ',' {
			dec = ','
		} else if cpos >= 0 {
			// A lone comma is read as grouping only when every group after
			// the first has three digits; anything else is ambiguous.
			if !commaGrouped(raw) {
				return 0, false
			}
			dec = '.'
			thou = ','
		} else {
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// commaGrouped reports whether s looks like "1,234" or "-12,345,678".
func commaGrouped(s string) bool {
	s = strings.TrimLeft(s, "+-")
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts[0]) == 0 || len(parts[0]) > 3 || !allDigits(parts[0]) {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 || !allDigits(p) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
