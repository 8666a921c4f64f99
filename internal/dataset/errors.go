package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDataUnavailable matches any failure to read a dataset source.
	ErrDataUnavailable = errors.New("dataset unavailable")
	// ErrSchemaInvalid matches datasets lacking usable views/likes columns.
	ErrSchemaInvalid = errors.New("dataset schema invalid")
)

// UnavailableError indicates the dataset source could not be opened or parsed.
type UnavailableError struct {
	Ref string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("dataset %s unavailable: %v", e.Ref, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrDataUnavailable }

// SchemaError indicates missing required columns or a non-numeric required value.
// Its message is safe to show to clients.
type SchemaError struct {
	Ref     string
	Missing []string
	// Set when a required column holds a value that is not a number.
	Column string
	Row    int
	Value  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		quoted := make([]string, len(e.Missing))
		for i, m := range e.Missing {
			quoted[i] = "'" + m + "'"
		}
		return fmt.Sprintf("data does not contain the required columns: %s", strings.Join(quoted, ", "))
	}
	if e.Value == "" {
		return fmt.Sprintf("column '%s' has an empty value at row %d", e.Column, e.Row)
	}
	return fmt.Sprintf("column '%s' has a non-numeric value %q at row %d", e.Column, e.Value, e.Row)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchemaInvalid }
