package dataset

// Required column names.
const (
	ColumnViews = "views"
	ColumnLikes = "likes"
)

// Table is a loaded dataset. Records keep every column as read; Views and
// Likes hold the validated numeric columns, index-aligned with Records.
type Table struct {
	Ref      string
	Columns  []string
	Records  [][]string
	Views    []float64
	Likes    []float64
	Warnings []string

	index map[string]int
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Records) }

// Row returns row i as a column-name to value map.
func (t *Table) Row(i int) map[string]string {
	rec := t.Records[i]
	out := make(map[string]string, len(t.Columns))
	for j, name := range t.Columns {
		if j < len(rec) {
			out[name] = rec[j]
		} else {
			out[name] = ""
		}
	}
	return out
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}
