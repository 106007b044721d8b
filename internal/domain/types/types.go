// Package types contains common types used across the application
package types

// Row is one line of a report, keyed by column name. Values are strings or
// numbers.
type Row map[string]any

// Table is a generated report: the column order plus its rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Values returns the row values in column order. Missing columns yield nil.
func (t Table) Values(r Row) []any {
	out := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = r[col]
	}
	return out
}
