package domain

// Row is a single query result row with column order preserved.
// Columns and Values are parallel slices, in SELECT-list order.
type Row struct {
	Columns []string `json:"columns"`
	Values  []any    `json:"values"`
}
