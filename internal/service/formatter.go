package service

import (
	"fmt"
	"strings"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// User-facing response strings. Operator dashboards match on these, so the
// exact text is part of the contract.
const (
	msgNoResults     = "📭 No results found for your query."
	msgResultsBanner = "📦 Here are the results:"
)

// formatRows renders query results as human-readable text:
// zero rows gets a fixed no-results message, one row a single comma-joined
// line, and two or more rows a banner followed by one bullet per row.
func formatRows(rows []domain.Row) string {
	switch len(rows) {
	case 0:
		return msgNoResults
	case 1:
		return formatRow(rows[0])
	default:
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = "• " + formatRow(row)
		}
		return msgResultsBanner + "\n" + strings.Join(lines, "\n")
	}
}

// formatRow renders one row as "column: value, column: value" in SELECT order.
func formatRow(row domain.Row) string {
	parts := make([]string, len(row.Columns))
	for i, col := range row.Columns {
		parts[i] = fmt.Sprintf("%s: %v", col, row.Values[i])
	}
	return strings.Join(parts, ", ")
}
