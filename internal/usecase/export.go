package usecase

import (
	"strings"
)

// Column maps one export column to its header and value extractor.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// ToDelimitedText serializes items into a header row plus one row per
// item, cells joined by the delimiter and rows by newlines. Cells are
// joined as-is, with no quoting or escaping; exports are for
// spreadsheet pasting, not round-tripping.
func ToDelimitedText[T any](items []T, columns []Column[T], delimiter string) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	b.WriteString(strings.Join(headers, delimiter))

	row := make([]string, len(columns))
	for _, item := range items {
		b.WriteString("\n")
		for i, col := range columns {
			row[i] = col.Value(item)
		}
		b.WriteString(strings.Join(row, delimiter))
	}

	return b.String()
}
