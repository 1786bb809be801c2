package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes the table as CSV, header first.
func (t Table) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, joinCSV(t.Header)); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, joinCSV(row)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	return nil
}

func joinCSV(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = csvEscape(f)
	}
	return strings.Join(escaped, ",")
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or
// newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// jsonRow is one table row keyed by header name.
type jsonRow map[string]string

// WriteJSON writes the table as an indented JSON document with the
// report metadata and one object per row.
func (t Table) WriteJSON(w io.Writer) error {
	rows := make([]jsonRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		jr := make(jsonRow, len(t.Header))
		for i, key := range t.Header {
			if i < len(row) {
				jr[key] = row[i]
			}
		}
		rows = append(rows, jr)
	}

	doc := struct {
		Title    string    `json:"title"`
		Period   string    `json:"period"`
		Employee string    `json:"employee"`
		Rows     []jsonRow `json:"rows"`
	}{t.Title, t.DateLabel, t.Member, rows}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON export: %w", err)
	}
	return nil
}
