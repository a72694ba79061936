package sheetstore

import "github.com/etnz/fondo"

// rowsFromValues converts a sheet values grid into raw rows keyed by the
// header row. Cells beyond the header width are dropped, short rows simply
// miss the trailing keys, and fully empty rows are skipped.
func rowsFromValues(values [][]any) []fondo.RawRow {
	if len(values) < 2 {
		return nil
	}
	header := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		name, _ := cell.(string)
		header = append(header, name)
	}

	var rows []fondo.RawRow
	for _, line := range values[1:] {
		row := make(fondo.RawRow, len(header))
		empty := true
		for i, cell := range line {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
			if s, ok := cell.(string); !ok || s != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
