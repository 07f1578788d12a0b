package output

import "strings"

// alignColumns left-justifies each cell to its column width. Cells get
// spad appended, are padded with the pad character up to the widest cell
// of the column, and rows are joined with sep.
func alignColumns(rows [][]string, pad, spad, sep string) []string {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len(cell) + len(spad); w > widths[j] {
				widths[j] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cell += spad
			if n := widths[j] - len(cell); n > 0 {
				cell += strings.Repeat(pad, n)
			}
			cells[j] = cell
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return lines
}
