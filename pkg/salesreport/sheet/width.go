package sheet

import "unicode/utf8"

// ColumnWidth clamps textLen+2 into [lower, upper].
func ColumnWidth(textLen int, lower, upper float64) float64 {
	w := float64(textLen + 2)
	if w > upper {
		w = upper
	}
	if w < lower {
		w = lower
	}
	return w
}

// MaxTextLen returns the longest cell text, in characters, in the 0-based
// column col. Rows shorter than col+1 count as empty.
func MaxTextLen(rows [][]string, col int) int {
	longest := 0
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		if n := utf8.RuneCountInString(row[col]); n > longest {
			longest = n
		}
	}
	return longest
}
