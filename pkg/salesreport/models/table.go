// Package models defines data structures for the sales summary report.
package models

// Column names used by the sales report.
const (
	ColProduct      = "Product"
	ColUnitPrice    = "Unit_Price"
	ColQuantitySold = "Quantity_Sold"
	ColTotalRevenue = "Total_Revenue"
)

// Table is a header row followed by data rows read from or written to one sheet.
type Table struct {
	// Sheet is the sheet the table lives on.
	Sheet string `json:"sheet"`
	// Header holds the column names in order.
	Header []string `json:"header"`
	// Rows holds cell values in insertion order. A row may be shorter than
	// Header when trailing cells are empty.
	Rows [][]any `json:"rows"`
}

// ColumnIndex returns the 0-based index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Width returns the number of columns spanned by the header or any row.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Bounds returns the range covering the header and all rows, anchored at A1.
func (t *Table) Bounds() CellRange {
	return CellRange{R1: 1, C1: 1, R2: len(t.Rows) + 1, C2: t.Width()}
}
