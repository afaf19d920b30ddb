package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// CellRange represents rectangular cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Ref renders the range in A1 notation, e.g. "A1:D7".
func (r CellRange) Ref() (string, error) {
	start, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// Rows returns the number of rows in the range.
func (r CellRange) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns in the range.
func (r CellRange) Cols() int { return r.C2 - r.C1 + 1 }

// Overlaps reports whether r and o share at least one cell.
func (r CellRange) Overlaps(o CellRange) bool {
	return r.R1 <= o.R2 && o.R1 <= r.R2 && r.C1 <= o.C2 && o.C1 <= r.C2
}
