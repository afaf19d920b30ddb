package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTableColumnIndex(t *testing.T) {
	table := Table{Header: []string{ColProduct, ColUnitPrice, ColQuantitySold}}

	if got := table.ColumnIndex(ColQuantitySold); got != 2 {
		t.Errorf("ColumnIndex(%q) = %d, expected 2", ColQuantitySold, got)
	}
	if got := table.ColumnIndex(ColTotalRevenue); got != -1 {
		t.Errorf("ColumnIndex(%q) = %d, expected -1", ColTotalRevenue, got)
	}
}

func TestTableBounds(t *testing.T) {
	table := Table{
		Header: []string{"a", "b"},
		Rows:   [][]any{{1, 2}, {1, 2, 3}, {1}},
	}

	if got := table.Width(); got != 3 {
		t.Errorf("Width = %d, expected 3", got)
	}
	want := CellRange{R1: 1, C1: 1, R2: 4, C2: 3}
	if got := table.Bounds(); got != want {
		t.Errorf("Bounds = %+v, expected %+v", got, want)
	}
	if got := want.Rows(); got != 4 {
		t.Errorf("Rows = %d, expected 4", got)
	}
	if got := want.Cols(); got != 3 {
		t.Errorf("Cols = %d, expected 3", got)
	}
}

func TestCellRangeRef(t *testing.T) {
	ref, err := CellRange{R1: 1, C1: 1, R2: 7, C2: 4}.Ref()
	if err != nil {
		t.Fatalf("Ref failed: %v", err)
	}
	if ref != "A1:D7" {
		t.Errorf("Ref = %q, expected A1:D7", ref)
	}

	if _, err := (CellRange{}).Ref(); err == nil {
		t.Error("expected error for zero range")
	}
}

func TestCellRangeOverlaps(t *testing.T) {
	base := CellRange{R1: 1, C1: 1, R2: 7, C2: 4}
	tests := []struct {
		other    CellRange
		expected bool
	}{
		{CellRange{R1: 1, C1: 1, R2: 3, C2: 2}, true},
		{CellRange{R1: 7, C1: 4, R2: 9, C2: 9}, true},
		{CellRange{R1: 8, C1: 1, R2: 9, C2: 4}, false},
		{CellRange{R1: 1, C1: 5, R2: 7, C2: 6}, false},
	}

	for _, tt := range tests {
		if got := base.Overlaps(tt.other); got != tt.expected {
			t.Errorf("Overlaps(%+v) = %v, expected %v", tt.other, got, tt.expected)
		}
		if got := tt.other.Overlaps(base); got != tt.expected {
			t.Errorf("reverse Overlaps(%+v) = %v, expected %v", tt.other, got, tt.expected)
		}
	}
}

func TestSalesRecord(t *testing.T) {
	r := SalesRecord{
		Product:      "Wireless Mouse",
		UnitPrice:    decimal.RequireFromString("29.5"),
		QuantitySold: 240,
	}

	if got := r.Revenue(); !got.Equal(decimal.NewFromInt(7080)) {
		t.Errorf("Revenue = %s, expected 7080", got)
	}

	values := r.Values()
	if len(values) != len(SalesHeader()) {
		t.Fatalf("Values has %d cells, header has %d", len(values), len(SalesHeader()))
	}
	if values[0] != "Wireless Mouse" || values[1] != 29.5 || values[2] != int64(240) {
		t.Errorf("unexpected values %v", values)
	}
}
