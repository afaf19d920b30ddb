package salesreport

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/ukaji3/salesreport-go/pkg/salesreport/sheet"
	"github.com/xuri/excelize/v2"
)

// BuildSummary reads the active sheet of inputPath, appends Total_Revenue,
// writes the result to outputPath and formats it with FormatReport.
func BuildSummary(inputPath, outputPath string, opts Options) error {
	opts = opts.withDefaults()
	log := opts.logger()

	table, err := loadTable(inputPath)
	if err != nil {
		return NewStageError(StageBuild, inputPath, err)
	}

	if err := DeriveRevenue(table); err != nil {
		return NewStageError(StageBuild, inputPath, err)
	}

	table.Sheet = opts.SheetName
	if err := sheet.SaveTable(outputPath, table); err != nil {
		return NewStageError(StageBuild, outputPath, err)
	}

	log.Info("summary written",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Header)))

	return FormatReport(outputPath, opts)
}

func loadTable(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sheet.ReadTable(f, sheet.ActiveSheet(f))
}

// DeriveRevenue sets Total_Revenue = Unit_Price * Quantity_Sold on every row.
// The column is appended after the last column unless the table already has
// one, in which case it is recomputed in place. Every row must carry numeric
// price and quantity values.
func DeriveRevenue(t *models.Table) error {
	priceCol := t.ColumnIndex(models.ColUnitPrice)
	if priceCol < 0 {
		return &SchemaError{Column: models.ColUnitPrice, Err: ErrMissingColumn}
	}
	qtyCol := t.ColumnIndex(models.ColQuantitySold)
	if qtyCol < 0 {
		return &SchemaError{Column: models.ColQuantitySold, Err: ErrMissingColumn}
	}

	totalCol := t.ColumnIndex(models.ColTotalRevenue)
	if totalCol < 0 {
		for len(t.Header) < t.Width() {
			t.Header = append(t.Header, "")
		}
		t.Header = append(t.Header, models.ColTotalRevenue)
		totalCol = len(t.Header) - 1
	}

	for i, row := range t.Rows {
		for len(row) < len(t.Header) {
			row = append(row, nil)
		}

		price, err := cellDecimal(row, priceCol)
		if err != nil {
			return &SchemaError{Column: models.ColUnitPrice, Row: i + 1, Err: err}
		}
		qty, err := cellDecimal(row, qtyCol)
		if err != nil {
			return &SchemaError{Column: models.ColQuantitySold, Row: i + 1, Err: err}
		}

		row[totalCol] = price.Mul(qty).InexactFloat64()
		t.Rows[i] = row
	}
	return nil
}

func cellDecimal(row []any, col int) (decimal.Decimal, error) {
	d, err := sheet.ToDecimal(row[col])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return d, nil
}
