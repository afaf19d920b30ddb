package sheet

import (
	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// WriteTable writes the header at A1 and each row below it. time.Time values
// are stored as date serials with a date number format.
func WriteTable(f *excelize.File, t *models.Table) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(t.Sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// SaveTable writes the table into a new unstyled workbook at path,
// replacing any existing file.
func SaveTable(path string, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if t.Sheet == "" {
		t.Sheet = defaultSheet
	}
	if t.Sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, t.Sheet); err != nil {
			return err
		}
	}

	if err := WriteTable(f, t); err != nil {
		return err
	}
	return f.SaveAs(path)
}
