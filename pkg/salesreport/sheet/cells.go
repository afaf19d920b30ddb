// Package sheet provides low-level worksheet reading and writing on top of excelize.
package sheet

import (
	"strconv"
	"strings"

	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet as a header row followed by data rows.
// Values are read raw (ignoring number formats); numeric cells become int64
// or float64, cells with a date format become time.Time, text cells stay
// strings and empty cells are nil. Blank rows between data rows are kept as
// empty rows; trailing blank rows are dropped.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	table := &models.Table{Sheet: sheetName}
	if len(rows) == 0 {
		return table, nil
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	r := &cellReader{
		f:        f,
		sheet:    sheetName,
		date1904: props.Date1904 != nil && *props.Date1904,
		dates:    make(map[int]bool),
	}

	table.Header = make([]string, len(rows[0]))
	copy(table.Header, rows[0])

	lastData := 0
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]any, len(row))
		hasData := false

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			hasData = true
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := r.value(cellName, raw)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}

		table.Rows = append(table.Rows, values)
		if hasData {
			lastData = len(table.Rows)
		}
	}
	table.Rows = table.Rows[:lastData]
	if lastData == 0 {
		table.Rows = nil
	}

	return table, nil
}

// ActiveSheet returns the name of the workbook's active sheet.
func ActiveSheet(f *excelize.File) string {
	return f.GetSheetName(f.GetActiveSheetIndex())
}

// cellReader converts raw cell strings of one sheet, caching which style IDs
// carry a date format.
type cellReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	dates    map[int]bool
}

// value converts a raw cell string according to the stored cell type.
func (r *cellReader) value(cellName, raw string) (any, error) {
	typ, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw, nil
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE"), nil
	}

	v := parseValue(raw)
	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	default:
		return v, nil
	}

	isDate, err := r.isDateCell(cellName)
	if err != nil || !isDate {
		return v, err
	}
	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *cellReader) isDateCell(cellName string) (bool, error) {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dates[styleID]; ok {
		return isDate, nil
	}
	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := IsDateStyle(style)
	r.dates[styleID] = isDate
	return isDate, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
