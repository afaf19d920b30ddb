package salesreport

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/ukaji3/salesreport-go/pkg/salesreport/sheet"
	"github.com/xuri/excelize/v2"
)

// FormatReport styles the active sheet of the workbook at path and saves it
// in place. Cell values are never changed. Running it again on the same
// file produces the same styles, widths and table region.
func FormatReport(path string, opts Options) error {
	opts = opts.withDefaults()
	log := opts.logger()

	if err := opts.Validate(); err != nil {
		return NewStageError(StageFormat, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return NewStageError(StageFormat, path, err)
	}
	defer f.Close()

	sheetName := sheet.ActiveSheet(f)
	region, err := applyReportStyle(f, sheetName, opts.Style)
	if err != nil {
		return NewStageError(StageFormat, path, err)
	}

	if err := f.Save(); err != nil {
		return NewStageError(StageFormat, path, err)
	}

	log.Info("report formatted",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.String("table", opts.Style.TableName),
		slog.String("range", region))
	return nil
}

// reportStyles holds the style IDs registered for one workbook.
type reportStyles struct {
	header   int
	data     int
	currency int
	integer  int

	f       *excelize.File
	borders []excelize.Border
	// kept maps a cell's previous style ID to the bordered style carrying
	// the same number format.
	kept map[int]int
}

func newReportStyles(f *excelize.File, s ReportStyle) (reportStyles, error) {
	var err error
	borders := thinBorders(s.BorderColor)
	rs := reportStyles{f: f, borders: borders, kept: make(map[int]int)}

	rs.header, err = f.NewStyle(&excelize.Style{
		Border: borders,
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.HeaderFill}},
		Font:   &excelize.Font{Bold: true, Color: s.HeaderFontColor},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return rs, err
	}

	if rs.data, err = rs.dataStyle(0, nil); err != nil {
		return rs, err
	}
	currency := s.CurrencyFormat
	if rs.currency, err = rs.dataStyle(0, &currency); err != nil {
		return rs, err
	}
	integer := s.IntegerFormat
	if rs.integer, err = rs.dataStyle(0, &integer); err != nil {
		return rs, err
	}
	return rs, nil
}

func (rs *reportStyles) dataStyle(numFmt int, customNumFmt *string) (int, error) {
	return rs.f.NewStyle(&excelize.Style{
		Border:       rs.borders,
		Alignment:    &excelize.Alignment{Vertical: "center"},
		NumFmt:       numFmt,
		CustomNumFmt: customNumFmt,
	})
}

// keepNumFmt returns the data style for a cell outside the formatted
// columns, carrying over the number format the cell already has.
func (rs *reportStyles) keepNumFmt(sheetName, cell string) (int, error) {
	prev, err := rs.f.GetCellStyle(sheetName, cell)
	if err != nil {
		return 0, err
	}
	if id, ok := rs.kept[prev]; ok {
		return id, nil
	}

	id := rs.data
	st, err := rs.f.GetStyle(prev)
	if err != nil {
		return 0, err
	}
	if st.NumFmt != 0 || st.CustomNumFmt != nil {
		if id, err = rs.dataStyle(st.NumFmt, st.CustomNumFmt); err != nil {
			return 0, err
		}
	}
	rs.kept[prev] = id
	return id, nil
}

// forColumn picks the data cell style by header name. The second result is
// false for columns whose cells keep their own number format.
func (rs *reportStyles) forColumn(name string) (int, bool) {
	switch name {
	case models.ColUnitPrice, models.ColTotalRevenue:
		return rs.currency, true
	case models.ColQuantitySold:
		return rs.integer, true
	default:
		return 0, false
	}
}

func thinBorders(color string) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: color, Style: 1}
	}
	return borders
}

// applyReportStyle styles the populated region of sheetName anchored at A1
// and returns the registered table range.
func applyReportStyle(f *excelize.File, sheetName string, s ReportStyle) (string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}
	used, ok := sheet.UsedRange(rows)
	if !ok {
		return "", ErrEmptySheet
	}
	region := models.CellRange{R1: 1, C1: 1, R2: used.R2, C2: used.C2}

	styles, err := newReportStyles(f, s)
	if err != nil {
		return "", err
	}

	lastHeader, err := excelize.CoordinatesToCellName(region.C2, 1)
	if err != nil {
		return "", err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, styles.header); err != nil {
		return "", err
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	for col := region.C1; col <= region.C2; col++ {
		name := ""
		if col <= len(header) {
			name = header[col-1]
		}

		if err := styleDataCells(f, sheetName, &styles, name, col, region.R2); err != nil {
			return "", err
		}

		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return "", err
		}
		width := sheet.ColumnWidth(sheet.MaxTextLen(rows, col-1), s.MinColWidth, s.MaxColWidth)
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return "", err
		}
	}

	ref, err := region.Ref()
	if err != nil {
		return "", err
	}
	if err := replaceTable(f, sheetName, region, ref, s); err != nil {
		return "", err
	}
	return ref, nil
}

// styleDataCells styles rows 2..lastRow of column col.
func styleDataCells(f *excelize.File, sheetName string, styles *reportStyles, name string, col, lastRow int) error {
	if lastRow < 2 {
		return nil
	}
	if id, ok := styles.forColumn(name); ok {
		top, _ := excelize.CoordinatesToCellName(col, 2)
		bottom, _ := excelize.CoordinatesToCellName(col, lastRow)
		return f.SetCellStyle(sheetName, top, bottom, id)
	}

	for row := 2; row <= lastRow; row++ {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		id, err := styles.keepNumFmt(sheetName, cell)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, id); err != nil {
			return err
		}
	}
	return nil
}

// replaceTable drops any table carrying the configured name and any table on
// sheetName intersecting region, then registers the report table.
func replaceTable(f *excelize.File, sheetName string, region models.CellRange, ref string, s ReportStyle) error {
	for _, name := range f.GetSheetList() {
		tables, err := f.GetTables(name)
		if err != nil {
			if isNotWorksheet(err, name) {
				continue
			}
			return fmt.Errorf("failed to list tables on sheet %s: %w", name, err)
		}
		for _, tbl := range tables {
			drop := strings.EqualFold(tbl.Name, s.TableName)
			if !drop && name == sheetName {
				existing, err := sheet.ParseRange(tbl.Range)
				if err != nil {
					return fmt.Errorf("table %s: %w", tbl.Name, err)
				}
				drop = existing.Overlaps(region)
			}
			if !drop {
				continue
			}
			if err := f.DeleteTable(tbl.Name); err != nil {
				return fmt.Errorf("failed to delete table %s: %w", tbl.Name, err)
			}
		}
	}

	stripes := true
	return f.AddTable(sheetName, &excelize.Table{
		Range:             ref,
		Name:              s.TableName,
		StyleName:         s.TableStyle,
		ShowFirstColumn:   false,
		ShowLastColumn:    false,
		ShowRowStripes:    &stripes,
		ShowColumnStripes: false,
	})
}

// isNotWorksheet reports whether err is excelize refusing a chart, dialog or
// macro sheet, which cannot hold tables.
func isNotWorksheet(err error, name string) bool {
	return err.Error() == fmt.Sprintf("sheet %s is not a worksheet", name)
}
