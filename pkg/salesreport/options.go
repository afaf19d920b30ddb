// Package salesreport generates the sample sales workbook, derives revenue
// and writes the formatted summary report.
package salesreport

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/salesreport-go/pkg/salesreport/sheet"
)

// Default file names written into Options.WorkDir.
const (
	DefaultInputName  = "sales_data.xlsx"
	DefaultOutputName = "sales_summary.xlsx"
)

// ReportStyle holds the presentation settings applied by FormatReport.
type ReportStyle struct {
	// HeaderFill is the solid header background, as RRGGBB.
	HeaderFill string
	// HeaderFontColor is the bold header font color, as RRGGBB.
	HeaderFontColor string
	// BorderColor is the color of the thin cell borders, as RRGGBB.
	BorderColor string
	// CurrencyFormat applies to Unit_Price and Total_Revenue.
	CurrencyFormat string
	// IntegerFormat applies to Quantity_Sold.
	IntegerFormat string
	// TableName is the display name of the registered table.
	TableName string
	// TableStyle is a built-in table style name.
	TableStyle string
	// MinColWidth and MaxColWidth bound every column width.
	MinColWidth float64
	MaxColWidth float64
}

// Options configures a report run.
type Options struct {
	// WorkDir holds the input and output workbooks.
	WorkDir string
	// InputName is the sample workbook file name.
	InputName string
	// OutputName is the summary workbook file name.
	OutputName string
	// SheetName is the sheet the sample table is written to.
	SheetName string
	// Style controls FormatReport.
	Style ReportStyle
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultReportStyle returns the standard sales report look.
func DefaultReportStyle() ReportStyle {
	return ReportStyle{
		HeaderFill:      "1F4E78",
		HeaderFontColor: "FFFFFF",
		BorderColor:     "C7C7C7",
		CurrencyFormat:  `"$"#,##0.00`,
		IntegerFormat:   "#,##0",
		TableName:       "SalesSummary",
		TableStyle:      "TableStyleMedium9",
		MinColWidth:     12,
		MaxColWidth:     40,
	}
}

// DefaultOptions returns options writing the default file names into workDir.
func DefaultOptions(workDir string) Options {
	return Options{
		WorkDir:    workDir,
		InputName:  DefaultInputName,
		OutputName: DefaultOutputName,
		SheetName:  "Sheet1",
		Style:      DefaultReportStyle(),
	}
}

// InputPath returns the sample workbook location.
func (o Options) InputPath() string {
	return filepath.Join(o.WorkDir, o.InputName)
}

// OutputPath returns the summary workbook location.
func (o Options) OutputPath() string {
	return filepath.Join(o.WorkDir, o.OutputName)
}

// Validate checks the style settings.
func (o Options) Validate() error {
	s := o.withDefaults().Style
	for _, code := range []string{s.CurrencyFormat, s.IntegerFormat} {
		if _, err := sheet.DescribeNumFmt(code); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNumFmt, err)
		}
	}
	if s.MinColWidth <= 0 || s.MaxColWidth < s.MinColWidth {
		return fmt.Errorf("invalid column width bounds [%g, %g]", s.MinColWidth, s.MaxColWidth)
	}
	return nil
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions(o.WorkDir)
	if o.InputName == "" {
		o.InputName = d.InputName
	}
	if o.OutputName == "" {
		o.OutputName = d.OutputName
	}
	if o.SheetName == "" {
		o.SheetName = d.SheetName
	}
	o.Style = o.Style.withDefaults(d.Style)
	return o
}

// withDefaults fills each unset field from d.
func (s ReportStyle) withDefaults(d ReportStyle) ReportStyle {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.HeaderFill, d.HeaderFill)
	fill(&s.HeaderFontColor, d.HeaderFontColor)
	fill(&s.BorderColor, d.BorderColor)
	fill(&s.CurrencyFormat, d.CurrencyFormat)
	fill(&s.IntegerFormat, d.IntegerFormat)
	fill(&s.TableName, d.TableName)
	fill(&s.TableStyle, d.TableStyle)
	if s.MinColWidth == 0 {
		s.MinColWidth = d.MinColWidth
	}
	if s.MaxColWidth == 0 {
		s.MaxColWidth = d.MaxColWidth
	}
	return s
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
