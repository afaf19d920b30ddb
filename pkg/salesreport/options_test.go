package salesreport

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("/data")

	assert.Equal(t, filepath.Join("/data", "sales_data.xlsx"), opts.InputPath())
	assert.Equal(t, filepath.Join("/data", "sales_summary.xlsx"), opts.OutputPath())
	assert.Equal(t, "Sheet1", opts.SheetName)
	assert.Equal(t, "SalesSummary", opts.Style.TableName)
	assert.Equal(t, "TableStyleMedium9", opts.Style.TableStyle)
	assert.Equal(t, 12.0, opts.Style.MinColWidth)
	assert.Equal(t, 40.0, opts.Style.MaxColWidth)
	require.NoError(t, opts.Validate())
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{WorkDir: "w", OutputName: "custom.xlsx"}.withDefaults()

	assert.Equal(t, DefaultInputName, opts.InputName)
	assert.Equal(t, "custom.xlsx", opts.OutputName)
	assert.Equal(t, DefaultReportStyle(), opts.Style)
	assert.NotNil(t, opts.logger())
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReportStyle)
		numFmt bool
	}{
		{"bad currency", func(s *ReportStyle) { s.CurrencyFormat = "General" }, true},
		{"bad integer", func(s *ReportStyle) { s.IntegerFormat = "@" }, true},
		{"negative min width", func(s *ReportStyle) { s.MinColWidth = -1 }, false},
		{"max below min", func(s *ReportStyle) { s.MaxColWidth = 10 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions("")
			tt.mutate(&opts.Style)

			err := opts.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.numFmt, errors.Is(err, ErrInvalidNumFmt))
		})
	}
}

func TestOptionsWithDefaultsPartialStyle(t *testing.T) {
	opts := Options{Style: ReportStyle{TableName: "Custom", MaxColWidth: 60}}.withDefaults()

	want := DefaultReportStyle()
	want.TableName = "Custom"
	want.MaxColWidth = 60
	assert.Equal(t, want, opts.Style)
	require.NoError(t, opts.Validate())
}
