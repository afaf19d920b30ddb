package salesreport

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/ukaji3/salesreport-go/pkg/salesreport/sheet"
	"gopkg.in/yaml.v2"
)

//go:embed sample_sales.yaml
var sampleSalesYAML []byte

type sampleRow struct {
	Product      string `yaml:"product"`
	UnitPrice    string `yaml:"unit_price"`
	QuantitySold int64  `yaml:"quantity_sold"`
}

// SampleRecords returns the fixed sample dataset in order.
func SampleRecords() ([]models.SalesRecord, error) {
	var rows []sampleRow
	if err := yaml.Unmarshal(sampleSalesYAML, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode sample data: %w", err)
	}

	records := make([]models.SalesRecord, 0, len(rows))
	for i, r := range rows {
		price, err := decimal.NewFromString(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("sample row %d: unit price: %w", i+1, err)
		}
		records = append(records, models.SalesRecord{
			Product:      r.Product,
			UnitPrice:    price,
			QuantitySold: r.QuantitySold,
		})
	}
	return records, nil
}

// SampleTable returns the sample dataset as an unstyled table on sheetName.
func SampleTable(sheetName string) (*models.Table, error) {
	records, err := SampleRecords()
	if err != nil {
		return nil, err
	}
	table := &models.Table{
		Sheet:  sheetName,
		Header: models.SalesHeader(),
		Rows:   make([][]any, 0, len(records)),
	}
	for _, r := range records {
		table.Rows = append(table.Rows, r.Values())
	}
	return table, nil
}

// GenerateSample writes the sample dataset to path without styling.
func GenerateSample(path string, opts Options) error {
	opts = opts.withDefaults()
	log := opts.logger()

	table, err := SampleTable(opts.SheetName)
	if err != nil {
		return NewStageError(StageGenerate, path, err)
	}
	if err := sheet.SaveTable(path, table); err != nil {
		return NewStageError(StageGenerate, path, err)
	}

	log.Info("sample data written",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))
	return nil
}
