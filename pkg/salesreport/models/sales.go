package models

import "github.com/shopspring/decimal"

// SalesRecord is one product line of the sample dataset.
type SalesRecord struct {
	Product      string
	UnitPrice    decimal.Decimal
	QuantitySold int64
}

// Revenue returns UnitPrice multiplied by QuantitySold.
func (r SalesRecord) Revenue() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(r.QuantitySold))
}

// Values returns the record as spreadsheet cell values in SalesHeader order.
func (r SalesRecord) Values() []any {
	return []any{r.Product, r.UnitPrice.InexactFloat64(), r.QuantitySold}
}

// SalesHeader is the column order of the sample input table.
func SalesHeader() []string {
	return []string{ColProduct, ColUnitPrice, ColQuantitySold}
}
