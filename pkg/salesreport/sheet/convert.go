package sheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a value produced by ReadTable into a decimal.
// Text is accepted when it parses as a plain number.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("empty value")
	case int64:
		return decimal.NewFromInt(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case decimal.Decimal:
		return n, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", v)
	}
}
