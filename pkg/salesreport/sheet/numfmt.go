package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// NumFmtInfo summarises the positive section of a number format code.
type NumFmtInfo struct {
	// Decimals is the count of digit placeholders after the decimal point.
	Decimals int
	// Thousands reports whether the format groups digits.
	Thousands bool
	// Literal holds quoted or escaped text, e.g. a currency symbol.
	Literal string
}

// DescribeNumFmt parses a number format code and reports its numeric shape.
// It fails when the code has no digit placeholder.
func DescribeNumFmt(code string) (NumFmtInfo, error) {
	var info NumFmtInfo
	if strings.TrimSpace(code) == "" {
		return info, errors.New("empty number format")
	}

	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 {
		return info, fmt.Errorf("number format %q has no sections", code)
	}

	var literal strings.Builder
	digits, afterPoint := 0, false
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeDecimalPoint:
			afterPoint = true
		case nfp.TokenTypeThousandsSeparator:
			info.Thousands = true
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder, nfp.TokenTypeDigitalPlaceHolder:
			digits += len(tok.TValue)
			if afterPoint {
				info.Decimals += len(tok.TValue)
			}
		case nfp.TokenTypeLiteral:
			literal.WriteString(tok.TValue)
		}
	}
	if digits == 0 {
		return info, fmt.Errorf("number format %q has no digit placeholder", code)
	}
	info.Literal = literal.String()
	return info, nil
}

// builtInDateNumFmts lists the built-in number format IDs that show a
// calendar date: mm-dd-yy, d-mmm-yy, d-mmm, mmm-yy and m/d/yy h:mm.
var builtInDateNumFmts = map[int]bool{14: true, 15: true, 16: true, 17: true, 22: true}

// IsDateNumFmt reports whether a number format code renders a calendar date.
// Time-only and elapsed time formats are not dates.
func IsDateNumFmt(code string) bool {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 {
		return false
	}
	for _, tok := range sections[0].Items {
		if tok.TType == nfp.TokenTypeDateTimes && strings.ContainsAny(strings.ToLower(tok.TValue), "yd") {
			return true
		}
	}
	return false
}

// IsDateStyle reports whether a cell style carries a date number format.
func IsDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return IsDateNumFmt(*style.CustomNumFmt)
	}
	return builtInDateNumFmts[style.NumFmt]
}
