package sheet

import (
	"fmt"
	"strings"

	"github.com/ukaji3/salesreport-go/pkg/salesreport/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a reference like A1:D7, $A$1:$D$7 or Sheet1!A1:D7.
// A single cell reference yields a one-cell range.
func ParseRange(ref string) (models.CellRange, error) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, err
	}

	return models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
