package salesreport

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates a required column header is absent.
var ErrMissingColumn = errors.New("missing required column")

// ErrInvalidValue indicates a required cell is empty or not numeric.
var ErrInvalidValue = errors.New("invalid cell value")

// ErrEmptySheet indicates the sheet to format has no populated cells.
var ErrEmptySheet = errors.New("sheet is empty")

// ErrInvalidNumFmt indicates a configured number format cannot be used.
var ErrInvalidNumFmt = errors.New("invalid number format")

// Stage names reported by StageError.
const (
	StageGenerate = "generate"
	StageBuild    = "build"
	StageFormat   = "format"
)

// StageError represents a failure in one pipeline stage.
type StageError struct {
	Stage string
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

// SchemaError reports a table that does not carry the data a stage needs.
type SchemaError struct {
	// Column is the offending column name.
	Column string
	// Row is the 1-based data row, 0 for header problems.
	Row int
	Err error
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %q row %d: %v", e.Column, e.Row, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
