package salesreport

import (
	"fmt"
	"os"
	"path/filepath"
)

// Run generates the sample workbook, builds and formats the summary, and
// returns the absolute path of the summary workbook. An empty WorkDir means
// the current directory.
func Run(opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return "", err
	}

	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		opts.WorkDir = wd
	}

	inputPath := opts.InputPath()
	outputPath := opts.OutputPath()

	if err := GenerateSample(inputPath, opts); err != nil {
		return "", err
	}
	if err := BuildSummary(inputPath, outputPath, opts); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return abs, nil
}
