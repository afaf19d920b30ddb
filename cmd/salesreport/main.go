// Package main provides the CLI entry point for salesreport-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/salesreport-go/pkg/salesreport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salesreport",
		Short: "Build a formatted sales summary workbook",
		Long: `salesreport writes a sample sales workbook to the current directory,
derives the Total_Revenue column and saves a styled summary report next to it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	opts := salesreport.DefaultOptions(wd)
	opts.Logger = salesreport.NewLogger(cmd.ErrOrStderr(), "info")

	outputPath, err := salesreport.Run(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sales summary report created: %s\n", outputPath)
	return nil
}
