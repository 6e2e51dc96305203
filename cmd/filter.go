// =============================================================================
// Transaction Report Converter - Filter Command
// =============================================================================
//
// This file defines the 'filter' command: canonicalize a gateway settlement
// spreadsheet and keep only the rows matching a calendar date and, optionally,
// a transaction status.
//
// COMMAND USAGE:
//   txnconv filter --in <report.xlsx> --date 2024-01-05 [--status SUCCESS]
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawneshshakya/transaction-report-converter/internal/converter"
	"github.com/pawneshshakya/transaction-report-converter/internal/exceldate"
	"github.com/pawneshshakya/transaction-report-converter/pkg/utils"
)

// filterFlowName is the flow the filter command always runs. Operators can
// override its mapping spec from the configs directory like any other flow.
const filterFlowName = "cashfree"

var (
	filterIn     string
	filterOut    string
	filterDate   string
	filterStatus string
	filterFormat string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter a settlement report by date and status",
	Long: `The filter command reads a gateway settlement spreadsheet, decodes and
canonicalizes each row's transaction time to "YYYY-MM-DD HH:MM", and keeps the
rows whose date equals --date and whose status equals --status. The status
sentinel ALL keeps every status. Matching rows are written as delimited text
(or a spreadsheet with --format xlsx), in their original order.

An empty match is valid, but no artifact is produced for it.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter()
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterIn, "in", "", "Input spreadsheet (first sheet is used)")
	filterCmd.Flags().StringVar(&filterOut, "out", "", "Output file, directory, or name pattern (default: filtered-transactions.csv)")
	filterCmd.Flags().StringVar(&filterDate, "date", "", "Target calendar date, YYYY-MM-DD")
	filterCmd.Flags().StringVar(&filterStatus, "status", converter.StatusAll,
		"Status to keep (exact match; ALL keeps every status)")
	filterCmd.Flags().StringVar(&filterFormat, "format", "", "Output format override: csv or xlsx")
	filterCmd.MarkFlagRequired("in")
	filterCmd.MarkFlagRequired("date")
}

func runFilter() error {
	if _, err := time.Parse(exceldate.LayoutDate, filterDate); err != nil {
		return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", filterDate)
	}

	flow, err := lookupFlow(filterFlowName)
	if err != nil {
		return err
	}

	defaultName := flow.OutputFile
	if filterFormat == "xlsx" {
		defaultName = "filtered-transactions.xlsx"
	}
	outputPath := utils.ResolveOutputPath(filterOut, defaultName, flow.FlowName)
	if err := utils.EnsureParentDir(outputPath); err != nil {
		return err
	}

	result := converter.New(flow, converter.Options{
		InputPath:    filterIn,
		OutputPath:   outputPath,
		OutputFormat: filterFormat,
		Filter: &converter.FilterCriteria{
			Date:   filterDate,
			Status: filterStatus,
		},
	}, logger).Run()

	return report(result)
}
