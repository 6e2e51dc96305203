// =============================================================================
// Transaction Report Converter - Main Entry Point
// =============================================================================
//
// txnconv normalizes the tabular transaction exports received from payment
// and settlement partners into a common downstream format. It initializes the
// Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   txnconv convert --flow <name> --in <file>  - Run a conversion flow
//   txnconv filter --in <file> --date <date>   - Filter a report by date/status
//   txnconv flows                              - List available flows
//   txnconv version                            - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : parsers, mapping engine, pipeline (not for external import)
//   - pkg/       : shared utilities
//   - configs/   : partner flow configurations (YAML)
//
// =============================================================================

package main

import (
	"github.com/pawneshshakya/transaction-report-converter/cmd"
)

func main() {
	cmd.Execute()
}
