// =============================================================================
// Transaction Report Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (convert, filter, flows, version) are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (txnconv)
//   ├── convertCmd (txnconv convert)
//   ├── filterCmd  (txnconv filter)
//   ├── flowsCmd   (txnconv flows)
//   └── versionCmd (txnconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// configsDir holds the directory of operator-supplied flow configurations.
// Built-in partner flows are always available; files here add or override.
var configsDir string

// verbose enables debug logging when set to true.
var verbose bool

// logger is the process-wide structured logger, configured in initLogger.
var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "txnconv",
	Short: "Normalize partner transaction reports between schemas",
	Long: `txnconv transforms tabular financial transaction exports (CSV/XLSX)
between schemas: renaming and remapping columns, decoding spreadsheet serial
dates, filtering rows by date and status, and re-exporting as CSV or XLSX.

It normalizes the reports received from payment and settlement partners (a
generic gateway, MMTC-PAMP and Augmont) into the common downstream format.

Example Usage:
  txnconv convert --flow mmtc --in export.csv        # remap a gateway export
  txnconv convert --flow augmont --in report.xlsx    # remap a partner report
  txnconv filter --in report.xlsx --date 2024-01-05  # filter by date/status
  txnconv flows                                      # list available flows`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs the CLI.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVar(
		&configsDir,
		"configs",
		"./configs",
		"Directory of flow configuration files (built-ins are always available)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// initLogger configures the process-wide slog logger. Logs go to stderr so
// that stdout stays clean for piped artifacts.
func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
