// =============================================================================
// Transaction Report Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs a named flow against a
// single input and writes the flow's artifact.
//
// COMMAND USAGE:
//   txnconv convert --flow <name> --in <path|-> [--out <path>]
//
// Each invocation is independent: a failure aborts that invocation with a
// single reported error and leaves nothing half-written.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawneshshakya/transaction-report-converter/internal/config"
	"github.com/pawneshshakya/transaction-report-converter/internal/converter"
	"github.com/pawneshshakya/transaction-report-converter/pkg/utils"
)

var (
	// convertFlow names the flow to run.
	convertFlow string

	// convertIn is the input path; "-" reads delimited text from stdin.
	convertIn string

	// convertOut is the output path, directory, or name pattern. Empty uses
	// the flow's fixed default file name.
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run a conversion flow against one input file",
	Long: `The convert command parses one input (delimited text or spreadsheet,
depending on the flow), remaps each row through the flow's mapping spec, and
writes the artifact with the flow's fixed file name unless --out says
otherwise.

Input rows missing a mapped source column produce empty output fields; they
are never an error. Constants and concatenations come from the mapping spec.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert()
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFlow, "flow", "", "Flow to run (see 'txnconv flows')")
	convertCmd.Flags().StringVar(&convertIn, "in", "", "Input file; '-' reads delimited text from stdin")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Output file, directory, or name pattern (default: the flow's fixed name)")
	convertCmd.MarkFlagRequired("flow")
	convertCmd.MarkFlagRequired("in")
}

func runConvert() error {
	flow, err := lookupFlow(convertFlow)
	if err != nil {
		return err
	}

	outputPath := utils.ResolveOutputPath(convertOut, flow.OutputFile, flow.FlowName)
	if err := utils.EnsureParentDir(outputPath); err != nil {
		return err
	}

	result := converter.New(flow, converter.Options{
		InputPath:  convertIn,
		OutputPath: outputPath,
	}, logger).Run()

	return report(result)
}

// lookupFlow loads the flow set (built-ins plus the configs directory) and
// resolves one flow by name.
func lookupFlow(name string) (*config.FlowConfig, error) {
	flows, err := config.LoadFlows(configsDir)
	if err != nil {
		return nil, err
	}
	flow, ok := flows[name]
	if !ok {
		return nil, fmt.Errorf("unknown flow %q (run 'txnconv flows' to list flows)", name)
	}
	return flow, nil
}

// report prints the outcome of an invocation and converts a failed result
// into a command error.
func report(result converter.Result) error {
	if !result.Success {
		return fmt.Errorf("%s failed at %s: %w", result.FlowName, result.FailedStage, result.Err)
	}
	fmt.Printf("✓ %s: %d row(s) in, %d row(s) out -> %s\n",
		result.FlowName, result.RowsIn, result.RowsOut, result.OutputFile)
	return nil
}
