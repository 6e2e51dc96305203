// =============================================================================
// Transaction Report Converter - Flows Command
// =============================================================================
//
// This file defines the 'flows' command, which lists the available conversion
// flows: the built-in partner schemas plus anything loaded from the configs
// directory.
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pawneshshakya/transaction-report-converter/internal/config"
)

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List the available conversion flows",
	RunE: func(cmd *cobra.Command, args []string) error {
		flows, err := config.LoadFlows(configsDir)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(flows))
		for name := range flows {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			flow := flows[name]
			fmt.Printf("%-12s %s -> %s  (default: %s)\n",
				flow.FlowName, flow.Input, flow.Output, flow.OutputFile)
			if flow.Description != "" {
				fmt.Printf("             %s\n", flow.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flowsCmd)
}
