package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uhaseeb85/stategraph/internal/presentation/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the graph for structural problems",
	Long: `Validate checks the loaded states for duplicate IDs, rules that
point at states that do not exist, empty conditions and states that no
path can reach. Errors exit non-zero; warnings do not.`,
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}

		rep, err := analyzer.Validate(cmd.Context())
		if err != nil {
			fatal("Error validating: %v", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(rep); err != nil {
				fatal("Error encoding output: %v", err)
			}
		} else {
			printMarkdown(report.ValidationMarkdown(rep))
		}

		if rep.HasErrors() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Output raw JSON instead of a report")
}
