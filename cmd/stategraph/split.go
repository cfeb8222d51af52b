package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Partition the graph into balanced groups",
	Long: `Splits the graph into roughly equal partitions while preserving
connectivity. Natural islands (disconnected components) win over the
requested count when there are more of them.`,
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}

		count, _ := cmd.Flags().GetInt("count")
		parts, err := analyzer.Split(cmd.Context(), count)
		if err != nil {
			fatal("Error splitting graph: %v", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(parts); err != nil {
				fatal("Error encoding output: %v", err)
			}
			return
		}

		for _, p := range parts {
			fmt.Printf("%s (%d states, %d boundary edges)\n", p.Name, len(p.States), len(p.BoundaryEdges))
			for _, s := range p.States {
				fmt.Printf("  - %s (%s)\n", s.Name, s.ID)
			}
			for _, e := range p.BoundaryEdges {
				fmt.Printf("  ~ %s -> %s [%s] (%s)\n", e.FromState, e.ToState, e.Condition, e.Type)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().IntP("count", "n", 2, "Requested number of partitions")
	splitCmd.Flags().Bool("json", false, "Output raw JSON instead of a listing")
}
