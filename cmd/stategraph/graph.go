package main

import (
	"fmt"

	"github.com/spf13/cobra"

	graphpres "github.com/uhaseeb85/stategraph/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the graph as a Mermaid diagram",
	Long: `Graph renders the loaded states as a Mermaid flowchart. Dead-end
states are drawn as terminals and rules whose target does not exist are
drawn as dashed edges to a ghost node. With --partitions the diagram is
colored by the partition each state belongs to.`,
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}

		g, err := analyzer.Graph(cmd.Context())
		if err != nil {
			fatal("Error loading graph: %v", err)
		}

		var overlay *graphpres.Overlay
		if count, _ := cmd.Flags().GetInt("partitions"); count > 0 {
			parts, err := analyzer.Split(cmd.Context(), count)
			if err != nil {
				fatal("Error partitioning graph: %v", err)
			}
			overlay = &graphpres.Overlay{Partitions: parts}
		}
		if highlight, _ := cmd.Flags().GetStringSlice("highlight"); len(highlight) > 0 {
			if overlay == nil {
				overlay = &graphpres.Overlay{}
			}
			overlay.Highlight = highlight
		}

		fmt.Println(graphpres.GenerateMermaid(g, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().IntP("partitions", "n", 0, "Color the diagram by splitting into N partitions")
	graphCmd.Flags().StringSlice("highlight", nil, "State IDs to highlight in the diagram")
}
