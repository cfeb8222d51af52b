package main

import (
	"github.com/spf13/cobra"

	"github.com/uhaseeb85/stategraph/internal/presentation/report"
	"github.com/uhaseeb85/stategraph/pkg/pathfind"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Find paths through the graph",
	Long: `Finds every path from a start state. Without --target the search runs
to dead ends; with it, to that state. Cycles encountered on the way are
reported alongside the paths.`,
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}

		opts := pathfind.Options{Mode: pathfind.ModeToEnd}
		opts.Start, _ = cmd.Flags().GetString("start")
		opts.Target, _ = cmd.Flags().GetString("target")
		opts.Via, _ = cmd.Flags().GetString("via")
		opts.MaxPaths, _ = cmd.Flags().GetInt("max-paths")
		opts.MaxDepth, _ = cmd.Flags().GetInt("max-depth")
		if opts.Target != "" {
			opts.Mode = pathfind.ModeToTarget
		}

		result, err := analyzer.FindPaths(cmd.Context(), opts)
		if err != nil {
			fatal("Error finding paths: %v", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(map[string]any{
				"paths":     result.Paths(),
				"cycles":    result.Cycles(),
				"truncated": result.Truncated,
			}); err != nil {
				fatal("Error encoding output: %v", err)
			}
			return
		}

		printMarkdown(report.PathsMarkdown(result))
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().StringP("start", "s", "", "ID of the state to start from (required)")
	pathsCmd.Flags().StringP("target", "t", "", "ID of the target state (default: search to dead ends)")
	pathsCmd.Flags().String("via", "", "ID of a state every path must pass through")
	pathsCmd.Flags().Int("max-paths", 0, "Cap on recorded paths plus cycles")
	pathsCmd.Flags().Int("max-depth", 0, "Cap on traversal depth")
	pathsCmd.Flags().Bool("json", false, "Output raw JSON instead of a report")
	_ = pathsCmd.MarkFlagRequired("start")
}
