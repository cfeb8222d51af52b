package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uhaseeb85/stategraph/internal/presentation/report"
	"github.com/uhaseeb85/stategraph/pkg/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff <snapshot>",
	Short: "Compare the current graph against a stored snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}
		store := newStore(cmd)

		snap, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			fatal("Error loading snapshot %q: %v", args[0], err)
		}

		rep, err := analyzer.Compare(cmd.Context(), snap)
		if err != nil {
			fatal("Error comparing graphs: %v", err)
		}

		var spec diff.FilterSpec
		status, _ := cmd.Flags().GetString("status")
		kind, _ := cmd.Flags().GetString("kind")
		spec.Status = diff.Status(status)
		spec.Kind = diff.Kind(kind)
		spec.Search, _ = cmd.Flags().GetString("search")
		if spec != (diff.FilterSpec{}) {
			rep = rep.Filter(spec)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(rep); err != nil {
				fatal("Error encoding output: %v", err)
			}
			return
		}

		printMarkdown(report.DiffMarkdown(rep))
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage graph snapshots for comparison",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Capture the current graph as a named snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := newAnalyzer(cmd)
		if err != nil {
			fatal("Error initializing: %v", err)
		}
		store := newStore(cmd)

		snap, err := analyzer.Snapshot(cmd.Context(), args[0])
		if err != nil {
			fatal("Error capturing snapshot: %v", err)
		}
		if err := store.Save(cmd.Context(), snap); err != nil {
			fatal("Error saving snapshot: %v", err)
		}
		fmt.Printf("Saved snapshot %q (%d states)\n", snap.Name, len(snap.States))
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Run: func(cmd *cobra.Command, args []string) {
		store := newStore(cmd)
		names, err := store.List(cmd.Context())
		if err != nil {
			fatal("Error listing snapshots: %v", err)
		}
		if len(names) == 0 {
			fmt.Println("No snapshots stored.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := newStore(cmd)
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			fatal("Error deleting snapshot: %v", err)
		}
		fmt.Printf("Deleted snapshot %q\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("status", "", "Filter by change status: added, removed, modified, unchanged")
	diffCmd.Flags().String("kind", "", "Filter by entity kind: state or rule")
	diffCmd.Flags().String("search", "", "Case-insensitive substring filter")
	diffCmd.Flags().Bool("json", false, "Output raw JSON instead of a report")

	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
}
