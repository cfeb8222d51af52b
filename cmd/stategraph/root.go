package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stategraph",
	Short: "Stategraph analyzes state-machine flow graphs",
	Long: `Stategraph loads state-machine flow definitions and runs graph analyses
over them: path discovery, partitioning, snapshot comparison and
structural validation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the flow graph documents")
	rootCmd.PersistentFlags().String("csv", "", "Load the graph from a CSV transition table instead of a directory")
	rootCmd.PersistentFlags().String("store", "", "Snapshot store directory (default .stategraph/snapshots)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the snapshot store (overrides --store)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
}
