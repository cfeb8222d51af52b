package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uhaseeb85/stategraph"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stategraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stategraph version %s\n", strings.TrimSpace(stategraph.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
