package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uhaseeb85/stategraph/pkg/condition"
)

var parseCmd = &cobra.Command{
	Use:   "parse <condition>",
	Short: "Parse a rule condition and show its structure",
	Long: `Parse breaks a rule condition into its parts, normalizes its
operators and optionally expands each part through a YAML dictionary of
human-readable descriptions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := args[0]
		parsed := condition.Parse(text)

		var dict map[string]string
		if dictPath, _ := cmd.Flags().GetString("dict"); dictPath != "" {
			data, err := os.ReadFile(dictPath)
			if err != nil {
				fatal("Error reading dictionary: %v", err)
			}
			if err := yaml.Unmarshal(data, &dict); err != nil {
				fatal("Error parsing dictionary: %v", err)
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out := struct {
				Parsed      condition.Parsed `json:"parsed"`
				Normalized  string           `json:"normalized"`
				Description string           `json:"description,omitempty"`
				Issue       string           `json:"issue,omitempty"`
			}{
				Parsed:     parsed,
				Normalized: condition.Normalize(text),
			}
			if dict != nil {
				out.Description = condition.Describe(text, dict, true)
			}
			if err := condition.Validate(text); err != nil {
				out.Issue = err.Error()
			}
			if err := printJSON(out); err != nil {
				fatal("Error encoding output: %v", err)
			}
			return
		}

		fmt.Printf("Normalized: %s\n", condition.Normalize(text))
		if parsed.IsCompound {
			fmt.Printf("Operator:   %s\n", parsed.Operator)
			for _, part := range parsed.Parts {
				fmt.Printf("  - %s\n", part)
			}
		} else {
			fmt.Println("Operator:   (none)")
		}
		if dict != nil {
			fmt.Printf("Describes:  %s\n", condition.Describe(text, dict, true))
		}
		if err := condition.Validate(text); err != nil {
			fmt.Printf("Warning:    %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("dict", "", "Path to a YAML dictionary mapping condition parts to descriptions")
	parseCmd.Flags().Bool("json", false, "Output raw JSON instead of a report")
}
