package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpelletier/liaison/internal/classifier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <original> <corrected> [description]",
	Short: "Classify a correction against the rule catalog",
	Long: "Classify takes an erroneous fragment and its correction (as produced by\n" +
		"`liaison check`) and prints the matched grammar rule as JSON. Useful for\n" +
		"scripting and for inspecting detector behavior.",
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := ""
		if len(args) == 3 {
			description = args[2]
		}

		result := classifier.Classify(args[0], args[1], description)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	},
}
