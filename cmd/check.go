package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpelletier/liaison/internal/catalog"
	"github.com/mpelletier/liaison/internal/classifier"
	"github.com/mpelletier/liaison/internal/corrections"
)

var checkCmd = &cobra.Command{
	Use:   "check <text>",
	Short: "Check French text for grammar mistakes",
	Long: "Check sends the text to the configured AI provider, classifies every\n" +
		"detected mistake against the rule catalog, and prints what to review.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		provider, err := corrections.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("configure provider: %w", err)
		}

		triples, err := provider.Corrections(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("check text: %w", err)
		}

		if len(triples) == 0 {
			fmt.Println("No mistakes found. Bien joué !")
			return nil
		}

		for i, t := range triples {
			result := classifier.Classify(t.Example, t.Suggestion, t.Issue)

			fmt.Printf("%d. %s → %s\n", i+1, t.Example, t.Suggestion)
			if t.Issue != "" {
				fmt.Printf("   %s\n", t.Issue)
			}

			if result.RuleID == "" {
				fmt.Println("   (no matching rule in the catalog)")
				fmt.Println()
				continue
			}

			fmt.Printf("   Rule: %s (confidence %.2f)\n", result.RuleID, result.Confidence)
			if rule, ok := catalog.Get(result.RuleID); ok {
				fmt.Printf("   %s\n", rule.Statement)
				fmt.Printf("   Practice it: liaison quiz %s\n", rule.ID)
			}
			fmt.Println()
		}

		return nil
	},
}
