package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpelletier/liaison/internal/app"
	"github.com/mpelletier/liaison/internal/catalog"
	"github.com/mpelletier/liaison/internal/progress"
	"github.com/mpelletier/liaison/internal/quizgen"
	"github.com/mpelletier/liaison/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [rule-id]",
	Short: "Start a practice session",
	Long: "Start an interactive quiz session. With a rule ID the session drills that rule;\n" +
		"without one it targets your weakest rules, or beginner material on a fresh profile.",
	Args: cobra.MaximumNArgs(1),
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntP("max", "n", 10, "Maximum number of questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	maxItems, _ := cmd.Flags().GetInt("max")
	if maxItems <= 0 {
		maxItems = 10
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.ProgressRepo()
	saved, err := repo.Load(cmd.Context(), store.DefaultProgressKey)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	tracker := progress.NewTracker(saved, nil)

	gen := quizgen.New()
	items := buildSessionItems(gen, tracker, args, maxItems)
	if len(items) == 0 {
		return fmt.Errorf("no quiz items could be generated")
	}

	return app.Run(app.NewSession(items, tracker, repo))
}

// buildSessionItems picks what to practice: an explicit rule beats weak
// rules, which beat the beginner default set.
func buildSessionItems(gen *quizgen.Generator, tracker *progress.Tracker, args []string, maxItems int) []quizgen.Item {
	if len(args) == 1 {
		ruleID := args[0]
		level := tracker.RuleMastery(ruleID)
		return gen.Mixed(ruleID, level, maxItems)
	}

	weak := tracker.WeakRules(3)
	if len(weak) == 0 {
		items := gen.Default()
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		return items
	}

	per := maxItems / len(weak)
	if per < 1 {
		per = 1
	}
	var items []quizgen.Item
	for _, ruleID := range weak {
		if len(items) >= maxItems {
			break
		}
		n := per
		if len(items)+n > maxItems {
			n = maxItems - len(items)
		}
		items = append(items, gen.Mixed(ruleID, tracker.RuleMastery(ruleID), n)...)
	}
	return items
}

var rulesCmd = &cobra.Command{
	Use:   "rules [category]",
	Short: "List grammar rules in the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rules []*catalog.GrammarRule
		if len(args) == 1 {
			c := catalog.Category(args[0])
			rules = catalog.ByCategory(c)
			if len(rules) == 0 {
				return fmt.Errorf("no rules in category %q", args[0])
			}
		} else {
			rules = catalog.All()
		}

		fmt.Printf("%-28s  %-22s  %-4s  %s\n", "ID", "Category", "Lvl", "Statement")
		for _, r := range rules {
			statement := r.Statement
			if len(statement) > 60 {
				statement = statement[:57] + "..."
			}
			fmt.Printf("%-28s  %-22s  %-4d  %s\n",
				r.ID, catalog.CategoryDisplayName(r.Category), r.Difficulty, statement)
		}
		return nil
	},
}
