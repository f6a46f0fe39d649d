package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpelletier/liaison/internal/progress"
	"github.com/mpelletier/liaison/internal/store"
	"github.com/mpelletier/liaison/internal/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		saved, err := st.ProgressRepo().Load(cmd.Context(), store.DefaultProgressKey)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		tracker := progress.NewTracker(saved, nil)
		summary := tracker.ProgressSummary()

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		printSummary(tracker, summary)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

func printSummary(tracker *progress.Tracker, summary progress.Summary) {
	s := summary.Stats
	sep := strings.Repeat("─", 64)

	fmt.Println("Liaison — your French grammar progress")
	fmt.Println(sep)
	fmt.Printf("Level %d  (%d/%d XP)    Streak: %d day(s)\n",
		s.Level, s.Experience, s.NextLevelAt, s.StreakDays)
	fmt.Printf("Quizzes: %d    Correct: %d    Accuracy: %.0f%%    Rules practiced: %d\n",
		s.TotalQuizzes, s.TotalCorrect, s.Accuracy*100, s.RulesPracticed)

	if s.RulesPracticed > 0 {
		fmt.Println()
		fmt.Println("Per-rule accuracy")
		fmt.Println(sep)
		printRuleBars(tracker, summary)
	}

	if len(summary.WeakRules) > 0 {
		fmt.Println()
		fmt.Printf("Needs work: %s\n", strings.Join(summary.WeakRules, ", "))
	}
	if len(summary.MasteredRules) > 0 {
		fmt.Printf("Mastered:   %s\n", strings.Join(summary.MasteredRules, ", "))
	}

	fmt.Println()
	for _, rec := range summary.Recommendations {
		marker := "•"
		if rec.Priority == "high" {
			marker = "!"
		}
		fmt.Printf("%s %s\n", marker, rec.Message)
	}
}

func printRuleBars(tracker *progress.Tracker, summary progress.Summary) {
	ids := make([]string, 0, len(tracker.Progress().RulesMastery))
	for id := range tracker.Progress().RulesMastery {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		perf := tracker.RulePerformance(id)
		label := fmt.Sprintf("%-28s L%d", id, perf.Level)
		bar := components.NewProgressBar(label, perf.Accuracy, true, 60)
		fmt.Println(bar.View())
	}
}
