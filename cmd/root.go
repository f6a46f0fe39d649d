package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mpelletier/liaison/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "liaison",
	Short: "Terminal French grammar tutor",
	Long:  "Liaison — terminal tutor that turns your French writing mistakes into targeted grammar practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// API keys are commonly kept in a local .env during development.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIAISON_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LIAISON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
