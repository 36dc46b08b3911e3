package cmd

import (
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "AI mock interviewer in your terminal",
	Long:  "Intervu — an adaptive mock-interview coach that asks real interview questions, digs into your answers, and scores you on a rubric.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVU_DB env var)")

	rootCmd.Flags().String("user", "local", "User id sessions are filed under")
	rootCmd.Flags().String("role", "software engineer", "Role you are interviewing for")
	rootCmd.Flags().String("track", "engineer", "Interview track")
	rootCmd.Flags().String("style", "general", "Company style to draw questions from")
	rootCmd.Flags().String("difficulty", "medium", "Difficulty cap: easy, medium, hard")
	rootCmd.Flags().Int("questions", 0, "Max main questions (0 = default)")
	rootCmd.Flags().Int("followups", 0, "Max follow-ups per question (0 = default)")
	rootCmd.Flags().Int("behavioral", 2, "Behavioral questions to mix in (0-3)")
	rootCmd.Flags().Bool("adaptive", true, "Adapt difficulty to your answers")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INTERVU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
