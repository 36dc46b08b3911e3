package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past interview sessions and rubric averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.Sessions().ListByUser(context.Background(), user)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No interview sessions yet. Run `intervu` to start one.")
			return nil
		}

		fmt.Printf("%-10s  %-20s  %-10s  %-6s  %-6s  %s\n",
			"ID", "Stage", "Difficulty", "Qs", "Turns", "Score")
		fmt.Println(strings.Repeat("─", 72))

		for _, sess := range sessions {
			fmt.Printf("%-10s  %-20s  %-10s  %-6d  %-6d  %s\n",
				shortID(sess.ID),
				sess.Stage,
				sess.DifficultyCurrent,
				sess.QuestionsAskedCount,
				rubricTurns(sess),
				overallScore(sess),
			)
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func rubricTurns(s *session.Session) int {
	if s.SkillState == nil || s.SkillState.Rubric == nil {
		return 0
	}
	return s.SkillState.Rubric.Turns()
}

// overallScore is the mean of the per-dimension EMAs, or "-" before any
// turn was scored.
func overallScore(s *session.Session) string {
	if rubricTurns(s) == 0 {
		return "-"
	}
	tracker := s.SkillState.Rubric
	sum := 0.0
	for _, d := range rubric.Dimensions {
		if stats := tracker.Dims[d]; stats != nil {
			sum += stats.EMA
		}
	}
	return fmt.Sprintf("%.1f/10", sum/float64(len(rubric.Dimensions)))
}

func init() {
	statsCmd.Flags().String("user", "local", "User id to list sessions for")
}
