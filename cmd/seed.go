package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/internal/questionbank"
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in question bank into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		inserted, err := questionbank.Seed(context.Background(), s.Questions())
		if err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}

		total, err := s.Questions().Count(context.Background())
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}

		fmt.Printf("Inserted %d questions (%d total in bank).\n", inserted, total)
		return nil
	},
}
