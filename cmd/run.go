package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/engine"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/questionbank"
	"github.com/abhisek/intervu/internal/selector"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// First run gets the built-in question bank; Seed is idempotent.
	if _, err := questionbank.Seed(ctx, st.Questions()); err != nil {
		return fmt.Errorf("seed question bank: %w", err)
	}

	provider := providerFromEnv(cmd, st.Events())

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(engine.Config{
		Sessions:  st.Sessions(),
		Messages:  st.Messages(),
		Questions: st.Questions(),
		History:   st.History(),
		Selector:  selector.New(st.Questions(), st.History(), rnd),
		Gateway:   engine.NewGateway(provider),
		Rand:      rnd,
	})

	return app.Run(app.Options{
		Engine:        eng,
		Sessions:      st.Sessions(),
		SessionConfig: sessionConfigFromFlags(cmd),
	})
}

// providerFromEnv builds the LLM provider from environment configuration.
// Returns nil when no provider is configured; the engine then runs in
// offline mode with canned interviewer behavior.
func providerFromEnv(cmd *cobra.Command, events store.EventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Running offline; the interviewer will use scripted follow-ups.")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider failed to initialize:", err)
		fmt.Fprintln(os.Stderr, "Running offline; the interviewer will use scripted follow-ups.")
		return nil
	}
	return provider
}

func sessionConfigFromFlags(cmd *cobra.Command) session.Config {
	user, _ := cmd.Flags().GetString("user")
	role, _ := cmd.Flags().GetString("role")
	track, _ := cmd.Flags().GetString("track")
	style, _ := cmd.Flags().GetString("style")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	questions, _ := cmd.Flags().GetInt("questions")
	followups, _ := cmd.Flags().GetInt("followups")
	behavioral, _ := cmd.Flags().GetInt("behavioral")
	adaptive, _ := cmd.Flags().GetBool("adaptive")

	return session.Config{
		UserID:           user,
		Role:             role,
		Track:            track,
		CompanyStyle:     style,
		Difficulty:       interview.ParseDifficulty(difficulty),
		Adaptive:         adaptive,
		MaxQuestions:     questions,
		MaxFollowups:     followups,
		BehavioralTarget: behavioral,
	}
}
