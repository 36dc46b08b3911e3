// Package session defines the interview session model and its
// persisted skill-state blob.
package session

import (
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/plan"
)

// Defaults applied when a session is created without explicit limits.
const (
	DefaultMaxQuestions            = 7
	DefaultMaxFollowupsPerQuestion = 2
	DefaultBehavioralTarget        = 2
)

// Session is one interview attempt. Created once, mutated by every
// engine turn via read-modify-write, terminal when Stage is done.
//
// The enclosing service must serialize turns per session id; concurrent
// turns on the same session lose counter and rubric updates.
type Session struct {
	ID           string
	UserID       string
	Role         string
	Track        string
	CompanyStyle string

	// Difficulty is the user-selected cap, immutable for the session.
	// DifficultyCurrent adapts turn by turn, never above the cap.
	Difficulty        interview.Difficulty
	DifficultyCurrent interview.Difficulty
	Adaptive          bool

	Stage interview.Stage

	QuestionsAskedCount       int
	FollowupsUsed             int
	MaxQuestions              int
	MaxFollowupsPerQuestion   int
	BehavioralQuestionsTarget int

	CurrentQuestionID string

	SkillState *State
}

// Config are the user-facing knobs for a new session.
type Config struct {
	UserID           string
	Role             string
	Track            string
	CompanyStyle     string
	Difficulty       interview.Difficulty
	Adaptive         bool
	MaxQuestions     int
	MaxFollowups     int
	BehavioralTarget int
	FocusDimensions  []string
	FocusTags        []string
}

// New creates a session in the intro stage with its slot plan built.
func New(id string, cfg Config) *Session {
	maxQ := cfg.MaxQuestions
	if maxQ <= 0 {
		maxQ = DefaultMaxQuestions
	}
	maxF := cfg.MaxFollowups
	if maxF <= 0 {
		maxF = DefaultMaxFollowupsPerQuestion
	}
	target := cfg.BehavioralTarget
	if target < 0 {
		target = 0
	}
	if target > 3 {
		target = 3
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = interview.DifficultyMedium
	}
	current := difficulty
	if cfg.Adaptive {
		current = interview.DifficultyEasy
	}

	track := cfg.Track
	if track == "" {
		track = interview.TrackEngineer
	}
	style := cfg.CompanyStyle
	if style == "" {
		style = interview.CompanyStyleGeneral
	}

	st := NewState()
	st.Plan = plan.Build(maxQ, target, track)
	st.Focus = Focus{Dimensions: cfg.FocusDimensions, Tags: cfg.FocusTags}

	return &Session{
		ID:                        id,
		UserID:                    cfg.UserID,
		Role:                      cfg.Role,
		Track:                     track,
		CompanyStyle:              style,
		Difficulty:                difficulty,
		DifficultyCurrent:         current,
		Adaptive:                  cfg.Adaptive,
		Stage:                     interview.StageIntro,
		MaxQuestions:              maxQ,
		MaxFollowupsPerQuestion:   maxF,
		BehavioralQuestionsTarget: target,
		SkillState:                st,
	}
}

// EffectiveDifficulty is the difficulty used for question selection.
func (s *Session) EffectiveDifficulty() interview.Difficulty {
	if !s.Adaptive {
		return s.Difficulty
	}
	return s.DifficultyCurrent
}

// Done reports whether the session reached its terminal stage.
func (s *Session) Done() bool {
	return s.Stage == interview.StageDone
}

// InWarmup reports whether the session is still in the warmup flow.
func (s *Session) InWarmup() bool {
	switch s.Stage {
	case interview.StageIntro, interview.StageWarmup,
		interview.StageWarmupSmalltalk, interview.StageWarmupBehavioral:
		return true
	}
	return false
}
