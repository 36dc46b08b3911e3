package interview

import "time"

// Difficulty is a question difficulty rank.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// difficultyRanks orders difficulties for cap/floor comparisons.
var difficultyRanks = map[Difficulty]int{
	DifficultyEasy:   0,
	DifficultyMedium: 1,
	DifficultyHard:   2,
}

// Rank returns the numeric rank of d. Unknown difficulties rank as easy.
func (d Difficulty) Rank() int {
	return difficultyRanks[d]
}

// Bump returns the difficulty one rank above d, clamped to capped.
func (d Difficulty) Bump(capped Difficulty) Difficulty {
	next := d
	switch d {
	case DifficultyEasy:
		next = DifficultyMedium
	case DifficultyMedium:
		next = DifficultyHard
	}
	if next.Rank() > capped.Rank() {
		return capped
	}
	return next
}

// Drop returns the difficulty one rank below d, floored at easy.
func (d Difficulty) Drop() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	}
	return DifficultyEasy
}

// ParseDifficulty normalizes a difficulty string, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	}
	return DifficultyMedium
}

// QuestionType categorizes questions.
type QuestionType string

const (
	TypeCoding       QuestionType = "coding"
	TypeSystemDesign QuestionType = "system_design"
	TypeBehavioral   QuestionType = "behavioral"
	TypeConceptual   QuestionType = "conceptual"
)

// IsTechnical reports whether the type is graded with technical signals.
func (t QuestionType) IsTechnical() bool {
	return t == TypeCoding || t == TypeSystemDesign
}

// Stage is the session-level dialogue stage.
type Stage string

const (
	StageIntro             Stage = "intro"
	StageWarmup            Stage = "warmup"
	StageWarmupSmalltalk   Stage = "warmup_smalltalk"
	StageWarmupBehavioral  Stage = "warmup_behavioral"
	StageWarmupDone        Stage = "warmup_done"
	StageCandidateSolution Stage = "candidate_solution"
	StageFollowups         Stage = "followups"
	StageNextQuestion      Stage = "next_question"
	StageWrapup            Stage = "wrapup"
	StageDone              Stage = "done"
)

// CompanyStyleGeneral is the fallback company style every session can
// draw questions from.
const CompanyStyleGeneral = "general"

// TrackBehavioral is the pseudo-track behavioral questions are filed under.
const TrackBehavioral = "behavioral"

// TrackEngineer is the track that receives system-design plan slots.
const TrackEngineer = "engineer"

// Question is one interview question. Immutable once created; the engine
// queries questions but never mutates them.
type Question struct {
	ID              string
	Track           string
	CompanyStyle    string
	Difficulty      Difficulty
	Title           string
	Prompt          string
	Tags            []string
	Followups       []string
	QuestionType    QuestionType
	ExpectedTopics  []string
	EvaluationFocus []string
}

// MessageRole identifies who produced a transcript message.
type MessageRole string

const (
	RoleInterviewer MessageRole = "interviewer"
	RoleStudent     MessageRole = "student"
	RoleSystem      MessageRole = "system"
)

// Message is one transcript entry. Append-only, ordered by insertion.
type Message struct {
	ID        int
	SessionID string
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}
