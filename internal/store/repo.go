package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/session"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// QuestionFilter narrows a question query. Zero fields match everything.
type QuestionFilter struct {
	// Tracks matches any of the given tracks.
	Tracks []string
	// CompanyStyles matches any of the given styles.
	CompanyStyles []string
	// Difficulty matches exactly when set.
	Difficulty interview.Difficulty
	// Types matches any of the given question types.
	Types []interview.QuestionType
	// ExcludeTypes removes the given question types.
	ExcludeTypes []interview.QuestionType
	// ExcludeIDs removes specific question ids (the asked set).
	ExcludeIDs []string
	// TagContains keeps only questions with a tag containing the
	// substring.
	TagContains string
}

// QuestionRepo provides read/create access to the question bank.
type QuestionRepo interface {
	Create(ctx context.Context, q *interview.Question) error
	Get(ctx context.Context, id string) (*interview.Question, error)
	List(ctx context.Context, f QuestionFilter) ([]*interview.Question, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepo persists interview sessions. Update replaces all mutable
// fields including the skill-state blob in one write.
type SessionRepo interface {
	Create(ctx context.Context, s *session.Session) error
	Get(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, s *session.Session) error
	ListByUser(ctx context.Context, userID string) ([]*session.Session, error)
}

// MessageRepo is the append-only transcript.
type MessageRepo interface {
	Append(ctx context.Context, sessionID string, role interview.MessageRole, content string) (*interview.Message, error)
	List(ctx context.Context, sessionID string) ([]*interview.Message, error)
}

// HistoryRepo tracks asked (per session) and seen (per user) question
// sets. Inserts are idempotent.
type HistoryRepo interface {
	MarkAsked(ctx context.Context, sessionID, questionID string) error
	AskedIDs(ctx context.Context, sessionID string) ([]string, error)
	MarkSeen(ctx context.Context, userID, questionID string) error
	SeenIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// LLMRequestEventData captures one gateway call for telemetry.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is one stored gateway call.
type LLMEvent struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Timestamp    time.Time
}

// LLMUsage aggregates gateway calls by purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates gateway calls by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to telemetry events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMEvent, error)
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	UsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
