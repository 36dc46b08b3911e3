package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/intervu/internal/classify"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
)

// Controller actions proposed by the gateway and reconciled locally.
const (
	ActionFollowup = "FOLLOWUP"
	ActionMoveOn   = "MOVE_TO_NEXT_QUESTION"
	ActionWrapUp   = "WRAP_UP"
)

// TurnDecision is the controller's structured proposal for one turn.
type TurnDecision struct {
	Action              string          `json:"action"`
	Message             string          `json:"message"`
	DoneWithQuestion    bool            `json:"done_with_question"`
	AllowSecondFollowup bool            `json:"allow_second_followup"`
	QuickRubric         []float64       `json:"quick_rubric"`
	Intent              string          `json:"intent"`
	Confidence          float64         `json:"confidence"`
	NextFocus           string          `json:"next_focus"`
	Coverage            map[string]bool `json:"coverage"`
	MissingFocus        []string        `json:"missing_focus"`
}

// WarmupClassification is the gateway's read of the greeting reply.
type WarmupClassification struct {
	Tone              string  `json:"tone"`
	Energy            string  `json:"energy"`
	Confidence        float64 `json:"confidence"`
	Topic             string  `json:"topic"`
	SmalltalkQuestion string  `json:"smalltalk_question"`
}

// IntentClassification disambiguates a short reply.
type IntentClassification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Gateway wraps the LLM provider with the typed calls the engine makes.
// A nil provider makes every call fail, which the engine's fallback chain
// absorbs; callers never see a gateway error on a normal turn.
type Gateway struct {
	provider llm.Provider
}

// NewGateway creates a Gateway. provider may be nil for offline use.
func NewGateway(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

func (g *Gateway) generate(ctx context.Context, purpose string, req llm.Request) (*llm.Response, error) {
	if g.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}
	ctx = llm.WithPurpose(ctx, purpose)
	return g.provider.Generate(ctx, req)
}

// Greeting asks the gateway for the opening message.
func (g *Gateway) Greeting(ctx context.Context, sess *session.Session, timeOfDay string) (string, error) {
	userMsg, err := renderTemplate(greetingUserTemplate, struct {
		Role, Track, TimeOfDay string
	}{Role: sess.Role, Track: sess.Track, TimeOfDay: timeOfDay})
	if err != nil {
		return "", fmt.Errorf("build greeting prompt: %w", err)
	}

	resp, err := g.generate(ctx, "greeting", llm.Request{
		System:      greetingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	// Schema-less requests come back as raw text. A provider may still
	// hand the text over as a JSON-quoted string; unwrap that form too.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty greeting")}
	}
	return text, nil
}

// ClassifyWarmup reads tone, energy, and smalltalk potential from the
// candidate's greeting reply.
func (g *Gateway) ClassifyWarmup(ctx context.Context, text string) (*WarmupClassification, error) {
	userMsg, err := renderTemplate(warmupUserTemplate, struct{ Text string }{Text: text})
	if err != nil {
		return nil, fmt.Errorf("build warmup prompt: %w", err)
	}

	resp, err := g.generate(ctx, "warmup-classification", llm.Request{
		System:      warmupSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      WarmupClassificationSchema,
		MaxTokens:   256,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	var out WarmupClassification
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}

// ClassifyIntent disambiguates a short or ambiguous reply to the current
// question.
func (g *Gateway) ClassifyIntent(ctx context.Context, questionTitle, text string) (*IntentClassification, error) {
	userMsg, err := renderTemplate(intentUserTemplate, struct {
		QuestionTitle, Text string
	}{QuestionTitle: questionTitle, Text: text})
	if err != nil {
		return nil, fmt.Errorf("build intent prompt: %w", err)
	}

	resp, err := g.generate(ctx, "intent-classification", llm.Request{
		System:      intentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      IntentClassificationSchema,
		MaxTokens:   256,
		Temperature: 0.0,
	})
	if err != nil {
		return nil, err
	}

	var out IntentClassification
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}

// turnInput carries everything the turn-decision prompt needs.
type turnInput struct {
	QuestionType     string
	Difficulty       string
	QuestionTitle    string
	QuestionPrompt   string
	ExpectedTopics   []string
	Text             string
	Quality          classify.Quality
	MissingFocus     []string
	QuestionsAsked   int
	MaxQuestions     int
	FollowupsUsed    int
	MaxFollowups     int
	WeakestDimension rubric.Dimension
}

// TurnDecision asks the controller what to do next on a main-phase turn.
func (g *Gateway) TurnDecision(ctx context.Context, in turnInput) (*TurnDecision, error) {
	userMsg, err := renderTemplate(turnDecisionUserTemplate, in)
	if err != nil {
		return nil, fmt.Errorf("build turn prompt: %w", err)
	}

	resp, err := g.generate(ctx, "turn-decision", llm.Request{
		System:      turnDecisionSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      TurnDecisionSchema,
		MaxTokens:   512,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	var out TurnDecision
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	switch out.Action {
	case ActionFollowup, ActionMoveOn, ActionWrapUp:
	default:
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("unknown action %q", out.Action)}
	}
	return &out, nil
}
