// Package engine is the per-session dialogue controller: it decides, on
// every candidate turn, what the interviewer says next. It wires the
// text classifiers, rubric tracker, slot plan, and question selector
// together with the LLM gateway, and degrades to deterministic local
// behavior whenever the gateway is unavailable.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/selector"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
)

// Engine orchestrates interview sessions. Turns on the same session id
// must be serialized by the caller; the engine performs no locking of
// its own.
type Engine struct {
	sessions  store.SessionRepo
	messages  store.MessageRepo
	questions store.QuestionRepo
	history   store.HistoryRepo
	sel       *selector.Selector
	gw        *Gateway
	rnd       *rand.Rand
	now       func() time.Time
}

// Config wires an Engine. Provider may be nil for fully offline use;
// Rand and Now default when unset.
type Config struct {
	Sessions  store.SessionRepo
	Messages  store.MessageRepo
	Questions store.QuestionRepo
	History   store.HistoryRepo
	Selector  *selector.Selector
	Gateway   *Gateway
	Rand      *rand.Rand
	Now       func() time.Time
}

// New creates an Engine.
func New(cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Gateway == nil {
		cfg.Gateway = NewGateway(nil)
	}
	return &Engine{
		sessions:  cfg.Sessions,
		messages:  cfg.Messages,
		questions: cfg.Questions,
		history:   cfg.History,
		sel:       cfg.Selector,
		gw:        cfg.Gateway,
		rnd:       cfg.Rand,
		now:       cfg.Now,
	}
}

// Start opens a session: sends the greeting and moves the warmup state
// machine to its first step. Calling Start on an already-started
// session is an error.
func (e *Engine) Start(ctx context.Context, sessionID string) (*interview.Message, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Stage != interview.StageIntro {
		return nil, fmt.Errorf("session %s already started (stage %s)", sessionID, sess.Stage)
	}

	greeting, err := e.gw.Greeting(ctx, sess, timeOfDay(e.now()))
	if err != nil {
		greeting = cannedGreeting(e.now())
	}

	sess.Stage = interview.StageWarmup
	sess.SkillState.Warmup.Step = 1

	return e.commit(ctx, sess, greeting)
}

// HandleMessage processes one candidate turn and returns the
// interviewer's reply. Gateway failures never surface here; persistence
// failures do.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, text string) (*interview.Message, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if _, err := e.messages.Append(ctx, sess.ID, interview.RoleStudent, text); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	var reply string
	switch {
	case sess.Done():
		return e.commit(ctx, sess, closingMessage)
	case sess.Stage == interview.StageWrapup:
		sess.Stage = interview.StageDone
		reply = closingMessage
	case sess.InWarmup():
		reply, err = e.warmupTurn(ctx, sess, text)
	default:
		reply, err = e.mainTurn(ctx, sess, text)
	}
	if err != nil {
		return nil, err
	}

	return e.commit(ctx, sess, reply)
}

// commit persists the session and appends the interviewer's reply to the
// transcript.
func (e *Engine) commit(ctx context.Context, sess *session.Session, reply string) (*interview.Message, error) {
	if err := e.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	msg, err := e.messages.Append(ctx, sess.ID, interview.RoleInterviewer, reply)
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// currentQuestion loads the session's current question, clearing a
// stale reference so the caller can reselect.
func (e *Engine) currentQuestion(ctx context.Context, sess *session.Session) (*interview.Question, error) {
	if sess.CurrentQuestionID == "" {
		return nil, store.ErrNotFound
	}
	q, err := e.questions.Get(ctx, sess.CurrentQuestionID)
	if errors.Is(err, store.ErrNotFound) {
		sess.CurrentQuestionID = ""
		return nil, store.ErrNotFound
	}
	return q, err
}

// advance moves to the next main question (or into wrapup when the
// session budget or question pool is exhausted), prefixing the rotating
// transition preface.
func (e *Engine) advance(ctx context.Context, sess *session.Session, preface string) (string, error) {
	sess.FollowupsUsed = 0

	if sess.QuestionsAskedCount >= sess.MaxQuestions {
		sess.Stage = interview.StageWrapup
		return wrapupMessage, nil
	}

	q, err := e.sel.PickNext(ctx, sess)
	if errors.Is(err, selector.ErrPoolExhausted) {
		sess.Stage = interview.StageWrapup
		return poolExhaustedPreface + " " + wrapupMessage, nil
	}
	if err != nil {
		return "", fmt.Errorf("pick next question: %w", err)
	}

	if err := e.markAsked(ctx, sess, q); err != nil {
		return "", err
	}
	sess.SkillState.RecordAskedTags(q.Tags, q.QuestionType.IsTechnical())
	sess.CurrentQuestionID = q.ID
	sess.QuestionsAskedCount++
	sess.Stage = interview.StageCandidateSolution

	return assemble(preface, q.Prompt), nil
}

// markAsked records the question in the session's asked set and the
// user's seen set.
func (e *Engine) markAsked(ctx context.Context, sess *session.Session, q *interview.Question) error {
	if err := e.history.MarkAsked(ctx, sess.ID, q.ID); err != nil {
		return fmt.Errorf("mark asked: %w", err)
	}
	if err := e.history.MarkSeen(ctx, sess.UserID, q.ID); err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}

// assemble joins a transition preface with the message body, dropping
// the preface when the body already contains it.
func assemble(preface, body string) string {
	if preface == "" || strings.Contains(body, preface) {
		return body
	}
	return preface + "\n\n" + body
}

// followupText is the fallback chain for follow-up wording: the
// question's own dataset follow-ups, then a focus-keyed heuristic, then
// a generic question aimed at the weakest rubric dimension.
func (e *Engine) followupText(sess *session.Session, q *interview.Question, focus string) string {
	if n := len(q.Followups); n > 0 {
		idx := sess.FollowupsUsed
		if idx >= n {
			idx = n - 1
		}
		return q.Followups[idx]
	}
	if text, ok := focusFollowups[focus]; ok {
		return text
	}
	return rubricFollowups[sess.SkillState.Rubric.WeakestDimension()]
}
