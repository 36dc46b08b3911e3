// Package interview is the chat screen where the mock interview takes
// place: a transcript, a text input, and a rubric summary at the end.
package interview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/engine"
	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"

	"github.com/google/uuid"
)

// line is one rendered transcript entry.
type line struct {
	role iv.MessageRole
	text string
}

// InterviewScreen implements screen.Screen for a running interview.
type InterviewScreen struct {
	eng      *engine.Engine
	sessions store.SessionRepo
	cfg      session.Config

	sessionID string
	lines     []line
	input     components.TextInput
	waiting   bool
	done      bool
	asked     int
	max       int
	rubric    *rubric.Tracker
	errMsg    string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen that starts a fresh session from cfg.
func New(eng *engine.Engine, sessions store.SessionRepo, cfg session.Config) *InterviewScreen {
	return &InterviewScreen{
		eng:      eng,
		sessions: sessions,
		cfg:      cfg,
		input:    components.NewTextInput("Type your answer...", 0),
		waiting:  true,
	}
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) Status() string {
	if s.sessionID == "" || s.max == 0 {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", s.asked, s.max)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return tea.Batch(
		s.start(),
		s.input.Init(),
	)
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case replyMsg:
		return s.handleReply(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	if !s.waiting && !s.done {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// start creates the session row and asks the engine for the greeting.
func (s *InterviewScreen) start() tea.Cmd {
	eng, sessions, cfg := s.eng, s.sessions, s.cfg
	return func() tea.Msg {
		ctx := context.Background()

		sess := session.New(uuid.New().String(), cfg)
		if err := sessions.Create(ctx, sess); err != nil {
			return startedMsg{Err: fmt.Errorf("create session: %w", err)}
		}

		reply, err := eng.Start(ctx, sess.ID)
		if err != nil {
			return startedMsg{Err: err}
		}
		return startedMsg{SessionID: sess.ID, Reply: reply}
	}
}

func (s *InterviewScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.waiting = false
		return s, nil
	}
	s.sessionID = msg.SessionID
	s.max = s.cfg.MaxQuestions
	if s.max <= 0 {
		s.max = session.DefaultMaxQuestions
	}
	s.lines = append(s.lines, line{role: iv.RoleInterviewer, text: msg.Reply.Content})
	s.waiting = false
	return s, nil
}

func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	if s.waiting || s.done || s.sessionID == "" {
		return s, nil
	}
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return s, nil
	}

	s.lines = append(s.lines, line{role: iv.RoleStudent, text: text})
	s.input.Reset()
	s.waiting = true

	eng, sessions, id := s.eng, s.sessions, s.sessionID
	return s, func() tea.Msg {
		ctx := context.Background()

		reply, err := eng.HandleMessage(ctx, id, text)
		if err != nil {
			return replyMsg{Err: err}
		}

		out := replyMsg{Reply: reply}
		if sess, err := sessions.Get(ctx, id); err == nil {
			out.Stage = sess.Stage
			out.Asked = sess.QuestionsAskedCount
			out.Max = sess.MaxQuestions
			if sess.SkillState != nil {
				out.Rubric = sess.SkillState.Rubric
			}
		}
		return out
	}
}

func (s *InterviewScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.lines = append(s.lines, line{role: iv.RoleInterviewer, text: msg.Reply.Content})
	if msg.Max > 0 {
		s.asked = msg.Asked
		s.max = msg.Max
	}
	if msg.Rubric != nil {
		s.rubric = msg.Rubric
	}
	if msg.Stage == iv.StageDone {
		s.done = true
	}
	return s, nil
}
