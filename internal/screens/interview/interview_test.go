package interview

import (
	"context"
	"math/rand"
	"testing"

	"github.com/abhisek/intervu/internal/engine"
	domain "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/selector"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
)

func newTestScreen(t *testing.T) *InterviewScreen {
	t.Helper()
	mem := store.NewMemory()
	ctx := context.Background()

	questions := []*domain.Question{
		{
			ID:           "two-sum",
			Track:        domain.TrackEngineer,
			CompanyStyle: domain.CompanyStyleGeneral,
			Difficulty:   domain.DifficultyEasy,
			Title:        "Two Sum",
			Prompt:       "Find two numbers that add to a target.",
			QuestionType: domain.TypeCoding,
			Tags:         []string{"arrays"},
		},
		{
			ID:           "lru",
			Track:        domain.TrackEngineer,
			CompanyStyle: domain.CompanyStyleGeneral,
			Difficulty:   domain.DifficultyEasy,
			Title:        "LRU Cache",
			Prompt:       "Design an LRU cache.",
			QuestionType: domain.TypeCoding,
			Tags:         []string{"design"},
		},
	}
	for _, q := range questions {
		if err := mem.Questions().Create(ctx, q); err != nil {
			t.Fatal(err)
		}
	}

	rnd := rand.New(rand.NewSource(11))
	eng := engine.New(engine.Config{
		Sessions:  mem.Sessions(),
		Messages:  mem.Messages(),
		Questions: mem.Questions(),
		History:   mem.History(),
		Selector:  selector.New(mem.Questions(), mem.History(), rnd),
		Rand:      rnd,
	})

	cfg := session.Config{
		UserID:           "tester",
		Track:            domain.TrackEngineer,
		Difficulty:       domain.DifficultyEasy,
		BehavioralTarget: 0,
	}
	return New(eng, mem.Sessions(), cfg)
}

func TestStartCreatesSessionAndGreets(t *testing.T) {
	s := newTestScreen(t)

	msg := s.start()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("expected startedMsg, got %T", msg)
	}
	if started.Err != nil {
		t.Fatalf("start: %v", started.Err)
	}

	s.handleStarted(started)

	if s.sessionID == "" {
		t.Error("session id not recorded")
	}
	if len(s.lines) != 1 {
		t.Fatalf("expected 1 transcript line, got %d", len(s.lines))
	}
	if s.lines[0].role != domain.RoleInterviewer {
		t.Errorf("greeting role = %q", s.lines[0].role)
	}
	if s.waiting {
		t.Error("screen still waiting after greeting")
	}
	if s.Status() == "" {
		t.Error("expected a question-progress status after start")
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	s := newTestScreen(t)
	started := s.start()().(startedMsg)
	if started.Err != nil {
		t.Fatal(started.Err)
	}
	s.handleStarted(started)

	s.input.Model.SetValue("Hi! Doing well, thanks.")
	_, cmd := s.submit()
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	if !s.waiting {
		t.Error("expected waiting while the engine runs")
	}
	if len(s.lines) != 2 {
		t.Fatalf("candidate line not appended, have %d lines", len(s.lines))
	}

	reply, ok := cmd().(replyMsg)
	if !ok {
		t.Fatal("expected replyMsg")
	}
	if reply.Err != nil {
		t.Fatalf("reply: %v", reply.Err)
	}

	s.handleReply(reply)
	if s.waiting {
		t.Error("still waiting after reply")
	}
	if len(s.lines) != 3 {
		t.Fatalf("interviewer reply not appended, have %d lines", len(s.lines))
	}
	if s.lines[2].role != domain.RoleInterviewer {
		t.Errorf("reply role = %q", s.lines[2].role)
	}
}

func TestSubmitIgnoresEmptyInput(t *testing.T) {
	s := newTestScreen(t)
	started := s.start()().(startedMsg)
	s.handleStarted(started)

	s.input.Model.SetValue("   ")
	_, cmd := s.submit()
	if cmd != nil {
		t.Error("blank input should not reach the engine")
	}
	if len(s.lines) != 1 {
		t.Errorf("transcript grew on blank input: %d lines", len(s.lines))
	}
}

func TestDoneStageLocksInput(t *testing.T) {
	s := newTestScreen(t)
	started := s.start()().(startedMsg)
	s.handleStarted(started)

	s.handleReply(replyMsg{
		Reply: &domain.Message{Role: domain.RoleInterviewer, Content: "Thanks for your time."},
		Stage: domain.StageDone,
		Asked: 1,
		Max:   7,
	})

	if !s.done {
		t.Fatal("done stage not latched")
	}
	s.input.Model.SetValue("one more thing")
	if _, cmd := s.submit(); cmd != nil {
		t.Error("submit after done should be a no-op")
	}
}
