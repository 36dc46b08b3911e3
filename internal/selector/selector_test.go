package selector

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
)

func testSession() *session.Session {
	return session.New("sess-1", session.Config{
		UserID:           "user-1",
		Track:            interview.TrackEngineer,
		CompanyStyle:     "general",
		Difficulty:       interview.DifficultyMedium,
		MaxQuestions:     7,
		BehavioralTarget: 2,
	})
}

func addQuestion(t *testing.T, mem *store.Memory, q interview.Question) {
	t.Helper()
	if q.CompanyStyle == "" {
		q.CompanyStyle = "general"
	}
	if q.Difficulty == "" {
		q.Difficulty = interview.DifficultyMedium
	}
	if err := mem.Questions().Create(context.Background(), &q); err != nil {
		t.Fatalf("create question: %v", err)
	}
}

func codingQuestion(id string, tags ...string) interview.Question {
	return interview.Question{
		ID: id, Track: interview.TrackEngineer, Title: id, Prompt: "prompt " + id,
		QuestionType: interview.TypeCoding, Tags: tags,
	}
}

func behavioralQuestion(id string) interview.Question {
	return interview.Question{
		ID: id, Track: interview.TrackBehavioral, Title: id, Prompt: "tell me about " + id,
		QuestionType: interview.TypeBehavioral,
	}
}

func newSelector(mem *store.Memory) *Selector {
	return New(mem.Questions(), mem.History(), rand.New(rand.NewSource(42)))
}

func TestPickNext_HonorsBehavioralSlot(t *testing.T) {
	mem := store.NewMemory()
	addQuestion(t, mem, codingQuestion("c1", "arrays"))
	addQuestion(t, mem, behavioralQuestion("b1"))

	sess := testSession() // plan for 7 with behavioral at 3 and 5
	sess.QuestionsAskedCount = 2 // next position is 3: behavioral

	q, err := newSelector(mem).PickNext(context.Background(), sess)
	if err != nil {
		t.Fatalf("PickNext: %v", err)
	}
	if q.QuestionType != interview.TypeBehavioral {
		t.Errorf("picked %s (%s), want behavioral", q.ID, q.QuestionType)
	}
}

func TestPickNext_TechnicalSlot(t *testing.T) {
	mem := store.NewMemory()
	addQuestion(t, mem, codingQuestion("c1", "arrays"))
	addQuestion(t, mem, behavioralQuestion("b1"))

	sess := testSession()
	sess.QuestionsAskedCount = 0 // position 1 is never behavioral

	q, err := newSelector(mem).PickNext(context.Background(), sess)
	if err != nil {
		t.Fatalf("PickNext: %v", err)
	}
	if q.ID != "c1" {
		t.Errorf("picked %s, want c1", q.ID)
	}
}

func TestPickNext_NeverRepeatsWithinSession(t *testing.T) {
	mem := store.NewMemory()
	for i := 0; i < 5; i++ {
		addQuestion(t, mem, codingQuestion(fmt.Sprintf("c%d", i), "arrays"))
	}

	sel := newSelector(mem)
	sess := testSession()
	picked := make(map[string]bool)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		q, err := sel.PickNext(ctx, sess)
		if err != nil {
			t.Fatalf("pick %d: %v", i, err)
		}
		if picked[q.ID] {
			t.Fatalf("question %s picked twice", q.ID)
		}
		picked[q.ID] = true
		if err := mem.History().MarkAsked(ctx, sess.ID, q.ID); err != nil {
			t.Fatalf("mark asked: %v", err)
		}
		sess.QuestionsAskedCount++
	}

	if _, err := sel.PickNext(ctx, sess); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("exhausted pool error = %v, want ErrPoolExhausted", err)
	}
}

func TestPickTechnical_SeenIsSoftExclusion(t *testing.T) {
	mem := store.NewMemory()
	addQuestion(t, mem, codingQuestion("seen-1", "arrays"))
	addQuestion(t, mem, codingQuestion("fresh-1", "strings"))
	ctx := context.Background()
	if err := mem.History().MarkSeen(ctx, "user-1", "seen-1"); err != nil {
		t.Fatal(err)
	}

	sel := newSelector(mem)
	sess := testSession()

	// Fresh question wins while one exists.
	for i := 0; i < 10; i++ {
		q, err := sel.PickNext(ctx, sess)
		if err != nil {
			t.Fatalf("PickNext: %v", err)
		}
		if q.ID == "seen-1" {
			t.Fatal("seen question picked while an unseen one existed")
		}
	}

	// With everything seen, the exclusion is bypassed.
	if err := mem.History().MarkSeen(ctx, "user-1", "fresh-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := sel.PickNext(ctx, sess); err != nil {
		t.Errorf("PickNext with all-seen pool: %v, want a question", err)
	}
}

func TestPickTechnical_RubricGapAlignment(t *testing.T) {
	mem := store.NewMemory()
	// Three aligned questions and three unaligned; the +10 alignment
	// bonus puts all aligned ones in the top bucket.
	for i := 0; i < 3; i++ {
		q := codingQuestion(fmt.Sprintf("aligned-%d", i), "misc")
		q.EvaluationFocus = []string{rubric.FocusEdgeCases}
		addQuestion(t, mem, q)
	}
	for i := 0; i < 3; i++ {
		addQuestion(t, mem, codingQuestion(fmt.Sprintf("plain-%d", i), "misc"))
	}

	sess := testSession()
	turn := rubric.TurnScores{
		rubric.DimCommunication:  7,
		rubric.DimProblemSolving: 7,
		rubric.DimCorrectness:    7,
		rubric.DimComplexity:     7,
		rubric.DimEdgeCases:      2, // critical gap
	}
	sess.SkillState.Rubric.Update(turn, false)

	sel := newSelector(mem)
	for i := 0; i < 10; i++ {
		q, err := sel.PickNext(context.Background(), sess)
		if err != nil {
			t.Fatalf("PickNext: %v", err)
		}
		if len(q.EvaluationFocus) == 0 {
			t.Fatalf("picked unaligned question %s despite a critical edge-case gap", q.ID)
		}
	}
}

func TestPickBehavioral_RelaxesToGeneralStyle(t *testing.T) {
	mem := store.NewMemory()
	q := behavioralQuestion("b-general")
	q.Difficulty = interview.DifficultyHard // no medium behavioral exists
	addQuestion(t, mem, q)

	sess := testSession()
	got, err := newSelector(mem).PickBehavioral(context.Background(), sess)
	if err != nil {
		t.Fatalf("PickBehavioral: %v", err)
	}
	if got.ID != "b-general" {
		t.Errorf("picked %s, want b-general", got.ID)
	}
}

func TestPickNext_FallsBackToAnyQuestion(t *testing.T) {
	mem := store.NewMemory()
	// Only a question from a different track exists.
	q := codingQuestion("other-track")
	q.Track = "data"
	addQuestion(t, mem, q)

	sess := testSession()
	got, err := newSelector(mem).PickNext(context.Background(), sess)
	if err != nil {
		t.Fatalf("PickNext: %v", err)
	}
	if got.ID != "other-track" {
		t.Errorf("picked %s, want other-track", got.ID)
	}
}
