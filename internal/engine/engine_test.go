package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/selector"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
)

func newTestEngine(mem *store.Memory, provider llm.Provider) *Engine {
	rnd := rand.New(rand.NewSource(7))
	return New(Config{
		Sessions:  mem.Sessions(),
		Messages:  mem.Messages(),
		Questions: mem.Questions(),
		History:   mem.History(),
		Selector:  selector.New(mem.Questions(), mem.History(), rnd),
		Gateway:   NewGateway(provider),
		Rand:      rnd,
		Now: func() time.Time {
			return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
		},
	})
}

func seedQuestion(t *testing.T, mem *store.Memory, q interview.Question) *interview.Question {
	t.Helper()
	if q.Track == "" {
		q.Track = interview.TrackEngineer
	}
	if q.CompanyStyle == "" {
		q.CompanyStyle = interview.CompanyStyleGeneral
	}
	if q.Difficulty == "" {
		q.Difficulty = interview.DifficultyMedium
	}
	if err := mem.Questions().Create(context.Background(), &q); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return &q
}

func seedCodingBank(t *testing.T, mem *store.Memory) {
	t.Helper()
	seedQuestion(t, mem, interview.Question{
		ID: "two-sum", Title: "Two Sum",
		Prompt:       "Given an array of integers and a target, return the indices of two numbers that add up to the target.",
		QuestionType: interview.TypeCoding, Tags: []string{"arrays", "hashing"},
		Followups: []string{"What's the time complexity of your solution?"},
	})
	seedQuestion(t, mem, interview.Question{
		ID: "lru-cache", Title: "LRU Cache",
		Prompt:       "Design a least-recently-used cache with O(1) get and put operations.",
		QuestionType: interview.TypeCoding, Tags: []string{"design", "hashing"},
	})
	seedQuestion(t, mem, interview.Question{
		ID: "merge-intervals", Title: "Merge Intervals",
		Prompt:       "Given a list of intervals, merge all overlapping intervals and return the result.",
		QuestionType: interview.TypeCoding, Tags: []string{"sorting", "intervals"},
	})
}

// newMainSession puts a session directly into the main question phase
// with q as the current question.
func newMainSession(t *testing.T, mem *store.Memory, q *interview.Question, cfg session.Config) *session.Session {
	t.Helper()
	ctx := context.Background()
	if cfg.UserID == "" {
		cfg.UserID = "user-1"
	}
	sess := session.New("sess-1", cfg)
	sess.Stage = interview.StageCandidateSolution
	sess.CurrentQuestionID = q.ID
	sess.QuestionsAskedCount = 1
	sess.SkillState.Warmup.Done = true
	if err := mem.Sessions().Create(ctx, sess); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := mem.History().MarkAsked(ctx, sess.ID, q.ID); err != nil {
		t.Fatalf("mark asked: %v", err)
	}
	return sess
}

func decisionResponse(t *testing.T, dec TurnDecision) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(dec)
	if err != nil {
		t.Fatalf("marshal decision: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

func TestStart_FallsBackToCannedGreeting(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	eng := newTestEngine(mem, nil)
	ctx := context.Background()

	sess := session.New("sess-1", session.Config{UserID: "user-1"})
	if err := mem.Sessions().Create(ctx, sess); err != nil {
		t.Fatal(err)
	}

	msg, err := eng.Start(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.Contains(msg.Content, "Good morning") {
		t.Errorf("greeting %q missing time-of-day opener", msg.Content)
	}
	if sess.Stage != interview.StageWarmup {
		t.Errorf("stage = %s, want warmup", sess.Stage)
	}

	if _, err := eng.Start(ctx, "sess-1"); err == nil {
		t.Error("second Start succeeded, want error")
	}
}

func TestStart_UsesProviderGreeting(t *testing.T) {
	const text = "Good morning, and welcome! I'm your interviewer today. How are you doing?"
	// Providers return schema-less output as raw text; a JSON-quoted
	// string must work as well.
	tests := []struct {
		name    string
		content json.RawMessage
	}{
		{"raw text", json.RawMessage(text)},
		{"quoted string", json.RawMessage(`"` + text + `"`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			seedCodingBank(t, mem)
			eng := newTestEngine(mem, llm.NewMockProvider(llm.MockResponse{Content: tt.content}))
			ctx := context.Background()

			sess := session.New("sess-1", session.Config{UserID: "user-1"})
			if err := mem.Sessions().Create(ctx, sess); err != nil {
				t.Fatal(err)
			}

			msg, err := eng.Start(ctx, "sess-1")
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			if msg.Content != text {
				t.Errorf("greeting = %q, want the provider's text", msg.Content)
			}
			if sess.Stage != interview.StageWarmup {
				t.Errorf("stage = %s, want warmup", sess.Stage)
			}
		})
	}
}

func TestWarmupFlow_OfflineEndToEnd(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	seedQuestion(t, mem, interview.Question{
		ID: "bh-proud", Track: interview.TrackBehavioral, Title: "Proud project",
		Prompt:       "Tell me about a project you're proud of.",
		QuestionType: interview.TypeBehavioral,
	})
	eng := newTestEngine(mem, nil)
	ctx := context.Background()

	sess := session.New("sess-1", session.Config{UserID: "user-1", BehavioralTarget: 1})
	if err := mem.Sessions().Create(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Start(ctx, "sess-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Greeting reply with a reciprocal question gets acknowledged.
	msg, err := eng.HandleMessage(ctx, "sess-1", "Doing well, thanks! How about you?")
	if err != nil {
		t.Fatalf("greeting reply: %v", err)
	}
	if !strings.HasPrefix(msg.Content, "I'm doing well, thanks for asking!") {
		t.Errorf("reply %q missing reciprocal acknowledgement", msg.Content)
	}
	if sess.Stage != interview.StageWarmupSmalltalk {
		t.Fatalf("stage = %s, want warmup_smalltalk", sess.Stage)
	}

	// Smalltalk reply leads to the one warmup behavioral question.
	msg, err = eng.HandleMessage(ctx, "sess-1", "Work has been pretty busy lately.")
	if err != nil {
		t.Fatalf("smalltalk reply: %v", err)
	}
	if sess.Stage != interview.StageWarmupBehavioral {
		t.Fatalf("stage = %s, want warmup_behavioral", sess.Stage)
	}
	if sess.SkillState.Warmup.BehavioralQuestionID != "bh-proud" {
		t.Errorf("warmup behavioral id = %q", sess.SkillState.Warmup.BehavioralQuestionID)
	}
	if !strings.Contains(msg.Content, "Tell me about a project") {
		t.Errorf("reply %q missing behavioral prompt", msg.Content)
	}
	asked, _ := mem.History().AskedIDs(ctx, "sess-1")
	if len(asked) != 1 || asked[0] != "bh-proud" {
		t.Errorf("asked = %v, want warmup behavioral marked immediately", asked)
	}

	// Behavioral answer ends the warmup and asks the first main question.
	msg, err = eng.HandleMessage(ctx, "sess-1", "When I was at my last job I led a migration, and in the end it shipped.")
	if err != nil {
		t.Fatalf("behavioral reply: %v", err)
	}
	if sess.Stage != interview.StageCandidateSolution {
		t.Fatalf("stage = %s, want candidate_solution", sess.Stage)
	}
	if sess.QuestionsAskedCount != 1 {
		t.Errorf("questions asked = %d, want 1", sess.QuestionsAskedCount)
	}
	if !sess.SkillState.Warmup.Done {
		t.Error("warmup not marked done")
	}
	if msg.Content == "" {
		t.Error("empty first-question message")
	}
}

func TestWarmup_SkipsBehavioralWhenTargetZero(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	eng := newTestEngine(mem, nil)
	ctx := context.Background()

	sess := session.New("sess-1", session.Config{UserID: "user-1", BehavioralTarget: 0})
	if err := mem.Sessions().Create(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Start(ctx, "sess-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.HandleMessage(ctx, "sess-1", "I'm doing fine, thanks."); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.HandleMessage(ctx, "sess-1", "The weekend was quiet, mostly reading."); err != nil {
		t.Fatal(err)
	}
	if sess.Stage != interview.StageCandidateSolution {
		t.Fatalf("stage = %s, want candidate_solution (behavioral step skipped)", sess.Stage)
	}
	if sess.QuestionsAskedCount != 1 {
		t.Errorf("questions asked = %d, want 1", sess.QuestionsAskedCount)
	}
}

func TestThinBehavioralAnswer_DrawsSoftNudge(t *testing.T) {
	mem := store.NewMemory()
	q := seedQuestion(t, mem, interview.Question{
		ID: "bh-conflict", Track: interview.TrackBehavioral, Title: "Team conflict",
		Prompt:       "Tell me about a disagreement with a teammate.",
		QuestionType: interview.TypeBehavioral,
	})
	eng := newTestEngine(mem, nil)
	sess := newMainSession(t, mem, q, session.Config{})

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "We argued about code style once and then stopped arguing.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.FollowupsUsed != 1 {
		t.Errorf("followups used = %d, want 1", sess.FollowupsUsed)
	}
	if sess.Stage != interview.StageFollowups {
		t.Errorf("stage = %s, want followups", sess.Stage)
	}
	if sess.CurrentQuestionID != q.ID {
		t.Error("question changed; a nudge must keep the question")
	}
	if msg.Content == "" {
		t.Error("empty nudge")
	}
}

func TestClarificationRequest_RestatesWithoutConsumingFollowup(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q, _ := mem.Questions().Get(context.Background(), "two-sum")
	eng := newTestEngine(mem, nil)
	sess := newMainSession(t, mem, q, session.Config{})

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "Sorry, can you rephrase the question?")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.Contains(msg.Content, "Given an array of integers") {
		t.Errorf("restated reply %q missing the prompt", msg.Content)
	}
	if sess.FollowupsUsed != 0 {
		t.Errorf("followups used = %d, clarification must not consume one", sess.FollowupsUsed)
	}
	if sess.QuestionsAskedCount != 1 {
		t.Errorf("questions asked = %d, clarification must not advance", sess.QuestionsAskedCount)
	}
}

func TestMoveOn_AdvancesToNextQuestion(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q, _ := mem.Questions().Get(context.Background(), "two-sum")
	eng := newTestEngine(mem, nil)
	sess := newMainSession(t, mem, q, session.Config{})

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "Can we skip this one?")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.QuestionsAskedCount != 2 {
		t.Errorf("questions asked = %d, want 2", sess.QuestionsAskedCount)
	}
	if sess.CurrentQuestionID == q.ID {
		t.Error("current question unchanged after move-on")
	}
	hasPreface := false
	for _, p := range transitionPrefaces {
		if strings.Contains(msg.Content, p) {
			hasPreface = true
			break
		}
	}
	if !hasPreface {
		t.Errorf("reply %q missing a transition preface", msg.Content)
	}
}

func TestGatewayFailure_NeverSurfacesToCaller(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q, _ := mem.Questions().Get(context.Background(), "two-sum")
	// Empty mock: every Generate call fails with provider-unavailable.
	eng := newTestEngine(mem, llm.NewMockProvider())
	sess := newMainSession(t, mem, q, session.Config{})

	answer := "My approach is to use a hash map for lookups, and it works because each key maps to one index."
	msg, err := eng.HandleMessage(context.Background(), "sess-1", answer)
	if err != nil {
		t.Fatalf("gateway failure surfaced: %v", err)
	}
	if msg.Content == "" {
		t.Fatal("empty interviewer message after gateway failure")
	}
	if sess.QuestionsAskedCount != 2 {
		t.Errorf("questions asked = %d, want advance on an ok offline answer", sess.QuestionsAskedCount)
	}
}

func TestReconcile_SecondFollowupHonored(t *testing.T) {
	mem := store.NewMemory()
	q := seedQuestion(t, mem, interview.Question{
		ID: "concept-cap", Title: "CAP theorem",
		Prompt:       "Explain the CAP theorem and what it means for distributed databases.",
		QuestionType: interview.TypeConceptual,
	})
	provider := llm.NewMockProvider(decisionResponse(t, TurnDecision{
		Action:              ActionFollowup,
		Message:             "Which of the three would you give up for a shopping cart service?",
		AllowSecondFollowup: true,
		QuickRubric:         []float64{7, 7, 7, 7, 7},
		Confidence:          0.9,
	}))
	eng := newTestEngine(mem, provider)
	sess := newMainSession(t, mem, q, session.Config{})
	sess.FollowupsUsed = 1
	sess.Stage = interview.StageFollowups

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "The CAP theorem says a distributed database can only pick two of consistency, availability, and partition tolerance.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if msg.Content != "Which of the three would you give up for a shopping cart service?" {
		t.Errorf("reply = %q, want the controller's follow-up", msg.Content)
	}
	if sess.FollowupsUsed != 2 {
		t.Errorf("followups used = %d, want 2", sess.FollowupsUsed)
	}
	if sess.SkillState.Rubric.Turns() != 1 {
		t.Errorf("rubric turns = %d, want 1 (quick_rubric applied)", sess.SkillState.Rubric.Turns())
	}
}

func TestReconcile_LowConfidenceForcesAdvance(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q := seedQuestion(t, mem, interview.Question{
		ID: "concept-idx", Title: "Database indexes",
		Prompt:       "Explain how a database index speeds up queries and when it hurts.",
		QuestionType: interview.TypeConceptual,
	})
	provider := llm.NewMockProvider(decisionResponse(t, TurnDecision{
		Action:      ActionFollowup,
		Message:     "Can you say more?",
		QuickRubric: []float64{6, 6, 6, 6, 6},
		Confidence:  0.2,
	}))
	eng := newTestEngine(mem, provider)
	sess := newMainSession(t, mem, q, session.Config{})
	sess.FollowupsUsed = 1
	sess.Stage = interview.StageFollowups

	_, err := eng.HandleMessage(context.Background(), "sess-1", "An index is a sorted structure the database searches instead of scanning rows.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.QuestionsAskedCount != 2 {
		t.Errorf("questions asked = %d, want advance on confidence below 0.3", sess.QuestionsAskedCount)
	}
	if sess.FollowupsUsed != 0 {
		t.Errorf("followups used = %d, want reset after advance", sess.FollowupsUsed)
	}
}

func TestReconcile_EarlyWrapUpDowngraded(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q := seedQuestion(t, mem, interview.Question{
		ID: "concept-dns", Title: "DNS resolution",
		Prompt:       "Walk through what happens when a browser resolves a domain name.",
		QuestionType: interview.TypeConceptual,
	})
	provider := llm.NewMockProvider(decisionResponse(t, TurnDecision{
		Action:      ActionWrapUp,
		Message:     "Let's wrap up.",
		QuickRubric: []float64{8, 8, 8, 8, 8},
		Confidence:  0.9,
	}))
	eng := newTestEngine(mem, provider)
	sess := newMainSession(t, mem, q, session.Config{})

	_, err := eng.HandleMessage(context.Background(), "sess-1", "The browser asks the resolver, which walks the root, TLD, and authoritative servers to map the domain name.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.Stage == interview.StageWrapup {
		t.Error("wrap-up honored before 5 questions")
	}
	if sess.QuestionsAskedCount != 2 {
		t.Errorf("questions asked = %d, want downgrade to next-question", sess.QuestionsAskedCount)
	}
}

func TestReconcile_WrapUpHonoredAfterFiveQuestions(t *testing.T) {
	mem := store.NewMemory()
	q := seedQuestion(t, mem, interview.Question{
		ID: "concept-tls", Title: "TLS handshake",
		Prompt:       "Describe the TLS handshake at a high level.",
		QuestionType: interview.TypeConceptual,
	})
	provider := llm.NewMockProvider(decisionResponse(t, TurnDecision{
		Action:      ActionWrapUp,
		Message:     "Let's wrap up.",
		QuickRubric: []float64{8, 8, 8, 8, 8},
		Confidence:  0.9,
	}))
	eng := newTestEngine(mem, provider)
	sess := newMainSession(t, mem, q, session.Config{})
	sess.QuestionsAskedCount = 5

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "The client and server exchange hellos, agree on keys, and switch to encrypted traffic.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.Stage != interview.StageWrapup {
		t.Errorf("stage = %s, want wrapup", sess.Stage)
	}
	if msg.Content != wrapupMessage {
		t.Errorf("reply = %q, want wrapup message", msg.Content)
	}
}

func TestMaxQuestions_ForcesWrapupThenDone(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q, _ := mem.Questions().Get(context.Background(), "two-sum")
	eng := newTestEngine(mem, nil)
	sess := newMainSession(t, mem, q, session.Config{MaxQuestions: 1})
	ctx := context.Background()

	msg, err := eng.HandleMessage(ctx, "sess-1", "Skip this one please.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.Stage != interview.StageWrapup {
		t.Fatalf("stage = %s, want wrapup at max questions", sess.Stage)
	}
	if msg.Content != wrapupMessage {
		t.Errorf("reply = %q, want wrapup message", msg.Content)
	}
	if sess.QuestionsAskedCount > sess.MaxQuestions {
		t.Errorf("questions asked %d exceeds max %d", sess.QuestionsAskedCount, sess.MaxQuestions)
	}

	msg, err = eng.HandleMessage(ctx, "sess-1", "No questions from me, thanks!")
	if err != nil {
		t.Fatalf("wrapup reply: %v", err)
	}
	if sess.Stage != interview.StageDone {
		t.Errorf("stage = %s, want done", sess.Stage)
	}
	if msg.Content != closingMessage {
		t.Errorf("reply = %q, want closing message", msg.Content)
	}
}

func TestStaleQuestion_ClearedAndReselected(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	eng := newTestEngine(mem, nil)
	stale := &interview.Question{ID: "deleted-q", QuestionType: interview.TypeCoding}
	sess := newMainSession(t, mem, stale, session.Config{})

	msg, err := eng.HandleMessage(context.Background(), "sess-1", "Here is my answer to the question.")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.CurrentQuestionID == "" || sess.CurrentQuestionID == "deleted-q" {
		t.Errorf("current question = %q, want a reselected id", sess.CurrentQuestionID)
	}
	if msg.Content == "" {
		t.Error("empty reply after stale-question recovery")
	}
}

func TestOffTopic_ReanchorsOncePerQuestion(t *testing.T) {
	mem := store.NewMemory()
	seedCodingBank(t, mem)
	q := seedQuestion(t, mem, interview.Question{
		ID: "graph-bfs", Title: "Shortest path in a grid",
		Prompt:       "Find the shortest path between two cells in a grid with obstacles using breadth first search over neighbors.",
		QuestionType: interview.TypeCoding, Tags: []string{"graphs"},
	})
	eng := newTestEngine(mem, nil)
	sess := newMainSession(t, mem, q, session.Config{})
	ctx := context.Background()

	offTopic := "My favorite restaurant downtown serves an amazing breakfast sandwich on weekdays honestly."
	msg, err := eng.HandleMessage(ctx, "sess-1", offTopic)
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if sess.CurrentQuestionID != q.ID {
		t.Fatal("first off-topic reply must re-anchor, not advance")
	}
	if !strings.Contains(msg.Content, "Find the shortest path") {
		t.Errorf("reanchor reply %q missing the prompt", msg.Content)
	}

	// Second offense escalates to the next question.
	if _, err := eng.HandleMessage(ctx, "sess-1", offTopic); err != nil {
		t.Fatalf("second off-topic reply: %v", err)
	}
	if sess.CurrentQuestionID == q.ID {
		t.Error("repeat off-topic reply must advance")
	}
}
