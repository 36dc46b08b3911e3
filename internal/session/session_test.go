package session

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/plan"
)

func TestNewAppliesDefaults(t *testing.T) {
	s := New("s1", Config{UserID: "u1"})

	if s.MaxQuestions != DefaultMaxQuestions {
		t.Errorf("MaxQuestions = %d, want %d", s.MaxQuestions, DefaultMaxQuestions)
	}
	if s.MaxFollowupsPerQuestion != DefaultMaxFollowupsPerQuestion {
		t.Errorf("MaxFollowupsPerQuestion = %d, want %d", s.MaxFollowupsPerQuestion, DefaultMaxFollowupsPerQuestion)
	}
	if s.Difficulty != interview.DifficultyMedium {
		t.Errorf("Difficulty = %q, want medium", s.Difficulty)
	}
	if s.Track != interview.TrackEngineer {
		t.Errorf("Track = %q, want engineer", s.Track)
	}
	if s.Stage != interview.StageIntro {
		t.Errorf("Stage = %q, want intro", s.Stage)
	}
	if got := len(s.SkillState.Plan.Slots); got != s.MaxQuestions {
		t.Errorf("plan has %d slots, want %d", got, s.MaxQuestions)
	}
}

func TestNewClampsBehavioralTarget(t *testing.T) {
	if s := New("s1", Config{BehavioralTarget: -1}); s.BehavioralQuestionsTarget != 0 {
		t.Errorf("negative target clamped to %d, want 0", s.BehavioralQuestionsTarget)
	}
	if s := New("s2", Config{BehavioralTarget: 9}); s.BehavioralQuestionsTarget != 3 {
		t.Errorf("oversized target clamped to %d, want 3", s.BehavioralQuestionsTarget)
	}
}

func TestEffectiveDifficulty(t *testing.T) {
	fixed := New("s1", Config{Difficulty: interview.DifficultyHard})
	if got := fixed.EffectiveDifficulty(); got != interview.DifficultyHard {
		t.Errorf("fixed session difficulty = %q, want hard", got)
	}

	adaptive := New("s2", Config{Difficulty: interview.DifficultyHard, Adaptive: true})
	if got := adaptive.EffectiveDifficulty(); got != interview.DifficultyEasy {
		t.Errorf("adaptive session starts at %q, want easy", got)
	}
	adaptive.DifficultyCurrent = interview.DifficultyMedium
	if got := adaptive.EffectiveDifficulty(); got != interview.DifficultyMedium {
		t.Errorf("adaptive session tracks current, got %q", got)
	}
}

func TestInWarmup(t *testing.T) {
	s := New("s1", Config{})
	for _, stage := range []interview.Stage{
		interview.StageIntro,
		interview.StageWarmup,
		interview.StageWarmupSmalltalk,
		interview.StageWarmupBehavioral,
	} {
		s.Stage = stage
		if !s.InWarmup() {
			t.Errorf("InWarmup() false at %q", stage)
		}
	}
	s.Stage = interview.StageCandidateSolution
	if s.InWarmup() {
		t.Error("InWarmup() true in candidate_solution")
	}
}

func TestRetryCounterResetsOnQuestionChange(t *testing.T) {
	var r RetryCounter
	if got := r.Bump("q1"); got != 1 {
		t.Errorf("first bump = %d", got)
	}
	if got := r.Bump("q1"); got != 2 {
		t.Errorf("second bump = %d", got)
	}
	if got := r.For("other"); got != 0 {
		t.Errorf("For(other) = %d, want 0", got)
	}
	if got := r.Bump("q2"); got != 1 {
		t.Errorf("bump after question change = %d, want 1", got)
	}
}

func TestStateDefaultForwardFills(t *testing.T) {
	// A blob from an older build: no version, no rubric.
	var st State
	if err := json.Unmarshal([]byte(`{"last_preface":-1}`), &st); err != nil {
		t.Fatal(err)
	}
	st.Default()

	if st.Version != StateVersion {
		t.Errorf("Version = %d, want %d", st.Version, StateVersion)
	}
	if st.Rubric == nil {
		t.Fatal("rubric not initialized")
	}
}

func TestRecordAskedTags(t *testing.T) {
	st := NewState()
	st.RecordAskedTags([]string{"arrays", "hashing"}, true)
	st.RecordAskedTags([]string{"hashing", "graphs"}, false)

	want := []string{"arrays", "hashing", "graphs"}
	if len(st.UsedTags) != len(want) {
		t.Fatalf("UsedTags = %v, want %v", st.UsedTags, want)
	}
	for i, tag := range want {
		if st.UsedTags[i] != tag {
			t.Errorf("UsedTags[%d] = %q, want %q", i, st.UsedTags[i], tag)
		}
	}
	// The behavioral pick must not overwrite the technical tags.
	if len(st.PrevTechnicalTags) != 2 || st.PrevTechnicalTags[0] != "arrays" {
		t.Errorf("PrevTechnicalTags = %v, want the last technical question's tags", st.PrevTechnicalTags)
	}
}

func TestPlanKindAtMatchesBuild(t *testing.T) {
	s := New("s1", Config{BehavioralTarget: 2, Track: interview.TrackEngineer})
	p := s.SkillState.Plan

	if p.KindAt(1) == plan.SlotBehavioral {
		t.Error("position 1 must never be behavioral")
	}
	behavioral := 0
	for pos := 1; pos <= s.MaxQuestions; pos++ {
		if p.KindAt(pos) == plan.SlotBehavioral {
			behavioral++
		}
	}
	if behavioral != 2 {
		t.Errorf("plan has %d behavioral slots, want 2", behavioral)
	}
}
