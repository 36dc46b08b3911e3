package session

import (
	"github.com/abhisek/intervu/internal/plan"
	"github.com/abhisek/intervu/internal/rubric"
)

// StateVersion is the current skill-state blob version. Older blobs are
// defaulted forward on load.
const StateVersion = 1

// Warmup is the greeting/smalltalk sub-state.
type Warmup struct {
	Step                 int    `json:"step"`
	Done                 bool   `json:"done"`
	BehavioralQuestionID string `json:"behavioral_question_id,omitempty"`
	Tone                 string `json:"tone,omitempty"`
	Energy               string `json:"energy,omitempty"`
	SmalltalkTopic       string `json:"smalltalk_topic,omitempty"`
}

// Focus holds the candidate's self-reported weak areas, used to steer
// question selection.
type Focus struct {
	Dimensions []string `json:"dimensions,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// RetryCounter tracks per-question retry attempts. It resets whenever
// the tracked question changes.
type RetryCounter struct {
	QuestionID string `json:"qid,omitempty"`
	Count      int    `json:"count"`
}

// Bump increments the counter for questionID, resetting first if the
// question changed. Returns the new count.
func (r *RetryCounter) Bump(questionID string) int {
	if r.QuestionID != questionID {
		r.QuestionID = questionID
		r.Count = 0
	}
	r.Count++
	return r.Count
}

// For returns the current count for questionID (0 if the counter is
// tracking a different question).
func (r *RetryCounter) For(questionID string) int {
	if r.QuestionID != questionID {
		return 0
	}
	return r.Count
}

// State is the versioned skill-state blob persisted with each session.
// One struct instead of nested ad hoc JSON: every sub-state has its own
// type and defaults cleanly on load.
type State struct {
	Version int             `json:"version"`
	Rubric  *rubric.Tracker `json:"rubric"`
	Warmup  Warmup          `json:"warmup"`
	Focus   Focus           `json:"focus"`
	Plan    plan.Plan       `json:"plan"`

	Reanchor RetryCounter `json:"reanchor"`
	Clarify  RetryCounter `json:"clarify"`

	// LastPreface avoids reusing the same transition preface
	// back-to-back.
	LastPreface int `json:"last_preface"`

	// UsedTags are tags of questions already asked this session,
	// feeding the selector's diversity bonus.
	UsedTags []string `json:"used_tags,omitempty"`

	// PrevTechnicalTags are the tags of the immediately-preceding
	// technical question, penalized on the next pick.
	PrevTechnicalTags []string `json:"prev_technical_tags,omitempty"`
}

// NewState returns a State with the current version and an initialized
// rubric tracker.
func NewState() *State {
	return &State{
		Version:     StateVersion,
		Rubric:      rubric.NewTracker(),
		LastPreface: -1,
	}
}

// Default fills in anything missing after deserialization.
func (s *State) Default() {
	if s.Version == 0 {
		s.Version = StateVersion
	}
	if s.Rubric == nil {
		s.Rubric = rubric.NewTracker()
	}
	s.Rubric.EnsureDims()
}

// RecordAskedTags folds a question's tags into the used set and
// remembers them as the previous technical tags when technical is true.
func (s *State) RecordAskedTags(tags []string, technical bool) {
	seen := make(map[string]bool, len(s.UsedTags))
	for _, t := range s.UsedTags {
		seen[t] = true
	}
	for _, t := range tags {
		if !seen[t] {
			s.UsedTags = append(s.UsedTags, t)
			seen[t] = true
		}
	}
	if technical {
		s.PrevTechnicalTags = append([]string(nil), tags...)
	}
}
