package interview

import (
	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
)

// startedMsg carries the result of creating the session and asking the
// engine for its greeting.
type startedMsg struct {
	SessionID string
	Reply     *iv.Message
	Err       error
}

// replyMsg carries the interviewer's reply to one candidate turn plus a
// snapshot of the session counters for the header and summary.
type replyMsg struct {
	Reply  *iv.Message
	Stage  iv.Stage
	Asked  int
	Max    int
	Rubric *rubric.Tracker
	Err    error
}
