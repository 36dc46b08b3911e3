package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/intervu/internal/classify"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/textsig"
)

// Confidence cutoffs for reconciling the controller's decision.
const (
	minConfidenceSecondFollowup = 0.5
	minConfidenceHonorFollowup  = 0.3
	minConfidenceIntent         = 0.55
)

// maxClarifyAttempts bounds how often critical gaps can hold a question
// open against the controller's wish to move on.
const maxClarifyAttempts = 2

// maxReanchorNudges bounds off-topic redirection per question; a repeat
// offense escalates to the next question.
const maxReanchorNudges = 1

// mainTurn processes one candidate message during the main question
// phase: classify, short-circuit, or reconcile the controller's
// decision into exactly one interviewer message.
func (e *Engine) mainTurn(ctx context.Context, sess *session.Session, text string) (string, error) {
	q, err := e.currentQuestion(ctx, sess)
	if errors.Is(err, store.ErrNotFound) {
		return e.advance(ctx, sess, "Let's look at a different question.")
	}
	if err != nil {
		return "", fmt.Errorf("load current question: %w", err)
	}

	if classify.IsClarificationRequest(text) {
		// Restating never consumes a follow-up.
		return restate(q), nil
	}
	if classify.IsMoveOn(text) || classify.IsDontKnow(text) {
		return e.advance(ctx, sess, nextPreface(sess))
	}

	sig := textsig.Extract(text)
	missing := missingFocus(q.QuestionType, text, sig)
	quality := classify.ResponseQuality(text, q.QuestionType, sig)

	kw := textsig.Keywords(q.Title + " " + q.Prompt)
	if classify.IsOffTopic(kw, text, sig) {
		if sess.SkillState.Reanchor.For(q.ID) < maxReanchorNudges {
			sess.SkillState.Reanchor.Bump(q.ID)
			return reanchorNudges[sess.QuestionsAskedCount%len(reanchorNudges)] + q.Prompt, nil
		}
		return e.advance(ctx, sess, nextPreface(sess))
	}

	if classify.IsNonInformative(text) || classify.IsVague(text) {
		return e.ambiguousTurn(ctx, sess, q, text)
	}

	if classify.IsThinResponse(text, q.QuestionType, sig) {
		return e.softNudge(ctx, sess)
	}

	// First follow-up is forced locally when a critical element is
	// absent; the controller is not consulted.
	if sess.FollowupsUsed == 0 {
		if focus, critical := criticalMissing(q.QuestionType, text, sig); critical {
			return e.followup(ctx, sess, q, focus, "")
		}
	}

	dec, err := e.gw.TurnDecision(ctx, turnInput{
		QuestionType:     string(q.QuestionType),
		Difficulty:       string(q.Difficulty),
		QuestionTitle:    q.Title,
		QuestionPrompt:   q.Prompt,
		ExpectedTopics:   q.ExpectedTopics,
		Text:             text,
		Quality:          quality,
		MissingFocus:     missing,
		QuestionsAsked:   sess.QuestionsAskedCount,
		MaxQuestions:     sess.MaxQuestions,
		FollowupsUsed:    sess.FollowupsUsed,
		MaxFollowups:     sess.MaxFollowupsPerQuestion,
		WeakestDimension: sess.SkillState.Rubric.WeakestDimension(),
	})
	if err != nil {
		return e.offlineDecision(ctx, sess, q, quality, missing)
	}
	return e.reconcile(ctx, sess, q, text, sig, quality, dec)
}

// ambiguousTurn handles replies too short for the heuristics to grade:
// ask the gateway for an intent call, act on it only above the
// confidence cutoff, otherwise nudge for substance.
func (e *Engine) ambiguousTurn(ctx context.Context, sess *session.Session, q *interview.Question, text string) (string, error) {
	cls, err := e.gw.ClassifyIntent(ctx, q.Title, text)
	if err == nil && cls.Confidence >= minConfidenceIntent {
		switch cls.Intent {
		case "move_on", "dont_know":
			return e.advance(ctx, sess, nextPreface(sess))
		case "clarification":
			return restate(q), nil
		}
	}
	return e.softNudge(ctx, sess)
}

// softNudge asks for more substance without changing the question,
// consuming one follow-up slot. At the follow-up cap it advances
// instead.
func (e *Engine) softNudge(ctx context.Context, sess *session.Session) (string, error) {
	if sess.FollowupsUsed >= sess.MaxFollowupsPerQuestion {
		return e.advance(ctx, sess, nextPreface(sess))
	}
	sess.FollowupsUsed++
	sess.Stage = interview.StageFollowups
	return softNudges[e.rnd.Intn(len(softNudges))], nil
}

// followup emits one follow-up question. body overrides the fallback
// chain when non-empty. At the follow-up cap it advances instead.
func (e *Engine) followup(ctx context.Context, sess *session.Session, q *interview.Question, focus, body string) (string, error) {
	if sess.FollowupsUsed >= sess.MaxFollowupsPerQuestion {
		return e.advance(ctx, sess, nextPreface(sess))
	}
	if body == "" {
		body = e.followupText(sess, q, focus)
	}
	sess.FollowupsUsed++
	sess.Stage = interview.StageFollowups
	return body, nil
}

// offlineDecision is the turn policy when the gateway is unavailable:
// weak responses draw a follow-up, anything else advances.
func (e *Engine) offlineDecision(ctx context.Context, sess *session.Session, q *interview.Question, quality classify.Quality, missing []string) (string, error) {
	if quality == classify.QualityWeak && sess.FollowupsUsed < sess.MaxFollowupsPerQuestion {
		focus := ""
		if len(missing) > 0 {
			focus = missing[0]
		}
		return e.followup(ctx, sess, q, focus, "")
	}
	return e.advance(ctx, sess, nextPreface(sess))
}

// reconcile applies local policy on top of the controller's proposal
// and executes the resulting action.
func (e *Engine) reconcile(ctx context.Context, sess *session.Session, q *interview.Question, text string, sig textsig.Signals, quality classify.Quality, dec *TurnDecision) (string, error) {
	st := sess.SkillState

	if len(dec.QuickRubric) == len(rubric.Dimensions) {
		turn := make(rubric.TurnScores, len(rubric.Dimensions))
		for i, d := range rubric.Dimensions {
			turn[d] = dec.QuickRubric[i]
		}
		st.Rubric.Update(turn, q.QuestionType == interview.TypeBehavioral)
		sess.DifficultyCurrent = st.Rubric.BumpDifficulty(sess.DifficultyCurrent, sess.Difficulty, sess.Adaptive)
	}

	_, critical := criticalMissing(q.QuestionType, text, sig)
	action := dec.Action

	// Wrap-up only once the interview has substance behind it.
	if action == ActionWrapUp && sess.QuestionsAskedCount < 5 {
		action = ActionMoveOn
	}

	if action == ActionFollowup {
		switch {
		case dec.Confidence < minConfidenceHonorFollowup && sess.FollowupsUsed >= 1:
			action = ActionMoveOn
		case sess.FollowupsUsed >= sess.MaxFollowupsPerQuestion:
			action = ActionMoveOn
		case sess.FollowupsUsed >= 1 && (!dec.AllowSecondFollowup || dec.Confidence < minConfidenceSecondFollowup):
			action = ActionMoveOn
		case sess.FollowupsUsed == 0 && quality != classify.QualityWeak && !critical:
			// Solid first answer: probing further wastes a slot.
			action = ActionMoveOn
		}
	}

	if action == ActionMoveOn {
		gaps := st.Rubric.CriticalGaps(rubric.DefaultGapThreshold)
		if (critical || len(gaps) > 0) &&
			st.Clarify.For(q.ID) < maxClarifyAttempts &&
			sess.FollowupsUsed < sess.MaxFollowupsPerQuestion {
			st.Clarify.Bump(q.ID)
			focus := dec.NextFocus
			if focus == "" && len(gaps) > 0 {
				focus = gaps[0]
			}
			return e.followup(ctx, sess, q, focus, "")
		}
	}

	switch action {
	case ActionFollowup:
		return e.followup(ctx, sess, q, dec.NextFocus, dec.Message)
	case ActionWrapUp:
		sess.Stage = interview.StageWrapup
		return wrapupMessage, nil
	default:
		return e.advance(ctx, sess, nextPreface(sess))
	}
}

// criticalMissing reports whether a critical response element is absent:
// approach or correctness for technical questions (code with no
// explained approach counts), two or more missing STAR parts for
// behavioral ones.
func criticalMissing(qt interview.QuestionType, text string, sig textsig.Signals) (string, bool) {
	switch {
	case qt.IsTechnical():
		if !sig.MentionsApproach {
			return "approach", true
		}
		if !sig.MentionsCorrectness {
			return "correctness", true
		}
	case qt == interview.TypeBehavioral:
		if len(textsig.MissingSTARParts(text)) >= 2 {
			return "star", true
		}
	}
	return "", false
}

func restate(q *interview.Question) string {
	return "Of course. Here it is again: " + q.Prompt
}
