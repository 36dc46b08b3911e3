package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/session"
)

// warmupTurn advances the greeting -> smalltalk -> warmup-behavioral
// sub-state-machine by one candidate reply.
func (e *Engine) warmupTurn(ctx context.Context, sess *session.Session, text string) (string, error) {
	switch sess.Stage {
	case interview.StageWarmup:
		return e.warmupGreetingReply(ctx, sess, text)
	case interview.StageWarmupSmalltalk:
		return e.warmupSmalltalkReply(ctx, sess, text)
	case interview.StageWarmupBehavioral:
		return e.warmupBehavioralReply(ctx, sess)
	}
	// StageIntro: the candidate spoke before Start was called. Greet and
	// pick up the normal flow.
	sess.Stage = interview.StageWarmup
	sess.SkillState.Warmup.Step = 1
	return cannedGreeting(e.now()), nil
}

// warmupGreetingReply handles the reply to the opening greeting: read
// tone and topic, acknowledge a reciprocal question, ask one smalltalk
// question.
func (e *Engine) warmupGreetingReply(ctx context.Context, sess *session.Session, text string) (string, error) {
	ack := reciprocalAck(text)

	wu := &sess.SkillState.Warmup
	wu.Tone = "neutral"
	wu.Energy = "medium"
	topic := inferSmalltalkTopic(text)
	question := ""

	if cls, err := e.gw.ClassifyWarmup(ctx, text); err == nil {
		if cls.Tone != "" {
			wu.Tone = cls.Tone
		}
		if cls.Energy != "" {
			wu.Energy = cls.Energy
		}
		if cls.Topic != "" {
			topic = cls.Topic
		}
		question = cls.SmalltalkQuestion
	}
	if question == "" {
		question = cannedSmalltalk(topic, wu.Tone)
	}

	wu.SmalltalkTopic = topic
	wu.Step = 2
	sess.Stage = interview.StageWarmupSmalltalk

	return ack + question, nil
}

// warmupSmalltalkReply handles the smalltalk answer: either ask the one
// warmup behavioral question, or, when the behavioral target is zero,
// go straight to the main questions.
func (e *Engine) warmupSmalltalkReply(ctx context.Context, sess *session.Session, text string) (string, error) {
	ack := reciprocalAck(text)

	if sess.BehavioralQuestionsTarget == 0 {
		reply, err := e.finishWarmup(ctx, sess, "Great. Let's get started with the first question.")
		return ack + reply, err
	}

	q, err := e.sel.PickBehavioral(ctx, sess)
	if err != nil {
		// No behavioral questions in the bank: skip the warmup question.
		reply, ferr := e.finishWarmup(ctx, sess, "Great. Let's get started with the first question.")
		return ack + reply, ferr
	}

	// Marked asked immediately so the main behavioral slots never
	// reselect it.
	if err := e.markAsked(ctx, sess, q); err != nil {
		return "", err
	}

	wu := &sess.SkillState.Warmup
	wu.BehavioralQuestionID = q.ID
	wu.Step = 3
	sess.Stage = interview.StageWarmupBehavioral

	return ack + fmt.Sprintf("Nice. To ease us in, a quick one about you: %s", q.Prompt), nil
}

// warmupBehavioralReply closes the warmup after the candidate answers
// the warmup behavioral question.
func (e *Engine) warmupBehavioralReply(ctx context.Context, sess *session.Session) (string, error) {
	return e.finishWarmup(ctx, sess, "Thanks for sharing that. Let's move into the main questions.")
}

// finishWarmup marks the warmup done and asks the first main question.
func (e *Engine) finishWarmup(ctx context.Context, sess *session.Session, preface string) (string, error) {
	sess.SkillState.Warmup.Done = true
	sess.Stage = interview.StageWarmupDone
	return e.advance(ctx, sess, preface)
}
