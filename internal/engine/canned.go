package engine

import (
	"strings"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/textsig"
)

// cannedGreeting is the offline greeting, aware of the time of day.
func cannedGreeting(now time.Time) string {
	return "Good " + timeOfDay(now) + "! Thanks for joining today's mock interview. I'll be your interviewer. Before we get started, how are you doing?"
}

func timeOfDay(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// reciprocalPhrases detect the candidate turning a smalltalk question
// back on the interviewer.
var reciprocalPhrases = []string{
	"how are you", "how about you", "what about you", "and you",
	"and yourself", "how's your", "hows your",
}

// reciprocalAck returns an acknowledgement prefix when the candidate
// asked a reciprocal question, or "" otherwise.
func reciprocalAck(text string) string {
	lower := strings.ToLower(text)
	for _, p := range reciprocalPhrases {
		if strings.Contains(lower, p) {
			return "I'm doing well, thanks for asking! "
		}
	}
	return ""
}

// smalltalkKeywords map a topic to the words that suggest it.
var smalltalkKeywords = map[string][]string{
	"school":  {"school", "class", "classes", "semester", "university", "college", "exam", "studying", "course"},
	"project": {"project", "building", "side project", "hackathon", "prototype"},
	"work":    {"work", "job", "office", "team", "company", "sprint"},
	"commute": {"commute", "traffic", "train", "bus", "drive", "driving"},
	"weekend": {"weekend", "saturday", "sunday"},
	"weather": {"weather", "rain", "raining", "sunny", "snow", "cold", "hot"},
}

// smalltalkTopicOrder keeps inference deterministic when several topics
// match.
var smalltalkTopicOrder = []string{"school", "project", "work", "commute", "weekend", "weather"}

// inferSmalltalkTopic picks a smalltalk topic from the reply's keywords,
// or "" when nothing matches.
func inferSmalltalkTopic(text string) string {
	lower := strings.ToLower(text)
	for _, topic := range smalltalkTopicOrder {
		for _, kw := range smalltalkKeywords[topic] {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
	}
	return ""
}

var smalltalkQuestions = map[string]string{
	"school":  "How's the semester treating you so far?",
	"project": "What are you building at the moment? I'd love to hear a little about it.",
	"work":    "How have things been at work lately?",
	"commute": "Was the trip over here alright?",
	"weekend": "Did you get up to anything fun this weekend?",
	"weather": "Has the weather been cooperating where you are?",
}

// cannedSmalltalk returns a smalltalk question for the topic, falling
// back to a tone-based generic question.
func cannedSmalltalk(topic, tone string) string {
	if q, ok := smalltalkQuestions[topic]; ok {
		return q
	}
	if tone == "nervous" || tone == "flat" {
		return "No pressure today, this is just practice. Before we dive in, what have you been up to lately?"
	}
	return "Glad to hear it! Before we dive in, what have you been up to lately?"
}

// transitionPrefaces rotate in front of question transitions, keyed by
// questions_asked_count and never repeated back-to-back.
var transitionPrefaces = []string{
	"Alright, let's move on.",
	"Good, let's switch gears.",
	"Okay, next one.",
	"Let's keep going.",
	"Sounds good. Here's another one.",
}

// nextPreface picks the transition preface for a session's next advance,
// recording it so the same preface is never used twice in a row.
func nextPreface(sess *session.Session) string {
	st := sess.SkillState
	idx := sess.QuestionsAskedCount % len(transitionPrefaces)
	if idx == st.LastPreface {
		idx = (idx + 1) % len(transitionPrefaces)
	}
	st.LastPreface = idx
	return transitionPrefaces[idx]
}

// softNudges are varied phrasings for thin responses. They ask for more
// substance without advancing the question.
var softNudges = []string{
	"Can you expand on that a bit? Walk me through your thinking.",
	"Tell me more. What's the reasoning behind that?",
	"That's a start. Can you take it a step further and explain how it works?",
	"Give me some more detail there. What would that look like concretely?",
}

var reanchorNudges = []string{
	"Let's bring it back to the question at hand: ",
	"That's interesting, but let's refocus on the question: ",
}

// focusFollowups are the phase-heuristic follow-ups used when neither
// the dataset nor the gateway supplies one.
var focusFollowups = map[string]string{
	"approach":    "Can you walk me through your overall approach before we go further?",
	"constraints": "What constraints or assumptions are you making about the input?",
	"correctness": "How do you know this is correct? What's the key invariant?",
	"complexity":  "What's the time and space complexity of this approach?",
	"edge_cases":  "What edge cases would you worry about here?",
	"tradeoffs":   "What are the trade-offs of doing it this way? What did you give up?",
	"star":        "Can you ground that in a specific situation? What was the context, and what did you do?",
	"impact":      "What was the outcome? How did you know it worked?",
}

// rubricFollowups target the session's weakest rubric dimension as the
// last resort in the fallback chain.
var rubricFollowups = map[rubric.Dimension]string{
	rubric.DimCommunication:  "Take a moment and walk me through that again, step by step.",
	rubric.DimProblemSolving: "How would you break this problem down if you were starting fresh?",
	rubric.DimCorrectness:    "Convince me this works. Why is it correct?",
	rubric.DimComplexity:     "How does this scale? Talk me through the complexity.",
	rubric.DimEdgeCases:      "What inputs could break this? Walk me through the edge cases.",
}

const wrapupMessage = "That's all the questions I had for you today. Before we finish, do you have any questions for me, or anything you'd like to revisit?"

const closingMessage = "Thanks for your time today, this was a good session. You'll get detailed feedback on your answers shortly. Best of luck!"

const poolExhaustedPreface = "We've actually covered everything I had prepared."

// missingFocus returns the expected response elements not detected in
// the reply, specific to the question type. Conceptual questions carry
// no element checklist.
func missingFocus(qt interview.QuestionType, text string, sig textsig.Signals) []string {
	switch {
	case qt == interview.TypeBehavioral:
		return behavioralMissingFocus(text)
	case qt.IsTechnical():
		var missing []string
		checks := []struct {
			key     string
			present bool
		}{
			{"approach", sig.MentionsApproach},
			{"constraints", sig.MentionsConstraints},
			{"correctness", sig.MentionsCorrectness},
			{"complexity", sig.MentionsComplexity},
			{"edge_cases", sig.MentionsEdgeCases},
			{"tradeoffs", sig.MentionsTradeoffs},
		}
		for _, c := range checks {
			if !c.present {
				missing = append(missing, c.key)
			}
		}
		return missing
	}
	return nil
}

func behavioralMissingFocus(text string) []string {
	parts := textsig.MissingSTARParts(text)
	var missing []string
	if len(parts) > 0 {
		missing = append(missing, "star")
	}
	for _, p := range parts {
		if p == textsig.STARResult {
			missing = append(missing, "impact")
			break
		}
	}
	return missing
}
