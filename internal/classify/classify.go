// Package classify turns raw candidate responses into discrete dialogue
// classifications. Every function is total: empty or malformed input
// yields a definite answer, never an error.
package classify

import (
	"strings"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/textsig"
)

// fillerWords are acknowledgements that carry no content on their own.
var fillerWords = map[string]bool{
	"ok": true, "okay": true, "sure": true, "yeah": true, "yes": true,
	"yep": true, "no": true, "nope": true, "hmm": true, "hm": true,
	"cool": true, "fine": true, "right": true, "k": true, "thanks": true,
	"alright": true, "uh": true, "um": true, "got": true, "it": true,
}

var clarificationPhrases = []string{
	"repeat", "rephrase", "didn't catch", "didnt catch", "didn't understand",
	"don't understand", "dont understand", "what's the question",
	"what is the question", "can you clarify", "could you clarify",
	"say that again", "come again", "what do you mean",
	"could you explain the question", "not sure what you're asking",
	"not sure what you are asking",
}

var moveOnPhrases = []string{
	"skip", "move on", "next question", "pass on this", "let's move",
	"lets move", "i pass", "something else",
}

var dontKnowPhrases = []string{
	"don't know", "dont know", "no idea", "no clue", "never heard",
}

// hesitationPhrases only count as don't-know on short replies; inside a
// longer answer they are ordinary hedging.
var hesitationPhrases = []string{"not sure", "unsure"}

// technicalTerms suppress the vague classification: a short reply that
// names a data structure is an answer, not a shrug.
var technicalTerms = []string{
	"array", "hash", "map", "o(", "complexity", "tree", "graph", "heap",
	"queue", "stack", "pointer", "index", "sort", "search", "algorithm",
	"database", "cache", "recursion", "binary",
}

// IsNonInformative reports whether text is a bare acknowledgement:
// at most one token, or at most two tokens all drawn from the filler
// lexicon.
func IsNonInformative(text string) bool {
	tokens := textsig.Tokens(text)
	if len(tokens) <= 1 {
		return true
	}
	if len(tokens) <= 2 {
		for _, t := range tokens {
			if !fillerWords[t] {
				return false
			}
		}
		return true
	}
	return false
}

// IsClarificationRequest reports whether the candidate is asking to have
// the question restated. It always wins over move-on, vague, and thin
// classification.
func IsClarificationRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range clarificationPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsMoveOn reports whether the candidate wants to skip the current
// question. Clarification requests are never move-on.
func IsMoveOn(text string) bool {
	if IsClarificationRequest(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range moveOnPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsDontKnow reports whether the candidate is giving up on the question.
// Explicit phrases always match; "not sure"/"unsure" only on replies of
// five tokens or fewer.
func IsDontKnow(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range dontKnowPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	if textsig.TokenCount(text) <= 5 {
		for _, p := range hesitationPhrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}

// IsVague reports whether a reply is too short to grade and names
// nothing technical: fewer than five tokens, no clarification intent,
// no technical-term hit.
func IsVague(text string) bool {
	if textsig.TokenCount(text) >= 5 {
		return false
	}
	if IsClarificationRequest(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// IsOffTopic reports whether a response wandered away from the question:
// keyword overlap below 0.05 against the question's own keyword set
// (which must have at least 6 entries to be meaningful), with no code,
// approach, or correctness signal present.
func IsOffTopic(questionKeywords map[string]bool, text string, sig textsig.Signals) bool {
	if len(questionKeywords) < 6 {
		return false
	}
	if sig.HasCode || sig.MentionsApproach || sig.MentionsCorrectness {
		return false
	}
	return textsig.OverlapRatio(questionKeywords, text) < 0.05
}

// IsThinResponse reports whether a response engages the question without
// enough substance to grade. Thresholds vary by question type:
// behavioral answers missing 3+ STAR parts, technical answers that are
// code with no explained approach or hit none of the content signals,
// conceptual answers under 8 tokens. Clarification requests are never
// thin.
func IsThinResponse(text string, qtype interview.QuestionType, sig textsig.Signals) bool {
	if IsClarificationRequest(text) {
		return false
	}
	switch {
	case qtype == interview.TypeBehavioral:
		return len(textsig.MissingSTARParts(text)) >= 3
	case qtype.IsTechnical():
		if sig.HasCode && !sig.MentionsApproach {
			return true
		}
		return sig.ContentCount() == 0
	default: // conceptual
		return textsig.TokenCount(text) < 8
	}
}

// Quality grades overall response substance.
type Quality string

const (
	QualityWeak   Quality = "weak"
	QualityOK     Quality = "ok"
	QualityStrong Quality = "strong"
)

// ResponseQuality grades a response as weak, ok, or strong.
// Clarification requests are always ok.
func ResponseQuality(text string, qtype interview.QuestionType, sig textsig.Signals) Quality {
	if IsClarificationRequest(text) {
		return QualityOK
	}

	tokens := textsig.TokenCount(text)
	if tokens < 8 {
		return QualityWeak
	}
	if qtype.IsTechnical() && !sig.MentionsApproach {
		return QualityWeak
	}

	switch {
	case qtype.IsTechnical():
		if sig.AncillaryCount() >= 3 {
			return QualityStrong
		}
	case qtype == interview.TypeBehavioral:
		if len(textsig.MissingSTARParts(text)) == 0 && tokens >= 25 {
			return QualityStrong
		}
	default: // conceptual
		if tokens >= 25 {
			return QualityStrong
		}
	}
	return QualityOK
}
