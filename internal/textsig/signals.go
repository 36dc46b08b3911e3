package textsig

import "strings"

// Signals are the boolean content signals extracted from a single
// candidate response. All extraction is heuristic phrase matching; no
// model call is involved.
type Signals struct {
	HasCode             bool
	MentionsApproach    bool
	MentionsConstraints bool
	MentionsCorrectness bool
	MentionsComplexity  bool
	MentionsEdgeCases   bool
	MentionsTradeoffs   bool
	MentionsTests       bool
}

var (
	approachPhrases = []string{
		"approach", "i would", "i'd", "id use", "my plan", "strategy",
		"first i", "first,", "the idea", "we can", "step by step",
		"start by", "i will", "use a", "using a", "using an",
	}
	constraintPhrases = []string{
		"constraint", "assume", "assuming", "at most", "up to", "bounded",
		"memory limit", "time limit", "within", "no more than", "input size",
	}
	correctnessPhrases = []string{
		"correct", "invariant", "works because", "guarantee", "proof",
		"prove", "verify", "always returns", "holds",
	}
	complexityPhrases = []string{
		"o(", "complexity", "big-o", "big o", "linear time", "log n",
		"logarithmic", "quadratic", "constant time", "amortized",
	}
	edgeCasePhrases = []string{
		"edge case", "corner case", "empty", "null", "nil", "negative",
		"duplicate", "overflow", "boundary", "zero-length", "single element",
	}
	tradeoffPhrases = []string{
		"trade-off", "tradeoff", "trade off", "trading", "at the cost",
		"downside", "versus", " vs ", "alternative", "instead of", "sacrifice",
	}
	testPhrases = []string{
		"test", "assert", "unit test", "test case", "would check with",
	}
)

// Extract computes all content signals for a response.
func Extract(text string) Signals {
	lower := strings.ToLower(text)
	return Signals{
		HasCode:             HasCode(text),
		MentionsApproach:    containsAny(lower, approachPhrases),
		MentionsConstraints: containsAny(lower, constraintPhrases),
		MentionsCorrectness: containsAny(lower, correctnessPhrases),
		MentionsComplexity:  containsAny(lower, complexityPhrases),
		MentionsEdgeCases:   containsAny(lower, edgeCasePhrases),
		MentionsTradeoffs:   containsAny(lower, tradeoffPhrases),
		MentionsTests:       containsAny(lower, testPhrases),
	}
}

// ContentCount returns how many of the six content signals
// (approach through tradeoffs) are present.
func (s Signals) ContentCount() int {
	n := 0
	for _, b := range []bool{
		s.MentionsApproach, s.MentionsConstraints, s.MentionsCorrectness,
		s.MentionsComplexity, s.MentionsEdgeCases, s.MentionsTradeoffs,
	} {
		if b {
			n++
		}
	}
	return n
}

// AncillaryCount returns how many of the five ancillary signals
// (everything except approach) are present. Used for response quality.
func (s Signals) AncillaryCount() int {
	n := 0
	for _, b := range []bool{
		s.MentionsConstraints, s.MentionsCorrectness, s.MentionsComplexity,
		s.MentionsEdgeCases, s.MentionsTradeoffs,
	} {
		if b {
			n++
		}
	}
	return n
}
