package textsig

import "strings"

// stopwords are excluded from keyword sets so overlap scoring compares
// content words only.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "for": true, "of": true, "in": true,
	"on": true, "at": true, "to": true, "from": true, "by": true, "with": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"it": true, "its": true, "this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "we": true, "they": true, "he": true, "she": true,
	"my": true, "your": true, "our": true, "their": true, "me": true, "us": true,
	"do": true, "does": true, "did": true, "have": true, "has": true, "had": true,
	"will": true, "would": true, "can": true, "could": true, "should": true,
	"as": true, "so": true, "not": true, "no": true, "yes": true, "there": true,
	"what": true, "which": true, "who": true, "how": true, "when": true, "where": true,
	"about": true, "into": true, "some": true, "any": true, "all": true, "just": true,
	"like": true, "also": true, "very": true, "more": true, "most": true, "than": true,
}

// Tokens lower-cases text, strips punctuation, and splits on whitespace.
// Empty input yields a nil slice.
func Tokens(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}

// TokenCount returns the number of cleaned tokens in text.
func TokenCount(text string) int {
	return len(Tokens(text))
}

// Keywords returns the stopword-filtered set of tokens with length >= 3.
func Keywords(text string) map[string]bool {
	kw := make(map[string]bool)
	for _, t := range Tokens(text) {
		if len(t) < 3 || stopwords[t] {
			continue
		}
		kw[t] = true
	}
	return kw
}

// OverlapRatio returns |base ∩ keywords(text)| / |base|.
// An empty base yields 0.
func OverlapRatio(base map[string]bool, text string) float64 {
	if len(base) == 0 {
		return 0
	}
	kw := Keywords(text)
	hits := 0
	for w := range base {
		if kw[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(base))
}

// containsAny reports whether the lower-cased text contains any of the
// given phrases. Phrase matching runs on raw text, not cleaned tokens,
// so multi-word phrases and markers like "o(" survive.
func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
