package textsig

import "strings"

// STAR part keys returned by MissingSTARParts.
const (
	STARSituation = "situation"
	STARTask      = "task"
	STARAction    = "action"
	STARResult    = "result"
)

var starPhrases = map[string][]string{
	STARSituation: {
		"situation", "context", "at my previous", "at my last", "when i was",
		"we had a", "my team was", "the project", "a while back", "last year",
	},
	STARTask: {
		"task", "my goal", "my job", "responsible for", "needed to",
		"objective", "asked to", "had to", "my role",
	},
	STARAction: {
		"action", "i decided", "i implemented", "i built", "i led", "so i",
		"i wrote", "i set up", "i worked", "i organized", "i proposed",
		"what i did",
	},
	STARResult: {
		"result", "outcome", "impact", "in the end", "eventually",
		"we shipped", "improved", "increased", "reduced", "learned",
		"ended up",
	},
}

// starOrder keeps the returned missing-part list stable.
var starOrder = []string{STARSituation, STARTask, STARAction, STARResult}

// MissingSTARParts returns the STAR parts not detected in a behavioral
// answer. A literal "star" mention short-circuits to none missing: the
// candidate is explicitly framing the answer.
func MissingSTARParts(text string) []string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "star") {
		return nil
	}
	var missing []string
	for _, part := range starOrder {
		if !containsAny(lower, starPhrases[part]) {
			missing = append(missing, part)
		}
	}
	return missing
}
