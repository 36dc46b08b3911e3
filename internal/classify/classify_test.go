package classify

import (
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/textsig"
)

const strongTechnicalAnswer = "I'd use a hash map for O(1) average lookup, handling duplicates and negative numbers as edge cases, trading space for speed"

func TestIsNonInformative(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"ok", true},
		{"", true},
		{"yeah sure", true},
		{"got it", true},
		{"ok so first I'd sort", false},
		{"binary search", false},
	}
	for _, tc := range cases {
		if got := IsNonInformative(tc.text); got != tc.want {
			t.Errorf("IsNonInformative(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsClarificationRequest(t *testing.T) {
	if !IsClarificationRequest("Sorry, could you repeat that?") {
		t.Error("repeat request not detected")
	}
	if !IsClarificationRequest("what's the question again") {
		t.Error("question restatement request not detected")
	}
	if IsClarificationRequest("I would use two pointers") {
		t.Error("plain answer misread as clarification")
	}
}

func TestIsMoveOn_SuppressedByClarification(t *testing.T) {
	if !IsMoveOn("can we skip this one") {
		t.Error("skip request not detected")
	}
	if IsMoveOn("can you rephrase before we move on") {
		t.Error("clarification should win over move-on")
	}
}

func TestIsDontKnow(t *testing.T) {
	if !IsDontKnow("I don't know") {
		t.Error("explicit don't-know not detected")
	}
	if !IsDontKnow("no idea honestly") {
		t.Error("no-idea not detected")
	}
	// Short hesitation counts.
	if !IsDontKnow("not sure") {
		t.Error("short 'not sure' should count")
	}
	// Hedging inside a real answer does not.
	if IsDontKnow("I'm not sure about the constant factor but a heap keeps the top k in O(n log k)") {
		t.Error("hedged answer misread as don't-know")
	}
}

func TestIsVague(t *testing.T) {
	if !IsVague("maybe somehow") {
		t.Error("short contentless reply should be vague")
	}
	// Technical term rescues a short reply.
	if IsVague("hash map") {
		t.Error("short technical reply should not be vague")
	}
	if IsVague("I would traverse the list from both ends") {
		t.Error("long reply should not be vague")
	}
}

func TestIsOffTopic(t *testing.T) {
	qk := textsig.Keywords("design a url shortener service with unique short codes and redirect lookups at scale")
	if len(qk) < 6 {
		t.Fatalf("question keyword set too small for test: %v", qk)
	}

	off := "My weekend was great, I went hiking with my dog and the weather was beautiful"
	if !IsOffTopic(qk, off, textsig.Extract(off)) {
		t.Error("unrelated chatter should be off-topic")
	}

	on := "For the shortener I'd hash the url into a short code and store the redirect mapping"
	if IsOffTopic(qk, on, textsig.Extract(on)) {
		t.Error("on-topic answer misdetected")
	}

	// An approach signal suppresses off-topic even with zero overlap.
	hedge := "I would start by writing things down first"
	if IsOffTopic(qk, hedge, textsig.Extract(hedge)) {
		t.Error("approach signal should suppress off-topic")
	}

	// Small keyword bases are not meaningful.
	small := textsig.Keywords("reverse a list")
	if IsOffTopic(small, off, textsig.Extract(off)) {
		t.Error("keyword base under 6 entries should never flag off-topic")
	}
}

func TestIsThinResponse(t *testing.T) {
	behavioralThin := "It went fine and everyone was happy."
	if !IsThinResponse(behavioralThin, interview.TypeBehavioral, textsig.Extract(behavioralThin)) {
		t.Error("behavioral answer missing 3+ STAR parts should be thin")
	}

	codeNoApproach := "def solve(nums):\n    return sorted(nums)[0]"
	if !IsThinResponse(codeNoApproach, interview.TypeCoding, textsig.Extract(codeNoApproach)) {
		t.Error("code with no explained approach should be thin")
	}

	if IsThinResponse(strongTechnicalAnswer, interview.TypeCoding, textsig.Extract(strongTechnicalAnswer)) {
		t.Error("substantive technical answer should not be thin")
	}

	if !IsThinResponse("caching I think", interview.TypeConceptual, textsig.Extract("caching I think")) {
		t.Error("conceptual answer under 8 tokens should be thin")
	}

	clarify := "could you rephrase the question?"
	if IsThinResponse(clarify, interview.TypeBehavioral, textsig.Extract(clarify)) {
		t.Error("clarification requests are never thin")
	}
}

func TestResponseQuality(t *testing.T) {
	if q := ResponseQuality("ok", interview.TypeCoding, textsig.Extract("ok")); q != QualityWeak {
		t.Errorf("quality(%q) = %s, want weak", "ok", q)
	}

	if q := ResponseQuality(strongTechnicalAnswer, interview.TypeCoding, textsig.Extract(strongTechnicalAnswer)); q != QualityStrong {
		t.Errorf("quality(strong technical) = %s, want strong", q)
	}

	// Technical answer with approach but little depth lands on ok.
	mid := "I would use a simple loop over the input and keep a running total as I go through it"
	if q := ResponseQuality(mid, interview.TypeCoding, textsig.Extract(mid)); q != QualityOK {
		t.Errorf("quality(mid technical) = %s, want ok", q)
	}

	// Full STAR behavioral answer with enough length is strong.
	star := "The situation was a failing release pipeline at my previous company. My task was to stabilize deploys before the quarter ended. I decided to introduce canary releases and wrote the rollout tooling myself. The result was a large drop in rollbacks and the team adopted it everywhere."
	if q := ResponseQuality(star, interview.TypeBehavioral, textsig.Extract(star)); q != QualityStrong {
		t.Errorf("quality(full STAR) = %s, want strong", q)
	}

	// Clarification requests are always ok.
	if q := ResponseQuality("can you clarify what input format you mean", interview.TypeCoding, textsig.Extract("x")); q != QualityOK {
		t.Errorf("quality(clarification) = %s, want ok", q)
	}
}
