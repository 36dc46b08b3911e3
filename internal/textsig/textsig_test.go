package textsig

import (
	"testing"
)

func TestTokens_CleansPunctuationAndCase(t *testing.T) {
	got := Tokens("Hello, World! It's O(n).")
	want := []string{"hello", "world", "it", "s", "o", "n"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokens_Empty(t *testing.T) {
	if n := TokenCount(""); n != 0 {
		t.Errorf("TokenCount(\"\") = %d, want 0", n)
	}
	if n := TokenCount("   \n\t "); n != 0 {
		t.Errorf("TokenCount(whitespace) = %d, want 0", n)
	}
}

func TestKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	kw := Keywords("I would reverse the linked list in place")
	if kw["the"] || kw["i"] || kw["in"] {
		t.Errorf("stopwords leaked into keyword set: %v", kw)
	}
	for _, w := range []string{"reverse", "linked", "list", "place"} {
		if !kw[w] {
			t.Errorf("keyword %q missing from %v", w, kw)
		}
	}
}

func TestOverlapRatio(t *testing.T) {
	base := Keywords("design rate limiter sliding window counter")
	full := OverlapRatio(base, "I'd build a rate limiter with a sliding window counter design")
	if full < 0.9 {
		t.Errorf("full overlap ratio = %v, want ~1.0", full)
	}
	none := OverlapRatio(base, "my favorite food is pizza honestly")
	if none != 0 {
		t.Errorf("disjoint overlap ratio = %v, want 0", none)
	}
	if r := OverlapRatio(nil, "anything"); r != 0 {
		t.Errorf("empty base ratio = %v, want 0", r)
	}
}

func TestHasCode(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"fenced block", "here you go\n```\nx = 1\n```", true},
		{"def prefix", "def solve(nums):\n    pass", true},
		{"for prefix", "for i in range(10): print(i)", true},
		{"c style semicolon", "int x = 0;", true},
		{"brace ending", "if (x) {", true},
		{"plain prose", "I would sort the array and scan it once", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasCode(tc.text); got != tc.want {
				t.Errorf("HasCode(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtract_StrongTechnicalAnswer(t *testing.T) {
	s := Extract("I'd use a hash map for O(1) average lookup, handling duplicates and negative numbers as edge cases, trading space for speed")
	if !s.MentionsApproach {
		t.Error("approach signal missing")
	}
	if !s.MentionsComplexity {
		t.Error("complexity signal missing")
	}
	if !s.MentionsEdgeCases {
		t.Error("edge case signal missing")
	}
	if !s.MentionsTradeoffs {
		t.Error("tradeoff signal missing")
	}
	if s.HasCode {
		t.Error("prose answer misdetected as code")
	}
	if s.AncillaryCount() < 3 {
		t.Errorf("AncillaryCount = %d, want >= 3", s.AncillaryCount())
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	s := Extract("")
	if s != (Signals{}) {
		t.Errorf("Extract(\"\") = %+v, want zero signals", s)
	}
}

func TestMissingSTARParts(t *testing.T) {
	full := "The situation was a failing deploy pipeline. My task was to stabilize it. I decided to add canary checks. The result was 90% fewer rollbacks."
	if missing := MissingSTARParts(full); len(missing) != 0 {
		t.Errorf("full STAR answer missing = %v, want none", missing)
	}

	thin := "We talked about stuff and it went fine I guess."
	if missing := MissingSTARParts(thin); len(missing) < 3 {
		t.Errorf("thin answer missing = %v, want at least 3 parts", missing)
	}

	// Literal "star" framing short-circuits.
	if missing := MissingSTARParts("Let me answer in STAR format: we migrated the billing system."); len(missing) != 0 {
		t.Errorf("explicit STAR framing missing = %v, want none", missing)
	}
}
