// Package selector picks the next interview question for a session,
// balancing the slot plan, adaptive difficulty, weakness targeting,
// topic diversity, and asked/seen history.
package selector

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/plan"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/session"
	"github.com/abhisek/intervu/internal/store"
)

// ErrPoolExhausted means every question in the bank has already been
// asked in this session. The caller turns this into a wrapup, not an
// error surfaced to the candidate.
var ErrPoolExhausted = errors.New("selector: question pool exhausted")

// Scoring weights. These are the selection behavior, not tuning knobs.
const (
	focusTagWeight    = 5.0
	gapAlignmentBonus = 10.0
	diversityPerTag   = 1.0
	prevTagPenalty    = 2.0
	seenPenalty       = 1.4
	jitterSpan        = 0.5
)

// topBucketSize is how many top-scoring candidates the final uniform
// pick draws from, to avoid deterministic repetition.
const topBucketSize = 3

// weaknessKeywords map each rubric dimension to the tags/topics that
// exercise it.
var weaknessKeywords = map[rubric.Dimension][]string{
	rubric.DimCommunication:  {"explanation", "communication", "walkthrough"},
	rubric.DimProblemSolving: {"algorithms", "problem-solving", "design", "recursion"},
	rubric.DimCorrectness:    {"correctness", "invariants", "testing", "proof"},
	rubric.DimComplexity:     {"complexity", "optimization", "performance", "scaling"},
	rubric.DimEdgeCases:      {"edge-cases", "validation", "robustness", "error-handling"},
}

// Selector picks questions from the bank. Rand must be non-nil; tests
// inject a seeded source for determinism.
type Selector struct {
	Questions store.QuestionRepo
	History   store.HistoryRepo
	Rand      *rand.Rand
}

// New creates a Selector.
func New(questions store.QuestionRepo, history store.HistoryRepo, rnd *rand.Rand) *Selector {
	return &Selector{Questions: questions, History: history, Rand: rnd}
}

// PickNext selects the question for the session's next position,
// honoring the slot plan. It never returns nil with a nil error: if no
// question matches any filter, the error is ErrPoolExhausted.
func (s *Selector) PickNext(ctx context.Context, sess *session.Session) (*interview.Question, error) {
	position := sess.QuestionsAskedCount + 1
	kind := sess.SkillState.Plan.KindAt(position)

	if kind == plan.SlotBehavioral && sess.BehavioralQuestionsTarget > 0 {
		if q, err := s.PickBehavioral(ctx, sess); err == nil {
			return q, nil
		}
		// Behavioral pool empty: fall through to technical.
		kind = plan.SlotCoding
	}

	if q, err := s.pickTechnical(ctx, sess, kind); err == nil {
		return q, nil
	}

	// Technical pool empty: behavioral, then anything at all.
	if q, err := s.PickBehavioral(ctx, sess); err == nil {
		return q, nil
	}
	return s.pickAny(ctx, sess)
}

// PickBehavioral selects a behavioral question, relaxing filters
// progressively: exact difficulty first, then any difficulty, then the
// general company style.
func (s *Selector) PickBehavioral(ctx context.Context, sess *session.Session) (*interview.Question, error) {
	asked, err := s.History.AskedIDs(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	seen, err := s.History.SeenIDs(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	styles := []string{sess.CompanyStyle, interview.CompanyStyleGeneral}
	tracks := []string{sess.Track, interview.TrackBehavioral}

	filters := []store.QuestionFilter{
		{Tracks: tracks, CompanyStyles: styles, Difficulty: sess.EffectiveDifficulty(),
			Types: []interview.QuestionType{interview.TypeBehavioral}, ExcludeIDs: asked},
		{Tracks: tracks, CompanyStyles: styles,
			Types: []interview.QuestionType{interview.TypeBehavioral}, ExcludeIDs: asked},
		{CompanyStyles: []string{interview.CompanyStyleGeneral},
			Types: []interview.QuestionType{interview.TypeBehavioral}, ExcludeIDs: asked},
	}

	for _, f := range filters {
		pool, err := s.Questions.List(ctx, f)
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			continue
		}
		// Prefer questions the user has never seen.
		unseen := filterUnseen(pool, seen)
		if len(unseen) > 0 {
			pool = unseen
		}
		return pool[s.Rand.Intn(len(pool))], nil
	}
	return nil, ErrPoolExhausted
}

// pickTechnical scores the technical candidate pool and picks uniformly
// from the top bucket.
func (s *Selector) pickTechnical(ctx context.Context, sess *session.Session, kind plan.SlotKind) (*interview.Question, error) {
	asked, err := s.History.AskedIDs(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	seen, err := s.History.SeenIDs(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	f := store.QuestionFilter{
		Tracks:        []string{sess.Track},
		CompanyStyles: []string{sess.CompanyStyle},
		Difficulty:    sess.EffectiveDifficulty(),
		ExcludeTypes:  []interview.QuestionType{interview.TypeBehavioral},
		ExcludeIDs:    asked,
	}
	if kind == plan.SlotSystemDesign {
		f.Types = []interview.QuestionType{interview.TypeSystemDesign}
	}

	pool, err := s.Questions.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 && kind == plan.SlotSystemDesign {
		// No system-design rows at this difficulty; take any technical.
		f.Types = nil
		pool, err = s.Questions.List(ctx, f)
		if err != nil {
			return nil, err
		}
	}
	if len(pool) == 0 {
		return nil, ErrPoolExhausted
	}

	// Seen questions are a soft exclusion: drop them unless that
	// empties the pool.
	unseen := filterUnseen(pool, seen)
	allowSeen := len(unseen) == 0
	if !allowSeen {
		pool = unseen
	}

	st := sess.SkillState
	gaps := st.Rubric.CriticalGaps(rubric.DefaultGapThreshold)
	weakest := st.Rubric.WeakestDimension()

	type scored struct {
		q     *interview.Question
		score float64
	}
	candidates := make([]scored, len(pool))
	for i, q := range pool {
		score := focusTagWeight * float64(tagOverlap(q.Tags, st.Focus.Tags))
		score += float64(weaknessHits(q, weakest))
		score += gapAlignmentBonus * float64(gapAlignment(q.EvaluationFocus, gaps))
		score += diversityPerTag * float64(unusedTagCount(q.Tags, st.UsedTags))
		score -= prevTagPenalty * float64(tagOverlap(q.Tags, st.PrevTechnicalTags))
		if seen[q.ID] {
			score -= seenPenalty
		}
		score += s.Rand.Float64() * jitterSpan
		candidates[i] = scored{q: q, score: score}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	bucket := topBucketSize
	if bucket > len(candidates) {
		bucket = len(candidates)
	}
	return candidates[s.Rand.Intn(bucket)].q, nil
}

// pickAny is the last-resort fallback: any question not yet asked this
// session, in random order.
func (s *Selector) pickAny(ctx context.Context, sess *session.Session) (*interview.Question, error) {
	asked, err := s.History.AskedIDs(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	pool, err := s.Questions.List(ctx, store.QuestionFilter{ExcludeIDs: asked})
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrPoolExhausted
	}
	return pool[s.Rand.Intn(len(pool))], nil
}

func filterUnseen(pool []*interview.Question, seen map[string]bool) []*interview.Question {
	var out []*interview.Question
	for _, q := range pool {
		if !seen[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

func tagOverlap(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[strings.ToLower(t)] = true
	}
	n := 0
	for _, t := range a {
		if set[strings.ToLower(t)] {
			n++
		}
	}
	return n
}

func unusedTagCount(tags, used []string) int {
	set := make(map[string]bool, len(used))
	for _, t := range used {
		set[strings.ToLower(t)] = true
	}
	n := 0
	for _, t := range tags {
		if !set[strings.ToLower(t)] {
			n++
		}
	}
	return n
}

// weaknessHits counts keyword hits for the weakest rubric dimension in
// the question's tags and expected topics.
func weaknessHits(q *interview.Question, weakest rubric.Dimension) int {
	keywords := weaknessKeywords[weakest]
	n := 0
	for _, kw := range keywords {
		for _, t := range q.Tags {
			if strings.Contains(strings.ToLower(t), kw) {
				n++
			}
		}
		for _, topic := range q.ExpectedTopics {
			if strings.Contains(strings.ToLower(topic), kw) {
				n++
			}
		}
	}
	return n
}

// gapAlignment counts evaluation-focus entries matching current
// critical rubric gaps.
func gapAlignment(evaluationFocus, gaps []string) int {
	set := make(map[string]bool, len(gaps))
	for _, g := range gaps {
		set[g] = true
	}
	n := 0
	for _, f := range evaluationFocus {
		if set[strings.ToLower(f)] {
			n++
		}
	}
	return n
}
