// Package rubric tracks rolling per-dimension scoring statistics for a
// session and drives adaptive difficulty from them.
package rubric

import "github.com/abhisek/intervu/internal/interview"

// Dimension is one scored aspect of a candidate response, 0-10 per turn.
type Dimension string

const (
	DimCommunication  Dimension = "communication"
	DimProblemSolving Dimension = "problem_solving"
	DimCorrectness    Dimension = "correctness_reasoning"
	DimComplexity     Dimension = "complexity"
	DimEdgeCases      Dimension = "edge_cases"
)

// Dimensions lists all rubric dimensions in canonical order.
var Dimensions = []Dimension{
	DimCommunication,
	DimProblemSolving,
	DimCorrectness,
	DimComplexity,
	DimEdgeCases,
}

// EMAAlpha is the smoothing factor for the per-dimension moving average.
const EMAAlpha = 0.35

// Streak thresholds on the per-turn mean score.
const (
	goodTurnMean = 8.0
	weakTurnMean = 4.0
)

// Difficulty bump thresholds on the last turn's mean score.
const (
	bumpMean = 7.5
	dropMean = 4.5
)

// DefaultGapThreshold is the latest-score cutoff for critical gaps.
const DefaultGapThreshold = 5.0

// TurnScores holds one turn's rubric, keyed by dimension.
type TurnScores map[Dimension]float64

// Mean returns the average over all five dimensions. Missing dimensions
// count as zero.
func (ts TurnScores) Mean() float64 {
	sum := 0.0
	for _, d := range Dimensions {
		sum += ts[d]
	}
	return sum / float64(len(Dimensions))
}

// DimStats are the rolling statistics for one dimension.
type DimStats struct {
	N    int     `json:"n"`
	Sum  float64 `json:"sum"`
	Last float64 `json:"last"`
	EMA  float64 `json:"ema"`
}

// Streaks counts consecutive good and weak turns. At most one of the
// two is nonzero.
type Streaks struct {
	Good int `json:"good"`
	Weak int `json:"weak"`
}

// Tracker accumulates rubric statistics across a session's turns.
// The zero value is not usable; call NewTracker or let defaulting on
// state load initialize Dims.
type Tracker struct {
	Dims         map[Dimension]*DimStats `json:"dims"`
	Streaks      Streaks                 `json:"streaks"`
	LastTurnMean float64                 `json:"last_turn_mean"`
}

// NewTracker returns a Tracker with all dimensions initialized.
func NewTracker() *Tracker {
	t := &Tracker{Dims: make(map[Dimension]*DimStats, len(Dimensions))}
	for _, d := range Dimensions {
		t.Dims[d] = &DimStats{}
	}
	return t
}

// EnsureDims fills in any missing dimension entries. Called after
// deserializing persisted state so older blobs default cleanly.
func (t *Tracker) EnsureDims() {
	if t.Dims == nil {
		t.Dims = make(map[Dimension]*DimStats, len(Dimensions))
	}
	for _, d := range Dimensions {
		if t.Dims[d] == nil {
			t.Dims[d] = &DimStats{}
		}
	}
}

// Update folds one turn's rubric into the rolling statistics.
// Behavioral turns update the per-dimension stats but reset both streaks
// without counting toward them.
func (t *Tracker) Update(turn TurnScores, behavioral bool) {
	t.EnsureDims()
	for _, d := range Dimensions {
		score := turn[d]
		st := t.Dims[d]
		if st.N == 0 {
			st.EMA = score // seed with first observation
		} else {
			st.EMA = EMAAlpha*score + (1-EMAAlpha)*st.EMA
		}
		st.N++
		st.Sum += score
		st.Last = score
	}

	mean := turn.Mean()
	t.LastTurnMean = mean

	if behavioral {
		t.Streaks = Streaks{}
		return
	}
	switch {
	case mean >= goodTurnMean:
		t.Streaks.Good++
		t.Streaks.Weak = 0
	case mean <= weakTurnMean:
		t.Streaks.Weak++
		t.Streaks.Good = 0
	default:
		t.Streaks = Streaks{}
	}
}

// Turns returns how many turns have been recorded.
func (t *Tracker) Turns() int {
	t.EnsureDims()
	return t.Dims[DimCommunication].N
}

// WeakestDimension returns the dimension with the lowest EMA, falling
// back to the lowest cumulative mean when no EMA has been observed.
// Ties break by canonical dimension order.
func (t *Tracker) WeakestDimension() Dimension {
	t.EnsureDims()
	useEMA := t.Turns() > 0
	best := Dimensions[0]
	bestScore := t.dimScore(Dimensions[0], useEMA)
	for _, d := range Dimensions[1:] {
		if s := t.dimScore(d, useEMA); s < bestScore {
			best = d
			bestScore = s
		}
	}
	return best
}

func (t *Tracker) dimScore(d Dimension, useEMA bool) float64 {
	st := t.Dims[d]
	if useEMA {
		return st.EMA
	}
	if st.N == 0 {
		return 0
	}
	return st.Sum / float64(st.N)
}

// Focus keys the controller understands for follow-up targeting.
const (
	FocusApproach    = "approach"
	FocusCorrectness = "correctness"
	FocusComplexity  = "complexity"
	FocusEdgeCases   = "edge_cases"
)

// focusKeyByDim maps rubric dimensions to follow-up focus keys.
var focusKeyByDim = map[Dimension]string{
	DimCorrectness:    FocusCorrectness,
	DimProblemSolving: FocusApproach,
	DimComplexity:     FocusComplexity,
	DimEdgeCases:      FocusEdgeCases,
	DimCommunication:  FocusApproach,
}

// FocusKeyFor returns the follow-up focus key for a dimension.
func FocusKeyFor(d Dimension) string {
	return focusKeyByDim[d]
}

// CriticalGaps returns the focus keys for dimensions whose latest score
// fell below threshold, deduplicated in canonical dimension order.
// Dimensions with no observations are skipped.
func (t *Tracker) CriticalGaps(threshold float64) []string {
	t.EnsureDims()
	seen := make(map[string]bool)
	var gaps []string
	for _, d := range Dimensions {
		st := t.Dims[d]
		if st.N == 0 || st.Last >= threshold {
			continue
		}
		key := focusKeyByDim[d]
		if !seen[key] {
			seen[key] = true
			gaps = append(gaps, key)
		}
	}
	return gaps
}

// BumpDifficulty applies adaptive difficulty to current, bounded by the
// session cap. With adaptive mode off the result is always the cap.
// A good streak of 2+ with a strong last turn raises one rank; a weak
// streak of 2+ with a weak last turn drops one rank, floored at easy.
func (t *Tracker) BumpDifficulty(current, cap interview.Difficulty, adaptive bool) interview.Difficulty {
	if !adaptive {
		return cap
	}
	next := current
	switch {
	case t.Streaks.Good >= 2 && t.LastTurnMean >= bumpMean:
		next = current.Bump(cap)
	case t.Streaks.Weak >= 2 && t.LastTurnMean <= dropMean:
		next = current.Drop()
	}
	// A rank change consumes the streak; the next change needs a fresh one.
	if next != current {
		t.Streaks = Streaks{}
	}
	return next
}
