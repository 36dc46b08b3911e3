package rubric

import (
	"math"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
)

func uniformTurn(score float64) TurnScores {
	turn := make(TurnScores, len(Dimensions))
	for _, d := range Dimensions {
		turn[d] = score
	}
	return turn
}

func TestUpdate_EMASeedAndSmoothing(t *testing.T) {
	tr := NewTracker()
	tr.Update(uniformTurn(6), false)
	if got := tr.Dims[DimComplexity].EMA; got != 6 {
		t.Errorf("EMA after seed = %v, want 6", got)
	}

	tr.Update(uniformTurn(10), false)
	want := EMAAlpha*10 + (1-EMAAlpha)*6
	if got := tr.Dims[DimComplexity].EMA; math.Abs(got-want) > 1e-9 {
		t.Errorf("EMA after second turn = %v, want %v", got, want)
	}

	st := tr.Dims[DimComplexity]
	if st.N != 2 || st.Sum != 16 || st.Last != 10 {
		t.Errorf("stats = %+v, want n=2 sum=16 last=10", st)
	}
}

func TestUpdate_FourStrongTurnsDriveEMAAbove8(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 4; i++ {
		tr.Update(uniformTurn(9), false)
	}
	for _, d := range Dimensions {
		if ema := tr.Dims[d].EMA; ema <= 8.0 {
			t.Errorf("EMA[%s] = %v, want > 8.0", d, ema)
		}
	}

	// Tanking one dimension flips the weakest detection to it.
	turn := uniformTurn(9)
	turn[DimEdgeCases] = 2
	tr.Update(turn, false)
	if got := tr.WeakestDimension(); got != DimEdgeCases {
		t.Errorf("WeakestDimension = %s, want %s", got, DimEdgeCases)
	}
}

func TestUpdate_Streaks(t *testing.T) {
	tr := NewTracker()
	tr.Update(uniformTurn(9), false)
	tr.Update(uniformTurn(8.5), false)
	if tr.Streaks.Good != 2 || tr.Streaks.Weak != 0 {
		t.Errorf("streaks = %+v, want good=2 weak=0", tr.Streaks)
	}

	// Middling turn resets both.
	tr.Update(uniformTurn(6), false)
	if tr.Streaks != (Streaks{}) {
		t.Errorf("streaks after middling turn = %+v, want zero", tr.Streaks)
	}

	tr.Update(uniformTurn(3), false)
	tr.Update(uniformTurn(2), false)
	if tr.Streaks.Weak != 2 || tr.Streaks.Good != 0 {
		t.Errorf("streaks = %+v, want weak=2 good=0", tr.Streaks)
	}

	// Behavioral turns reset streaks without counting.
	tr.Update(uniformTurn(9), true)
	if tr.Streaks != (Streaks{}) {
		t.Errorf("streaks after behavioral turn = %+v, want zero", tr.Streaks)
	}
	if tr.Dims[DimCommunication].N != 6 {
		t.Errorf("behavioral turn should still update dimension stats, n = %d", tr.Dims[DimCommunication].N)
	}
}

func TestCriticalGaps(t *testing.T) {
	tr := NewTracker()
	if gaps := tr.CriticalGaps(DefaultGapThreshold); gaps != nil {
		t.Errorf("gaps with no observations = %v, want none", gaps)
	}

	turn := uniformTurn(8)
	turn[DimCorrectness] = 3
	turn[DimProblemSolving] = 4
	turn[DimCommunication] = 2
	tr.Update(turn, false)

	gaps := tr.CriticalGaps(DefaultGapThreshold)
	// communication and problem_solving both map to "approach"; deduped.
	want := []string{FocusApproach, FocusCorrectness}
	if len(gaps) != len(want) {
		t.Fatalf("gaps = %v, want %v", gaps, want)
	}
	for i := range want {
		if gaps[i] != want[i] {
			t.Errorf("gaps[%d] = %q, want %q", i, gaps[i], want[i])
		}
	}
}

func TestBumpDifficulty_AdaptiveLadder(t *testing.T) {
	tr := NewTracker()
	cur := interview.DifficultyEasy
	cap := interview.DifficultyHard

	// Two strong turns bump easy → medium.
	tr.Update(uniformTurn(9), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyEasy {
		t.Fatalf("difficulty after one strong turn = %s, want easy", cur)
	}
	tr.Update(uniformTurn(9), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyMedium {
		t.Fatalf("difficulty after two strong turns = %s, want medium", cur)
	}

	// Two more bump medium → hard.
	tr.Update(uniformTurn(9), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyMedium {
		t.Fatalf("bump should consume the streak; difficulty = %s, want medium", cur)
	}
	tr.Update(uniformTurn(9), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyHard {
		t.Fatalf("difficulty after four strong turns = %s, want hard", cur)
	}

	// Two weak turns drop one rank at a time.
	tr.Update(uniformTurn(2), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	tr.Update(uniformTurn(2), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyMedium {
		t.Fatalf("difficulty after two weak turns = %s, want medium", cur)
	}
	tr.Update(uniformTurn(2), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	tr.Update(uniformTurn(2), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyEasy {
		t.Fatalf("difficulty after four weak turns = %s, want easy", cur)
	}

	// Floor at easy.
	tr.Update(uniformTurn(2), false)
	tr.Update(uniformTurn(2), false)
	cur = tr.BumpDifficulty(cur, cap, true)
	if cur != interview.DifficultyEasy {
		t.Errorf("difficulty below floor = %s, want easy", cur)
	}
}

func TestBumpDifficulty_CapAndAdaptiveOff(t *testing.T) {
	tr := NewTracker()
	tr.Update(uniformTurn(9), false)
	tr.Update(uniformTurn(9), false)

	// Never exceed the cap.
	if got := tr.BumpDifficulty(interview.DifficultyMedium, interview.DifficultyMedium, true); got != interview.DifficultyMedium {
		t.Errorf("capped bump = %s, want medium", got)
	}

	// Adaptive off pins to the cap regardless of performance.
	if got := tr.BumpDifficulty(interview.DifficultyEasy, interview.DifficultyHard, false); got != interview.DifficultyHard {
		t.Errorf("adaptive-off difficulty = %s, want hard (the cap)", got)
	}
}

func TestWeakestDimension_EmptyTracker(t *testing.T) {
	tr := NewTracker()
	if got := tr.WeakestDimension(); got != DimCommunication {
		t.Errorf("WeakestDimension on empty tracker = %s, want first dimension", got)
	}
}
