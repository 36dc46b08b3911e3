package plan

import (
	"testing"

	"github.com/abhisek/intervu/internal/interview"
)

func positionsOf(p Plan, kind SlotKind) []int {
	var out []int
	for _, s := range p.Slots {
		if s.Kind == kind {
			out = append(out, s.Position)
		}
	}
	return out
}

func TestBuild_BehavioralPlacement(t *testing.T) {
	p := Build(7, 2, "data")
	got := positionsOf(p, SlotBehavioral)
	want := []int{3, 5}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("behavioral positions = %v, want %v", got, want)
	}
	if len(p.Slots) != 7 {
		t.Errorf("plan length = %d, want 7", len(p.Slots))
	}
}

func TestBuild_PositionOneNeverBehavioral(t *testing.T) {
	for target := 0; target <= 3; target++ {
		for maxQ := 1; maxQ <= 10; maxQ++ {
			p := Build(maxQ, target, interview.TrackEngineer)
			if p.Slots[0].Kind == SlotBehavioral {
				t.Errorf("target=%d maxQ=%d: position 1 is behavioral", target, maxQ)
			}
			if len(p.Slots) != maxQ {
				t.Errorf("target=%d maxQ=%d: plan length = %d", target, maxQ, len(p.Slots))
			}
		}
	}
}

func TestBuild_BehavioralTargetThree(t *testing.T) {
	p := Build(7, 3, "data")
	got := positionsOf(p, SlotBehavioral)
	want := []int{2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("behavioral positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("behavioral positions = %v, want %v", got, want)
		}
	}
}

func TestBuild_EngineerSystemDesign(t *testing.T) {
	// Small session: one system-design slot, first free preference spot.
	p := Build(5, 1, interview.TrackEngineer)
	sd := positionsOf(p, SlotSystemDesign)
	if len(sd) != 1 || sd[0] != 2 {
		t.Errorf("system design positions = %v, want [2]", sd)
	}

	// Large session: two slots, skipping behavioral claims.
	p = Build(7, 2, interview.TrackEngineer) // behavioral at 3, 5
	sd = positionsOf(p, SlotSystemDesign)
	if len(sd) != 2 || sd[0] != 2 || sd[1] != 4 {
		t.Errorf("system design positions = %v, want [2 4]", sd)
	}

	// Non-engineer tracks get none.
	p = Build(7, 2, "data")
	if sd := positionsOf(p, SlotSystemDesign); len(sd) != 0 {
		t.Errorf("non-engineer system design positions = %v, want none", sd)
	}
}

func TestBuild_SequentialFallback(t *testing.T) {
	// maxQuestions 3 with target 3: preference list only offers 2 and 3
	// in range, so the remaining slot comes from sequential fill — but
	// positions 2 and 3 are already taken, leaving only 2 behavioral.
	p := Build(3, 3, "data")
	got := positionsOf(p, SlotBehavioral)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("behavioral positions = %v, want [2 3]", got)
	}
	if p.Slots[0].Kind != SlotCoding {
		t.Errorf("position 1 = %s, want coding", p.Slots[0].Kind)
	}
}

func TestKindAt(t *testing.T) {
	p := Build(7, 2, interview.TrackEngineer)
	if k := p.KindAt(3); k != SlotBehavioral {
		t.Errorf("KindAt(3) = %s, want behavioral", k)
	}
	if k := p.KindAt(99); k != SlotCoding {
		t.Errorf("KindAt(out of range) = %s, want coding", k)
	}
	if k := p.KindAt(0); k != SlotCoding {
		t.Errorf("KindAt(0) = %s, want coding", k)
	}
}
