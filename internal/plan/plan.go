// Package plan precomputes the per-session question slot plan: which
// positions are behavioral, system design, or coding. Built once at
// session start and persisted with the session state.
package plan

import "github.com/abhisek/intervu/internal/interview"

// SlotKind is the question kind assigned to a plan position.
type SlotKind string

const (
	SlotBehavioral   SlotKind = "behavioral"
	SlotCoding       SlotKind = "coding"
	SlotSystemDesign SlotKind = "system_design"
)

// QuestionType returns the interview question type matching the slot.
func (k SlotKind) QuestionType() interview.QuestionType {
	switch k {
	case SlotBehavioral:
		return interview.TypeBehavioral
	case SlotSystemDesign:
		return interview.TypeSystemDesign
	}
	return interview.TypeCoding
}

// Slot is one planned question position (1-based).
type Slot struct {
	Position int      `json:"position"`
	Kind     SlotKind `json:"kind"`
}

// Plan is the full slot assignment for a session. Length always equals
// the session's max question count; position 1 is never behavioral.
type Plan struct {
	Slots []Slot `json:"slots"`
}

// KindAt returns the slot kind for a 1-based question position,
// defaulting to coding for out-of-range positions.
func (p Plan) KindAt(position int) SlotKind {
	if position < 1 || position > len(p.Slots) {
		return SlotCoding
	}
	return p.Slots[position-1].Kind
}

// behavioralPreference maps the behavioral question target to the
// preferred positions, tried in order.
var behavioralPreference = map[int][]int{
	1: {3, 4, 2, 5, 6, 7},
	2: {3, 5, 2, 4, 6, 7},
	3: {2, 4, 5, 3, 6, 7},
}

// systemDesignPreference orders positions for system-design slots.
var systemDesignPreference = []int{2, 4, 6, 5, 3, 7}

// Build computes the slot plan. behavioralTarget is clamped to [0, 3].
// For the engineer track one system-design slot is allotted, two when
// maxQuestions >= 6.
func Build(maxQuestions, behavioralTarget int, track string) Plan {
	if maxQuestions < 1 {
		maxQuestions = 1
	}
	if behavioralTarget < 0 {
		behavioralTarget = 0
	}
	if behavioralTarget > 3 {
		behavioralTarget = 3
	}

	kinds := make(map[int]SlotKind, maxQuestions)

	// Behavioral positions from the preference table, restricted to
	// [2, maxQuestions], sequential fill if the list runs out.
	if behavioralTarget > 0 {
		placed := 0
		for _, pos := range behavioralPreference[behavioralTarget] {
			if placed == behavioralTarget {
				break
			}
			if pos < 2 || pos > maxQuestions || kinds[pos] != "" {
				continue
			}
			kinds[pos] = SlotBehavioral
			placed++
		}
		for pos := 2; pos <= maxQuestions && placed < behavioralTarget; pos++ {
			if kinds[pos] == "" {
				kinds[pos] = SlotBehavioral
				placed++
			}
		}
	}

	// System-design slots for the engineer track, skipping claimed
	// positions.
	if track == interview.TrackEngineer {
		target := 1
		if maxQuestions >= 6 {
			target = 2
		}
		placed := 0
		for _, pos := range systemDesignPreference {
			if placed == target {
				break
			}
			if pos < 2 || pos > maxQuestions || kinds[pos] != "" {
				continue
			}
			kinds[pos] = SlotSystemDesign
			placed++
		}
	}

	slots := make([]Slot, maxQuestions)
	for i := range slots {
		pos := i + 1
		kind := kinds[pos]
		if kind == "" {
			kind = SlotCoding
		}
		slots[i] = Slot{Position: pos, Kind: kind}
	}
	return Plan{Slots: slots}
}
