package questionbank

import (
	"context"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/store"
)

func TestLoad_DatasetIsWellFormed(t *testing.T) {
	questions, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("empty question bank")
	}

	haveBehavioral := false
	haveSystemDesign := false
	for _, q := range questions {
		if q.Title == "" {
			t.Errorf("question %s: missing title", q.ID)
		}
		if q.Track == "" || q.CompanyStyle == "" {
			t.Errorf("question %s: missing track or company style", q.ID)
		}
		switch q.QuestionType {
		case interview.TypeBehavioral:
			haveBehavioral = true
			if q.Track != interview.TrackBehavioral {
				t.Errorf("question %s: behavioral question on track %q", q.ID, q.Track)
			}
		case interview.TypeSystemDesign:
			haveSystemDesign = true
		}
	}
	if !haveBehavioral {
		t.Error("bank has no behavioral questions; warmup flow needs them")
	}
	if !haveSystemDesign {
		t.Error("bank has no system design questions; engineer plans need them")
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	first, err := Seed(ctx, mem.Questions())
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first == 0 {
		t.Fatal("first seed inserted nothing")
	}

	second, err := Seed(ctx, mem.Questions())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second != 0 {
		t.Errorf("second seed inserted %d, want 0", second)
	}

	count, err := mem.Questions().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != first {
		t.Errorf("count = %d, want %d", count, first)
	}
}
