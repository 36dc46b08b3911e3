package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/intervu/internal/store"
)

func TestLogging_RecordsProviderNameAndModel(t *testing.T) {
	mem := store.NewMemory()
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"Welcome to the interview."`),
		Usage:   Usage{InputTokens: 40, OutputTokens: 12},
	})
	p := WithLogging(inner, "anthropic", mem.Events())

	ctx := WithPurpose(context.Background(), "greeting")
	if _, err := p.Generate(ctx, Request{
		Messages:  []Message{{Role: RoleUser, Content: "Greet the candidate."}},
		MaxTokens: 128,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := mem.Events().ListLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want the provider name, not the model", ev.Provider)
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want %q", ev.Model, "mock")
	}
	if ev.Purpose != "greeting" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "greeting")
	}
	if ev.InputTokens != 40 || ev.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 40/12", ev.InputTokens, ev.OutputTokens)
	}
	if !ev.Success {
		t.Error("event not marked successful")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mem := store.NewMemory()
	inner := NewMockProvider() // empty queue: every call fails
	p := WithLogging(inner, "openai", mem.Events())

	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "test"}},
	}); err == nil {
		t.Fatal("expected error from exhausted mock")
	}

	events, err := mem.Events().ListLLMRequests(context.Background(), 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Success {
		t.Error("failed request logged as success")
	}
	if events[0].ErrorMessage == "" {
		t.Error("failure event missing error message")
	}
	if events[0].Provider != "openai" {
		t.Errorf("provider = %q, want %q", events[0].Provider, "openai")
	}
}
