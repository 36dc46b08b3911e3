package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/session"
)

// Memory is an in-memory implementation of every repository. Used by
// tests and by ephemeral sessions that should not touch disk.
type Memory struct {
	mu        sync.Mutex
	questions map[string]*interview.Question
	sessions  map[string]*session.Session
	messages  map[string][]*interview.Message
	asked     map[string]map[string]bool // session id -> question ids
	seen      map[string]map[string]bool // user id -> question ids
	events    []LLMEvent
	nextMsgID int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		questions: make(map[string]*interview.Question),
		sessions:  make(map[string]*session.Session),
		messages:  make(map[string][]*interview.Message),
		asked:     make(map[string]map[string]bool),
		seen:      make(map[string]map[string]bool),
	}
}

// Questions returns the in-memory QuestionRepo.
func (m *Memory) Questions() QuestionRepo { return (*memQuestions)(m) }

// Sessions returns the in-memory SessionRepo.
func (m *Memory) Sessions() SessionRepo { return (*memSessions)(m) }

// Messages returns the in-memory MessageRepo.
func (m *Memory) Messages() MessageRepo { return (*memMessages)(m) }

// History returns the in-memory HistoryRepo.
func (m *Memory) History() HistoryRepo { return (*memHistory)(m) }

// Events returns the in-memory EventRepo.
func (m *Memory) Events() EventRepo { return (*memEvents)(m) }

type memQuestions Memory

func (m *memQuestions) Create(_ context.Context, q *interview.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m *memQuestions) Get(_ context.Context, id string) (*interview.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *memQuestions) List(_ context.Context, f QuestionFilter) ([]*interview.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	excluded := make(map[string]bool, len(f.ExcludeIDs))
	for _, id := range f.ExcludeIDs {
		excluded[id] = true
	}

	var out []*interview.Question
	for _, q := range m.questions {
		if excluded[q.ID] {
			continue
		}
		if len(f.Tracks) > 0 && !containsString(f.Tracks, q.Track) {
			continue
		}
		if len(f.CompanyStyles) > 0 && !containsString(f.CompanyStyles, q.CompanyStyle) {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, q.QuestionType) {
			continue
		}
		if len(f.ExcludeTypes) > 0 && containsType(f.ExcludeTypes, q.QuestionType) {
			continue
		}
		if f.TagContains != "" && !tagMatches(q.Tags, f.TagContains) {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memQuestions) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions), nil
}

type memSessions Memory

func (m *memSessions) Create(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessions) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *memSessions) Update(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		return ErrNotFound
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessions) ListByUser(_ context.Context, userID string) ([]*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*session.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memMessages Memory

func (m *memMessages) Append(_ context.Context, sessionID string, role interview.MessageRole, content string) (*interview.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextMsgID++
	msg := &interview.Message{
		ID:        m.nextMsgID,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	m.messages[sessionID] = append(m.messages[sessionID], msg)
	return msg, nil
}

func (m *memMessages) List(_ context.Context, sessionID string) ([]*interview.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*interview.Message(nil), m.messages[sessionID]...), nil
}

type memHistory Memory

func (m *memHistory) MarkAsked(_ context.Context, sessionID, questionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.asked[sessionID] == nil {
		m.asked[sessionID] = make(map[string]bool)
	}
	m.asked[sessionID][questionID] = true
	return nil
}

func (m *memHistory) AskedIDs(_ context.Context, sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id := range m.asked[sessionID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memHistory) MarkSeen(_ context.Context, userID, questionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen[userID] == nil {
		m.seen[userID] = make(map[string]bool)
	}
	m.seen[userID][questionID] = true
	return nil
}

func (m *memHistory) SeenIDs(_ context.Context, userID string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool, len(m.seen[userID]))
	for id := range m.seen[userID] {
		out[id] = true
	}
	return out, nil
}

type memEvents Memory

func (m *memEvents) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, LLMEvent{
		ID:           len(m.events) + 1,
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		Timestamp:    time.Now(),
	})
	return nil
}

func (m *memEvents) ListLLMRequests(_ context.Context, limit int) ([]*LLMEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*LLMEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		cp := m.events[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memEvents) UsageByPurpose(_ context.Context) ([]LLMUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return aggregateByPurpose(m.events), nil
}

func (m *memEvents) UsageByModel(_ context.Context) ([]LLMModelUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return aggregateByModel(m.events), nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsType(list []interview.QuestionType, v interview.QuestionType) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}
