package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/question"
	"github.com/abhisek/intervu/internal/interview"
)

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Create(ctx context.Context, q *interview.Question) error {
	_, err := r.client.Question.Create().
		SetID(q.ID).
		SetTrack(q.Track).
		SetCompanyStyle(q.CompanyStyle).
		SetDifficulty(string(q.Difficulty)).
		SetTitle(q.Title).
		SetPrompt(q.Prompt).
		SetTags(q.Tags).
		SetFollowups(q.Followups).
		SetQuestionType(string(q.QuestionType)).
		SetExpectedTopics(q.ExpectedTopics).
		SetEvaluationFocus(q.EvaluationFocus).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*interview.Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	return questionFromRow(row), nil
}

func (r *questionRepo) List(ctx context.Context, f QuestionFilter) ([]*interview.Question, error) {
	q := r.client.Question.Query()

	if len(f.Tracks) > 0 {
		q = q.Where(question.TrackIn(f.Tracks...))
	}
	if len(f.CompanyStyles) > 0 {
		q = q.Where(question.CompanyStyleIn(f.CompanyStyles...))
	}
	if f.Difficulty != "" {
		q = q.Where(question.DifficultyEQ(string(f.Difficulty)))
	}
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		q = q.Where(question.QuestionTypeIn(types...))
	}
	if len(f.ExcludeTypes) > 0 {
		types := make([]string, len(f.ExcludeTypes))
		for i, t := range f.ExcludeTypes {
			types[i] = string(t)
		}
		q = q.Where(question.QuestionTypeNotIn(types...))
	}
	if len(f.ExcludeIDs) > 0 {
		q = q.Where(question.IDNotIn(f.ExcludeIDs...))
	}

	rows, err := q.Order(ent.Asc(question.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]*interview.Question, 0, len(rows))
	for _, row := range rows {
		iq := questionFromRow(row)
		// Tags are stored as JSON; substring matching happens here.
		if f.TagContains != "" && !tagMatches(iq.Tags, f.TagContains) {
			continue
		}
		out = append(out, iq)
	}
	return out, nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func tagMatches(tags []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func questionFromRow(row *ent.Question) *interview.Question {
	return &interview.Question{
		ID:              row.ID,
		Track:           row.Track,
		CompanyStyle:    row.CompanyStyle,
		Difficulty:      interview.Difficulty(row.Difficulty),
		Title:           row.Title,
		Prompt:          row.Prompt,
		Tags:            row.Tags,
		Followups:       row.Followups,
		QuestionType:    interview.QuestionType(row.QuestionType),
		ExpectedTopics:  row.ExpectedTopics,
		EvaluationFocus: row.EvaluationFocus,
	}
}
