package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/askedquestion"
	"github.com/abhisek/intervu/ent/seenquestion"
)

type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) MarkAsked(ctx context.Context, sessionID, questionID string) error {
	_, err := r.client.AskedQuestion.Create().
		SetSessionID(sessionID).
		SetQuestionID(questionID).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil // already marked
	}
	if err != nil {
		return fmt.Errorf("mark asked: %w", err)
	}
	return nil
}

func (r *historyRepo) AskedIDs(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := r.client.AskedQuestion.Query().
		Where(askedquestion.SessionIDEQ(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("asked ids: %w", err)
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.QuestionID
	}
	return ids, nil
}

func (r *historyRepo) MarkSeen(ctx context.Context, userID, questionID string) error {
	_, err := r.client.SeenQuestion.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}

func (r *historyRepo) SeenIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.client.SeenQuestion.Query().
		Where(seenquestion.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("seen ids: %w", err)
	}
	ids := make(map[string]bool, len(rows))
	for _, row := range rows {
		ids[row.QuestionID] = true
	}
	return ids, nil
}
