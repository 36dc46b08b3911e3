package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/interviewmessage"
	"github.com/abhisek/intervu/internal/interview"
)

type messageRepo struct {
	client *ent.Client
}

func (r *messageRepo) Append(ctx context.Context, sessionID string, role interview.MessageRole, content string) (*interview.Message, error) {
	row, err := r.client.InterviewMessage.Create().
		SetSessionID(sessionID).
		SetRole(string(role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return messageFromRow(row), nil
}

func (r *messageRepo) List(ctx context.Context, sessionID string) ([]*interview.Message, error) {
	rows, err := r.client.InterviewMessage.Query().
		Where(interviewmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(interviewmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]*interview.Message, len(rows))
	for i, row := range rows {
		out[i] = messageFromRow(row)
	}
	return out, nil
}

func messageFromRow(row *ent.InterviewMessage) *interview.Message {
	return &interview.Message{
		ID:        row.ID,
		SessionID: row.SessionID,
		Role:      interview.MessageRole(row.Role),
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
