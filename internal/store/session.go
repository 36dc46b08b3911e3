package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *session.Session) error {
	_, err := r.client.InterviewSession.Create().
		SetID(s.ID).
		SetUserID(s.UserID).
		SetRole(s.Role).
		SetTrack(s.Track).
		SetCompanyStyle(s.CompanyStyle).
		SetDifficulty(string(s.Difficulty)).
		SetDifficultyCurrent(string(s.DifficultyCurrent)).
		SetAdaptive(s.Adaptive).
		SetStage(string(s.Stage)).
		SetQuestionsAskedCount(s.QuestionsAskedCount).
		SetFollowupsUsed(s.FollowupsUsed).
		SetMaxQuestions(s.MaxQuestions).
		SetMaxFollowupsPerQuestion(s.MaxFollowupsPerQuestion).
		SetBehavioralQuestionsTarget(s.BehavioralQuestionsTarget).
		SetCurrentQuestionID(s.CurrentQuestionID).
		SetSkillState(s.SkillState).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", s.ID, err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*session.Session, error) {
	row, err := r.client.InterviewSession.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sessionFromRow(row), nil
}

// Update replaces every mutable field, including the whole skill-state
// blob, in one write. The caller serializes turns per session id.
func (r *sessionRepo) Update(ctx context.Context, s *session.Session) error {
	_, err := r.client.InterviewSession.UpdateOneID(s.ID).
		SetDifficultyCurrent(string(s.DifficultyCurrent)).
		SetStage(string(s.Stage)).
		SetQuestionsAskedCount(s.QuestionsAskedCount).
		SetFollowupsUsed(s.FollowupsUsed).
		SetCurrentQuestionID(s.CurrentQuestionID).
		SetSkillState(s.SkillState).
		Save(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update session %s: %w", s.ID, err)
	}
	return nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID string) ([]*session.Session, error) {
	rows, err := r.client.InterviewSession.Query().
		Where(interviewsession.UserIDEQ(userID)).
		Order(ent.Desc(interviewsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions for %s: %w", userID, err)
	}
	out := make([]*session.Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromRow(row)
	}
	return out, nil
}

func sessionFromRow(row *ent.InterviewSession) *session.Session {
	st := row.SkillState
	if st == nil {
		st = session.NewState()
	}
	st.Default()

	return &session.Session{
		ID:                        row.ID,
		UserID:                    row.UserID,
		Role:                      row.Role,
		Track:                     row.Track,
		CompanyStyle:              row.CompanyStyle,
		Difficulty:                interview.Difficulty(row.Difficulty),
		DifficultyCurrent:         interview.Difficulty(row.DifficultyCurrent),
		Adaptive:                  row.Adaptive,
		Stage:                     interview.Stage(row.Stage),
		QuestionsAskedCount:       row.QuestionsAskedCount,
		FollowupsUsed:             row.FollowupsUsed,
		MaxQuestions:              row.MaxQuestions,
		MaxFollowupsPerQuestion:   row.MaxFollowupsPerQuestion,
		BehavioralQuestionsTarget: row.BehavioralQuestionsTarget,
		CurrentQuestionID:         row.CurrentQuestionID,
		SkillState:                st,
	}
}
