// Code generated by ent, DO NOT EDIT.

package interviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUserID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldRole, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldTrack, v))
}

// CompanyStyle applies equality check predicate on the "company_style" field. It's identical to CompanyStyleEQ.
func CompanyStyle(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCompanyStyle, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyCurrent applies equality check predicate on the "difficulty_current" field. It's identical to DifficultyCurrentEQ.
func DifficultyCurrent(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldDifficultyCurrent, v))
}

// Adaptive applies equality check predicate on the "adaptive" field. It's identical to AdaptiveEQ.
func Adaptive(v bool) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldAdaptive, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldStage, v))
}

// QuestionsAskedCount applies equality check predicate on the "questions_asked_count" field. It's identical to QuestionsAskedCountEQ.
func QuestionsAskedCount(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldQuestionsAskedCount, v))
}

// FollowupsUsed applies equality check predicate on the "followups_used" field. It's identical to FollowupsUsedEQ.
func FollowupsUsed(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldFollowupsUsed, v))
}

// MaxQuestions applies equality check predicate on the "max_questions" field. It's identical to MaxQuestionsEQ.
func MaxQuestions(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldMaxQuestions, v))
}

// MaxFollowupsPerQuestion applies equality check predicate on the "max_followups_per_question" field. It's identical to MaxFollowupsPerQuestionEQ.
func MaxFollowupsPerQuestion(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldMaxFollowupsPerQuestion, v))
}

// BehavioralQuestionsTarget applies equality check predicate on the "behavioral_questions_target" field. It's identical to BehavioralQuestionsTargetEQ.
func BehavioralQuestionsTarget(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldBehavioralQuestionsTarget, v))
}

// CurrentQuestionID applies equality check predicate on the "current_question_id" field. It's identical to CurrentQuestionIDEQ.
func CurrentQuestionID(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCurrentQuestionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldUserID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldRole, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldTrack, v))
}

// CompanyStyleEQ applies the EQ predicate on the "company_style" field.
func CompanyStyleEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCompanyStyle, v))
}

// CompanyStyleNEQ applies the NEQ predicate on the "company_style" field.
func CompanyStyleNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldCompanyStyle, v))
}

// CompanyStyleIn applies the In predicate on the "company_style" field.
func CompanyStyleIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldCompanyStyle, vs...))
}

// CompanyStyleNotIn applies the NotIn predicate on the "company_style" field.
func CompanyStyleNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldCompanyStyle, vs...))
}

// CompanyStyleGT applies the GT predicate on the "company_style" field.
func CompanyStyleGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldCompanyStyle, v))
}

// CompanyStyleGTE applies the GTE predicate on the "company_style" field.
func CompanyStyleGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldCompanyStyle, v))
}

// CompanyStyleLT applies the LT predicate on the "company_style" field.
func CompanyStyleLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldCompanyStyle, v))
}

// CompanyStyleLTE applies the LTE predicate on the "company_style" field.
func CompanyStyleLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldCompanyStyle, v))
}

// CompanyStyleContains applies the Contains predicate on the "company_style" field.
func CompanyStyleContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldCompanyStyle, v))
}

// CompanyStyleHasPrefix applies the HasPrefix predicate on the "company_style" field.
func CompanyStyleHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldCompanyStyle, v))
}

// CompanyStyleHasSuffix applies the HasSuffix predicate on the "company_style" field.
func CompanyStyleHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldCompanyStyle, v))
}

// CompanyStyleEqualFold applies the EqualFold predicate on the "company_style" field.
func CompanyStyleEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldCompanyStyle, v))
}

// CompanyStyleContainsFold applies the ContainsFold predicate on the "company_style" field.
func CompanyStyleContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldCompanyStyle, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldDifficulty, v))
}

// DifficultyCurrentEQ applies the EQ predicate on the "difficulty_current" field.
func DifficultyCurrentEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldDifficultyCurrent, v))
}

// DifficultyCurrentNEQ applies the NEQ predicate on the "difficulty_current" field.
func DifficultyCurrentNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldDifficultyCurrent, v))
}

// DifficultyCurrentIn applies the In predicate on the "difficulty_current" field.
func DifficultyCurrentIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldDifficultyCurrent, vs...))
}

// DifficultyCurrentNotIn applies the NotIn predicate on the "difficulty_current" field.
func DifficultyCurrentNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldDifficultyCurrent, vs...))
}

// DifficultyCurrentGT applies the GT predicate on the "difficulty_current" field.
func DifficultyCurrentGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldDifficultyCurrent, v))
}

// DifficultyCurrentGTE applies the GTE predicate on the "difficulty_current" field.
func DifficultyCurrentGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldDifficultyCurrent, v))
}

// DifficultyCurrentLT applies the LT predicate on the "difficulty_current" field.
func DifficultyCurrentLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldDifficultyCurrent, v))
}

// DifficultyCurrentLTE applies the LTE predicate on the "difficulty_current" field.
func DifficultyCurrentLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldDifficultyCurrent, v))
}

// DifficultyCurrentContains applies the Contains predicate on the "difficulty_current" field.
func DifficultyCurrentContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldDifficultyCurrent, v))
}

// DifficultyCurrentHasPrefix applies the HasPrefix predicate on the "difficulty_current" field.
func DifficultyCurrentHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldDifficultyCurrent, v))
}

// DifficultyCurrentHasSuffix applies the HasSuffix predicate on the "difficulty_current" field.
func DifficultyCurrentHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldDifficultyCurrent, v))
}

// DifficultyCurrentEqualFold applies the EqualFold predicate on the "difficulty_current" field.
func DifficultyCurrentEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldDifficultyCurrent, v))
}

// DifficultyCurrentContainsFold applies the ContainsFold predicate on the "difficulty_current" field.
func DifficultyCurrentContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldDifficultyCurrent, v))
}

// AdaptiveEQ applies the EQ predicate on the "adaptive" field.
func AdaptiveEQ(v bool) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldAdaptive, v))
}

// AdaptiveNEQ applies the NEQ predicate on the "adaptive" field.
func AdaptiveNEQ(v bool) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldAdaptive, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldStage, v))
}

// QuestionsAskedCountEQ applies the EQ predicate on the "questions_asked_count" field.
func QuestionsAskedCountEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldQuestionsAskedCount, v))
}

// QuestionsAskedCountNEQ applies the NEQ predicate on the "questions_asked_count" field.
func QuestionsAskedCountNEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldQuestionsAskedCount, v))
}

// QuestionsAskedCountIn applies the In predicate on the "questions_asked_count" field.
func QuestionsAskedCountIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldQuestionsAskedCount, vs...))
}

// QuestionsAskedCountNotIn applies the NotIn predicate on the "questions_asked_count" field.
func QuestionsAskedCountNotIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldQuestionsAskedCount, vs...))
}

// QuestionsAskedCountGT applies the GT predicate on the "questions_asked_count" field.
func QuestionsAskedCountGT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldQuestionsAskedCount, v))
}

// QuestionsAskedCountGTE applies the GTE predicate on the "questions_asked_count" field.
func QuestionsAskedCountGTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldQuestionsAskedCount, v))
}

// QuestionsAskedCountLT applies the LT predicate on the "questions_asked_count" field.
func QuestionsAskedCountLT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldQuestionsAskedCount, v))
}

// QuestionsAskedCountLTE applies the LTE predicate on the "questions_asked_count" field.
func QuestionsAskedCountLTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldQuestionsAskedCount, v))
}

// FollowupsUsedEQ applies the EQ predicate on the "followups_used" field.
func FollowupsUsedEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldFollowupsUsed, v))
}

// FollowupsUsedNEQ applies the NEQ predicate on the "followups_used" field.
func FollowupsUsedNEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldFollowupsUsed, v))
}

// FollowupsUsedIn applies the In predicate on the "followups_used" field.
func FollowupsUsedIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldFollowupsUsed, vs...))
}

// FollowupsUsedNotIn applies the NotIn predicate on the "followups_used" field.
func FollowupsUsedNotIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldFollowupsUsed, vs...))
}

// FollowupsUsedGT applies the GT predicate on the "followups_used" field.
func FollowupsUsedGT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldFollowupsUsed, v))
}

// FollowupsUsedGTE applies the GTE predicate on the "followups_used" field.
func FollowupsUsedGTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldFollowupsUsed, v))
}

// FollowupsUsedLT applies the LT predicate on the "followups_used" field.
func FollowupsUsedLT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldFollowupsUsed, v))
}

// FollowupsUsedLTE applies the LTE predicate on the "followups_used" field.
func FollowupsUsedLTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldFollowupsUsed, v))
}

// MaxQuestionsEQ applies the EQ predicate on the "max_questions" field.
func MaxQuestionsEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldMaxQuestions, v))
}

// MaxQuestionsNEQ applies the NEQ predicate on the "max_questions" field.
func MaxQuestionsNEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldMaxQuestions, v))
}

// MaxQuestionsIn applies the In predicate on the "max_questions" field.
func MaxQuestionsIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsNotIn applies the NotIn predicate on the "max_questions" field.
func MaxQuestionsNotIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldMaxQuestions, vs...))
}

// MaxQuestionsGT applies the GT predicate on the "max_questions" field.
func MaxQuestionsGT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldMaxQuestions, v))
}

// MaxQuestionsGTE applies the GTE predicate on the "max_questions" field.
func MaxQuestionsGTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldMaxQuestions, v))
}

// MaxQuestionsLT applies the LT predicate on the "max_questions" field.
func MaxQuestionsLT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldMaxQuestions, v))
}

// MaxQuestionsLTE applies the LTE predicate on the "max_questions" field.
func MaxQuestionsLTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldMaxQuestions, v))
}

// MaxFollowupsPerQuestionEQ applies the EQ predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldMaxFollowupsPerQuestion, v))
}

// MaxFollowupsPerQuestionNEQ applies the NEQ predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionNEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldMaxFollowupsPerQuestion, v))
}

// MaxFollowupsPerQuestionIn applies the In predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldMaxFollowupsPerQuestion, vs...))
}

// MaxFollowupsPerQuestionNotIn applies the NotIn predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionNotIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldMaxFollowupsPerQuestion, vs...))
}

// MaxFollowupsPerQuestionGT applies the GT predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionGT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldMaxFollowupsPerQuestion, v))
}

// MaxFollowupsPerQuestionGTE applies the GTE predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionGTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldMaxFollowupsPerQuestion, v))
}

// MaxFollowupsPerQuestionLT applies the LT predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionLT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldMaxFollowupsPerQuestion, v))
}

// MaxFollowupsPerQuestionLTE applies the LTE predicate on the "max_followups_per_question" field.
func MaxFollowupsPerQuestionLTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldMaxFollowupsPerQuestion, v))
}

// BehavioralQuestionsTargetEQ applies the EQ predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldBehavioralQuestionsTarget, v))
}

// BehavioralQuestionsTargetNEQ applies the NEQ predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetNEQ(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldBehavioralQuestionsTarget, v))
}

// BehavioralQuestionsTargetIn applies the In predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldBehavioralQuestionsTarget, vs...))
}

// BehavioralQuestionsTargetNotIn applies the NotIn predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetNotIn(vs ...int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldBehavioralQuestionsTarget, vs...))
}

// BehavioralQuestionsTargetGT applies the GT predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetGT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldBehavioralQuestionsTarget, v))
}

// BehavioralQuestionsTargetGTE applies the GTE predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetGTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldBehavioralQuestionsTarget, v))
}

// BehavioralQuestionsTargetLT applies the LT predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetLT(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldBehavioralQuestionsTarget, v))
}

// BehavioralQuestionsTargetLTE applies the LTE predicate on the "behavioral_questions_target" field.
func BehavioralQuestionsTargetLTE(v int) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldBehavioralQuestionsTarget, v))
}

// CurrentQuestionIDEQ applies the EQ predicate on the "current_question_id" field.
func CurrentQuestionIDEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDNEQ applies the NEQ predicate on the "current_question_id" field.
func CurrentQuestionIDNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDIn applies the In predicate on the "current_question_id" field.
func CurrentQuestionIDIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldCurrentQuestionID, vs...))
}

// CurrentQuestionIDNotIn applies the NotIn predicate on the "current_question_id" field.
func CurrentQuestionIDNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldCurrentQuestionID, vs...))
}

// CurrentQuestionIDGT applies the GT predicate on the "current_question_id" field.
func CurrentQuestionIDGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDGTE applies the GTE predicate on the "current_question_id" field.
func CurrentQuestionIDGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDLT applies the LT predicate on the "current_question_id" field.
func CurrentQuestionIDLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDLTE applies the LTE predicate on the "current_question_id" field.
func CurrentQuestionIDLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDContains applies the Contains predicate on the "current_question_id" field.
func CurrentQuestionIDContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDHasPrefix applies the HasPrefix predicate on the "current_question_id" field.
func CurrentQuestionIDHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDHasSuffix applies the HasSuffix predicate on the "current_question_id" field.
func CurrentQuestionIDHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDIsNil applies the IsNil predicate on the "current_question_id" field.
func CurrentQuestionIDIsNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIsNull(FieldCurrentQuestionID))
}

// CurrentQuestionIDNotNil applies the NotNil predicate on the "current_question_id" field.
func CurrentQuestionIDNotNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotNull(FieldCurrentQuestionID))
}

// CurrentQuestionIDEqualFold applies the EqualFold predicate on the "current_question_id" field.
func CurrentQuestionIDEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldCurrentQuestionID, v))
}

// CurrentQuestionIDContainsFold applies the ContainsFold predicate on the "current_question_id" field.
func CurrentQuestionIDContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldCurrentQuestionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.NotPredicates(p))
}
