// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/intervu/ent/askedquestion"
	"github.com/abhisek/intervu/ent/interviewmessage"
	"github.com/abhisek/intervu/ent/interviewsession"
	"github.com/abhisek/intervu/ent/llmrequestevent"
	"github.com/abhisek/intervu/ent/question"
	"github.com/abhisek/intervu/ent/schema"
	"github.com/abhisek/intervu/ent/seenquestion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	askedquestionFields := schema.AskedQuestion{}.Fields()
	_ = askedquestionFields
	// askedquestionDescSessionID is the schema descriptor for session_id field.
	askedquestionDescSessionID := askedquestionFields[0].Descriptor()
	// askedquestion.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	askedquestion.SessionIDValidator = askedquestionDescSessionID.Validators[0].(func(string) error)
	// askedquestionDescQuestionID is the schema descriptor for question_id field.
	askedquestionDescQuestionID := askedquestionFields[1].Descriptor()
	// askedquestion.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	askedquestion.QuestionIDValidator = askedquestionDescQuestionID.Validators[0].(func(string) error)
	interviewmessageFields := schema.InterviewMessage{}.Fields()
	_ = interviewmessageFields
	// interviewmessageDescSessionID is the schema descriptor for session_id field.
	interviewmessageDescSessionID := interviewmessageFields[0].Descriptor()
	// interviewmessage.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewmessage.SessionIDValidator = interviewmessageDescSessionID.Validators[0].(func(string) error)
	// interviewmessageDescRole is the schema descriptor for role field.
	interviewmessageDescRole := interviewmessageFields[1].Descriptor()
	// interviewmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	interviewmessage.RoleValidator = interviewmessageDescRole.Validators[0].(func(string) error)
	// interviewmessageDescContent is the schema descriptor for content field.
	interviewmessageDescContent := interviewmessageFields[2].Descriptor()
	// interviewmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	interviewmessage.ContentValidator = interviewmessageDescContent.Validators[0].(func(string) error)
	// interviewmessageDescCreatedAt is the schema descriptor for created_at field.
	interviewmessageDescCreatedAt := interviewmessageFields[3].Descriptor()
	// interviewmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	interviewmessage.DefaultCreatedAt = interviewmessageDescCreatedAt.Default.(func() time.Time)
	interviewsessionFields := schema.InterviewSession{}.Fields()
	_ = interviewsessionFields
	// interviewsessionDescUserID is the schema descriptor for user_id field.
	interviewsessionDescUserID := interviewsessionFields[1].Descriptor()
	// interviewsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interviewsession.UserIDValidator = interviewsessionDescUserID.Validators[0].(func(string) error)
	// interviewsessionDescRole is the schema descriptor for role field.
	interviewsessionDescRole := interviewsessionFields[2].Descriptor()
	// interviewsession.DefaultRole holds the default value on creation for the role field.
	interviewsession.DefaultRole = interviewsessionDescRole.Default.(string)
	// interviewsessionDescTrack is the schema descriptor for track field.
	interviewsessionDescTrack := interviewsessionFields[3].Descriptor()
	// interviewsession.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	interviewsession.TrackValidator = interviewsessionDescTrack.Validators[0].(func(string) error)
	// interviewsessionDescCompanyStyle is the schema descriptor for company_style field.
	interviewsessionDescCompanyStyle := interviewsessionFields[4].Descriptor()
	// interviewsession.CompanyStyleValidator is a validator for the "company_style" field. It is called by the builders before save.
	interviewsession.CompanyStyleValidator = interviewsessionDescCompanyStyle.Validators[0].(func(string) error)
	// interviewsessionDescDifficulty is the schema descriptor for difficulty field.
	interviewsessionDescDifficulty := interviewsessionFields[5].Descriptor()
	// interviewsession.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	interviewsession.DifficultyValidator = interviewsessionDescDifficulty.Validators[0].(func(string) error)
	// interviewsessionDescDifficultyCurrent is the schema descriptor for difficulty_current field.
	interviewsessionDescDifficultyCurrent := interviewsessionFields[6].Descriptor()
	// interviewsession.DifficultyCurrentValidator is a validator for the "difficulty_current" field. It is called by the builders before save.
	interviewsession.DifficultyCurrentValidator = interviewsessionDescDifficultyCurrent.Validators[0].(func(string) error)
	// interviewsessionDescAdaptive is the schema descriptor for adaptive field.
	interviewsessionDescAdaptive := interviewsessionFields[7].Descriptor()
	// interviewsession.DefaultAdaptive holds the default value on creation for the adaptive field.
	interviewsession.DefaultAdaptive = interviewsessionDescAdaptive.Default.(bool)
	// interviewsessionDescStage is the schema descriptor for stage field.
	interviewsessionDescStage := interviewsessionFields[8].Descriptor()
	// interviewsession.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	interviewsession.StageValidator = interviewsessionDescStage.Validators[0].(func(string) error)
	// interviewsessionDescQuestionsAskedCount is the schema descriptor for questions_asked_count field.
	interviewsessionDescQuestionsAskedCount := interviewsessionFields[9].Descriptor()
	// interviewsession.DefaultQuestionsAskedCount holds the default value on creation for the questions_asked_count field.
	interviewsession.DefaultQuestionsAskedCount = interviewsessionDescQuestionsAskedCount.Default.(int)
	// interviewsessionDescFollowupsUsed is the schema descriptor for followups_used field.
	interviewsessionDescFollowupsUsed := interviewsessionFields[10].Descriptor()
	// interviewsession.DefaultFollowupsUsed holds the default value on creation for the followups_used field.
	interviewsession.DefaultFollowupsUsed = interviewsessionDescFollowupsUsed.Default.(int)
	// interviewsessionDescCurrentQuestionID is the schema descriptor for current_question_id field.
	interviewsessionDescCurrentQuestionID := interviewsessionFields[14].Descriptor()
	// interviewsession.DefaultCurrentQuestionID holds the default value on creation for the current_question_id field.
	interviewsession.DefaultCurrentQuestionID = interviewsessionDescCurrentQuestionID.Default.(string)
	// interviewsessionDescCreatedAt is the schema descriptor for created_at field.
	interviewsessionDescCreatedAt := interviewsessionFields[16].Descriptor()
	// interviewsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	interviewsession.DefaultCreatedAt = interviewsessionDescCreatedAt.Default.(func() time.Time)
	// interviewsessionDescUpdatedAt is the schema descriptor for updated_at field.
	interviewsessionDescUpdatedAt := interviewsessionFields[17].Descriptor()
	// interviewsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interviewsession.DefaultUpdatedAt = interviewsessionDescUpdatedAt.Default.(func() time.Time)
	// interviewsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interviewsession.UpdateDefaultUpdatedAt = interviewsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// interviewsessionDescID is the schema descriptor for id field.
	interviewsessionDescID := interviewsessionFields[0].Descriptor()
	// interviewsession.IDValidator is a validator for the "id" field. It is called by the builders before save.
	interviewsession.IDValidator = interviewsessionDescID.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescTrack is the schema descriptor for track field.
	questionDescTrack := questionFields[1].Descriptor()
	// question.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	question.TrackValidator = questionDescTrack.Validators[0].(func(string) error)
	// questionDescCompanyStyle is the schema descriptor for company_style field.
	questionDescCompanyStyle := questionFields[2].Descriptor()
	// question.CompanyStyleValidator is a validator for the "company_style" field. It is called by the builders before save.
	question.CompanyStyleValidator = questionDescCompanyStyle.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[3].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescTitle is the schema descriptor for title field.
	questionDescTitle := questionFields[4].Descriptor()
	// question.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	question.TitleValidator = questionDescTitle.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[5].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[8].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	seenquestionFields := schema.SeenQuestion{}.Fields()
	_ = seenquestionFields
	// seenquestionDescUserID is the schema descriptor for user_id field.
	seenquestionDescUserID := seenquestionFields[0].Descriptor()
	// seenquestion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	seenquestion.UserIDValidator = seenquestionDescUserID.Validators[0].(func(string) error)
	// seenquestionDescQuestionID is the schema descriptor for question_id field.
	seenquestionDescQuestionID := seenquestionFields[1].Descriptor()
	// seenquestion.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	seenquestion.QuestionIDValidator = seenquestionDescQuestionID.Validators[0].(func(string) error)
}
