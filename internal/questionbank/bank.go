// Package questionbank ships the built-in question dataset and seeds it
// into a question repository.
package questionbank

import (
	_ "embed"
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/store"
)

//go:embed questions.yaml
var questionsYAML []byte

type bankFile struct {
	Questions []bankQuestion `yaml:"questions"`
}

type bankQuestion struct {
	ID              string   `yaml:"id"`
	Track           string   `yaml:"track"`
	CompanyStyle    string   `yaml:"company_style"`
	Difficulty      string   `yaml:"difficulty"`
	Title           string   `yaml:"title"`
	Prompt          string   `yaml:"prompt"`
	QuestionType    string   `yaml:"question_type"`
	Tags            []string `yaml:"tags"`
	Followups       []string `yaml:"followups"`
	ExpectedTopics  []string `yaml:"expected_topics"`
	EvaluationFocus []string `yaml:"evaluation_focus"`
}

// Load parses the embedded dataset.
func Load() ([]*interview.Question, error) {
	var file bankFile
	if err := yaml.Unmarshal(questionsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	questions := make([]*interview.Question, 0, len(file.Questions))
	seen := make(map[string]bool, len(file.Questions))
	for i, bq := range file.Questions {
		if bq.ID == "" {
			return nil, fmt.Errorf("question %d: missing id", i)
		}
		if seen[bq.ID] {
			return nil, fmt.Errorf("question %q: duplicate id", bq.ID)
		}
		seen[bq.ID] = true
		if bq.Prompt == "" {
			return nil, fmt.Errorf("question %q: missing prompt", bq.ID)
		}

		qt := interview.QuestionType(bq.QuestionType)
		switch qt {
		case interview.TypeCoding, interview.TypeSystemDesign,
			interview.TypeBehavioral, interview.TypeConceptual:
		default:
			return nil, fmt.Errorf("question %q: unknown question_type %q", bq.ID, bq.QuestionType)
		}

		questions = append(questions, &interview.Question{
			ID:              bq.ID,
			Track:           bq.Track,
			CompanyStyle:    bq.CompanyStyle,
			Difficulty:      interview.ParseDifficulty(bq.Difficulty),
			Title:           bq.Title,
			Prompt:          bq.Prompt,
			QuestionType:    qt,
			Tags:            bq.Tags,
			Followups:       bq.Followups,
			ExpectedTopics:  bq.ExpectedTopics,
			EvaluationFocus: bq.EvaluationFocus,
		})
	}
	return questions, nil
}

// Seed inserts every bank question that is not already in the
// repository. Returns how many were inserted.
func Seed(ctx context.Context, repo store.QuestionRepo) (int, error) {
	questions, err := Load()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, q := range questions {
		_, err := repo.Get(ctx, q.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return inserted, fmt.Errorf("check question %q: %w", q.ID, err)
		}
		if err := repo.Create(ctx, q); err != nil {
			return inserted, fmt.Errorf("insert question %q: %w", q.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
