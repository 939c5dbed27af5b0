package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

//go:embed data/react-quiz.json
var reactQuiz []byte

// QuestionRepository provides access to the question bank.
// The bank is loaded once and never changes afterwards.
type QuestionRepository struct {
	bank entities.QuestionBank
}

// NewQuestionRepository creates a QuestionRepository for an already loaded bank.
func NewQuestionRepository(bank entities.QuestionBank) (*QuestionRepository, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	return &QuestionRepository{
		bank: bank,
	}, nil
}

// NewEmbeddedQuestionRepository creates a QuestionRepository with the
// built-in ReactJS question bank.
func NewEmbeddedQuestionRepository() (*QuestionRepository, error) {
	bank, err := parseBank(reactQuiz)
	if err != nil {
		return nil, err
	}
	return NewQuestionRepository(bank)
}

// NewFileQuestionRepository creates a QuestionRepository from a JSON file.
func NewFileQuestionRepository(path string) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	bank, err := parseBank(data)
	if err != nil {
		return nil, err
	}
	return NewQuestionRepository(bank)
}

// GetBank returns the question bank.
func (r *QuestionRepository) GetBank(_ context.Context) (entities.QuestionBank, error) {
	return r.bank, nil
}

func parseBank(data []byte) (entities.QuestionBank, error) {
	var bank entities.QuestionBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return entities.QuestionBank{}, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}
	return bank, nil
}
