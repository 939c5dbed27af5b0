package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/infra/postgres"
)

var ErrBankNotFound = errors.New("question bank not found")

// QuestionRepository reads and writes question banks in the database.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a new QuestionRepository with the provided database handle.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// LoadBank retrieves the bank with the given name and its questions in order.
func (r *QuestionRepository) LoadBank(ctx context.Context, name string) (entities.QuestionBank, error) {
	var bank entities.QuestionBank

	err := r.db.QueryRow(ctx, `SELECT title FROM question_banks WHERE name = $1`, name).Scan(&bank.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.QuestionBank{}, ErrBankNotFound
		}
		return entities.QuestionBank{}, fmt.Errorf("get question bank: %w", err)
	}

	query := `
		SELECT code, prompt, options, correct_answer
		FROM questions
		WHERE bank_name = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return entities.QuestionBank{}, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q entities.Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.Options, &q.CorrectAnswer); err != nil {
			return entities.QuestionBank{}, fmt.Errorf("scan question: %w", err)
		}
		bank.Questions = append(bank.Questions, q)
	}

	if err := rows.Err(); err != nil {
		return entities.QuestionBank{}, fmt.Errorf("iterate questions: %w", err)
	}

	return bank, nil
}

// SaveBank replaces the bank with the given name. Call it inside a
// transaction so readers never observe a partially written bank.
func (r *QuestionRepository) SaveBank(ctx context.Context, name string, bank entities.QuestionBank) error {
	query := `
		INSERT INTO question_banks (name, title)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET title = EXCLUDED.title
	`
	if _, err := r.db.Exec(ctx, query, name, bank.Title); err != nil {
		return fmt.Errorf("upsert question bank: %w", err)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM questions WHERE bank_name = $1`, name); err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}

	for i, q := range bank.Questions {
		_, err := r.db.Exec(ctx, `
			INSERT INTO questions (bank_name, position, code, prompt, options, correct_answer)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, name, i, q.ID, q.Prompt, q.Options, q.CorrectAnswer)
		if err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
	}

	return nil
}
