package service

import (
	"context"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// QuestionBankRepository provides the question bank.
type QuestionBankRepository interface {
	GetBank(ctx context.Context) (entities.QuestionBank, error)
}

// SessionStorage keeps the active session of every chat.
type SessionStorage interface {
	Store(chatID int64, session *Session)
	Get(chatID int64) (*Session, bool)
	Delete(chatID int64)
}
