package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizService starts and looks up quiz sessions, one per chat.
type QuizService struct {
	bankRepo QuestionBankRepository
	storage  SessionStorage
}

// NewQuizService creates a new QuizService.
func NewQuizService(bankRepo QuestionBankRepository, storage SessionStorage) *QuizService {
	return &QuizService{
		bankRepo: bankRepo,
		storage:  storage,
	}
}

// Start creates a fresh session for chatID, replacing any previous one.
func (s *QuizService) Start(ctx context.Context, chatID int64) (*Session, error) {
	bank, err := s.bankRepo.GetBank(ctx)
	if err != nil {
		return nil, fmt.Errorf("get question bank: %w", err)
	}

	session := NewSession(bank)
	s.storage.Store(chatID, session)

	return session, nil
}

// Get returns the active session of chatID. A non-nil sessionID must match
// the stored session, so controls of a replaced session are rejected.
func (s *QuizService) Get(chatID int64, sessionID uuid.UUID) (*Session, error) {
	session, ok := s.storage.Get(chatID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sessionID != uuid.Nil && session.ID() != sessionID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Finish drops the session of chatID.
func (s *QuizService) Finish(chatID int64) {
	s.storage.Delete(chatID)
}

// Bank returns the loaded question bank.
func (s *QuizService) Bank(ctx context.Context) (entities.QuestionBank, error) {
	return s.bankRepo.GetBank(ctx)
}
