package storage

import (
	"sync"

	"github.com/aliskhannn/quiz-bot/internal/service"
)

type quizEntry struct {
	session   *service.Session
	messageID int
}

// QuizStorage provides in-memory storage for quiz sessions by chat ID.
type QuizStorage struct {
	mu      sync.RWMutex
	entries map[int64]quizEntry
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		entries: make(map[int64]quizEntry),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *QuizStorage) Store(chatID int64, session *service.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[chatID] = quizEntry{session: session}
}

// Get retrieves the session of a chat.
func (s *QuizStorage) Get(chatID int64) (*service.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[chatID]
	return e.session, ok
}

// Delete removes the session of a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, chatID)
}

// SetMessageID remembers the message that displays the chat's question card.
func (s *QuizStorage) SetMessageID(chatID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[chatID]
	if !ok {
		return
	}
	e.messageID = messageID
	s.entries[chatID] = e
}

// GetMessageID returns the message that displays the chat's question card.
func (s *QuizStorage) GetMessageID(chatID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[chatID]
	if !ok || e.messageID == 0 {
		return 0, false
	}
	return e.messageID, true
}
