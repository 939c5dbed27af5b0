package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-bot/internal/service"
)

// BotAPI is the subset of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuizService interface {
	Start(ctx context.Context, chatID int64) (*service.Session, error)
	Get(chatID int64, sessionID uuid.UUID) (*service.Session, error)
	Finish(chatID int64)
}

// CardStorage remembers which message shows the question card of a chat.
type CardStorage interface {
	SetMessageID(chatID int64, messageID int)
	GetMessageID(chatID int64) (int, bool)
}
