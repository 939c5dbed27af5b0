package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleStart greets the user and offers to start a quiz.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

// handleQuiz starts a new quiz session for the chat, replacing the old one.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(ctx, chatID)
	}
}

func (h *Handler) startQuiz(ctx context.Context, chatID int64) error {
	oldCardID, hadCard := h.cards.GetMessageID(chatID)

	session, err := h.quizService.Start(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to start quiz session",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return h.send(newPlainMessage(chatID, msgQuizUnavailable))
	}

	h.logger.Debug("quiz session created",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID().String()),
		zap.Int("total_questions", session.Bank().Len()),
	)

	if hadCard {
		h.deleteMessage(chatID, oldCardID)
	}

	h.bindSession(chatID, session)

	if err := h.sendCard(chatID, session); err != nil {
		return fmt.Errorf("send first question: %w", err)
	}

	return nil
}

func (h *Handler) deleteMessage(chatID int64, messageID int) {
	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		h.logger.Debug("failed to delete message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
