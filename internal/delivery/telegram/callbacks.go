package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

// callbackReply is the acknowledgement shown for a button press.
type callbackReply struct {
	Text  string
	Alert bool
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, callbackReply{})
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	var reply callbackReply

	switch data.Action {
	case actionQuiz:
		reply = h.handleQuizCallback(ctx, chatID, data)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, reply)
}

func (h *Handler) handleQuizCallback(ctx context.Context, chatID int64, data callbackData) callbackReply {
	if len(data.Params) == 1 && data.Params[0] == quizStart {
		_ = h.withErrorHandling(h.handleQuiz())(ctx, chatID)
		return callbackReply{}
	}

	qc, ok := parseQuizCallback(data.Params)
	if !ok {
		h.logger.Debug("invalid quiz callback", zap.String("data", data.Raw))
		return callbackReply{}
	}

	session, err := h.quizService.Get(chatID, qc.SessionID)
	if err != nil {
		return callbackReply{Text: msgSessionExpired}
	}

	switch qc.Op {
	case quizOption:
		err = session.Select(qc.Option)
	case quizPrevious:
		_, err = session.Previous()
	case quizNext:
		_, err = session.Next()
	case quizSubmit:
		return h.submit(chatID, session)
	case quizNoop:
		return callbackReply{Text: msgControlDisabled}
	}

	switch {
	case err == nil:
		return callbackReply{}
	case errors.Is(err, service.ErrInvalidOption):
		return callbackReply{Text: msgInvalidOption}
	case errors.Is(err, service.ErrSessionSubmitted):
		return callbackReply{Text: msgSessionExpired}
	default:
		h.logger.Error("quiz callback failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return callbackReply{Text: msgInternalError}
	}
}

// submit scores the session and answers with a blocking alert.
func (h *Handler) submit(chatID int64, session *service.Session) callbackReply {
	report, err := session.Submit()
	switch {
	case errors.Is(err, service.ErrSubmitUnavailable):
		return callbackReply{Text: msgSubmitUnavailable}
	case errors.Is(err, service.ErrSessionSubmitted):
		return callbackReply{Text: msgSessionExpired}
	case err != nil:
		h.logger.Error("submit failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return callbackReply{Text: msgInternalError}
	}

	h.quizService.Finish(chatID)

	h.logger.Info("quiz submitted",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID().String()),
		zap.Int("score", report.Score),
		zap.Int("total", report.Total),
	)

	return callbackReply{Text: view.ScoreLine(report), Alert: true}
}

func (h *Handler) answerCallback(callbackID string, reply callbackReply) {
	answer := tgbotapi.NewCallback(callbackID, reply.Text)
	if reply.Alert {
		answer = tgbotapi.NewCallbackWithAlert(callbackID, reply.Text)
	}

	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
