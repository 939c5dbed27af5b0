package telegram

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

// bindSession re-renders the chat's question card on every session change.
func (h *Handler) bindSession(chatID int64, session *service.Session) {
	session.Subscribe(func(c service.Change) {
		var err error

		switch {
		case c.Report != nil:
			err = h.renderReport(chatID, session, c)
		case c.IndexChanged:
			// A fresh card is shown from its first line.
			if msgID, ok := h.cards.GetMessageID(chatID); ok {
				h.deleteMessage(chatID, msgID)
			}
			err = h.sendCard(chatID, session)
		default:
			err = h.editCard(chatID, session)
		}

		if err != nil {
			h.logger.Error("failed to render quiz",
				zap.Int64("chat_id", chatID),
				zap.String("session_id", session.ID().String()),
				zap.Error(err),
			)
		}
	})
}

func (h *Handler) page(session *service.Session) view.Page {
	return view.NewPage(h.texts, session.Bank(), session.State())
}

// sendCard sends the question card as a new message and remembers it.
func (h *Handler) sendCard(chatID int64, session *service.Session) error {
	p := h.page(session)

	msg := newMessage(chatID, formatCard(p))
	msg.ReplyMarkup = buildQuizCardKeyboard(p, session.ID())

	sent, err := h.sendMessage(msg)
	if err != nil {
		return err
	}

	h.cards.SetMessageID(chatID, sent.MessageID)
	return nil
}

// editCard redraws the current card in place.
func (h *Handler) editCard(chatID int64, session *service.Session) error {
	msgID, ok := h.cards.GetMessageID(chatID)
	if !ok {
		return h.sendCard(chatID, session)
	}

	p := h.page(session)
	kb := buildQuizCardKeyboard(p, session.ID())

	edit := newEdit(chatID, msgID, formatCard(p))
	edit.ReplyMarkup = &kb

	return h.send(edit)
}

// renderReport closes the card and sends the full result.
func (h *Handler) renderReport(chatID int64, session *service.Session, c service.Change) error {
	if msgID, ok := h.cards.GetMessageID(chatID); ok {
		// No reply markup: the controls are removed.
		_ = h.send(newEdit(chatID, msgID, formatSubmittedCard(h.page(session))))
	}

	msg := newMessage(chatID, formatReport(*c.Report))
	msg.ReplyMarkup = buildQuizResultKeyboard()

	return h.send(msg)
}
