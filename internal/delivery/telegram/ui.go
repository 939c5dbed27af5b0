package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-bot/internal/view"
)

const (
	markChecked   = "🔘"
	markUnchecked = "⚪"
	markDisabled  = "🔒"
)

// buildQuizCardKeyboard builds the keyboard of a question card: one
// single-select button per option, then navigation and submit rows.
// Disabled controls stay visible but only send a no-op callback.
func buildQuizCardKeyboard(p view.Page, sessionID uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(p.Options)+2)

	for _, opt := range p.Options {
		mark := markUnchecked
		if opt.Checked {
			mark = markChecked
		}
		button := tgbotapi.NewInlineKeyboardButtonData(mark+" "+opt.Label, buildQuizOptionCallback(sessionID, opt.Index))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			controlButton(p.Previous, "◀️", sessionID, quizPrevious),
			controlButton(p.Next, "▶️", sessionID, quizNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			controlButton(p.Submit, "✅", sessionID, quizSubmit),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func controlButton(c view.Control, icon string, sessionID uuid.UUID, op string) tgbotapi.InlineKeyboardButton {
	if !c.Enabled {
		return tgbotapi.NewInlineKeyboardButtonData(markDisabled+" "+c.Label, buildQuizControlCallback(sessionID, quizNoop))
	}
	return tgbotapi.NewInlineKeyboardButtonData(icon+" "+c.Label, buildQuizControlCallback(sessionID, op))
}

// buildStartKeyboard builds the keyboard offering to start a quiz.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
	)
}
