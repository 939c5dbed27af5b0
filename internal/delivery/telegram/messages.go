// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

// User-facing messages.
const (
	msgWelcome           = "Welcome! This bot runs a short multiple-choice quiz.\n\nPick an answer for each question, move with Previous and Next, and press Submit on the last question to see your score."
	msgHelp              = "Commands:\n\n/quiz — start a new quiz\n/help — show this message\n\nUse the buttons under a question to choose an answer and to navigate."
	msgQuizUnavailable   = "Could not start the quiz, please try again later."
	msgSessionExpired    = "This quiz is no longer active. Send /quiz to start a new one."
	msgInvalidOption     = "Unknown option."
	msgSubmitUnavailable = "Submit is available on the last question."
	msgControlDisabled   = "Not available here."
	msgInternalError     = "Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Send /help to see what I can do."
	msgSubmitted         = "Submitted."
	msgYourAnswer        = "Your answer: %s"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// formatCard formats the question card: header, question, footer (MarkdownV2 safe).
func formatCard(p view.Page) string {
	var sb strings.Builder

	sb.WriteString(bold(p.Header))
	sb.WriteString("\n\n")
	sb.WriteString(bold(p.Heading()))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Question %d of %d", p.Number, p.Total)))

	if p.Footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(italic(p.Footer))
	}

	return sb.String()
}

// formatSubmittedCard formats the card once the quiz is submitted, listing
// the chosen answer instead of controls.
func formatSubmittedCard(p view.Page) string {
	chosen := entities.Answer{}
	for _, opt := range p.Options {
		if opt.Checked {
			chosen = entities.AnswerOf(opt.Label)
		}
	}

	return fmt.Sprintf("%s\n\n%s\n%s",
		formatCard(p),
		md(fmt.Sprintf(msgYourAnswer, chosen)),
		md(msgSubmitted),
	)
}

// formatReport formats the submission result (MarkdownV2 safe).
func formatReport(report entities.ScoreReport) string {
	var sb strings.Builder

	sb.WriteString(bold(view.ScoreLine(report)))
	sb.WriteString("\n\n")

	for i, e := range report.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(md(view.EntryLine(e)))
	}

	return sb.String()
}
