package view

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

const (
	markCorrect   = "✓"
	markIncorrect = "✗"
)

// ScoreLine returns the headline of a report, e.g. "Your score: 7 / 10".
func ScoreLine(report entities.ScoreReport) string {
	return fmt.Sprintf("Your score: %d / %d", report.Score, report.Total)
}

// EntryLine describes one question of a report.
func EntryLine(e entities.ReportEntry) string {
	mark := markIncorrect
	if e.IsCorrect {
		mark = markCorrect
	}

	return fmt.Sprintf(
		"Q%d: Your Answer - %s %s | Correct Answer - %s",
		e.Index+1,
		e.UserAnswer,
		mark,
		e.CorrectAnswer,
	)
}

// ReportText renders the full submission result.
func ReportText(report entities.ScoreReport) string {
	var sb strings.Builder

	sb.WriteString(ScoreLine(report))
	sb.WriteString("\n\n")

	for i, e := range report.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(EntryLine(e))
	}

	return sb.String()
}
