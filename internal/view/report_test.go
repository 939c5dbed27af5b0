package view

import (
	"testing"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

func TestReportText(t *testing.T) {
	report := entities.ScoreReport{
		Score: 1,
		Total: 3,
		Entries: []entities.ReportEntry{
			{Index: 0, UserAnswer: entities.AnswerOf("JavaScript XML"), CorrectAnswer: "JavaScript XML", IsCorrect: true},
			{Index: 1, UserAnswer: entities.AnswerOf("state"), CorrectAnswer: "props"},
			{Index: 2, CorrectAnswer: "useState"},
		},
	}

	want := "Your score: 1 / 3\n\n" +
		"Q1: Your Answer - JavaScript XML ✓ | Correct Answer - JavaScript XML\n" +
		"Q2: Your Answer - state ✗ | Correct Answer - props\n" +
		"Q3: Your Answer - null ✗ | Correct Answer - useState"

	if got := ReportText(report); got != want {
		t.Errorf("ReportText() =\n%s\nwant\n%s", got, want)
	}
}

func TestScoreLine(t *testing.T) {
	got := ScoreLine(entities.ScoreReport{Score: 0, Total: 10})
	if got != "Your score: 0 / 10" {
		t.Errorf("ScoreLine() = %q", got)
	}
}
