package service

import (
	"context"
	"testing"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/repository"
)

func TestScoreAllCorrect(t *testing.T) {
	bank := testBank()
	answers := make([]entities.Answer, bank.Len())
	for i, q := range bank.Questions {
		answers[i] = entities.AnswerOf(q.CorrectAnswer)
	}

	report := Score(bank, answers)

	if report.Score != bank.Len() {
		t.Errorf("Score = %d, want %d", report.Score, bank.Len())
	}
	for _, e := range report.Entries {
		if !e.IsCorrect {
			t.Errorf("entry %d is not correct", e.Index)
		}
	}
}

func TestScoreAllUnanswered(t *testing.T) {
	bank := testBank()

	report := Score(bank, make([]entities.Answer, bank.Len()))

	if report.Score != 0 {
		t.Errorf("Score = %d, want 0", report.Score)
	}
	if report.Total != bank.Len() {
		t.Errorf("Total = %d, want %d", report.Total, bank.Len())
	}
	if len(report.Entries) != bank.Len() {
		t.Fatalf("len(Entries) = %d, want %d", len(report.Entries), bank.Len())
	}
	for i, e := range report.Entries {
		if e.IsCorrect || e.UserAnswer.IsAnswered() {
			t.Errorf("entry %d = %+v, want unanswered and incorrect", i, e)
		}
		if e.Index != i {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
		if e.CorrectAnswer != bank.At(i).CorrectAnswer {
			t.Errorf("entry %d correct answer = %q", i, e.CorrectAnswer)
		}
	}
}

func TestScoreExactMatch(t *testing.T) {
	bank := entities.QuestionBank{Questions: []entities.Question{
		{ID: "q1", Prompt: "?", Options: []string{"Props", "props"}, CorrectAnswer: "props"},
	}}

	tests := []struct {
		name   string
		answer entities.Answer
		want   bool
	}{
		{name: "exact", answer: entities.AnswerOf("props"), want: true},
		{name: "case differs", answer: entities.AnswerOf("Props"), want: false},
		{name: "trailing space", answer: entities.AnswerOf("props "), want: false},
		{name: "unanswered", answer: entities.Answer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Score(bank, []entities.Answer{tt.answer})
			if report.Entries[0].IsCorrect != tt.want {
				t.Errorf("IsCorrect = %v, want %v", report.Entries[0].IsCorrect, tt.want)
			}
		})
	}
}

func TestScoreReferenceScenario(t *testing.T) {
	repo, err := repository.NewEmbeddedQuestionRepository()
	if err != nil {
		t.Fatalf("load embedded bank: %v", err)
	}
	bank, _ := repo.GetBank(context.Background())
	if bank.Len() != 10 {
		t.Fatalf("bank has %d questions, want 10", bank.Len())
	}

	answers := make([]entities.Answer, bank.Len())
	answers = Record(answers, 0, "JavaScript XML")
	answers = Record(answers, 1, "state")

	report := Score(bank, answers)

	if report.Score != 1 {
		t.Fatalf("Score = %d, want 1", report.Score)
	}
	if !report.Entries[0].IsCorrect {
		t.Error("entry 0 should be correct")
	}
	for i := 1; i < 10; i++ {
		if report.Entries[i].IsCorrect {
			t.Errorf("entry %d should be incorrect", i)
		}
	}
}
