package service

import (
	"testing"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

func TestRecord(t *testing.T) {
	answers := []entities.Answer{
		entities.AnswerOf("a"),
		{},
		entities.AnswerOf("c"),
	}

	for i := range answers {
		got := Record(answers, i, "x")

		if len(got) != len(answers) {
			t.Fatalf("Record changed length: got %d, want %d", len(got), len(answers))
		}
		if !got[i].Equals("x") {
			t.Errorf("slot %d = %v, want x", i, got[i])
		}
		for j := range answers {
			if j != i && got[j] != answers[j] {
				t.Errorf("slot %d changed: got %v, want %v", j, got[j], answers[j])
			}
		}
	}
}

func TestRecordDoesNotMutateInput(t *testing.T) {
	answers := make([]entities.Answer, 2)

	_ = Record(answers, 0, "x")

	if answers[0].IsAnswered() {
		t.Fatal("Record mutated its input")
	}
}

func TestRecordReplacesPreviousAnswer(t *testing.T) {
	answers := Record(make([]entities.Answer, 1), 0, "first")
	answers = Record(answers, 0, "second")

	if !answers[0].Equals("second") {
		t.Fatalf("slot = %v, want second", answers[0])
	}
}

// Record trusts its caller; option validation happens in Session.Select.
func TestRecordStoresAnyString(t *testing.T) {
	answers := Record(make([]entities.Answer, 1), 0, "not an option")

	if !answers[0].Equals("not an option") {
		t.Fatalf("slot = %v, want the given string", answers[0])
	}
}
