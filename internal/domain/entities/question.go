// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBank       = errors.New("question bank is empty")
	ErrInvalidQuestion = errors.New("invalid question")
)

// Question is a single multiple-choice question of the quiz.
// It is immutable once the bank is loaded.
type Question struct {
	ID            string   `json:"q"`             // unique question identifier (q1, q2, ...)
	Prompt        string   `json:"question"`      // question text shown to the user
	Options       []string `json:"options"`       // ordered answer options
	CorrectAnswer string   `json:"correctAnswer"` // must equal one of Options verbatim
}

// HasOption reports whether opt is one of the question's declared options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// QuestionBank is the ordered, fixed set of questions of a quiz.
type QuestionBank struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Len returns the number of questions in the bank.
func (b QuestionBank) Len() int {
	return len(b.Questions)
}

// At returns the question at index i.
func (b QuestionBank) At(i int) Question {
	return b.Questions[i]
}

// Validate checks that the bank has at least one question and that every
// question has a prompt, options and a correct answer among its options.
func (b QuestionBank) Validate() error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}

	for i, q := range b.Questions {
		switch {
		case q.Prompt == "":
			return fmt.Errorf("%w: question %d has no prompt", ErrInvalidQuestion, i+1)
		case len(q.Options) == 0:
			return fmt.Errorf("%w: question %d has no options", ErrInvalidQuestion, i+1)
		case !q.HasOption(q.CorrectAnswer):
			return fmt.Errorf("%w: question %d: correct answer %q is not an option", ErrInvalidQuestion, i+1, q.CorrectAnswer)
		}
	}

	return nil
}
