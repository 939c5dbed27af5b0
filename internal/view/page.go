// Package view turns quiz state into transport-neutral page and report models.
package view

import (
	"fmt"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

const defaultTitle = "Quiz"

// Navigation control labels.
const (
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelSubmit   = "Submit"
)

// Texts are the static regions around the question.
type Texts struct {
	Title  string // header; falls back to the bank title
	Footer string
}

// Option is a single-select control for one answer option.
type Option struct {
	Index   int
	Label   string
	Checked bool
}

// Control is a navigation button.
type Control struct {
	Label   string
	Enabled bool
}

// Page is everything a presenter needs to draw the current question.
type Page struct {
	Header   string
	Footer   string
	Number   int // 1-based question number
	Total    int
	Prompt   string
	Options  []Option
	Previous Control
	Next     Control
	Submit   Control
}

// Heading returns the question line, e.g. "Q1: What does JSX stand for?".
func (p Page) Heading() string {
	return fmt.Sprintf("Q%d: %s", p.Number, p.Prompt)
}

// NewPage builds the page for the displayed question of state.
func NewPage(texts Texts, bank entities.QuestionBank, state entities.QuizState) Page {
	i := state.CurrentIndex
	q := bank.At(i)
	answer := state.Answers[i]

	options := make([]Option, len(q.Options))
	for j, label := range q.Options {
		options[j] = Option{
			Index:   j,
			Label:   label,
			Checked: answer.Equals(label),
		}
	}

	isFirst := i == 0
	isLast := i == bank.Len()-1

	return Page{
		Header:   header(texts, bank),
		Footer:   texts.Footer,
		Number:   i + 1,
		Total:    bank.Len(),
		Prompt:   q.Prompt,
		Options:  options,
		Previous: Control{Label: LabelPrevious, Enabled: !isFirst},
		Next:     Control{Label: LabelNext, Enabled: !isLast},
		Submit:   Control{Label: LabelSubmit, Enabled: isLast},
	}
}

func header(texts Texts, bank entities.QuestionBank) string {
	switch {
	case texts.Title != "":
		return texts.Title
	case bank.Title != "":
		return bank.Title
	default:
		return defaultTitle
	}
}
