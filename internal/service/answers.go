package service

import "github.com/aliskhannn/quiz-bot/internal/domain/entities"

// Record returns a copy of answers with slot index set to option.
// The input slice is never modified. Record trusts its caller: option is
// stored as is, whether or not it belongs to the question.
func Record(answers []entities.Answer, index int, option string) []entities.Answer {
	next := make([]entities.Answer, len(answers))
	copy(next, answers)
	next[index] = entities.AnswerOf(option)
	return next
}
