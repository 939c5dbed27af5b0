package service

import "github.com/aliskhannn/quiz-bot/internal/domain/entities"

func testBank() entities.QuestionBank {
	return entities.QuestionBank{
		Title: "Test Quiz",
		Questions: []entities.Question{
			{ID: "q1", Prompt: "One?", Options: []string{"a", "b", "c"}, CorrectAnswer: "a"},
			{ID: "q2", Prompt: "Two?", Options: []string{"a", "b", "c"}, CorrectAnswer: "b"},
			{ID: "q3", Prompt: "Three?", Options: []string{"a", "b", "c"}, CorrectAnswer: "c"},
		},
	}
}
