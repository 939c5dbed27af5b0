package service

import "github.com/aliskhannn/quiz-bot/internal/domain/entities"

// Score compares every answer slot with the bank and builds the report.
// Unanswered slots are counted as incorrect.
func Score(bank entities.QuestionBank, answers []entities.Answer) entities.ScoreReport {
	report := entities.ScoreReport{
		Total:   bank.Len(),
		Entries: make([]entities.ReportEntry, 0, bank.Len()),
	}

	for i, q := range bank.Questions {
		var answer entities.Answer
		if i < len(answers) {
			answer = answers[i]
		}

		isCorrect := answer.Equals(q.CorrectAnswer)
		if isCorrect {
			report.Score++
		}

		report.Entries = append(report.Entries, entities.ReportEntry{
			Index:         i,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
		})
	}

	return report
}
