package entities

// unansweredLabel is how an empty answer slot is rendered in reports.
const unansweredLabel = "null"

// Answer is the content of one answer slot. The zero value is unanswered.
type Answer struct {
	value    string
	answered bool
}

// AnswerOf returns an answered slot holding value.
func AnswerOf(value string) Answer {
	return Answer{value: value, answered: true}
}

// Value returns the stored answer and whether the slot is answered.
func (a Answer) Value() (string, bool) {
	return a.value, a.answered
}

// IsAnswered reports whether the slot holds an answer.
func (a Answer) IsAnswered() bool {
	return a.answered
}

// Equals reports whether the slot is answered with exactly s.
func (a Answer) Equals(s string) bool {
	return a.answered && a.value == s
}

// String returns the stored answer, or "null" for an unanswered slot.
func (a Answer) String() string {
	if !a.answered {
		return unansweredLabel
	}
	return a.value
}

// QuizState is the mutable state of one quiz session.
// len(Answers) always equals the bank size and CurrentIndex stays within it.
type QuizState struct {
	CurrentIndex int      // index of the displayed question
	Answers      []Answer // one slot per question, in bank order
}

// NewQuizState creates the initial state for a bank of n questions:
// first question displayed, every slot unanswered.
func NewQuizState(n int) QuizState {
	return QuizState{
		CurrentIndex: 0,
		Answers:      make([]Answer, n),
	}
}

// Clone returns a deep copy of the state.
func (s QuizState) Clone() QuizState {
	answers := make([]Answer, len(s.Answers))
	copy(answers, s.Answers)
	return QuizState{CurrentIndex: s.CurrentIndex, Answers: answers}
}

// ReportEntry is the outcome of a single question.
type ReportEntry struct {
	Index         int    // zero-based question index
	UserAnswer    Answer // stored answer, possibly unanswered
	CorrectAnswer string // expected answer
	IsCorrect     bool   // whether UserAnswer equals CorrectAnswer
}

// ScoreReport is the result of scoring a session.
type ScoreReport struct {
	Score   int           // number of correct answers
	Total   int           // number of questions
	Entries []ReportEntry // one entry per question, in bank order
}
