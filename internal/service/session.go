package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var (
	ErrInvalidOption     = errors.New("option index out of range")
	ErrSubmitUnavailable = errors.New("submit is only available on the last question")
	ErrSessionSubmitted  = errors.New("quiz session already submitted")
)

// Change describes a state transition published to session listeners.
type Change struct {
	State        entities.QuizState    // state after the transition
	IndexChanged bool                  // the displayed question changed
	Report       *entities.ScoreReport // set once, on submission
}

// Listener receives session changes.
type Listener func(Change)

// Session owns the state of one quiz run. All mutations go through
// Advance, Retreat and Record. A Session is not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	bank      entities.QuestionBank
	state     entities.QuizState
	submitted bool

	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewSession creates a session positioned on the first question with
// every answer slot empty.
func NewSession(bank entities.QuestionBank) *Session {
	return &Session{
		id:    uuid.New(),
		bank:  bank,
		state: entities.NewQuizState(bank.Len()),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Bank returns the question bank the session runs on.
func (s *Session) Bank() entities.QuestionBank {
	return s.bank
}

// State returns a snapshot of the current state.
func (s *Session) State() entities.QuizState {
	return s.state.Clone()
}

// Current returns the displayed question and its stored answer.
func (s *Session) Current() (entities.Question, entities.Answer) {
	i := s.state.CurrentIndex
	return s.bank.At(i), s.state.Answers[i]
}

// Submitted reports whether the session has been submitted.
func (s *Session) Submitted() bool {
	return s.submitted
}

// IsFirst reports whether the first question is displayed.
func (s *Session) IsFirst() bool {
	return s.state.CurrentIndex == 0
}

// IsLast reports whether the last question is displayed.
func (s *Session) IsLast() bool {
	return s.state.CurrentIndex == s.bank.Len()-1
}

// Subscribe registers l to be called after every state change.
// The returned function removes the listener.
func (s *Session) Subscribe(l Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Next moves to the following question. It reports whether the index changed.
func (s *Session) Next() (bool, error) {
	if s.submitted {
		return false, ErrSessionSubmitted
	}
	return s.moveTo(Advance(s.state.CurrentIndex, s.bank.Len())), nil
}

// Previous moves to the preceding question. It reports whether the index changed.
func (s *Session) Previous() (bool, error) {
	if s.submitted {
		return false, ErrSessionSubmitted
	}
	return s.moveTo(Retreat(s.state.CurrentIndex)), nil
}

// Select stores the option at optionIndex as the answer to the displayed
// question, replacing any previous answer. Selecting the stored answer
// again publishes nothing.
func (s *Session) Select(optionIndex int) error {
	if s.submitted {
		return ErrSessionSubmitted
	}

	q, answer := s.Current()
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrInvalidOption
	}
	if answer.Equals(q.Options[optionIndex]) {
		return nil
	}

	s.state.Answers = Record(s.state.Answers, s.state.CurrentIndex, q.Options[optionIndex])
	s.publish(Change{State: s.State()})

	return nil
}

// Submit scores the session. It is only allowed on the last question and
// closes the session.
func (s *Session) Submit() (entities.ScoreReport, error) {
	if s.submitted {
		return entities.ScoreReport{}, ErrSessionSubmitted
	}
	if !s.IsLast() {
		return entities.ScoreReport{}, ErrSubmitUnavailable
	}

	report := Score(s.bank, s.state.Answers)
	s.submitted = true
	s.publish(Change{State: s.State(), Report: &report})

	return report, nil
}

func (s *Session) moveTo(index int) bool {
	if index == s.state.CurrentIndex {
		return false
	}

	s.state.CurrentIndex = index
	s.publish(Change{State: s.State(), IndexChanged: true})

	return true
}

func (s *Session) publish(c Change) {
	for _, sub := range s.listeners {
		sub.fn(c)
	}
}
