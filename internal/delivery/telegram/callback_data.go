package telegram

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizStart    = "start"
	quizOption   = "opt"
	quizPrevious = "prev"
	quizNext     = "next"
	quizSubmit   = "submit"
	quizNoop     = "noop"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCallback is a decoded control press on a question card.
type quizCallback struct {
	SessionID uuid.UUID
	Op        string
	Option    int
}

// parseQuizCallback decodes the params of a quiz callback that targets a session.
func parseQuizCallback(params []string) (quizCallback, bool) {
	if len(params) < 2 {
		return quizCallback{}, false
	}

	sessionID, err := uuid.Parse(params[0])
	if err != nil {
		return quizCallback{}, false
	}

	qc := quizCallback{SessionID: sessionID, Op: params[1]}

	switch qc.Op {
	case quizOption:
		if len(params) != 3 {
			return quizCallback{}, false
		}
		n, err := strconv.Atoi(params[2])
		if err != nil {
			return quizCallback{}, false
		}
		qc.Option = n
	case quizPrevious, quizNext, quizSubmit, quizNoop:
		if len(params) != 2 {
			return quizCallback{}, false
		}
	default:
		return quizCallback{}, false
	}

	return qc, true
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizOptionCallback builds callback data for selecting an answer option.
func buildQuizOptionCallback(sessionID uuid.UUID, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{sessionID.String(), quizOption, strconv.Itoa(optionIndex)},
	}.encode()
}

// buildQuizControlCallback builds callback data for a navigation control.
func buildQuizControlCallback(sessionID uuid.UUID, op string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{sessionID.String(), op},
	}.encode()
}
