package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/vrfit/internal/catalog"
)

var (
	// ErrUnknownQuestion means an answer names a question that is not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrMalformedIndex means an answer value is not a base-10 integer.
	ErrMalformedIndex = errors.New("malformed option index")
	// ErrIndexOutOfRange means an answer value does not select one of the question's options.
	ErrIndexOutOfRange = errors.New("option index out of range")
)

// AnswerError describes a single rejected answer.
type AnswerError struct {
	QuestionID string
	Value      string
	Err        error
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer %q=%q: %v", e.QuestionID, e.Value, e.Err)
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// ParseAnswers converts stringified option indices into an AnswerSet.
// Values are compared as integers, so "1" and " 1" select the same option.
// Every invalid entry is reported; the returned set is nil on error.
func ParseAnswers(raw map[string]string) (catalog.AnswerSet, error) {
	set, rejected := parse(raw)
	if len(rejected) == 0 {
		return set, nil
	}
	errs := make([]error, 0, len(rejected))
	for _, ae := range rejected {
		errs = append(errs, ae)
	}
	return nil, errors.Join(errs...)
}

// ParseAnswersLenient converts what it can and treats invalid entries as
// unanswered. The rejected entries are returned sorted by question ID.
func ParseAnswersLenient(raw map[string]string) (catalog.AnswerSet, []*AnswerError) {
	return parse(raw)
}

func parse(raw map[string]string) (catalog.AnswerSet, []*AnswerError) {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	set := make(catalog.AnswerSet, len(raw))
	var rejected []*AnswerError
	for _, id := range ids {
		idx, err := parseOne(id, raw[id])
		if err != nil {
			rejected = append(rejected, &AnswerError{QuestionID: id, Value: raw[id], Err: err})
			continue
		}
		set[id] = idx
	}
	return set, rejected
}

func parseOne(id, value string) (int, error) {
	q, ok := catalog.ByID(id)
	if !ok {
		return 0, ErrUnknownQuestion
	}
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrMalformedIndex
	}
	if !q.ValidIndex(idx) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(q.Options))
	}
	return idx, nil
}
