package assessment

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/scoring"
)

// Step is the screen the questionnaire is on.
type Step int

const (
	StepIntro     Step = iota // Overview before any question
	StepQuestions             // Answering questions one at a time
	StepResults               // Showing the scored result
)

// String returns the lowercase step name.
func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepQuestions:
		return "questions"
	case StepResults:
		return "results"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidTransition is returned when a handler is called from the wrong step.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNotAnswered is returned by Next while the current question has no answer.
	ErrNotAnswered = errors.New("current question not answered")
	// ErrInvalidOption is returned by Select for an index outside the option list.
	ErrInvalidOption = errors.New("invalid option")
)

// Flow drives the intro, questions and results steps.
type Flow struct {
	step      Step
	index     int
	questions []catalog.Question
	answers   catalog.AnswerSet
	result    *scoring.Result
	logger    *zap.Logger
}

// New creates a Flow on the intro step over the built-in catalog.
func New(logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		step:      StepIntro,
		questions: catalog.All(),
		answers:   catalog.AnswerSet{},
		logger:    logger,
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.step
}

// Start moves from the intro to the first question with an empty answer set.
func (f *Flow) Start() error {
	if f.step != StepIntro {
		return f.invalid("start")
	}
	f.index = 0
	f.answers = catalog.AnswerSet{}
	f.result = nil
	f.moveTo(StepQuestions)
	return nil
}

// BackToIntro abandons the questionnaire and discards its answers.
func (f *Flow) BackToIntro() error {
	if f.step != StepQuestions {
		return f.invalid("back to intro")
	}
	f.index = 0
	f.answers = catalog.AnswerSet{}
	f.moveTo(StepIntro)
	return nil
}

// Select records option i for the current question.
func (f *Flow) Select(i int) error {
	if f.step != StepQuestions {
		return f.invalid("select")
	}
	q := f.questions[f.index]
	if !q.ValidIndex(i) {
		return fmt.Errorf("%w: %d for question %q", ErrInvalidOption, i, q.ID)
	}
	f.answers[q.ID] = i
	return nil
}

// Next advances to the following question. On the last question it scores
// the answers and moves to the results step.
func (f *Flow) Next() error {
	if f.step != StepQuestions {
		return f.invalid("next")
	}
	if !f.IsAnswered() {
		return ErrNotAnswered
	}
	if !f.IsLast() {
		f.index++
		return nil
	}

	result := scoring.Evaluate(f.answers.Clone())
	f.result = &result
	f.logger.Info("assessment completed",
		zap.Int("answered", len(f.answers)),
		zap.Int("overall", result.Overall),
		zap.Int("confidence", result.Confidence),
		zap.Stringer("tier", result.Tier),
	)
	f.moveTo(StepResults)
	return nil
}

// Previous goes back one question. It is a no-op on the first question.
func (f *Flow) Previous() error {
	if f.step != StepQuestions {
		return f.invalid("previous")
	}
	if f.index > 0 {
		f.index--
	}
	return nil
}

// Restart clears all answers and returns to the intro.
func (f *Flow) Restart() error {
	if f.step != StepResults {
		return f.invalid("restart")
	}
	f.index = 0
	f.answers = catalog.AnswerSet{}
	f.result = nil
	f.moveTo(StepIntro)
	return nil
}

// Current returns the question being answered.
func (f *Flow) Current() catalog.Question {
	return f.questions[f.index]
}

// Index returns the 0-based position of the current question.
func (f *Flow) Index() int {
	return f.index
}

// Total returns the number of questions.
func (f *Flow) Total() int {
	return len(f.questions)
}

// Position returns the "Question n of N" label.
func (f *Flow) Position() string {
	return fmt.Sprintf("Question %d of %d", f.index+1, len(f.questions))
}

// Progress returns the fraction of the questionnaire reached, counting the
// current question, in the range (0, 1].
func (f *Flow) Progress() float64 {
	return float64(f.index+1) / float64(len(f.questions))
}

// Selected returns the recorded option for the current question, or -1.
func (f *Flow) Selected() int {
	if i, ok := f.answers.Get(f.Current().ID); ok {
		return i
	}
	return -1
}

// IsAnswered reports whether the current question has an answer.
func (f *Flow) IsAnswered() bool {
	return f.Selected() >= 0
}

// IsLast reports whether the current question is the final one.
func (f *Flow) IsLast() bool {
	return f.index == len(f.questions)-1
}

// Answers returns a copy of the answers recorded so far.
func (f *Flow) Answers() catalog.AnswerSet {
	return f.answers.Clone()
}

// Result returns the scored result once the results step is reached.
func (f *Flow) Result() (scoring.Result, bool) {
	if f.result == nil {
		return scoring.Result{}, false
	}
	return *f.result, true
}

func (f *Flow) moveTo(next Step) {
	f.logger.Debug("step transition",
		zap.Stringer("from", f.step),
		zap.Stringer("to", next),
	)
	f.step = next
}

func (f *Flow) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, f.step)
}
