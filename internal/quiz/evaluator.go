// Package quiz evaluates answers to a single multiple-choice question.
package quiz

import "github.com/abhisek/roscourse/internal/course"

// Outcome is the state of an evaluator as shown to the reader.
type Outcome int

const (
	Unanswered Outcome = iota
	Correct
	Incorrect
)

// String returns a display label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Correct:
		return "Correct!"
	case Incorrect:
		return "Incorrect"
	default:
		return "Unanswered"
	}
}

// Evaluator holds the answer state for one quiz. The outcome is frozen on
// Submit until Reset is called.
type Evaluator struct {
	spec     course.QuizSpec
	selected string
	answered bool
}

// New creates an evaluator for the given question.
func New(spec course.QuizSpec) *Evaluator {
	return &Evaluator{spec: spec}
}

// Spec returns the question being evaluated.
func (e *Evaluator) Spec() course.QuizSpec { return e.spec }

// Select records optionID as the reader's choice. It is ignored once the quiz
// has been submitted or when the id is not one of the options. Reports
// whether the selection changed.
func (e *Evaluator) Select(optionID string) bool {
	if e.answered {
		return false
	}
	if _, ok := e.spec.Option(optionID); !ok {
		return false
	}
	if e.selected == optionID {
		return false
	}
	e.selected = optionID
	return true
}

// Selected returns the chosen option id, if any.
func (e *Evaluator) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// CanSubmit reports whether Submit would succeed.
func (e *Evaluator) CanSubmit() bool {
	return !e.answered && e.selected != ""
}

// Submit freezes the current selection. Without a selection it does nothing
// and returns false.
func (e *Evaluator) Submit() bool {
	if !e.CanSubmit() {
		return false
	}
	e.answered = true
	return true
}

// Answered reports whether the quiz has been submitted.
func (e *Evaluator) Answered() bool { return e.answered }

// Reset clears the selection and the answered flag.
func (e *Evaluator) Reset() {
	e.selected = ""
	e.answered = false
}

// IsCorrect reports whether the selected option is the correct one. It is only
// meaningful after Submit.
func (e *Evaluator) IsCorrect() bool {
	o, ok := e.spec.Option(e.selected)
	return ok && o.Correct
}

// CorrectOption returns the option marked correct.
func (e *Evaluator) CorrectOption() (course.Option, bool) {
	for _, o := range e.spec.Options {
		if o.Correct {
			return o, true
		}
	}
	return course.Option{}, false
}

// Outcome returns Unanswered until Submit, then Correct or Incorrect.
func (e *Evaluator) Outcome() Outcome {
	switch {
	case !e.answered:
		return Unanswered
	case e.IsCorrect():
		return Correct
	default:
		return Incorrect
	}
}
