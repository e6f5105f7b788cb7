package rxreg

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coregx/rxreg/engine"
)

// Outcome is the result of an ordered first-match evaluation.
type Outcome int

const (
	// NoMatch means every matcher was evaluated and none matched.
	NoMatch Outcome = iota

	// Matched means some matcher in the sequence matched. Which one is
	// deliberately not reported: the evaluator answers "does anything in
	// this set match", not "which".
	Matched

	// EngineError means a matcher failed to execute; evaluation stopped
	// there and the accompanying error is an *ExecError.
	EngineError
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no match"
	case Matched:
		return "matched"
	case EngineError:
		return "engine error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Labeled pairs a matcher with the label used in diagnostics when it fails.
type Labeled struct {
	Matcher engine.Matcher
	Label   string
}

// ExecError reports which matcher in an evaluation sequence failed, and how.
type ExecError struct {
	// Index is the failing matcher's position in the sequence.
	Index int

	// Label is the failing matcher's label.
	Label string

	// Code is the engine's numeric error code, or engine.CodeUnknown.
	Code int

	// Err is the underlying engine error.
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("matcher %d (%s) failed: %v", e.Index, e.Label, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// FirstMatch evaluates matchers in the given order against subject and
// stops at the first match.
//
// An individual "no match" continues to the next matcher. An engine
// execution failure stops immediately: it is logged at error level with
// the failing index, label and engine code, and returned as an *ExecError
// alongside the EngineError outcome. Reaching the end of the sequence
// yields NoMatch with a nil error.
//
// FirstMatch mutates nothing and may run concurrently against the same
// matcher set once the study phase has completed.
func FirstMatch(matchers []Labeled, subject string, log zerolog.Logger) (Outcome, error) {
	for i, lm := range matchers {
		ok, err := lm.Matcher.Execute(subject)
		if err != nil {
			code := engine.CodeUnknown
			var ee *engine.ExecError
			if errors.As(err, &ee) {
				code = ee.Code
			}
			log.Error().
				Int("matcher", i).
				Str("label", lm.Label).
				Int("code", code).
				Str("subject", subject).
				Err(err).
				Msg("matcher execution failed")
			return EngineError, &ExecError{Index: i, Label: lm.Label, Code: code, Err: err}
		}
		if ok {
			return Matched, nil
		}
	}
	return NoMatch, nil
}
