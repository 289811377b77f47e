package narrate

import (
	"errors"
	"fmt"
)

// Sentinel errors underlying the InklingError taxonomy. Callers can match on
// these with errors.Is even though the concrete values returned are the
// richer InklingError variants below.
var (
	ErrInvalidAddress          = errors.New("invalid address")
	ErrInvalidChoice           = errors.New("invalid choice")
	ErrInvalidVariable         = errors.New("invalid variable")
	ErrMadeChoiceWithoutChoice = errors.New("make_choice called without a pending choice")
	ErrOutOfChoices            = errors.New("choice set has no presentable or fallback branch")
	ErrOutOfContent            = errors.New("story ended without reaching an explicit terminator")
	ErrPrintInvalidVariable    = errors.New("cannot stringify variable")
	ErrResumeBeforeStart       = errors.New("resume called before start")
	ErrStartOnStoryInProgress  = errors.New("start called on a story already in progress")
	ErrInternal                = errors.New("internal engine invariant violated")
)

// InklingError is the sealed interface for every caller-visible error the
// engine produces. The unexported marker method prevents external
// implementations; callers discriminate with a type switch or errors.As,
// and can always fall back to errors.Is against the package sentinels.
type InklingError interface {
	error
	inklingError()
}

// InvalidAddressError reports a reference to a missing knot or stitch.
type InvalidAddressError struct {
	Knot   string
	Stitch string // empty when the reference named a knot only
}

func (InvalidAddressError) inklingError() {}

func (e InvalidAddressError) Error() string {
	if e.Stitch == "" {
		return fmt.Sprintf("%v: knot %q", ErrInvalidAddress, e.Knot)
	}
	return fmt.Sprintf("%v: %s.%s", ErrInvalidAddress, e.Knot, e.Stitch)
}

func (e InvalidAddressError) Unwrap() error { return ErrInvalidAddress }

// PresentedChoice pairs an authored Choice with whether it was actually
// shown at the suspension point, for InvalidChoiceError's diagnostics.
type PresentedChoice struct {
	Shown  bool
	Choice Choice
}

// InvalidChoiceError reports a selection outside the authored branch list at
// the suspension point. A selection that names a hidden (filtered-out) branch
// within that range is not rejected.
type InvalidChoiceError struct {
	Selection        int
	PresentedChoices []PresentedChoice
}

func (InvalidChoiceError) inklingError() {}

func (e InvalidChoiceError) Error() string {
	return fmt.Sprintf("%v: selection %d not among %d presented choices", ErrInvalidChoice, e.Selection, len(e.PresentedChoices))
}

func (e InvalidChoiceError) Unwrap() error { return ErrInvalidChoice }

// InvalidVariableError reports a failed external variable lookup, propagated
// from the expression collaborator (never produced directly by the core).
type InvalidVariableError struct {
	Name string
}

func (InvalidVariableError) inklingError() {}

func (e InvalidVariableError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidVariable, e.Name)
}

func (e InvalidVariableError) Unwrap() error { return ErrInvalidVariable }

// MadeChoiceWithoutChoiceError reports make_choice called while the engine
// was not suspended at a ChoiceSet.
type MadeChoiceWithoutChoiceError struct{}

func (MadeChoiceWithoutChoiceError) inklingError() {}
func (MadeChoiceWithoutChoiceError) Error() string { return ErrMadeChoiceWithoutChoice.Error() }
func (MadeChoiceWithoutChoiceError) Unwrap() error { return ErrMadeChoiceWithoutChoice }

// OutOfChoicesError reports a ChoiceSet with nothing presentable and no
// fallback to auto-select.
type OutOfChoicesError struct {
	Address Location
}

func (OutOfChoicesError) inklingError() {}

func (e OutOfChoicesError) Error() string {
	return fmt.Sprintf("%v: at %s", ErrOutOfChoices, e.Address)
}

func (e OutOfChoicesError) Unwrap() error { return ErrOutOfChoices }

// OutOfContentError reports the engine reaching Done without the caller
// having observed a choice or explicit terminator. Facade-level only; the
// follow engine itself never returns this.
type OutOfContentError struct{}

func (OutOfContentError) inklingError() {}
func (OutOfContentError) Error() string { return ErrOutOfContent.Error() }
func (OutOfContentError) Unwrap() error { return ErrOutOfContent }

// PrintInvalidVariableError reports a variable that resolved but could not
// be stringified for interpolation into story text.
type PrintInvalidVariableError struct {
	Name  string
	Value any
}

func (PrintInvalidVariableError) inklingError() {}

func (e PrintInvalidVariableError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrPrintInvalidVariable, e.Name, e.Value)
}

func (e PrintInvalidVariableError) Unwrap() error { return ErrPrintInvalidVariable }

// ResumeBeforeStartError reports Resume called before Start.
type ResumeBeforeStartError struct{}

func (ResumeBeforeStartError) inklingError() {}
func (ResumeBeforeStartError) Error() string { return ErrResumeBeforeStart.Error() }
func (ResumeBeforeStartError) Unwrap() error { return ErrResumeBeforeStart }

// StartOnStoryInProgressError reports Start called while already in progress.
type StartOnStoryInProgressError struct{}

func (StartOnStoryInProgressError) inklingError() {}
func (StartOnStoryInProgressError) Error() string { return ErrStartOnStoryInProgress.Error() }
func (StartOnStoryInProgressError) Unwrap() error { return ErrStartOnStoryInProgress }

// InternalError signals a bug in the core: a broken invariant such as a
// malformed cursor stack or an attempt to dereference a RawAddress. Sessions
// that observe this should abort rather than retry.
type InternalError struct {
	Msg string
}

func (InternalError) inklingError() {}

func (e InternalError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInternal, e.Msg)
}

func (e InternalError) Unwrap() error { return ErrInternal }

// Interface compliance checks.
var (
	_ InklingError = InvalidAddressError{}
	_ InklingError = InvalidChoiceError{}
	_ InklingError = InvalidVariableError{}
	_ InklingError = MadeChoiceWithoutChoiceError{}
	_ InklingError = OutOfChoicesError{}
	_ InklingError = OutOfContentError{}
	_ InklingError = PrintInvalidVariableError{}
	_ InklingError = ResumeBeforeStartError{}
	_ InklingError = StartOnStoryInProgressError{}
	_ InklingError = InternalError{}
)
