package motion

import "errors"

var (
	// ErrInvalidStep indicates a non-positive timestep or duration.
	ErrInvalidStep = errors.New("motion: dt and duration must be positive")

	// ErrDiverged indicates the state stopped being finite.
	ErrDiverged = errors.New("motion: state diverged (NaN or Inf detected)")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
