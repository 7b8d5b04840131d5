package opacity

import "errors"

var (
	ErrInvalidPercent  = errors.New("invalid percent")
	ErrNoTargetProcess = errors.New("no target process")
	ErrNoUsableWindow  = errors.New("no usable window")
	ErrEnvironment     = errors.New("environment failure")
)

// Error is a failure of a whole operation. Kind is one of the Err* values
// above, so callers can test it with errors.Is.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Environment wraps err (an unavailable windowing or process API) as an
// ErrEnvironment failure, keeping the platform text.
func Environment(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrEnvironment, Detail: "window control is unavailable", Err: err}
}
