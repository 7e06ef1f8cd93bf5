package errs

import (
	"errors"
	"fmt"
)

// ErrStateIsInvalid reports an operation that the current state of an aggregate does not allow.
var ErrStateIsInvalid = errors.New("state is invalid")

type StateIsInvalidError struct {
	ParamName string
	State     any
	Cause     error
}

func NewStateIsInvalidError(paramName string, state any) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
	}
}

func NewStateIsInvalidErrorWithCause(paramName string, state any, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v", ErrStateIsInvalid, e.ParamName, sanitize(e.State))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}
