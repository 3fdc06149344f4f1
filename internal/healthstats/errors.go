package healthstats

import (
	"errors"
	"fmt"
)

var (
	ErrNoData       = errors.New("no measurement data")
	ErrNoActiveGoal = errors.New("no active goal")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type InsufficientDataError struct {
	Required int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d measurements required, have %d", e.Required, e.Actual)
}

func IsInsufficientData(err error) bool {
	var insufficientErr *InsufficientDataError
	return errors.As(err, &insufficientErr)
}
