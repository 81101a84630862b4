package errs

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every use case. Concrete errors are marked with one of
// these so callers can match with errors.Is regardless of wrapping.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrCouponInvalid     = errors.New("coupon invalid")
	ErrPersistence       = errors.New("persistence error")
)

// InvalidTransitionError names the current and requested state of a rejected
// state-machine move.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from '%s' to '%s'", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewInvalidTransition(entity, from, to string) error {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return Mark(New(fmt.Sprintf(format, args...)), ErrValidation)
}

func NotFound(entity string) error {
	return Mark(New(entity+" not found"), ErrNotFound)
}
