package service

import (
	"errors"
	"fmt"
)

var ErrBasketNotFound = errors.New("basket not found")

// InvalidInputError marks failures caused by the caller's request
// rather than by a dependency
type InvalidInputError struct {
	Err error
}

func (e InvalidInputError) Error() string {
	return e.Err.Error()
}

func (e InvalidInputError) Unwrap() error {
	return e.Err
}

func invalidInput(err error) error {
	return InvalidInputError{Err: err}
}

func invalidInputf(format string, args ...any) error {
	return InvalidInputError{Err: fmt.Errorf(format, args...)}
}

func IsInvalidInput(err error) bool {
	var target InvalidInputError
	return errors.As(err, &target)
}
