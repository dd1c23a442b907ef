// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every InputError, see errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError is returned when a text can't be parsed as a number or a bit pattern.
type InputError struct {
	Input string
	Err   error
}

func newInputError(input string, err error) *InputError {
	return &InputError{Input: input, Err: err}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("parsing %q failed: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is makes InputError match ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
