package host

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput is matched by every *BadInputError.
	ErrBadInput = errors.New("host: bad input")

	// ErrNoFactory indicates that no registered factory could serve a request.
	ErrNoFactory = errors.New("host: no factory able to serve request")

	// ErrDuplicateFactory indicates a second factory registered under a used name.
	ErrDuplicateFactory = errors.New("host: duplicate factory name")
)

// BadInputError reports malformed or inconsistent material data or
// configuration. It is a fatal configuration error for the material.
type BadInputError struct {
	Material string
	Reason   string
}

func (e *BadInputError) Error() string {
	if e.Material == "" {
		return "bad input: " + e.Reason
	}
	return fmt.Sprintf("bad input for material %q: %s", e.Material, e.Reason)
}

func (e *BadInputError) Is(target error) bool {
	return target == ErrBadInput
}

// BadInput builds a *BadInputError with a formatted reason.
func BadInput(material, format string, args ...any) error {
	return &BadInputError{Material: material, Reason: fmt.Sprintf(format, args...)}
}

// FactoryError wraps a failure raised by a factory during resolution.
type FactoryError struct {
	Factory string
	Op      string
	Err     error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory %s: %s: %v", e.Factory, e.Op, e.Err)
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}
