// Package jerr defines the closed error taxonomy raised at the boundary of
// the tensor engine: ShapeError, IndexError, DTypeError, StateError,
// NumericError and InvalidInput. The engine never returns a bare error for
// these conditions; it always wraps one of the Kind values below so callers
// can branch on errors.Is/errors.As without string-matching messages.
package jerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the closed set of error categories the engine raises.
type Kind string

const (
	Shape        Kind = "ShapeError"
	Index        Kind = "IndexError"
	DType        Kind = "DTypeError"
	State        Kind = "StateError"
	Numeric      Kind = "NumericError"
	InvalidInput Kind = "InvalidInput"
)

// Error is the concrete error type raised by the engine. Operand names an
// offending argument (a dimension index, operand position, etc.) when one is
// useful; it is left empty otherwise.
type Error struct {
	Kind    Kind
	Operand string
	Reason  string
	cause   error
}

func (e *Error) Error() string {
	if e.Operand != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Operand, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.cause }

// newf builds an *Error, wrapping it with a stack trace via pkg/errors so
// %+v formatting shows the origin during development.
func newf(kind Kind, operand, format string, args ...any) error {
	reason := fmt.Sprintf(format, args...)
	base := &Error{Kind: kind, Operand: operand, Reason: reason}
	base.cause = errors.New(reason)
	return errors.WithStack(base)
}

func Shapef(format string, args ...any) error           { return newf(Shape, "", format, args...) }
func ShapeOperandf(op, format string, args ...any) error { return newf(Shape, op, format, args...) }
func Indexf(format string, args ...any) error            { return newf(Index, "", format, args...) }
func IndexOperandf(op, format string, args ...any) error  { return newf(Index, op, format, args...) }
func DTypef(format string, args ...any) error             { return newf(DType, "", format, args...) }
func Statef(format string, args ...any) error             { return newf(State, "", format, args...) }
func Numericf(format string, args ...any) error           { return newf(Numeric, "", format, args...) }
func InvalidInputf(format string, args ...any) error      { return newf(InvalidInput, "", format, args...) }

// Is reports whether err carries the given Kind, unwrapping as necessary.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
