package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// PanicError reports a panic recovered at an operation boundary, usually
// inside an injected model fitter. Cause is the error the operation had
// already returned when it panicked, if any.
type PanicError struct {
	Operation string
	Value     interface{}
	Cause     error
}

func (e *PanicError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("panic in %s: %v (after: %v)", e.Operation, e.Value, e.Cause)
	}
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.Value)
}

// Unwrap returns Cause.
func (e *PanicError) Unwrap() error {
	return e.Cause
}

// MarshalZerologObject adds the panic fields to a zerolog event.
func (e *PanicError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Str("panic_value", fmt.Sprint(e.Value)).
		Str("type", "PanicError")
	if e.Cause != nil {
		event.Str("cause", e.Cause.Error())
	}
}

// NewPanicError creates a PanicError. The attached stack trace is taken
// where the panic is recovered, so it still includes the panicking frames.
func NewPanicError(operation string, value interface{}, cause error) error {
	return errors.WithStack(&PanicError{Operation: operation, Value: value, Cause: cause})
}

// Recover turns a panic into a PanicError stored in *err. It must be
// deferred directly:
//
//	func fit() (err error) {
//	    defer errors.Recover(&err, "LinearSVC.Fit")
//	    ...
//	}
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		*err = NewPanicError(operation, r, *err)
	}
}

// SafeExecute runs fn, returning its error or the PanicError of a panic.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
