// Panic recovery helpers. Exported entry points of the library defer
// Recover so that an unexpected panic during tree induction or
// classification surfaces as an ordinary error with a stack trace
// instead of crossing the API boundary.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the error form of a recovered panic. It records the
// panic value, the operation that recovered it, and the stack captured
// at recovery time.
type PanicError struct {
	// PanicValue is the value passed to panic().
	PanicValue interface{}

	// StackTrace is the goroutine stack captured when the panic was
	// recovered.
	StackTrace string

	// Operation names the exported method that recovered the panic,
	// e.g. "DecisionTreeClassifier.Fit".
	Operation string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil; a PanicError is a root cause.
func (e *PanicError) Unwrap() error {
	return nil
}

// String renders the error together with the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError builds a PanicError for the given operation and panic
// value, capturing the current stack.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts an in-flight panic into an error assigned through
// err. Defer it at the top of an exported method:
//
//	func (m *Model) Grow() (err error) {
//	    defer errors.Recover(&err, "Model.Grow")
//	    ...
//	}
//
// When the method was already returning an error, the panic message is
// layered on top of it so neither signal is lost.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = fmt.Errorf("panic in %s: %v (original error: %w)",
			operation, r, *err)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute runs fn with panic recovery in place and returns either
// fn's own error or the PanicError built from a recovered panic.
//
//	err := SafeExecute("tree decoding", func() error {
//	    return decode(payload)
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
