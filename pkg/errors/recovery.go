// Package errors provides structured error handling for the kernel toolkit.
//
// This file contains panic recovery helpers. Rendering and linear algebra
// code paths in gonum signal some failures by panicking; these helpers
// turn such panics into PanicError values carrying the stack at the
// point of failure.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error created from a recovered panic.
type PanicError struct {
	// PanicValue is the value originally passed to panic().
	PanicValue interface{}

	// StackTrace is the goroutine stack captured at recovery time.
	StackTrace string

	// Operation names the call site that recovered the panic.
	Operation string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String includes the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for the given operation and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover must be deferred directly. It converts a panic into an error
// assigned to *err. An error already stored in *err is kept in the chain.
//
//	func (k *Kernel) Matrix() (m *mat.Dense, err error) {
//	    defer errors.Recover(&err, "Kernel.Matrix")
//	    ...
//	}
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		if *err != nil {
			*err = fmt.Errorf("panic in %s: %v (original error: %w)", operation, r, *err)
			return
		}
		*err = NewPanicError(operation, r)
	}
}

// SafeExecute runs fn and returns its error, or a PanicError if fn panicked.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
