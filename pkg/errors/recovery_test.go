package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Kernel.Matrix")
		panic("index out of range")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}

	if panicErr.Operation != "Kernel.Matrix" {
		t.Errorf("Expected operation 'Kernel.Matrix', got '%s'", panicErr.Operation)
	}

	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}

	expectedMsg := "panic in Kernel.Matrix: index out of range"
	if panicErr.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, panicErr.Error())
	}

	if !strings.Contains(panicErr.String(), "Stack trace:") {
		t.Error("String() should include the stack trace")
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Kernel.Matrix")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("original error")

	testFunc := func() (err error) {
		defer Recover(&err, "Train")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if !strings.Contains(err.Error(), "panic in Train") {
		t.Errorf("Error message should contain panic info: %s", err.Error())
	}

	if !errors.Is(err, originalErr) {
		t.Error("Original error should stay in the chain")
	}
}

func TestPanicError_UnwrapsErrorValue(t *testing.T) {
	cause := fmt.Errorf("render failed")
	err := SafeExecute("plot", func() error {
		panic(cause)
	})

	if !errors.Is(err, cause) {
		t.Errorf("Expected panic value to be reachable through Unwrap, got %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() error
		wantErr   bool
		wantPanic bool
	}{
		{
			name:    "success",
			fn:      func() error { return nil },
			wantErr: false,
		},
		{
			name:    "returned error",
			fn:      func() error { return fmt.Errorf("solver failed") },
			wantErr: true,
		},
		{
			name: "panic",
			fn: func() error {
				var s []float64
				_ = s[3]
				return nil
			},
			wantErr:   true,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("op", tt.fn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SafeExecute() error = %v, wantErr %v", err, tt.wantErr)
			}
			var panicErr *PanicError
			if got := errors.As(err, &panicErr); got != tt.wantPanic {
				t.Errorf("PanicError = %v, want %v", got, tt.wantPanic)
			}
		})
	}
}
