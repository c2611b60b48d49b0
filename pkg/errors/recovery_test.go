package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_ConvertsPanicToError(t *testing.T) {
	grow := func() (err error) {
		defer Recover(&err, "Model.Grow")
		panic("corrupt branch map")
	}

	err := grow()
	if err == nil {
		t.Fatal("expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "Model.Grow" {
		t.Errorf("operation = %q, want %q", panicErr.Operation, "Model.Grow")
	}
	if panicErr.PanicValue != "corrupt branch map" {
		t.Errorf("panic value = %v, want %q", panicErr.PanicValue, "corrupt branch map")
	}
	if panicErr.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if got, want := panicErr.Error(), "panic in Model.Grow: corrupt branch map"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRecover_NoPanicLeavesErrorUntouched(t *testing.T) {
	grow := func() (err error) {
		defer Recover(&err, "Model.Grow")
		return nil
	}
	if err := grow(); err != nil {
		t.Fatalf("expected nil error without a panic, got %v", err)
	}
}

func TestRecover_LayersPanicOverExistingError(t *testing.T) {
	cause := fmt.Errorf("partition failed")

	grow := func() (err error) {
		defer Recover(&err, "Model.Grow")
		err = cause
		panic("panic after error")
	}

	err := grow()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "panic in Model.Grow") {
		t.Errorf("message missing panic context: %s", msg)
	}
	if !strings.Contains(msg, "partition failed") {
		t.Errorf("message missing original error: %s", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should still find the original error")
	}
}

func TestSafeExecute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if err := SafeExecute("tree decoding", func() error { return nil }); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("function error passes through", func(t *testing.T) {
		cause := fmt.Errorf("unknown node kind")
		if err := SafeExecute("tree decoding", func() error { return cause }); err != cause {
			t.Fatalf("expected the function's own error, got %v", err)
		}
	})

	t.Run("panic becomes PanicError", func(t *testing.T) {
		err := SafeExecute("tree decoding", func() error {
			panic("truncated payload")
		})
		if err == nil {
			t.Fatal("expected error from panic, got nil")
		}
		var panicErr *PanicError
		if !errors.As(err, &panicErr) {
			t.Fatalf("expected *PanicError, got %T", err)
		}
		if panicErr.PanicValue != "truncated payload" {
			t.Errorf("panic value = %v, want %q", panicErr.PanicValue, "truncated payload")
		}
	})
}

func TestPanicError_Rendering(t *testing.T) {
	panicErr := NewPanicError("Classify", "nil node")

	if got, want := panicErr.Error(), "panic in Classify: nil node"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	str := panicErr.String()
	if !strings.Contains(str, "Stack trace:") {
		t.Error("String() should include the stack trace")
	}
	if !strings.Contains(str, "panic in Classify: nil node") {
		t.Error("String() should include the error line")
	}

	if panicErr.Unwrap() != nil {
		t.Error("PanicError.Unwrap() should return nil")
	}
}

func TestRecover_PanicValueKinds(t *testing.T) {
	// panic(nil) arrives as a runtime placeholder value, the rest pass
	// through unchanged.
	cases := []struct {
		name  string
		value interface{}
		want  interface{}
	}{
		{"string", "string panic", "string panic"},
		{"int", 42, 42},
		{"error", fmt.Errorf("error as panic"), fmt.Errorf("error as panic")},
		{"nil", nil, "panic called with nil argument"},
		{"struct", struct{ Msg string }{"payload"}, struct{ Msg string }{"payload"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			run := func() (err error) {
				defer Recover(&err, "KindTest")
				panic(tc.value)
			}

			err := run()
			if err == nil {
				t.Fatal("expected error from panic")
			}
			var panicErr *PanicError
			if !errors.As(err, &panicErr) {
				t.Fatalf("expected *PanicError, got %T", err)
			}
			if fmt.Sprintf("%v", panicErr.PanicValue) != fmt.Sprintf("%v", tc.want) {
				t.Errorf("panic value = %v, want %v", panicErr.PanicValue, tc.want)
			}
		})
	}
}

func BenchmarkRecover_NoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		func() (err error) {
			defer Recover(&err, "BenchmarkOp")
			return nil
		}()
	}
}

func BenchmarkSafeExecute_NoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SafeExecute("BenchmarkOp", func() error {
			return nil
		})
	}
}
