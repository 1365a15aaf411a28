package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(EUsage, "test message")

	if err.Error() != "E_USAGE: test message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "E_USAGE: test message")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(EToolSpawnFailed, "wrapped message", cause)

	if err.Error() != "E_TOOL_SPAWN_FAILED: wrapped message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "E_TOOL_SPAWN_FAILED: wrapped message")
	}

	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Cause != cause {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, ""},
		{"coded error", New(EUsage, "x"), EUsage},
		{"wrapped coded error", Wrap(ESourceNotFound, "y", errors.New("z")), ESourceNotFound},
		{"fmt-wrapped coded error", fmt.Errorf("outer: %w", New(ENothingToRun, "x")), ENothingToRun},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetCode(tt.err)
			if got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"E_USAGE", New(EUsage, "x"), 2},
		{"E_NOTHING_TO_RUN", New(ENothingToRun, "x"), 2},
		{"E_SOURCE_NOT_FOUND", New(ESourceNotFound, "x"), 2},
		{"spawn failure", Wrap(EToolSpawnFailed, "x", errors.New("not found")), 2},
		{"plain error", errors.New("x"), 2},
		{"child failed", ChildFailed(), 1},
		{"explicit code", &ExitCodeError{Err: errors.New("x"), Code: 7}, 7},
		{"wrapped explicit code", fmt.Errorf("ctx: %w", ChildFailed()), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCode(tt.err)
			if got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsSilent(t *testing.T) {
	if !IsSilent(ChildFailed()) {
		t.Error("ChildFailed() should be silent")
	}
	if IsSilent(&ExitCodeError{Err: errors.New("x"), Code: 1}) {
		t.Error("ExitCodeError with a message should not be silent")
	}
	if IsSilent(New(EUsage, "x")) {
		t.Error("coded error should not be silent")
	}
	if IsSilent(nil) {
		t.Error("nil should not be silent")
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"E_USAGE", New(EUsage, "bad args"), "rrun: bad args\n"},
		{"E_SOURCE_NOT_FOUND", New(ESourceNotFound, "'foo.rs' is not a file"), "rrun: 'foo.rs' is not a file\n"},
		{"child failed", ChildFailed(), ""},
		{"plain error", errors.New("boom"), "rrun: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Print(&buf, tt.err)
			got := buf.String()
			if got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorFormatStability(t *testing.T) {
	// The format MUST be: "CODE: message"
	err := New(EUsage, "x")
	expected := "E_USAGE: x"
	if err.Error() != expected {
		t.Errorf("error format changed: got %q, want %q", err.Error(), expected)
	}
}

func TestNewWithDetails(t *testing.T) {
	details := map[string]string{"key": "value"}
	err := NewWithDetails(EUsage, "test message", details)

	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}

	if ce.Code != EUsage {
		t.Errorf("Code = %q, want %q", ce.Code, EUsage)
	}
	if ce.Msg != "test message" {
		t.Errorf("Msg = %q, want %q", ce.Msg, "test message")
	}
	if ce.Details["key"] != "value" {
		t.Errorf("Details[key] = %q, want %q", ce.Details["key"], "value")
	}
}

func TestNewWithDetails_NilDetails(t *testing.T) {
	err := NewWithDetails(EUsage, "test", nil)

	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Details != nil {
		t.Errorf("Details should be nil, got %v", ce.Details)
	}
}

func TestNewWithDetails_CopiesMap(t *testing.T) {
	details := map[string]string{"key": "value"}
	err := NewWithDetails(EUsage, "test", details)

	details["key"] = "modified"

	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Details["key"] != "value" {
		t.Errorf("Details should be copied")
	}
}

func TestWrapWithDetails(t *testing.T) {
	cause := errors.New("underlying")
	details := map[string]string{"tool": "rustc"}
	err := WrapWithDetails(EToolSpawnFailed, "wrapped", cause, details)

	var ce *CodedError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}

	if ce.Cause != cause {
		t.Error("Cause not set")
	}
	if ce.Details["tool"] != "rustc" {
		t.Errorf("Details[tool] = %q, want %q", ce.Details["tool"], "rustc")
	}
}

func TestAsCodedError(t *testing.T) {
	t.Run("direct CodedError", func(t *testing.T) {
		err := New(EUsage, "test")
		ce, ok := AsCodedError(err)
		if !ok {
			t.Error("should return true for CodedError")
		}
		if ce.Code != EUsage {
			t.Errorf("Code = %q, want %q", ce.Code, EUsage)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		ce, ok := AsCodedError(errors.New("regular error"))
		if ok {
			t.Error("should return false for plain error")
		}
		if ce != nil {
			t.Error("should return nil for plain error")
		}
	})
}
