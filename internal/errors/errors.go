// Package errors defines the stable error code system for rrun.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. Every coded error is an operational failure (exit 2).
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	ENothingToRun    Code = "E_NOTHING_TO_RUN"    // no project root and no input
	ESourceNotFound  Code = "E_SOURCE_NOT_FOUND"  // single-file input missing or not a regular file
	EToolSpawnFailed Code = "E_TOOL_SPAWN_FAILED" // compiler, build tool or staged binary could not be started
	EInvalidConfig   Code = "E_INVALID_CONFIG"    // config file unreadable or invalid
)

// Exit codes of the launcher process.
const (
	ExitOK          = 0
	ExitChildFailed = 1 // compile or launched program reported failure
	ExitOperational = 2 // the operation itself could not be performed
)

// CodedError is the standard error type for rrun errors.
type CodedError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
// A nil Err means the failure was already reported by a child process.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// ChildFailed reports that a spawned program ran and exited non-zero.
// It carries no message: the child already wrote its own diagnostics.
func ChildFailed() error {
	return &ExitCodeError{Code: ExitChildFailed}
}

// IsSilent reports whether err should produce no output on stderr.
func IsSilent(err error) bool {
	var ec *ExitCodeError
	return errors.As(err, &ec) && ec.Err == nil
}

// New creates a new CodedError with the given code and message.
func New(code Code, msg string) error {
	return &CodedError{Code: code, Msg: msg}
}

// NewWithDetails creates a new CodedError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &CodedError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new CodedError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &CodedError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new CodedError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &CodedError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a CodedError.
func GetCode(err error) Code {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// AsCodedError returns (*CodedError, true) if err is or wraps a CodedError.
func AsCodedError(err error) (*CodedError, bool) {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, the explicit code for an ExitCodeError,
// and 2 for everything else: any other error means rrun could not do its job.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitOperational
}
