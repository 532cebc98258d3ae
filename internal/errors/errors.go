// Package apperrors defines the exit codes and error types of the binafft
// command.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Exit codes returned by the binafft command.
const (
	ExitSuccess       = 0   // Successful run.
	ExitErrorGeneric  = 1   // Any other failure.
	ExitErrorMismatch = 3   // A transform failed verification.
	ExitErrorConfig   = 4   // Invalid flags or environment.
	ExitErrorCanceled = 130 // Interrupted (e.g. SIGINT).
)

// ConfigError reports invalid user configuration.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// VerificationError reports a transform whose round trip or reference
// comparison exceeded the tolerance.
type VerificationError struct {
	N         int
	MaxError  float64
	Tolerance float64
}

func (e VerificationError) Error() string {
	return fmt.Sprintf("verification failed for n=%d: max error %.3g exceeds %.3g", e.N, e.MaxError, e.Tolerance)
}

// WrapError adds context to err. It returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	var (
		cfgErr    ConfigError
		verifyErr VerificationError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.As(err, &verifyErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}
