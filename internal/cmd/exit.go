package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/pokelens/pokelens/internal/core/pokeapi"
	apperrors "github.com/pokelens/pokelens/internal/errors"
	"github.com/pokelens/pokelens/internal/observability"
)

// ExitCodeFor maps an error returned by Execute to a foundry exit code.
// Lookup failures only reach here when --strict-exit is set.
func ExitCodeFor(err error) foundry.ExitCode {
	if err == nil {
		return foundry.ExitCode(0)
	}

	var lookupErr *pokeapi.LookupError
	if stderrors.As(err, &lookupErr) {
		if lookupErr.Kind == pokeapi.KindRequestFailed {
			return foundry.ExitExternalServiceUnavailable
		}
		return foundry.ExitFailure
	}

	if envelope, ok := err.(*errors.ErrorEnvelope); ok && envelope != nil {
		switch envelope.Code {
		case apperrors.CodeExternalService:
			return foundry.ExitExternalServiceUnavailable
		case apperrors.CodeConfigInvalid:
			return foundry.ExitConfigInvalid
		}
	}

	return foundry.ExitFailure
}

// Exit reports err and terminates the process with ExitCodeFor(err).
// Lookup failures were already explained on stderr, so they get the plain
// stderr summary rather than an error-level log entry.
func Exit(err error) {
	code := ExitCodeFor(err)
	if _, ok := err.(*errors.ErrorEnvelope); ok && !isLookupFailure(err) {
		ExitWithCode(observability.CLILogger, code, "Command execution failed", err)
	}
	ExitWithCodeStderr(code, "Command execution failed", err)
}

// isLookupFailure reports whether err is a lookup error or an envelope built
// from one by apperrors.ForLookup.
func isLookupFailure(err error) bool {
	var lookupErr *pokeapi.LookupError
	if stderrors.As(err, &lookupErr) {
		return true
	}

	envelope, ok := err.(*errors.ErrorEnvelope)
	if !ok || envelope == nil {
		return false
	}
	switch envelope.Code {
	case apperrors.CodeExternalService, apperrors.CodeDataProcessing, apperrors.CodeUnexpectedResponse:
		return true
	}
	return false
}

// ExitWithCode exits the program with a semantic foundry exit code and logs the error.
// This helper ensures consistent error logging with exit code metadata before exiting.
//
// Parameters:
//   - logger: The logger to use for error output (can be nil for early failures)
//   - exitCode: The foundry exit code constant (e.g., foundry.ExitConfigInvalid)
//   - msg: Human-readable error message
//   - err: The underlying error (can be nil)
func ExitWithCode(logger *logging.Logger, exitCode foundry.ExitCode, msg string, err error) {
	// Get exit code metadata from foundry catalog
	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		// Fallback if we can't get exit code info (should never happen)
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v (exit code: %d)\n", msg, err, exitCode)
		os.Exit(int(exitCode))
	}

	// Log error with exit code metadata
	if logger != nil {
		// Use structured logger if available
		fields := []zap.Field{
			zap.Int("exit_code", info.Code),
			zap.String("exit_name", info.Name),
			zap.String("exit_description", info.Description),
			zap.String("exit_category", info.Category),
		}

		// Add structured error fields if it's an ErrorEnvelope
		if envelope, ok := err.(*errors.ErrorEnvelope); ok {
			fields = append(fields,
				zap.String("error_code", envelope.Code),
				zap.String("error_message", envelope.Message),
				zap.String("correlation_id", envelope.CorrelationID),
				zap.String("trace_id", envelope.TraceID),
			)
			if envelope.Context != nil {
				fields = append(fields, zap.Any("error_context", envelope.Context))
			}
			if envelope.Original != nil {
				if originalErr, ok := envelope.Original.(error); ok {
					err = originalErr // Log the underlying error
				}
			}
		}

		fields = append(fields, zap.Error(err))
		logger.Error(msg, fields...)
	} else {
		// Fall back to stderr if no logger available
		if err != nil {
			if envelope, ok := err.(*errors.ErrorEnvelope); ok {
				fmt.Fprintf(os.Stderr, "FATAL: %s [%s]: %v (correlation: %s, trace: %s)\n",
					msg, envelope.Code, envelope.Message, envelope.CorrelationID, envelope.TraceID)
				if envelope.Original != nil {
					if originalErr, ok := envelope.Original.(error); ok {
						fmt.Fprintf(os.Stderr, "Underlying error: %v\n", originalErr)
					}
				}
			} else {
				fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: %s\n", msg)
		}
		fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)
	}

	// Exit with semantic code
	os.Exit(info.Code)
}

// ExitWithCodeStderr is a variant that writes to stderr without a logger.
// Use this for early failures before logger initialization.
//
// Parameters:
//   - exitCode: The foundry exit code constant
//   - msg: Human-readable error message
//   - err: The underlying error (can be nil)
func ExitWithCodeStderr(exitCode foundry.ExitCode, msg string, err error) {
	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		// Fallback if we can't get exit code info
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %s: %v (exit code: %d)\n", msg, err, exitCode)
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: %s (exit code: %d)\n", msg, exitCode)
		}
		os.Exit(int(exitCode))
	}

	// Write to stderr with exit code metadata
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "FATAL: %s\n", msg)
	}
	fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)

	os.Exit(info.Code)
}
