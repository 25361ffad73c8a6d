package errors

import (
	"context"
	stderrors "errors"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"

	"github.com/pokelens/pokelens/internal/core/pokeapi"
	"github.com/pokelens/pokelens/internal/observability"
)

// Error codes for lookup failures
const (
	CodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	CodeDataProcessing     = "DATA_PROCESSING_ERROR"
	CodeUnexpectedResponse = "UNEXPECTED_RESPONSE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeConfigInvalid      = "CONFIG_INVALID"
)

func NewExternalServiceError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeExternalService, message)
}

func NewDataProcessingError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeDataProcessing, message)
}

func NewUnexpectedResponseError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeUnexpectedResponse, message)
}

func NewConfigInvalidError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeConfigInvalid, message)
}

// ForLookup converts a lookup failure into an envelope carrying the failure
// kind, the request URL and the original cause type. Errors that are not a
// *pokeapi.LookupError fall through to EnsureEnvelope.
func ForLookup(ctx context.Context, err error) *errors.ErrorEnvelope {
	var lookupErr *pokeapi.LookupError
	if !stderrors.As(err, &lookupErr) || lookupErr == nil {
		return EnsureCorrelationID(EnsureEnvelope(err), ctx)
	}

	var envelope *errors.ErrorEnvelope
	switch lookupErr.Kind {
	case pokeapi.KindRequestFailed:
		envelope = withSeverityMedium(NewExternalServiceError("PokéAPI request failed"))
	case pokeapi.KindDecodeFailed:
		envelope = withSeverityHigh(NewDataProcessingError("PokéAPI response was not valid JSON"))
	default:
		envelope = withSeverityHigh(NewUnexpectedResponseError("PokéAPI response had an unexpected shape"))
	}

	details := map[string]interface{}{
		"kind":  string(lookupErr.Kind),
		"query": lookupErr.Query,
		"url":   lookupErr.URL,
	}
	if lookupErr.StatusCode != 0 {
		details["status_code"] = lookupErr.StatusCode
	}
	if causeType := lookupErr.CauseType(); causeType != "" {
		details["cause_type"] = causeType
	}
	if lookupErr.Err != nil {
		details["wrapped_error"] = lookupErr.Err.Error()
	}

	if updated, updateErr := envelope.WithContext(details); updateErr == nil {
		envelope = updated
	}
	return EnsureCorrelationID(envelope, ctx)
}

// EnsureEnvelope normalizes any error into a gofulmen ErrorEnvelope.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope(CodeInternal, "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	if envelope, ok := err.(*errors.ErrorEnvelope); ok && envelope != nil {
		return envelope
	}

	env := errors.NewErrorEnvelope(CodeInternal, "unexpected error")
	env, _ = env.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	env, _ = env.WithSeverity(errors.SeverityHigh)
	return env
}

// EnsureCorrelationID attaches the lookup ID from ctx, generating one when
// the context has none.
func EnsureCorrelationID(envelope *errors.ErrorEnvelope, ctx context.Context) *errors.ErrorEnvelope {
	if envelope == nil {
		return nil
	}

	if envelope.CorrelationID != "" {
		return envelope
	}

	correlationID := observability.GetLookupID(ctx)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	return envelope.WithCorrelationID(correlationID)
}

func withSeverityMedium(envelope *errors.ErrorEnvelope) *errors.ErrorEnvelope {
	if updated, err := envelope.WithSeverity(errors.SeverityMedium); err == nil {
		return updated
	}
	return envelope
}

func withSeverityHigh(envelope *errors.ErrorEnvelope) *errors.ErrorEnvelope {
	if updated, err := envelope.WithSeverity(errors.SeverityHigh); err == nil {
		return updated
	}
	return envelope
}
