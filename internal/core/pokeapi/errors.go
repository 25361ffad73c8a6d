package pokeapi

import (
	"fmt"
	"reflect"
)

// Kind identifies which stage of a lookup failed.
type Kind string

const (
	// KindRequestFailed covers transport errors and non-2xx responses.
	KindRequestFailed Kind = "request_failed"
	// KindDecodeFailed means a 2xx body was not valid JSON.
	KindDecodeFailed Kind = "decode_failed"
	// KindUnexpectedResponse means valid JSON did not have the expected shape.
	KindUnexpectedResponse Kind = "unexpected_response"
)

// LookupError is returned by FetchDetails for every failure.
type LookupError struct {
	Kind       Kind
	Query      string
	URL        string
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e == nil {
		return "pokeapi lookup failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("pokeapi lookup failed: %s", e.Kind)
	}
	return e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Diagnostic returns the one-line message printed for this failure.
func (e *LookupError) Diagnostic() string {
	if e == nil {
		return "An unexpected error occurred."
	}
	switch e.Kind {
	case KindRequestFailed:
		return fmt.Sprintf("Error fetching data: %s", e.Error())
	case KindDecodeFailed:
		return "Error decoding JSON response."
	default:
		return fmt.Sprintf("An unexpected error occurred: %s", e.Error())
	}
}

// CauseType reports the Go type of the underlying error, e.g.
// "*json.UnmarshalTypeError" or "*pokeapi.MissingFieldError".
func (e *LookupError) CauseType() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return reflect.TypeOf(e.Err).String()
}

// StatusError describes a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("%s for url: %s", status, e.URL)
}

// MissingFieldError reports a required key that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response is missing required field %q", e.Field)
}
