package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	gferrors "github.com/fulmenhq/gofulmen/errors"
	"github.com/stretchr/testify/require"

	"github.com/pokelens/pokelens/internal/core/pokeapi"
	"github.com/pokelens/pokelens/internal/observability"
)

func TestForLookupCodes(t *testing.T) {
	cases := []struct {
		kind pokeapi.Kind
		code string
	}{
		{pokeapi.KindRequestFailed, CodeExternalService},
		{pokeapi.KindDecodeFailed, CodeDataProcessing},
		{pokeapi.KindUnexpectedResponse, CodeUnexpectedResponse},
	}

	for _, tc := range cases {
		err := &pokeapi.LookupError{Kind: tc.kind, Query: "Pikachu", URL: "https://pokeapi.co/api/v2/pokemon/pikachu", Err: stderrors.New("boom")}
		envelope := ForLookup(context.Background(), err)
		require.NotNil(t, envelope)
		require.Equal(t, tc.code, envelope.Code)
		require.Equal(t, string(tc.kind), envelope.Context["kind"])
		require.Equal(t, "Pikachu", envelope.Context["query"])
		require.Equal(t, "boom", envelope.Context["wrapped_error"])
		require.NotEmpty(t, envelope.CorrelationID)
	}
}

func TestForLookupRecordsCauseType(t *testing.T) {
	err := &pokeapi.LookupError{
		Kind:       pokeapi.KindUnexpectedResponse,
		StatusCode: 200,
		Err:        &pokeapi.MissingFieldError{Field: "abilities"},
	}

	envelope := ForLookup(context.Background(), err)
	require.Equal(t, "*pokeapi.MissingFieldError", envelope.Context["cause_type"])
	require.EqualValues(t, 200, envelope.Context["status_code"])
	require.Equal(t, gferrors.SeverityHigh, envelope.Severity)
}

func TestForLookupUsesLookupID(t *testing.T) {
	ctx := observability.WithLookupID(context.Background())
	err := fmt.Errorf("wrapped: %w", &pokeapi.LookupError{Kind: pokeapi.KindRequestFailed})

	envelope := ForLookup(ctx, err)
	require.Equal(t, CodeExternalService, envelope.Code)
	require.Equal(t, observability.GetLookupID(ctx), envelope.CorrelationID)
}

func TestForLookupFallsBackForOtherErrors(t *testing.T) {
	envelope := ForLookup(context.Background(), stderrors.New("disk on fire"))
	require.Equal(t, CodeInternal, envelope.Code)
	require.Equal(t, "disk on fire", envelope.Context["wrapped_error"])
	require.NotEmpty(t, envelope.CorrelationID)
}

func TestEnsureEnvelopePassesThrough(t *testing.T) {
	original := NewConfigInvalidError("bad output format")
	require.Same(t, original, EnsureEnvelope(original))

	nilEnvelope := EnsureEnvelope(nil)
	require.Equal(t, CodeInternal, nilEnvelope.Code)
}
