package pokeapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupErrorDiagnostics(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	cases := []struct {
		kind Kind
		want string
	}{
		{KindRequestFailed, "Error fetching data: dial tcp: connection refused"},
		{KindDecodeFailed, "Error decoding JSON response."},
		{KindUnexpectedResponse, "An unexpected error occurred: dial tcp: connection refused"},
	}

	for _, tc := range cases {
		err := &LookupError{Kind: tc.kind, Err: cause}
		require.Equal(t, tc.want, err.Diagnostic())
		require.ErrorIs(t, err, cause)
	}
}

func TestLookupErrorNilSafe(t *testing.T) {
	var err *LookupError
	require.Equal(t, "pokeapi lookup failed", err.Error())
	require.Nil(t, err.Unwrap())
	require.Empty(t, err.CauseType())
	require.NotEmpty(t, err.Diagnostic())
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{StatusCode: 404, Status: "404 Not Found", URL: "https://pokeapi.co/api/v2/pokemon/missingno"}
	require.Equal(t, "404 Not Found for url: https://pokeapi.co/api/v2/pokemon/missingno", err.Error())

	bare := &StatusError{StatusCode: 503, URL: "u"}
	require.Equal(t, "503 for url: u", bare.Error())
}
