package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/pokelens/pokelens/internal/core"
	"github.com/pokelens/pokelens/internal/observability"
)

// DefaultBaseURL is the PokéAPI pokemon endpoint root.
const DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon"

// Client fetches pokemon details from PokéAPI.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// PokemonURL builds the resource URL for query. The query is lower-cased and
// path-escaped but otherwise passed through unchanged.
func PokemonURL(baseURL, query string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "/" + url.PathEscape(strings.ToLower(query))
}

// FetchDetails performs one GET against the pokemon endpoint and projects the
// response into core.Details. Every failure is returned as a *LookupError.
func (c *Client) FetchDetails(ctx context.Context, query string) (*core.Details, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	target := PokemonURL(c.baseURL(), query)
	fail := func(kind Kind, status int, err error) (*core.Details, error) {
		lookupErr := &LookupError{Kind: kind, Query: query, URL: target, StatusCode: status, Err: err}
		c.debug(ctx, "PokéAPI lookup failed",
			zap.String("kind", string(kind)),
			zap.String("url", target),
			zap.Int("status_code", status),
			zap.String("cause_type", lookupErr.CauseType()),
			zap.Error(err))
		return nil, lookupErr
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fail(KindRequestFailed, 0, err)
	}

	c.debug(ctx, "Requesting pokemon", zap.String("url", target))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fail(KindRequestFailed, 0, err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(KindRequestFailed, resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        target,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(KindRequestFailed, resp.StatusCode, err)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return fail(KindDecodeFailed, resp.StatusCode, err)
	}

	details, err := project(body)
	if err != nil {
		return fail(KindUnexpectedResponse, resp.StatusCode, err)
	}

	c.debug(ctx, "Pokemon resolved",
		zap.String("pokemon", details.PokemonName),
		zap.Int("abilities", len(details.Abilities)))

	return details, nil
}

func (c *Client) baseURL() string {
	if c != nil && c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c != nil && c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{}
}

func (c *Client) debug(ctx context.Context, msg string, fields ...zap.Field) {
	if c == nil || c.Logger == nil {
		return
	}
	if id := observability.GetLookupID(ctx); id != "" {
		fields = append(fields, zap.String("lookup_id", id))
	}
	c.Logger.Debug(msg, fields...)
}

type pokemonPayload struct {
	Name           *string       `json:"name"`
	BaseExperience *int          `json:"base_experience"`
	Height         *int          `json:"height"`
	Weight         *int          `json:"weight"`
	Abilities      []abilitySlot `json:"abilities"`
}

type abilitySlot struct {
	Ability  *namedResource `json:"ability"`
	IsHidden bool           `json:"is_hidden"`
	Slot     int            `json:"slot"`
}

type namedResource struct {
	Name *string `json:"name"`
	URL  string  `json:"url"`
}

// project maps a decoded pokemon resource onto core.Details. Absent and null
// fields are both treated as missing.
func project(body []byte) (*core.Details, error) {
	var payload pokemonPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	switch {
	case payload.Name == nil:
		return nil, &MissingFieldError{Field: "name"}
	case payload.BaseExperience == nil:
		return nil, &MissingFieldError{Field: "base_experience"}
	case payload.Height == nil:
		return nil, &MissingFieldError{Field: "height"}
	case payload.Weight == nil:
		return nil, &MissingFieldError{Field: "weight"}
	case payload.Abilities == nil:
		return nil, &MissingFieldError{Field: "abilities"}
	}

	abilities := make([]string, 0, len(payload.Abilities))
	for i, slot := range payload.Abilities {
		if slot.Ability == nil {
			return nil, &MissingFieldError{Field: fmt.Sprintf("abilities[%d].ability", i)}
		}
		if slot.Ability.Name == nil {
			return nil, &MissingFieldError{Field: fmt.Sprintf("abilities[%d].ability.name", i)}
		}
		abilities = append(abilities, *slot.Ability.Name)
	}

	return &core.Details{
		PokemonName:    *payload.Name,
		BaseExperience: *payload.BaseExperience,
		Height:         *payload.Height,
		Weight:         *payload.Weight,
		Abilities:      abilities,
	}, nil
}
