package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pokelens/pokelens/internal/config"
	"github.com/pokelens/pokelens/internal/core/pokeapi"
	apperrors "github.com/pokelens/pokelens/internal/errors"
	"github.com/pokelens/pokelens/internal/observability"
	"github.com/pokelens/pokelens/internal/output"
)

// couldNotRetrieveMessage is printed to stdout for every failed lookup.
const couldNotRetrieveMessage = "Could not retrieve data for Pokémon: %s. Please check the name and your internet connection."

func runLookup(cmd *cobra.Command, args []string) error {
	query := args[0]
	cmd.SilenceUsage = true

	cfg := config.GetConfig()
	if cfg == nil {
		return errors.New("config not loaded")
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return apperrors.NewConfigInvalidError(err.Error())
	}

	ctx := observability.WithLookupID(cmd.Context())
	client := &pokeapi.Client{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Logger:     observability.CLILogger,
	}

	details, err := client.FetchDetails(ctx, query)
	if err != nil {
		reportLookupFailure(ctx, cmd, query, err)
		if cfg.StrictExit {
			return apperrors.ForLookup(ctx, err)
		}
		return nil
	}

	rendered, err := output.NewFormatter(format).FormatDetails(details)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(rendered, "\n"))
	return err
}

// reportLookupFailure prints the per-kind diagnostic to stderr and the
// generic could-not-retrieve line, naming the query as typed, to stdout.
func reportLookupFailure(ctx context.Context, cmd *cobra.Command, query string, err error) {
	diagnostic := "An unexpected error occurred: " + err.Error()
	var lookupErr *pokeapi.LookupError
	if errors.As(err, &lookupErr) {
		diagnostic = lookupErr.Diagnostic()
	}

	if logger := observability.CLILogger; logger != nil {
		envelope := apperrors.ForLookup(ctx, err)
		fields := []zap.Field{
			zap.String("error_code", envelope.Code),
			zap.String("correlation_id", envelope.CorrelationID),
		}
		for key, value := range envelope.Context {
			fields = append(fields, zap.Any(key, value))
		}
		logger.Debug(envelope.Message, fields...)
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), diagnostic)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), couldNotRetrieveMessage+"\n", query)
}
