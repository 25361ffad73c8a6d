package observability_test

import (
	"context"
	"testing"

	"github.com/fulmenhq/gofulmen/crucible"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/pokelens/pokelens/internal/observability"
)

func TestCLILogger(t *testing.T) {
	t.Run("CLI logger creation", func(t *testing.T) {
		if err := observability.InitCLILogger("pokelens-test", false); err != nil {
			t.Fatalf("Failed to initialize CLI logger: %v", err)
		}

		if observability.CLILogger == nil {
			t.Fatal("CLI logger should not be nil after initialization")
		}

		observability.CLILogger.Info("Test CLI log message",
			zap.String("pokemon", "pikachu"))
	})

	t.Run("Verbose CLI logger emits debug", func(t *testing.T) {
		if err := observability.InitCLILogger("pokelens-test", true); err != nil {
			t.Fatalf("Failed to initialize CLI logger: %v", err)
		}

		observability.CLILogger.Debug("Debug message",
			zap.String("mode", "verbose"))
	})

	t.Run("Standalone logger at debug level", func(t *testing.T) {
		logger, err := logging.NewCLI("pokelens-debug")
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.SetLevel(logging.DEBUG)
		logger.Debug("Requesting pokemon", zap.String("url", "https://pokeapi.co/api/v2/pokemon/pikachu"))
	})
}

func TestEmbeddedCrucibleVersion(t *testing.T) {
	version := crucible.GetVersion()
	if version.Gofulmen == "" {
		t.Error("Gofulmen version should not be empty")
	}
	if version.Crucible == "" {
		t.Error("Crucible version should not be empty")
	}
}

func TestLookupID(t *testing.T) {
	if id := observability.GetLookupID(context.Background()); id != "" {
		t.Fatalf("expected empty lookup id, got %q", id)
	}

	ctx := observability.WithLookupID(context.Background())
	id := observability.GetLookupID(ctx)
	if id == "" {
		t.Fatal("expected lookup id to be set")
	}

	// An existing lookup id is kept.
	if again := observability.GetLookupID(observability.WithLookupID(ctx)); again != id {
		t.Fatalf("expected lookup id %q to be preserved, got %q", id, again)
	}
}
