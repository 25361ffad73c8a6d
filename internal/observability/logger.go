package observability

import (
	"fmt"

	"github.com/fulmenhq/gofulmen/logging"
)

// CLILogger is used by the lookup command (SIMPLE profile, stderr)
var CLILogger *logging.Logger

// InitCLILogger initializes the CLI logger with SIMPLE profile. CLILogger is
// left unchanged when the logger cannot be created.
func InitCLILogger(serviceName string, verbose bool) error {
	logger, err := logging.NewCLI(serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize CLI logger: %w", err)
	}

	// Set level to DEBUG if verbose
	if verbose {
		logger.SetLevel(logging.DEBUG)
	}

	CLILogger = logger
	return nil
}
