package main

import (
	"github.com/pokelens/pokelens/internal/cmd"
)

// Version information set via ldflags during build
// Example: go build -ldflags="-X main.version=1.0.0 -X main.commit=abc123 -X main.buildDate=2026-10-19"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	// A failed lookup is reported by the command itself and only surfaces
	// here with --strict-exit.
	if err := cmd.Execute(); err != nil {
		cmd.Exit(err)
	}
}
