package config

import "time"

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "POKELENS"

// Config represents the complete application configuration.
// pokelens reads no config file: values come from defaults, POKELENS_*
// environment variables and command-line flags, in increasing precedence.
type Config struct {
	API        APIConfig    `mapstructure:"api"`
	Output     OutputConfig `mapstructure:"output"`
	StrictExit bool         `mapstructure:"strict_exit"`
	Verbose    bool         `mapstructure:"verbose"`
}

// APIConfig contains PokéAPI client configuration
type APIConfig struct {
	// BaseURL is the pokemon endpoint root; the lower-cased name is appended.
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds the whole HTTP exchange. Zero leaves the request
	// unbounded.
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig contains rendering configuration
type OutputConfig struct {
	// Format is one of json, yaml, table, markdown
	Format string `mapstructure:"format"`
}
