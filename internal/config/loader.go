// Package config provides configuration management for pokelens.
// Values are layered by viper (defaults, environment, flags) and decoded
// into Config with mapstructure.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/pokelens/pokelens/internal/core/pokeapi"
	"github.com/pokelens/pokelens/internal/output"
)

var (
	// appConfig holds the current application configuration
	appConfig *Config
	configMu  sync.RWMutex
)

// NewViper returns a viper instance with defaults applied and POKELENS_*
// environment variables enabled. Nested keys map to underscores, so
// api.base_url is read from POKELENS_API_BASE_URL.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults sets default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", pokeapi.DefaultBaseURL)
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("output.format", string(output.FormatJSON))
	v.SetDefault("strict_exit", false)
	v.SetDefault("verbose", false)
}

// Load decodes and validates the configuration held by v, then stores it
// for GetConfig.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setConfig(cfg)

	return cfg, nil
}

// Validate checks values that cannot be expressed as types.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	parsed, err := url.Parse(strings.TrimSpace(c.API.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", c.API.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing host", c.API.BaseURL)
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid api timeout %s: must not be negative", c.API.Timeout)
	}

	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}

	return nil
}

// GetConfig returns the current application configuration (thread-safe)
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe)
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}
