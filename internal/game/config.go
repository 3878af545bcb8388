package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed    = "DUNGEONDELVE_SEED"
	EnvPlain   = "DUNGEONDELVE_PLAIN"
	EnvAPIKey  = "HONEYCOMB_DUNGEONDELVE_API_KEY"
	EnvDataset = "HONEYCOMB_DUNGEONDELVE_DATASET"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeons and fights.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SessionID identifies this play session in telemetry. Generated when empty.
	SessionID string

	// Telemetry is true when traces should be exported.
	Telemetry bool

	// APIKey authenticates trace export to Honeycomb.
	APIKey string

	// PlainConsole forces the line-based console even on a terminal.
	PlainConsole bool

	// Dataset is the Honeycomb dataset traces are sent to.
	Dataset string
}

// ConfigFromEnv builds a Config from the process environment.
// Telemetry is enabled only when an API key is present.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		APIKey:  strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Dataset: os.Getenv(EnvDataset),
	}
	cfg.Telemetry = cfg.APIKey != ""
	if cfg.Dataset == "" {
		cfg.Dataset = "dungeondelve" // default dataset name
	}

	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	if raw := strings.TrimSpace(os.Getenv(EnvPlain)); raw != "" {
		plain, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvPlain, raw, err)
		}
		cfg.PlainConsole = plain
	}

	return cfg, nil
}
