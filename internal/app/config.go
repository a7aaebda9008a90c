package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gokickstart/internal/version"
)

// Config holds all the necessary configuration for an App instance to run.
// The pointer and slice settings override the settings file when set; nil
// means "keep the file's value".
type Config struct {
	ConfigPath string // optional HCL settings file

	LogFormat string
	LogLevel  string

	Version             *string
	FollowIncludes      *bool
	MissingIncludeFatal *bool
	KeepComments        *bool
	MaskAllExcept       []string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.Version != nil {
		if _, err := version.StringToVersion(*cfg.Version); err != nil {
			return nil, fmt.Errorf("invalid version: %w", err)
		}
	}
	return &cfg, nil
}
