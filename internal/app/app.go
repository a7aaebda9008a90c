package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/gokickstart/internal/config"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/registry"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// App encapsulates the tool's dependencies and resolved settings.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	settings  *config.Model
	version   version.Version
	overrides registry.Overrides
}

// NewApp builds an App. Program output goes to outW and logs to logW. The
// settings file, if any, is read through loader and then overlaid with the
// values set in cfg.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = loaded
		logger.Debug("Settings file loaded.", "path", cfg.ConfigPath)
	}
	overlay(settings, cfg)

	v := version.DEVEL
	if settings.Version != "" {
		parsed, err := version.StringToVersion(settings.Version)
		if err != nil {
			return nil, fmt.Errorf("invalid version in settings: %w", err)
		}
		v = parsed
	}

	overrides, err := registry.ResolveOverrides(settings.Overrides, settings.DataOverrides)
	if err != nil {
		return nil, fmt.Errorf("invalid overrides: %w", err)
	}

	reg, err := registry.For(v, overrides)
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(ctx); err != nil {
		if len(overrides.Commands) == 0 && len(overrides.Data) == 0 {
			return nil, err
		}
		// Overrides deliberately swap in variants from other versions.
		logger.Warn("Overrides change the syntax accepted by this version.", "version", v, "details", err.Error())
	} else {
		logger.Debug("Registry validation passed.", "version", v)
	}

	return &App{
		outW:      outW,
		logger:    logger,
		settings:  settings,
		version:   v,
		overrides: overrides,
	}, nil
}

func overlay(m *config.Model, cfg *Config) {
	if cfg.Version != nil {
		m.Version = *cfg.Version
	}
	if cfg.FollowIncludes != nil {
		m.FollowIncludes = *cfg.FollowIncludes
	}
	if cfg.MissingIncludeFatal != nil {
		m.MissingIncludeFatal = *cfg.MissingIncludeFatal
	}
	if cfg.KeepComments != nil {
		m.KeepComments = *cfg.KeepComments
	}
	if cfg.MaskAllExcept != nil {
		m.MaskAllExcept = cfg.MaskAllExcept
	}
}

// Settings returns the resolved settings.
func (a *App) Settings() *config.Model {
	return a.settings
}

// Version returns the kickstart version documents are parsed with.
func (a *App) Version() version.Version {
	return a.version
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
