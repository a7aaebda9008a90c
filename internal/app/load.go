package app

import (
	"context"

	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/handler"
	"github.com/specialistvlad/gokickstart/internal/parser"
	"github.com/specialistvlad/gokickstart/internal/registry"
)

// NewHandler returns an empty handler for the configured version, with the
// overrides and masking applied.
func (a *App) NewHandler() (*handler.Handler, error) {
	reg, err := registry.For(a.version, a.overrides)
	if err != nil {
		return nil, err
	}
	h := handler.New(reg)
	if len(a.settings.MaskAllExcept) > 0 {
		h.MaskAllExcept(a.settings.MaskAllExcept...)
	}
	return h, nil
}

func (a *App) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithFollowIncludes(a.settings.FollowIncludes),
		parser.WithMissingIncludeIsFatal(a.settings.MissingIncludeFatal),
		parser.WithKeepComments(a.settings.KeepComments),
	}
}

// ParseFile reads one document into a fresh handler. The handler is
// returned with whatever was parsed even when err is not nil.
func (a *App) ParseFile(ctx context.Context, path string) (*handler.Handler, error) {
	ctx = ctxlog.With(a.context(ctx), "file", path)
	h, err := a.NewHandler()
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsing kickstart file.", "version", a.version)
	return h, parser.New(h, a.parserOptions()...).ReadFromPath(ctx, path)
}
