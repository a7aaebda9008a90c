package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Validate performs a strict parity check between the registry's tables
// and the Go command implementations: schemas against struct fields, data
// commands against data kinds, and option windows against the version.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)
	v := version.Resolve(r.version)

	for _, keyword := range r.Keywords() {
		t := r.commands[keyword]
		if t.Deprecated {
			continue
		}
		s := t.Schema(keyword)
		if s == nil {
			if len(t.Schemas) > 0 {
				errs = append(errs, fmt.Sprintf("%s: variant %s has no schema", keyword, t.Name))
			}
			continue
		}
		if len(t.Schemas) > 1 && s.Command != keyword {
			errs = append(errs, fmt.Sprintf("%s: variant %s has no schema of its own for this keyword", keyword, t.Name))
		}

		// A variant must parse the same option set at its own version as
		// at the version whose table uses it.
		for i := range s.Options {
			opt := &s.Options[i]
			if opt.AvailableAt(t.Version) != opt.AvailableAt(v) || opt.DeprecatedAt(t.Version) != opt.DeprecatedAt(v) {
				errs = append(errs, fmt.Sprintf("%s: option --%s of variant %s behaves differently in %s", keyword, opt.Name, t.Name, v))
			}
		}

		if t.DataKind == "" {
			if err := options.Validate(s, t.Make()); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", keyword, err))
			}
			continue
		}
		dt, ok := r.data[t.DataKind]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: data kind %s of variant %s is not registered", keyword, t.DataKind, t.Name))
			continue
		}
		if _, ok := t.Make().(commands.DataCommand); !ok {
			errs = append(errs, fmt.Sprintf("%s: variant %s declares data kind %s but does not produce data", keyword, t.Name, t.DataKind))
		}
		if err := options.Validate(s, dt.New()); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s: %v", keyword, dt.Name, err))
		}
	}

	for kind, dt := range r.data {
		if dt.Kind != kind {
			errs = append(errs, fmt.Sprintf("data kind %s maps to %s, which produces %s", kind, dt.Name, dt.Kind))
		}
	}

	if len(errs) > 0 {
		logger.Debug("Registry validation failed.", "version", v, "problems", len(errs))
		return kserrors.New(kserrors.Generic, "registry validation failed for %s:\n- %s", v, strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validated.", "version", v, "keywords", len(r.commands), "data_kinds", len(r.data))
	return nil
}

// ValidateAll validates the stock registry of every supported version.
func ValidateAll(ctx context.Context) error {
	var errs []string
	for _, v := range version.All() {
		r, err := For(v)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if err := r.Validate(ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return kserrors.New(kserrors.Generic, "%s", strings.Join(errs, "\n"))
	}
	return nil
}
