package hclconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gokickstart/internal/config"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader that exposes the process environment to
// expressions.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses the settings file at path and translates it into the model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("HCL settings loader started.")

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model, err := l.translate(ctxlog.WithLogger(ctx, logger), &root)
	if err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	logger.Debug("HCL settings loaded.",
		"version", model.Version,
		"overrides", len(model.Overrides),
		"data_overrides", len(model.DataOverrides),
	)
	return model, nil
}

// evalContext exposes the environment as the "env" object.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
