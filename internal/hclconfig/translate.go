// This file translates the decoded HCL schema into the format-agnostic
// config.Model.

package hclconfig

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gokickstart/internal/config"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func (l *Loader) translate(ctx context.Context, root *fileRoot) (*config.Model, error) {
	model := config.Default()
	evalCtx := l.evalContext()

	attrs := []struct {
		name   string
		expr   hcl.Expression
		target any
	}{
		{"version", root.Version, &model.Version},
		{"follow_includes", root.FollowIncludes, &model.FollowIncludes},
		{"missing_include_fatal", root.MissingIncludeFatal, &model.MissingIncludeFatal},
		{"keep_comments", root.KeepComments, &model.KeepComments},
		{"mask_all_except", root.MaskAllExcept, &model.MaskAllExcept},
	}
	for _, a := range attrs {
		if !isExprDefined(ctx, a.expr, a.name) {
			continue
		}
		if err := decodeExpr(a.expr, evalCtx, a.target); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.name, err)
		}
	}

	if err := translateOverrides(root.Overrides, "override", model.Overrides); err != nil {
		return nil, err
	}
	if err := translateOverrides(root.DataOverrides, "data_override", model.DataOverrides); err != nil {
		return nil, err
	}
	return model, nil
}

func translateOverrides(blocks []*overrideBlock, kind string, out map[string]string) error {
	for _, b := range blocks {
		if _, dup := out[b.Name]; dup {
			return fmt.Errorf("duplicate %s block for %q", kind, b.Name)
		}
		if b.Variant == "" {
			return fmt.Errorf("%s %q: variant must not be empty", kind, b.Name)
		}
		out[b.Name] = b.Variant
	}
	return nil
}

// isExprDefined reports whether an optional attribute was written in the
// file. gohcl fills omitted optional expressions with a zero-width
// placeholder, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// decodeExpr evaluates expr and converts the result into the Go value
// target points to.
func decodeExpr(expr hcl.Expression, evalCtx *hcl.EvalContext, target any) error {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return diags
	}
	ty, err := gocty.ImpliedType(reflect.ValueOf(target).Elem().Interface())
	if err != nil {
		return err
	}
	val, err = convert.Convert(val, ty)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(val, target)
}
