package options

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// tagName is the struct tag that binds a field to an option dest.
const tagName = "ks"

// fields indexes the settable, tagged fields of the struct behind target,
// descending into embedded structs.
func fields(target any) (map[string]reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, kserrors.New(kserrors.Generic, "options: target must be a non-nil pointer to a struct, got %T", target)
	}
	out := make(map[string]reflect.Value)
	collect(rv.Elem(), out)
	return out, nil
}

func collect(sv reflect.Value, out map[string]reflect.Value) {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		fv := sv.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collect(fv, out)
			continue
		}
		if !sf.IsExported() || !fv.CanSet() {
			continue
		}
		name := strings.Split(sf.Tag.Get(tagName), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		out[name] = fv
	}
}

// Decode binds every value in res to the field tagged with its dest.
// Values without a matching field are skipped, which lets caller supplied
// types implement a subset of a command's options.
func Decode(res *Result, target any) error {
	idx, err := fields(target)
	if err != nil {
		return err
	}
	dests := make([]string, 0, len(res.Values))
	for dest := range res.Values {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	for _, dest := range dests {
		fv, ok := idx[dest]
		if !ok {
			continue
		}
		if err := gocty.FromCtyValue(res.Values[dest], fv.Addr().Interface()); err != nil {
			return kserrors.Wrap(kserrors.Generic, err, "cannot bind option %s to %s", dest, fv.Type())
		}
	}
	return nil
}

// Apply updates the fields of target named by their ks tags. Values are
// converted through cty so a mistyped value is rejected instead of
// silently coerced.
func Apply(target any, values map[string]any) error {
	idx, err := fields(target)
	if err != nil {
		return err
	}
	for name, v := range values {
		fv, ok := idx[name]
		if !ok {
			return kserrors.New(kserrors.Generic, "%T has no field for %q", target, name)
		}
		ty, err := gocty.ImpliedType(fv.Interface())
		if err != nil {
			return kserrors.Wrap(kserrors.Generic, err, "field %q", name)
		}
		val, err := gocty.ToCtyValue(v, ty)
		if err != nil {
			return kserrors.Wrap(kserrors.Value, err, "invalid value for %q", name)
		}
		if err := gocty.FromCtyValue(val, fv.Addr().Interface()); err != nil {
			return kserrors.Wrap(kserrors.Value, err, "invalid value for %q", name)
		}
	}
	return nil
}

// Validate checks that every dest declared by s has a field in target that
// can hold the option's values.
func Validate(s *Schema, target any) error {
	idx, err := fields(target)
	if err != nil {
		return err
	}
	var errs []string
	check := func(dest string, ty cty.Type) {
		fv, ok := idx[dest]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: no field tagged %q", s.Command, dest))
			return
		}
		fieldTy, err := gocty.ImpliedType(fv.Interface())
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: field %q: %v", s.Command, dest, err))
			return
		}
		if !ty.Equals(fieldTy) && convert.GetConversion(ty, fieldTy) == nil {
			errs = append(errs, fmt.Sprintf("%s: field %q is %s, option produces %s", s.Command, dest, fieldTy.FriendlyName(), ty.FriendlyName()))
		}
	}
	for i := range s.Options {
		if s.Options[i].alwaysDeprecated() {
			continue
		}
		check(s.Options[i].DestOf(), s.Options[i].CtyType())
	}
	for _, a := range s.Args {
		check(a.Dest, cty.String)
	}
	if s.Rest != "" {
		check(s.Rest, cty.List(cty.String))
	}
	if len(errs) > 0 {
		return kserrors.New(kserrors.Generic, "schema validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Fields returns the tagged fields of target that hold a non-zero value,
// keyed by dest. Pointer fields are dereferenced.
func Fields(target any) (map[string]any, error) {
	idx, err := fields(target)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(idx))
	for dest, fv := range idx {
		if fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Ptr {
			fv = fv.Elem()
		}
		out[dest] = fv.Interface()
	}
	return out, nil
}
