package options

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// flagValue is the pflag.Value registered for every spelling of an option.
type flagValue struct {
	opt        *Option
	name       string
	res        *Result
	deprecated bool
	last       string
}

func (f *flagValue) String() string { return f.last }

func (f *flagValue) Type() string { return f.opt.Kind.String() }

func (f *flagValue) Set(raw string) error {
	f.last = raw
	if f.deprecated {
		f.res.noteDeprecated(f.name)
		return nil
	}
	val, store, err := f.opt.convert(raw)
	if err != nil {
		f.res.fail(f.name, raw, err)
		return err
	}
	if store {
		f.res.assign(f.opt, f.name, val)
	}
	return nil
}

// convert turns the raw text of one flag occurrence into its value. store
// is false when a switch was explicitly turned off and has nothing to keep.
func (o *Option) convert(raw string) (cty.Value, bool, error) {
	switch o.Kind {
	case Bool:
		on, err := ParseBool(raw)
		if err != nil {
			return cty.NilVal, false, err
		}
		if o.Const != nil {
			if !on {
				return cty.NilVal, false, nil
			}
			v, err := toCty(o.Const)
			return v, err == nil, err
		}
		return cty.BoolVal(on), true, nil
	case Int:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return cty.NilVal, false, fmt.Errorf("%q is not an integer", raw)
		}
		return cty.NumberIntVal(int64(n)), true, nil
	case List:
		return ListValue(SplitList(raw)), true, nil
	case Map:
		m, err := SplitPairs(raw)
		if err != nil {
			return cty.NilVal, false, err
		}
		return MapValue(m), true, nil
	case Custom:
		if o.Convert == nil {
			return cty.NilVal, false, fmt.Errorf("option --%s has no converter", o.Name)
		}
		v, err := o.Convert(raw)
		return v, err == nil, err
	default:
		if len(o.Choices) > 0 && !slices.Contains(o.Choices, raw) {
			return cty.NilVal, false, fmt.Errorf("%q is not one of %s", raw, strings.Join(o.Choices, ", "))
		}
		return cty.StringVal(raw), true, nil
	}
}

// ParseBool accepts the spellings kickstart has historically used for
// boolean option values. A bare switch arrives as "true"; an empty value
// only comes from an explicit "--flag=" and is rejected.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return false, errors.New("a boolean value is required after '='")
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", raw)
}

// SplitList splits a comma separated value, dropping empty items.
func SplitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitPairs parses "k=v,k2=v2". Semicolons are accepted as separators too,
// which lets values contain commas.
func SplitPairs(raw string) (map[string]string, error) {
	sep := ","
	if strings.Contains(raw, ";") {
		sep = ";"
	}
	out := make(map[string]string)
	for _, item := range strings.Split(raw, sep) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		k, v, ok := strings.Cut(item, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%q is not a key=value pair", item)
		}
		out[k] = v
	}
	return out, nil
}

// ListValue builds a list(string) value; an empty input gives an empty list.
func ListValue(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

// MapValue builds a map(string) value.
func MapValue(m map[string]string) cty.Value {
	if len(m) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	vals := make(map[string]cty.Value, len(m))
	for k, v := range m {
		vals[k] = cty.StringVal(v)
	}
	return cty.MapVal(vals)
}

// toCty converts a native Go value into its implied cty.Value.
func toCty(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}
