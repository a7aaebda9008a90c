package options

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// Result holds the typed values of one parsed invocation.
type Result struct {
	Values map[string]cty.Value
	// Seen lists the flag spellings given, in order.
	Seen []string
	// Deprecated lists deprecated flag spellings that were given and ignored.
	Deprecated []string

	err error
}

func newResult() *Result {
	return &Result{Values: make(map[string]cty.Value)}
}

func (r *Result) assign(o *Option, name string, val cty.Value) {
	dest := o.DestOf()
	r.Seen = append(r.Seen, name)
	if prev, ok := r.Values[dest]; ok && o.Append && prev.Type().IsListType() && val.Type().IsListType() {
		r.Values[dest] = ListValue(append(stringsOf(prev), stringsOf(val)...))
		return
	}
	r.Values[dest] = val
}

func (r *Result) noteDeprecated(name string) {
	r.Seen = append(r.Seen, name)
	r.Deprecated = append(r.Deprecated, name)
}

func (r *Result) fail(name, raw string, err error) {
	if r.err == nil {
		r.err = kserrors.Wrap(kserrors.Value, err, "invalid value %q for option --%s", raw, name)
	}
}

// Has reports whether dest received a value.
func (r *Result) Has(dest string) bool {
	_, ok := r.Values[dest]
	return ok
}

// String returns dest as a string, or "" when unset.
func (r *Result) String(dest string) string {
	v, ok := r.Values[dest]
	if !ok || v.IsNull() || !v.Type().Equals(cty.String) {
		return ""
	}
	return v.AsString()
}

// Bool returns dest as a bool, or false when unset.
func (r *Result) Bool(dest string) bool {
	v, ok := r.Values[dest]
	if !ok || v.IsNull() || !v.Type().Equals(cty.Bool) {
		return false
	}
	return v.True()
}

// Int returns dest as an int, or 0 when unset.
func (r *Result) Int(dest string) int {
	v, ok := r.Values[dest]
	if !ok || v.IsNull() || !v.Type().Equals(cty.Number) {
		return 0
	}
	n, _ := v.AsBigFloat().Int64()
	return int(n)
}

// List returns dest as a string slice.
func (r *Result) List(dest string) []string {
	v, ok := r.Values[dest]
	if !ok || v.IsNull() || !v.Type().IsListType() {
		return nil
	}
	return stringsOf(v)
}

func stringsOf(v cty.Value) []string {
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, e := it.Element()
		if e.Type().Equals(cty.String) && !e.IsNull() {
			out = append(out, e.AsString())
		}
	}
	return out
}

// Parse parses the argument tokens of one invocation against the schema as
// it exists in version v. Unknown flags yield a parse error; malformed
// values, missing required options and bad positionals yield value errors.
func (s *Schema) Parse(args []string, v version.Version) (*Result, error) {
	res := newResult()
	fs := pflag.NewFlagSet(s.Command, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)

	for i := range s.Options {
		opt := &s.Options[i]
		if !opt.AvailableAt(v) {
			continue
		}
		deprecated := opt.DeprecatedAt(v)
		for _, name := range opt.Names() {
			f := fs.VarPF(&flagValue{opt: opt, name: name, res: res, deprecated: deprecated}, name, "", opt.Help)
			if opt.Kind == Bool {
				f.NoOptDefVal = "true"
			}
			if deprecated {
				f.Deprecated = "it has no effect"
			}
		}
	}

	if err := fs.Parse(args); err != nil {
		if res.err != nil {
			return nil, res.err
		}
		return nil, s.classify(err, v)
	}

	if err := s.positionals(fs.Args(), res); err != nil {
		return nil, err
	}

	for i := range s.Options {
		opt := &s.Options[i]
		if !opt.Required || !opt.AvailableAt(v) || opt.DeprecatedAt(v) {
			continue
		}
		if !res.Has(opt.DestOf()) {
			return nil, kserrors.New(kserrors.Value, "option --%s is required for the %s command", opt.Name, s.Command)
		}
	}
	return res, nil
}

func (s *Schema) positionals(args []string, res *Result) error {
	for i, a := range s.Args {
		if i < len(args) {
			res.Values[a.Dest] = cty.StringVal(args[i])
			continue
		}
		if a.Required {
			return kserrors.New(kserrors.Value, "the %s command requires a %s argument", s.Command, a.Dest)
		}
	}
	if len(args) <= len(s.Args) {
		return nil
	}
	extra := args[len(s.Args):]
	if s.Rest == "" {
		return kserrors.New(kserrors.Value, "unexpected arguments to the %s command: %s", s.Command, strings.Join(extra, " "))
	}
	res.Values[s.Rest] = ListValue(extra)
	return nil
}

// classify maps a pflag failure onto the kickstart error taxonomy.
func (s *Schema) classify(err error, v version.Version) error {
	msg := err.Error()
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return s.unknownOption("help", v)
	case strings.HasPrefix(msg, "unknown flag: --"):
		name, _, _ := strings.Cut(strings.TrimPrefix(msg, "unknown flag: --"), "=")
		return s.unknownOption(name, v)
	case strings.HasPrefix(msg, "unknown shorthand flag"):
		return kserrors.New(kserrors.Parse, "%s command: %s", s.Command, msg)
	case strings.HasPrefix(msg, "flag needs an argument: "):
		name := strings.TrimLeft(strings.TrimPrefix(msg, "flag needs an argument: "), "-'")
		return kserrors.New(kserrors.Value, "option --%s of the %s command requires an argument", strings.TrimRight(name, "'"), s.Command)
	case strings.HasPrefix(msg, "bad flag syntax"):
		return kserrors.New(kserrors.Parse, "%s command: %s", s.Command, msg)
	default:
		return kserrors.Wrap(kserrors.Value, err, "%s command", s.Command)
	}
}

func (s *Schema) unknownOption(name string, v version.Version) error {
	if opt := s.Find(name); opt != nil && !opt.AvailableAt(v) {
		return kserrors.New(kserrors.Parse, "option --%s of the %s command is not available in %s (it exists in %s)",
			name, s.Command, version.Resolve(v), opt.window())
	}
	msg := fmt.Sprintf("unknown option --%s for the %s command", name, s.Command)
	if hint := Suggest(name, s.Available(v)); hint != "" {
		msg += fmt.Sprintf("; did you mean --%s?", hint)
	}
	return kserrors.New(kserrors.Parse, "%s", msg)
}
