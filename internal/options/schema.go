// Package options is the option schema engine shared by every kickstart
// command and section header.
//
// A Schema declares the flags a command accepts: their kind, the struct
// field they bind to, whether they are required or deprecated, and the
// version window in which they exist. Parse turns the argument tokens of one
// command line into a Result of typed cty values; Decode binds a Result into
// a struct whose fields carry `ks:"dest"` tags.
package options

import (
	"fmt"

	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// Kind is the value shape of an option.
type Kind int

const (
	// Bool is a switch. It accepts "--flag" and "--flag=yes|no".
	Bool Kind = iota
	// String takes one value, optionally restricted by Choices.
	String
	// Int takes one integral value.
	Int
	// List takes a comma separated value.
	List
	// Map takes comma separated key=value pairs.
	Map
	// Custom converts its value with Option.Convert into Option.Type.
	Custom
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case String:
		return "string"
	case Int:
		return "int"
	case List:
		return "list"
	case Map:
		return "map"
	default:
		return "custom"
	}
}

// Option declares one flag.
type Option struct {
	// Name is the long flag name without leading dashes.
	Name string
	// Aliases are alternative spellings that bind to the same Dest.
	Aliases []string
	// Dest is the result key and struct tag; defaults to Name.
	Dest string
	Kind Kind
	// Choices restricts a String option to a fixed enumeration.
	Choices []string
	// Const is stored instead of true when a Bool switch is given.
	Const any
	// Required options must appear on every invocation.
	Required bool
	// Append makes repeated List flags accumulate instead of overwrite.
	Append bool

	// Introduced is the first version accepting the flag (0: always).
	Introduced version.Version
	// Removed is the first version rejecting the flag (0: never).
	Removed version.Version
	// Deprecated is the first version that ignores the flag with a warning.
	Deprecated version.Version

	// Type and Convert describe Custom options.
	Type    cty.Type
	Convert func(string) (cty.Value, error)

	Help string
}

// Arg declares one positional argument.
type Arg struct {
	Dest     string
	Required bool
}

// Schema is the full argument declaration of a command or section header.
type Schema struct {
	Command string
	Options []Option
	Args    []Arg
	// Rest collects positionals beyond Args as a list. When empty, extra
	// positionals are a value error.
	Rest string
}

// DestOf returns the result key of o.
func (o *Option) DestOf() string {
	if o.Dest != "" {
		return o.Dest
	}
	return o.Name
}

// Names returns the primary name followed by the aliases.
func (o *Option) Names() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// AvailableAt reports whether the flag exists in version v.
func (o *Option) AvailableAt(v version.Version) bool {
	v = version.Resolve(v)
	if o.Introduced != 0 && v < o.Introduced {
		return false
	}
	if o.Removed != 0 && v >= o.Removed {
		return false
	}
	return true
}

// DeprecatedAt reports whether the flag is accepted but ignored in v.
func (o *Option) DeprecatedAt(v version.Version) bool {
	return o.Deprecated != 0 && version.Resolve(v) >= o.Deprecated
}

// alwaysDeprecated reports whether the flag never stores a value in any
// supported version.
func (o *Option) alwaysDeprecated() bool {
	return o.Deprecated != 0 && o.Deprecated <= version.All()[0]
}

// CtyType is the type of the values the option produces.
func (o *Option) CtyType() cty.Type {
	switch o.Kind {
	case Bool:
		if o.Const != nil {
			if v, err := toCty(o.Const); err == nil {
				return v.Type()
			}
		}
		return cty.Bool
	case Int:
		return cty.Number
	case List:
		return cty.List(cty.String)
	case Map:
		return cty.Map(cty.String)
	case Custom:
		return o.Type
	default:
		return cty.String
	}
}

func (o *Option) window() string {
	switch {
	case o.Introduced != 0 && o.Removed != 0:
		return fmt.Sprintf("%s to %s", o.Introduced, o.Removed)
	case o.Introduced != 0:
		return fmt.Sprintf("%s and later", o.Introduced)
	case o.Removed != 0:
		return fmt.Sprintf("versions before %s", o.Removed)
	default:
		return "all versions"
	}
}

// Find returns the option declared under name or one of its aliases.
func (s *Schema) Find(name string) *Option {
	for i := range s.Options {
		for _, n := range s.Options[i].Names() {
			if n == name {
				return &s.Options[i]
			}
		}
	}
	return nil
}

// Available returns the option names (aliases included) accepted in v,
// deprecated ones included.
func (s *Schema) Available(v version.Version) []string {
	var out []string
	for i := range s.Options {
		if s.Options[i].AvailableAt(v) {
			out = append(out, s.Options[i].Names()...)
		}
	}
	return out
}
