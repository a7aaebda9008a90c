package registry

import (
	"sort"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Overrides replace stock entries of a version's tables. Commands is keyed
// by keyword, Data by data kind.
type Overrides struct {
	Commands map[string]commands.Type
	Data     map[string]commands.DataType
}

// Registry holds the keyword and data kind mappings of one version for a
// single parse session.
type Registry struct {
	version  version.Version
	commands map[string]commands.Type
	data     map[string]commands.DataType
}

// For builds the registry of v with the overrides merged in. Later
// overrides win over earlier ones.
func For(v version.Version, overrides ...Overrides) (*Registry, error) {
	resolved := version.Resolve(v)
	table, ok := commandTables[resolved]
	if !ok {
		return nil, kserrors.New(kserrors.Version, "unsupported version specified: %s", v)
	}

	r := &Registry{
		version:  v,
		commands: make(map[string]commands.Type, len(table)),
		data:     make(map[string]commands.DataType, len(dataTables[resolved])),
	}
	for keyword, name := range table {
		t, ok := commands.Lookup(name)
		if !ok {
			return nil, kserrors.New(kserrors.Generic, "%s table maps %s to unknown command %s", resolved, keyword, name)
		}
		r.commands[keyword] = t
	}
	for kind, name := range dataTables[resolved] {
		t, ok := commands.LookupData(name)
		if !ok {
			return nil, kserrors.New(kserrors.Generic, "%s table maps %s to unknown data type %s", resolved, kind, name)
		}
		r.data[kind] = t
	}

	for _, ov := range overrides {
		for keyword, t := range ov.Commands {
			r.commands[keyword] = t
		}
		for kind, t := range ov.Data {
			r.data[kind] = t
		}
	}
	return r, nil
}

// MustFor is For for versions known to be valid.
func MustFor(v version.Version, overrides ...Overrides) *Registry {
	r, err := For(v, overrides...)
	if err != nil {
		panic(err)
	}
	return r
}

// Version returns the version the registry was built for, DEVEL unresolved.
func (r *Registry) Version() version.Version {
	return r.version
}

// LookupCommand returns the command variant keyword maps to.
func (r *Registry) LookupCommand(keyword string) (commands.Type, bool) {
	t, ok := r.commands[keyword]
	return t, ok
}

// LookupData returns the data variant of kind.
func (r *Registry) LookupData(kind string) (commands.DataType, bool) {
	t, ok := r.data[kind]
	return t, ok
}

// Keywords returns every recognized keyword, aliases included, sorted.
func (r *Registry) Keywords() []string {
	return sortedKeys(r.commands)
}

// DataKinds returns every data kind, sorted.
func (r *Registry) DataKinds() []string {
	return sortedKeys(r.data)
}

// Canonical returns the keyword a command reached through keyword is
// written under, or "" when keyword is unknown.
func (r *Registry) Canonical(keyword string) string {
	t, ok := r.commands[keyword]
	if !ok {
		return ""
	}
	return t.Keyword
}

// Aliases returns the other keywords that reach the same variant as
// canonical, sorted.
func (r *Registry) Aliases(canonical string) []string {
	t, ok := r.commands[canonical]
	if !ok {
		return nil
	}
	var out []string
	for keyword, other := range r.commands {
		if keyword != canonical && other.Name == t.Name {
			out = append(out, keyword)
		}
	}
	sort.Strings(out)
	return out
}

// Types returns each distinct command variant once, ordered by the
// canonical keyword. A handler instantiates one command per entry.
func (r *Registry) Types() []commands.Type {
	seen := make(map[string]bool)
	var out []commands.Type
	for _, keyword := range r.Keywords() {
		t := r.commands[keyword]
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Keyword < out[j].Keyword })
	return out
}

// Suggest returns the known keyword closest to an unknown one, or "".
func (r *Registry) Suggest(keyword string) string {
	return options.Suggest(keyword, r.Keywords())
}

// Catalog returns every command variant known to the library, sorted by
// name, whichever version tables use it.
func Catalog() []commands.Type {
	return commands.Types()
}

// ResolveOverrides turns variant names, as written in configuration, into
// Overrides. Commands maps keyword to command variant name, data maps kind
// to data variant name.
func ResolveOverrides(cmds, data map[string]string) (Overrides, error) {
	ov := Overrides{
		Commands: make(map[string]commands.Type, len(cmds)),
		Data:     make(map[string]commands.DataType, len(data)),
	}
	for keyword, name := range cmds {
		t, ok := commands.Lookup(name)
		if !ok {
			return Overrides{}, unknownVariant("command", name, typeNames())
		}
		ov.Commands[keyword] = t
	}
	for kind, name := range data {
		t, ok := commands.LookupData(name)
		if !ok {
			return Overrides{}, unknownVariant("data", name, dataTypeNames())
		}
		if t.Kind != kind {
			return Overrides{}, kserrors.New(kserrors.Generic, "data variant %s produces %s, not %s", name, t.Kind, kind)
		}
		ov.Data[kind] = t
	}
	return ov, nil
}

func unknownVariant(what, name string, known []string) error {
	if hint := options.Suggest(name, known); hint != "" {
		return kserrors.New(kserrors.Generic, "unknown %s variant %s; did you mean %s?", what, name, hint)
	}
	return kserrors.New(kserrors.Generic, "unknown %s variant %s", what, name)
}

func typeNames() []string {
	var out []string
	for _, t := range commands.Types() {
		out = append(out, t.Name)
	}
	return out
}

func dataTypeNames() []string {
	var out []string
	for _, t := range commands.DataTypes() {
		out = append(out, t.Name)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
