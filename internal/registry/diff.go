package registry

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// ChangeKind classifies one difference between two versions.
type ChangeKind string

const (
	CommandAdded      ChangeKind = "command added"
	CommandRemoved    ChangeKind = "command removed"
	CommandDeprecated ChangeKind = "command deprecated"
	OptionAdded       ChangeKind = "option added"
	OptionRemoved     ChangeKind = "option removed"
	OptionDeprecated  ChangeKind = "option deprecated"
)

// Change is one difference in the accepted syntax of two versions.
type Change struct {
	Kind    ChangeKind `yaml:"kind"`
	Keyword string     `yaml:"keyword"`
	Option  string     `yaml:"option,omitempty"`
}

func (c Change) String() string {
	if c.Option != "" {
		return fmt.Sprintf("%s: %s --%s", c.Kind, c.Keyword, c.Option)
	}
	return fmt.Sprintf("%s: %s", c.Kind, c.Keyword)
}

// Diff lists what changes in the accepted syntax going from version a to
// version b, sorted by keyword.
func Diff(a, b version.Version) ([]Change, error) {
	ra, err := For(a)
	if err != nil {
		return nil, err
	}
	rb, err := For(b)
	if err != nil {
		return nil, err
	}

	var out []Change
	for _, keyword := range ra.Keywords() {
		if _, ok := rb.commands[keyword]; !ok {
			out = append(out, Change{Kind: CommandRemoved, Keyword: keyword})
		}
	}
	for _, keyword := range rb.Keywords() {
		tb := rb.commands[keyword]
		ta, ok := ra.commands[keyword]
		if !ok {
			out = append(out, Change{Kind: CommandAdded, Keyword: keyword})
			continue
		}
		if tb.Deprecated {
			if !ta.Deprecated {
				out = append(out, Change{Kind: CommandDeprecated, Keyword: keyword})
			}
			continue
		}
		out = append(out, diffOptions(keyword, ta, version.Resolve(a), tb, version.Resolve(b))...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Keyword != out[j].Keyword {
			return out[i].Keyword < out[j].Keyword
		}
		return out[i].Option < out[j].Option
	})
	return out, nil
}

func diffOptions(keyword string, ta commands.Type, va version.Version, tb commands.Type, vb version.Version) []Change {
	activeA, deprecatedA := optionStates(ta.Schema(keyword), va)
	activeB, deprecatedB := optionStates(tb.Schema(keyword), vb)

	var out []Change
	for _, name := range sortedKeys(activeA) {
		switch {
		case deprecatedB[name]:
			out = append(out, Change{Kind: OptionDeprecated, Keyword: keyword, Option: name})
		case !activeB[name]:
			out = append(out, Change{Kind: OptionRemoved, Keyword: keyword, Option: name})
		}
	}
	for _, name := range sortedKeys(activeB) {
		if !activeA[name] && !deprecatedA[name] {
			out = append(out, Change{Kind: OptionAdded, Keyword: keyword, Option: name})
		}
	}
	return out
}

// optionStates splits a schema's primary option names into those that
// store values in v and those accepted but ignored.
func optionStates(s *options.Schema, v version.Version) (active, deprecated map[string]bool) {
	active, deprecated = map[string]bool{}, map[string]bool{}
	if s == nil {
		return active, deprecated
	}
	for i := range s.Options {
		opt := &s.Options[i]
		switch {
		case !opt.AvailableAt(v):
		case opt.DeprecatedAt(v):
			deprecated[opt.Name] = true
		default:
			active[opt.Name] = true
		}
	}
	return active, deprecated
}
