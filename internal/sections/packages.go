package sections

import (
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// GroupInclude selects which packages of a group are installed.
type GroupInclude int

const (
	// GroupDefault installs the mandatory and default packages.
	GroupDefault GroupInclude = iota
	// GroupRequired installs the mandatory packages only (--nodefaults).
	GroupRequired
	// GroupAll also installs the optional packages (--optional).
	GroupAll
)

// Group is one @group line.
type Group struct {
	Name    string
	Include GroupInclude
}

func (g Group) String() string {
	l := options.NewLine("@"+g.Name).
		Flag("nodefaults", g.Include == GroupRequired).
		Flag("optional", g.Include == GroupAll)
	return l.String()
}

// Packages is the merged content of every %packages section.
type Packages struct {
	Seen           bool
	Environment    string
	Groups         []Group
	ExcludedGroups []string
	Packages       []string
	Excluded       []string

	Default         bool    `ks:"default"`
	ExcludeDocs     bool    `ks:"excludedocs"`
	IgnoreMissing   bool    `ks:"ignoremissing"`
	NoBase          bool    `ks:"nobase"`
	NoCore          bool    `ks:"nocore"`
	Multilib        bool    `ks:"multilib"`
	InstLangs       *string `ks:"instlangs"`
	ExcludeWeakdeps bool    `ks:"exclude-weakdeps"`
	Retries         *int    `ks:"retries"`
	Timeout         *int    `ks:"timeout"`

	Line int
}

var packagesSchema = &options.Schema{
	Command: "%packages",
	Options: []options.Option{
		{Name: "default", Kind: options.Bool},
		{Name: "excludedocs", Kind: options.Bool},
		{Name: "ignoremissing", Kind: options.Bool},
		{Name: "nobase", Kind: options.Bool, Deprecated: version.F26},
		{Name: "nocore", Kind: options.Bool, Introduced: version.F21},
		{Name: "multilib", Kind: options.Bool},
		{Name: "instLangs", Aliases: []string{"inst-langs"}, Dest: "instlangs", Kind: options.String},
		{Name: "excludeWeakdeps", Aliases: []string{"exclude-weakdeps"}, Dest: "exclude-weakdeps", Kind: options.Bool, Introduced: version.F24},
		{Name: "retries", Kind: options.Int, Introduced: version.F22},
		{Name: "timeout", Kind: options.Int, Introduced: version.F22},
		{Name: "resolvedeps", Kind: options.Bool, Deprecated: version.F20},
		{Name: "ignoredeps", Kind: options.Bool, Deprecated: version.F20},
	},
}

var groupSchema = &options.Schema{
	Command: "@group",
	Options: []options.Option{
		{Name: "nodefaults", Dest: "include", Kind: options.Bool, Const: "required"},
		{Name: "optional", Dest: "include", Kind: options.Bool, Const: "all"},
	},
}

// ParseHeader applies the options of a %packages header line. A second
// %packages section merges into the first.
func (p *Packages) ParseHeader(args []string, v version.Version, line int, warn Warner) error {
	res, err := packagesSchema.Parse(args, v)
	if err != nil {
		return err
	}
	warnDeprecated(warn, "packages", res.Deprecated)
	if err := options.Decode(res, p); err != nil {
		return err
	}
	p.Seen = true
	p.Line = line
	return nil
}

// AddLine routes one line of the section body. Blank lines and comments are
// dropped. "@^name" selects the environment, "@name" adds a group, and a
// leading "-" excludes a package or group. A later line for the same name
// cancels an earlier opposite one.
func (p *Packages) AddLine(raw string, v version.Version) error {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	switch {
	case strings.HasPrefix(text, "@^"):
		p.Environment = strings.TrimSpace(strings.TrimPrefix(text, "@^"))
	case strings.HasPrefix(text, "-@"):
		name := strings.TrimSpace(strings.TrimPrefix(text, "-@"))
		p.Groups = removeGroup(p.Groups, name)
		p.ExcludedGroups = addUnique(p.ExcludedGroups, name)
	case strings.HasPrefix(text, "@"):
		g, err := parseGroup(strings.TrimPrefix(text, "@"), v)
		if err != nil {
			return err
		}
		p.ExcludedGroups = remove(p.ExcludedGroups, g.Name)
		p.Groups = append(removeGroup(p.Groups, g.Name), g)
	case strings.HasPrefix(text, "-"):
		name := strings.TrimSpace(strings.TrimPrefix(text, "-"))
		p.Packages = remove(p.Packages, name)
		p.Excluded = addUnique(p.Excluded, name)
	default:
		p.Excluded = remove(p.Excluded, text)
		p.Packages = addUnique(p.Packages, text)
	}
	return nil
}

func parseGroup(text string, v version.Version) (Group, error) {
	// Group names may contain spaces; options start at the first " --".
	name, rest, _ := strings.Cut(text, " --")
	name = strings.TrimSpace(name)
	if name == "" {
		return Group{}, kserrors.New(kserrors.Parse, "group name missing after @")
	}
	var args []string
	if rest != "" {
		args = strings.Fields("--" + rest)
	}
	res, err := groupSchema.Parse(args, v)
	if err != nil {
		return Group{}, err
	}
	g := Group{Name: name}
	switch res.String("include") {
	case "required":
		g.Include = GroupRequired
	case "all":
		g.Include = GroupAll
	}
	return g, nil
}

// GroupNames returns the names of the selected groups in order.
func (p *Packages) GroupNames() []string {
	out := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		out[i] = g.Name
	}
	return out
}

// Empty reports whether there is nothing to write.
func (p *Packages) Empty() bool {
	return !p.Seen
}

// String writes the whole section: header, environment, groups, packages,
// then the exclusions.
func (p *Packages) String() string {
	if !p.Seen {
		return ""
	}
	l := options.NewLine("%packages").
		Flag("default", p.Default).
		Flag("excludedocs", p.ExcludeDocs).
		Flag("ignoremissing", p.IgnoreMissing).
		Flag("nobase", p.NoBase).
		Flag("nocore", p.NoCore).
		Flag("multilib", p.Multilib)
	if p.InstLangs != nil {
		l.Raw("--instLangs=" + options.Quote(*p.InstLangs))
	}
	l.Flag("excludeWeakdeps", p.ExcludeWeakdeps).
		Int("retries", p.Retries).
		Int("timeout", p.Timeout)

	var b strings.Builder
	b.WriteString(l.String())
	if p.Environment != "" {
		b.WriteString("@^" + p.Environment + "\n")
	}
	for _, g := range p.Groups {
		b.WriteString(g.String())
	}
	for _, name := range p.Packages {
		b.WriteString(name + "\n")
	}
	for _, name := range p.ExcludedGroups {
		b.WriteString("-@" + name + "\n")
	}
	for _, name := range p.Excluded {
		b.WriteString("-" + name + "\n")
	}
	b.WriteString(End + "\n")
	return b.String()
}

func addUnique(list []string, name string) []string {
	for _, s := range list {
		if s == name {
			return list
		}
	}
	return append(list, name)
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, s := range list {
		if s != name {
			out = append(out, s)
		}
	}
	return out
}

func removeGroup(groups []Group, name string) []Group {
	out := groups[:0]
	for _, g := range groups {
		if g.Name != name {
			out = append(out, g)
		}
	}
	return out
}
