// internal/sections/sections_test.go
package sections

import (
	"testing"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	assert.True(t, Known("post", version.F20))
	assert.False(t, Known("pre-install", version.F22))
	assert.True(t, Known("pre-install", version.F23))
	assert.True(t, Known("pre-install", version.DEVEL))
	assert.False(t, Known("postt", version.F29))
	assert.NotContains(t, Names(version.F20), "pre-install")
	assert.Equal(t, []string{"addon", "packages", "post", "pre", "pre-install", "traceback"}, Names(version.F29))
}

func TestScriptHeader(t *testing.T) {
	testCases := []struct {
		name   string
		typ    ScriptType
		args   []string
		want   Script
		header string
	}{
		{
			name:   "post defaults",
			typ:    Post,
			want:   Script{Type: Post, Interp: DefaultInterpreter, InChroot: true},
			header: "%post\n",
		},
		{
			name:   "post outside the chroot",
			typ:    Post,
			args:   []string{"--nochroot", "--interpreter", "/usr/bin/python3", "--logfile=/root/post.log"},
			want:   Script{Type: Post, Interp: "/usr/bin/python3", LogFile: "/root/post.log"},
			header: "%post --nochroot --interpreter=/usr/bin/python3 --log=/root/post.log\n",
		},
		{
			name:   "pre fails the install",
			typ:    Pre,
			args:   []string{"--erroronfail"},
			want:   Script{Type: Pre, Interp: DefaultInterpreter, ErrorOnFail: true},
			header: "%pre --erroronfail\n",
		},
		{
			name:   "traceback",
			typ:    Traceback,
			args:   []string{"--log=/tmp/tb.log"},
			want:   Script{Type: Traceback, Interp: DefaultInterpreter, LogFile: "/tmp/tb.log"},
			header: "%traceback --log=/tmp/tb.log\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseScriptHeader(tc.typ, tc.args, version.F29, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *s)
			assert.Equal(t, tc.header+"%end\n", s.String())
		})
	}
}

func TestScriptHeaderErrors(t *testing.T) {
	_, err := ParseScriptHeader(Pre, []string{"--nochroot"}, version.F29, nil)
	require.Error(t, err)
	assert.Equal(t, kserrors.Parse, kserrors.KindOf(err))

	_, err = ParseScriptHeader(Post, []string{"--interpeter=/bin/bash"}, version.F29, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean --interpreter?")
}

func TestScriptBody(t *testing.T) {
	s := NewScript(Post)
	s.AddLine("echo hello > /root/hello")
	s.AddLine("")
	s.AddLine("# keep me")
	assert.Equal(t, "%post\necho hello > /root/hello\n\n# keep me\n%end\n", s.String())

	s.Body = "no newline"
	assert.Equal(t, "%post\nno newline\n%end\n", s.String())
}

func TestScriptTypeOf(t *testing.T) {
	typ, ok := ScriptTypeOf("pre-install")
	require.True(t, ok)
	assert.Equal(t, PreInstall, typ)
	assert.Equal(t, "pre-install", typ.String())

	_, ok = ScriptTypeOf("packages")
	assert.False(t, ok)
}

func TestPackagesLines(t *testing.T) {
	p := &Packages{}
	require.NoError(t, p.ParseHeader(nil, version.F29, 1, nil))
	for _, line := range []string{"-perl", "@core", "vim"} {
		require.NoError(t, p.AddLine(line, version.F29))
	}

	assert.Equal(t, []string{"perl"}, p.Excluded)
	assert.Equal(t, []string{"core"}, p.GroupNames())
	assert.Equal(t, []string{"vim"}, p.Packages)
	assert.Equal(t, "%packages\n@core\nvim\n-perl\n%end\n", p.String())
}

func TestPackagesRouting(t *testing.T) {
	testCases := []struct {
		name           string
		lines          []string
		packages       []string
		excluded       []string
		groups         []Group
		excludedGroups []string
		environment    string
	}{
		{
			name:        "environment",
			lines:       []string{"@^workstation-product-environment"},
			environment: "workstation-product-environment",
		},
		{
			name:   "group options",
			lines:  []string{"@core --nodefaults", "@development-tools --optional", "@Development Tools"},
			groups: []Group{{Name: "core", Include: GroupRequired}, {Name: "development-tools", Include: GroupAll}, {Name: "Development Tools"}},
		},
		{
			name:     "later include cancels exclude",
			lines:    []string{"-vim", "vim"},
			packages: []string{"vim"},
		},
		{
			name:     "later exclude cancels include",
			lines:    []string{"vim", "emacs", "-vim"},
			packages: []string{"emacs"},
			excluded: []string{"vim"},
		},
		{
			name:           "excluded group",
			lines:          []string{"@games", "-@games"},
			excludedGroups: []string{"games"},
		},
		{
			name:     "duplicates collapse",
			lines:    []string{"vim", "  vim  ", "# vim", ""},
			packages: []string{"vim"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Packages{}
			for _, line := range tc.lines {
				require.NoError(t, p.AddLine(line, version.F29))
			}
			assert.ElementsMatch(t, tc.packages, p.Packages)
			assert.ElementsMatch(t, tc.excluded, p.Excluded)
			assert.ElementsMatch(t, tc.groups, p.Groups)
			assert.ElementsMatch(t, tc.excludedGroups, p.ExcludedGroups)
			assert.Equal(t, tc.environment, p.Environment)
		})
	}
}

func TestPackagesBadGroupOption(t *testing.T) {
	p := &Packages{}
	err := p.AddLine("@core --nodefault", version.F29)
	require.Error(t, err)
	assert.Equal(t, kserrors.Parse, kserrors.KindOf(err))
}

func TestPackagesHeader(t *testing.T) {
	var warnings []string
	warn := func(kind kserrors.WarningKind, format string, args ...any) {
		warnings = append(warnings, kserrors.NewWarning(kind, format, args...).Msg)
	}

	p := &Packages{}
	args := []string{"--excludedocs", "--nobase", "--instLangs=", "--retries=3", "--excludeWeakdeps", "--nocore"}
	require.NoError(t, p.ParseHeader(args, version.F29, 7, warn))
	assert.True(t, p.Seen)
	assert.Equal(t, 7, p.Line)
	assert.False(t, p.NoBase, "nobase is ignored from F26")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "--nobase")
	require.NotNil(t, p.InstLangs)
	assert.Equal(t, "", *p.InstLangs)
	assert.Equal(t, `%packages --excludedocs --nocore --instLangs="" --excludeWeakdeps --retries=3`+"\n%end\n", p.String())

	old := &Packages{}
	require.NoError(t, old.ParseHeader([]string{"--nobase"}, version.F20, 1, nil))
	assert.True(t, old.NoBase)

	err := (&Packages{}).ParseHeader([]string{"--retries=3"}, version.F21, 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available in F21")
}

func TestPackagesEmpty(t *testing.T) {
	p := &Packages{}
	assert.True(t, p.Empty())
	assert.Equal(t, "", p.String())
}

func TestAddon(t *testing.T) {
	a, err := NewAddon([]string{"com_redhat_kdump", "--enable", "--reserve-mb=auto"}, 3)
	require.NoError(t, err)
	a.AddLine("")
	assert.Equal(t, "%addon com_redhat_kdump --enable --reserve-mb=auto\n\n%end\n", a.String())

	_, err = NewAddon(nil, 1)
	require.Error(t, err)
}

func TestSchemasMatchRecords(t *testing.T) {
	for typ, s := range scriptSchemas {
		assert.NoError(t, options.Validate(s, NewScript(typ)), typ.String())
	}
	assert.NoError(t, options.Validate(packagesSchema, &Packages{}))
}
