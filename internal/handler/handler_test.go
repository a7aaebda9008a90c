// internal/handler/handler_test.go
package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/registry"
	"github.com/specialistvlad/gokickstart/internal/sections"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// dispatch feeds each line, numbered from 1, to h.
func dispatch(t *testing.T, h *Handler, lines ...string) error {
	t.Helper()
	for i, line := range lines {
		fields := strings.Fields(line)
		err := h.Dispatch(testContext(), &commands.Invocation{Keyword: fields[0], Args: fields[1:], Line: i + 1})
		if err != nil {
			return err
		}
	}
	return nil
}

func TestMaskAllExcept(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	h.MaskAllExcept("vnc")

	require.NoError(t, dispatch(t, h, "vnc --password=x", "rootpw foo"))
	assert.Equal(t, "vnc --password=x\n", h.String())
	assert.Equal(t, Active, h.Status("vnc"))
	assert.Equal(t, Masked, h.Status("rootpw"))

	cmd, ok := h.Command("rootpw")
	require.True(t, ok)
	assert.Empty(t, cmd.String(), "masked commands never parse")
}

func TestMaskCoversAliases(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	h.Mask("part")
	assert.Equal(t, Masked, h.Status("partition"))

	require.NoError(t, dispatch(t, h, "partition / --size=1000"))
	assert.Empty(t, h.Data("PartData"))

	h.Unmask("partition")
	assert.Equal(t, Active, h.Status("part"))
	require.NoError(t, dispatch(t, h, "part / --size=1000"))
	assert.Len(t, h.Data("PartData"), 1)
}

func TestStatus(t *testing.T) {
	testCases := []struct {
		name    string
		v       version.Version
		keyword string
		want    Status
	}{
		{"known", version.F29, "rootpw", Active},
		{"alias", version.F29, "poweroff", Active},
		{"introduced later", version.F20, "authselect", Absent},
		{"unknown", version.F29, "frobnicate", Absent},
		{"deprecated still consumes", version.F29, "upgrade", Active},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(registry.MustFor(tc.v))
			assert.Equal(t, tc.want, h.Status(tc.keyword))
		})
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	err := dispatch(t, h, "bootloadr --location=mbr")
	require.Error(t, err)
	assert.Equal(t, kserrors.Parse, kserrors.KindOf(err))
	assert.Equal(t, "line 1: unknown command: bootloadr; did you mean bootloader?", err.Error())
}

func TestDispatchLocatesErrors(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	err := h.Dispatch(testContext(), &commands.Invocation{Keyword: "repo", Args: []string{"--baseurl=a"}, File: "repos.ks", Line: 4})
	require.Error(t, err)
	assert.Equal(t, kserrors.Value, kserrors.KindOf(err))
	assert.Equal(t, "repos.ks line 4: option --name is required for the repo command", err.Error())
}

func TestDeprecatedCommandWarns(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	require.NoError(t, dispatch(t, h, "upgrade"))
	assert.Empty(t, h.String())
	require.Len(t, h.Warnings(), 1)
	assert.Equal(t, kserrors.Deprecation, h.Warnings()[0].Kind)
	assert.Equal(t, 1, h.Warnings()[0].Line)
}

func TestDontCareMode(t *testing.T) {
	h := New(nil)
	require.NoError(t, dispatch(t, h, "frobnicate --now", "rootpw foo"))
	assert.Equal(t, Absent, h.Status("rootpw"))
	assert.Equal(t, version.DEVEL, h.Version())
	assert.Empty(t, h.String())
}

func TestOrderingByPriority(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	require.NoError(t, dispatch(t, h,
		"part / --size=1000",
		"timezone Europe/Prague",
		"zerombr",
		"lang en_US.UTF-8",
		"keyboard --vckeymap=us",
	))

	var keywords []string
	for _, line := range strings.Split(strings.TrimSpace(h.String()), "\n") {
		keywords = append(keywords, strings.Fields(line)[0])
	}
	assert.Equal(t, []string{"keyboard", "lang", "timezone", "zerombr", "part"}, keywords)
}

func TestDataLists(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	require.NoError(t, dispatch(t, h, "user --name=alice", "user --name=bob"))

	l := h.DataList("UserData")
	require.NotNil(t, l)
	assert.Equal(t, "F20_UserData", l.Type.Name)
	require.Len(t, h.Data("UserData"), 2)
	assert.Equal(t, 2, h.Data("UserData")[1].Line())
	assert.Nil(t, h.DataList("NoSuchData"))
	assert.Nil(t, h.Data("NoSuchData"))
}

func TestSetFields(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	require.NoError(t, h.SetFields("rootpw", map[string]any{"password": "secret", "lock": true}))
	assert.Equal(t, "rootpw --lock secret\n", h.String())

	assert.Error(t, h.SetFields("frobnicate", nil))
}

func TestStringLayout(t *testing.T) {
	h := New(registry.MustFor(version.F29))
	h.AddComment("# generated")
	require.NoError(t, dispatch(t, h, "rootpw foo"))
	h.AddInclude("/tmp/part-include")

	pkgs := h.Packages()
	require.NoError(t, pkgs.ParseHeader(nil, version.F29, 3, nil))
	require.NoError(t, pkgs.AddLine("vim", version.F29))

	post := sections.NewScript(sections.Post)
	post.AddLine("echo done")
	h.AddScript(post)

	addon, err := sections.NewAddon([]string{"com_redhat_kdump", "--disable"}, 9)
	require.NoError(t, err)
	h.AddAddon(addon)

	want := "# generated\n" +
		"rootpw foo\n" +
		"%include /tmp/part-include\n" +
		"\n%packages\nvim\n%end\n" +
		"\n%post\necho done\n%end\n" +
		"\n%addon com_redhat_kdump --disable\n%end\n"
	assert.Equal(t, want, h.String())
	assert.Len(t, h.Scripts(), 1)
	assert.Len(t, h.Addons(), 1)
	assert.Equal(t, []string{"/tmp/part-include"}, h.Includes())
	assert.Equal(t, []string{"# generated"}, h.Comments())
}

func TestOverriddenVariant(t *testing.T) {
	typ, ok := commands.Lookup("F20_Bootloader")
	require.True(t, ok)
	reg := registry.MustFor(version.F29, registry.Overrides{Commands: map[string]commands.Type{"bootloader": typ}})
	h := New(reg)

	require.NoError(t, dispatch(t, h, "bootloader --upgrade"))
	cmd, ok := h.Command("bootloader")
	require.True(t, ok)
	assert.Equal(t, "F20_Bootloader", cmd.Type().Name)
}
