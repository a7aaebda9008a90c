package kickstart_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kickstart "github.com/specialistvlad/gokickstart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToVersion(t *testing.T) {
	testCases := []struct {
		in   string
		want kickstart.Version
	}{
		{"F20", kickstart.F20},
		{"f28", kickstart.F28},
		{"Fedora 29", kickstart.F29},
		{"RHEL7", kickstart.RHEL7},
		{"Red Hat Enterprise Linux 8.2", kickstart.RHEL8},
		{"DEVEL", kickstart.DEVEL},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := kickstart.StringToVersion(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}

	_, err := kickstart.StringToVersion("F19")
	require.Error(t, err)
	assert.Equal(t, kickstart.VersionError, kickstart.ErrorKindOf(err))
	assert.Equal(t, "F29", kickstart.VersionToString(kickstart.F29))
	assert.Equal(t, kickstart.F30, kickstart.Latest())
	assert.Len(t, kickstart.Versions(), 13)
}

func TestParseString(t *testing.T) {
	h, err := kickstart.ParseString(context.Background(), kickstart.F29, "part / --size=1000\nrootpw x\n%post\ntrue\n%end\n")
	require.NoError(t, err)
	assert.Equal(t, "rootpw x\npart / --size=1000\n\n%post\ntrue\n%end\n", h.String())
	assert.Equal(t, kickstart.Active, h.Status("rootpw"))
	require.Len(t, h.Scripts(), 1)
	assert.Equal(t, kickstart.PostScript, h.Scripts()[0].Type)
}

func TestParseErrorsAreTyped(t *testing.T) {
	h, err := kickstart.ParseString(context.Background(), kickstart.F29, "rootpw x\nrepo --baseurl=http://example.com\n")
	require.Error(t, err)
	require.NotNil(t, h, "the partly filled handler is returned")

	var kerr *kickstart.Error
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, kickstart.ValueError, kerr.Kind)
	assert.Equal(t, 2, kerr.Line)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ks.cfg"), []byte("%include disk.ks\nrootpw x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "disk.ks"), []byte("zerombr\n"), 0o644))

	h, err := kickstart.ParseFile(context.Background(), kickstart.RHEL8, filepath.Join(dir, "ks.cfg"))
	require.NoError(t, err)
	assert.Equal(t, "rootpw x\nzerombr\n", h.String())

	h, err = kickstart.ParseFile(context.Background(), kickstart.RHEL8, filepath.Join(dir, "ks.cfg"), kickstart.WithFollowIncludes(false))
	require.NoError(t, err)
	assert.Equal(t, "rootpw x\n%include disk.ks\n", h.String())
}

func TestMakeHandlerWithOverrides(t *testing.T) {
	ov, err := kickstart.ResolveOverrides(map[string]string{"bootloader": "F20_Bootloader"}, nil)
	require.NoError(t, err)

	h, err := kickstart.MakeHandler(kickstart.F29, ov)
	require.NoError(t, err)
	require.NoError(t, kickstart.NewParser(h).ReadFromString(context.Background(), "bootloader --md5pass=abc\n"))

	cmd, ok := h.Command("bootloader")
	require.True(t, ok)
	assert.Equal(t, "F20_Bootloader", cmd.Type().Name)

	typ, ok := kickstart.LookupCommandType("F20_Bootloader")
	require.True(t, ok)
	assert.Equal(t, "bootloader", typ.Keyword)

	_, err = kickstart.MakeHandler(kickstart.Version(1))
	require.Error(t, err)
	assert.Equal(t, kickstart.VersionError, kickstart.ErrorKindOf(err))
}

func TestDiff(t *testing.T) {
	changes, err := kickstart.Diff(kickstart.F20, kickstart.F29)
	require.NoError(t, err)
	assert.Contains(t, changes, kickstart.Change{Kind: "command added", Keyword: "authselect"})
}
