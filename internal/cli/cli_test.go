// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gokickstart/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := Execute(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), err
}

func TestUsageErrors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unknown flag", []string{"versions", "--no-such-flag"}, "unknown flag: --no-such-flag"},
		{"bad log level", []string{"versions", "--log-level", "loud"}, "invalid log-level"},
		{"bad log format", []string{"versions", "--log-format", "xml"}, "invalid log-format"},
		{"bad version", []string{"versions", "-v", "F19"}, "invalid version"},
		{"flatten without file", []string{"flatten"}, "accepts 1 arg(s), received 0"},
		{"validate without paths", []string{"validate"}, "requires at least 1 arg(s)"},
		{"verdiff without versions", []string{"verdiff"}, "both --from and --to are required"},
		{"verdiff bad version", []string{"verdiff", "--from", "F20", "--to", "F99"}, "invalid --to"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
			assert.Equal(t, 2, ExitCode(err))
		})
	}
}

func TestHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "verdiff")
	assert.Contains(t, out, "--mask-all-except")
}

func TestVersionsCommand(t *testing.T) {
	out, _, err := execute(t, "versions")
	require.NoError(t, err)
	assert.Contains(t, out, "RHEL8\n")
	assert.Contains(t, out, "F30 (DEVEL)\n")
}

func TestVerDiffCommand(t *testing.T) {
	out, _, err := execute(t, "verdiff", "-f", "F20", "-t", "F22")
	require.NoError(t, err)
	assert.Contains(t, out, "option removed: bootloader --md5pass\n")
}

func TestValidateCommand(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"ok.ks":  "rootpw x\n",
		"bad.ks": "rootpw\n",
	})

	out, _, err := execute(t, "validate", "-v", "F29", filepath.Join(dir, "ok.ks"))
	require.NoError(t, err)
	assert.Contains(t, out, "OK   ")

	out, _, err = execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Equal(t, "1 file(s) failed validation", err.Error())
	assert.Contains(t, out, "FAIL "+filepath.Join(dir, "bad.ks"))
}

func TestFlattenFlags(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"ks.cfg":  "# hello\nrootpw x\n%include part.ks\n",
		"part.ks": "part / --size=1000\n",
	})
	path := filepath.Join(dir, "ks.cfg")

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", nil, "rootpw x\npart / --size=1000\n"},
		{"comments", []string{"--keep-comments"}, "# hello\nrootpw x\npart / --size=1000\n"},
		{"no includes", []string{"--follow-includes=false"}, "rootpw x\n%include part.ks\n"},
		{"masked", []string{"--mask-all-except", "part,raid"}, "part / --size=1000\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"flatten", path}, tc.args...)
			out, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestSettingsFileAndFlagPrecedence(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"ksparse.hcl": "keep_comments = true\nfollow_includes = false\n",
		"ks.cfg":      "# hello\nrootpw x\n%include part.ks\n",
		"part.ks":     "part / --size=1000\n",
	})
	cfgPath := filepath.Join(dir, "ksparse.hcl")
	path := filepath.Join(dir, "ks.cfg")

	out, _, err := execute(t, "flatten", "-c", cfgPath, path)
	require.NoError(t, err)
	assert.Equal(t, "# hello\nrootpw x\n%include part.ks\n", out)

	out, _, err = execute(t, "flatten", "-c", cfgPath, "--follow-includes", path)
	require.NoError(t, err)
	assert.Equal(t, "# hello\nrootpw x\npart / --size=1000\n", out)
}

func TestDumpCommand(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"ks.cfg": "rootpw x\n"})
	out, _, err := execute(t, "dump", "-v", "RHEL8", filepath.Join(dir, "ks.cfg"))
	require.NoError(t, err)
	assert.Contains(t, out, "version: RHEL8\n")
}

func TestParseErrorsExitWithOne(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"ks.cfg": "%post\necho\n"})
	_, _, err := execute(t, "flatten", "-v", "F29", filepath.Join(dir, "ks.cfg"))
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, err.Error(), "line 1: section %post does not end with %end")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 3, ExitCode(&ExitError{Code: 3}))
}
