// internal/hclconfig/loader_test.go
package hclconfig

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gokickstart/internal/config"
	"github.com/specialistvlad/gokickstart/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, src string, env ...string) (*config.Model, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, map[string]string{"ksparse.hcl": src})
	ctx, _ := testutil.LogContext(t)
	l := &Loader{environ: func() []string { return env }}
	return l.Load(ctx, filepath.Join(dir, "ksparse.hcl"))
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		env  []string
		want *config.Model
	}{
		{
			name: "empty file keeps defaults",
			src:  "",
			want: config.Default(),
		},
		{
			name: "every setting",
			src: `
version               = "F28"
follow_includes       = false
missing_include_fatal = false
keep_comments         = true
mask_all_except       = ["part", "raid"]

override "bootloader" {
  variant = "F21_Bootloader"
}

data_override "PartData" {
  variant = "F23_PartData"
}
`,
			want: &config.Model{
				Version:             "F28",
				FollowIncludes:      false,
				MissingIncludeFatal: false,
				KeepComments:        true,
				MaskAllExcept:       []string{"part", "raid"},
				Overrides:           map[string]string{"bootloader": "F21_Bootloader"},
				DataOverrides:       map[string]string{"PartData": "F23_PartData"},
			},
		},
		{
			name: "environment",
			src:  `version = env.KS_VERSION`,
			env:  []string{"KS_VERSION=RHEL8", "HOME=/root"},
			want: func() *config.Model {
				m := config.Default()
				m.Version = "RHEL8"
				return m
			}(),
		},
		{
			name: "numbers convert to strings",
			src:  `version = 29`,
			want: func() *config.Model {
				m := config.Default()
				m.Version = "29"
				return m
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := load(t, tc.src, tc.env...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		contains string
	}{
		{"syntax", `version = `, "failed to parse HCL file"},
		{"unknown attribute", `flavour = "vanilla"`, "failed to decode HCL file"},
		{"wrong type", `keep_comments = "sometimes"`, `attribute "keep_comments"`},
		{"missing variable", `version = env.NOPE`, `attribute "version"`},
		{"duplicate override", "override \"part\" {\n variant = \"F20_Partition\"\n}\noverride \"part\" {\n variant = \"F23_Partition\"\n}\n", `duplicate override block for "part"`},
		{"empty variant", "override \"part\" {\n variant = \"\"\n}\n", "variant must not be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}
