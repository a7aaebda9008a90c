// internal/options/options_test.go
package options

import (
	"errors"
	"testing"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testSchema() *Schema {
	return &Schema{
		Command: "demo",
		Options: []Option{
			{Name: "name", Kind: String, Required: true},
			{Name: "size", Kind: Int},
			{Name: "grow", Kind: Bool},
			{Name: "mode", Kind: String, Choices: []string{"fast", "slow"}},
			{Name: "disks", Aliases: []string{"drives"}, Kind: List},
			{Name: "extra", Kind: List, Append: true},
			{Name: "opts", Kind: Map},
			{Name: "enforcing", Dest: "state", Kind: Bool, Const: "enforcing"},
			{Name: "permissive", Dest: "state", Kind: Bool, Const: "permissive"},
			{Name: "legacy", Kind: String, Deprecated: version.F25},
			{Name: "modern", Kind: Bool, Introduced: version.F23},
			{Name: "ancient", Kind: Bool, Removed: version.F22},
			{Name: "level", Kind: Custom, Type: cty.String, Convert: func(s string) (cty.Value, error) {
				if s != "raid0" && s != "raid1" {
					return cty.NilVal, errors.New("unsupported level")
				}
				return cty.StringVal(s), nil
			}},
		},
		Args: []Arg{{Dest: "target"}},
	}
}

type demoData struct {
	Name   string            `ks:"name"`
	Size   *int              `ks:"size"`
	Grow   bool              `ks:"grow"`
	Mode   string            `ks:"mode"`
	Disks  []string          `ks:"disks"`
	Extra  []string          `ks:"extra"`
	Opts   map[string]string `ks:"opts"`
	State  string            `ks:"state"`
	Legacy string            `ks:"legacy"`
	Modern bool              `ks:"modern"`
	Old    bool              `ks:"ancient"`
	Level  string            `ks:"level"`
	Target string            `ks:"target"`
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		version   version.Version
		expectErr kserrors.Kind
		contains  string
		check     func(t *testing.T, res *Result)
	}{
		{
			name:    "scalar kinds",
			args:    []string{"--name=root", "--size", "500", "--grow", "--mode=fast", "/dev/sda"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, "root", res.String("name"))
				assert.True(t, res.Values["size"].Equals(cty.NumberIntVal(500)).True())
				assert.True(t, res.Bool("grow"))
				assert.Equal(t, "fast", res.String("mode"))
				assert.Equal(t, "/dev/sda", res.String("target"))
			},
		},
		{
			name:    "explicit false switch",
			args:    []string{"--name=x", "--grow=no"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				assert.True(t, res.Has("grow"))
				assert.False(t, res.Bool("grow"))
			},
		},
		{
			name:    "alias binds to the same dest",
			args:    []string{"--name=x", "--drives=sda,sdb"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, []string{"sda", "sdb"}, res.List("disks"))
				assert.Equal(t, []string{"name", "drives"}, res.Seen)
			},
		},
		{
			name:    "append accumulates, plain list overwrites",
			args:    []string{"--name=x", "--extra=a", "--extra=b,c", "--disks=sda", "--disks=sdb"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, []string{"a", "b", "c"}, res.List("extra"))
				assert.Equal(t, []string{"sdb"}, res.List("disks"))
			},
		},
		{
			name:    "map pairs",
			args:    []string{"--name=x", "--opts=mode=802.3ad;miimon=100,200"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				m := res.Values["opts"].AsValueMap()
				assert.Equal(t, "802.3ad", m["mode"].AsString())
				assert.Equal(t, "100,200", m["miimon"].AsString())
			},
		},
		{
			name:    "const switches share a dest and last wins",
			args:    []string{"--name=x", "--enforcing", "--permissive"},
			version: version.F30,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, "permissive", res.String("state"))
			},
		},
		{
			name:    "deprecated flag is accepted and discarded",
			args:    []string{"--name=x", "--legacy=value"},
			version: version.F28,
			check: func(t *testing.T, res *Result) {
				assert.False(t, res.Has("legacy"))
				assert.Equal(t, []string{"legacy"}, res.Deprecated)
			},
		},
		{
			name:    "flag stored before its deprecation",
			args:    []string{"--name=x", "--legacy=value"},
			version: version.F24,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, "value", res.String("legacy"))
				assert.Empty(t, res.Deprecated)
			},
		},
		{
			name:    "devel resolves to the latest version window",
			args:    []string{"--name=x", "--modern"},
			version: version.DEVEL,
			check: func(t *testing.T, res *Result) {
				assert.True(t, res.Bool("modern"))
			},
		},
		{
			name:      "missing required option",
			args:      []string{"--size=1"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "option --name is required for the demo command",
		},
		{
			name:      "unknown option with suggestion",
			args:      []string{"--name=x", "--sise=1"},
			version:   version.F30,
			expectErr: kserrors.Parse,
			contains:  "did you mean --size?",
		},
		{
			name:      "option introduced later",
			args:      []string{"--name=x", "--modern"},
			version:   version.F22,
			expectErr: kserrors.Parse,
			contains:  "not available in F22 (it exists in F23 and later)",
		},
		{
			name:      "option removed earlier",
			args:      []string{"--name=x", "--ancient"},
			version:   version.F22,
			expectErr: kserrors.Parse,
			contains:  "it exists in versions before F22",
		},
		{
			name:      "bad choice",
			args:      []string{"--name=x", "--mode=medium"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  `invalid value "medium" for option --mode`,
		},
		{
			name:      "bad integer",
			args:      []string{"--name=x", "--size=big"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "is not an integer",
		},
		{
			name:      "empty switch value",
			args:      []string{"--name=x", "--grow="},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "a boolean value is required",
		},
		{
			name:      "custom converter failure",
			args:      []string{"--name=x", "--level=raid7"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "unsupported level",
		},
		{
			name:      "missing argument",
			args:      []string{"--name"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "requires an argument",
		},
		{
			name:      "extra positional",
			args:      []string{"--name=x", "one", "two"},
			version:   version.F30,
			expectErr: kserrors.Value,
			contains:  "unexpected arguments to the demo command: two",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := testSchema().Parse(tc.args, tc.version)
			if tc.contains != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectErr, kserrors.KindOf(err))
				assert.Contains(t, err.Error(), tc.contains)
				return
			}
			require.NoError(t, err)
			tc.check(t, res)
		})
	}
}

func TestDecode(t *testing.T) {
	res, err := testSchema().Parse([]string{
		"--name=root", "--size=20", "--grow", "--drives=sda", "--opts=a=1",
		"--permissive", "--level=raid1", "target0",
	}, version.F30)
	require.NoError(t, err)

	var d demoData
	require.NoError(t, Decode(res, &d))
	require.NotNil(t, d.Size)
	assert.Equal(t, 20, *d.Size)
	assert.Equal(t, "root", d.Name)
	assert.True(t, d.Grow)
	assert.Equal(t, []string{"sda"}, d.Disks)
	assert.Equal(t, map[string]string{"a": "1"}, d.Opts)
	assert.Equal(t, "permissive", d.State)
	assert.Equal(t, "raid1", d.Level)
	assert.Equal(t, "target0", d.Target)

	require.Error(t, Decode(res, d), "non-pointer target must be rejected")
}

func TestApply(t *testing.T) {
	var d demoData
	require.NoError(t, Apply(&d, map[string]any{"name": "alice", "disks": []string{"sdc"}}))
	assert.Equal(t, "alice", d.Name)
	assert.Equal(t, []string{"sdc"}, d.Disks)

	err := Apply(&d, map[string]any{"nope": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no field for "nope"`)

	err = Apply(&d, map[string]any{"grow": "definitely"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, kserrors.ErrValue))
}

func TestFields(t *testing.T) {
	size := 0
	d := demoData{Name: "alice", Size: &size, Disks: []string{"sda"}}
	got, err := Fields(&d)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "alice", "size": 0, "disks": []string{"sda"}}, got)

	_, err = Fields(d)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(testSchema(), &demoData{}))

	exact := &Schema{
		Command: "exact",
		Options: []Option{
			{Name: "name", Kind: String},
			{Name: "grow", Kind: Bool},
			{Name: "disks", Kind: List},
			{Name: "opts", Kind: Map},
		},
	}
	type exactData struct {
		Name  string            `ks:"name"`
		Grow  bool              `ks:"grow"`
		Disks []string          `ks:"disks"`
		Opts  map[string]string `ks:"opts"`
	}
	require.NoError(t, Validate(exact, &exactData{}), "fields of exactly the option type are accepted")

	type missing struct {
		Name string `ks:"name"`
	}
	err := Validate(testSchema(), &missing{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no field tagged "size"`)

	type wrongType struct {
		demoData
		Disks bool `ks:"disks"`
	}
	err = Validate(testSchema(), &wrongType{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "disks" is bool`)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"bootproto", "device", "hostname", "onboot"}
	assert.Equal(t, "hostname", Suggest("hostnme", candidates))
	assert.Equal(t, "device", Suggest("devcie", candidates))
	assert.Equal(t, "", Suggest("completely-different", candidates))
}

func TestLine(t *testing.T) {
	size := 0
	on := false
	got := NewLine("part", "/home").
		Str("fstype", "ext4").
		Int("size", &size).
		Int("maxsize", nil).
		Flag("grow", true).
		Flag("encrypted", false).
		BoolValue("onboot", &on).
		List("ondisk", []string{"sda", "sdb"}).
		Map("opts", map[string]string{"b": "2", "a": "1"}).
		Str("label", "my disk").
		String()
	assert.Equal(t, `part /home --fstype=ext4 --size=0 --grow --onboot=no --ondisk=sda,sdb --opts=a=1,b=2 --label="my disk"`+"\n", got)
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"two words", `"two words"`},
		{`say "hi"`, `"say \"hi\""`},
		{"#hash", `"#hash"`},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Quote(tc.in))
		})
	}
}
