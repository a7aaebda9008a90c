package sections

import (
	"strings"

	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// ScriptType is the phase a script runs in.
type ScriptType int

const (
	Pre ScriptType = iota
	PreInstall
	Post
	Traceback
)

// DefaultInterpreter runs scripts that name no interpreter.
const DefaultInterpreter = "/bin/sh"

var scriptNames = map[ScriptType]string{
	Pre:        "pre",
	PreInstall: "pre-install",
	Post:       "post",
	Traceback:  "traceback",
}

func (t ScriptType) String() string {
	return scriptNames[t]
}

// ScriptTypeOf maps a section name such as "post" to its script type.
func ScriptTypeOf(name string) (ScriptType, bool) {
	for t, n := range scriptNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Script is one %pre, %pre-install, %post or %traceback block. Body holds
// the raw lines between the header and %end, each terminated by a newline.
type Script struct {
	Type        ScriptType
	Body        string
	Interp      string `ks:"interpreter"`
	InChroot    bool   `ks:"inchroot"`
	ErrorOnFail bool   `ks:"erroronfail"`
	LogFile     string `ks:"log"`
	Line        int
}

func scriptOptions(chroot bool) []options.Option {
	opts := []options.Option{
		{Name: "interpreter", Kind: options.String},
		{Name: "erroronfail", Kind: options.Bool},
		{Name: "log", Aliases: []string{"logfile"}, Kind: options.String},
	}
	if chroot {
		opts = append(opts, options.Option{Name: "nochroot", Dest: "inchroot", Kind: options.Bool, Const: false})
	}
	return opts
}

var scriptSchemas = map[ScriptType]*options.Schema{
	Pre:        {Command: "%pre", Options: scriptOptions(false)},
	PreInstall: {Command: "%pre-install", Options: scriptOptions(false)},
	Post:       {Command: "%post", Options: scriptOptions(true)},
	Traceback:  {Command: "%traceback", Options: scriptOptions(false)},
}

// NewScript returns a script of type t with the defaults applied: the
// shell interpreter, and chroot for %post.
func NewScript(t ScriptType) *Script {
	return &Script{Type: t, Interp: DefaultInterpreter, InChroot: t == Post}
}

// ParseScriptHeader builds a script from the arguments of its header line.
func ParseScriptHeader(t ScriptType, args []string, v version.Version, warn Warner) (*Script, error) {
	res, err := scriptSchemas[t].Parse(args, v)
	if err != nil {
		return nil, err
	}
	warnDeprecated(warn, t.String(), res.Deprecated)
	s := NewScript(t)
	if err := options.Decode(res, s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddLine appends one raw body line.
func (s *Script) AddLine(line string) {
	s.Body += line + "\n"
}

// String writes the header, the body and %end.
func (s *Script) String() string {
	interp := s.Interp
	if interp == DefaultInterpreter {
		interp = ""
	}
	header := options.NewLine("%"+s.Type.String()).
		Flag("nochroot", s.Type == Post && !s.InChroot).
		Str("interpreter", interp).
		Flag("erroronfail", s.ErrorOnFail).
		Str("log", s.LogFile).
		String()

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(s.Body)
	if s.Body != "" && !strings.HasSuffix(s.Body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(End + "\n")
	return b.String()
}
