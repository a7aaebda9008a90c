package sections

import (
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
)

// Addon is an %addon block. Its content belongs to the add-on, so header
// arguments and body are kept verbatim.
type Addon struct {
	Name string
	Args []string
	Body string
	Line int
}

// NewAddon builds an add-on record from the tokens of its header line.
func NewAddon(args []string, line int) (*Addon, error) {
	if len(args) == 0 {
		return nil, kserrors.New(kserrors.Parse, "the %%addon section requires an add-on name")
	}
	return &Addon{Name: args[0], Args: append([]string(nil), args[1:]...), Line: line}, nil
}

// AddLine appends one raw body line.
func (a *Addon) AddLine(line string) {
	a.Body += line + "\n"
}

func (a *Addon) String() string {
	var b strings.Builder
	b.WriteString(options.NewLine("%addon", a.Name).Args(a.Args).String())
	b.WriteString(a.Body)
	if a.Body != "" && !strings.HasSuffix(a.Body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(End + "\n")
	return b.String()
}
