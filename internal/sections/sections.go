// Package sections holds the multi-line blocks of a kickstart document:
// scripts, the package selection and add-on blocks. Each record parses its
// own header line through the option schema engine and writes itself back
// out with its terminator.
package sections

import (
	"sort"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// End is the line that terminates every section.
const End = "%end"

// Warner receives the warnings raised while a header is parsed.
type Warner func(kind kserrors.WarningKind, format string, args ...any)

// headers maps every section name to the first version accepting it.
var headers = map[string]version.Version{
	"packages":    version.F20,
	"pre":         version.F20,
	"pre-install": version.F23,
	"post":        version.F20,
	"traceback":   version.F20,
	"addon":       version.F20,
}

// Known reports whether %name opens a section in v.
func Known(name string, v version.Version) bool {
	since, ok := headers[name]
	return ok && version.Resolve(v) >= since
}

// Names returns the section names accepted in v, sorted.
func Names(v version.Version) []string {
	var out []string
	for name := range headers {
		if Known(name, v) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func warnDeprecated(warn Warner, header string, names []string) {
	if warn == nil {
		return
	}
	for _, name := range names {
		warn(kserrors.Deprecation, "ignoring deprecated option --%s of the %%%s section: it no longer has any effect", name, header)
	}
}
