// Package version maps symbolic kickstart syntax versions to ordered
// identifiers and resolves the "latest supported" pseudo-version.
//
// Versions are encoded as ordinals so that plain integer comparison gives
// the release order. A Fedora release N is N*1000; a RHEL release sorts
// directly after the Fedora release it branched from.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
)

// Version is an opaque, totally ordered kickstart syntax identifier.
type Version int

const (
	F20   Version = 20000
	F21   Version = 21000
	RHEL7 Version = 21100
	F22   Version = 22000
	F23   Version = 23000
	F24   Version = 24000
	F25   Version = 25000
	F26   Version = 26000
	F27   Version = 27000
	F28   Version = 28000
	RHEL8 Version = 28100
	F29   Version = 29000
	F30   Version = 30000

	// DEVEL is the reserved sentinel for the latest supported version.
	DEVEL Version = 1<<31 - 1
)

// latest is the concrete version DEVEL resolves to in this build.
const latest = F30

var ordered = []Version{F20, F21, RHEL7, F22, F23, F24, F25, F26, F27, F28, RHEL8, F29, F30}

var names = map[Version]string{
	F20:   "F20",
	F21:   "F21",
	RHEL7: "RHEL7",
	F22:   "F22",
	F23:   "F23",
	F24:   "F24",
	F25:   "F25",
	F26:   "F26",
	F27:   "F27",
	F28:   "F28",
	RHEL8: "RHEL8",
	F29:   "F29",
	F30:   "F30",
	DEVEL: "DEVEL",
}

var (
	fedoraRe = regexp.MustCompile(`^(?:f|fedora)\s*(\d+)$`)
	rhelRe   = regexp.MustCompile(`^(?:rhel|red\s+hat\s+enterprise\s+linux(?:\s+server)?)\s*(\d+)(?:\.\d+)*$`)
)

// Latest resolves the DEVEL sentinel. It returns the same value on every
// call within one build.
func Latest() Version {
	return latest
}

// All returns every concrete version in ascending order.
func All() []Version {
	out := make([]Version, len(ordered))
	copy(out, ordered)
	return out
}

// Resolve turns DEVEL into the concrete latest version and returns any
// other version unchanged.
func Resolve(v Version) Version {
	if v == DEVEL {
		return latest
	}
	return v
}

// Valid reports whether v is DEVEL or one of the supported versions.
func (v Version) Valid() bool {
	_, ok := names[v]
	return ok
}

// String implements fmt.Stringer.
func (v Version) String() string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// VersionToString returns the canonical symbolic name of v.
func VersionToString(v Version) string {
	return v.String()
}

// StringToVersion parses a version identifier. Canonical names (F28,
// RHEL7, DEVEL) and long release names ("Fedora 28", "Red Hat Enterprise
// Linux 7.4") are accepted case-insensitively.
func StringToVersion(text string) (Version, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, kserrors.New(kserrors.Version, "empty version string")
	}
	if s == "devel" || s == "rawhide" {
		return DEVEL, nil
	}

	var candidate string
	if m := fedoraRe.FindStringSubmatch(s); m != nil {
		candidate = "F" + trimZeros(m[1])
	} else if m := rhelRe.FindStringSubmatch(s); m != nil {
		candidate = "RHEL" + trimZeros(m[1])
	}

	for v, name := range names {
		if name == candidate {
			return v, nil
		}
	}
	return 0, kserrors.New(kserrors.Version, "unsupported version specified: %s", text)
}

func trimZeros(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return digits
	}
	return strconv.Itoa(n)
}
