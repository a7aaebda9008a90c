package kserrors

import "fmt"

// WarningKind classifies a Warning.
type WarningKind int

const (
	// General is any non-fatal diagnostic.
	General WarningKind = iota
	// Deprecation reports use of a retired command, option or syntax.
	Deprecation
)

func (k WarningKind) String() string {
	if k == Deprecation {
		return "deprecation"
	}
	return "warning"
}

// Warning is a non-fatal diagnostic collected during a parse.
type Warning struct {
	Kind WarningKind
	File string
	Line int
	Msg  string
}

// NewWarning builds a Warning without location.
func NewWarning(kind WarningKind, format string, args ...any) Warning {
	return Warning{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return FormatMessage(w.File, w.Line, w.Msg)
}
