// Package kickstart parses, represents and writes kickstart installation
// documents across the syntax versions from F20 to F30, RHEL7 and RHEL8.
//
// A parse session pairs a Handler, built for one version, with a Parser:
//
//	h, err := kickstart.MakeHandler(kickstart.F29)
//	if err != nil {
//		return err
//	}
//	if err := kickstart.NewParser(h).ReadFromPath(ctx, "ks.cfg"); err != nil {
//		return err
//	}
//	fmt.Print(h.String())
//
// Errors returned by the library are *Error values carrying a Kind and the
// location of the offending line. Non-fatal diagnostics are collected on
// the handler and reported through Handler.Warnings.
package kickstart

import (
	"context"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/handler"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/parser"
	"github.com/specialistvlad/gokickstart/internal/registry"
	"github.com/specialistvlad/gokickstart/internal/sections"
	"github.com/specialistvlad/gokickstart/internal/version"
)

type (
	Version     = version.Version
	Handler     = handler.Handler
	Status      = handler.Status
	Parser      = parser.Parser
	Option      = parser.Option
	Overrides   = registry.Overrides
	Change      = registry.Change
	Command     = commands.Command
	CommandType = commands.Type
	Data        = commands.Data
	DataType    = commands.DataType
	Invocation  = commands.Invocation
	Script      = sections.Script
	ScriptType  = sections.ScriptType
	Packages    = sections.Packages
	Addon       = sections.Addon
	Error       = kserrors.Error
	ErrorKind   = kserrors.Kind
	Warning     = kserrors.Warning
	WarningKind = kserrors.WarningKind
)

const (
	F20   = version.F20
	F21   = version.F21
	RHEL7 = version.RHEL7
	F22   = version.F22
	F23   = version.F23
	F24   = version.F24
	F25   = version.F25
	F26   = version.F26
	F27   = version.F27
	F28   = version.F28
	RHEL8 = version.RHEL8
	F29   = version.F29
	F30   = version.F30
	DEVEL = version.DEVEL
)

const (
	GenericError = kserrors.Generic
	ParseError   = kserrors.Parse
	ValueError   = kserrors.Value
	VersionError = kserrors.Version

	GeneralWarning     = kserrors.General
	DeprecationWarning = kserrors.Deprecation
)

const (
	Absent = handler.Absent
	Active = handler.Active
	Masked = handler.Masked
)

const (
	PreScript        = sections.Pre
	PreInstallScript = sections.PreInstall
	PostScript       = sections.Post
	TracebackScript  = sections.Traceback
)

var (
	WithFollowIncludes        = parser.WithFollowIncludes
	WithMissingIncludeIsFatal = parser.WithMissingIncludeIsFatal
	WithBaseDir               = parser.WithBaseDir
	WithKeepComments          = parser.WithKeepComments
)

// StringToVersion parses names such as "F28", "rhel7" or "Fedora 29".
func StringToVersion(s string) (Version, error) {
	return version.StringToVersion(s)
}

// VersionToString returns the canonical name of v.
func VersionToString(v Version) string {
	return version.VersionToString(v)
}

// Versions returns the supported versions in ascending order.
func Versions() []Version {
	return version.All()
}

// Latest returns the version DEVEL stands for.
func Latest() Version {
	return version.Latest()
}

// MakeHandler returns an empty handler for v with optional registry
// overrides.
func MakeHandler(v Version, overrides ...Overrides) (*Handler, error) {
	reg, err := registry.For(v, overrides...)
	if err != nil {
		return nil, err
	}
	return handler.New(reg), nil
}

// NewParser returns a parser that feeds h.
func NewParser(h *Handler, opts ...Option) *Parser {
	return parser.New(h, opts...)
}

// ParseFile reads the document at path with a fresh handler for v.
func ParseFile(ctx context.Context, v Version, path string, opts ...Option) (*Handler, error) {
	h, err := MakeHandler(v)
	if err != nil {
		return nil, err
	}
	if err := parser.New(h, opts...).ReadFromPath(ctx, path); err != nil {
		return h, err
	}
	return h, nil
}

// ParseString reads text with a fresh handler for v.
func ParseString(ctx context.Context, v Version, text string, opts ...Option) (*Handler, error) {
	h, err := MakeHandler(v)
	if err != nil {
		return nil, err
	}
	if err := parser.New(h, opts...).ReadFromString(ctx, text); err != nil {
		return h, err
	}
	return h, nil
}

// LookupCommandType returns a command variant by name, e.g. "F29_Bootloader",
// for use in Overrides.
func LookupCommandType(name string) (CommandType, bool) {
	return commands.Lookup(name)
}

// LookupDataType returns a data variant by name, e.g. "F29_PartData".
func LookupDataType(name string) (DataType, bool) {
	return commands.LookupData(name)
}

// ResolveOverrides builds Overrides from variant names keyed by keyword and
// by data kind.
func ResolveOverrides(cmds, data map[string]string) (Overrides, error) {
	return registry.ResolveOverrides(cmds, data)
}

// Diff lists the commands and options that differ between versions a and b.
func Diff(a, b Version) ([]Change, error) {
	return registry.Diff(a, b)
}

// ErrorKindOf returns the kind of the first *Error in err's chain.
func ErrorKindOf(err error) ErrorKind {
	return kserrors.KindOf(err)
}
