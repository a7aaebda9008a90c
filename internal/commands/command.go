// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Command contract shared by every kickstart command
// family, together with the Type descriptor the registry tables refer to.
//
// A Type is a tagged variant: one Go implementation (for example *Bootloader)
// paired with the version whose option window it parses with. Two variants
// of the same family differ only in that version and, occasionally, in
// version-specific validation. Variants are named "F<ver>_<Family>" so the
// registry tables read like an inventory of what each release supports.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// DefaultPriority is the write priority of commands whose position in the
// output does not matter to the installer.
const DefaultPriority = 50

// Command is one command's state accumulated over every invocation in a
// document.
type Command interface {
	// Type returns the variant this command was built from.
	Type() Type
	// Line is the line of the most recent invocation, 0 if never invoked.
	Line() int
	// Parse applies one invocation to the command.
	Parse(inv *Invocation) error
	// String returns the canonical text, empty when there is nothing to write.
	String() string
}

// Type describes one command variant.
type Type struct {
	// Name identifies the variant, e.g. "F29_Bootloader".
	Name string
	// Keyword is the canonical keyword the command is written under.
	Keyword string
	// Version is the option window the variant parses with.
	Version version.Version
	// Priority orders the output; lower values are written first.
	Priority int
	// Deprecated variants consume their lines, warn and store nothing.
	Deprecated bool
	// DataKind names the data objects a repeatable command produces.
	DataKind string
	// Schemas holds one schema per keyword; the first is the fallback for
	// aliases without their own.
	Schemas []*options.Schema
	// New builds a fresh command of this variant.
	New func(Type) Command
}

// WritePriority returns Priority, or DefaultPriority when unset.
func (t Type) WritePriority() int {
	if t.Priority == 0 {
		return DefaultPriority
	}
	return t.Priority
}

// Schema returns the schema for keyword.
func (t Type) Schema(keyword string) *options.Schema {
	for _, s := range t.Schemas {
		if s.Command == keyword {
			return s
		}
	}
	if len(t.Schemas) > 0 {
		return t.Schemas[0]
	}
	return nil
}

// Make instantiates the variant.
func (t Type) Make() Command {
	return t.New(t)
}

func (t Type) String() string {
	return t.Name
}

// Invocation is one command line as seen by a command: the keyword it was
// written with and its argument tokens.
type Invocation struct {
	Keyword string
	Args    []string
	File    string
	Line    int
	// Sink receives warnings raised while parsing the invocation.
	Sink func(kserrors.Warning)
}

// Warn reports a warning located at the invocation.
func (inv *Invocation) Warn(kind kserrors.WarningKind, format string, args ...any) {
	if inv.Sink == nil {
		return
	}
	w := kserrors.NewWarning(kind, format, args...)
	w.File, w.Line = inv.File, inv.Line
	inv.Sink(w)
}

// base carries the bookkeeping every command embeds.
type base struct {
	typ  Type
	line int
	seen bool
}

func newBase(t Type) base {
	return base{typ: t}
}

func (b *base) Type() Type { return b.typ }

func (b *base) Line() int { return b.line }

// Seen reports whether the command was invoked or populated by the caller.
func (b *base) Seen() bool { return b.seen }

func (b *base) touch() { b.seen = true }

// parse runs the schema for the invocation keyword and records the
// invocation. Deprecated options are reported as warnings.
func (b *base) parse(inv *Invocation) (*options.Result, error) {
	s := b.typ.Schema(inv.Keyword)
	if s == nil {
		return nil, kserrors.New(kserrors.Generic, "%s has no schema for %s", b.typ.Name, inv.Keyword)
	}
	res, err := s.Parse(inv.Args, b.typ.Version)
	if err != nil {
		return nil, err
	}
	for _, name := range res.Deprecated {
		inv.Warn(kserrors.Deprecation, "ignoring deprecated option --%s of the %s command: it no longer has any effect", name, inv.Keyword)
	}
	b.line = inv.Line
	b.seen = true
	return res, nil
}

// WithFields updates c's fields, named by their option dests, and marks the
// command as populated so it is written out.
func WithFields(c Command, fields map[string]any) (Command, error) {
	if err := options.Apply(c, fields); err != nil {
		return nil, err
	}
	if t, ok := c.(interface{ touch() }); ok {
		t.touch()
	}
	return c, nil
}

// Deprecated is the implementation of every retired command.
type Deprecated struct {
	base
}

func newDeprecated(t Type) Command {
	return &Deprecated{base: newBase(t)}
}

// Parse consumes the line and warns.
func (c *Deprecated) Parse(inv *Invocation) error {
	c.line = inv.Line
	inv.Warn(kserrors.Deprecation, "the %s command has been deprecated and no longer has any effect; it may be removed from future releases", inv.Keyword)
	return nil
}

// String is always empty.
func (c *Deprecated) String() string { return "" }

// deprecatedType builds the variant of a retired command.
func deprecatedType(name, keyword string, v version.Version) Type {
	return Type{Name: name, Keyword: keyword, Version: v, Deprecated: true, New: newDeprecated}
}

// SortByPriority orders commands by write priority, then canonical keyword.
func SortByPriority(cmds []Command) {
	sort.SliceStable(cmds, func(i, j int) bool {
		pi, pj := cmds[i].Type().WritePriority(), cmds[j].Type().WritePriority()
		if pi != pj {
			return pi < pj
		}
		return cmds[i].Type().Keyword < cmds[j].Type().Keyword
	})
}

func schemas(s ...*options.Schema) []*options.Schema {
	return s
}

// noArgs fails when an argument-less command received arguments.
func noArgs(inv *Invocation) error {
	if len(inv.Args) > 0 {
		return kserrors.New(kserrors.Value, "the %s command does not take any arguments", inv.Keyword)
	}
	return nil
}

// exclusive fails when more than one of the dests is set.
func exclusive(res *options.Result, keyword string, dests ...string) error {
	var given []string
	for _, d := range dests {
		if res.Has(d) {
			given = append(given, "--"+d)
		}
	}
	if len(given) > 1 {
		return kserrors.New(kserrors.Value, "options %s of the %s command are mutually exclusive", joinAnd(given), keyword)
	}
	return nil
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return fmt.Sprintf("%s and %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
}
