// Package handler holds the state of one kickstart document: one command
// object per command the version knows, the data lists those commands fill,
// and the section records. The parser feeds it invocations; String writes
// the canonical document back out.
package handler

import (
	"context"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/registry"
	"github.com/specialistvlad/gokickstart/internal/sections"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Status is the state of a command in a handler.
type Status int

const (
	// Absent commands are unknown to the handler's version.
	Absent Status = iota
	// Active commands parse their lines and are written out.
	Active
	// Masked commands consume their lines silently and are never written.
	Masked
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Masked:
		return "masked"
	default:
		return "absent"
	}
}

// Handler is the aggregate root of a parse session. It is not safe for
// concurrent use.
type Handler struct {
	reg *registry.Registry

	// commands and masked are keyed by variant name so aliases share state.
	commands map[string]commands.Command
	masked   map[string]bool
	data     map[string]*commands.DataList

	packages *sections.Packages
	scripts  []*sections.Script
	addons   []*sections.Addon
	includes []string
	comments []string
	warnings []kserrors.Warning
}

// New builds a handler with one command object per variant reg maps. A nil
// registry yields a handler that ignores every command and only records
// sections.
func New(reg *registry.Registry) *Handler {
	h := &Handler{
		reg:      reg,
		commands: make(map[string]commands.Command),
		masked:   make(map[string]bool),
		data:     make(map[string]*commands.DataList),
		packages: &sections.Packages{},
	}
	if reg == nil {
		return h
	}

	for _, kind := range reg.DataKinds() {
		t, _ := reg.LookupData(kind)
		h.data[kind] = commands.NewDataList(t)
	}
	for _, t := range reg.Types() {
		cmd := t.Make()
		if dc, ok := cmd.(commands.DataCommand); ok {
			if l, ok := h.data[dc.DataKind()]; ok {
				dc.BindData(l)
			}
		}
		h.commands[t.Name] = cmd
	}
	return h
}

// Registry returns the registry the handler was built with, nil in
// "don't care" mode.
func (h *Handler) Registry() *registry.Registry {
	return h.reg
}

// Version returns the version the handler parses, DEVEL when it has no
// registry.
func (h *Handler) Version() version.Version {
	if h.reg == nil {
		return version.DEVEL
	}
	return h.reg.Version()
}

func (h *Handler) lookup(keyword string) (commands.Type, bool) {
	if h.reg == nil {
		return commands.Type{}, false
	}
	return h.reg.LookupCommand(keyword)
}

// Status reports the state of the command behind keyword.
func (h *Handler) Status(keyword string) Status {
	t, ok := h.lookup(keyword)
	if !ok {
		return Absent
	}
	if h.masked[t.Name] {
		return Masked
	}
	return Active
}

// Mask masks the commands behind keywords together with their aliases.
// Unknown keywords are ignored.
func (h *Handler) Mask(keywords ...string) {
	for _, kw := range keywords {
		if t, ok := h.lookup(kw); ok {
			h.masked[t.Name] = true
		}
	}
}

// Unmask reactivates the commands behind keywords.
func (h *Handler) Unmask(keywords ...string) {
	for _, kw := range keywords {
		if t, ok := h.lookup(kw); ok {
			delete(h.masked, t.Name)
		}
	}
}

// MaskAllExcept masks every command except those behind keywords.
func (h *Handler) MaskAllExcept(keywords ...string) {
	keep := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		if t, ok := h.lookup(kw); ok {
			keep[t.Name] = true
		}
	}
	for name := range h.commands {
		if keep[name] {
			delete(h.masked, name)
		} else {
			h.masked[name] = true
		}
	}
}

// Command returns the command object behind keyword, whatever its status.
func (h *Handler) Command(keyword string) (commands.Command, bool) {
	t, ok := h.lookup(keyword)
	if !ok {
		return nil, false
	}
	cmd, ok := h.commands[t.Name]
	return cmd, ok
}

// SetFields updates the fields of the command behind keyword, named by
// their option dests, so the command is written out.
func (h *Handler) SetFields(keyword string, fields map[string]any) error {
	cmd, ok := h.Command(keyword)
	if !ok {
		return kserrors.New(kserrors.Generic, "unknown command: %s", keyword)
	}
	_, err := commands.WithFields(cmd, fields)
	return err
}

// Dispatch routes one command line to its command object. Warnings raised
// while parsing are collected on the handler.
func (h *Handler) Dispatch(ctx context.Context, inv *commands.Invocation) error {
	logger := ctxlog.FromContext(ctx)
	if h.reg == nil {
		logger.Debug("Ignoring command without a registry.", "keyword", inv.Keyword, "line", inv.Line)
		return nil
	}

	t, ok := h.reg.LookupCommand(inv.Keyword)
	if !ok {
		msg := "unknown command: " + inv.Keyword
		if s := h.reg.Suggest(inv.Keyword); s != "" {
			msg += "; did you mean " + s + "?"
		}
		return kserrors.At(kserrors.New(kserrors.Parse, "%s", msg), inv.File, inv.Line)
	}
	if h.masked[t.Name] {
		logger.Debug("Skipping masked command.", "keyword", inv.Keyword, "line", inv.Line)
		return nil
	}

	if inv.Sink == nil {
		inv.Sink = func(w kserrors.Warning) { h.warn(ctx, w) }
	}
	logger.Debug("Dispatching command.", "keyword", inv.Keyword, "variant", t.Name, "line", inv.Line)
	if err := h.commands[t.Name].Parse(inv); err != nil {
		return kserrors.At(err, inv.File, inv.Line)
	}
	return nil
}

// Warn records a warning raised outside a command, e.g. by a section header.
func (h *Handler) Warn(ctx context.Context, w kserrors.Warning) {
	h.warn(ctx, w)
}

func (h *Handler) warn(ctx context.Context, w kserrors.Warning) {
	h.warnings = append(h.warnings, w)
	ctxlog.FromContext(ctx).Warn(w.String(), "kind", w.Kind.String())
}

// Warnings returns the warnings collected so far, in order.
func (h *Handler) Warnings() []kserrors.Warning {
	return h.warnings
}

// DataList returns the list of kind, nil when the version has none.
func (h *Handler) DataList(kind string) *commands.DataList {
	return h.data[kind]
}

// Data returns the records of kind in document order.
func (h *Handler) Data(kind string) []commands.Data {
	if l := h.data[kind]; l != nil {
		return l.Items
	}
	return nil
}

// Packages returns the merged %packages record.
func (h *Handler) Packages() *sections.Packages {
	return h.packages
}

// AddScript appends a script in document order.
func (h *Handler) AddScript(s *sections.Script) {
	h.scripts = append(h.scripts, s)
}

// Scripts returns the scripts in document order.
func (h *Handler) Scripts() []*sections.Script {
	return h.scripts
}

// AddAddon appends an add-on block.
func (h *Handler) AddAddon(a *sections.Addon) {
	h.addons = append(h.addons, a)
}

// Addons returns the add-on blocks in document order.
func (h *Handler) Addons() []*sections.Addon {
	return h.addons
}

// AddInclude records an %include that was not followed.
func (h *Handler) AddInclude(path string) {
	h.includes = append(h.includes, path)
}

// Includes returns the unfollowed include paths.
func (h *Handler) Includes() []string {
	return h.includes
}

// AddComment keeps a top-level comment line.
func (h *Handler) AddComment(line string) {
	h.comments = append(h.comments, line)
}

// Comments returns the kept comment lines.
func (h *Handler) Comments() []string {
	return h.comments
}

// Commands returns the active commands in write order.
func (h *Handler) Commands() []commands.Command {
	var out []commands.Command
	for name, cmd := range h.commands {
		if !h.masked[name] {
			out = append(out, cmd)
		}
	}
	commands.SortByPriority(out)
	return out
}

// String writes the document: kept comments, the active commands by
// priority then keyword, unfollowed includes, packages, scripts and add-ons.
func (h *Handler) String() string {
	var b strings.Builder
	for _, c := range h.comments {
		b.WriteString(c + "\n")
	}
	for _, cmd := range h.Commands() {
		b.WriteString(cmd.String())
	}
	for _, path := range h.includes {
		b.WriteString("%include " + options.Quote(path) + "\n")
	}
	if !h.packages.Empty() {
		b.WriteString("\n" + h.packages.String())
	}
	for _, s := range h.scripts {
		b.WriteString("\n" + s.String())
	}
	for _, a := range h.addons {
		b.WriteString("\n" + a.String())
	}
	return b.String()
}
