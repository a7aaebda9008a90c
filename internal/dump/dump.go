// Package dump exports the parsed state of a handler as YAML, for tooling
// that wants the document's content without re-implementing the kickstart
// syntax.
package dump

import (
	"io"

	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/handler"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/sections"
	"gopkg.in/yaml.v3"
)

// Document is the exported view of a handler.
type Document struct {
	Version  string              `yaml:"version"`
	Commands []Command           `yaml:"commands,omitempty"`
	Data     map[string][]Record `yaml:"data,omitempty"`
	Packages *Packages           `yaml:"packages,omitempty"`
	Scripts  []Script            `yaml:"scripts,omitempty"`
	Addons   []Addon             `yaml:"addons,omitempty"`
	Includes []string            `yaml:"includes,omitempty"`
	Warnings []string            `yaml:"warnings,omitempty"`
}

// Command is one populated command with the fields it set.
type Command struct {
	Keyword string         `yaml:"keyword"`
	Variant string         `yaml:"variant"`
	Line    int            `yaml:"line"`
	Fields  map[string]any `yaml:"fields,omitempty"`
}

// Record is one data object.
type Record struct {
	Line   int            `yaml:"line"`
	Fields map[string]any `yaml:"fields,omitempty"`
}

// Group is one selected package group.
type Group struct {
	Name    string `yaml:"name"`
	Include string `yaml:"include,omitempty"`
}

// Packages is the exported %packages section.
type Packages struct {
	Line           int            `yaml:"line"`
	Environment    string         `yaml:"environment,omitempty"`
	Groups         []Group        `yaml:"groups,omitempty"`
	ExcludedGroups []string       `yaml:"excluded_groups,omitempty"`
	Packages       []string       `yaml:"packages,omitempty"`
	Excluded       []string       `yaml:"excluded,omitempty"`
	Options        map[string]any `yaml:"options,omitempty"`
}

// Script is one exported script section.
type Script struct {
	Type        string `yaml:"type"`
	Line        int    `yaml:"line"`
	Interpreter string `yaml:"interpreter"`
	InChroot    bool   `yaml:"in_chroot"`
	ErrorOnFail bool   `yaml:"error_on_fail,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	Body        string `yaml:"body"`
}

// Addon is one exported %addon section.
type Addon struct {
	Name string   `yaml:"name"`
	Line int      `yaml:"line"`
	Args []string `yaml:"args,omitempty"`
	Body string   `yaml:"body,omitempty"`
}

var groupIncludes = map[sections.GroupInclude]string{
	sections.GroupRequired: "required",
	sections.GroupAll:      "all",
}

// From builds the exported view of h.
func From(h *handler.Handler) (*Document, error) {
	doc := &Document{Version: h.Version().String()}

	for _, cmd := range h.Commands() {
		if cmd.String() == "" {
			continue
		}
		if dc, ok := cmd.(commands.DataCommand); ok {
			if err := addData(doc, dc.DataKind(), h.Data(dc.DataKind())); err != nil {
				return nil, err
			}
			continue
		}
		fields, err := options.Fields(cmd)
		if err != nil {
			return nil, err
		}
		doc.Commands = append(doc.Commands, Command{
			Keyword: cmd.Type().Keyword,
			Variant: cmd.Type().Name,
			Line:    cmd.Line(),
			Fields:  fields,
		})
	}

	if p := h.Packages(); !p.Empty() {
		opts, err := options.Fields(p)
		if err != nil {
			return nil, err
		}
		out := &Packages{
			Line:           p.Line,
			Environment:    p.Environment,
			ExcludedGroups: p.ExcludedGroups,
			Packages:       p.Packages,
			Excluded:       p.Excluded,
			Options:        opts,
		}
		for _, g := range p.Groups {
			out.Groups = append(out.Groups, Group{Name: g.Name, Include: groupIncludes[g.Include]})
		}
		doc.Packages = out
	}

	for _, s := range h.Scripts() {
		doc.Scripts = append(doc.Scripts, Script{
			Type:        s.Type.String(),
			Line:        s.Line,
			Interpreter: s.Interp,
			InChroot:    s.InChroot,
			ErrorOnFail: s.ErrorOnFail,
			LogFile:     s.LogFile,
			Body:        s.Body,
		})
	}
	for _, a := range h.Addons() {
		doc.Addons = append(doc.Addons, Addon{Name: a.Name, Line: a.Line, Args: a.Args, Body: a.Body})
	}
	doc.Includes = h.Includes()
	for _, w := range h.Warnings() {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	return doc, nil
}

func addData(doc *Document, kind string, items []commands.Data) error {
	if len(items) == 0 {
		return nil
	}
	if doc.Data == nil {
		doc.Data = make(map[string][]Record)
	}
	for _, d := range items {
		fields, err := options.Fields(d)
		if err != nil {
			return err
		}
		doc.Data[kind] = append(doc.Data[kind], Record{Line: d.Line(), Fields: fields})
	}
	return nil
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return kserrors.Wrap(kserrors.Generic, err, "failed to encode document")
	}
	return enc.Close()
}

// Read decodes a document written by Write. Unknown keys are rejected.
func Read(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, kserrors.Wrap(kserrors.Generic, err, "failed to decode document")
	}
	return &doc, nil
}
