// Package parser reads kickstart documents into a handler. It drives a small
// state machine over the document lines: outside any section, command lines
// are tokenized and dispatched; inside %packages, %pre, %post and the other
// sections, lines belong to the open section record until %end.
//
// %include directives are expanded in place, relative to the including
// file, so the state machine sees one continuous stream of lines.
package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/specialistvlad/gokickstart/internal/commands"
	"github.com/specialistvlad/gokickstart/internal/ctxlog"
	"github.com/specialistvlad/gokickstart/internal/handler"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/sections"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Directive names handled by the parser itself rather than by a section.
const (
	includeDirective = "%include"
	endDirective     = sections.End
)

// Option configures a Parser.
type Option func(*Parser)

// WithFollowIncludes controls whether %include is expanded. When disabled
// the directive is recorded on the handler and written back verbatim.
func WithFollowIncludes(follow bool) Option {
	return func(p *Parser) { p.followIncludes = follow }
}

// WithMissingIncludeIsFatal controls whether an unreadable include file is a
// parse error or only a warning.
func WithMissingIncludeIsFatal(fatal bool) Option {
	return func(p *Parser) { p.missingIncludeFatal = fatal }
}

// WithBaseDir sets the directory relative includes of string input are
// resolved against. It defaults to the working directory.
func WithBaseDir(dir string) Option {
	return func(p *Parser) { p.baseDir = dir }
}

// WithKeepComments keeps comment lines found outside sections so they are
// written back out.
func WithKeepComments(keep bool) Option {
	return func(p *Parser) { p.keepComments = keep }
}

// Parser feeds documents into a handler. A Parser may read several documents
// into the same handler, one at a time.
type Parser struct {
	h                   *handler.Handler
	followIncludes      bool
	missingIncludeFatal bool
	baseDir             string
	keepComments        bool
}

// New returns a parser writing into h.
func New(h *handler.Handler, opts ...Option) *Parser {
	p := &Parser{
		h:                   h,
		followIncludes:      true,
		missingIncludeFatal: true,
		baseDir:             ".",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handler returns the handler the parser writes into.
func (p *Parser) Handler() *handler.Handler {
	return p.h
}

// ReadFromPath parses the document stored at path.
func (p *Parser) ReadFromPath(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return kserrors.Wrap(kserrors.Generic, err, "unable to resolve %s", path)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return kserrors.Wrap(kserrors.Generic, err, "unable to read kickstart file")
	}
	ctxlog.FromContext(ctx).Debug("Reading kickstart file.", "path", abs)
	return p.read(ctx, &source{path: abs, dir: filepath.Dir(abs), lines: splitLines(string(data))})
}

// ReadFromString parses a document held in memory.
func (p *Parser) ReadFromString(ctx context.Context, text string) error {
	ctxlog.FromContext(ctx).Debug("Reading kickstart text.", "bytes", len(text))
	return p.read(ctx, &source{dir: p.baseDir, lines: splitLines(text)})
}

func (p *Parser) read(ctx context.Context, main *source) error {
	s := &session{p: p, ctx: ctx, v: p.h.Version(), stack: []*source{main}}
	for {
		l, ok := s.next()
		if !ok {
			break
		}
		if err := s.handle(l); err != nil {
			return err
		}
	}
	return s.finish()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// source is one document on the inclusion path.
type source struct {
	name  string // as written in %include; empty for the main document
	path  string // absolute; empty for string input
	dir   string
	lines []string
	next  int
}

// line is one physical line with its location.
type line struct {
	text string
	src  *source
	num  int
}

type state int

const (
	outside state = iota
	inPackages
	inScript
	inAddon
)

// session is the state of one document read.
type session struct {
	p     *Parser
	ctx   context.Context
	v     version.Version
	stack []*source

	state  state
	header line // header of the open section
	script *sections.Script
	addon  *sections.Addon
}

func (s *session) next() (line, bool) {
	for len(s.stack) > 0 {
		src := s.stack[len(s.stack)-1]
		if src.next < len(src.lines) {
			src.next++
			return line{text: src.lines[src.next-1], src: src, num: src.next}, true
		}
		s.stack = s.stack[:len(s.stack)-1]
	}
	return line{}, false
}

func (s *session) errorAt(l line, err error) error {
	return kserrors.At(err, l.src.name, l.num)
}

func (s *session) warner(l line) sections.Warner {
	return func(kind kserrors.WarningKind, format string, args ...any) {
		w := kserrors.NewWarning(kind, format, args...)
		w.File, w.Line = l.src.name, l.num
		s.p.h.Warn(s.ctx, w)
	}
}

// directive returns the first word of a line starting with "%".
func directive(text string) string {
	if !strings.HasPrefix(text, "%") {
		return ""
	}
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return text[:i]
	}
	return text
}

// opensSection reports whether d is a section header in the session version.
func (s *session) opensSection(d string) bool {
	return d != "" && sections.Known(strings.TrimPrefix(d, "%"), s.v)
}

func (s *session) handle(l line) error {
	text := strings.TrimSpace(l.text)
	d := directive(text)

	switch s.state {
	case inScript, inAddon:
		if d == endDirective {
			return s.close()
		}
		if s.opensSection(d) {
			if err := s.missingEnd(); err != nil {
				return err
			}
			return s.outside(l, text, d)
		}
		if s.state == inScript {
			s.script.AddLine(l.text)
		} else {
			s.addon.AddLine(l.text)
		}
		return nil

	case inPackages:
		switch {
		case d == endDirective:
			return s.close()
		case d == includeDirective:
			return s.include(l, text)
		case s.opensSection(d):
			if err := s.missingEnd(); err != nil {
				return err
			}
			return s.outside(l, text, d)
		}
		if err := s.p.h.Packages().AddLine(l.text, s.v); err != nil {
			return s.errorAt(l, err)
		}
		return nil
	}
	return s.outside(l, text, d)
}

func (s *session) outside(l line, text, d string) error {
	switch {
	case text == "":
		return nil
	case strings.HasPrefix(text, "#"):
		if s.p.keepComments {
			s.p.h.AddComment(text)
		}
		return nil
	case d == endDirective:
		return s.errorAt(l, kserrors.New(kserrors.Parse, "unexpected %s outside of a section", endDirective))
	case d == includeDirective:
		return s.include(l, text)
	case d != "":
		return s.open(l, text, d)
	}

	tokens, err := tokenize(text)
	if err != nil {
		return s.errorAt(l, err)
	}
	if len(tokens) == 0 {
		return nil
	}
	return s.p.h.Dispatch(s.ctx, &commands.Invocation{
		Keyword: tokens[0],
		Args:    tokens[1:],
		File:    l.src.name,
		Line:    l.num,
	})
}

func tokenize(text string) ([]string, error) {
	tokens, err := shlex.Split(text)
	if err != nil {
		return nil, kserrors.Wrap(kserrors.Parse, err, "unable to split line into arguments")
	}
	return tokens, nil
}

// open starts the section named by the header line.
func (s *session) open(l line, text, d string) error {
	name := strings.TrimPrefix(d, "%")
	if !sections.Known(name, s.v) {
		return s.errorAt(l, s.unknownSection(name))
	}
	tokens, err := tokenize(text)
	if err != nil {
		return s.errorAt(l, err)
	}
	args := tokens[1:]
	warn := s.warner(l)

	switch name {
	case "packages":
		if err := s.p.h.Packages().ParseHeader(args, s.v, l.num, warn); err != nil {
			return s.errorAt(l, err)
		}
		s.state = inPackages
	case "addon":
		a, err := sections.NewAddon(args, l.num)
		if err != nil {
			return s.errorAt(l, err)
		}
		s.p.h.AddAddon(a)
		s.addon = a
		s.state = inAddon
	default:
		typ, _ := sections.ScriptTypeOf(name)
		script, err := sections.ParseScriptHeader(typ, args, s.v, warn)
		if err != nil {
			return s.errorAt(l, err)
		}
		script.Line = l.num
		s.p.h.AddScript(script)
		s.script = script
		s.state = inScript
	}
	s.header = l
	ctxlog.FromContext(s.ctx).Debug("Opened section.", "section", name, "line", l.num)
	return nil
}

func (s *session) unknownSection(name string) error {
	if sections.Known(name, version.DEVEL) {
		return kserrors.New(kserrors.Parse, "the %%%s section is not available in %s", name, s.v)
	}
	msg := "unknown section: %" + name
	if hint := options.Suggest(name, sections.Names(s.v)); hint != "" {
		msg += "; did you mean %" + hint + "?"
	}
	return kserrors.New(kserrors.Parse, "%s", msg)
}

func (s *session) close() error {
	s.state = outside
	s.script = nil
	s.addon = nil
	return nil
}

// missingEnd handles a section that was not closed by %end. Versions up to
// F28 accept it with a warning; later ones require the terminator.
func (s *session) missingEnd() error {
	name := directive(strings.TrimSpace(s.header.text))
	if version.Resolve(s.v) >= version.RHEL8 {
		return s.errorAt(s.header, kserrors.New(kserrors.Parse, "section %s does not end with %s", name, endDirective))
	}
	s.warner(s.header)(kserrors.Deprecation, "section %s does not end with %s; this will be an error in future versions", name, endDirective)
	return s.close()
}

func (s *session) finish() error {
	if s.state == outside {
		return nil
	}
	return s.missingEnd()
}

// include expands an %include directive, or records it when includes are
// not followed.
func (s *session) include(l line, text string) error {
	tokens, err := tokenize(text)
	if err != nil {
		return s.errorAt(l, err)
	}
	if len(tokens) != 2 {
		return s.errorAt(l, kserrors.New(kserrors.Parse, "the %s directive requires exactly one path", includeDirective))
	}
	name := tokens[1]
	logger := ctxlog.FromContext(s.ctx)

	if !s.p.followIncludes {
		logger.Debug("Keeping include without reading it.", "path", name, "line", l.num)
		s.p.h.AddInclude(name)
		return nil
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.src.dir, path)
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return s.errorAt(l, kserrors.Wrap(kserrors.Generic, err, "unable to resolve include %s", name))
	}

	for _, src := range s.stack {
		if src.path == path {
			return s.errorAt(l, kserrors.New(kserrors.Parse, "include cycle detected: %s", s.chain(path)))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if s.p.missingIncludeFatal {
			return s.errorAt(l, kserrors.Wrap(kserrors.Parse, err, "unable to open include file %s", name))
		}
		s.warner(l)(kserrors.General, "ignoring include file %s: %v", name, err)
		return nil
	}

	logger.Debug("Following include.", "path", path, "line", l.num)
	s.stack = append(s.stack, &source{name: name, path: path, dir: filepath.Dir(path), lines: splitLines(string(data))})
	return nil
}

// chain renders the inclusion path that leads back to path.
func (s *session) chain(path string) string {
	var names []string
	for _, src := range s.stack {
		switch {
		case src.name != "":
			names = append(names, src.name)
		case src.path != "":
			names = append(names, filepath.Base(src.path))
		default:
			names = append(names, "<input>")
		}
	}
	names = append(names, filepath.Base(path))
	return strings.Join(names, " -> ")
}
