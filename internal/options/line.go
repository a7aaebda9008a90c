package options

import (
	"sort"
	"strconv"
	"strings"
)

// Line builds the canonical text of one command or section header line.
// Options are written in the order they are added.
type Line struct {
	parts []string
}

// NewLine starts a line with keyword followed by positional words.
func NewLine(keyword string, positional ...string) *Line {
	l := &Line{parts: []string{keyword}}
	for _, p := range positional {
		if p != "" {
			l.parts = append(l.parts, Quote(p))
		}
	}
	return l
}

// Arg appends a positional word.
func (l *Line) Arg(s string) *Line {
	if s != "" {
		l.parts = append(l.parts, Quote(s))
	}
	return l
}

// Args appends positional words.
func (l *Line) Args(ss []string) *Line {
	for _, s := range ss {
		l.Arg(s)
	}
	return l
}

// Flag appends --name when on.
func (l *Line) Flag(name string, on bool) *Line {
	if on {
		l.parts = append(l.parts, "--"+name)
	}
	return l
}

// Str appends --name=value when value is not empty.
func (l *Line) Str(name, value string) *Line {
	if value != "" {
		l.parts = append(l.parts, "--"+name+"="+Quote(value))
	}
	return l
}

// Int appends --name=n when n is set.
func (l *Line) Int(name string, n *int) *Line {
	if n != nil {
		l.parts = append(l.parts, "--"+name+"="+strconv.Itoa(*n))
	}
	return l
}

// Num appends --name=n when n is not zero.
func (l *Line) Num(name string, n int) *Line {
	if n != 0 {
		l.parts = append(l.parts, "--"+name+"="+strconv.Itoa(n))
	}
	return l
}

// BoolValue appends --name=yes|no when b is set.
func (l *Line) BoolValue(name string, b *bool) *Line {
	if b != nil {
		v := "no"
		if *b {
			v = "yes"
		}
		l.parts = append(l.parts, "--"+name+"="+v)
	}
	return l
}

// List appends --name=a,b when items is not empty.
func (l *Line) List(name string, items []string) *Line {
	if len(items) > 0 {
		l.parts = append(l.parts, "--"+name+"="+Quote(strings.Join(items, ",")))
	}
	return l
}

// Map appends --name=k=v,... with keys sorted.
func (l *Line) Map(name string, m map[string]string) *Line {
	if len(m) == 0 {
		return l
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m[k]
	}
	sep := ","
	for _, v := range m {
		if strings.Contains(v, ",") {
			sep = ";"
		}
	}
	l.parts = append(l.parts, "--"+name+"="+Quote(strings.Join(pairs, sep)))
	return l
}

// Raw appends text verbatim.
func (l *Line) Raw(text string) *Line {
	if text = strings.TrimSpace(text); text != "" {
		l.parts = append(l.parts, text)
	}
	return l
}

// String returns the line terminated by a newline.
func (l *Line) String() string {
	return strings.Join(l.parts, " ") + "\n"
}

// Quote wraps s in double quotes when the shell-style tokenizer would
// otherwise split or drop part of it.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"'\\#;") {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
