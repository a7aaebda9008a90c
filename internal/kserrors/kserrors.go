// Package kserrors defines the structured errors and warnings produced while
// parsing kickstart documents, together with the shared location formatter
// every call site uses.
package kserrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// Generic marks an internal precondition failure or API misuse.
	Generic Kind = iota
	// Parse marks a structural problem in the document.
	Parse
	// Value marks malformed arguments to a recognized command.
	Value
	// Version marks an unrecognized version identifier.
	Version
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case Value:
		return "value error"
	case Version:
		return "version error"
	default:
		return "error"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrGeneric = &Error{Kind: Generic}
	ErrParse   = &Error{Kind: Parse}
	ErrValue   = &Error{Kind: Value}
	ErrVersion = &Error{Kind: Version}
)

// Error is a kickstart error with optional source location.
type Error struct {
	Kind Kind
	File string // empty for the main document
	Line int    // 1-based; 0 when unknown
	Msg  string
	Err  error
}

// New builds an Error of the given kind without location.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that keeps err as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	return FormatMessage(e.File, e.Line, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Line == 0 && t.Kind == e.Kind
}

// At attaches a location to err when it is an *Error without one. Other
// errors are wrapped as Generic errors at that location.
func At(err error, file string, line int) error {
	if err == nil {
		return nil
	}
	var kerr *Error
	if errors.As(err, &kerr) {
		if kerr.Line != 0 {
			return err
		}
		located := *kerr
		located.File = file
		located.Line = line
		return &located
	}
	return &Error{Kind: Generic, File: file, Line: line, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or Generic.
func KindOf(err error) Kind {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Kind
	}
	return Generic
}

// FormatMessage renders a message with its location. Messages from the main
// document read "line <n>: <msg>"; inside an included file the file name
// is prefixed.
func FormatMessage(file string, line int, msg string) string {
	switch {
	case line <= 0 && file == "":
		return msg
	case line <= 0:
		return fmt.Sprintf("%s: %s", file, msg)
	case file == "":
		return fmt.Sprintf("line %d: %s", line, msg)
	default:
		return fmt.Sprintf("%s line %d: %s", file, line, msg)
	}
}
