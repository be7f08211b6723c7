// Package diag provides the located, pretty-printable error type every
// stage of the SceneLang front end (lexer, parser, scene builder) reports
// through.
package diag

import (
	"fmt"
	"strings"
)

// Location identifies a single point in a SceneLang source file: which
// file, which line (1-based), and which column (1-based, counting a tab as
// advancing to the next multiple-of-8 column the way a terminal would).
// Line 0 is reserved for command-line identifier overrides, which have no
// real source file behind them.
type Location struct {
	File string
	Line int
	Col  int
}

// String renders a location the way compilers conventionally do:
// "file:line:col".
func (l Location) String() string {
	if l.Line == 0 {
		return fmt.Sprintf("%s:<command line>", l.File)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Error is a located SceneLang front-end error: a lexical, syntax or
// semantic problem pinned to the exact place in the source that caused it.
// HighlightLength is how many source characters the offending token spans,
// so Render can underline more than a single character.
type Error struct {
	Location        Location
	Message         string
	HighlightLength int
}

// NewError returns an Error with a single-character highlight.
func NewError(loc Location, format string, args ...any) *Error {
	return &Error{Location: loc, Message: fmt.Sprintf(format, args...), HighlightLength: 1}
}

// WithHighlight returns a copy of e with HighlightLength replaced.
func (e *Error) WithHighlight(n int) *Error {
	e2 := *e
	if n < 1 {
		n = 1
	}
	e2.HighlightLength = n
	return &e2
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Render pretty-prints e against the full source text it was raised
// against: the offending source line, followed by a caret underline of
// HighlightLength characters starting at Location.Col.
func Render(e *Error, source string) string {
	lines := strings.Split(source, "\n")
	if e.Location.Line < 1 || e.Location.Line > len(lines) {
		return e.Error()
	}
	line := lines[e.Location.Line-1]
	col := e.Location.Col
	if col < 1 {
		col = 1
	}
	n := e.HighlightLength
	if n < 1 {
		n = 1
	}
	underline := strings.Repeat(" ", col-1) + strings.Repeat("^", n)
	return fmt.Sprintf("%s\n%s\n%s\n%s", e.Error(), line, underline, e.Message)
}
