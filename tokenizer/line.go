package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	ErrIndentAtStart           = errors.New("indenting at the beginning of the document is illegal")
	ErrMixedIndentation        = errors.New("indentation can't use both tabs and spaces")
	ErrInconsistentIndentation = errors.New("inconsistent indentation")
)

// Marker characters of the Willow line grammar. The tokenizer only needs the
// comment markers; the rest are defined here so every layer shares one set.
const (
	PropertyChar      = ':'
	ScriptChar        = '='
	VariableChar      = '!'
	CommentChar       = '/'
	SilentCommentChar = '/'
	LoudCommentChar   = '*'
	DirectiveChar     = '@'
	EscapeChar        = '\\'
	MixinDefChar      = '='
	MixinIncludeChar  = '+'
)

// Line is one logical source line: a physical line with its indentation
// stripped, or a multi-line comment with its continuation lines folded in.
type Line struct {
	// Text is the trimmed line content. For a multi-line comment it
	// accumulates continuation text joined by embedded newlines. It is the
	// only field the tokenizer mutates after construction.
	Text string

	// Depth is the nesting level derived from repeated indentation units,
	// not the raw character count.
	Depth int

	// IndentWidth is the number of indentation characters consumed for this
	// line, used to validate comment continuation lines and to compute
	// script offsets.
	IndentWidth int

	LineNo int
	File   string

	// Children is populated once by the depth grouper; the tokenizer always
	// leaves it empty.
	Children []*Line
}

// IsOpenComment reports whether the line is a comment that may still absorb
// continuation lines.
func (l *Line) IsOpenComment() bool {
	if len(l.Text) < 2 || l.Text[0] != CommentChar {
		return false
	}

	return l.Text[1] == SilentCommentChar || l.Text[1] == LoudCommentChar
}

// Error is a tokenizer failure with the source line it was detected on.
type Error struct {
	Err    error
	Line   int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (line %d)", e.Err, e.Line)
	}

	return fmt.Sprintf("%s: %s (line %d)", e.Err, e.Detail, e.Line)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(err error, line int, format string, args ...any) *Error {
	return &Error{Err: err, Line: line, Detail: fmt.Sprintf(format, args...)}
}

// humanIndentation describes an indentation string for diagnostics, e.g.
// "2 spaces" or "1 tab". A string mixing both is quoted verbatim.
func humanIndentation(indentation string) string {
	var noun string

	switch {
	case !strings.ContainsRune(indentation, '\t'):
		noun = "space"
	case !strings.ContainsRune(indentation, ' '):
		noun = "tab"
	default:
		return fmt.Sprintf("%q", indentation)
	}

	if len(indentation) == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", len(indentation), noun)
}
