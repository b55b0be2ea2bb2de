package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// Syntactic errors
	ErrInvalidProperty     = errors.New("invalid property")
	ErrInvalidVariable     = errors.New("invalid variable")
	ErrInvalidMixin        = errors.New("invalid mixin")
	ErrInvalidMixinInclude = errors.New("invalid mixin include")
	ErrInvalidDirective    = errors.New("invalid directive")

	// Structural errors
	ErrIllegalNesting  = errors.New("illegal nesting")
	ErrOverIndentation = errors.New("illegal indentation")
	ErrMixinNotAtRoot  = errors.New("mixins may only be defined at the root of a document")
	ErrImportNotAtRoot = errors.New("import directives may only be used at the root of a document")
	ErrElseWithoutIf   = errors.New("@else must come after @if")
	ErrTrailingComma   = errors.New("rules can't end in commas")
	ErrNestingTooDeep  = errors.New("document nesting is too deep")

	ErrInvalidOption = errors.New("invalid option")
)

// SyntaxError is a fatal parse failure. Parse is the single enrichment point:
// it attaches the source filename and full source text exactly once before
// returning, so nested code only fills Err, Detail and Line.
type SyntaxError struct {
	Err    error
	Detail string
	Line   int
	File   string
	Source string
}

func (e *SyntaxError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", e.Err, e.Detail)
	}

	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc += " of " + e.File
	}

	return fmt.Sprintf("syntax error on %s: %s", loc, msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// SourceContext returns up to radius source lines on each side of the failing
// line, with the 1-based line number of the first returned line. It returns
// nil when the error carries no source text.
func (e *SyntaxError) SourceContext(radius int) (int, []string) {
	if e.Source == "" || e.Line <= 0 {
		return 0, nil
	}

	lines := strings.Split(strings.ReplaceAll(e.Source, "\r\n", "\n"), "\n")

	start := max(e.Line-radius, 1)

	end := min(e.Line+radius, len(lines))
	if start > len(lines) {
		return 0, nil
	}

	return start, lines[start-1 : end]
}

// syntaxErrf creates a SyntaxError from a sentinel with a formatted detail.
func syntaxErrf(err error, line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
		Line:   line,
	}
}

// syntaxWrap propagates a collaborator error, keeping it on the unwrap chain.
func syntaxWrap(err error, line int) *SyntaxError {
	return &SyntaxError{Err: err, Line: line}
}
