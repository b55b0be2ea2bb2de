package tokenizer

import (
	"iter"
	"strings"
)

// LineIterator uses Go 1.24 iterator pattern
type LineIterator iter.Seq2[*Line, error]

// LineTokenizer converts raw indented source text into logical lines.
type LineTokenizer struct {
	input   string
	options Options
}

// Options are options for the tokenizer
type Options struct {
	// Filename is attached to every line for diagnostics.
	Filename string
	// StartLine is the line number of the first physical line (defaults to 1).
	StartLine int
}

// NewLineTokenizer creates a new LineTokenizer
func NewLineTokenizer(input string, options ...Options) *LineTokenizer {
	opts := Options{StartLine: 1}
	if len(options) > 0 {
		opts = options[0]
		if opts.StartLine == 0 {
			opts.StartLine = 1
		}
	}

	return &LineTokenizer{
		input:   input,
		options: opts,
	}
}

// Lines returns an iterator of logical lines. A line is not yielded until it
// can no longer absorb comment continuations, so yielded lines are final.
func (t *LineTokenizer) Lines() LineIterator {
	return func(yield func(*Line, error) bool) {
		tk := &tokenizer{
			file: t.options.Filename,
		}

		var last *Line

		// The final newline terminates the last line rather than opening a
		// blank one, so it must not reach the open-comment folding path.
		src := strings.TrimSuffix(normalizeNewlines(t.input), "\n")

		for i, raw := range strings.Split(src, "\n") {
			next, err := tk.consume(raw, t.options.StartLine+i, last)
			if err != nil {
				yield(nil, err)
				return
			}

			if next == nil || next == last {
				continue
			}

			if last != nil && !yield(last, nil) {
				return
			}

			last = next
		}

		if last != nil {
			yield(last, nil)
		}
	}
}

// AllLines gets all lines as a slice
func (t *LineTokenizer) AllLines() ([]*Line, error) {
	lines := make([]*Line, 0, 16)

	for line, err := range t.Lines() {
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// Tokenize is a convenience wrapper that tokenizes input in one call.
func Tokenize(input string, options ...Options) ([]*Line, error) {
	return NewLineTokenizer(input, options...).AllLines()
}

// Internal tokenizer implementation
type tokenizer struct {
	file string

	// tabStr is the reference indentation unit, fixed by the first line that
	// carries any leading whitespace.
	tabStr string

	// commentTab is the indentation of the current comment's first
	// continuation line; continuation lines must repeat it exactly.
	commentTab string
}

// consume processes one physical line. It returns the new logical line, or
// last when the physical line was folded into it (or dropped while blank).
func (tk *tokenizer) consume(raw string, lineNo int, last *Line) (*Line, error) {
	if strings.TrimSpace(raw) == "" {
		// Blank lines are dropped, except inside an open multi-line comment
		// where they survive as embedded newlines.
		if last != nil && last.IsOpenComment() {
			last.Text += "\n"
		}

		return last, nil
	}

	ws := raw[:indentWidth(raw)]

	if ws != "" && tk.tabStr == "" {
		// The indentation unit is not fixed yet; the line may still be a
		// continuation of a comment sitting on the first column.
		if tk.commentTab == "" {
			tk.commentTab = ws
		}

		folded, err := tk.tryComment(raw, last, "", lineNo)
		if err != nil {
			return nil, err
		}

		if folded {
			return last, nil
		}

		tk.commentTab = ""

		if last == nil {
			return nil, newError(ErrIndentAtStart, lineNo, "")
		}

		if strings.ContainsRune(ws, ' ') && strings.ContainsRune(ws, '\t') {
			return nil, newError(ErrMixedIndentation, lineNo, "")
		}

		tk.tabStr = ws
	}

	if tk.tabStr == "" {
		folded, err := tk.tryComment(raw, last, "", lineNo)
		if err != nil {
			return nil, err
		}

		if folded {
			return last, nil
		}

		tk.commentTab = ""

		return &Line{Text: strings.TrimSpace(raw), LineNo: lineNo, File: tk.file}, nil
	}

	if tk.commentTab == "" {
		tk.commentTab = ws
	}

	expected := ""
	if last != nil {
		expected = strings.Repeat(tk.tabStr, last.Depth)
	}

	folded, err := tk.tryComment(raw, last, expected, lineNo)
	if err != nil {
		return nil, err
	}

	if folded {
		return last, nil
	}

	tk.commentTab = ""

	depth := strings.Count(ws, tk.tabStr)
	if strings.Repeat(tk.tabStr, depth) != ws {
		return nil, newError(ErrInconsistentIndentation, lineNo,
			"%s used for indentation, but the rest of the document was indented using %s",
			humanIndentation(ws), humanIndentation(tk.tabStr))
	}

	return &Line{
		Text:        strings.TrimSpace(raw),
		Depth:       depth,
		IndentWidth: len(ws),
		LineNo:      lineNo,
		File:        tk.file,
	}, nil
}

// tryComment folds raw into last when last is an open comment and raw is a
// valid continuation line. Continuation content must sit at least one
// whitespace character deeper than the start of the comment.
func (tk *tokenizer) tryComment(raw string, last *Line, expected string, lineNo int) (bool, error) {
	if last == nil || !last.IsOpenComment() {
		return false, nil
	}

	if !strings.HasPrefix(raw, expected) {
		return false, nil
	}

	rest := raw[len(expected):]

	// A silent comment at the comment's own depth continues an open silent
	// comment, so blank-separated comment runs stay one block.
	if len(last.Text) > 1 && last.Text[1] == SilentCommentChar &&
		strings.HasPrefix(rest, "//") {
		last.Text += "\n" + strings.TrimRight(rest, " \t")
		tk.commentTab = ""

		return true, nil
	}

	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return false, nil
	}

	if !strings.HasPrefix(raw, tk.commentTab) {
		return false, newError(ErrInconsistentIndentation, lineNo,
			"previous line was indented by %s, but this line was indented by %s",
			humanIndentation(tk.commentTab), humanIndentation(raw[:indentWidth(raw)]))
	}

	last.Text += "\n" + strings.TrimRight(raw[len(tk.commentTab):], " \t")

	return true, nil
}

// normalizeNewlines folds all line terminators into a single newline form.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// indentWidth returns the number of leading whitespace characters.
func indentWidth(s string) int {
	for i := range len(s) {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}

	return len(s)
}
