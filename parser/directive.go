package parser

import (
	"regexp"
	"strings"

	"github.com/willow-css/willow/expr"
	"github.com/willow-css/willow/tokenizer"
)

var (
	literalImportRE = regexp.MustCompile(`^(url\(|["'])`)
	importSplitRE   = regexp.MustCompile(`,\s*`)
	forRE           = regexp.MustCompile(`^(\S+)\s+from\s+(.+)\s+(to|through)\s+(.+)$`)
	forFromRE       = regexp.MustCompile(`^\S+\s+from\s+.+`)
	elseIfRE        = regexp.MustCompile(`^if\s+(.+)`)
)

// parseDirective splits an @-line into keyword and remainder and dispatches
// on the keyword. Unrecognized directives pass through unparsed.
func (a *assembler) parseDirective(parent parentNode, line *tokenizer.Line, root bool) ([]Node, error) {
	rest := line.Text[1:]

	name := rest
	value := ""

	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		name = rest[:idx]
		value = strings.TrimLeft(rest[idx:], " \t")
	}

	// value, when present, is a suffix of the trimmed line text.
	offset := line.IndentWidth + len(line.Text) - len(value)

	switch name {
	case "import":
		return a.parseImport(line, value)
	case "for":
		return a.parseFor(line, value)
	case "else":
		return a.parseElse(parent, line, value)
	case "while":
		node, err := a.requireExpression(line, name, value, offset)
		if err != nil {
			return nil, err
		}

		return single(&WhileDirective{
			container: container{base: base{pos: a.position(line)}},
			Expr:      node,
		}), nil
	case "if":
		node, err := a.requireExpression(line, name, value, offset)
		if err != nil {
			return nil, err
		}

		return single(&IfDirective{
			container: container{base: base{pos: a.position(line)}},
			Expr:      node,
		}), nil
	case "debug":
		node, err := a.requireExpression(line, name, value, offset)
		if err != nil {
			return nil, err
		}

		if len(line.Children) > 0 {
			return nil, syntaxErrf(ErrIllegalNesting, line.Children[0].LineNo, "nothing may be nested beneath debug directives")
		}

		return single(&DebugDirective{
			base: base{pos: a.position(line)},
			Expr: node,
		}), nil
	default:
		return single(&GenericDirective{
			container: container{base: base{pos: a.position(line)}},
			Raw:       line.Text,
		}), nil
	}
}

func (a *assembler) requireExpression(line *tokenizer.Line, name, value string, offset int) (expr.Node, error) {
	if value == "" {
		return nil, syntaxErrf(ErrInvalidDirective, line.LineNo, "invalid %s directive '@%s': expected expression", name, name)
	}

	node, err := expr.Parse(value, line.LineNo, offset)
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	return node, nil
}

// parseImport produces one ImportDirective per comma-separated file
// reference. A remainder that looks like a literal CSS import (url form or
// quoted string) falls through as a generic directive for the generator.
func (a *assembler) parseImport(line *tokenizer.Line, value string) ([]Node, error) {
	if value == "" {
		return nil, syntaxErrf(ErrInvalidDirective, line.LineNo, "invalid import directive: expected file reference")
	}

	if literalImportRE.MatchString(value) {
		return single(&GenericDirective{
			container: container{base: base{pos: a.position(line)}},
			Raw:       line.Text,
		}), nil
	}

	if len(line.Children) > 0 {
		return nil, syntaxErrf(ErrIllegalNesting, line.Children[0].LineNo, "nothing may be nested beneath import directives")
	}

	var nodes []Node

	for _, ref := range importSplitRE.Split(value, -1) {
		if ref == "" {
			continue
		}

		nodes = append(nodes, &ImportDirective{
			base: base{pos: a.position(line)},
			Path: ref,
		})
	}

	return nodes, nil
}

func (a *assembler) parseFor(line *tokenizer.Line, value string) ([]Node, error) {
	m := forRE.FindStringSubmatch(value)
	if m == nil {
		var expected string

		switch {
		case strings.TrimSpace(value) == "":
			expected = "variable name"
		case !forFromRE.MatchString(value):
			expected = "'from <expr>'"
		default:
			expected = "'to <expr>' or 'through <expr>'"
		}

		return nil, syntaxErrf(ErrInvalidDirective, line.LineNo, "invalid for directive '@for %s': expected %s", value, expected)
	}

	name, fromText, boundary, toText := m[1], m[2], m[3], m[4]

	if !expr.IsValidVariable(name) {
		return nil, syntaxErrf(ErrInvalidVariable, line.LineNo, "%q", name)
	}

	from, err := expr.Parse(fromText, line.LineNo, line.IndentWidth+strings.Index(line.Text, fromText))
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	to, err := expr.Parse(toText, line.LineNo, line.IndentWidth+strings.LastIndex(line.Text, toText))
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	return single(&ForDirective{
		container: container{base: base{pos: a.position(line)}},
		Var:       name[1:],
		From:      from,
		To:        to,
		Inclusive: boundary == "through",
	}), nil
}

// parseElse augments the preceding @if sibling instead of producing a node.
// Its children are parsed here, against the new branch.
func (a *assembler) parseElse(parent parentNode, line *tokenizer.Line, value string) ([]Node, error) {
	children := parent.Children()

	var prev Node
	if len(children) > 0 {
		prev = children[len(children)-1]
	}

	ifNode, ok := prev.(*IfDirective)
	if !ok {
		return nil, syntaxErrf(ErrElseWithoutIf, line.LineNo, "")
	}

	branch := &IfDirective{container: container{base: base{pos: a.position(line)}}}

	if value != "" {
		m := elseIfRE.FindStringSubmatch(value)
		if m == nil {
			return nil, syntaxErrf(ErrInvalidDirective, line.LineNo, "invalid else directive '@else %s': expected 'if <expr>'", value)
		}

		cond, err := expr.Parse(m[1], line.LineNo, line.IndentWidth+strings.LastIndex(line.Text, m[1]))
		if err != nil {
			return nil, syntaxWrap(err, line.LineNo)
		}

		branch.Expr = cond
	}

	if err := a.appendChildren(branch, line.Children, false); err != nil {
		return nil, err
	}

	ifNode.addElse(branch)

	return nil, nil
}
