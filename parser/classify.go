package parser

import (
	"regexp"
	"strings"

	"github.com/willow-css/willow/expr"
	"github.com/willow-css/willow/tokenizer"
)

var (
	propertyOldRE          = regexp.MustCompile(`^:([^\s=:]+)\s*(=?)(?:\s+|$)(.*)`)
	propertyNewLookaheadRE = regexp.MustCompile(`^[^\s:"]+\s*[=:](\s|$)`)
	propertyNewRE          = regexp.MustCompile(`^([^\s=:]+)(\s*=|:)(?:\s+|$)(.*)`)
	variableRE             = regexp.MustCompile(`^!(\w+)\s*((?:\|\|)?=)\s*(.*)`)
	mixinDefRE             = regexp.MustCompile(`^=\s*([^(]+)(.*)$`)
	mixinIncludeRE         = regexp.MustCompile(`^\+\s*([^(]+)(.*)$`)
)

// parseLine classifies one line by its first significant character and
// produces zero, one, or several nodes. The line's children are not yet
// parsed; the assembler recurses into them afterwards.
func (a *assembler) parseLine(parent parentNode, line *tokenizer.Line, root bool) ([]Node, error) {
	text := line.Text

	switch text[0] {
	case tokenizer.PropertyChar:
		// "::before" and friends are selectors, not properties. Under the
		// new property syntax an old-style header with no value is a
		// selector too.
		if (len(text) > 1 && text[1] == tokenizer.PropertyChar) ||
			(a.opts.PropertySyntax == PropertySyntaxNew && oldPropertyWithoutValue(text)) {
			return single(a.newRule(text, line)), nil
		}

		return a.parseProperty(line, true)
	case tokenizer.VariableChar:
		return a.parseVariable(line)
	case tokenizer.CommentChar:
		return a.parseComment(line)
	case tokenizer.DirectiveChar:
		return a.parseDirective(parent, line, root)
	case tokenizer.EscapeChar:
		// The rest of the line is a selector verbatim, bypassing all
		// further interpretation.
		return single(a.newRule(text[1:], line)), nil
	case tokenizer.MixinDefChar:
		return a.parseMixinDef(line)
	case tokenizer.MixinIncludeChar:
		// A lone '+' or '+ foo' is a selector, e.g. the sibling combinator.
		if len(text) == 1 || text[1] == ' ' || text[1] == '\t' {
			return single(a.newRule(text, line)), nil
		}

		return a.parseMixinInclude(line)
	default:
		if propertyNewLookaheadRE.MatchString(text) {
			return a.parseProperty(line, false)
		}

		return single(a.newRule(text, line)), nil
	}
}

func single(n Node) []Node {
	return []Node{n}
}

func (a *assembler) position(line *tokenizer.Line) Position {
	return Position{Line: line.LineNo, File: line.File}
}

// newRule builds a Rule from selector text, splitting the comma-separated
// list and flagging a trailing comma as a continuation header.
func (a *assembler) newRule(text string, line *tokenizer.Line) *Rule {
	continued := strings.HasSuffix(text, ",")

	var selectors []string

	for part := range strings.SplitSeq(strings.TrimSuffix(text, ","), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			selectors = append(selectors, part)
		}
	}

	return &Rule{
		container: container{base: base{pos: a.position(line)}},
		Selectors: selectors,
		Continued: continued,
	}
}

func oldPropertyWithoutValue(text string) bool {
	m := propertyOldRE.FindStringSubmatch(text)
	return m != nil && m[3] == ""
}

func (a *assembler) parseProperty(line *tokenizer.Line, old bool) ([]Node, error) {
	if old && a.opts.PropertySyntax == PropertySyntaxNew {
		return nil, syntaxErrf(ErrInvalidProperty, line.LineNo,
			"can't use the old property syntax when the new syntax is required")
	}

	if !old && a.opts.PropertySyntax == PropertySyntaxOld {
		return nil, syntaxErrf(ErrInvalidProperty, line.LineNo,
			"can't use the new property syntax when the old syntax is required")
	}

	re := propertyNewRE
	if old {
		re = propertyOldRE
	}

	m := re.FindStringSubmatch(line.Text)
	if m == nil {
		return nil, syntaxErrf(ErrInvalidProperty, line.LineNo, "%q", line.Text)
	}

	name, eq, value := m[1], strings.TrimSpace(m[2]), m[3]

	if value == "" && len(line.Children) == 0 {
		return nil, syntaxErrf(ErrInvalidProperty, line.LineNo, "%q has no value", line.Text)
	}

	prop := &Property{
		container: container{base: base{pos: a.position(line)}},
		Name:      name,
		Old:       old,
	}

	scripted := strings.HasPrefix(eq, string(tokenizer.ScriptChar))
	if scripted && value != "" {
		node, err := expr.Parse(value, line.LineNo, line.IndentWidth+strings.Index(line.Text, value))
		if err != nil {
			return nil, syntaxWrap(err, line.LineNo)
		}

		prop.Expr = node
	} else {
		prop.Value = value
	}

	return single(prop), nil
}

func (a *assembler) parseVariable(line *tokenizer.Line) ([]Node, error) {
	if len(line.Children) > 0 {
		return nil, syntaxErrf(ErrIllegalNesting, line.Children[0].LineNo, "nothing may be nested beneath variable declarations")
	}

	m := variableRE.FindStringSubmatch(line.Text)
	if m == nil || m[3] == "" {
		return nil, syntaxErrf(ErrInvalidVariable, line.LineNo, "%q", line.Text)
	}

	name, op, value := m[1], m[2], m[3]

	node, err := expr.Parse(value, line.LineNo, line.IndentWidth+strings.Index(line.Text, value))
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	return single(&Variable{
		base:    base{pos: a.position(line)},
		Name:    name,
		Expr:    node,
		Guarded: op == "||=",
	}), nil
}

func (a *assembler) parseComment(line *tokenizer.Line) ([]Node, error) {
	if len(line.Text) < 2 ||
		(line.Text[1] != tokenizer.SilentCommentChar && line.Text[1] != tokenizer.LoudCommentChar) {
		return single(a.newRule(line.Text, line)), nil
	}

	silent := line.Text[1] == tokenizer.SilentCommentChar

	text := strings.TrimPrefix(line.Text[2:], " ")
	if silent && strings.Contains(text, "\n//") {
		// Folded silent-comment runs keep per-line markers; drop them.
		parts := strings.Split(text, "\n")
		for i, part := range parts[1:] {
			parts[i+1] = strings.TrimPrefix(strings.TrimPrefix(part, "//"), " ")
		}

		text = strings.Join(parts, "\n")
	}

	return single(&Comment{
		base:   base{pos: a.position(line)},
		Text:   text,
		Silent: silent,
	}), nil
}

func (a *assembler) parseMixinDef(line *tokenizer.Line) ([]Node, error) {
	m := mixinDefRE.FindStringSubmatch(line.Text)
	if m == nil {
		return nil, syntaxErrf(ErrInvalidMixin, line.LineNo, "%q", line.Text[1:])
	}

	name, argText := strings.TrimSpace(m[1]), m[2]

	params, err := expr.ParseMixinDefArgList(argText, line.LineNo, line.IndentWidth+len(line.Text)-len(argText))
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	return single(&MixinDef{
		container: container{base: base{pos: a.position(line)}},
		Name:      name,
		Params:    params,
	}), nil
}

func (a *assembler) parseMixinInclude(line *tokenizer.Line) ([]Node, error) {
	m := mixinIncludeRE.FindStringSubmatch(line.Text)
	if m == nil {
		return nil, syntaxErrf(ErrInvalidMixinInclude, line.LineNo, "%q", line.Text)
	}

	name, argText := strings.TrimSpace(m[1]), m[2]

	args, err := expr.ParseMixinIncludeArgList(argText, line.LineNo, line.IndentWidth+len(line.Text)-len(argText))
	if err != nil {
		return nil, syntaxWrap(err, line.LineNo)
	}

	if len(line.Children) > 0 {
		return nil, syntaxErrf(ErrIllegalNesting, line.Children[0].LineNo, "nothing may be nested beneath mixin includes")
	}

	return single(&MixinInclude{
		base: base{pos: a.position(line)},
		Name: name,
		Args: args,
	}), nil
}
