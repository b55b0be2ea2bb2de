package expr

import (
	"fmt"
	"slices"
	"strings"

	pc "github.com/shibukawa/parsercombinator"
)

// Param is one declared mixin parameter, with an optional default expression.
type Param struct {
	Name    string
	Default Node
}

// Arg is one mixin include argument. Name is empty for positional arguments.
type Arg struct {
	Name  string
	Value Node
}

func primitive(typeName string, types ...TokenType) pc.Parser[Token] {
	return func(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// exprSpan consumes a balanced token run up to a top-level comma or the
// closing parenthesis.
func exprSpan(pctx *pc.ParseContext[Token], tokens []pc.Token[Token]) (int, []pc.Token[Token], error) {
	depth := 0
	n := 0

loop:
	for _, t := range tokens {
		switch t.Val.Type {
		case LPAREN:
			depth++
		case RPAREN:
			if depth == 0 {
				break loop
			}

			depth--
		case COMMA:
			if depth == 0 {
				break loop
			}
		}

		n++
	}

	if n == 0 {
		return 0, nil, pc.ErrNotMatch
	}

	return n, tokens[:n], nil
}

var (
	variableTok   = primitive("variable", VARIABLE)
	colonTok      = primitive("colon", COLON)
	commaTok      = primitive("comma", COMMA)
	parenOpenTok  = primitive("parenOpen", LPAREN)
	parenCloseTok = primitive("parenClose", RPAREN)

	defParam = pc.Seq(
		variableTok,
		pc.Optional(pc.Seq(colonTok, pc.Parser[Token](exprSpan))),
	)
	defArgList = pc.Seq(
		parenOpenTok,
		pc.Optional(pc.Seq(defParam, pc.ZeroOrMore("params", pc.Seq(commaTok, defParam)))),
		parenCloseTok,
		pc.EOS[Token](),
	)

	incArg = pc.Or(
		pc.Seq(variableTok, colonTok, pc.Parser[Token](exprSpan)),
		pc.Parser[Token](exprSpan),
	)
	incArgList = pc.Seq(
		parenOpenTok,
		pc.Optional(pc.Seq(incArg, pc.ZeroOrMore("args", pc.Seq(commaTok, incArg)))),
		parenCloseTok,
		pc.EOS[Token](),
	)
)

// ParseMixinDefArgList parses a mixin definition's parenthesized parameter
// list, e.g. "(!width, !color: #fff)". An empty text declares no parameters.
func ParseMixinDefArgList(text string, line, offset int) ([]Param, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	tokens, err := lexArgList(text, line, offset, defArgList)
	if err != nil {
		return nil, err
	}

	var params []Param

	for _, group := range splitTopLevel(tokens) {
		param := Param{Name: group[0].Value}

		if len(group) > 1 {
			def, err := parseSpan(group[2:])
			if err != nil {
				return nil, err
			}

			param.Default = def
		}

		params = append(params, param)
	}

	return params, nil
}

// ParseMixinIncludeArgList parses a mixin include's parenthesized argument
// list. Arguments are positional expressions or "!name: expr" keyword pairs.
func ParseMixinIncludeArgList(text string, line, offset int) ([]Arg, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	tokens, err := lexArgList(text, line, offset, incArgList)
	if err != nil {
		return nil, err
	}

	var args []Arg

	for _, group := range splitTopLevel(tokens) {
		if len(group) > 2 && group[0].Type == VARIABLE && group[1].Type == COLON {
			value, err := parseSpan(group[2:])
			if err != nil {
				return nil, err
			}

			args = append(args, Arg{Name: group[0].Value, Value: value})

			continue
		}

		value, err := parseSpan(group)
		if err != nil {
			return nil, err
		}

		args = append(args, Arg{Value: value})
	}

	return args, nil
}

// lexArgList tokenizes an argument list and validates its shape against the
// given grammar, returning the tokens between the outer parentheses.
func lexArgList(text string, line, offset int, grammar pc.Parser[Token]) ([]Token, error) {
	tokens, err := NewLexer(text, line, offset).AllTokens()
	if err != nil {
		return nil, err
	}

	tokens = tokens[:len(tokens)-1] // drop EOF

	pctx := pc.NewParseContext[Token]()
	if _, _, err := grammar(pctx, toParserTokens(tokens)); err != nil {
		return nil, fmt.Errorf("%w: %q at line %d", ErrInvalidArgList, strings.TrimSpace(text), line)
	}

	return tokens[1 : len(tokens)-1], nil
}

// splitTopLevel splits tokens on commas outside any parentheses.
func splitTopLevel(tokens []Token) [][]Token {
	var groups [][]Token

	depth := 0
	start := 0

	for i, t := range tokens {
		switch t.Type {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
		case COMMA:
			if depth == 0 {
				groups = append(groups, tokens[start:i])
				start = i + 1
			}
		}
	}

	if start < len(tokens) {
		groups = append(groups, tokens[start:])
	}

	return groups
}

// parseSpan parses a token sub-slice as a complete expression.
func parseSpan(tokens []Token) (Node, error) {
	span := make([]Token, 0, len(tokens)+1)
	span = append(span, tokens...)

	end := Position{}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		end = Position{
			Line:   last.Position.Line,
			Column: last.Position.Column + len(last.Value),
			Offset: last.Position.Offset + len(last.Value),
		}
	}

	span = append(span, Token{Type: EOF, Position: end})

	return parseTokens(span)
}

func toParserTokens(tokens []Token) []pc.Token[Token] {
	results := make([]pc.Token[Token], len(tokens))

	for i, token := range tokens {
		results[i] = pc.Token[Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
	}

	return results
}
