package expr

import (
	"fmt"
	"regexp"
)

var validVariableRE = regexp.MustCompile(`^!\w+$`)

// IsValidVariable reports whether s is a well-formed !name variable
// reference, as required for loop variables.
func IsValidVariable(s string) bool {
	return validVariableRE.MatchString(s)
}

// Parse parses one embedded script fragment into an expression tree. line and
// offset locate the fragment within the enclosing document so that error
// positions stay accurate.
func Parse(text string, line, offset int) (Node, error) {
	tokens, err := NewLexer(text, line, offset).AllTokens()
	if err != nil {
		return nil, err
	}

	return parseTokens(tokens)
}

// parseTokens parses a token slice whose final token is EOF.
func parseTokens(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseCommaList()
	if err != nil {
		return nil, err
	}

	if p.current().Type != EOF {
		return nil, p.unexpected()
	}

	return node, nil
}

// Internal recursive-descent parser. Precedence, loosest first: comma list,
// space list, or, and, comparison, additive, multiplicative, unary, primary.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	token := p.tokens[p.pos]
	if token.Type != EOF {
		p.pos++
	}

	return token
}

func (p *parser) unexpected() error {
	token := p.current()
	if token.Type == EOF {
		return fmt.Errorf("%w at line %d, column %d", ErrUnexpectedEnd, token.Position.Line, token.Position.Column)
	}

	return fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedToken, token.Value, token.Position.Line, token.Position.Column)
}

func (p *parser) parseCommaList() (Node, error) {
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}

	if p.current().Type != COMMA {
		return first, nil
	}

	items := []Node{first}

	for p.current().Type == COMMA {
		p.advance()

		item, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &List{Position: first.Pos(), Items: items, Comma: true}, nil
}

func (p *parser) parseSpaceList() (Node, error) {
	first, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !canStartOperand(p.current().Type) {
		return first, nil
	}

	items := []Node{first}

	for canStartOperand(p.current().Type) {
		item, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &List{Position: first.Pos(), Items: items}, nil
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == OR {
		p.advance()

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Position: left.Pos(), Op: OpOr, Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.current().Type == AND {
		p.advance()

		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Position: left.Pos(), Op: OpAnd, Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	op, ok := comparisonOp(p.current().Type)
	if !ok {
		return left, nil
	}

	p.advance()

	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{Position: left.Pos(), Op: op, Left: left, Right: right}, nil
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op Op

		switch p.current().Type {
		case PLUS:
			op = OpPlus
		case MINUS:
			op = OpMinus
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Position: left.Pos(), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		var op Op

		switch p.current().Type {
		case TIMES:
			op = OpTimes
		case DIVIDE:
			op = OpDivide
		case MODULO:
			op = OpModulo
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Position: left.Pos(), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	switch p.current().Type {
	case MINUS:
		token := p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryOp{Position: token.Position, Op: OpNeg, Operand: operand}, nil
	case NOT:
		token := p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryOp{Position: token.Position, Op: OpNot, Operand: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (Node, error) {
	token := p.current()

	switch token.Type {
	case NUMBER:
		p.advance()
		return newNumber(token)
	case STRING:
		p.advance()
		return &String{Position: token.Position, Value: token.Value}, nil
	case COLOR:
		p.advance()
		return &Color{Position: token.Position, Hex: token.Value}, nil
	case VARIABLE:
		p.advance()
		return &Variable{Position: token.Position, Name: token.Value}, nil
	case IDENT:
		p.advance()

		if p.current().Type == LPAREN {
			return p.parseCallArgs(token)
		}

		return &Word{Position: token.Position, Name: token.Value}, nil
	case LPAREN:
		p.advance()

		inner, err := p.parseCommaList()
		if err != nil {
			return nil, err
		}

		if p.current().Type != RPAREN {
			return nil, p.unexpected()
		}

		p.advance()

		return inner, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) parseCallArgs(name Token) (Node, error) {
	p.advance() // consume '('

	call := &FuncCall{Position: name.Position, Name: name.Value}

	if p.current().Type == RPAREN {
		p.advance()
		return call, nil
	}

	for {
		arg, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		switch p.current().Type {
		case COMMA:
			p.advance()
		case RPAREN:
			p.advance()
			return call, nil
		default:
			return nil, p.unexpected()
		}
	}
}

// canStartOperand reports whether a token type can begin a value in a
// space-separated list.
func canStartOperand(t TokenType) bool {
	switch t {
	case NUMBER, STRING, COLOR, VARIABLE, IDENT, LPAREN:
		return true
	default:
		return false
	}
}

func comparisonOp(t TokenType) (Op, bool) {
	switch t {
	case EQUAL:
		return OpEq, true
	case NOT_EQUAL:
		return OpNeq, true
	case LESS_THAN:
		return OpLt, true
	case GREATER_THAN:
		return OpGt, true
	case LESS_EQUAL:
		return OpLte, true
	case GREATER_EQUAL:
		return OpGte, true
	default:
		return 0, false
	}
}
