package expr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Node is one node of a parsed script expression.
type Node interface {
	Pos() Position
}

// Op identifies a unary or binary operator
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpTimes
	OpDivide
	OpModulo
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAnd
	OpOr
	OpNot
	OpNeg
)

// String returns the operator's source form
func (o Op) String() string {
	switch o {
	case OpPlus:
		return "+"
	case OpMinus, OpNeg:
		return "-"
	case OpTimes:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLte:
		return "<="
	case OpGte:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return "?"
	}
}

// Number is a numeric literal with an optional unit, e.g. 12, 1.5em, 50%.
type Number struct {
	Position Position
	Value    decimal.Decimal
	Unit     string
}

func (n *Number) Pos() Position { return n.Position }

// String is a quoted string literal.
type String struct {
	Position Position
	Value    string
}

func (n *String) Pos() Position { return n.Position }

// Color is a hex color literal, stored without the leading '#'.
type Color struct {
	Position Position
	Hex      string
}

func (n *Color) Pos() Position { return n.Position }

// Word is a bare identifier used as a value, e.g. solid, bold.
type Word struct {
	Position Position
	Name     string
}

func (n *Word) Pos() Position { return n.Position }

// Variable is a !name reference, stored without the leading '!'.
type Variable struct {
	Position Position
	Name     string
}

func (n *Variable) Pos() Position { return n.Position }

// UnaryOp applies a prefix operator.
type UnaryOp struct {
	Position Position
	Op       Op
	Operand  Node
}

func (n *UnaryOp) Pos() Position { return n.Position }

// BinaryOp applies an infix operator.
type BinaryOp struct {
	Position Position
	Op       Op
	Left     Node
	Right    Node
}

func (n *BinaryOp) Pos() Position { return n.Position }

// FuncCall is a function invocation, e.g. rgb(255, 0, 0).
type FuncCall struct {
	Position Position
	Name     string
	Args     []Node
}

func (n *FuncCall) Pos() Position { return n.Position }

// List is a sequence of values. Comma reports whether the items were
// separated by commas rather than whitespace.
type List struct {
	Position Position
	Items    []Node
	Comma    bool
}

func (n *List) Pos() Position { return n.Position }

// newNumber splits a raw numeric token into its value and unit.
func newNumber(token Token) (*Number, error) {
	raw := token.Value

	cut := len(raw)
	for cut > 0 && !isDigitByte(raw[cut-1]) {
		cut--
	}

	value, err := decimal.NewFromString(raw[:cut])
	if err != nil {
		return nil, err
	}

	return &Number{
		Position: token.Position,
		Value:    value,
		Unit:     strings.ToLower(raw[cut:]),
	}, nil
}

func isDigitByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}
