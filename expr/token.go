package expr

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrInvalidColor        = errors.New("invalid color literal")
	ErrInvalidNumber       = errors.New("invalid number format")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnexpectedEnd       = errors.New("unexpected end of expression")
	ErrInvalidArgList      = errors.New("invalid argument list")
)

// TokenType represents the type of an expression token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	IDENT    // bare words: solid, bold, arial
	NUMBER   // numeric literals, optionally with a unit: 12, 1.5em, 50%
	STRING   // quoted string literals
	COLOR    // hex color literals: #fff, #c0ffee
	VARIABLE // !name references

	// Punctuation
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	COLON  // :

	// Operators
	PLUS          // +
	MINUS         // -
	TIMES         // *
	DIVIDE        // /
	MODULO        // %
	EQUAL         // ==
	NOT_EQUAL     // !=
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=

	// Keyword operators
	AND // and
	OR  // or
	NOT // not
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case COLOR:
		return "COLOR"
	case VARIABLE:
		return "VARIABLE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case TIMES:
		return "TIMES"
	case DIVIDE:
		return "DIVIDE"
	case MODULO:
		return "MODULO"
	case EQUAL:
		return "EQUAL"
	case NOT_EQUAL:
		return "NOT_EQUAL"
	case LESS_THAN:
		return "LESS_THAN"
	case GREATER_THAN:
		return "GREATER_THAN"
	case LESS_EQUAL:
		return "LESS_EQUAL"
	case GREATER_EQUAL:
		return "GREATER_EQUAL"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the enclosing source document
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents an expression token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
