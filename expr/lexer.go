package expr

import (
	"fmt"
	"strings"
	"unicode"
)

// Lexer scans one embedded script fragment. Fragments are always a single
// source line; line is the line number of the enclosing document line and
// offset is the fragment's byte offset within it, so token positions line up
// with the original source for diagnostics.
type Lexer struct {
	input  string
	line   int
	offset int
}

// NewLexer creates a new Lexer
func NewLexer(input string, line, offset int) *Lexer {
	return &Lexer{input: input, line: line, offset: offset}
}

// AllTokens scans the whole fragment, dropping whitespace. The final token is
// always EOF.
func (l *Lexer) AllTokens() ([]Token, error) {
	s := &scanner{
		input:  l.input,
		line:   l.line,
		offset: l.offset,
	}

	s.readChar()

	tokens := make([]Token, 0, 16)

	for {
		token, err := s.nextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Internal scanner implementation
type scanner struct {
	input    string
	position int
	line     int
	offset   int
	current  rune
}

// nextToken gets the next token, skipping whitespace
func (s *scanner) nextToken() (Token, error) {
	for s.current == ' ' || s.current == '\t' {
		s.readChar()
	}

	switch s.current {
	case 0:
		return s.newToken(EOF, ""), nil
	case '(':
		return s.charToken(LPAREN), nil
	case ')':
		return s.charToken(RPAREN), nil
	case ',':
		return s.charToken(COMMA), nil
	case ':':
		return s.charToken(COLON), nil
	case '+':
		return s.charToken(PLUS), nil
	case '-':
		// A minus immediately followed by a letter begins an identifier,
		// e.g. -moz-border-radius.
		if isIdentStart(s.peekChar()) {
			return s.readWord(), nil
		}

		return s.charToken(MINUS), nil
	case '*':
		return s.charToken(TIMES), nil
	case '/':
		return s.charToken(DIVIDE), nil
	case '%':
		return s.charToken(MODULO), nil
	case '=':
		if s.peekChar() == '=' {
			token := s.newToken(EQUAL, "==")
			s.readChar()
			s.readChar()

			return token, nil
		}

		return Token{}, fmt.Errorf("%w: '=' at line %d, column %d", ErrUnexpectedCharacter, s.line, s.column())
	case '<':
		if s.peekChar() == '=' {
			token := s.newToken(LESS_EQUAL, "<=")
			s.readChar()
			s.readChar()

			return token, nil
		}

		return s.charToken(LESS_THAN), nil
	case '>':
		if s.peekChar() == '=' {
			token := s.newToken(GREATER_EQUAL, ">=")
			s.readChar()
			s.readChar()

			return token, nil
		}

		return s.charToken(GREATER_THAN), nil
	case '!':
		if s.peekChar() == '=' {
			token := s.newToken(NOT_EQUAL, "!=")
			s.readChar()
			s.readChar()

			return token, nil
		}

		return s.readVariable()
	case '"', '\'':
		return s.readString(s.current)
	case '#':
		return s.readColor()
	default:
		if isIdentStart(s.current) {
			return s.readWord(), nil
		}

		if unicode.IsDigit(s.current) {
			return s.readNumber()
		}

		return Token{}, fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedCharacter, s.current, s.line, s.column())
	}
}

// readChar reads the next character
func (s *scanner) readChar() {
	if s.position >= len(s.input) {
		s.current = 0
		s.position++
		return
	}

	s.current = rune(s.input[s.position])
	s.position++
}

// peekChar looks ahead at the next character
func (s *scanner) peekChar() rune {
	if s.position >= len(s.input) {
		return 0
	}

	return rune(s.input[s.position])
}

// readWord reads identifiers and keyword operators
func (s *scanner) readWord() Token {
	var builder strings.Builder

	start := s.position - 1

	for isIdentStart(s.current) || unicode.IsDigit(s.current) ||
		(s.current == '-' && (isIdentStart(s.peekChar()) || unicode.IsDigit(s.peekChar()))) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	word := builder.String()

	token := Token{
		Type:     wordTokenType(word),
		Value:    word,
		Position: s.positionAt(start),
	}

	return token
}

// readVariable reads a !name reference
func (s *scanner) readVariable() (Token, error) {
	start := s.position - 1

	s.readChar() // consume '!'

	var builder strings.Builder

	for unicode.IsLetter(s.current) || unicode.IsDigit(s.current) || s.current == '_' {
		builder.WriteRune(s.current)
		s.readChar()
	}

	if builder.Len() == 0 {
		return Token{}, fmt.Errorf("%w: '!' without a variable name at line %d, column %d", ErrUnexpectedCharacter, s.line, s.offset+start+1)
	}

	return Token{
		Type:     VARIABLE,
		Value:    builder.String(),
		Position: s.positionAt(start),
	}, nil
}

// readString reads string literals, resolving backslash escapes
func (s *scanner) readString(delimiter rune) (Token, error) {
	start := s.position - 1

	s.readChar() // consume opening quote

	var builder strings.Builder

	for s.current != 0 && s.current != delimiter {
		if s.current == '\\' {
			s.readChar()
			if s.current == 0 {
				break
			}
		}

		builder.WriteRune(s.current)
		s.readChar()
	}

	if s.current == 0 {
		return Token{}, fmt.Errorf("%w: %c at line %d, column %d", ErrUnterminatedString, delimiter, s.line, s.offset+start+1)
	}

	s.readChar() // consume closing quote

	return Token{
		Type:     STRING,
		Value:    builder.String(),
		Position: s.positionAt(start),
	}, nil
}

// readColor reads #rgb and #rrggbb literals
func (s *scanner) readColor() (Token, error) {
	start := s.position - 1

	s.readChar() // consume '#'

	var builder strings.Builder

	for isHexDigit(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	hex := builder.String()
	if len(hex) != 3 && len(hex) != 6 {
		return Token{}, fmt.Errorf("%w: #%s at line %d, column %d", ErrInvalidColor, hex, s.line, s.offset+start+1)
	}

	return Token{
		Type:     COLOR,
		Value:    hex,
		Position: s.positionAt(start),
	}, nil
}

// readNumber reads numeric literals with an optional unit suffix
func (s *scanner) readNumber() (Token, error) {
	var builder strings.Builder

	start := s.position - 1

	for unicode.IsDigit(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	if s.current == '.' {
		if !unicode.IsDigit(s.peekChar()) {
			return Token{}, fmt.Errorf("%w: trailing decimal point at line %d, column %d", ErrInvalidNumber, s.line, s.offset+start+1)
		}

		builder.WriteRune(s.current)
		s.readChar()

		for unicode.IsDigit(s.current) {
			builder.WriteRune(s.current)
			s.readChar()
		}
	}

	// Unit suffix: px, em, %, ...
	if s.current == '%' {
		builder.WriteRune(s.current)
		s.readChar()
	} else {
		for unicode.IsLetter(s.current) {
			builder.WriteRune(s.current)
			s.readChar()
		}
	}

	return Token{
		Type:     NUMBER,
		Value:    builder.String(),
		Position: s.positionAt(start),
	}, nil
}

// charToken emits a single-character token and advances
func (s *scanner) charToken(tokenType TokenType) Token {
	token := s.newToken(tokenType, string(s.current))
	s.readChar()

	return token
}

// newToken creates a new token at the current read position
func (s *scanner) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: s.positionAt(s.position - 1),
	}
}

// positionAt maps an index within the fragment to a document position
func (s *scanner) positionAt(index int) Position {
	return Position{
		Line:   s.line,
		Column: s.offset + index + 1,
		Offset: s.offset + index,
	}
}

func (s *scanner) column() int {
	return s.offset + s.position
}

func wordTokenType(word string) TokenType {
	switch word {
	case "and":
		return AND
	case "or":
		return OR
	case "not":
		return NOT
	default:
		return IDENT
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
