package expr

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"multiplication binds tighter", "1 + 2 * 3", "1 + 2 * 3"},
		{"parens regroup", "(1 + 2) * 3", "1 + 2 * 3"},
		{"comparison over arithmetic", "!a + 1 < !b * 2", "!a + 1 < !b * 2"},
		{"and over or", "!a or !b and !c", "!a or !b and !c"},
		{"unary minus", "-!a + 1", "-!a + 1"},
		{"not", "not !a and !b", "not !a and !b"},
		{"space list", "1px solid #000", "1px solid #000"},
		{"comma list", "serif, sans-serif", "serif, sans-serif"},
		{"call with space list args", "rgba(0, 0, 0, 0.5)", "rgba(0, 0, 0, 0.5)"},
		{"nested call", "darken(rgb(255, 0, 0), 10%)", "darken(rgb(255, 0, 0), 10%)"},
		{"empty call", "url()", "url()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input, 1, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, Format(node))
		})
	}
}

func TestParseStructure(t *testing.T) {
	node, err := Parse("1 + 2 * 3", 1, 0)
	assert.NoError(t, err)

	add, ok := node.(*BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, OpPlus, add.Op)

	mul, ok := add.Right.(*BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, OpTimes, mul.Op)
}

func TestParseNumberUnits(t *testing.T) {
	tests := []struct {
		input string
		value string
		unit  string
	}{
		{"12", "12", ""},
		{"1.5em", "1.5", "em"},
		{"50%", "50", "%"},
		{"10px", "10", "px"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input, 1, 0)
			assert.NoError(t, err)

			num, ok := node.(*Number)
			assert.True(t, ok)
			assert.True(t, num.Value.Equal(decimal.RequireFromString(tt.value)))
			assert.Equal(t, tt.unit, num.Unit)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"dangling operator", "1 +", ErrUnexpectedEnd},
		{"unclosed paren", "(1 + 2", ErrUnexpectedEnd},
		{"operator without left operand", "* 2", ErrUnexpectedToken},
		{"stray rparen", "1)", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, 1, 0)
			assert.Error(t, err)
			assert.IsError(t, err, tt.wantErr)
		})
	}
}

func TestIsValidVariable(t *testing.T) {
	assert.True(t, IsValidVariable("!width"))
	assert.True(t, IsValidVariable("!a_1"))
	assert.False(t, IsValidVariable("width"))
	assert.False(t, IsValidVariable("!"))
	assert.False(t, IsValidVariable("!two words"))
}
