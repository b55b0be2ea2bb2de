package expr

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseMixinDefArgList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no parens", "", nil},
		{"empty parens", "()", nil},
		{"one param", "(!width)", []string{"!width"}},
		{"several params", "(!width, !height)", []string{"!width", "!height"}},
		{"defaults", "(!width, !color: #fff)", []string{"!width", "!color: #fff"}},
		{"expression default", "(!size: 2 * 10px)", []string{"!size: 2 * 10px"}},
		{"call default", "(!bg: rgb(0, 0, 0))", []string{"!bg: rgb(0, 0, 0)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseMixinDefArgList(tt.input, 1, 0)
			assert.NoError(t, err)

			var got []string

			for _, param := range params {
				text := "!" + param.Name
				if param.Default != nil {
					text += ": " + Format(param.Default)
				}

				got = append(got, text)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMixinDefArgListErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing close paren", "(!width"},
		{"bare word parameter", "(width)"},
		{"trailing comma", "(!width,)"},
		{"missing open paren", "!width)"},
		{"trailing garbage", "(!width) extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMixinDefArgList(tt.input, 1, 0)
			assert.IsError(t, err, ErrInvalidArgList)
		})
	}
}

func TestParseMixinIncludeArgList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no parens", "", nil},
		{"empty parens", "()", nil},
		{"positional", "(10px, #fff)", []string{"10px", "#fff"}},
		{"keyword", "(!width: 10px)", []string{"!width: 10px"}},
		{"mixed", "(10px, !color: #fff)", []string{"10px", "!color: #fff"}},
		{"expression argument", "(!base + 2px)", []string{"!base + 2px"}},
		{"nested call argument", "(darken(#fff, 10%))", []string{"darken(#fff, 10%)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := ParseMixinIncludeArgList(tt.input, 1, 0)
			assert.NoError(t, err)

			var got []string

			for _, arg := range args {
				text := Format(arg.Value)
				if arg.Name != "" {
					text = "!" + arg.Name + ": " + text
				}

				got = append(got, text)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMixinIncludeArgListErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing close paren", "(10px"},
		{"empty argument", "(10px,,#fff)"},
		{"trailing comma", "(10px,)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMixinIncludeArgList(tt.input, 1, 0)
			assert.IsError(t, err, ErrInvalidArgList)
		})
	}
}
