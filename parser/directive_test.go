package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/willow-css/willow/testhelper"
)

func TestImportDirective(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		root := mustParse(t, "@import base\n", nil)
		imp := onlyChild[*ImportDirective](t, root)
		assert.Equal(t, "base", imp.Path)
	})

	t.Run("several files", func(t *testing.T) {
		root := mustParse(t, "@import base, layout, theme\n", nil)
		assert.Equal(t, 3, len(root.Children()))

		paths := make([]string, 0, 3)
		for _, child := range root.Children() {
			imp, ok := child.(*ImportDirective)
			assert.True(t, ok)

			paths = append(paths, imp.Path)
		}

		assert.Equal(t, []string{"base", "layout", "theme"}, paths)
	})

	t.Run("literal css import passes through", func(t *testing.T) {
		tests := []string{
			`@import url(theme.css)`,
			`@import "theme.css" screen`,
			`@import 'theme.css'`,
		}

		for _, src := range tests {
			root := mustParse(t, src+"\n", nil)
			gen := onlyChild[*GenericDirective](t, root)
			assert.Equal(t, src, gen.Raw)
		}
	})

	t.Run("missing file reference", func(t *testing.T) {
		_, err := Parse("@import\n", nil)
		assert.IsError(t, err, ErrInvalidDirective)
	})

	t.Run("not at root", func(t *testing.T) {
		_, err := Parse("a\n  @import base\n", nil)
		assert.IsError(t, err, ErrImportNotAtRoot)
	})

	t.Run("children are illegal", func(t *testing.T) {
		_, err := Parse("@import base\n  color: red\n", nil)
		assert.IsError(t, err, ErrIllegalNesting)
	})
}

func TestForDirective(t *testing.T) {
	t.Run("exclusive bound", func(t *testing.T) {
		root := mustParse(t, "@for !i from 1 to 3\n  width = !i\n", nil)
		loop := onlyChild[*ForDirective](t, root)
		assert.Equal(t, "i", loop.Var)
		assert.False(t, loop.Inclusive)
		assert.NotZero(t, loop.From)
		assert.NotZero(t, loop.To)
		assert.Equal(t, 1, len(loop.Children()))
	})

	t.Run("inclusive bound", func(t *testing.T) {
		root := mustParse(t, "@for !i from 1 through !n\n  width = !i\n", nil)
		loop := onlyChild[*ForDirective](t, root)
		assert.True(t, loop.Inclusive)
	})

	t.Run("missing clause diagnostics", func(t *testing.T) {
		tests := []struct {
			name   string
			src    string
			detail string
		}{
			{"empty", "@for\n", "expected variable name"},
			{"no from", "@for !i\n", "expected 'from <expr>'"},
			{"no bound", "@for !i from 1\n", "expected 'to <expr>' or 'through <expr>'"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse(tt.src, nil)
				assert.IsError(t, err, ErrInvalidDirective)
				assert.Contains(t, err.Error(), tt.detail)
			})
		}
	})

	t.Run("loop variable must be a variable", func(t *testing.T) {
		_, err := Parse("@for i from 1 to 3\n  width = !i\n", nil)
		assert.IsError(t, err, ErrInvalidVariable)
	})
}

func TestIfElseChain(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		@if !a
		  color: red
		@else if !b
		  color: green
		@else
		  color: blue
		`)

	root := mustParse(t, src, nil)

	ifNode := onlyChild[*IfDirective](t, root)
	assert.NotZero(t, ifNode.Expr)
	assert.Equal(t, 1, len(ifNode.Children()))

	elseIf := ifNode.Else
	assert.NotZero(t, elseIf)
	assert.NotZero(t, elseIf.Expr)
	assert.Equal(t, 1, len(elseIf.Children()))

	final := elseIf.Else
	assert.NotZero(t, final)
	assert.Zero(t, final.Expr)
	assert.Equal(t, 1, len(final.Children()))
	assert.Zero(t, final.Else)
}

func TestElseErrors(t *testing.T) {
	t.Run("without if", func(t *testing.T) {
		_, err := Parse("@else\n  color: red\n", nil)
		assert.IsError(t, err, ErrElseWithoutIf)
	})

	t.Run("after non-if sibling", func(t *testing.T) {
		src := testhelper.TrimIndent(t, `
			@if !a
			  color: red
			b
			  color: green
			@else
			  color: blue
			`)

		_, err := Parse(src, nil)
		assert.IsError(t, err, ErrElseWithoutIf)
	})

	t.Run("malformed condition clause", func(t *testing.T) {
		src := testhelper.TrimIndent(t, `
			@if !a
			  color: red
			@else unless !b
			  color: green
			`)

		_, err := Parse(src, nil)
		assert.IsError(t, err, ErrInvalidDirective)
	})
}

func TestWhileDirective(t *testing.T) {
	root := mustParse(t, "@while !i > 0\n  width = !i\n", nil)
	loop := onlyChild[*WhileDirective](t, root)
	assert.NotZero(t, loop.Expr)
	assert.Equal(t, 1, len(loop.Children()))

	_, err := Parse("@while\n  color: red\n", nil)
	assert.IsError(t, err, ErrInvalidDirective)
}

func TestDebugDirective(t *testing.T) {
	root := mustParse(t, "@debug 1 + 2\n", nil)
	debug := onlyChild[*DebugDirective](t, root)
	assert.NotZero(t, debug.Expr)

	_, err := Parse("@debug 1\n  color: red\n", nil)
	assert.IsError(t, err, ErrIllegalNesting)
}

func TestGenericDirective(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		@media print
		  body
		    font-size: 10pt
		`)

	root := mustParse(t, src, nil)
	media := onlyChild[*GenericDirective](t, root)
	assert.Equal(t, "@media print", media.Raw)

	body := onlyChild[*Rule](t, media)
	assert.Equal(t, []string{"body"}, body.Selectors)
}
