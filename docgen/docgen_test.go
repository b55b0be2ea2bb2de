package docgen

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/willow-css/willow/parser"
	"github.com/willow-css/willow/testhelper"
)

func parse(t *testing.T, src string) *parser.Root {
	t.Helper()

	root, err := parser.Parse(src, &parser.Options{Filename: "main.wlw"})
	assert.NoError(t, err)

	return root
}

func TestExtract(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		/* Base palette.
		// internal note
		body
		  /* The page **body**.
		  color: #333
		  a
		    /* Links.
		    color: blue
		`)

	entries, err := Extract(parse(t, src))
	assert.NoError(t, err)

	want := []Entry{
		{
			Selectors: nil,
			HTML:      "<p>Base palette.</p>\n",
			Line:      1,
			File:      "main.wlw",
		},
		{
			Selectors: []string{"body"},
			HTML:      "<p>The page <strong>body</strong>.</p>\n",
			Line:      4,
			File:      "main.wlw",
		},
		{
			Selectors: []string{"body", "a"},
			HTML:      "<p>Links.</p>\n",
			Line:      7,
			File:      "main.wlw",
		},
	}

	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSkipsSilentComments(t *testing.T) {
	entries, err := Extract(parse(t, "// silent\na\n  color: red\n"))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(entries))
}

func TestExtractWalksElseBranches(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		a
		  @if !dark
		    /* Dark branch.
		    color: white
		  @else
		    /* Light branch.
		    color: black
		`)

	entries, err := Extract(parse(t, src))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "<p>Dark branch.</p>\n", entries[0].HTML)
	assert.Equal(t, "<p>Light branch.</p>\n", entries[1].HTML)
	assert.Equal(t, []string{"a"}, entries[1].Selectors)
}

func TestExtractGroupedSelectors(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		h1, h2
		  /* Headings.
		  font-weight: bold
		`)

	entries, err := Extract(parse(t, src))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, []string{"h1, h2"}, entries[0].Selectors)
}

func TestRenderHTML(t *testing.T) {
	entries := []Entry{
		{HTML: "<p>Overview.</p>\n"},
		{Selectors: []string{"body", "a"}, HTML: "<p>Links.</p>\n"},
	}

	html := RenderHTML(entries)

	assert.True(t, strings.HasPrefix(html, "<section class=\"willow-doc\">\n"))
	assert.True(t, strings.HasSuffix(html, "</section>\n"))
	assert.Contains(t, html, "<h2><code>body a</code></h2>\n")
	assert.Contains(t, html, "<p>Overview.</p>")
}
