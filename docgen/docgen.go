// Package docgen extracts documentation from parsed Willow stylesheets.
// Loud comments are treated as markdown and rendered to HTML fragments,
// keyed by the selector context they appear under.
package docgen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/willow-css/willow/parser"
)

// Entry is one documented comment.
type Entry struct {
	// Selectors is the enclosing rule chain, outermost first. Empty for
	// document-level comments.
	Selectors []string
	HTML      string
	Line      int
	File      string
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Extract collects the loud comments of a parsed document and renders their
// markdown text to HTML fragments. Silent comments are skipped.
func Extract(root *parser.Root) ([]Entry, error) {
	var entries []Entry

	if err := walk(root.Children(), nil, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func walk(nodes []parser.Node, selectors []string, entries *[]Entry) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *parser.Comment:
			if n.Silent {
				continue
			}

			var buf bytes.Buffer
			if err := md.Convert([]byte(n.Text), &buf); err != nil {
				return fmt.Errorf("failed to render comment on line %d: %w", n.Pos().Line, err)
			}

			*entries = append(*entries, Entry{
				Selectors: slices.Clone(selectors),
				HTML:      buf.String(),
				Line:      n.Pos().Line,
				File:      n.Pos().File,
			})
		case *parser.Rule:
			next := append(slices.Clone(selectors), strings.Join(n.Selectors, ", "))
			if err := walk(n.Children(), next, entries); err != nil {
				return err
			}
		case *parser.IfDirective:
			// Each branch of an if chain can carry its own comments.
			for branch := n; branch != nil; branch = branch.Else {
				if err := walk(branch.Children(), selectors, entries); err != nil {
					return err
				}
			}
		default:
			if err := walk(node.Children(), selectors, entries); err != nil {
				return err
			}
		}
	}

	return nil
}

// RenderHTML assembles entries into a single HTML document fragment, with a
// heading per selector context.
func RenderHTML(entries []Entry) string {
	var builder strings.Builder

	builder.WriteString("<section class=\"willow-doc\">\n")

	for _, entry := range entries {
		if len(entry.Selectors) > 0 {
			fmt.Fprintf(&builder, "<h2><code>%s</code></h2>\n", strings.Join(entry.Selectors, " "))
		}

		builder.WriteString(entry.HTML)
	}

	builder.WriteString("</section>\n")

	return builder.String()
}
