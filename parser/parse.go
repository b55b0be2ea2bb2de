// Package parser turns raw Willow source text into a stylesheet tree.
//
// Parsing proceeds in three passes: the tokenizer converts text into a flat
// sequence of depth-tagged lines, the depth grouper nests them, and the
// assembler classifies each line and builds the node tree. All fatal
// conditions abort the whole parse; a structurally broken document has no
// well-defined partial meaning.
package parser

import (
	"errors"

	"github.com/willow-css/willow/tokenizer"
)

// Parse parses source text into a tree rooted at a single Root node.
// Non-fatal diagnostics are collected on Root.Warnings; any fatal condition
// is returned as a *SyntaxError enriched with the filename and full source
// text for contextual display.
func Parse(src string, opts *Options) (*Root, error) {
	o := Options{Line: 1}
	if opts != nil {
		o = *opts
		if o.Line == 0 {
			o.Line = 1
		}
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	lines, err := tokenizer.Tokenize(src, tokenizer.Options{
		Filename:  o.Filename,
		StartLine: o.Line,
	})
	if err != nil {
		return nil, enrich(err, &o, src, o.Line)
	}

	forest, _, err := groupLines(lines, 0)
	if err != nil {
		return nil, enrich(err, &o, src, o.Line)
	}

	root := &Root{}

	a := &assembler{opts: &o, root: root}
	if err := a.appendChildren(root, forest, true); err != nil {
		return nil, enrich(err, &o, src, a.line)
	}

	return root, nil
}

// enrich attaches the filename and source text to a bubbled-up fatal error.
// This is the only place that enrichment happens.
func enrich(err error, o *Options, src string, lastLine int) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.File = o.Filename
		se.Source = src

		return se
	}

	var te *tokenizer.Error
	if errors.As(err, &te) {
		return &SyntaxError{
			Err:    te.Err,
			Detail: te.Detail,
			Line:   te.Line,
			File:   o.Filename,
			Source: src,
		}
	}

	return &SyntaxError{
		Err:    err,
		Line:   lastLine,
		File:   o.Filename,
		Source: src,
	}
}
