package parser

import (
	"fmt"
	"strings"

	"github.com/willow-css/willow/tokenizer"
)

// maxNestingDepth bounds assembler recursion so pathologically deep input
// fails with an error instead of exhausting the call stack.
const maxNestingDepth = 128

// assembler walks the nested line tree top-down, classifying each line and
// attaching the resulting nodes to their parent.
type assembler struct {
	opts *Options
	root *Root

	// line is the last processed source line, used to position errors that
	// carry no position of their own.
	line int

	depth int
}

// appendChildren classifies each child line of parent and attaches the
// results, merging comma-continued rule headers along the way.
func (a *assembler) appendChildren(parent parentNode, lines []*tokenizer.Line, root bool) error {
	a.depth++
	defer func() { a.depth-- }()

	if a.depth > maxNestingDepth {
		return syntaxErrf(ErrNestingTooDeep, a.line, "nesting deeper than %d levels", maxNestingDepth)
	}

	var continued *Rule

	for _, line := range lines {
		nodes, err := a.buildTree(parent, line, root)
		if err != nil {
			return err
		}

		for _, child := range nodes {
			if rule, ok := child.(*Rule); ok && rule.Continued {
				if len(rule.Nodes) > 0 {
					return syntaxErrf(ErrTrailingComma, rule.Pos().Line, "")
				}

				if continued != nil {
					continued.Selectors = append(continued.Selectors, rule.Selectors...)
				} else {
					continued = rule
				}

				continue
			}

			if continued != nil {
				rule, ok := child.(*Rule)
				if !ok {
					return syntaxErrf(ErrTrailingComma, continued.Pos().Line, "")
				}

				continued.Selectors = append(continued.Selectors, rule.Selectors...)
				continued.Nodes = rule.Nodes
				continued.Continued = false
				child = continued
				continued = nil
			}

			a.checkForNoChildren(child)

			if err := a.validateAndAppend(parent, child, line, root); err != nil {
				return err
			}
		}
	}

	if continued != nil {
		return syntaxErrf(ErrTrailingComma, continued.Pos().Line, "")
	}

	return nil
}

// buildTree classifies one line and recurses into its children.
func (a *assembler) buildTree(parent parentNode, line *tokenizer.Line, root bool) ([]Node, error) {
	a.line = line.LineNo

	nodes, err := a.parseLine(parent, line, root)
	if err != nil {
		return nil, err
	}

	for _, node := range nodes {
		p, ok := node.(parentNode)
		if !ok {
			continue
		}

		if err := a.appendChildren(p, line.Children, false); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// checkForNoChildren emits a warning for a rule that ended up empty. The
// node is still attached; the generator is expected to skip it.
func (a *assembler) checkForNoChildren(node Node) {
	rule, ok := node.(*Rule)
	if !ok || len(rule.Nodes) > 0 {
		return
	}

	a.root.Warnings = append(a.root.Warnings, Warning{
		Message: fmt.Sprintf("selector %q doesn't have any properties and will not be rendered",
			strings.Join(rule.Selectors, ", ")),
		Line: rule.Pos().Line,
		File: rule.Pos().File,
	})
}

// validateAndAppend enforces root-only placement before attaching.
func (a *assembler) validateAndAppend(parent parentNode, child Node, line *tokenizer.Line, root bool) error {
	if !root {
		switch child.(type) {
		case *MixinDef:
			return syntaxErrf(ErrMixinNotAtRoot, line.LineNo, "")
		case *ImportDirective:
			return syntaxErrf(ErrImportNotAtRoot, line.LineNo, "")
		}
	}

	parent.add(child)

	return nil
}
