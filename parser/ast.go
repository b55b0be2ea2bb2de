package parser

import (
	"github.com/willow-css/willow/expr"
)

// Position locates a node in its source document.
type Position struct {
	Line int
	File string
}

// Node is one node of the stylesheet tree.
type Node interface {
	// Pos returns the node's source position.
	Pos() Position
	// Children returns the node's ordered children. Leaf-only variants
	// always return nil.
	Children() []Node
}

// parentNode is a node that may own children.
type parentNode interface {
	Node
	add(Node)
}

type base struct {
	pos Position
}

func (b *base) Pos() Position    { return b.pos }
func (b *base) Children() []Node { return nil }

type container struct {
	base

	Nodes []Node
}

func (c *container) Children() []Node { return c.Nodes }
func (c *container) add(n Node)       { c.Nodes = append(c.Nodes, n) }

// Root is the document root. It is the only node without a source line.
type Root struct {
	container

	Warnings []Warning
}

// Warning is a non-fatal diagnostic collected during parsing.
type Warning struct {
	Message string
	Line    int
	File    string
}

// Rule is a selector block. Selectors holds the comma-separated selector
// list; Continued marks a header whose selector list ended in a comma and is
// merged with the following sibling by the assembler.
type Rule struct {
	container

	Selectors []string
	Continued bool
}

// Property is a style declaration. Value holds the literal text unless the
// declaration used the script-assignment form, in which case Expr holds the
// parsed expression. A property with an empty value may own nested
// properties.
type Property struct {
	container

	Name  string
	Value string
	Expr  expr.Node

	// Old reports the ":name value" syntax flavor rather than "name: value".
	Old bool
}

// Variable is a "!name = expr" assignment. Guarded marks the assign-if-unset
// form "||=". Leaf-only.
type Variable struct {
	base

	Name    string
	Expr    expr.Node
	Guarded bool
}

// Comment is a comment block. Silent comments are excluded from generated
// output.
type Comment struct {
	base

	Text   string
	Silent bool
}

// ImportDirective is one file reference of an @import line. Leaf-only and
// root-only.
type ImportDirective struct {
	base

	Path string
}

// ForDirective is an @for loop. Inclusive marks the "through" upper bound.
type ForDirective struct {
	container

	Var       string
	From      expr.Node
	To        expr.Node
	Inclusive bool
}

// WhileDirective is an @while loop.
type WhileDirective struct {
	container

	Expr expr.Node
}

// IfDirective is an @if branch. A nil Expr is an unconditional @else; Else
// chains else-if branches.
type IfDirective struct {
	container

	Expr expr.Node
	Else *IfDirective

	lastElse *IfDirective
}

// addElse appends alt to the end of the branch chain.
func (n *IfDirective) addElse(alt *IfDirective) {
	if n.lastElse == nil {
		n.lastElse = n
	}

	n.lastElse.Else = alt
	n.lastElse = alt
}

// DebugDirective is an @debug statement. Leaf-only.
type DebugDirective struct {
	base

	Expr expr.Node
}

// GenericDirective is an unrecognized or output-only directive, carried
// through unparsed for the code generator.
type GenericDirective struct {
	container

	Raw string
}

// MixinDef is a "=name(params)" mixin definition. Root-only.
type MixinDef struct {
	container

	Name   string
	Params []expr.Param
}

// MixinInclude is a "+name(args)" mixin include. Leaf-only.
type MixinInclude struct {
	base

	Name string
	Args []expr.Arg
}
