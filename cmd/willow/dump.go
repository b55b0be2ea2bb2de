package main

import (
	"fmt"

	"github.com/willow-css/willow/expr"
	"github.com/willow-css/willow/parser"
)

// dumpNode is a serialization-friendly view of a parse tree node. Field tags
// cover the union of all node kinds; unused fields are omitted.
type dumpNode struct {
	Type      string      `yaml:"type" json:"type"`
	Line      int         `yaml:"line" json:"line"`
	Selectors []string    `yaml:"selectors,omitempty" json:"selectors,omitempty"`
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Value     string      `yaml:"value,omitempty" json:"value,omitempty"`
	Expr      string      `yaml:"expr,omitempty" json:"expr,omitempty"`
	Text      string      `yaml:"text,omitempty" json:"text,omitempty"`
	Path      string      `yaml:"path,omitempty" json:"path,omitempty"`
	Raw       string      `yaml:"raw,omitempty" json:"raw,omitempty"`
	Var       string      `yaml:"var,omitempty" json:"var,omitempty"`
	From      string      `yaml:"from,omitempty" json:"from,omitempty"`
	To        string      `yaml:"to,omitempty" json:"to,omitempty"`
	Params    []string    `yaml:"params,omitempty" json:"params,omitempty"`
	Args      []string    `yaml:"args,omitempty" json:"args,omitempty"`
	Old       bool        `yaml:"old,omitempty" json:"old,omitempty"`
	Silent    bool        `yaml:"silent,omitempty" json:"silent,omitempty"`
	Guarded   bool        `yaml:"guarded,omitempty" json:"guarded,omitempty"`
	Inclusive bool        `yaml:"inclusive,omitempty" json:"inclusive,omitempty"`
	Else      *dumpNode   `yaml:"else,omitempty" json:"else,omitempty"`
	Children  []*dumpNode `yaml:"children,omitempty" json:"children,omitempty"`
}

type dumpRoot struct {
	File     string        `yaml:"file,omitempty" json:"file,omitempty"`
	Warnings []dumpWarning `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Children []*dumpNode   `yaml:"children,omitempty" json:"children,omitempty"`
}

type dumpWarning struct {
	Line    int    `yaml:"line" json:"line"`
	Message string `yaml:"message" json:"message"`
}

func dumpTree(root *parser.Root, file string) *dumpRoot {
	out := &dumpRoot{File: file}

	for _, warning := range root.Warnings {
		out.Warnings = append(out.Warnings, dumpWarning{
			Line:    warning.Line,
			Message: warning.Message,
		})
	}

	for _, child := range root.Children() {
		out.Children = append(out.Children, convertNode(child))
	}

	return out
}

func convertNode(n parser.Node) *dumpNode {
	out := &dumpNode{Line: n.Pos().Line}

	switch node := n.(type) {
	case *parser.Rule:
		out.Type = "rule"
		out.Selectors = node.Selectors
	case *parser.Property:
		out.Type = "property"
		out.Name = node.Name
		out.Value = node.Value
		out.Expr = formatExpr(node.Expr)
		out.Old = node.Old
	case *parser.Variable:
		out.Type = "variable"
		out.Name = node.Name
		out.Expr = formatExpr(node.Expr)
		out.Guarded = node.Guarded
	case *parser.Comment:
		out.Type = "comment"
		out.Text = node.Text
		out.Silent = node.Silent
	case *parser.ImportDirective:
		out.Type = "import"
		out.Path = node.Path
	case *parser.ForDirective:
		out.Type = "for"
		out.Var = node.Var
		out.From = formatExpr(node.From)
		out.To = formatExpr(node.To)
		out.Inclusive = node.Inclusive
	case *parser.WhileDirective:
		out.Type = "while"
		out.Expr = formatExpr(node.Expr)
	case *parser.IfDirective:
		out.Type = "if"
		out.Expr = formatExpr(node.Expr)

		if node.Else != nil {
			out.Else = convertNode(node.Else)
		}
	case *parser.DebugDirective:
		out.Type = "debug"
		out.Expr = formatExpr(node.Expr)
	case *parser.GenericDirective:
		out.Type = "directive"
		out.Raw = node.Raw
	case *parser.MixinDef:
		out.Type = "mixin"
		out.Name = node.Name

		for _, param := range node.Params {
			text := "!" + param.Name
			if param.Default != nil {
				text += ": " + expr.Format(param.Default)
			}

			out.Params = append(out.Params, text)
		}
	case *parser.MixinInclude:
		out.Type = "include"
		out.Name = node.Name

		for _, arg := range node.Args {
			text := expr.Format(arg.Value)
			if arg.Name != "" {
				text = "!" + arg.Name + ": " + text
			}

			out.Args = append(out.Args, text)
		}
	default:
		out.Type = fmt.Sprintf("%T", n)
	}

	for _, child := range n.Children() {
		out.Children = append(out.Children, convertNode(child))
	}

	return out
}

func formatExpr(n expr.Node) string {
	if n == nil {
		return ""
	}

	return expr.Format(n)
}
