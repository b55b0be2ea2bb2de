package expr

import (
	"strings"
)

// Format renders an expression tree back into source form. The output is
// normalized: operators are padded with single spaces and variable references
// carry their '!' sigil.
func Format(n Node) string {
	var sb strings.Builder

	formatNode(&sb, n)

	return sb.String()
}

func formatNode(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Number:
		sb.WriteString(node.Value.String())
		sb.WriteString(node.Unit)
	case *String:
		sb.WriteByte('"')
		sb.WriteString(node.Value)
		sb.WriteByte('"')
	case *Color:
		sb.WriteByte('#')
		sb.WriteString(node.Hex)
	case *Word:
		sb.WriteString(node.Name)
	case *Variable:
		sb.WriteByte('!')
		sb.WriteString(node.Name)
	case *UnaryOp:
		sb.WriteString(node.Op.String())
		if node.Op == OpNot {
			sb.WriteByte(' ')
		}

		formatNode(sb, node.Operand)
	case *BinaryOp:
		formatNode(sb, node.Left)
		sb.WriteByte(' ')
		sb.WriteString(node.Op.String())
		sb.WriteByte(' ')
		formatNode(sb, node.Right)
	case *FuncCall:
		sb.WriteString(node.Name)
		sb.WriteByte('(')

		for i, arg := range node.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			formatNode(sb, arg)
		}

		sb.WriteByte(')')
	case *List:
		sep := " "
		if node.Comma {
			sep = ", "
		}

		for i, item := range node.Items {
			if i > 0 {
				sb.WriteString(sep)
			}

			formatNode(sb, item)
		}
	}
}
