package parser

import (
	"github.com/willow-css/willow/tokenizer"
)

// groupLines recursively partitions a flat line sequence into a forest where
// each line's children are the maximal contiguous run of subsequent lines
// exactly one level deeper. It starts at index i and returns the grouped run
// together with the index of the first unconsumed line. Grouping is purely
// structural and never inspects line text.
func groupLines(lines []*tokenizer.Line, i int) ([]*tokenizer.Line, int, error) {
	if i >= len(lines) {
		return nil, i, nil
	}

	base := lines[i].Depth

	var nodes []*tokenizer.Line

	for i < len(lines) && lines[i].Depth >= base {
		line := lines[i]

		if line.Depth > base {
			prev := lines[i-1]
			if line.Depth > prev.Depth+1 {
				return nil, i, syntaxErrf(ErrOverIndentation, line.LineNo,
					"the line was indented %d levels deeper than the previous line", line.Depth-prev.Depth)
			}

			children, next, err := groupLines(lines, i)
			if err != nil {
				return nil, next, err
			}

			nodes[len(nodes)-1].Children = children
			i = next

			continue
		}

		nodes = append(nodes, line)
		i++
	}

	return nodes, i, nil
}
