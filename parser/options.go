package parser

import "fmt"

// Property syntax flavors
const (
	PropertySyntaxOld = "old"
	PropertySyntaxNew = "new"
)

// Options are options for a single parse.
type Options struct {
	// Filename is attached to every diagnostic and every node.
	Filename string

	// Line is the line number of the first source line (defaults to 1).
	Line int

	// PropertySyntax forces one property flavor: "old" for ":name value",
	// "new" for "name: value". Empty accepts both. Under "new", an
	// old-style header with no value is read as a selector instead.
	PropertySyntax string

	// Style is a rendering hint passed through unused to the code
	// generator.
	Style string

	// LineComments is consumed by the code generator, not the parser.
	LineComments bool
}

func (o *Options) validate() error {
	switch o.PropertySyntax {
	case "", PropertySyntaxOld, PropertySyntaxNew:
	default:
		return fmt.Errorf("%w: property syntax must be %q or %q, got %q",
			ErrInvalidOption, PropertySyntaxOld, PropertySyntaxNew, o.PropertySyntax)
	}

	return nil
}
