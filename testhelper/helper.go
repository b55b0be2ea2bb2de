// Package testhelper provides small utilities shared by tests.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingWS = regexp.MustCompile(`^\s+`)

// TrimIndent strips the common leading indentation from a backquoted source
// literal. The indentation of the second line (the first after the opening
// backquote) sets the margin; whatever indentation remains past the margin is
// preserved exactly, since it is significant to the tokenizer.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var margin string
	if len(lines) > 1 {
		margin = leadingWS.FindString(lines[1])
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}

	return strings.Join(lines[1:], "\n")
}
