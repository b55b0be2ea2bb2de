package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/willow-css/willow"
	"github.com/willow-css/willow/parser"
)

func version() string {
	return willow.Version
}

// collectSources resolves the files a command should operate on. Explicit
// paths win; otherwise the configured input directory is walked for .wlw
// files.
func collectSources(config *willow.Config, paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}

	var files []string

	err := filepath.WalkDir(config.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".wlw") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", config.InputDir, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .wlw files under %s", willow.ErrNoInputFiles, config.InputDir)
	}

	return files, nil
}

// parserOptions maps project configuration onto parser options for one file.
func parserOptions(config *willow.Config, filename string) parser.Options {
	opts := parser.Options{
		Filename:     filename,
		Style:        config.Style,
		LineComments: config.LineComments,
	}

	switch config.PropertySyntax {
	case "old":
		opts.PropertySyntax = parser.PropertySyntaxOld
	case "new":
		opts.PropertySyntax = parser.PropertySyntaxNew
	}

	return opts
}

// parseFile reads and parses a single source file.
func parseFile(config *willow.Config, path string) (*parser.Root, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	opts := parserOptions(config, path)

	return parser.Parse(string(src), &opts)
}

// printSyntaxError prints a parse failure with a source excerpt when one is
// attached to the error.
func printSyntaxError(err error) {
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		color.Red("%v", err)
		return
	}

	color.Red("%v", syntaxErr)

	start, lines := syntaxErr.SourceContext(2)
	for i, line := range lines {
		lineNo := start + i

		marker := "  "
		if lineNo == syntaxErr.Line {
			marker = "> "
		}

		fmt.Fprintf(os.Stderr, "%s%4d | %s\n", marker, lineNo, line)
	}
}

func printWarnings(root *parser.Root) {
	for _, warning := range root.Warnings {
		if warning.File != "" {
			color.Yellow("WARNING on line %d of %s: %s", warning.Line, warning.File, warning.Message)
		} else {
			color.Yellow("WARNING on line %d: %s", warning.Line, warning.Message)
		}
	}
}

// ensureDir creates a directory if it doesn't exist
func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}

	return nil
}

// writeFile writes content to a file, creating directories if necessary
func writeFile(path, content string) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}
