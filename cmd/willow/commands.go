package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/willow-css/willow"
	"github.com/willow-css/willow/docgen"
)

var (
	ErrCheckFailed   = errors.New("one or more files failed the check")
	ErrUnknownFormat = errors.New("unknown output format")
)

// CheckCmd represents the check command
type CheckCmd struct {
	Files  []string `arg:"" help:"Specific files to check" optional:"" type:"path"`
	Strict bool     `help:"Treat warnings as failures"`
}

func (c *CheckCmd) Run(ctx *Context) error {
	config, err := willow.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.Strict {
		config.Strict = true
	}

	files, err := collectSources(config, c.Files)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Checking %d file(s)", len(files))
	}

	var failed int

	for _, file := range files {
		root, err := parseFile(config, file)
		if err != nil {
			printSyntaxError(err)

			failed++

			continue
		}

		printWarnings(root)

		if config.Strict && len(root.Warnings) > 0 {
			failed++
			continue
		}

		if ctx.Verbose {
			color.Green("OK %s", file)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(files))
	}

	if !ctx.Quiet {
		color.Green("All %d file(s) passed", len(files))
	}

	return nil
}

// ParseCmd represents the parse command
type ParseCmd struct {
	File   string `arg:"" help:"Source file to parse" type:"path"`
	Format string `help:"Output format" default:"yaml" enum:"yaml,json"`
}

func (p *ParseCmd) Run(ctx *Context) error {
	config, err := willow.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	root, err := parseFile(config, p.File)
	if err != nil {
		printSyntaxError(err)
		return err
	}

	tree := dumpTree(root, p.File)

	var data []byte

	switch p.Format {
	case "yaml":
		data, err = yaml.Marshal(tree)
	case "json":
		data, err = json.MarshalIndent(tree, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, p.Format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	fmt.Println(string(data))

	return nil
}

// DocCmd represents the doc command
type DocCmd struct {
	Files  []string `arg:"" help:"Specific files to document" optional:"" type:"path"`
	Output string   `short:"o" help:"Output directory (defaults to configured output_dir)" type:"path"`
}

func (d *DocCmd) Run(ctx *Context) error {
	config, err := willow.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	outDir := d.Output
	if outDir == "" {
		outDir = config.OutputDir
	}

	files, err := collectSources(config, d.Files)
	if err != nil {
		return err
	}

	var generated int

	for _, file := range files {
		root, err := parseFile(config, file)
		if err != nil {
			printSyntaxError(err)
			return err
		}

		entries, err := docgen.Extract(root)
		if err != nil {
			return fmt.Errorf("failed to extract documentation from %s: %w", file, err)
		}

		if len(entries) == 0 {
			if ctx.Verbose {
				color.Yellow("No loud comments in %s, skipping", file)
			}

			continue
		}

		html := docgen.RenderHTML(entries)

		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".html"

		outPath := filepath.Join(outDir, name)
		if err := writeFile(outPath, html); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}

		generated++

		if ctx.Verbose {
			color.Green("Generated %s", outPath)
		}
	}

	if !ctx.Quiet {
		color.Green("Generated documentation for %d file(s)", generated)
	}

	return nil
}

// InitCmd represents the init command
type InitCmd struct{}

func (i *InitCmd) Run(ctx *Context) error {
	if ctx.Verbose {
		color.Blue("Initializing Willow project")
	}

	for _, dir := range []string{"styles", "public"} {
		if err := ensureDir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if ctx.Verbose {
			color.Green("Created directory: %s", dir)
		}
	}

	if err := createSampleConfig(); err != nil {
		return fmt.Errorf("failed to create sample configuration: %w", err)
	}

	if err := createSampleStylesheet(); err != nil {
		return fmt.Errorf("failed to create sample stylesheet: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Willow project initialized successfully")
		fmt.Println("\nNext steps:")
		fmt.Println("1. Edit willow.yaml to configure input and output directories")
		fmt.Println("2. Write stylesheets in the styles/ directory")
		fmt.Println("3. Run 'willow check' to validate them")
	}

	return nil
}

func createSampleConfig() error {
	if fileExists("willow.yaml") {
		return nil
	}

	configContent := `# Directory searched for *.wlw sources
input_dir: "./styles"

# Directory for generated CSS and documentation
output_dir: "./public"

# Property flavor: "old" (:name value), "new" (name: value), or omit for both
# property_syntax: "new"

# Rendering style: nested, expanded, compact, compressed
style: "nested"

# Annotate generated CSS with source line comments
line_comments: false

# Treat empty-rule warnings as check failures
strict: false
`

	return writeFile("willow.yaml", configContent)
}

func createSampleStylesheet() error {
	path := filepath.Join("styles", "main.wlw")
	if fileExists(path) {
		return nil
	}

	sample := `// Sample Willow stylesheet.

!accent = #4a90d9

body
  font-family: sans-serif
  color: #333

  a
    color = !accent
    text-decoration: none
`

	return writeFile(path, sample)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
