// Package willow holds project-level configuration for the Willow stylesheet
// language toolchain.
package willow

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Version is the toolchain version.
const Version = "0.1.0"

// Config represents the willow.yaml project configuration
type Config struct {
	// InputDir is the directory searched for *.wlw sources.
	InputDir string `yaml:"input_dir"`
	// OutputDir receives generated CSS and doc fragments.
	OutputDir string `yaml:"output_dir"`
	// PropertySyntax forces one property flavor: "old", "new", or empty for
	// both.
	PropertySyntax string `yaml:"property_syntax"`
	// Style is the rendering style hint passed to the generator.
	Style string `yaml:"style"`
	// LineComments asks the generator to annotate output with source lines.
	LineComments bool `yaml:"line_comments"`
	// Strict turns empty-rule warnings into failures in the check command.
	Strict bool `yaml:"strict"`
}

var knownStyles = []string{"", "nested", "expanded", "compact", "compressed"}

// LoadConfig loads configuration from the specified file. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	expandConfigEnvVars(&config)

	return &config, nil
}

func getDefaultConfig() *Config {
	return &Config{
		InputDir:  ".",
		OutputDir: ".",
		Style:     "nested",
	}
}

func validateConfig(config *Config) error {
	switch config.PropertySyntax {
	case "", "old", "new":
	default:
		return fmt.Errorf("%w: property_syntax must be \"old\" or \"new\", got %q",
			ErrConfigValidation, config.PropertySyntax)
	}

	if !slices.Contains(knownStyles, config.Style) {
		return fmt.Errorf("%w: unknown style %q", ErrConfigValidation, config.Style)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	envBraceRE = regexp.MustCompile(`\$\{([^}]+)\}`)
	envBareRE  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = envBraceRE.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return envBareRE.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

func expandConfigEnvVars(config *Config) {
	config.InputDir = expandEnvVars(config.InputDir)
	config.OutputDir = expandEnvVars(config.OutputDir)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
