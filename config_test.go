package willow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "willow.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, ".", config.InputDir)
	assert.Equal(t, ".", config.OutputDir)
	assert.Equal(t, "nested", config.Style)
	assert.False(t, config.Strict)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
input_dir: "./styles"
output_dir: "./public"
property_syntax: "new"
style: "compressed"
line_comments: true
strict: true
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "./styles", config.InputDir)
	assert.Equal(t, "./public", config.OutputDir)
	assert.Equal(t, "new", config.PropertySyntax)
	assert.Equal(t, "compressed", config.Style)
	assert.True(t, config.LineComments)
	assert.True(t, config.Strict)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
input_dir: "./styles"
input_dri: "./typo"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("bad property syntax", func(t *testing.T) {
		path := writeConfig(t, `property_syntax: "both"`)

		_, err := LoadConfig(path)
		assert.IsError(t, err, ErrConfigValidation)
	})

	t.Run("bad style", func(t *testing.T) {
		path := writeConfig(t, `style: "pretty"`)

		_, err := LoadConfig(path)
		assert.IsError(t, err, ErrConfigValidation)
	})
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("WILLOW_SRC", "/srv/styles")
	t.Setenv("WILLOW_OUT", "/srv/public")

	path := writeConfig(t, `
input_dir: "${WILLOW_SRC}"
output_dir: "$WILLOW_OUT"
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "/srv/styles", config.InputDir)
	assert.Equal(t, "/srv/public", config.OutputDir)
}
