package distcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hayeah/distcheck/internal/assert"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		assert.NoError(err)
		assert.Empty(cfg.Check.IgnoreTree)
		assert.Empty(cfg.Icons.Renderer)
	})

	t.Run("parses check and icons sections", func(t *testing.T) {
		dir := t.TempDir()
		content := `
[check]
ignore_tree = ["*.md"]
ignore_tarball = ["MANIFEST"]
git_bin = "/usr/local/bin/git"

[icons]
renderer = "rsvg-convert"
source = "hicolor.svg"
id = "appicon"
`
		path := filepath.Join(dir, ConfigFileName)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := LoadConfig(dir)
		assert.NoError(err)
		assert.Equal([]string{"*.md"}, cfg.Check.IgnoreTree)
		assert.Equal([]string{"MANIFEST"}, cfg.Check.IgnoreTarball)
		assert.Equal("/usr/local/bin/git", cfg.Check.GitBin)
		assert.Equal("rsvg-convert", cfg.Icons.Renderer)
		assert.Equal("hicolor.svg", cfg.Icons.Source)
		assert.Equal("appicon", cfg.Icons.ID)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFileName)
		if err := os.WriteFile(path, []byte("[check\n"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		_, err := LoadConfig(dir)
		assert.ErrorContains(err, "failed to parse")
	})
}
