package distcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up at the root of the tree being checked.
const ConfigFileName = ".distcheck.toml"

// Config holds optional per-project settings loaded from
// .distcheck.toml. All fields default to zero values; flags and
// built-in defaults fill the gaps.
type Config struct {
	Check CheckConfig `toml:"check"`
	Icons IconsConfig `toml:"icons"`
}

// CheckConfig configures the tarball comparison.
type CheckConfig struct {
	// Extra glob patterns merged with the built-in ignore lists.
	IgnoreTree    []string `toml:"ignore_tree"`
	IgnoreTarball []string `toml:"ignore_tarball"`
	// Git binary used by the exec lister.
	GitBin string `toml:"git_bin"`
}

// IconsConfig configures the icon export defaults.
type IconsConfig struct {
	Renderer string `toml:"renderer"`
	Source   string `toml:"source"`
	ID       string `toml:"id"`
	Name     string `toml:"name"`
}

// LoadConfig reads .distcheck.toml from dir. A missing file yields an
// empty config; a malformed one is an error.
func LoadConfig(dir string) (*Config, error) {
	var cfg Config
	path := filepath.Join(dir, ConfigFileName)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
