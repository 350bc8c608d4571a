package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Storage backend names accepted in [core] storage.
const (
	StorageFS   = "fs"
	StorageBolt = "bolt"
)

// Config holds repository-local settings read from .vex/config.toml.
type Config struct {
	Core CoreConfig `toml:"core"`
	Diff DiffConfig `toml:"diff"`
}

// CoreConfig selects storage behavior.
type CoreConfig struct {
	Storage string `toml:"storage"`
}

// DiffConfig controls diff rendering.
type DiffConfig struct {
	Context int `toml:"context"`
}

func defaultConfig() *Config {
	return &Config{
		Core: CoreConfig{Storage: StorageFS},
		Diff: DiffConfig{Context: 3},
	}
}

func configPath(vexDir string) string {
	return filepath.Join(vexDir, "config.toml")
}

// readConfig loads .vex/config.toml. A missing file yields defaults.
func readConfig(vexDir string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath(vexDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("read config: parse: %w", err)
	}
	if cfg.Diff.Context <= 0 {
		cfg.Diff.Context = defaultConfig().Diff.Context
	}
	return cfg, nil
}

// writeConfig writes .vex/config.toml.
func writeConfig(vexDir string, cfg *Config) error {
	f, err := os.Create(configPath(vexDir))
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config: encode: %w", err)
	}
	return nil
}
