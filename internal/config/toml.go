package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quotes QuotesConfig `toml:"quotes"`
	Race   RaceConfig   `toml:"race"`
}

// QuotesConfig maps passage source settings.
type QuotesConfig struct {
	Source       *string `toml:"source"`
	APIURL       *string `toml:"api-url"`
	Timeout      *int    `toml:"timeout"`
	OfflineCache *bool   `toml:"offline-cache"`
}

// RaceConfig maps race UI settings.
type RaceConfig struct {
	RefreshMs *int `toml:"refresh-ms"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
