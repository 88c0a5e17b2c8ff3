package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig represents the TOML configuration file structure. Scalar fields
// are pointers so an absent key can be told apart from a zero value.
type fileConfig struct {
	Port       *int     `toml:"port"`
	Env        string   `toml:"env"`
	APIKeys    []string `toml:"api_keys"`
	RateLimit  *int     `toml:"rate_limit"`
	DataSource string   `toml:"data_source"`
	SampleSeed *int64   `toml:"sample_seed"`
	DBPath     string   `toml:"db_path"`
	WebUI      *bool    `toml:"web_ui"`
	Verbose    *bool    `toml:"verbose"`
}

// loadFile loads configuration from the TOML file at path. An empty path
// yields an empty fileConfig; a path that names a missing file is an error,
// so a mistyped -config flag never silently falls back to defaults.
func loadFile(path string) (*fileConfig, error) {
	cfg := &fileConfig{}

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
