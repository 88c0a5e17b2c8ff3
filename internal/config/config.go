package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the server configuration assembled from defaults, an optional
// TOML file, and SDG2_* environment variables.
// Priority: CLI flags > env vars > config file > defaults.
type Config struct {
	// Port is the network port the API server listens on.
	Port int

	// Env names the operating environment (development|test|production).
	Env string

	// APIKeys lists the accepted values for the ?key= query parameter.
	APIKeys []string

	// RateLimit is the per-key request rate per second. Zero disables limiting.
	RateLimit int

	// DataSource points at the indicator data: a directory of CSV files, a
	// zip bundle path, or an http(s) URL to a zip. Empty means generated
	// sample data.
	DataSource string

	// SampleSeed seeds the sample data generator when DataSource is empty.
	SampleSeed int64

	// DBPath is the SQLite database location for the indicator row store.
	DBPath string

	// WebUI enables the embedded dashboard pages.
	WebUI bool

	// Verbose enables chatty dataset logging.
	Verbose bool
}

// Load assembles a Config from built-in defaults, the TOML file at path (if
// any), and environment variable overrides.
func Load(path string) (Config, error) {
	fileCfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:       envIntOrFile("SDG2_PORT", fileCfg.Port, 4000),
		Env:        envOrFile("SDG2_ENV", fileCfg.Env, "development"),
		APIKeys:    envListOrFile("SDG2_API_KEYS", fileCfg.APIKeys, []string{"test"}),
		RateLimit:  envIntOrFile("SDG2_RATE_LIMIT", fileCfg.RateLimit, 100),
		DataSource: envOrFile("SDG2_DATA_SOURCE", fileCfg.DataSource, ""),
		SampleSeed: envInt64OrFile("SDG2_SAMPLE_SEED", fileCfg.SampleSeed, 42),
		DBPath:     envOrFile("SDG2_DB_PATH", fileCfg.DBPath, "./data/sdg2.db"),
		WebUI:      envBoolOrFile("SDG2_WEB_UI", fileCfg.WebUI, true),
		Verbose:    envBoolOrFile("SDG2_VERBOSE", fileCfg.Verbose, false),
	}

	return cfg, nil
}

// envOrFile returns env value, file value, or default (in priority order)
func envOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

func envIntOrFile(key string, fileValue *int, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

func envInt64OrFile(key string, fileValue *int64, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

func envBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

func envListOrFile(key string, fileValue []string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return splitList(value)
	}
	if len(fileValue) > 0 {
		return fileValue
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
