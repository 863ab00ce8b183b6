package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root   string   `yaml:"root"`
		Ignore []string `yaml:"ignore"` // directory names skipped while crawling
	} `yaml:"project"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Lifecycle struct {
		// ExtraMethods adds subsignatures to a role's lifecycle table,
		// keyed by component type name (e.g. "Activity"). Useful for
		// vendor framework forks with additional callbacks.
		ExtraMethods map[string][]string `yaml:"extra_methods"`
	} `yaml:"lifecycle"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Database.Path = "droidlens.db"
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config; a missing file keeps the defaults
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("DROIDLENS_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if db := os.Getenv("DROIDLENS_DB"); db != "" {
		cfg.Database.Path = db
	}

	return cfg, nil
}
