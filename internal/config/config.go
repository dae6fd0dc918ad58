package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the server configuration. Every field can be set in the
// YAML file and overridden by the corresponding environment variable.
type Config struct {
	Port         string `yaml:"port"`          // PORT
	MediaDir     string `yaml:"media_dir"`     // MEDIA_DIR
	StorageType  string `yaml:"storage_type"`  // STORAGE_TYPE: memory, redis or sqlite
	RedisURL     string `yaml:"redis_url"`     // REDIS_URL
	SQLitePath   string `yaml:"sqlite_path"`   // SQLITE_PATH
	SeedPassword string `yaml:"seed_password"` // SEED_PASSWORD
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Port:        "8080",
		MediaDir:    "videos",
		StorageType: "sqlite",
		SQLitePath:  "users.db",
	}
}

// Load reads the YAML config file and applies environment overrides.
// A missing file is not an error; defaults are used instead.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.Port, "PORT")
	setFromEnv(&c.MediaDir, "MEDIA_DIR")
	setFromEnv(&c.StorageType, "STORAGE_TYPE")
	setFromEnv(&c.RedisURL, "REDIS_URL")
	setFromEnv(&c.SQLitePath, "SQLITE_PATH")
	setFromEnv(&c.SeedPassword, "SEED_PASSWORD")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
