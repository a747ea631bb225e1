package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultDBPath is used when DB_PATH is not set.
const DefaultDBPath = "db/stpaul_crimes.sqlite3"

type Config struct {
	DBPath string
}

// Load reads configuration from the environment, loading a local .env
// file first when one exists. Only the database file location is
// configurable; everything else is fixed.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{
		DBPath: os.Getenv("DB_PATH"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	return cfg
}
