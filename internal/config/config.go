package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/saadjs/fittrack/internal/app"
	"github.com/saadjs/fittrack/internal/db"
)

const (
	EnvDBPath   = "FITTRACK_DB_PATH"
	EnvDBDriver = "FITTRACK_DB_DRIVER"
	EnvLogLevel = "FITTRACK_LOG_LEVEL"

	defaultLogLevel = "warn"
)

type Config struct {
	DBPath   string
	DBDriver string
	LogLevel string
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		DBPath:   strings.TrimSpace(os.Getenv(EnvDBPath)),
		LogLevel: strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
	}
	driver, err := db.NormalizeDriver(os.Getenv(EnvDBDriver))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDBDriver, err)
	}
	cfg.DBDriver = driver
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.DBPath == "" {
		path, err := app.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
