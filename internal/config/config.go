package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment. Paths not
// set explicitly land under DataDir.
type Config struct {
	DataDir       string        `env:"YODIET_DATA_DIR" envDefault:"data"`
	DBPath        string        `env:"YODIET_DB_PATH"`
	LogPath       string        `env:"YODIET_LOG_PATH"`
	LogLevel      string        `env:"YODIET_LOG_LEVEL" envDefault:"info"`
	SessionSecret string        `env:"YODIET_SESSION_SECRET" envDefault:"change_me_in_production"`
	SessionTTL    time.Duration `env:"YODIET_SESSION_TTL" envDefault:"720h"`
	Timezone      string        `env:"TZ" envDefault:"UTC"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "yodiet.db")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.DataDir, "yodiet.log")
	}
	return cfg, nil
}

// SessionTokenPath is where the signed session-restore token lives.
func (cfg Config) SessionTokenPath() string {
	return filepath.Join(cfg.DataDir, "session.token")
}
