package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsDerivePathsFromDataDir(t *testing.T) {
	t.Setenv("YODIET_DATA_DIR", "")
	t.Setenv("YODIET_DB_PATH", "")
	t.Setenv("YODIET_LOG_PATH", "")
	t.Setenv("YODIET_SESSION_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != filepath.Join("data", "yodiet.db") {
		t.Fatalf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.LogPath != filepath.Join("data", "yodiet.log") {
		t.Fatalf("unexpected default log path %q", cfg.LogPath)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Fatalf("unexpected default session ttl %v", cfg.SessionTTL)
	}
	if cfg.SessionTokenPath() != filepath.Join("data", "session.token") {
		t.Fatalf("unexpected token path %q", cfg.SessionTokenPath())
	}
}

func TestLoadHonorsExplicitPaths(t *testing.T) {
	t.Setenv("YODIET_DATA_DIR", "/var/lib/yodiet")
	t.Setenv("YODIET_DB_PATH", "/tmp/custom.db")
	t.Setenv("YODIET_LOG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("explicit db path ignored: %q", cfg.DBPath)
	}
	if cfg.LogPath != filepath.Join("/var/lib/yodiet", "yodiet.log") {
		t.Fatalf("log path must follow the data dir: %q", cfg.LogPath)
	}
}
