package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(APIKeyEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := os.Stat(Path()); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
	if cfg.Lookup.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Lookup.BaseURL, defaultBaseURL)
	}
	if cfg.Lookup.CacheTTLSeconds != defaultCacheTTLSeconds {
		t.Errorf("CacheTTLSeconds = %d, want %d", cfg.Lookup.CacheTTLSeconds, defaultCacheTTLSeconds)
	}
	if cfg.DatabasePath != DefaultDatabasePath() {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, DefaultDatabasePath())
	}
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(APIKeyEnv, "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lookup.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want %q", cfg.Lookup.APIKey, "from-env")
	}
}

func TestLoad_BackfillsPartialConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(APIKeyEnv, "")

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	partial := "database_path = \"/tmp/cards.db\"\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/cards.db" {
		t.Errorf("DatabasePath = %q, want /tmp/cards.db", cfg.DatabasePath)
	}
	if cfg.Lookup.PageSize != defaultPageSize {
		t.Errorf("PageSize = %d, want backfilled default %d", cfg.Lookup.PageSize, defaultPageSize)
	}
}
