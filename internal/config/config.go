// Package config loads the user's PokePort configuration from a TOML file
// under the XDG config directory, creating it with defaults on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	configDirName  = "pokeport"
	configFileName = "config.toml"
	dataDirName    = "pokeport"
	dbFileName     = "pokeport.db"

	// APIKeyEnv overrides the lookup API key from the environment.
	// A .env file in the working directory is honored too.
	APIKeyEnv = "POKEPORT_API_KEY"

	defaultBaseURL          = "https://api.pokemontcg.io/v2"
	defaultTimeoutSeconds   = 10
	defaultCacheTTLSeconds  = 300
	defaultPageSize         = 250
	defaultAdvancedPageSize = 100
)

// Config is the persisted application configuration.
type Config struct {
	DatabasePath string       `toml:"database_path"`
	Lookup       LookupConfig `toml:"lookup"`
}

// LookupConfig configures the external card-metadata client.
type LookupConfig struct {
	BaseURL string `toml:"base_url"`
	// APIKey may be set here, but the environment takes precedence so the
	// key never has to live in a checked-in file.
	APIKey           string `toml:"api_key,omitempty"`
	TimeoutSeconds   int    `toml:"timeout_seconds"`
	CacheTTLSeconds  int    `toml:"cache_ttl_seconds"`
	PageSize         int    `toml:"page_size"`
	AdvancedPageSize int    `toml:"advanced_page_size"`
}

// XDGConfigHome returns XDG_CONFIG_HOME or its default.
func XDGConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns XDG_DATA_HOME or its default.
func XDGDataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(XDGConfigHome(), configDirName, configFileName)
}

// DefaultDatabasePath returns where the collection database lives unless
// overridden in config.
func DefaultDatabasePath() string {
	return filepath.Join(XDGDataHome(), dataDirName, dbFileName)
}

// Default returns a config populated with defaults.
func Default() *Config {
	return &Config{
		DatabasePath: DefaultDatabasePath(),
		Lookup: LookupConfig{
			BaseURL:          defaultBaseURL,
			TimeoutSeconds:   defaultTimeoutSeconds,
			CacheTTLSeconds:  defaultCacheTTLSeconds,
			PageSize:         defaultPageSize,
			AdvancedPageSize: defaultAdvancedPageSize,
		},
	}
}

// Load reads the config file, creating it with defaults if it doesn't
// exist. The lookup API key is taken from the environment when set.
func Load() (*Config, error) {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(cfg); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	fillDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes the config to its standard location, creating parent
// directories as needed.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// fillDefaults backfills zero values so a hand-edited partial config
// still works.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = def.DatabasePath
	}
	if cfg.Lookup.BaseURL == "" {
		cfg.Lookup.BaseURL = def.Lookup.BaseURL
	}
	if cfg.Lookup.TimeoutSeconds <= 0 {
		cfg.Lookup.TimeoutSeconds = def.Lookup.TimeoutSeconds
	}
	if cfg.Lookup.CacheTTLSeconds <= 0 {
		cfg.Lookup.CacheTTLSeconds = def.Lookup.CacheTTLSeconds
	}
	if cfg.Lookup.PageSize <= 0 {
		cfg.Lookup.PageSize = def.Lookup.PageSize
	}
	if cfg.Lookup.AdvancedPageSize <= 0 {
		cfg.Lookup.AdvancedPageSize = def.Lookup.AdvancedPageSize
	}
}

func applyEnv(cfg *Config) {
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Lookup.APIKey = key
	}
}
