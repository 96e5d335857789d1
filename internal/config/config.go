package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Provider credentials are read
// here once; refresh and rotation happen outside this process.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Primary struct {
		BaseURL     string `yaml:"base_url"`
		AppID       string `yaml:"app_id"`
		AccessToken string `yaml:"access_token"`
	} `yaml:"primary"`
	Fetch struct {
		TimeoutSec    int    `yaml:"timeout_sec"`
		DefaultPeriod string `yaml:"default_period"`
	} `yaml:"fetch"`
	SymbolsFile string `yaml:"symbols_file"`
	Watchlist   struct {
		Tickers []string `yaml:"tickers"`
		Cron    string   `yaml:"cron"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults carry it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("FYERS_BASE_URL"); v != "" {
		cfg.Primary.BaseURL = v
	}
	if v := os.Getenv("FYERS_APP_ID"); v != "" {
		cfg.Primary.AppID = v
	}
	if v := os.Getenv("FYERS_ACCESS_TOKEN"); v != "" {
		cfg.Primary.AccessToken = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		var sec int
		if _, err := fmt.Sscanf(v, "%d", &sec); err == nil && sec > 0 {
			cfg.Fetch.TimeoutSec = sec
		}
	}
	if v := os.Getenv("SYMBOLS_FILE"); v != "" {
		cfg.SymbolsFile = v
	}
	if v := os.Getenv("WATCHLIST_CRON"); v != "" {
		cfg.Watchlist.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Fetch.TimeoutSec == 0 {
		cfg.Fetch.TimeoutSec = 5
	}
	if cfg.Fetch.DefaultPeriod == "" {
		cfg.Fetch.DefaultPeriod = "1y"
	}
	if cfg.Watchlist.Cron == "" {
		// every 15 minutes during NSE trading hours, Mon-Fri
		cfg.Watchlist.Cron = "0 */15 9-15 * * 1-5"
	}

	return cfg, nil
}

// Validate checks constraints that Load cannot default away.
func (c *Config) Validate() error {
	if c.Fetch.TimeoutSec <= 0 {
		return fmt.Errorf("fetch.timeout_sec must be positive")
	}
	if c.Primary.AccessToken != "" && c.Primary.AppID == "" {
		return fmt.Errorf("primary.app_id is required when primary.access_token is set")
	}
	return nil
}
