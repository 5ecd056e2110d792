package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Placeholder credentials used when the environment is not set, so a
// misconfigured run fails at the API instead of at startup.
const (
	PlaceholderBearerToken = "your_bearer_token_here"
	PlaceholderListID      = "your_list_id_here"
)

type Config struct {
	API struct {
		BaseURL     string `yaml:"base_url"`
		BearerToken string `yaml:"-"` // env only, never from file
		ListID      string `yaml:"-"` // env only, never from file
	} `yaml:"api"`

	Scrape struct {
		LookbackDays   int     `yaml:"lookback_days"`
		PageSize       int     `yaml:"page_size"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
	} `yaml:"scrape"`

	Output struct {
		Path    string `yaml:"path"`
		LogFile string `yaml:"log_file"`
	} `yaml:"output"`
}

func Default() Config {
	var cfg Config
	cfg.Scrape.LookbackDays = 7
	cfg.Scrape.PageSize = 100
	cfg.Scrape.RequestsPerSec = 1
	cfg.Output.Path = "token_mentions.csv"
	cfg.Output.LogFile = "dexscraper.log"
	return cfg
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults already describe a working setup.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv fills the credentials from the process environment, keeping
// the placeholder fallbacks when unset.
func (c *Config) FromEnv() {
	c.API.BearerToken = envOr("TWITTER_BEARER_TOKEN", PlaceholderBearerToken)
	c.API.ListID = envOr("TWITTER_LIST_ID", PlaceholderListID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
