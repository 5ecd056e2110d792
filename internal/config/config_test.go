package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	require.Equal(t, 7, cfg.Scrape.LookbackDays)
	require.Equal(t, 100, cfg.Scrape.PageSize)
	require.Equal(t, float64(1), cfg.Scrape.RequestsPerSec)
	require.Equal(t, "token_mentions.csv", cfg.Output.Path)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dexscraper.yml")
	body := `
scrape:
  lookback_days: 3
  requests_per_sec: 0.5
output:
  path: out/mentions.csv
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Scrape.LookbackDays)
	require.Equal(t, 0.5, cfg.Scrape.RequestsPerSec)
	require.Equal(t, "out/mentions.csv", cfg.Output.Path)
	// untouched keys keep their defaults
	require.Equal(t, 100, cfg.Scrape.PageSize)
	require.Equal(t, "dexscraper.log", cfg.Output.LogFile)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "secret")
	t.Setenv("TWITTER_LIST_ID", "42")

	cfg := Default()
	cfg.FromEnv()
	require.Equal(t, "secret", cfg.API.BearerToken)
	require.Equal(t, "42", cfg.API.ListID)
}

func TestFromEnvPlaceholders(t *testing.T) {
	t.Setenv("TWITTER_BEARER_TOKEN", "")
	t.Setenv("TWITTER_LIST_ID", "")

	cfg := Default()
	cfg.FromEnv()
	require.Equal(t, PlaceholderBearerToken, cfg.API.BearerToken)
	require.Equal(t, PlaceholderListID, cfg.API.ListID)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.FromEnv()

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK())
	require.Equal(t, cfg.Scrape, out.Scrape)

	cfg.Scrape.LookbackDays = 0
	cfg.Scrape.RequestsPerSec = -1
	cfg.Output.Path = "  "
	_, res = NormalizeAndValidate(cfg)
	require.False(t, res.OK())
	require.Len(t, res.Errors, 3)
}

func TestValidateClampsPageSize(t *testing.T) {
	cfg := Default()
	cfg.Scrape.PageSize = 500

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK())
	require.NotEmpty(t, res.Warnings)
	require.Equal(t, 100, out.Scrape.PageSize)
}
