package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"BrightFeed/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "0 * * * *", cfg.Scheduler.CronExpression)
	require.Len(t, cfg.Sources, 7, "the seven curated positive-news feeds")
	require.Equal(t, "Good News Network", cfg.Sources[0].Name)
}

func TestLoadMergesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
scheduler:
  cronExpression: "*/15 * * * *"
filter:
  sentimentFloor: -0.5
  admissionThreshold: 30
sources:
  - name: Local Wire
    feedUrl: https://local.example/feed
    icon: sparkles
    defaultCategory: environment
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv(configPathEnv, path)

	cfg := Load()

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "*/15 * * * *", cfg.Scheduler.CronExpression)
	require.Len(t, cfg.Sources, 1)
	require.Equal(t, "Local Wire", cfg.Sources[0].Name)

	policy := cfg.Filter.Policy()
	require.Equal(t, -0.5, policy.SentimentFloor)
	require.Equal(t, 30, policy.AdmissionThreshold)
	// Untouched pieces keep the built-in defaults.
	require.NotEmpty(t, policy.BlockedKeywords)
	require.NotEmpty(t, policy.PositiveKeywords)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(databaseDSNEnv, "postgres://env@db:5432/feeds")
	t.Setenv(inferenceURLEnv, "https://ml.internal/score")
	t.Setenv(inferenceKeyEnv, "hunter2")

	cfg := Load()

	require.Equal(t, "postgres://env@db:5432/feeds", cfg.Database.DSN)
	require.Equal(t, "https://ml.internal/score", cfg.Sentiment.InferenceURL)
	require.Equal(t, "hunter2", cfg.Sentiment.APIKey)
}

func TestDomainSources(t *testing.T) {
	disabled := false
	cfg := Config{Sources: []SourceConfig{
		{Name: "One", FeedURL: "https://one.example/feed", DefaultCategory: "environment"},
		{Name: "Two", FeedURL: "https://two.example/feed", DefaultCategory: "not-a-category", Enabled: &disabled},
	}}

	sources := cfg.DomainSources()
	require.Len(t, sources, 2)

	require.NotEmpty(t, sources[0].ID)
	require.True(t, sources[0].Enabled, "enabled defaults to true")
	require.Equal(t, domain.CategoryEnvironment, sources[0].DefaultCategory)

	require.False(t, sources[1].Enabled)
	require.Equal(t, domain.CategoryGoodNews, sources[1].DefaultCategory,
		"unknown category falls back to good_news")
}

func TestFetchTimeoutDefault(t *testing.T) {
	require.Equal(t, "20s", FetchConfig{}.Timeout().String())
	require.Equal(t, "5s", FetchConfig{TimeoutSeconds: 5}.Timeout().String())
}
