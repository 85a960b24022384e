// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the explicit application configuration. It is built once at
// startup and passed to every component that needs it.
type Config struct {
	// TopicsPath is the topic table workbook.
	TopicsPath string `yaml:"topics_path" env:"ASUNTOS_TOPICS_PATH" env-default:"data/temas.xlsx"`

	// AccountsPath is the account table workbook.
	AccountsPath string `yaml:"accounts_path" env:"ASUNTOS_ACCOUNTS_PATH" env-default:"data/cuentas.xlsx"`

	// SourcesPath is the feed sources YAML file.
	SourcesPath string `yaml:"sources_path" env:"ASUNTOS_SOURCES_PATH" env-default:"data/sources.yaml"`

	// SheetNewsPath is the manually curated news workbook; empty disables
	// sheet ingestion.
	SheetNewsPath string `yaml:"sheet_news_path" env:"ASUNTOS_SHEET_NEWS_PATH" env-default:""`

	// OutputDir receives every generated report.
	OutputDir string `yaml:"output_dir" env:"ASUNTOS_OUTPUT_DIR" env-default:"out"`

	// CacheDir keeps downloaded gazette PDFs; empty disables caching.
	CacheDir string `yaml:"cache_dir" env:"ASUNTOS_CACHE_DIR" env-default:""`

	// GazetteBaseURL overrides the gazette site root.
	GazetteBaseURL string `yaml:"gazette_base_url" env:"ASUNTOS_GAZETTE_BASE_URL" env-default:""`

	// HTTPTimeout is the per-request HTTP timeout.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"ASUNTOS_HTTP_TIMEOUT" env-default:"30s"`

	// FeedWorkers is the feed worker pool width.
	FeedWorkers int `yaml:"feed_workers" env:"ASUNTOS_FEED_WORKERS" env-default:"3"`

	// FeedRetries is the number of attempts per feed source.
	FeedRetries int `yaml:"feed_retries" env:"ASUNTOS_FEED_RETRIES" env-default:"3"`

	// FeedBackoff is the pause between feed retry attempts.
	FeedBackoff time.Duration `yaml:"feed_backoff" env:"ASUNTOS_FEED_BACKOFF" env-default:"2s"`
}

// Load reads configuration from the given YAML file, falling back to
// environment variables and defaults when the path is empty or absent.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
