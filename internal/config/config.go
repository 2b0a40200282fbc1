// Package config handles configuration loading for newsense.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Feed    FeedConfig    `mapstructure:"feed"    yaml:"feed"`
	Speech  SpeechConfig  `mapstructure:"speech"  yaml:"speech"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FeedConfig holds news feed fetch settings.
type FeedConfig struct {
	URLTemplate string `mapstructure:"url_template" yaml:"url_template"` // one %s verb for the escaped query
	TimeoutSec  int    `mapstructure:"timeout_sec"  yaml:"timeout_sec"`
	MaxArticles int    `mapstructure:"max_articles" yaml:"max_articles"` // must be >= 0
}

// SpeechConfig holds narration settings.
type SpeechConfig struct {
	Language string `mapstructure:"language" yaml:"language"` // e.g. "hi"
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.newsense/config.yaml (home directory)
//  3. /etc/newsense/config.yaml (system)
//
// Environment variables override config file values.
// Format: NEWSENSE_<SECTION>_<KEY>, e.g., NEWSENSE_SPEECH_LANGUAGE
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".newsense"))
	v.AddConfigPath("/etc/newsense")

	v.SetEnvPrefix("NEWSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not required to exist; defaults + env vars suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("NEWSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the pipeline cannot work with.
func (c *Config) validate() error {
	if c.Feed.MaxArticles < 0 {
		return fmt.Errorf("feed.max_articles must be >= 0, got %d", c.Feed.MaxArticles)
	}
	if c.Feed.TimeoutSec <= 0 {
		return fmt.Errorf("feed.timeout_sec must be > 0, got %d", c.Feed.TimeoutSec)
	}
	if !strings.Contains(c.Feed.URLTemplate, "%s") {
		return fmt.Errorf("feed.url_template must contain a %%s verb for the query")
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Feed defaults: Google News RSS search, bounded fetch.
	v.SetDefault("feed.url_template", "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en")
	v.SetDefault("feed.timeout_sec", 10)
	v.SetDefault("feed.max_articles", 5)

	// Speech defaults: Hindi narration.
	v.SetDefault("speech.language", "hi")

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
