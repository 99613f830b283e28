package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Notion struct {
		Token      string `yaml:"token"`
		DatabaseID string `yaml:"database_id"`
	} `yaml:"notion"`

	Feeds struct {
		URLs     []string `yaml:"urls"`
		MaxItems int      `yaml:"max_items"`
	} `yaml:"feeds"`

	HackerNews struct {
		Enabled     bool   `yaml:"enabled"`
		BaseURL     string `yaml:"base_url"`
		MaxItems    int    `yaml:"max_items"`
		AutoProcess bool   `yaml:"auto_process"` // flip new stories straight to Processing
	} `yaml:"hackernews"`

	LLM LLMConfig `yaml:"llm"`

	Extraction ExtractionConfig `yaml:"extraction"`

	Cache struct {
		SeenFile  string `yaml:"seen_file"`
		ContentDB string `yaml:"content_db"` // empty disables the content cache
	} `yaml:"cache"`

	Run struct {
		LogDir      string        `yaml:"log_dir"`
		RecordDelay time.Duration `yaml:"record_delay"` // pause between processed records
	} `yaml:"run"`
}

// LLMConfig holds LLM provider configuration for article analysis
type LLMConfig struct {
	Provider    string        `yaml:"provider"` // openai or deepseek, fixed for the run
	APIKey      string        `yaml:"api_key"`
	Endpoint    string        `yaml:"endpoint"` // optional OpenAI-compatible endpoint override
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MinTextLength int           `yaml:"min_text_length"`
	MaxChars      int           `yaml:"max_chars"`
}

// Load reads configuration from a YAML file. Environment variables inside the
// file are expanded before parsing, so secrets can stay in the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for collectors
	if cfg.Feeds.MaxItems == 0 {
		cfg.Feeds.MaxItems = 5
	}
	if cfg.HackerNews.MaxItems == 0 {
		cfg.HackerNews.MaxItems = 5
	}

	// set defaults for LLM
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 4000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 2 * time.Minute
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "newsdigest/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
	if cfg.Extraction.MaxChars == 0 {
		cfg.Extraction.MaxChars = 50000
	}

	// set defaults for local state and run behavior
	if cfg.Cache.SeenFile == "" {
		cfg.Cache.SeenFile = "data/processed_urls.txt"
	}
	if cfg.Run.LogDir == "" {
		cfg.Run.LogDir = "logs"
	}
	if cfg.Run.RecordDelay == 0 {
		cfg.Run.RecordDelay = 3 * time.Second
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Notion.Token == "" {
		return fmt.Errorf("notion.token is required")
	}
	if cfg.Notion.DatabaseID == "" {
		return fmt.Errorf("notion.database_id is required")
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if cfg.LLM.Provider != "openai" && cfg.LLM.Provider != "deepseek" {
		return fmt.Errorf("llm.provider must be openai or deepseek, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if len(cfg.Feeds.URLs) == 0 && !cfg.HackerNews.Enabled {
		return fmt.Errorf("no sources configured, need feeds.urls or hackernews.enabled")
	}
	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	return nil
}
