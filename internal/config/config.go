package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		CSVPath string `yaml:"csv_path"`
		Symbol  string `yaml:"symbol"` // set to fetch from Yahoo Finance instead of CSV
		Range   string `yaml:"range"`  // Yahoo lookback window, e.g. "1y"
	} `yaml:"data_source"`
	Analysis struct {
		ConfidenceLevel float64 `yaml:"confidence_level"`
		ChartPath       string  `yaml:"chart_path"` // empty disables chart output
	} `yaml:"analysis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty means run once and exit
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.DataSource.CSVPath = v
	}
	if v := os.Getenv("YAHOO_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("CONFIDENCE_LEVEL"); v != "" {
		var level float64
		if _, err := fmt.Sscanf(v, "%f", &level); err == nil {
			cfg.Analysis.ConfidenceLevel = level
		}
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Analysis.ChartPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Analysis.ConfidenceLevel == 0 {
		cfg.Analysis.ConfidenceLevel = 0.95
	}
	if cfg.DataSource.CSVPath == "" && cfg.DataSource.Symbol == "" {
		cfg.DataSource.CSVPath = "data/market_data.csv"
	}
	if cfg.DataSource.Range == "" {
		cfg.DataSource.Range = "1y"
	}

	return cfg, nil
}

// Validate checks that the configuration can produce a meaningful analysis.
func (c *Config) Validate() error {
	level := c.Analysis.ConfidenceLevel
	if level <= 0 || level >= 1 {
		return fmt.Errorf("analysis.confidence_level must be in (0, 1) exclusive, got %v", level)
	}
	if c.DataSource.CSVPath == "" && c.DataSource.Symbol == "" {
		return fmt.Errorf("either data_source.csv_path or data_source.symbol is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
