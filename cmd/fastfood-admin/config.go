package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// fileConfig is the YAML server configuration. Flags override its fields.
type fileConfig struct {
	Address         string           `yaml:"address"`
	NoticesAddress  string           `yaml:"notices_address"`
	BasePath        string           `yaml:"base_path"`
	LogLevel        string           `yaml:"log_level"`
	Fixtures        string           `yaml:"fixtures"`
	Now             string           `yaml:"now"`
	TemplatesDir    string           `yaml:"templates_dir"`
	Theme           restaurant.Theme `yaml:"theme"`
	ChartAssetsHost string           `yaml:"chart_assets_host"`
	ChartCacheTTL   time.Duration    `yaml:"chart_cache_ttl"`
	Analytics       analyticsConfig  `yaml:"analytics"`
}

type analyticsConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	StoreID string        `yaml:"store_id"`
	Timeout time.Duration `yaml:"timeout"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Address:  ":9876",
		BasePath: "/admin",
		LogLevel: "info",
	}
}

func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return cfg, fmt.Errorf("fastfood-admin: open config %s: %w", path, err)
	}
	defer f.Close()
	return decodeConfig(f, cfg)
}

func decodeConfig(r io.Reader, cfg fileConfig) (fileConfig, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("fastfood-admin: parse config: %w", err)
	}
	return cfg, nil
}

// apply copies explicitly set flags over the file values.
func (cmd *serveCmd) apply(cfg fileConfig) fileConfig {
	if cmd.Address != "" {
		cfg.Address = cmd.Address
	}
	if cmd.NoticesAddress != "" {
		cfg.NoticesAddress = cmd.NoticesAddress
	}
	if cmd.BasePath != "" {
		cfg.BasePath = cmd.BasePath
	}
	if cmd.LogLevel != "" {
		cfg.LogLevel = cmd.LogLevel
	}
	if cmd.Fixtures != "" {
		cfg.Fixtures = cmd.Fixtures
	}
	if cmd.Now != "" {
		cfg.Now = cmd.Now
	}
	if cmd.TemplatesDir != "" {
		cfg.TemplatesDir = cmd.TemplatesDir
	}
	if cmd.Dark {
		cfg.Theme.Dark = true
	}
	if cmd.AnalyticsURL != "" {
		cfg.Analytics.BaseURL = cmd.AnalyticsURL
	}
	return cfg
}

func (cfg fileConfig) clock() (func() time.Time, error) {
	if cfg.Now == "" {
		return time.Now, nil
	}
	at, ok := tabular.ParseTime(cfg.Now)
	if !ok {
		return nil, fmt.Errorf("fastfood-admin: invalid now %q", cfg.Now)
	}
	return func() time.Time { return at }, nil
}
