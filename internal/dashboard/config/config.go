package config

import (
	"strings"
	"time"

	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/config"
)

// Backend holds the location of the analytics backend the dashboard talks to.
type Backend struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIPrefix           string        `mapstructure:"api_prefix"`
	HealthPath          string        `mapstructure:"health_path"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// APIBaseURL is the origin joined with the versioned API prefix.
func (b Backend) APIBaseURL() string {
	return strings.TrimRight(b.BaseURL, "/") + b.APIPrefix
}

// HealthURL is the unversioned liveness endpoint.
func (b Backend) HealthURL() string {
	return strings.TrimRight(b.BaseURL, "/") + b.HealthPath
}

// UI holds presentation settings.
type UI struct {
	Title    string        `mapstructure:"title"`
	FlashTTL time.Duration `mapstructure:"flash_ttl"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	API     config.API    `mapstructure:"api"`
	Backend Backend       `mapstructure:"backend"`
	UI      UI            `mapstructure:"ui"`
}

var defaults = map[string]interface{}{
	"app.name":                       "stock-dashboard",
	"logger.level":                   "info",
	"logger.encoding":                "json",
	"api.port":                       8501,
	"backend.base_url":               "http://localhost:8000",
	"backend.api_prefix":             common.DefaultBackendAPIPrefix,
	"backend.health_path":            common.DefaultBackendHealthPath,
	"backend.timeout":                "30s",
	"backend.max_request_per_minute": 0,
	"ui.title":                       "📈 Stock Market Finance Application",
	"ui.flash_ttl":                   "1m",
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
