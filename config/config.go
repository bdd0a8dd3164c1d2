// Package config loads runtime settings for the vehicle filter site.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// StartYear is the first model year offered by the year selector.
	StartYear = 2015

	// DefaultVPICAPIURL is the public NHTSA vPIC vehicles API.
	DefaultVPICAPIURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"

	// FileName is the optional project config file read from the working directory.
	FileName = "vehicle-filter.yml"
)

// Config holds all configuration values for the site.
type Config struct {
	VPICAPIURL    string        `mapstructure:"vpic_api_url"`
	VPICTimeout   time.Duration `mapstructure:"vpic_timeout"`
	VPICRateLimit float64       `mapstructure:"vpic_rate_limit"`
	VPICRateBurst int           `mapstructure:"vpic_rate_burst"`

	ServerPort         string        `mapstructure:"port"`
	ServerRateLimitMax int           `mapstructure:"rate_limit_max"`
	ServerRateLimitExp time.Duration `mapstructure:"rate_limit_exp"`

	// SelectionRateLimitMax caps dropdown changes per client per ServerRateLimitExp.
	SelectionRateLimitMax int `mapstructure:"selection_rate_limit_max"`

	PageTTL time.Duration `mapstructure:"page_ttl"`

	// TraceRequests logs an OpenTelemetry span for every vPIC request.
	TraceRequests bool `mapstructure:"trace_requests"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"vpic_api_url":             "VPIC_API_URL",
	"vpic_timeout":             "VPIC_TIMEOUT",
	"vpic_rate_limit":          "VPIC_RATE_LIMIT",
	"vpic_rate_burst":          "VPIC_RATE_BURST",
	"port":                     "PORT",
	"rate_limit_max":           "RATE_LIMIT_MAX",
	"rate_limit_exp":           "RATE_LIMIT_EXP",
	"selection_rate_limit_max": "SELECTION_RATE_LIMIT_MAX",
	"page_ttl":                 "PAGE_TTL",
	"trace_requests":           "TRACE_REQUESTS",
}

// Load reads configuration with precedence ENV vars > project config > defaults.
func Load() (*Config, error) {
	return load(FileName)
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("vpic_api_url", DefaultVPICAPIURL)
	v.SetDefault("vpic_timeout", 30*time.Second)
	v.SetDefault("vpic_rate_limit", 0)
	v.SetDefault("vpic_rate_burst", 1)
	v.SetDefault("port", "8080")
	v.SetDefault("rate_limit_max", 120)
	v.SetDefault("rate_limit_exp", time.Minute)
	v.SetDefault("selection_rate_limit_max", 60)
	v.SetDefault("page_ttl", 30*time.Minute)
	v.SetDefault("trace_requests", false)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if path != "" && fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.VPICAPIURL = strings.TrimRight(cfg.VPICAPIURL, "/")
	if cfg.VPICAPIURL == "" {
		return nil, fmt.Errorf("vpic_api_url must not be empty")
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
