// Package config loads the optional browserbot server configuration.
//
// Every field has a default, so running without a configuration file gives
// the stock behavior: chromium, no browser install step, 30s page timeout,
// unrestricted navigation and logs under ~/.browserbot/logs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the browserbot server configuration
type Config struct {
	// Browser engine and launch behavior
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Navigation policy applied by navigate_to
	Navigation NavigationConfig `yaml:"navigation" json:"navigation"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// Engine names a browser engine shipped with Playwright
type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
	EngineWebKit   Engine = "webkit"
)

// BrowserConfig controls how browsers are installed and launched
type BrowserConfig struct {
	Engine Engine `yaml:"engine" json:"engine"`

	// Install downloads the driver and engine before the first launch
	Install bool `yaml:"install" json:"install"`

	// DefaultTimeout is the per-page default timeout in milliseconds
	DefaultTimeout float64 `yaml:"default_timeout" json:"default_timeout"`
}

// NavigationConfig restricts which URLs navigate_to may open.
// Patterns are globs; denied patterns take precedence and an empty
// allow list allows everything not denied.
type NavigationConfig struct {
	AllowedURLs []string `yaml:"allowed_urls" json:"allowed_urls"`
	DeniedURLs  []string `yaml:"denied_urls" json:"denied_urls"`
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Dir overrides the log directory (default: ~/.browserbot/logs)
	Dir string `yaml:"dir" json:"dir"`
}

// DefaultTimeout is the page timeout used when none is configured, in milliseconds
const DefaultTimeout = 30000.0

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			Engine:         EngineChromium,
			DefaultTimeout: DefaultTimeout,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyDefaults fills fields a partial file left empty
func (c *Config) applyDefaults() {
	if c.Browser.Engine == "" {
		c.Browser.Engine = EngineChromium
	}
	if c.Browser.DefaultTimeout == 0 {
		c.Browser.DefaultTimeout = DefaultTimeout
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Browser.Engine {
	case EngineChromium, EngineFirefox, EngineWebKit:
	default:
		return fmt.Errorf("invalid browser engine: %s (must be 'chromium', 'firefox', or 'webkit')", c.Browser.Engine)
	}

	if c.Browser.DefaultTimeout < 0 {
		return fmt.Errorf("default_timeout cannot be negative")
	}

	for _, pattern := range c.Navigation.AllowedURLs {
		if pattern == "" {
			return fmt.Errorf("allowed_urls cannot contain empty patterns")
		}
	}
	for _, pattern := range c.Navigation.DeniedURLs {
		if pattern == "" {
			return fmt.Errorf("denied_urls cannot contain empty patterns")
		}
	}

	return nil
}
