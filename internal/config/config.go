package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "FLOWPORTAL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FLOWPORTAL_*). Nested keys are separated
// by a double underscore: FLOWPORTAL_SLIDESHOW__INTERVAL_MS -> slideshow.interval_ms.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	if len(c.Slideshow.Slides) == 0 {
		return fmt.Errorf("slideshow.slides must list at least one image")
	}
	for i, s := range c.Slideshow.Slides {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("slideshow.slides[%d] is empty", i)
		}
	}

	if c.Slideshow.IntervalMS <= 0 {
		return fmt.Errorf("slideshow.interval_ms must be positive, got %d", c.Slideshow.IntervalMS)
	}

	if c.Slideshow.TransitionMS < 0 {
		return fmt.Errorf("slideshow.transition_ms must be non-negative")
	}

	if c.Slideshow.FallbackImage == "" {
		return fmt.Errorf("slideshow.fallback_image is required")
	}

	if c.Links.StartMonitoring == "" || c.Links.AccessPortal == "" {
		return fmt.Errorf("links.start_monitoring and links.access_portal are required")
	}

	return nil
}
