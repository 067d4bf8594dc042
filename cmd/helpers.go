package cmd

import (
	"fmt"

	"github.com/saherflow/flowportal/internal/assets"
	"github.com/saherflow/flowportal/internal/config"
	"github.com/saherflow/flowportal/internal/live"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `flowportal init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// resolveSlides expands local asset patterns into the final slide set.
func resolveSlides(cfg *config.Config) ([]string, error) {
	slides, err := assets.Resolve(cfg.Slideshow.AssetDir, cfg.Slideshow.Slides)
	if err != nil {
		return nil, fmt.Errorf("resolving slides: %w", err)
	}
	return slides, nil
}

// liveOptions builds per-mount options from the config and the resolved slides.
func liveOptions(cfg *config.Config, slides []string) live.Options {
	return live.Options{
		Slides:     slides,
		Fallback:   cfg.Slideshow.FallbackImage,
		Interval:   cfg.Slideshow.Interval(),
		Transition: cfg.Slideshow.Transition(),
	}
}
