package config

import "time"

// Config is the top-level flowportal configuration, corresponding to .flowportal.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Slideshow SlideshowConfig `yaml:"slideshow" koanf:"slideshow"`
	Links     LinksConfig     `yaml:"links" koanf:"links"`
	Content   ContentConfig   `yaml:"content" koanf:"content"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SlideshowConfig configures the hero carousel.
type SlideshowConfig struct {
	// Slides are image references in display order. An entry of the form
	// "local:<glob>" expands to matching files under AssetDir.
	Slides        []string `yaml:"slides" koanf:"slides"`
	IntervalMS    int      `yaml:"interval_ms" koanf:"interval_ms"`
	TransitionMS  int      `yaml:"transition_ms" koanf:"transition_ms"`
	FallbackImage string   `yaml:"fallback_image" koanf:"fallback_image"`
	AssetDir      string   `yaml:"asset_dir" koanf:"asset_dir"`
}

// Interval returns the rotation period.
func (s SlideshowConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// Transition returns the cross-fade duration.
func (s SlideshowConfig) Transition() time.Duration {
	return time.Duration(s.TransitionMS) * time.Millisecond
}

// LinksConfig holds the two call-to-action destinations. Routing itself is
// handled elsewhere; these are plain link targets.
type LinksConfig struct {
	StartMonitoring string `yaml:"start_monitoring" koanf:"start_monitoring"`
	AccessPortal    string `yaml:"access_portal" koanf:"access_portal"`
}

// ContentConfig is the marketing copy shown over the carousel.
type ContentConfig struct {
	Title    string   `yaml:"title" koanf:"title"`
	Badge    string   `yaml:"badge" koanf:"badge"`
	Headline []string `yaml:"headline" koanf:"headline"`
	// Tagline is markdown.
	Tagline  string   `yaml:"tagline" koanf:"tagline"`
	Features []string `yaml:"features" koanf:"features"`
	Stats    []Stat   `yaml:"stats" koanf:"stats"`
}

// Stat is one headline figure in the stats grid.
type Stat struct {
	Value string `yaml:"value" koanf:"value"`
	Label string `yaml:"label" koanf:"label"`
}
