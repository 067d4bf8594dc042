package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Slideshow.IntervalMS != 5000 {
		t.Errorf("expected default interval 5000ms, got %d", cfg.Slideshow.IntervalMS)
	}
	if cfg.Slideshow.Interval() != 5*time.Second {
		t.Errorf("Interval() = %s, want 5s", cfg.Slideshow.Interval())
	}
	if cfg.Slideshow.Transition() != time.Second {
		t.Errorf("Transition() = %s, want 1s", cfg.Slideshow.Transition())
	}
	if len(cfg.Slideshow.Slides) != 3 {
		t.Errorf("expected 3 default slides, got %d", len(cfg.Slideshow.Slides))
	}
	if cfg.Links.StartMonitoring != "/signup" || cfg.Links.AccessPortal != "/login" {
		t.Errorf("unexpected default links: %+v", cfg.Links)
	}
}

func TestDefaultConfigDoesNotAliasSlides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slideshow.Slides[0] = "changed"
	if DefaultSlides[0] == "changed" {
		t.Fatal("DefaultConfig shares its slide slice with DefaultSlides")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.flowportal.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Slideshow.Slides = []string{"a.png", "b.png"}
	original.Slideshow.IntervalMS = 3000
	original.Links.AccessPortal = "/portal"
	original.Content.Stats = []Stat{{Value: "1", Label: "One"}}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Slideshow.IntervalMS != 3000 {
		t.Errorf("interval_ms: got %d, want 3000", loaded.Slideshow.IntervalMS)
	}
	if len(loaded.Slideshow.Slides) != 2 || loaded.Slideshow.Slides[1] != "b.png" {
		t.Errorf("slides: got %v", loaded.Slideshow.Slides)
	}
	if loaded.Links.AccessPortal != "/portal" {
		t.Errorf("access_portal: got %q", loaded.Links.AccessPortal)
	}
	if len(loaded.Content.Stats) != 1 || loaded.Content.Stats[0].Label != "One" {
		t.Errorf("stats: got %+v", loaded.Content.Stats)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Slideshow.IntervalMS != 5000 {
		t.Errorf("expected default interval, got %d", cfg.Slideshow.IntervalMS)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("slideshow:\n  interval_ms: 2500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Slideshow.IntervalMS != 2500 {
		t.Errorf("interval_ms: got %d, want 2500", cfg.Slideshow.IntervalMS)
	}
	if len(cfg.Slideshow.Slides) != len(DefaultSlides) {
		t.Errorf("slides should keep defaults, got %v", cfg.Slideshow.Slides)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port should keep default, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FLOWPORTAL_SLIDESHOW__INTERVAL_MS", "1234")
	t.Setenv("FLOWPORTAL_SERVER__PORT", "9999")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Slideshow.IntervalMS != 1234 {
		t.Errorf("env override failed: got %d, want 1234", loaded.Slideshow.IntervalMS)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("env override failed: got %d, want 9999", loaded.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FLOWPORTAL_SERVER__PORT", "server.port"},
		{"FLOWPORTAL_SLIDESHOW__FALLBACK_IMAGE", "slideshow.fallback_image"},
		{"FLOWPORTAL_LINKS__ACCESS_PORTAL", "links.access_portal"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"no slides", func(c *Config) { c.Slideshow.Slides = nil }, true},
		{"blank slide", func(c *Config) { c.Slideshow.Slides = []string{"a", " "} }, true},
		{"zero interval", func(c *Config) { c.Slideshow.IntervalMS = 0 }, true},
		{"negative transition", func(c *Config) { c.Slideshow.TransitionMS = -1 }, true},
		{"no fallback", func(c *Config) { c.Slideshow.FallbackImage = "" }, true},
		{"no signup link", func(c *Config) { c.Links.StartMonitoring = "" }, true},
		{"zero transition", func(c *Config) { c.Slideshow.TransitionMS = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"https://x/y.png", []string{"https://x/y.png"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestValidatePositiveInt(t *testing.T) {
	for _, s := range []string{"1", "5000", " 42 "} {
		if err := validatePositiveInt(s); err != nil {
			t.Errorf("validatePositiveInt(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "0", "-3", "abc"} {
		if err := validatePositiveInt(s); err == nil {
			t.Errorf("validatePositiveInt(%q): expected error", s)
		}
	}
}

func TestSlideSourceItems(t *testing.T) {
	want := []string{"default:", "local:", "custom:"}
	if len(slideSourceItems) != len(want) {
		t.Fatalf("expected %d slide sources, got %d", len(want), len(slideSourceItems))
	}
	for i, prefix := range want {
		item := slideSourceItems[i]
		if !strings.HasPrefix(item, prefix) {
			t.Errorf("item %d = %q, want prefix %q", i, item, prefix)
		}
		if strings.ContainsRune(item, '\u2014') {
			t.Errorf("item %d %q should use plain punctuation", i, item)
		}
	}
}
