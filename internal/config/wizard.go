package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// slideSourceItems are the hero image choices, in the order RunWizard
// switches on.
var slideSourceItems = []string{
	"default: hosted product renders",
	"local:   images from an asset directory",
	"custom:  comma-separated image URLs",
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to flowportal! Let's configure your landing page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePositiveInt,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Slide source.
	sourcePrompt := promptui.Select{
		Label: "Hero images",
		Items: slideSourceItems,
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("slide source: %w", err)
	}

	switch sourceIdx {
	case 1:
		dirPrompt := promptui.Prompt{
			Label:   "Asset directory",
			Default: cfg.Slideshow.AssetDir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("asset dir: %w", err)
		}
		globPrompt := promptui.Prompt{
			Label:   "Image pattern inside the asset directory",
			Default: "**/*.{png,jpg,jpeg,webp}",
		}
		pattern, err := globPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("image pattern: %w", err)
		}
		cfg.Slideshow.AssetDir = dir
		cfg.Slideshow.Slides = []string{"local:" + pattern}
	case 2:
		urlsPrompt := promptui.Prompt{
			Label: "Image URLs (comma-separated)",
			Validate: func(s string) error {
				if len(splitAndTrim(s)) == 0 {
					return fmt.Errorf("at least one image is required")
				}
				return nil
			},
		}
		urls, err := urlsPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("image urls: %w", err)
		}
		cfg.Slideshow.Slides = splitAndTrim(urls)
	}

	// 3. Rotation interval.
	intervalPrompt := promptui.Prompt{
		Label:    "Rotation interval (ms)",
		Default:  strconv.Itoa(cfg.Slideshow.IntervalMS),
		Validate: validatePositiveInt,
	}
	intervalStr, err := intervalPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("interval: %w", err)
	}
	cfg.Slideshow.IntervalMS, _ = strconv.Atoi(strings.TrimSpace(intervalStr))

	// 4. Call-to-action targets.
	signupPrompt := promptui.Prompt{
		Label:   `"Start Monitoring" link`,
		Default: cfg.Links.StartMonitoring,
	}
	if cfg.Links.StartMonitoring, err = signupPrompt.Run(); err != nil {
		return nil, fmt.Errorf("start monitoring link: %w", err)
	}
	loginPrompt := promptui.Prompt{
		Label:   `"Access Portal" link`,
		Default: cfg.Links.AccessPortal,
	}
	if cfg.Links.AccessPortal, err = loginPrompt.Run(); err != nil {
		return nil, fmt.Errorf("access portal link: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops blank entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
