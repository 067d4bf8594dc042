package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".flowportal.yml"

// DefaultSlides are the hero images shown when no slides are configured.
var DefaultSlides = []string{
	"https://res.cloudinary.com/drnak5yb2/image/upload/v1754555754/High-Res-render-min_oqcyvr.png",
	"https://res.cloudinary.com/drnak5yb2/image/upload/v1754556084/combined-enhanced_image-1024x591_pkpnc5.png",
	"https://res.cloudinary.com/drnak5yb2/image/upload/v1754555852/MPFM-with-SKID-1536x1187_sjrvdp.png",
}

// DefaultFallbackImage replaces any hero image that fails to load.
const DefaultFallbackImage = "https://images.pexels.com/photos/3862132/pexels-photo-3862132.jpeg?auto=compress&cs=tinysrgb&w=800"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Slideshow: SlideshowConfig{
			Slides:        append([]string(nil), DefaultSlides...),
			IntervalMS:    5000,
			TransitionMS:  1000,
			FallbackImage: DefaultFallbackImage,
			AssetDir:      "assets",
		},
		Links: LinksConfig{
			StartMonitoring: "/signup",
			AccessPortal:    "/login",
		},
		Content: ContentConfig{
			Title:    "Saher Flow Solutions",
			Badge:    "Trusted by Industry Leaders Worldwide",
			Headline: []string{"Revolutionary", "Flow Measurement", "Portal"},
			Tagline: "Professional monitoring platform for advanced multiphase flow measurement systems.\n\n" +
				"Access real-time data, analytics, and comprehensive system management tools.",
			Features: []string{
				"Real-time Analytics",
				"Advanced Security",
				"Cloud Connectivity",
				"Expert Support",
			},
			Stats: []Stat{
				{Value: "99.8%", Label: "Uptime"},
				{Value: "±2-5%", Label: "Accuracy"},
				{Value: "24/7", Label: "Support"},
				{Value: "50+", Label: "Deployments"},
			},
		},
	}
}
