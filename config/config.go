package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHomepageURL   = "https://vanderveg.si"
	defaultOCRLanguage   = "slv"
	defaultMinConfidence = 0.30
)

type Config struct {
	// HomepageURL is the restaurant page that carries the menu image.
	HomepageURL string
	// OCRLanguage is the Tesseract traineddata code, e.g. "slv".
	OCRLanguage string
	// MinConfidence is the per-line confidence floor in [0,1]; recognized
	// lines below it are discarded as noise.
	MinConfidence float64
}

// Load reads settings from the environment with compiled-in defaults, so a
// bare invocation needs no flags or variables. A local .env file is loaded
// first (ignored if absent) and never overrides variables already set.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HomepageURL:   defaultHomepageURL,
		OCRLanguage:   defaultOCRLanguage,
		MinConfidence: defaultMinConfidence,
	}
	if v := os.Getenv("MENU_URL"); v != "" {
		cfg.HomepageURL = v
	}
	if v := os.Getenv("MENU_OCR_LANG"); v != "" {
		cfg.OCRLanguage = v
	}
	if v := os.Getenv("MENU_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.MinConfidence = f
		}
	}
	return cfg
}
