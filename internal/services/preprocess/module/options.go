package module

import (
	"time"

	"tweetsnlp/internal/platform/config"
)

// Options holds the normalizer and translator settings
type Options struct {
	Mode string

	TranslateDisabled bool
	TranslateBaseURL  string
	TranslateTimeout  time.Duration
	TranslateRPS      float64
}

// FromConfig reads TWEETSNLP_* normalizer settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TWEETSNLP_")
	return Options{
		Mode:              c.MayEnum("MODE", "lemma", "lemma", "stem"),
		TranslateDisabled: c.MayBool("TRANSLATE_DISABLED", false),
		TranslateBaseURL:  c.MayString("TRANSLATE_BASE_URL", "https://translate.googleapis.com"),
		TranslateTimeout:  c.MayDuration("TRANSLATE_TIMEOUT", 10*time.Second),
		TranslateRPS:      c.MayFloat64("TRANSLATE_RPS", 0),
	}
}
