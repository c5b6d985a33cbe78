package preproc

import (
	"fmt"
	"strings"

	"tweetsnlp/internal/core/lexicon"

	"github.com/rs/zerolog"
)

// Mode selects the final word reduction
type Mode uint8

const (
	// ModeLemma reduces tokens to dictionary lemmas
	ModeLemma Mode = iota
	// ModeStem reduces tokens to Snowball stems
	ModeStem
)

func (m Mode) String() string {
	if m == ModeStem {
		return "stem"
	}
	return "lemma"
}

// ParseMode accepts "lemma" (or empty) and "stem"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lemma":
		return ModeLemma, nil
	case "stem":
		return ModeStem, nil
	}
	return ModeLemma, fmt.Errorf("preproc: unknown mode %q", s)
}

// Option configures a PreProcessor
type Option func(*PreProcessor)

// WithTranslator sets the translator. Without one every post passes through untranslated.
func WithTranslator(t Translator) Option { return func(p *PreProcessor) { p.translator = t } }

// WithLemmatizer replaces the English dictionary lemmatizer
func WithLemmatizer(l Lemmatizer) Option { return func(p *PreProcessor) { p.lemmatizer = l } }

// WithStemmer replaces the Snowball stemmer
func WithStemmer(s Stemmer) Option { return func(p *PreProcessor) { p.stemmer = s } }

// WithTokenizer replaces the UAX #29 tokenizer
func WithTokenizer(t Tokenizer) Option { return func(p *PreProcessor) { p.tokenizer = t } }

// WithLexicon replaces the embedded lexicon
func WithLexicon(l *lexicon.Lexicon) Option { return func(p *PreProcessor) { p.lex = l } }

// WithSlang merges overrides into the slang dictionary; overrides win.
// Applied after WithLexicon regardless of option order.
func WithSlang(overrides map[string]string) Option {
	return func(p *PreProcessor) { p.slang = overrides }
}

// WithMode picks lemmatization or stemming
func WithMode(m Mode) Option { return func(p *PreProcessor) { p.mode = m } }

// WithLogger sets the logger; translation fallbacks are logged at debug
func WithLogger(l zerolog.Logger) Option { return func(p *PreProcessor) { p.log = l } }

// WithMetrics attaches Prometheus collectors
func WithMetrics(m *Metrics) Option { return func(p *PreProcessor) { p.metrics = m } }
