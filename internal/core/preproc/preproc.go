// Package preproc turns raw post text into a deduplicated list of lemmas.
//
// Per post, in order: clean (lowercase, accents, markup, entities), translate
// to English by language route, NFKC + ASCII fold, expand contractions,
// replace slang, drop stopwords, tokenize and dedupe, then lemmatize (or stem),
// drop bracket tokens and dedupe again.
package preproc

import (
	"context"

	"tweetsnlp/internal/core/langhint"
	"tweetsnlp/internal/core/lexicon"
	"tweetsnlp/internal/core/normalize"
	pstrings "tweetsnlp/internal/platform/strings"

	"github.com/rs/zerolog"
)

// Target is the only language posts are translated into
const Target = "en"

// Input is one post handed to ProcessBatch
type Input struct {
	ID   string
	Text string
	Lang string
}

// Result is the pipeline output for one post
type Result struct {
	Clean      []string       // lemmas (or stems), unique, first-seen order
	Translated string         // text after the translation stage
	Route      langhint.Route // how the language code was dispatched
}

// PreProcessor holds the pipeline collaborators. It is read-only after New and
// safe for concurrent use when its collaborators are.
type PreProcessor struct {
	cleaner    *normalize.Cleaner
	lex        *lexicon.Lexicon
	slang      map[string]string
	translator Translator
	lemmatizer Lemmatizer
	stemmer    Stemmer
	tokenizer  Tokenizer
	mode       Mode
	log        zerolog.Logger
	metrics    *Metrics
}

// New builds a PreProcessor. Unset collaborators get the English defaults;
// the lemma dictionary is loaded here, so build once and share.
func New(opts ...Option) (*PreProcessor, error) {
	p := &PreProcessor{
		cleaner:   normalize.New(),
		lex:       lexicon.Default(),
		stemmer:   SnowballStemmer{},
		tokenizer: UAX29{},
		log:       zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}
	if p.lemmatizer == nil {
		l, err := NewEnglishLemmatizer()
		if err != nil {
			return nil, err
		}
		p.lemmatizer = l
	}
	p.lex = p.lex.Merge(p.slang)
	return p, nil
}

// Derive returns a copy with extra options applied, sharing the loaded
// collaborators. Used for per-request slang or mode.
func (p *PreProcessor) Derive(opts ...Option) *PreProcessor {
	cp := *p
	cp.slang = nil
	for _, o := range opts {
		o(&cp)
	}
	cp.lex = cp.lex.Merge(cp.slang)
	return &cp
}

// Mode reports the configured reduction
func (p *PreProcessor) Mode() Mode { return p.mode }

// Clean applies the cleaning stages only
func (p *PreProcessor) Clean(text string) string { return p.cleaner.Clean(text) }

// Process runs the whole pipeline on one post's text
func (p *PreProcessor) Process(ctx context.Context, text, lang string) Result {
	translated, route := p.translate(ctx, p.cleaner.Clean(text), lang)
	s := p.normalizeWords(translated)

	toks := pstrings.Dedupe(p.tokenizer.Words(s))
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		r := p.reduce(t)
		if isBracket(r) || r == "" {
			continue
		}
		out = append(out, r)
	}
	return Result{Clean: pstrings.Dedupe(out), Translated: translated, Route: route}
}

// ProcessBatch runs Process over posts and keys results by post id.
// Posts whose clean list comes out empty are left out. Cancellation stops the
// batch and returns what was done with the context error.
func (p *PreProcessor) ProcessBatch(ctx context.Context, posts []Input) (map[string]Result, error) {
	out := make(map[string]Result, len(posts))
	for _, in := range posts {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		r := p.Process(ctx, in.Text, in.Lang)
		if len(r.Clean) == 0 {
			p.metrics.post("empty")
			continue
		}
		p.metrics.post("kept")
		out[in.ID] = r
	}
	return out, nil
}

// Phrases runs the pipeline up to stopword removal and splits the result
// into sentences
func (p *PreProcessor) Phrases(ctx context.Context, text, lang string) []string {
	translated, _ := p.translate(ctx, p.cleaner.Clean(text), lang)
	return p.tokenizer.Sentences(p.normalizeWords(translated))
}

// normalizeWords is stages 6 to 9
func (p *PreProcessor) normalizeWords(s string) string {
	s = normalize.ASCIIFold(s)
	s = p.lex.ExpandContractions(s)
	s = p.lex.ReplaceSlang(s)
	return p.lex.RemoveStopwords(s)
}

// translate dispatches on the language route. Failures never escape: the
// cleaned text is returned instead.
func (p *PreProcessor) translate(ctx context.Context, cleaned, lang string) (string, langhint.Route) {
	route := langhint.RouteFor(lang)
	if !route.Translates() {
		return cleaned, route
	}
	if cleaned == "" || p.translator == nil {
		p.metrics.translation(route.String(), "skipped")
		return cleaned, route
	}
	src := route.Source(lang)
	out, err := p.translator.Translate(ctx, cleaned, src, Target)
	if err != nil {
		p.log.Debug().Err(err).Str("lang", lang).Str("src", src).Str("route", route.String()).
			Msg("translation failed; keeping untranslated text")
		p.metrics.translation(route.String(), "fallback")
		return cleaned, route
	}
	p.metrics.translation(route.String(), "ok")
	return out, route
}

func (p *PreProcessor) reduce(tok string) string {
	if p.mode == ModeStem {
		return p.stemmer.Stem(tok)
	}
	return p.lemmatizer.Lemma(tok)
}

func isBracket(s string) bool {
	switch s {
	case "(", ")", "[", "]":
		return true
	}
	return false
}
