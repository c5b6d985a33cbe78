// Package module wires the text normalizer, the enricher and their routes
package module

import (
	"tweetsnlp/internal/adapters/translate"
	"tweetsnlp/internal/core/preproc"
	"tweetsnlp/internal/core/version"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/platform/logger"
	phttp "tweetsnlp/internal/platform/net/http"
	"tweetsnlp/internal/services/preprocess/domain"
	prehttp "tweetsnlp/internal/services/preprocess/http"
	"tweetsnlp/internal/services/preprocess/service"
)

// Ports defines the preprocess module ports
type Ports struct {
	Enricher domain.EnricherPort
	Text     domain.TextPort
}

// Module implements the preprocess module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports
}

// New builds the PreProcessor from deps.Cfg and wraps it in the module
func New(deps modkit.Deps, opts ...modkit.Option) (*Module, error) {
	pp, err := NewPreProcessor(deps, FromConfig(deps.Cfg))
	if err != nil {
		return nil, err
	}
	return NewWith(deps, pp, opts...), nil
}

// NewWith wraps an existing PreProcessor
func NewWith(deps modkit.Deps, pp *preproc.PreProcessor, opts ...modkit.Option) *Module {
	svc := service.New(pp)
	return &Module{
		deps:  deps,
		built: modkit.Build("preprocess", opts...),
		ports: Ports{Enricher: svc, Text: svc},
	}
}

// NewPreProcessor builds the shared pipeline: translator (unless disabled),
// mode and metrics
func NewPreProcessor(deps modkit.Deps, o Options) (*preproc.PreProcessor, error) {
	mode, err := preproc.ParseMode(o.Mode)
	if err != nil {
		return nil, err
	}
	popts := []preproc.Option{
		preproc.WithMode(mode),
		preproc.WithLogger(*logger.Named("preproc")),
	}
	if !o.TranslateDisabled {
		popts = append(popts, preproc.WithTranslator(translate.New(translate.Options{
			BaseURL:   o.TranslateBaseURL,
			UserAgent: version.Info().Service + "/" + version.Info().Version,
			Timeout:   o.TranslateTimeout,
			RPS:       o.TranslateRPS,
		})))
	}
	if c := deps.Metrics; c != nil {
		popts = append(popts, preproc.WithMetrics(&preproc.Metrics{
			Translations: c.Counter("translations_total", "Translator calls by route and outcome.", "route", "outcome"),
			Posts:        c.Counter("preprocess_posts_total", "Posts run through the normalizer.", "result"),
		}))
	}
	return preproc.New(popts...)
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Ports returns the module ports
func (m *Module) Ports() Ports { return m.ports }

// MountRoutes mounts /preprocess, /clean and /phrases
func (m *Module) MountRoutes(r phttp.Router) {
	m.built.Mount(r, func(rr phttp.Router) { prehttp.Register(rr, m.ports.Text) })
}
