// Package module wires the collector from config
package module

import (
	"tweetsnlp/internal/adapters/ingest/twitter"
	"tweetsnlp/internal/core/version"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/services/collect/domain"
	"tweetsnlp/internal/services/collect/service"
)

// Ports defines the collect module ports
type Ports struct {
	Collector domain.CollectorPort
}

// Module implements the collect module. It mounts no routes.
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the twitter client and collector from deps.Cfg
func New(deps modkit.Deps) *Module {
	return NewWith(deps, FromConfig(deps.Cfg))
}

// NewWith builds the module from explicit options
func NewWith(deps modkit.Deps, opts Options) *Module {
	client := twitter.NewClient(twitter.Options{
		BaseURL:     opts.BaseURL,
		UserAgent:   "tweetsnlp-collect/" + version.Info().Version,
		Timeout:     opts.Timeout,
		BearerToken: opts.BearerToken,
		MaxRetries:  opts.Retries,
	})
	svc := service.New(client, service.Config{
		MaxPages: opts.MaxPages,
		DropUnd:  opts.DropUnd,
	}, service.NewMetrics(deps.Metrics))

	return &Module{deps: deps, opts: opts, ports: Ports{Collector: svc}}
}

// Name returns the module name
func (m *Module) Name() string { return "collect" }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// Ports returns the module ports
func (m *Module) Ports() Ports { return m.ports }
