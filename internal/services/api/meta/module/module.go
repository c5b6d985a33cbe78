// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"tweetsnlp/internal/core/version"
	"tweetsnlp/internal/modkit"
	phttp "tweetsnlp/internal/platform/net/http"
	"tweetsnlp/internal/platform/store"

	metahttp "tweetsnlp/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New constructs a meta module; backends open in deps.Store become readiness checks
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build("meta", opts...)
	now := time.Now()

	checks := map[string]store.Pinger{}
	if st := deps.Store; st != nil {
		if p, ok := st.PG.(store.Pinger); ok {
			checks["pg"] = p
		}
		if p, ok := st.CH.(store.Pinger); ok {
			checks["ch"] = p
		}
	}

	return &Module{
		built: b,
		deps: metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   now,
			Checks:      checks,
		},
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	m.built.Mount(r, func(rr phttp.Router) { metahttp.Register(rr, m.deps) })
}
