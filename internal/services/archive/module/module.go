// Package module wires the archive writers from config and the store
package module

import (
	"context"

	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/services/archive/domain"
	"tweetsnlp/internal/services/archive/repo"
	"tweetsnlp/internal/services/archive/service"
)

// Ports defines the archive module ports
type Ports struct {
	Archiver domain.ArchiverPort
}

// Options holds the archive settings
type Options struct {
	DataDir string
	Migrate bool
}

// FromConfig reads TWEETSNLP_DATA_DIR and TWEETSNLP_ARCHIVE_MIGRATE
func FromConfig(deps modkit.Deps) Options {
	c := deps.Cfg.Prefix("TWEETSNLP_")
	return Options{
		DataDir: c.MayString("DATA_DIR", "data"),
		Migrate: c.MayBool("ARCHIVE_MIGRATE", true),
	}
}

// Module implements the archive module. It mounts no routes.
type Module struct {
	ports Ports
	sinks []string
}

// New builds the CSV writer and one sink per backend open in deps.Store.
// Sink schemas are created up front when Migrate is set.
func New(ctx context.Context, deps modkit.Deps, o Options) (*Module, error) {
	var sinks []domain.Sink
	if st := deps.Store; st != nil {
		if st.PG != nil {
			pg := repo.NewPG(st.PG)
			if o.Migrate {
				if err := pg.Migrate(ctx); err != nil {
					return nil, err
				}
			}
			sinks = append(sinks, pg)
		}
		if st.CH != nil {
			ch := repo.NewCH(st.CH)
			if o.Migrate {
				if err := ch.Migrate(ctx); err != nil {
					return nil, err
				}
			}
			sinks = append(sinks, ch)
		}
	}

	m := &Module{ports: Ports{Archiver: service.New(repo.NewCSV(o.DataDir), sinks...)}}
	for _, s := range sinks {
		m.sinks = append(m.sinks, s.Name())
	}
	deps.Log.Info().Str("dir", o.DataDir).Strs("sinks", m.sinks).Msg("archive: ready")
	return m, nil
}

// Name returns the module name
func (m *Module) Name() string { return "archive" }

// Sinks names the enabled sinks
func (m *Module) Sinks() []string { return m.sinks }

// Ports returns the module ports
func (m *Module) Ports() Ports { return m.ports }
