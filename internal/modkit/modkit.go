// Package modkit wires API modules onto the router
package modkit

import (
	"net/http"

	"tweetsnlp/internal/modkit/httpkit"
	"tweetsnlp/internal/platform/config"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/platform/metrics"
	phttp "tweetsnlp/internal/platform/net/http"
	"tweetsnlp/internal/platform/store"
)

// Module is an API surface that mounts its own routes
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
}

// Deps are the shared dependencies handed to every module.
// Store and Metrics may be nil.
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Store   *store.Store
	Metrics *metrics.Collector
}

// MountAPI mounts every module under /api/{version} behind mw
func MountAPI(r phttp.Router, version string, mw []func(http.Handler) http.Handler, mods ...Module) {
	httpkit.MountAPI(r, version, mw, func(api phttp.Router) {
		for _, m := range mods {
			if m == nil {
				continue
			}
			m.MountRoutes(api)
		}
	})
}
