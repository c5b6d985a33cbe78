// Package api mounts the HTTP API of tweetsnlp-api
package api

import (
	"tweetsnlp/internal/core/preproc"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/modkit/swaggerkit"
	phttp "tweetsnlp/internal/platform/net/http"

	metamod "tweetsnlp/internal/services/api/meta/module"
	premod "tweetsnlp/internal/services/preprocess/module"
)

// Options are the API options
type Options struct {
	Deps          modkit.Deps
	EnableSwagger bool

	// PreProcessor is shared by every request; nil builds one from Deps.Cfg
	PreProcessor *preproc.PreProcessor
}

// Mount mounts /api/v1, /metrics and the swagger UI onto r
func Mount(r phttp.Router, opt Options) error {
	pp := opt.PreProcessor
	if pp == nil {
		var err error
		if pp, err = premod.NewPreProcessor(opt.Deps, premod.FromConfig(opt.Deps.Cfg)); err != nil {
			return err
		}
	}

	modkit.MountAPI(r, "v1", nil,
		metamod.New(opt.Deps),
		premod.NewWith(opt.Deps, pp),
	)

	if opt.Deps.Metrics != nil {
		r.Handle("/metrics", opt.Deps.Metrics.Handler())
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	return nil
}
