// tweetsnlp-api serves the text normalizer over HTTP under /api/v1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"tweetsnlp/internal/core/version"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/platform/config"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/platform/metrics"
	phttp "tweetsnlp/internal/platform/net/http"
	"tweetsnlp/internal/platform/net/middleware"
	"tweetsnlp/internal/platform/store"

	"tweetsnlp/internal/services/api"
)

func main() {
	loaded, envErr := config.LoadDotenv(".env", "secrets.env")

	version.SetService("tweetsnlp-api")
	bi := version.Info()
	lopt := logger.FromEnv()
	if lopt.Service == "" {
		lopt.Service = bi.Service
	}
	logger.Init(lopt)
	l := logger.Get()
	if envErr != nil {
		l.Fatal().Err(envErr).Msg("dotenv failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	mc := metrics.New(bi.Service, bi.Version, bi.Commit)

	// archive backends are optional here; they only feed /ready
	st, err := store.Open(ctx, store.ConfigFromEnv(root.Prefix("TWEETSNLP_"), bi.Service), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	stack := middleware.Stack(middleware.StackOptions{
		CORS:      middleware.CORSOptions{AllowedOrigins: root.MayCSV("API_CORS_ORIGINS", []string{"*"})},
		Timeout:   root.MayDuration("API_REQUEST_TIMEOUT", 0),
		AccessLog: middleware.AccessLogOptions{Observer: mc},
	})
	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/ping"))
		m.Use(stack...)
	})

	err = api.Mount(srv.Router(), api.Options{
		Deps:          modkit.Deps{Log: *l, Cfg: root, Store: st, Metrics: mc},
		EnableSwagger: root.MayBool("API_SWAGGER", true),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	l.Info().Str("addr", srv.Addr()).Strs("dotenv", loaded).Str("version", bi.Version).Msg("api: listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
