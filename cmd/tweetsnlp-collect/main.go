// tweetsnlp-collect runs one collection: search pages, raw tables, normalization
// and the enriched table, written under TWEETSNLP_DATA_DIR and the optional sinks.
//
//	tweetsnlp-collect [-pages N] [-data DIR] [-no-translate] [query]
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"

	"tweetsnlp/internal/adapters/ingest/twitter"
	"tweetsnlp/internal/core/version"
	"tweetsnlp/internal/modkit"
	"tweetsnlp/internal/platform/config"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/platform/metrics"
	"tweetsnlp/internal/platform/store"
	ptime "tweetsnlp/internal/platform/time"

	archdom "tweetsnlp/internal/services/archive/domain"
	archmod "tweetsnlp/internal/services/archive/module"
	collectmod "tweetsnlp/internal/services/collect/module"
	premod "tweetsnlp/internal/services/preprocess/module"
)

func main() {
	os.Exit(run())
}

func run() int {
	loaded, envErr := config.LoadDotenv(".env", "secrets.env")

	version.SetService("tweetsnlp-collect")
	bi := version.Info()
	lopt := logger.FromEnv()
	if lopt.Service == "" {
		lopt.Service = bi.Service
	}
	logger.Init(lopt)
	l := logger.Get()
	if envErr != nil {
		l.Error().Err(envErr).Msg("dotenv failed")
		return 1
	}

	var (
		fPages   = flag.Int("pages", 0, "max search pages including the first (default TWEETSNLP_MAX_PAGES)")
		fData    = flag.String("data", "", "output directory (default TWEETSNLP_DATA_DIR)")
		fNoTrans = flag.Bool("no-translate", false, "skip the translation stage")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	mc := metrics.New(bi.Service, bi.Version, bi.Commit)

	st, err := store.Open(ctx, store.ConfigFromEnv(root.Prefix("TWEETSNLP_"), bi.Service), store.WithLogger(*l))
	if err != nil {
		l.Error().Err(err).Msg("store.Open failed")
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := st.Guard(ctx); err != nil {
		l.Error().Err(err).Msg("store not reachable")
		return 1
	}

	deps := modkit.Deps{Log: *l, Cfg: root, Store: st, Metrics: mc}

	copt := collectmod.FromConfig(root)
	if q := strings.TrimSpace(strings.Join(flag.Args(), " ")); q != "" {
		copt.Query = q
	}
	if *fPages > 0 {
		copt.MaxPages = *fPages
	}
	collector := collectmod.NewWith(deps, copt).Ports().Collector

	popt := premod.FromConfig(root)
	if *fNoTrans {
		popt.TranslateDisabled = true
	}
	pp, err := premod.NewPreProcessor(deps, popt)
	if err != nil {
		l.Error().Err(err).Msg("preprocessor init failed")
		return 1
	}
	enricher := premod.NewWith(deps, pp).Ports().Enricher

	aopt := archmod.FromConfig(deps)
	if *fData != "" {
		aopt.DataDir = *fData
	}
	am, err := archmod.New(ctx, deps, aopt)
	if err != nil {
		l.Error().Err(err).Msg("archive init failed")
		return 1
	}
	archiver := am.Ports().Archiver

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID)
	rl := logger.C(ctx)
	r := archdom.Run{ID: runID, Query: copt.Query, StartedAt: ptime.Now().UTC()}
	rl.Info().
		Str("query", r.Query).
		Str("stamp", r.Stamp()).
		Int("max_pages", copt.MaxPages).
		Strs("dotenv", loaded).
		Strs("sinks", am.Sinks()).
		Bool("translate", !popt.TranslateDisabled).
		Str("mode", popt.Mode).
		Msg("collect: run started")

	tables, err := collector.Collect(ctx, r.Query)
	if err != nil {
		ev := rl.Error().Err(err)
		if twitter.IsRateLimited(err) {
			ev = ev.Bool("rate_limited", true)
		}
		ev.Msg("collect failed")
		return 1
	}
	if _, err := archiver.WriteRaw(ctx, r, tables); err != nil {
		rl.Error().Err(err).Msg("raw archive failed")
		return 1
	}

	clean, err := enricher.Enrich(ctx, tables)
	if err != nil {
		rl.Error().Err(err).Msg("enrich failed")
		return 1
	}
	if _, err := archiver.WriteClean(ctx, r, tables, clean); err != nil {
		rl.Error().Err(err).Msg("clean archive failed")
		return 1
	}

	logSummary(rl, mc)
	rl.Info().Int("posts", len(tables.Posts)).Int("clean", len(clean)).Msg("collect: run finished")
	return 0
}

// logSummary writes the run's counters as one line
func logSummary(l *logger.Logger, mc *metrics.Collector) {
	fams, err := mc.Registry().Gather()
	if err != nil {
		l.Warn().Err(err).Msg("metrics gather failed")
		return
	}
	ev := l.Info()
	for _, f := range fams {
		if f.GetType() != dto.MetricType_COUNTER || strings.HasPrefix(f.GetName(), "go_") || strings.HasPrefix(f.GetName(), "process_") {
			continue
		}
		for _, m := range f.GetMetric() {
			ev = ev.Float64(seriesName(f.GetName(), m), m.GetCounter().GetValue())
		}
	}
	ev.Msg("collect: counters")
}

func seriesName(name string, m *dto.Metric) string {
	var b strings.Builder
	b.WriteString(name)
	for _, lp := range m.GetLabel() {
		b.WriteByte('.')
		b.WriteString(lp.GetValue())
	}
	return b.String()
}
