package modkit

import (
	"net/http"

	"tweetsnlp/internal/modkit/httpkit"
	phttp "tweetsnlp/internal/platform/net/http"
)

// Option adjusts how a module mounts
type Option func(*Built)

// Built is the resolved mount configuration of a module
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// WithName sets the module name used in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module's routes under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares adds per-module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// Build applies opts over the module defaults
func Build(name string, opts ...Option) Built {
	b := Built{Name: name}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount registers routes on r, under Prefix and behind Mw when set
func (b Built) Mount(r phttp.Router, register func(phttp.Router)) {
	if b.Prefix == "" && len(b.Mw) == 0 {
		register(r)
		return
	}
	if b.Prefix == "" {
		r.Group(func(g phttp.Router) {
			g.Use(b.Mw...)
			register(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, register)
}
