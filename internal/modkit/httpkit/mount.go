// Package httpkit has the route mounting helpers modules share
package httpkit

import (
	"net/http"
	"strings"

	phttp "tweetsnlp/internal/platform/net/http"
	pstrings "tweetsnlp/internal/platform/strings"
)

// MountUnder mounts a subrouter at prefix with its own middleware.
// The prefix is normalized to one leading slash and no trailing one.
func MountUnder(r phttp.Router, prefix string, mw []func(http.Handler) http.Handler, mount func(phttp.Router)) {
	r.Route(pstrings.MustPrefix(prefix), func(sub phttp.Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts under /api/{version}
func MountAPI(r phttp.Router, version string, mw []func(http.Handler) http.Handler, mount func(phttp.Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}
