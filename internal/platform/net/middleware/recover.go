package middleware

import (
	"net/http"
	"runtime/debug"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"
	phttp "tweetsnlp/internal/platform/net/http"
)

// RecoverJSON turns a handler panic into a 500 error envelope and logs the stack.
// http.ErrAbortHandler is re-panicked so the server can drop the connection.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}
