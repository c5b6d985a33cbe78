package twitter

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// parseRateHeaders reads the x-rate-limit-* headers the API sends on every response
func parseRateHeaders(h http.Header) (remaining int, reset time.Time) {
	remaining = atoi(h.Get("X-Rate-Limit-Remaining"))
	if sec := atoi(h.Get("X-Rate-Limit-Reset")); sec > 0 {
		reset = time.Unix(int64(sec), 0).UTC()
	}
	return remaining, reset
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
