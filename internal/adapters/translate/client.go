// Package translate is a client for the public Google Translate endpoint
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	baseURLDefault = "https://translate.googleapis.com"
	singlePath     = "/translate_a/single"
	defaultTimeout = 10 * time.Second
	defaultUA      = "tweetsnlp-translate"

	// Auto asks the endpoint to detect the source language
	Auto = "auto"
)

// ErrUnsupportedLanguage is returned for a source or target code outside the language table
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// RPS caps outgoing requests per second; zero means unlimited
	RPS float64
}

// Client translates text one request at a time
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     logger.Logger
}

// New creates a Client, filling unset options with defaults
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	c := &Client{log: *logger.Named("translate")}
	if o.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(o.RPS), max(1, int(o.RPS)))
	}

	c.http = resty.New().
		SetBaseURL(strings.TrimRight(o.BaseURL, "/")).
		SetTimeout(o.Timeout).
		SetHeader("User-Agent", o.UserAgent).
		SetHeader("Accept", "application/json")
	c.http.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if c.limiter == nil {
			return nil
		}
		return c.limiter.Wait(r.Context())
	})
	return c
}

// Translate turns text written in src into dst.
// src may be "auto" or empty for detection. Blank text is returned as "" without a request.
func (c *Client) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if src == "" {
		src = Auto
	}
	if !strings.EqualFold(src, Auto) && !Supported(src) {
		return "", perr.Wrapf(ErrUnsupportedLanguage, perr.ErrorCodeUnsupported, "translate: source %q", src)
	}
	if !Supported(dst) {
		return "", perr.Wrapf(ErrUnsupportedLanguage, perr.ErrorCodeUnsupported, "translate: target %q", dst)
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     src,
			"tl":     dst,
			"dt":     "t",
			"q":      text,
		}).
		Get(singlePath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", perr.Wrap(ctxErr, perr.CodeOf(ctxErr), "translate: request aborted")
		}
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: request failed")
	}

	c.log.Debug().
		Str("src", src).
		Str("src_name", LanguageName(src)).
		Str("dst", dst).
		Int("status", resp.StatusCode()).
		Dur("latency", time.Since(start)).
		Msg("translate http response")

	switch sc := resp.StatusCode(); {
	case sc == http.StatusTooManyRequests:
		return "", perr.Newf(perr.ErrorCodeTooManyRequests, "translate: rate limited")
	case sc < 200 || sc > 299:
		return "", perr.Newf(perr.ErrorCodeUpstream, "translate: unexpected status %d", sc)
	}

	out, err := parseSingle(resp.Body())
	if err != nil {
		return "", err
	}
	return out, nil
}

// parseSingle concatenates the translated segments of a translate_a/single answer.
// The payload is [[["translated","original",...],...],null,"detected",...].
func parseSingle(b []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "translate: decode response")
	}
	if len(top) == 0 {
		return "", perr.Newf(perr.ErrorCodeUpstream, "translate: empty response")
	}
	var segs [][]json.RawMessage
	if err := json.Unmarshal(top[0], &segs); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "translate: decode segments")
	}

	var sb strings.Builder
	for _, seg := range segs {
		if len(seg) == 0 {
			continue
		}
		var part *string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeJSON, "translate: decode segment")
		}
		if part != nil {
			sb.WriteString(*part)
		}
	}
	if sb.Len() == 0 {
		return "", perr.Newf(perr.ErrorCodeUpstream, "translate: no translated segments")
	}
	return sb.String(), nil
}
