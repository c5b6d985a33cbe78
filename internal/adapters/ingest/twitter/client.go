// Package twitter is a client for the v2 recent-search endpoint used by the collector
package twitter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

const (
	baseURLDefault   = "https://api.twitter.com"
	defaultTimeout   = 30 * time.Second
	defaultUA        = "tweetsnlp-collect"
	defaultRetryBase = 500 * time.Millisecond
	defaultRetryMax  = 30 * time.Second
	maxBodyBytes     = 8 << 20
)

// Options configures the Client
type Options struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	BearerToken string

	// MaxRetries is how many times a 429, 5xx or transport failure is retried.
	// Zero, the default, makes the first failure final.
	MaxRetries int
	RetryBase  time.Duration
	RetryMax   time.Duration

	// HTTPClient overrides the default client (Timeout is then ignored)
	HTTPClient *http.Client
}

// Client issues authenticated GET requests against the search API
type Client struct {
	http *http.Client
	opts Options
	exec failsafe.Executor[[]byte]
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client, filling unset options with defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RetryMax < o.RetryBase {
		o.RetryMax = max(defaultRetryMax, o.RetryBase)
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}

	c := &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("twitter"),
		now:  time.Now,
	}
	policy := retrypolicy.NewBuilder[[]byte]().
		HandleIf(func(_ []byte, err error) bool { return retryable(err) }).
		WithMaxRetries(o.MaxRetries).
		WithBackoff(o.RetryBase, o.RetryMax).
		ReturnLastFailure().
		Build()
	c.exec = failsafe.With[[]byte](policy)
	return c
}

// get performs GET base+path?q through the retry policy and returns the body
// of a 200 response. Any other status is an ErrorCodeUpstream error wrapping *StatusError.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	attempt := 0
	return c.exec.WithContext(ctx).Get(func() ([]byte, error) {
		defer func() { attempt++ }()
		return c.once(ctx, path, q, attempt)
	})
}

func (c *Client) once(ctx context.Context, path string, q url.Values, attempt int) ([]byte, error) {
	u := c.opts.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "twitter new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.opts.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.BearerToken)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, perr.Wrap(ctxErr, perr.CodeOf(ctxErr), "twitter request aborted")
		}
		c.log.Warn().Err(err).Str("path", path).Int("attempt", attempt).Msg("twitter transport error")
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "twitter do failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	rem, reset := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("attempt", attempt).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Msg("twitter http response")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		se := &StatusError{Status: resp.StatusCode, Body: string(body)}
		return nil, perr.Wrapf(se, perr.ErrorCodeUpstream, "twitter %s", path)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "twitter read body")
	}
	return b, nil
}

// retryable is true for transport failures, 429 and 5xx; never for a done context
func retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == http.StatusTooManyRequests || se.Status >= 500
	}
	return perr.IsCode(err, perr.ErrorCodeUnavailable)
}

// StatusError is a non-200 answer from the API
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// HTTPStatus returns the upstream status code
func (e *StatusError) HTTPStatus() int { return e.Status }

// IsRateLimited reports whether err carries a 429 from the API
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusTooManyRequests
}
