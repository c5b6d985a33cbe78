package twitter

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	perr "tweetsnlp/internal/platform/errors"
)

const searchPath = "/2/tweets/search/recent"

// PageSize is the largest page the recent-search endpoint returns
const PageSize = 100

// fields requested on every page
var searchFields = url.Values{
	"tweet.fields": {"text,created_at,lang,possibly_sensitive"},
	"expansions":   {"author_id,referenced_tweets.id,geo.place_id"},
	"place.fields": {"country,full_name,name"},
	"user.fields":  {"location"},
	"max_results":  {strconv.Itoa(PageSize)},
}

// Search fetches one page of recent posts matching query.
// nextToken is empty for the first page and Meta.NextToken afterwards.
func (c *Client) Search(ctx context.Context, query, nextToken string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, perr.InvalidArgf("twitter search: empty query")
	}
	q := url.Values{"query": {query}}
	for k, v := range searchFields {
		q[k] = v
	}
	if nextToken != "" {
		q.Set("next_token", nextToken)
	}

	b, err := c.get(ctx, searchPath, q)
	if err != nil {
		return nil, err
	}
	var out SearchResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "twitter search: decode page")
	}
	if len(out.Errors) > 0 {
		c.log.Warn().Int("count", len(out.Errors)).Str("first", out.Errors[0].Detail).Msg("twitter partial errors in page")
	}
	return &out, nil
}
