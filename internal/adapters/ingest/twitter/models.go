package twitter

import "time"

// SearchResponse is one page of GET /2/tweets/search/recent
type SearchResponse struct {
	Data     []Tweet    `json:"data"`
	Includes Includes   `json:"includes"`
	Meta     Meta       `json:"meta"`
	Errors   []APIError `json:"errors,omitempty"`
}

// HasPlaces reports whether the page carried an includes.places key
func (r *SearchResponse) HasPlaces() bool { return r.Includes.Places != nil }

// Tweet is a post with the fields requested by Search
type Tweet struct {
	ID                  string            `json:"id"`
	Text                string            `json:"text"`
	Lang                string            `json:"lang"`
	AuthorID            string            `json:"author_id"`
	CreatedAt           time.Time         `json:"created_at"`
	PossiblySensitive   bool              `json:"possibly_sensitive"`
	ReferencedTweets    []ReferencedTweet `json:"referenced_tweets,omitempty"`
	Geo                 *Geo              `json:"geo,omitempty"`
	EditHistoryTweetIDs []string          `json:"edit_history_tweet_ids,omitempty"`
}

// ReferencedTweet links a retweet, quote or reply to its target
type ReferencedTweet struct {
	Type string `json:"type"` // retweeted | quoted | replied_to
	ID   string `json:"id"`
}

// Geo carries the place expansion key
type Geo struct {
	PlaceID string `json:"place_id"`
}

// Includes holds the expanded objects referenced by Data
type Includes struct {
	Users  []User  `json:"users,omitempty"`
	Places []Place `json:"places,omitempty"`
	Tweets []Tweet `json:"tweets,omitempty"`
}

// User is an author expansion
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Location string `json:"location,omitempty"`
}

// Place is a geo.place_id expansion
type Place struct {
	ID       string `json:"id"`
	Country  string `json:"country"`
	FullName string `json:"full_name"`
	Name     string `json:"name"`
}

// Meta carries paging information
type Meta struct {
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token,omitempty"`
}

// APIError is a partial-failure entry reported alongside data
type APIError struct {
	Title        string `json:"title"`
	Detail       string `json:"detail"`
	Type         string `json:"type"`
	ResourceType string `json:"resource_type,omitempty"`
	Value        string `json:"value,omitempty"`
}
