package repo

import (
	"encoding/json"
	"strconv"
	"time"

	collect "tweetsnlp/internal/services/collect/domain"
)

// CreatedAtLayout renders created_at in UTC with an explicit offset
const CreatedAtLayout = "2006-01-02 15:04:05-07:00"

var (
	postColumns   = []string{"tweet_id", "author_id", "created_at", "lang", "possibly_sensitive", "text", "type", "ref_tweet_id", "geo_place_id"}
	authorColumns = []string{"user_id", "name", "username", "location"}
	placeColumns  = []string{"geo_place_id", "country", "full_name", "name"}
	cleanColumns  = append(append([]string{}, postColumns...), "clean_tweet", "translated_text")
)

func postRecord(p collect.Post, sensitive string) []string {
	return []string{
		p.ID,
		p.AuthorID,
		formatTime(p.CreatedAt),
		p.Lang,
		sensitive,
		p.Text,
		p.RefType.String(),
		p.RefID,
		p.GeoPlaceID,
	}
}

func rawPostRecord(p collect.Post) []string {
	return postRecord(p, strconv.FormatBool(p.PossiblySensitive))
}

func cleanRecord(cp collect.CleanPost) ([]string, error) {
	toks, err := tokensJSON(cp.Clean)
	if err != nil {
		return nil, err
	}
	return append(postRecord(cp.Post, boolDigit(cp.PossiblySensitive)), toks, cp.Translated), nil
}

func authorRecord(a collect.Author) []string {
	return []string{a.ID, a.Name, a.Username, a.Location}
}

func placeRecord(p collect.Place) []string {
	return []string{p.ID, p.Country, p.FullName, p.Name}
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func tokensJSON(toks []string) (string, error) {
	if toks == nil {
		toks = []string{}
	}
	b, err := json.Marshal(toks)
	return string(b), err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(CreatedAtLayout)
}
