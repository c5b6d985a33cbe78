package service

import (
	"tweetsnlp/internal/adapters/ingest/twitter"
	"tweetsnlp/internal/services/collect/domain"
)

const langUndefined = "und"

// flatten appends one page to t and returns the number of posts kept
func (s *Service) flatten(t *domain.Tables, resp *twitter.SearchResponse) int {
	kept := 0
	for _, tw := range resp.Data {
		if s.Cfg.DropUnd && tw.Lang == langUndefined {
			continue
		}
		t.Posts = append(t.Posts, toPost(tw))
		kept++
	}
	for _, u := range resp.Includes.Users {
		t.Authors = append(t.Authors, domain.Author{
			ID:       u.ID,
			Name:     u.Name,
			Username: u.Username,
			Location: u.Location,
		})
	}
	if resp.HasPlaces() {
		if t.Places == nil {
			t.Places = make([]domain.Place, 0, len(resp.Includes.Places))
		}
		for _, p := range resp.Includes.Places {
			t.Places = append(t.Places, domain.Place{
				ID:       p.ID,
				Country:  p.Country,
				FullName: p.FullName,
				Name:     p.Name,
			})
		}
	}
	return kept
}

func toPost(tw twitter.Tweet) domain.Post {
	p := domain.Post{
		ID:                tw.ID,
		AuthorID:          tw.AuthorID,
		Text:              tw.Text,
		Lang:              tw.Lang,
		CreatedAt:         tw.CreatedAt.UTC(),
		PossiblySensitive: tw.PossiblySensitive,
	}
	if tw.Geo != nil {
		p.GeoPlaceID = tw.Geo.PlaceID
	}
	// only the first reference is kept
	if len(tw.ReferencedTweets) > 0 {
		ref := tw.ReferencedTweets[0]
		p = p.Ref(ref.Type, ref.ID)
	}
	return p
}
