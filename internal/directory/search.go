package directory

import (
	"sort"
	"strings"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
)

type SearchHit struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// MatchesName reports whether term occurs in name, ignoring case.
// An empty term matches every name.
func MatchesName(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(strings.TrimSpace(term)))
}

// LikePattern builds a LIKE pattern matching term anywhere, with wildcard
// characters in term escaped using backslash.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// SearchVenues builds the result for venues already matched by name.
func SearchVenues(venues []models.Venue, now time.Time) SearchResult {
	hits := make([]SearchHit, 0, len(venues))
	for _, v := range venues {
		hits = append(hits, SearchHit{ID: v.ID, Name: v.Name, NumUpcomingShows: CountUpcoming(v.Shows, now)})
	}
	return newResult(hits)
}

// SearchArtists builds the result for artists already matched by name.
func SearchArtists(artists []models.Artist, now time.Time) SearchResult {
	hits := make([]SearchHit, 0, len(artists))
	for _, a := range artists {
		hits = append(hits, SearchHit{ID: a.ID, Name: a.Name, NumUpcomingShows: CountUpcoming(a.Shows, now)})
	}
	return newResult(hits)
}

func newResult(hits []SearchHit) SearchResult {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Name != hits[j].Name {
			return hits[i].Name < hits[j].Name
		}
		return hits[i].ID < hits[j].ID
	})
	return SearchResult{Count: len(hits), Data: hits}
}
