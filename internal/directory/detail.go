package directory

import (
	"sort"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
)

// ShowEntry is one show as listed on a venue or artist page, carrying the
// name and image of the other side of the booking.
type ShowEntry struct {
	ShowID    uint      `json:"show_id"`
	VenueID   uint      `json:"venue_id"`
	ArtistID  uint      `json:"artist_id"`
	Name      string    `json:"name"`
	ImageLink string    `json:"image_link"`
	StartTime time.Time `json:"start_time"`
}

type Partition struct {
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type VenueDetail struct {
	models.Venue
	Partition
}

type ArtistDetail struct {
	models.Artist
	Partition
}

// DescribeVenue partitions a venue's shows; each entry names the artist.
// The venue's shows must be loaded with their Artist.
func DescribeVenue(v models.Venue, now time.Time) VenueDetail {
	entries := make([]ShowEntry, 0, len(v.Shows))
	for _, s := range v.Shows {
		entries = append(entries, ShowEntry{
			ShowID:    s.ID,
			VenueID:   v.ID,
			ArtistID:  s.ArtistID,
			Name:      s.Artist.Name,
			ImageLink: s.Artist.ImageLink,
			StartTime: s.StartTime,
		})
	}
	return VenueDetail{Venue: v, Partition: partition(entries, now)}
}

// DescribeArtist partitions an artist's shows; each entry names the venue.
// The artist's shows must be loaded with their Venue.
func DescribeArtist(a models.Artist, now time.Time) ArtistDetail {
	entries := make([]ShowEntry, 0, len(a.Shows))
	for _, s := range a.Shows {
		entries = append(entries, ShowEntry{
			ShowID:    s.ID,
			VenueID:   s.VenueID,
			ArtistID:  a.ID,
			Name:      s.Venue.Name,
			ImageLink: s.Venue.ImageLink,
			StartTime: s.StartTime,
		})
	}
	return ArtistDetail{Artist: a, Partition: partition(entries, now)}
}

func partition(entries []ShowEntry, now time.Time) Partition {
	sortEntries(entries)

	p := Partition{
		PastShows:     make([]ShowEntry, 0),
		UpcomingShows: make([]ShowEntry, 0),
	}
	for _, e := range entries {
		if Classify(e.StartTime, now) == Upcoming {
			p.UpcomingShows = append(p.UpcomingShows, e)
		} else {
			p.PastShows = append(p.PastShows, e)
		}
	}
	p.PastShowsCount = len(p.PastShows)
	p.UpcomingShowsCount = len(p.UpcomingShows)
	return p
}

func sortEntries(entries []ShowEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].StartTime.Equal(entries[j].StartTime) {
			return entries[i].StartTime.Before(entries[j].StartTime)
		}
		return entries[i].ShowID < entries[j].ShowID
	})
}

// ShowListing is a row of the all-shows page.
type ShowListing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
	Upcoming        bool      `json:"upcoming"`
}

// ListShows flattens shows (loaded with Venue and Artist) ordered by start time.
func ListShows(shows []models.Show, now time.Time) []ShowListing {
	out := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowListing{
			ID:              s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
			Upcoming:        Classify(s.StartTime, now) == Upcoming,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
