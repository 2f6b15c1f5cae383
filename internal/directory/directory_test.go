package directory

import (
	"testing"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	assert.Equal(t, Upcoming, Classify(now.Add(time.Nanosecond), now))
	assert.Equal(t, Past, Classify(now.Add(-time.Hour), now))
	assert.Equal(t, Past, Classify(now, now), "a show starting at the evaluation instant is past")
}

func TestClassifyDependsOnEvaluationTime(t *testing.T) {
	start := now.Add(time.Minute)
	assert.Equal(t, Upcoming, Classify(start, now))
	assert.Equal(t, Past, Classify(start, now.Add(2*time.Minute)))
}

func TestGroupVenuesByLocation(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Shows: []models.Show{
			{ID: 10, StartTime: now.Add(24 * time.Hour)},
			{ID: 11, StartTime: now.Add(-24 * time.Hour)},
		}},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Shows: []models.Show{
			{ID: 12, StartTime: now.Add(48 * time.Hour)},
			{ID: 13, StartTime: now.Add(72 * time.Hour)},
		}},
		{ID: 4, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 5, Name: "Springfield Hall", City: "Springfield", State: "IL"},
		{ID: 6, Name: "Springfield Arena", City: "Springfield", State: "MO"},
	}

	areas := GroupVenuesByLocation(venues, now)
	require.Len(t, areas, 4)

	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	assert.Equal(t, "IL", areas[1].State)
	assert.Equal(t, "MO", areas[2].State)
	assert.Equal(t, "NY", areas[3].State)

	sf := areas[0].Venues
	require.Len(t, sf, 3)
	assert.Equal(t, VenueSummary{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 2}, sf[0])
	assert.Equal(t, VenueSummary{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1}, sf[1])
	assert.Equal(t, VenueSummary{ID: 4, Name: "The Musical Hop", NumUpcomingShows: 0}, sf[2])

	seen := make(map[uint]int)
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	assert.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d listed more than once", id)
	}
}

func TestGroupVenuesByLocationEmpty(t *testing.T) {
	areas := GroupVenuesByLocation(nil, now)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestGroupListingsCountsAtEvaluationTime(t *testing.T) {
	start := now.Add(time.Hour)
	venues := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Shows: []models.Show{
			{ID: 1, StartTime: start},
			{ID: 2, StartTime: now.Add(-time.Hour)},
		}},
	}

	listings := Listings(venues)
	require.Len(t, listings, 1)
	assert.Equal(t, []time.Time{start, now.Add(-time.Hour)}, listings[0].ShowTimes)
	assert.Equal(t, GroupVenuesByLocation(venues, now), GroupListings(listings, now))

	before := GroupListings(listings, start.Add(-time.Second))
	after := GroupListings(listings, start)
	assert.Equal(t, 1, before[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, 0, after[0].Venues[0].NumUpcomingShows)
}

func TestDescribeVenue(t *testing.T) {
	venue := models.Venue{ID: 3, Name: "Park Square Live Music & Coffee", Shows: []models.Show{
		{ID: 3, ArtistID: 6, StartTime: now.Add(72 * time.Hour), Artist: models.Artist{ID: 6, Name: "The Wild Sax Band", ImageLink: "sax.jpg"}},
		{ID: 1, ArtistID: 5, StartTime: now.Add(-72 * time.Hour), Artist: models.Artist{ID: 5, Name: "Matt Quevedo", ImageLink: "matt.jpg"}},
		{ID: 2, ArtistID: 6, StartTime: now.Add(24 * time.Hour), Artist: models.Artist{ID: 6, Name: "The Wild Sax Band", ImageLink: "sax.jpg"}},
	}}
	original := append([]models.Show(nil), venue.Shows...)

	d := DescribeVenue(venue, now)

	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 2, d.UpcomingShowsCount)
	require.Len(t, d.PastShows, 1)
	assert.Equal(t, ShowEntry{ShowID: 1, VenueID: 3, ArtistID: 5, Name: "Matt Quevedo", ImageLink: "matt.jpg", StartTime: now.Add(-72 * time.Hour)}, d.PastShows[0])
	require.Len(t, d.UpcomingShows, 2)
	assert.Equal(t, uint(2), d.UpcomingShows[0].ShowID)
	assert.Equal(t, uint(3), d.UpcomingShows[1].ShowID)
	assert.Equal(t, "The Wild Sax Band", d.UpcomingShows[0].Name)
	assert.Equal(t, original, venue.Shows, "input must not be reordered")
}

func TestDescribeArtist(t *testing.T) {
	artist := models.Artist{ID: 4, Name: "Guns N Petals", Shows: []models.Show{
		{ID: 1, VenueID: 1, StartTime: now.Add(-time.Hour), Venue: models.Venue{ID: 1, Name: "The Musical Hop", ImageLink: "hop.jpg"}},
	}}

	d := DescribeArtist(artist, now)

	assert.Equal(t, "Guns N Petals", d.Name)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 0, d.UpcomingShowsCount)
	assert.NotNil(t, d.UpcomingShows)
	assert.Equal(t, "The Musical Hop", d.PastShows[0].Name)
	assert.Equal(t, "hop.jpg", d.PastShows[0].ImageLink)
}

func TestListShows(t *testing.T) {
	shows := []models.Show{
		{ID: 2, StartTime: now.Add(time.Hour), Venue: models.Venue{Name: "B"}, Artist: models.Artist{Name: "Y", ImageLink: "y.jpg"}},
		{ID: 1, StartTime: now.Add(-time.Hour), Venue: models.Venue{Name: "A"}, Artist: models.Artist{Name: "X"}},
	}

	rows := ListShows(shows, now)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(1), rows[0].ID)
	assert.False(t, rows[0].Upcoming)
	assert.Equal(t, "B", rows[1].VenueName)
	assert.Equal(t, "y.jpg", rows[1].ArtistImageLink)
	assert.True(t, rows[1].Upcoming)
}
