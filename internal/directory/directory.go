// Package directory derives the read views of the booking directory: venues
// grouped by location, past/upcoming show partitions and search results.
// Every function takes the evaluation time explicitly and leaves its input
// untouched.
package directory

import (
	"sort"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
)

type Timing int

const (
	Past Timing = iota
	Upcoming
)

// Classify reports whether a show starting at start is upcoming at now.
// A show starting exactly at now is past.
func Classify(start, now time.Time) Timing {
	if start.After(now) {
		return Upcoming
	}
	return Past
}

// CountUpcoming counts the shows starting after now.
func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if Classify(s.StartTime, now) == Upcoming {
			n++
		}
	}
	return n
}

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is the set of venues sharing one (city, state) pair.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueListing is the time-independent part of a venue's entry on the
// venues page. Upcoming counts are derived from it at read time.
type VenueListing struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	ShowTimes []time.Time `json:"show_times"`
}

// Listings reduces venues with their Shows loaded to VenueListings.
func Listings(venues []models.Venue) []VenueListing {
	listings := make([]VenueListing, 0, len(venues))
	for _, v := range venues {
		times := make([]time.Time, 0, len(v.Shows))
		for _, s := range v.Shows {
			times = append(times, s.StartTime)
		}
		listings = append(listings, VenueListing{ID: v.ID, Name: v.Name, City: v.City, State: v.State, ShowTimes: times})
	}
	return listings
}

// GroupVenuesByLocation returns one Area per distinct (city, state) pair,
// ordered by state then city, with venues ordered by name then id. Venues are
// expected to have their Shows loaded.
func GroupVenuesByLocation(venues []models.Venue, now time.Time) []Area {
	return GroupListings(Listings(venues), now)
}

// GroupListings is GroupVenuesByLocation over already reduced listings.
func GroupListings(listings []VenueListing, now time.Time) []Area {
	type location struct{ city, state string }

	index := make(map[location]int)
	areas := make([]Area, 0)
	for _, v := range listings {
		loc := location{v.City, v.State}
		i, ok := index[loc]
		if !ok {
			i = len(areas)
			index[loc] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		upcoming := 0
		for _, start := range v.ShowTimes {
			if Classify(start, now) == Upcoming {
				upcoming++
			}
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming,
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})
	for _, a := range areas {
		sort.Slice(a.Venues, func(i, j int) bool {
			if a.Venues[i].Name != a.Venues[j].Name {
				return a.Venues[i].Name < a.Venues[j].Name
			}
			return a.Venues[i].ID < a.Venues[j].ID
		})
	}
	return areas
}
