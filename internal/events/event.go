// Package events publishes listing changes to the message broker so other
// systems can react without polling the directory database.
package events

import "time"

type Kind string

const (
	VenueCreated  Kind = "venue.created"
	VenueUpdated  Kind = "venue.updated"
	VenueDeleted  Kind = "venue.deleted"
	ArtistCreated Kind = "artist.created"
	ArtistUpdated Kind = "artist.updated"
	ArtistDeleted Kind = "artist.deleted"
	ShowCreated   Kind = "show.created"
)

// ListingEvent describes one change to a venue, artist or show.
type ListingEvent struct {
	Kind       Kind      `json:"kind"`
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewListingEvent(kind Kind, id uint, name string, at time.Time) ListingEvent {
	return ListingEvent{Kind: kind, ID: id, Name: name, OccurredAt: at.UTC()}
}
