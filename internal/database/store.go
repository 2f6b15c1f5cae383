package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonasLeetTheWay/fyyur/internal/directory"
	"github.com/JonasLeetTheWay/fyyur/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a venue, artist or show does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the data access layer for venues, artists and shows.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to fetch %s %d: %w", what, id, err)
}

// Venues

func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := s.db.WithContext(ctx).Preload("Shows").Order("id").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch venues: %w", err)
	}
	return venues, nil
}

// GetVenue loads a venue with its shows and each show's artist.
func (s *Store) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.WithContext(ctx).Preload("Shows").Preload("Shows.Artist").First(&venue, id).Error
	if err != nil {
		return nil, notFound(err, "venue", id)
	}
	return &venue, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.WithContext(ctx).Preload("Shows").
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, directory.LikePattern(term)).
		Order("name").Order("id").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return venues, nil
}

func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(venue).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// UpdateVenue overwrites every editable column of the venue with the given id.
func (s *Store) UpdateVenue(ctx context.Context, id uint, venue *models.Venue) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.First(&existing, id).Error; err != nil {
			return notFound(err, "venue", id)
		}
		venue.ID = existing.ID
		venue.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
			return fmt.Errorf("failed to update venue %d: %w", id, err)
		}
		return nil
	})
}

// DeleteVenue removes the venue and all of its shows.
func (s *Store) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return notFound(err, "venue", id)
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return fmt.Errorf("failed to delete shows of venue %d: %w", id, err)
		}
		if err := tx.Delete(&venue).Error; err != nil {
			return fmt.Errorf("failed to delete venue %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// Artists

func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.WithContext(ctx).Order("name").Order("id").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}
	return artists, nil
}

// GetArtist loads an artist with its shows and each show's venue.
func (s *Store) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).Preload("Shows").Preload("Shows.Venue").First(&artist, id).Error
	if err != nil {
		return nil, notFound(err, "artist", id)
	}
	return &artist, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.WithContext(ctx).Preload("Shows").
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, directory.LikePattern(term)).
		Order("name").Order("id").
		Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return artists, nil
}

func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(artist).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

func (s *Store) UpdateArtist(ctx context.Context, id uint, artist *models.Artist) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.First(&existing, id).Error; err != nil {
			return notFound(err, "artist", id)
		}
		artist.ID = existing.ID
		artist.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(artist).Error; err != nil {
			return fmt.Errorf("failed to update artist %d: %w", id, err)
		}
		return nil
	})
}

// DeleteArtist removes the artist and all of its shows.
func (s *Store) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return notFound(err, "artist", id)
		}
		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return fmt.Errorf("failed to delete shows of artist %d: %w", id, err)
		}
		if err := tx.Delete(&artist).Error; err != nil {
			return fmt.Errorf("failed to delete artist %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// Shows

func (s *Store) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).Preload("Venue").Preload("Artist").
		Order("start_time").Order("id").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shows: %w", err)
	}
	return shows, nil
}

// CreateShow books an existing artist at an existing venue.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&show.Venue, show.VenueID).Error; err != nil {
			return notFound(err, "venue", show.VenueID)
		}
		if err := tx.First(&show.Artist, show.ArtistID).Error; err != nil {
			return notFound(err, "artist", show.ArtistID)
		}
		show.StartTime = show.StartTime.UTC()
		if err := tx.Omit(clause.Associations).Create(show).Error; err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
		return nil
	})
}
