package database

import (
	"fmt"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/models"
	"github.com/hashicorp/go-hclog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, log hclog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database connected and migrated", "driver", cfg.DBDriver)
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return postgres.Open(dsn), nil
	case "sqlite":
		// SQLite leaves foreign keys off unless asked per connection.
		return sqlite.Open(cfg.DBPath + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// gormLogger sends gorm's slow-query and error lines through hclog. Missing
// records are an expected outcome of lookups and are not logged.
func gormLogger(log hclog.Logger) gormlogger.Interface {
	return gormlogger.New(
		log.Named("gorm").StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true}),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func SeedData(db *gorm.DB, log hclog.Logger) error {
	// Check if data already exists
	var count int64
	if err := db.Model(&models.Venue{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count venues: %w", err)
	}
	if count > 0 {
		log.Info("data already seeded, skipping")
		return nil
	}

	venues := []models.Venue{
		{
			Name: "The Musical Hop", Address: "1015 Folsom Street", City: "San Francisco", State: "CA",
			Phone: "123-123-1234", Website: "https://www.themusicalhop.com",
			FacebookLink:  "https://www.facebook.com/TheMusicalHop",
			Genres:        models.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			SeekingTalent: true, SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink: "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		},
		{
			Name: "The Dueling Pianos Bar", Address: "335 Delancey Street", City: "New York", State: "NY",
			Phone: "914-003-1132", Website: "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Genres:       models.Genres{"Classical", "R&B", "Hip-Hop"},
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		},
		{
			Name: "Park Square Live Music & Coffee", Address: "34 Whiskey Moore Ave", City: "San Francisco", State: "CA",
			Phone: "415-000-1234", Website: "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Genres:       models.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		},
	}

	artists := []models.Artist{
		{
			Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
			Genres: models.Genres{"Rock n Roll"}, Website: "https://www.gunsnpetalsband.com",
			FacebookLink: "https://www.facebook.com/GunsNPetals",
			SeekingVenue: true, SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink: "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		},
		{
			Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
			Genres:       models.Genres{"Jazz"},
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		},
		{
			Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432",
			Genres:    models.Genres{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&venues).Error; err != nil {
			return fmt.Errorf("failed to create venues: %w", err)
		}
		if err := tx.Create(&artists).Error; err != nil {
			return fmt.Errorf("failed to create artists: %w", err)
		}

		shows := []models.Show{
			{VenueID: venues[0].ID, ArtistID: artists[0].ID, StartTime: parseDate("2019-05-21T21:30:00Z")},
			{VenueID: venues[2].ID, ArtistID: artists[1].ID, StartTime: parseDate("2019-06-15T23:00:00Z")},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-01T20:00:00Z")},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-08T20:00:00Z")},
			{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-15T20:00:00Z")},
		}
		if err := tx.Create(&shows).Error; err != nil {
			return fmt.Errorf("failed to create shows: %w", err)
		}

		log.Info("sample data seeded", "venues", len(venues), "artists", len(artists), "shows", len(shows))
		return nil
	})
}

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse(time.RFC3339, dateStr)
	return t
}
