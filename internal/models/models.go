package models

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null;index"` // required
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:120;not null"`
	Address            string `gorm:"size:120;not null"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Genres             Genres `gorm:"type:text"`
	Website            string
	SeekingTalent      bool `gorm:"not null;default:false"`
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null;index"` // required
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:120;not null"`
	Phone              string `gorm:"size:120"`
	Genres             Genres `gorm:"type:text;not null"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Website            string
	SeekingVenue       bool `gorm:"not null;default:false"`
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relationships
	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

// Show is a booking of one artist at one venue. StartTime is stored in UTC.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	VenueID   uint      `gorm:"not null;index"`
	ArtistID  uint      `gorm:"not null;index"`
	StartTime time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	// Relationships
	Venue  Venue  `gorm:"foreignKey:VenueID"`
	Artist Artist `gorm:"foreignKey:ArtistID"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Artist{},
		&Show{},
	)
}
