package web

import (
	"errors"
	"strings"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Required text fields are trimmed before they are stored, so whitespace
// alone must fail validation too.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	}
}

// VenueForm is the create/edit venue form. Genres arrive as repeated
// "genres" fields from a multi-select.
type VenueForm struct {
	Name               string   `form:"name" binding:"required,notblank"`
	City               string   `form:"city" binding:"required,notblank"`
	State              string   `form:"state" binding:"required,notblank"`
	Address            string   `form:"address" binding:"required,notblank"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" binding:"omitempty,url"`
	Genres             []string `form:"genres" binding:"dive,notblank"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		Genres:             models.NewGenres(f.Genres),
		SeekingTalent:      checked(f.SeekingTalent),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             []string(v.Genres),
		SeekingTalent:      checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required,notblank"`
	City               string   `form:"city" binding:"required,notblank"`
	State              string   `form:"state" binding:"required,notblank"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" binding:"omitempty,url"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,notblank"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f ArtistForm) Artist() models.Artist {
	return models.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		Website:            strings.TrimSpace(f.Website),
		Genres:             models.NewGenres(f.Genres),
		SeekingVenue:       checked(f.SeekingVenue),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

func ArtistFormFrom(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             []string(a.Genres),
		SeekingVenue:       checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

var ErrInvalidStartTime = errors.New("start time must look like 2006-01-02 15:04")

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Show converts the form; times without a zone are taken as UTC.
func (f ShowForm) Show() (models.Show, error) {
	raw := strings.TrimSpace(f.StartTime)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: t.UTC()}, nil
		}
	}
	return models.Show{}, ErrInvalidStartTime
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

func checkbox(b bool) string {
	if b {
		return "y"
	}
	return ""
}

// GenreChoices are the options offered by the genre multi-select.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
