package show

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JonasLeetTheWay/fyyur/internal/database"
	"github.com/JonasLeetTheWay/fyyur/internal/directory"
	"github.com/JonasLeetTheWay/fyyur/internal/events"
	"github.com/JonasLeetTheWay/fyyur/internal/services"
	"github.com/JonasLeetTheWay/fyyur/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type Service struct {
	*services.Deps
	log hclog.Logger
}

func NewService(deps *services.Deps) *Service {
	return &Service{Deps: deps, log: deps.Log.Named("show")}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/shows", s.ListShows)
	r.GET("/shows/create", s.CreateShowForm)
	r.POST("/shows/create", s.CreateShow)
}

func (s *Service) ListShows(c *gin.Context) {
	shows, err := s.Store.ListShows(c.Request.Context())
	if err != nil {
		web.ServerError(c, s.log, err)
		return
	}

	web.Render(c, http.StatusOK, "shows.html", gin.H{
		"title": "Shows",
		"shows": directory.ListShows(shows, s.Now()),
	})
}

func (s *Service) CreateShowForm(c *gin.Context) {
	web.Render(c, http.StatusOK, "show_form.html", gin.H{"title": "New show", "form": web.ShowForm{}})
}

func (s *Service) CreateShow(c *gin.Context) {
	var form web.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		s.rejectForm(c, form, fmt.Sprintf("An error occurred. Show could not be listed: %v", err))
		return
	}

	show, err := form.Show()
	if err != nil {
		s.rejectForm(c, form, fmt.Sprintf("An error occurred. Show could not be listed: %v", err))
		return
	}

	ctx := c.Request.Context()
	if err := s.Store.CreateShow(ctx, &show); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.rejectForm(c, form, "An error occurred. Show could not be listed: unknown venue or artist.")
			return
		}
		s.log.Error("failed to create show", "venue_id", form.VenueID, "artist_id", form.ArtistID, "error", err)
		web.Error(c, "An error occurred. Show could not be listed.")
		web.Render(c, http.StatusInternalServerError, "home.html", nil)
		return
	}

	s.Changed(ctx, events.ShowCreated, show.ID, fmt.Sprintf("%s at %s", show.Artist.Name, show.Venue.Name))
	web.Success(c, "Show was successfully listed!")
	web.Render(c, http.StatusOK, "home.html", nil)
}

func (s *Service) rejectForm(c *gin.Context, form web.ShowForm, message string) {
	web.Error(c, message)
	web.Render(c, http.StatusBadRequest, "show_form.html", gin.H{"title": "New show", "form": form})
}
