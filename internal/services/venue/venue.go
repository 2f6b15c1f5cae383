package venue

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
	return &Service{Deps: deps, log: deps.Log.Named("venue")}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/venues", s.ListVenues)
	r.GET("/venues/search", s.SearchVenues)
	r.POST("/venues/search", s.SearchVenues)
	r.GET("/venues/create", s.CreateVenueForm)
	r.POST("/venues/create", s.CreateVenue)
	r.GET("/venues/:id", s.GetVenue)
	r.GET("/venues/:id/edit", s.EditVenueForm)
	r.POST("/venues/:id/edit", s.UpdateVenue)
	r.POST("/venues/:id", s.DeleteVenue)
	r.POST("/venues/:id/delete", s.DeleteVenue)
	r.DELETE("/venues/:id", s.DeleteVenue)
}

// ListVenues shows venues grouped by city and state.
func (s *Service) ListVenues(c *gin.Context) {
	ctx := c.Request.Context()

	listings, ok, err := s.Cache.GetVenueListings(ctx)
	if err != nil {
		s.log.Warn("venue cache read failed", "error", err)
	}
	if !ok {
		venues, err := s.Store.ListVenues(ctx)
		if err != nil {
			web.ServerError(c, s.log, err)
			return
		}
		listings = directory.Listings(venues)
		if err := s.Cache.SetVenueListings(ctx, listings); err != nil {
			s.log.Warn("venue cache write failed", "error", err)
		}
	}
	areas := directory.GroupListings(listings, s.Now())

	web.Render(c, http.StatusOK, "venues.html", gin.H{"title": "Venues", "areas": areas})
}

func (s *Service) SearchVenues(c *gin.Context) {
	term := services.SearchTerm(c)

	venues, err := s.Store.SearchVenues(c.Request.Context(), term)
	if err != nil {
		web.ServerError(c, s.log, err)
		return
	}

	web.Render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Venue search",
		"kind":        "venues",
		"search_term": term,
		"results":     directory.SearchVenues(venues, s.Now()),
	})
}

func (s *Service) GetVenue(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	venue, err := s.Store.GetVenue(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	detail := directory.DescribeVenue(*venue, s.Now())
	web.Render(c, http.StatusOK, "venue.html", gin.H{"title": venue.Name, "venue": detail})
}

func (s *Service) CreateVenueForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, 0, web.VenueForm{})
}

func (s *Service) CreateVenue(c *gin.Context) {
	var form web.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		web.Error(c, fmt.Sprintf("Venue %s could not be listed: %v", form.Name, err))
		s.renderForm(c, http.StatusBadRequest, 0, form)
		return
	}

	venue := form.Venue()
	ctx := c.Request.Context()
	if err := s.Store.CreateVenue(ctx, &venue); err != nil {
		s.log.Error("failed to create venue", "name", venue.Name, "error", err)
		web.Error(c, fmt.Sprintf("Venue %s could not be listed.", venue.Name))
		web.Render(c, http.StatusInternalServerError, "home.html", nil)
		return
	}

	s.Changed(ctx, events.VenueCreated, venue.ID, venue.Name)
	web.Success(c, fmt.Sprintf("%s was successfully listed!", venue.Name))
	web.Render(c, http.StatusOK, "home.html", nil)
}

func (s *Service) EditVenueForm(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	venue, err := s.Store.GetVenue(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.renderForm(c, http.StatusOK, id, web.VenueFormFrom(*venue))
}

func (s *Service) UpdateVenue(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	var form web.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		web.Error(c, fmt.Sprintf("Venue %s could not be updated: %v", form.Name, err))
		s.renderForm(c, http.StatusBadRequest, id, form)
		return
	}

	venue := form.Venue()
	ctx := c.Request.Context()
	if err := s.Store.UpdateVenue(ctx, id, &venue); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			web.NotFound(c)
			return
		}
		s.log.Error("failed to update venue", "id", id, "error", err)
		web.Error(c, fmt.Sprintf("Venue %s could not be updated.", venue.Name))
		s.renderForm(c, http.StatusInternalServerError, id, form)
		return
	}

	s.Changed(ctx, events.VenueUpdated, venue.ID, venue.Name)
	web.Success(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes the venue together with its shows.
func (s *Service) DeleteVenue(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	venue, err := s.Store.DeleteVenue(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			web.NotFound(c)
			return
		}
		s.log.Error("failed to delete venue", "id", id, "error", err)
		web.Error(c, "Venue could not be deleted.")
		web.Render(c, http.StatusInternalServerError, "home.html", nil)
		return
	}

	s.Changed(ctx, events.VenueDeleted, venue.ID, venue.Name)
	web.Success(c, fmt.Sprintf("Venue %s was successfully deleted.", venue.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) renderForm(c *gin.Context, status int, id uint, form web.VenueForm) {
	action := "/venues/create"
	if id != 0 {
		action = fmt.Sprintf("/venues/%d/edit", id)
	}
	web.Render(c, status, "venue_form.html", gin.H{
		"title":  "Venue",
		"id":     id,
		"action": action,
		"form":   form,
		"genres": web.GenreChoices,
	})
}

func (s *Service) fail(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		web.NotFound(c)
		return
	}
	web.ServerError(c, s.log, err)
}
