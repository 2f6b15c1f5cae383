package artist

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
	return &Service{Deps: deps, log: deps.Log.Named("artist")}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/artists", s.ListArtists)
	r.GET("/artists/search", s.SearchArtists)
	r.POST("/artists/search", s.SearchArtists)
	r.GET("/artists/create", s.CreateArtistForm)
	r.POST("/artists/create", s.CreateArtist)
	r.GET("/artists/:id", s.GetArtist)
	r.GET("/artists/:id/edit", s.EditArtistForm)
	r.POST("/artists/:id/edit", s.UpdateArtist)
	r.POST("/artists/:id/delete", s.DeleteArtist)
	r.DELETE("/artists/:id", s.DeleteArtist)
}

func (s *Service) ListArtists(c *gin.Context) {
	artists, err := s.Store.ListArtists(c.Request.Context())
	if err != nil {
		web.ServerError(c, s.log, err)
		return
	}

	web.Render(c, http.StatusOK, "artists.html", gin.H{"title": "Artists", "artists": artists})
}

func (s *Service) SearchArtists(c *gin.Context) {
	term := services.SearchTerm(c)

	artists, err := s.Store.SearchArtists(c.Request.Context(), term)
	if err != nil {
		web.ServerError(c, s.log, err)
		return
	}

	web.Render(c, http.StatusOK, "search.html", gin.H{
		"title":       "Artist search",
		"kind":        "artists",
		"search_term": term,
		"results":     directory.SearchArtists(artists, s.Now()),
	})
}

func (s *Service) GetArtist(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	artist, err := s.Store.GetArtist(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	detail := directory.DescribeArtist(*artist, s.Now())
	web.Render(c, http.StatusOK, "artist.html", gin.H{"title": artist.Name, "artist": detail})
}

func (s *Service) CreateArtistForm(c *gin.Context) {
	s.renderForm(c, http.StatusOK, 0, web.ArtistForm{})
}

func (s *Service) CreateArtist(c *gin.Context) {
	var form web.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		web.Error(c, fmt.Sprintf("Artist %s could not be listed: %v", form.Name, err))
		s.renderForm(c, http.StatusBadRequest, 0, form)
		return
	}

	artist := form.Artist()
	ctx := c.Request.Context()
	if err := s.Store.CreateArtist(ctx, &artist); err != nil {
		s.log.Error("failed to create artist", "name", artist.Name, "error", err)
		web.Error(c, fmt.Sprintf("Artist %s could not be listed.", artist.Name))
		web.Render(c, http.StatusInternalServerError, "home.html", nil)
		return
	}

	s.Changed(ctx, events.ArtistCreated, artist.ID, artist.Name)
	web.Success(c, fmt.Sprintf("%s was successfully listed!", artist.Name))
	web.Render(c, http.StatusOK, "home.html", nil)
}

func (s *Service) EditArtistForm(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	artist, err := s.Store.GetArtist(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.renderForm(c, http.StatusOK, id, web.ArtistFormFrom(*artist))
}

func (s *Service) UpdateArtist(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	var form web.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		web.Error(c, fmt.Sprintf("Artist %s could not be updated: %v", form.Name, err))
		s.renderForm(c, http.StatusBadRequest, id, form)
		return
	}

	artist := form.Artist()
	ctx := c.Request.Context()
	if err := s.Store.UpdateArtist(ctx, id, &artist); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			web.NotFound(c)
			return
		}
		s.log.Error("failed to update artist", "id", id, "error", err)
		web.Error(c, fmt.Sprintf("Artist %s could not be updated.", artist.Name))
		s.renderForm(c, http.StatusInternalServerError, id, form)
		return
	}

	s.Changed(ctx, events.ArtistUpdated, artist.ID, artist.Name)
	web.Success(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist removes the artist together with its shows, which also
// changes the upcoming counts of the venues they were booked at.
func (s *Service) DeleteArtist(c *gin.Context) {
	id, ok := services.ParseID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	artist, err := s.Store.DeleteArtist(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			web.NotFound(c)
			return
		}
		s.log.Error("failed to delete artist", "id", id, "error", err)
		web.Error(c, "Artist could not be deleted.")
		web.Render(c, http.StatusInternalServerError, "home.html", nil)
		return
	}

	s.Changed(ctx, events.ArtistDeleted, artist.ID, artist.Name)
	web.Success(c, fmt.Sprintf("Artist %s was successfully deleted.", artist.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) renderForm(c *gin.Context, status int, id uint, form web.ArtistForm) {
	action := "/artists/create"
	if id != 0 {
		action = fmt.Sprintf("/artists/%d/edit", id)
	}
	web.Render(c, status, "artist_form.html", gin.H{
		"title":  "Artist",
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
