package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{
		"home.html", "venues.html", "venue.html", "venue_form.html", "artists.html",
		"artist.html", "artist_form.html", "search.html", "shows.html", "show_form.html",
		"404.html", "500.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", formatDateTime(ts))
	assert.Equal(t, "Sunday April, 1, 2035 at 8:00PM", formatDateTime(ts, "full"))
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, Setup(r, hclog.NewNullLogger()))
	return r
}

func TestFlashSurvivesRedirect(t *testing.T) {
	r := newEngine(t)
	r.POST("/save", func(c *gin.Context) {
		Success(c, "Venue X was successfully listed!")
		c.Redirect(http.StatusSeeOther, "/")
	})
	r.GET("/", func(c *gin.Context) {
		Render(c, http.StatusOK, "home.html", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue X was successfully listed!")
	assert.Contains(t, w.Body.String(), "alert-success")
}

func TestFlashRenderedInSameRequest(t *testing.T) {
	r := newEngine(t)
	r.GET("/", func(c *gin.Context) {
		Error(c, "Venue X could not be listed.")
		Render(c, http.StatusOK, "home.html", nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), "alert-error")
	assert.Contains(t, w.Body.String(), "Venue X could not be listed.")
}

func TestNotFoundAndRecovery(t *testing.T) {
	r := newEngine(t)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "500")
}

func TestVenueFormConversion(t *testing.T) {
	f := VenueForm{
		Name: " The Musical Hop ", City: "San Francisco", State: "CA", Address: "1015 Folsom Street",
		Genres: []string{"Jazz", "", "Swing"}, SeekingTalent: "y",
	}
	v := f.Venue()
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, models.Genres{"Jazz", "Swing"}, v.Genres)
	assert.True(t, v.SeekingTalent)

	back := VenueFormFrom(v)
	assert.Equal(t, "y", back.SeekingTalent)
	assert.Equal(t, []string{"Jazz", "Swing"}, back.Genres)
}

func TestArtistFormConversion(t *testing.T) {
	a := ArtistForm{Name: "Guns N Petals", City: "SF", State: "CA", Genres: []string{"Rock n Roll"}}.Artist()
	assert.False(t, a.SeekingVenue)
	assert.Equal(t, "", ArtistFormFrom(a).SeekingVenue)
}

func TestShowFormParsesStartTime(t *testing.T) {
	for _, raw := range []string{"2035-04-01 20:00", "2035-04-01 20:00:00", "2035-04-01T20:00", "2035-04-01T22:00:00+02:00"} {
		s, err := ShowForm{ArtistID: 1, VenueID: 2, StartTime: raw}.Show()
		require.NoError(t, err, raw)
		assert.True(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC).Equal(s.StartTime), raw)
		assert.Equal(t, time.UTC, s.StartTime.Location())
	}

	_, err := ShowForm{ArtistID: 1, VenueID: 2, StartTime: "next tuesday"}.Show()
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestGenreSelectMarksSelected(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.ExecuteTemplate(&sb, "venue_form.html", gin.H{
		"form":   VenueForm{Name: "Hop", Genres: []string{"Jazz"}},
		"genres": GenreChoices,
		"action": "/venues/create",
	})
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `<option value="Jazz" selected>`)
	assert.Contains(t, sb.String(), `<option value="Blues">`)
}
