// Package servicestest builds a gin engine over a seeded SQLite database for
// handler tests.
package servicestest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/database"
	"github.com/JonasLeetTheWay/fyyur/internal/events"
	"github.com/JonasLeetTheWay/fyyur/internal/redis"
	"github.com/JonasLeetTheWay/fyyur/internal/services"
	"github.com/JonasLeetTheWay/fyyur/internal/web"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

// Now is the fixed clock of every test environment. Seeded shows in 2019 are
// past and those in 2035 upcoming.
var Now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Recorder is a Publisher that keeps what it was given.
type Recorder struct {
	mu     sync.Mutex
	events []events.ListingEvent
}

func (r *Recorder) Publish(_ context.Context, event events.ListingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]events.Kind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type Env struct {
	Engine *gin.Engine
	Deps   *services.Deps
	Events *Recorder

	// Redis is the in-memory server behind Deps.Cache, nil when uncached.
	Redis *miniredis.Miniredis
}

type Router interface {
	SetupRoutes(r *gin.Engine)
}

// New seeds a fresh database and mounts the services built by mount.
func New(t *testing.T, mount func(deps *services.Deps) []Router) *Env {
	t.Helper()
	return build(t, nil, mount)
}

// NewCached is New with the venue cache backed by an in-memory Redis.
func NewCached(t *testing.T, mount func(deps *services.Deps) []Router) *Env {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&config.Config{
		RedisHost:    mr.Host(),
		RedisPort:    mr.Port(),
		CacheEnabled: true,
		CacheTTL:     time.Minute,
	})
	t.Cleanup(func() { cache.Close() })

	env := build(t, cache, mount)
	env.Redis = mr
	return env
}

func build(t *testing.T, cache *redis.Client, mount func(deps *services.Deps) []Router) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := hclog.NewNullLogger()
	cfg := &config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "fyyur_test.db")}
	db, err := database.Connect(cfg, log)
	require.NoError(t, err)
	require.NoError(t, database.SeedData(db, log))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	recorder := &Recorder{}
	deps := services.NewDeps(database.NewStore(db), cache, recorder, log)
	deps.Now = func() time.Time { return Now }

	r := gin.New()
	require.NoError(t, web.Setup(r, log))
	for _, svc := range mount(deps) {
		svc.SetupRoutes(r)
	}
	return &Env{Engine: r, Deps: deps, Events: recorder}
}

func (e *Env) Get(path string) *httptest.ResponseRecorder {
	return e.Do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *Env) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.Do(req)
}

func (e *Env) Delete(path string) *httptest.ResponseRecorder {
	return e.Do(httptest.NewRequest(http.MethodDelete, path, nil))
}

func (e *Env) Do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.Engine.ServeHTTP(w, req)
	return w
}
