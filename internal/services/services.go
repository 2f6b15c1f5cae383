// Package services holds what the venue, artist and show handlers share.
package services

import (
	"context"
	"strconv"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/database"
	"github.com/JonasLeetTheWay/fyyur/internal/events"
	"github.com/JonasLeetTheWay/fyyur/internal/redis"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type Deps struct {
	Store  *database.Store
	Cache  *redis.Client
	Events events.Publisher
	Log    hclog.Logger

	// Now is the clock used to split shows into past and upcoming.
	Now func() time.Time
}

func NewDeps(store *database.Store, cache *redis.Client, publisher events.Publisher, log hclog.Logger) *Deps {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Deps{
		Store:  store,
		Cache:  cache,
		Events: publisher,
		Log:    log,
		Now:    time.Now,
	}
}

// Changed drops cached aggregates and announces the change. Failures are
// logged only: the write has already been committed.
func (d *Deps) Changed(ctx context.Context, kind events.Kind, id uint, name string) {
	if err := d.Cache.Invalidate(ctx); err != nil {
		d.Log.Warn("failed to invalidate venue cache", "error", err)
	}
	event := events.NewListingEvent(kind, id, name, d.Now())
	if err := d.Events.Publish(ctx, event); err != nil {
		d.Log.Warn("failed to publish listing event", "kind", kind, "id", id, "error", err)
	}
}

// ParseID reads the :id path parameter.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// SearchTerm reads search_term from the posted form or, for GET, the query.
func SearchTerm(c *gin.Context) string {
	if term, ok := c.GetPostForm("search_term"); ok {
		return term
	}
	return c.Query("search_term")
}
