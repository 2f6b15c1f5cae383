package home

import (
	"context"
	"net/http"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/services"
	"github.com/JonasLeetTheWay/fyyur/internal/web"

	"github.com/gin-gonic/gin"
)

type Service struct {
	*services.Deps
}

func NewService(deps *services.Deps) *Service {
	return &Service{Deps: deps}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/", s.Index)
	r.GET("/health", s.HealthCheck)
}

func (s *Service) Index(c *gin.Context) {
	web.Render(c, http.StatusOK, "home.html", nil)
}

// HealthCheck reports whether the database answers. The cache is optional
// and only reported.
func (s *Service) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	if err := s.Store.Ping(ctx); err != nil {
		s.Log.Error("database ping failed", "error", err)
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	cache := "disabled"
	if s.Cache != nil {
		cache = "ok"
		if err := s.Cache.Ping(ctx); err != nil {
			cache = "unreachable"
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   "fyyur",
		"cache":     cache,
		"timestamp": time.Now(),
	})
}
