package home

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/JonasLeetTheWay/fyyur/internal/services"
	"github.com/JonasLeetTheWay/fyyur/internal/services/servicestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *servicestest.Env {
	return servicestest.New(t, func(deps *services.Deps) []servicestest.Router {
		return []servicestest.Router{NewService(deps)}
	})
}

func TestIndex(t *testing.T) {
	env := setup(t)

	w := env.Get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/venues/search"`)
}

func TestHealthCheck(t *testing.T) {
	env := setup(t)

	w := env.Get("/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	env := setup(t)

	w := env.Get("/no/such/page")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found")
}
