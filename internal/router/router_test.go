package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/app/observability/metrics"
	"github.com/visitauburn/go-auburn-trips/config"
	"github.com/visitauburn/go-auburn-trips/internal/container"
)

func newTestRouter() http.Handler {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Search.CacheTTL = time.Minute
	cfg.Inquiries.Retention = time.Hour

	c := container.NewContainer(cfg, logger)
	return SetupRouter(&Config{
		ItineraryHandler:   c.ItineraryHandler,
		AttractionsHandler: c.AttractionsHandler,
		ContentHandler:     c.ContentHandler,
		SearchHandler:      c.SearchHandler,
		InquiriesHandler:   c.InquiriesHandler,
		AllowedOrigins:     []string{"http://localhost:3000"},
	})
}

func TestPing(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRoutesAreMounted(t *testing.T) {
	r := newTestRouter()

	gets := []string{
		"/api/v1/attractions",
		"/api/v1/attractions/featured",
		"/api/v1/attractions/lake-clementine-trail",
		"/api/v1/activities",
		"/api/v1/accommodations",
		"/api/v1/dining",
		"/api/v1/events",
		"/api/v1/editorials",
		"/api/v1/search?q=gold",
	}
	for _, path := range gets {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
