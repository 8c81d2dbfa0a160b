package content

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/api"
)

type Handler struct {
	contentRepo Repository
	logger      *slog.Logger
}

func NewHandler(contentRepo Repository, logger *slog.Logger) *Handler {
	return &Handler{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// ListActivities handles GET /api/v1/activities with an optional subHub
// query parameter.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ContentHandler").Start(r.Context(), "ListActivities", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/activities"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListActivities"))

	var result any
	if subHub := r.URL.Query().Get("subHub"); subHub != "" {
		result = h.contentRepo.GetActivitiesBySubHub(subHub)
	} else {
		result = h.contentRepo.GetActivities()
	}

	l.DebugContext(ctx, "Activities listed")
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// ListAccommodations handles GET /api/v1/accommodations.
func (h *Handler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ContentHandler").Start(r.Context(), "ListAccommodations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/accommodations"),
	))
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.contentRepo.GetAccommodations())
}

// ListDining handles GET /api/v1/dining.
func (h *Handler) ListDining(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ContentHandler").Start(r.Context(), "ListDining", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/dining"),
	))
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.contentRepo.GetDining())
}

// ListEvents handles GET /api/v1/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ContentHandler").Start(r.Context(), "ListEvents", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/events"),
	))
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.contentRepo.GetEvents())
}

// ListEditorials handles GET /api/v1/editorials.
func (h *Handler) ListEditorials(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ContentHandler").Start(r.Context(), "ListEditorials", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/editorials"),
	))
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.contentRepo.GetEditorials())
}
