package attractions

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/api"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

type Handler struct {
	attractionService Service
	logger            *slog.Logger
}

func NewHandler(attractionService Service, logger *slog.Logger) *Handler {
	return &Handler{
		attractionService: attractionService,
		logger:            logger,
	}
}

// List handles GET /api/v1/attractions with optional type, area, difficulty,
// familyFriendly, group, and page query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionsHandler").Start(r.Context(), "List", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/attractions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "List"))
	l.DebugContext(ctx, "List attractions handler invoked")

	q := r.URL.Query()
	if pagePath := q.Get("page"); pagePath != "" {
		result := h.attractionService.GetAttractionsForPage(ctx, pagePath)
		api.WriteJSONResponse(w, r, http.StatusOK, result)
		return
	}

	filter := types.AttractionFilter{
		Type:       types.AttractionType(q.Get("type")),
		Area:       types.LocationArea(q.Get("area")),
		Difficulty: types.Difficulty(q.Get("difficulty")),
		Group:      types.AttractionGroup(q.Get("group")),
	}
	if ff, err := strconv.ParseBool(q.Get("familyFriendly")); err == nil {
		filter.FamilyFriendly = ff
	}

	result := h.attractionService.ListAttractions(ctx, filter)
	l.InfoContext(ctx, "Attractions listed", slog.Int("count", len(result)))
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// GetFeatured handles GET /api/v1/attractions/featured?limit=N.
func (h *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionsHandler").Start(r.Context(), "GetFeatured", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/attractions/featured"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetFeatured"))

	limit := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	featured := h.attractionService.GetFeaturedAttractions(ctx, limit)
	l.InfoContext(ctx, "Featured attractions listed", slog.Int("count", len(featured)))
	api.WriteJSONResponse(w, r, http.StatusOK, featured)
}

// GetByID handles GET /api/v1/attractions/{attractionID}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionsHandler").Start(r.Context(), "GetByID", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/attractions/{attractionID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetByID"))

	id := chi.URLParam(r, "attractionID")
	if id == "" {
		l.ErrorContext(ctx, "Attraction ID is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	attraction, err := h.attractionService.GetAttraction(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAttractionNotFound) {
			l.DebugContext(ctx, "Attraction not found", slog.String("attractionID", id))
			api.ErrorResponse(w, r, http.StatusNotFound, "Attraction not found")
			return
		}
		l.ErrorContext(ctx, "Failed to get attraction", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to get attraction")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, attraction)
}
