package itinerary

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/app/observability/metrics"
	"github.com/visitauburn/go-auburn-trips/internal/api"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

type Handler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// Generate handles POST /api/v1/itinerary: a TripPreferences body in, a
// GeneratedItinerary out. Unknown preference values are accepted and resolved
// through the engine's default branches.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary"),
	))
	defer span.End()

	start := time.Now()
	l := h.logger.With(slog.String("handler", "Generate"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	var prefs types.TripPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary := h.itineraryService.GenerateItinerary(ctx, prefs)

	m := metrics.Get()
	m.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("duration", string(prefs.Duration)),
		attribute.String("vibe", string(prefs.Vibe)),
	))
	m.ItineraryDurationSeconds.Record(ctx, time.Since(start).Seconds())

	l.InfoContext(ctx, "Itinerary generated successfully", slog.Int("days", len(itinerary.Days)))
	api.WriteJSONResponse(w, r, http.StatusOK, itinerary)
}
