package search

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/app/observability/metrics"
	"github.com/visitauburn/go-auburn-trips/internal/api"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

type Handler struct {
	searchService Service
	logger        *slog.Logger
}

func NewHandler(searchService Service, logger *slog.Logger) *Handler {
	return &Handler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search handles GET /api/v1/search?q=&type=&limit=. Queries shorter than
// two characters answer 200 with an empty result set so the typeahead can
// fire on every keystroke.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := otel.Tracer("SearchHandler").Start(r.Context(), "Search", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Search"))

	q := r.URL.Query()
	query := q.Get("q")
	docType := types.SearchDocumentType(q.Get("type"))
	limit := 0
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = v
	}

	results := h.searchService.Search(ctx, query, docType, limit)

	metrics.Get().SearchRequestsTotal.Add(ctx, 1)
	metrics.Get().SearchDurationSeconds.Record(ctx, time.Since(start).Seconds())

	l.DebugContext(ctx, "Search handled",
		slog.String("query", query),
		slog.Int("results", len(results)))

	api.WriteJSONResponse(w, r, http.StatusOK, types.SearchResponse{
		Query:   query,
		Type:    docType,
		Results: results,
		TookMs:  time.Since(start).Milliseconds(),
	})
}
