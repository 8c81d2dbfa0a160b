package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/visitauburn/go-auburn-trips/internal/api/attractions"
	"github.com/visitauburn/go-auburn-trips/internal/api/content"
	"github.com/visitauburn/go-auburn-trips/internal/api/inquiries"
	"github.com/visitauburn/go-auburn-trips/internal/api/itinerary"
	"github.com/visitauburn/go-auburn-trips/internal/api/search"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler   *itinerary.Handler
	AttractionsHandler *attractions.Handler
	ContentHandler     *content.Handler
	SearchHandler      *search.Handler
	InquiriesHandler   *inquiries.Handler
	AllowedOrigins     []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itinerary", cfg.ItineraryHandler.Generate)

		r.Route("/attractions", func(r chi.Router) {
			r.Get("/", cfg.AttractionsHandler.List)
			r.Get("/featured", cfg.AttractionsHandler.GetFeatured)
			r.Get("/{attractionID}", cfg.AttractionsHandler.GetByID)
		})

		r.Get("/activities", cfg.ContentHandler.ListActivities)
		r.Get("/accommodations", cfg.ContentHandler.ListAccommodations)
		r.Get("/dining", cfg.ContentHandler.ListDining)
		r.Get("/events", cfg.ContentHandler.ListEvents)
		r.Get("/editorials", cfg.ContentHandler.ListEditorials)

		r.Get("/search", cfg.SearchHandler.Search)

		r.Post("/contact", cfg.InquiriesHandler.SubmitContact)
		r.Post("/newsletter", cfg.InquiriesHandler.SubscribeNewsletter)
	})

	return r
}
