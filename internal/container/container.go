package container

import (
	"log/slog"

	"github.com/visitauburn/go-auburn-trips/config"
	"github.com/visitauburn/go-auburn-trips/internal/api/attractions"
	"github.com/visitauburn/go-auburn-trips/internal/api/content"
	"github.com/visitauburn/go-auburn-trips/internal/api/inquiries"
	"github.com/visitauburn/go-auburn-trips/internal/api/itinerary"
	"github.com/visitauburn/go-auburn-trips/internal/api/search"
)

// Container wires the repositories, services, and handlers the router
// serves. Everything is in-memory, so construction cannot fail.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	ItineraryHandler   *itinerary.Handler
	AttractionsHandler *attractions.Handler
	ContentHandler     *content.Handler
	SearchHandler      *search.Handler
	InquiriesHandler   *inquiries.Handler
}

func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	attractionRepo := attractions.NewRepository()
	contentRepo := content.NewRepository()

	itineraryService := itinerary.NewServiceImpl(logger)
	attractionService := attractions.NewServiceImpl(attractionRepo, logger)
	searchService := search.NewServiceImpl(attractionRepo, contentRepo, cfg.Search.CacheTTL, logger)
	inquiryService := inquiries.NewServiceImpl(cfg.Inquiries.Retention, logger)

	return &Container{
		Config:             cfg,
		Logger:             logger,
		ItineraryHandler:   itinerary.NewHandler(itineraryService, logger),
		AttractionsHandler: attractions.NewHandler(attractionService, logger),
		ContentHandler:     content.NewHandler(contentRepo, logger),
		SearchHandler:      search.NewHandler(searchService, logger),
		InquiriesHandler:   inquiries.NewHandler(inquiryService, logger),
	}
}
