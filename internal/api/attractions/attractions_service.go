package attractions

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for attraction queries.
type Service interface {
	ListAttractions(ctx context.Context, filter types.AttractionFilter) []types.Attraction
	GetAttraction(ctx context.Context, id string) (*types.Attraction, error)
	GetFeaturedAttractions(ctx context.Context, limit int) []types.Attraction
	GetAttractionsForPage(ctx context.Context, pagePath string) []types.Attraction
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger         *slog.Logger
	attractionRepo Repository
}

func NewServiceImpl(attractionRepo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:         logger,
		attractionRepo: attractionRepo,
	}
}

// ListAttractions applies the first populated filter field, narrowest first.
// Filters are not combined; the catalog is small enough that callers refine
// client-side.
func (s *ServiceImpl) ListAttractions(ctx context.Context, filter types.AttractionFilter) []types.Attraction {
	_, span := otel.Tracer("AttractionsService").Start(ctx, "ListAttractions", trace.WithAttributes(
		attribute.String("filter.type", string(filter.Type)),
		attribute.String("filter.area", string(filter.Area)),
	))
	defer span.End()

	var result []types.Attraction
	switch {
	case filter.Type != "":
		result = s.attractionRepo.GetByType(filter.Type)
	case filter.Area != "":
		result = s.attractionRepo.GetByLocation(filter.Area)
	case filter.Difficulty != "":
		result = s.attractionRepo.GetByDifficulty(filter.Difficulty)
	case filter.FamilyFriendly:
		result = s.attractionRepo.GetFamilyFriendly()
	case filter.Group == types.AttractionGroupOutdoor:
		result = s.attractionRepo.GetOutdoor()
	case filter.Group == types.AttractionGroupHistoryCulture:
		result = s.attractionRepo.GetHistoryCulture()
	case filter.Group == types.AttractionGroupFoodDrink:
		result = s.attractionRepo.GetFoodDrink()
	default:
		result = s.attractionRepo.GetAll()
	}

	span.SetAttributes(attribute.Int("attractions.count", len(result)))
	span.SetStatus(codes.Ok, "Attractions listed")
	return result
}

func (s *ServiceImpl) GetAttraction(ctx context.Context, id string) (*types.Attraction, error) {
	ctx, span := otel.Tracer("AttractionsService").Start(ctx, "GetAttraction", trace.WithAttributes(
		attribute.String("attraction.id", id),
	))
	defer span.End()

	attraction, err := s.attractionRepo.GetByID(id)
	if err != nil {
		s.logger.DebugContext(ctx, "Attraction lookup missed", slog.String("attractionID", id))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Attraction not found")
		return nil, fmt.Errorf("attraction %q: %w", id, err)
	}

	span.SetStatus(codes.Ok, "Attraction retrieved")
	return attraction, nil
}

func (s *ServiceImpl) GetFeaturedAttractions(ctx context.Context, limit int) []types.Attraction {
	_, span := otel.Tracer("AttractionsService").Start(ctx, "GetFeaturedAttractions", trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	featured := s.attractionRepo.GetFeatured(limit)
	span.SetAttributes(attribute.Int("attractions.count", len(featured)))
	span.SetStatus(codes.Ok, "Featured attractions retrieved")
	return featured
}

func (s *ServiceImpl) GetAttractionsForPage(ctx context.Context, pagePath string) []types.Attraction {
	_, span := otel.Tracer("AttractionsService").Start(ctx, "GetAttractionsForPage", trace.WithAttributes(
		attribute.String("page.path", pagePath),
	))
	defer span.End()

	result := s.attractionRepo.GetForPage(pagePath)
	span.SetAttributes(attribute.Int("attractions.count", len(result)))
	span.SetStatus(codes.Ok, "Attractions for page retrieved")
	return result
}
