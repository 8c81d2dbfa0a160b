package itinerary

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the itinerary generation contract. Generation is total:
// every preference combination, recognized or not, yields a well-formed
// itinerary.
type Service interface {
	GenerateItinerary(ctx context.Context, prefs types.TripPreferences) *types.GeneratedItinerary
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

// GenerateItinerary maps trip preferences to a complete itinerary. Fully
// deterministic: identical preferences produce identical output.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, prefs types.TripPreferences) *types.GeneratedItinerary {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.duration", string(prefs.Duration)),
		attribute.String("trip.group", string(prefs.Group)),
		attribute.String("trip.vibe", string(prefs.Vibe)),
		attribute.String("trip.pace", string(prefs.Pace)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateItinerary"))
	l.DebugContext(ctx, "Generating itinerary",
		slog.String("duration", string(prefs.Duration)),
		slog.String("vibe", string(prefs.Vibe)),
	)

	template := SelectTemplate(prefs.Vibe, prefs.Group)
	dayCount := DayCount(prefs.Duration)
	span.SetAttributes(
		attribute.String("trip.template", string(template)),
		attribute.Int("trip.days", dayCount),
	)

	days := make([]types.ItineraryDay, 0, dayCount)
	for dayNumber := 1; dayNumber <= dayCount; dayNumber++ {
		days = append(days, BuildDay(dayNumber, template, prefs.Duration, prefs.Pace, prefs.Group, dayCount))
	}

	itinerary := &types.GeneratedItinerary{
		Title:       composeTitle(prefs.Vibe, prefs.Group, prefs.Duration),
		Description: composeDescription(prefs.Vibe, prefs.Group, prefs.Duration, prefs.Pace),
		Duration:    prefs.Duration,
		Group:       prefs.Group,
		Vibe:        prefs.Vibe,
		Pace:        prefs.Pace,
		Days:        days,
		Tips:        GenerateTips(prefs.Vibe, prefs.Group, prefs.Pace),
	}

	l.InfoContext(ctx, "Itinerary generated",
		slog.String("template", string(template)),
		slog.Int("days", dayCount),
	)
	span.SetStatus(codes.Ok, "Itinerary generated")
	return itinerary
}

func composeTitle(vibe types.TripVibe, group types.TripGroup, duration types.TripDuration) string {
	var durationText string
	switch duration {
	case types.DurationOneDay:
		durationText = "Day"
	case types.DurationWeekend:
		durationText = "Weekend"
	default:
		durationText = "Getaway"
	}

	var groupText string
	switch group {
	case types.GroupFamily:
		groupText = "Family"
	case types.GroupCouple:
		groupText = "Romantic"
	}

	var vibeText string
	switch vibe {
	case types.VibeAdventure:
		vibeText = "Adventure"
	case types.VibeHistory:
		vibeText = "History"
	case types.VibeFoodWine:
		vibeText = "Food & Wine"
	}

	switch {
	case groupText != "" && vibeText != "":
		return groupText + " " + vibeText + " " + durationText
	case vibeText != "":
		return vibeText + " " + durationText
	case groupText != "":
		return groupText + " " + durationText
	default:
		return "Your Auburn " + durationText
	}
}

func composeDescription(vibe types.TripVibe, group types.TripGroup, duration types.TripDuration, pace types.TripPace) string {
	var durationText string
	switch duration {
	case types.DurationOneDay:
		durationText = "day"
	case types.DurationWeekend:
		durationText = "weekend"
	default:
		durationText = "extended stay"
	}

	var paceText string
	switch pace {
	case types.PaceLight:
		paceText = "relaxed"
	case types.PacePacked:
		paceText = "action-packed"
	default:
		paceText = "balanced"
	}

	desc := "A " + paceText + " " + durationText + " in Auburn, California, perfect for "

	switch group {
	case types.GroupFamily:
		desc += "families with kid-friendly activities, easy trails, and educational experiences."
	case types.GroupCouple:
		desc += "couples seeking romantic experiences, scenic views, and intimate dining."
	default:
		desc += "exploring Auburn's best attractions at your own pace."
	}

	switch vibe {
	case types.VibeAdventure:
		desc += " Focus on outdoor activities, hiking, and nature exploration."
	case types.VibeHistory:
		desc += " Deep dive into Gold Rush heritage, museums, and historic sites."
	case types.VibeFoodWine:
		desc += " Emphasis on local dining, wine tasting, and culinary experiences."
	default:
		desc += " Balanced mix of activities, dining, and relaxation."
	}

	return desc
}
