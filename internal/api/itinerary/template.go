package itinerary

import "github.com/visitauburn/go-auburn-trips/internal/types"

// TemplateKey is one of the five itinerary archetypes content is authored
// against.
type TemplateKey string

const (
	TemplateWeekendGetaway   TemplateKey = "weekend-getaway"
	TemplateOutdoorAdventure TemplateKey = "outdoor-adventure"
	TemplateGoldRushHistory  TemplateKey = "gold-rush-history"
	TemplateFamilyFun        TemplateKey = "family-fun"
	TemplateRomanticEscape   TemplateKey = "romantic-escape"
)

// SelectTemplate maps a vibe/group pair to an archetype. Total by
// construction: unrecognized vibes fall through to the group rule, and
// unrecognized groups land on weekend-getaway.
func SelectTemplate(vibe types.TripVibe, group types.TripGroup) TemplateKey {
	switch vibe {
	case types.VibeAdventure:
		return TemplateOutdoorAdventure
	case types.VibeHistory:
		return TemplateGoldRushHistory
	case types.VibeFoodWine:
		return TemplateRomanticEscape
	case types.VibeRelaxed:
		if group == types.GroupFamily {
			return TemplateFamilyFun
		}
		return TemplateWeekendGetaway
	}

	switch group {
	case types.GroupFamily:
		return TemplateFamilyFun
	case types.GroupCouple:
		return TemplateRomanticEscape
	default:
		return TemplateWeekendGetaway
	}
}

// DayCount derives the number of generated days from a trip duration.
// Unknown durations default to a two-day trip.
func DayCount(duration types.TripDuration) int {
	switch duration {
	case types.DurationOneDay:
		return 1
	case types.DurationWeekend:
		return 2
	case types.DurationThreePlusDays:
		return 3
	default:
		return 2
	}
}

// DayPosition classifies a day within the trip for content selection.
type DayPosition string

const (
	PositionFirst DayPosition = "first"
	PositionMain  DayPosition = "main"
	PositionFinal DayPosition = "final"
)

// positionFor maps a day number onto the authored content positions. Day
// numbers past three clamp to the final-day block so no reachable input
// yields an empty day.
func positionFor(dayNumber int) DayPosition {
	switch dayNumber {
	case 1:
		return PositionFirst
	case 2:
		return PositionMain
	default:
		return PositionFinal
	}
}
