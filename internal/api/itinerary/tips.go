package itinerary

import "github.com/visitauburn/go-auburn-trips/internal/types"

// GenerateTips produces advisory tips in a stable order: family tips first
// when applicable, then vibe tips, then pace tips, then two universal tips.
// Always returns at least the universal pair.
func GenerateTips(vibe types.TripVibe, group types.TripGroup, pace types.TripPace) []string {
	tips := make([]string, 0, 10)

	if group == types.GroupFamily {
		tips = append(tips,
			"Pack plenty of snacks and water for kids on trails.",
			"Many restaurants have kids menus and outdoor patios.",
			"Start activities early in the morning when kids have more energy.",
		)
	}

	switch vibe {
	case types.VibeAdventure:
		tips = append(tips,
			"Wear sturdy hiking shoes and bring layers for changing weather.",
			"Arrive at trailheads early (before 9am) to secure parking.",
			"Pack a swimsuit for river swimming opportunities.",
		)
	case types.VibeHistory:
		tips = append(tips,
			"Most museums are open Tuesday-Sunday, check hours before visiting.",
			"Allow extra time for gold panning—it's more fun than expected!",
			"Old Town walking tour maps are available at the Visitor Center.",
		)
	}

	switch pace {
	case types.PacePacked:
		tips = append(tips,
			"This is an active itinerary—comfortable shoes are essential.",
			"Stay hydrated and take breaks when needed.",
		)
	case types.PaceLight:
		tips = append(tips,
			"Feel free to skip activities if you need more rest time.",
			"Many activities can be shortened or extended based on your energy.",
		)
	}

	tips = append(tips,
		"Old Town parking is free in public lots.",
		"Check local event calendars for special events during your visit.",
	)

	return tips
}
