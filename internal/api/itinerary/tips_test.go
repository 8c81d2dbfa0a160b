package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func TestGenerateTipsAlwaysIncludesUniversalPair(t *testing.T) {
	tips := GenerateTips(types.TripVibe(""), types.TripGroup(""), types.TripPace(""))
	require.Len(t, tips, 2)
	assert.Equal(t, "Old Town parking is free in public lots.", tips[0])
	assert.Equal(t, "Check local event calendars for special events during your visit.", tips[1])
}

func TestGenerateTipsFamilyTipsComeFirst(t *testing.T) {
	tips := GenerateTips(types.VibeAdventure, types.GroupFamily, types.PacePacked)
	require.GreaterOrEqual(t, len(tips), 3)
	assert.Contains(t, tips[0], "snacks")
	assert.Contains(t, tips[1], "kids menus")
	assert.Contains(t, tips[2], "early in the morning")
}

func TestGenerateTipsOrdering(t *testing.T) {
	// family(3) + adventure(3) + packed(2) + universal(2)
	tips := GenerateTips(types.VibeAdventure, types.GroupFamily, types.PacePacked)
	assert.Len(t, tips, 10)

	// history(3) + light(2) + universal(2)
	tips = GenerateTips(types.VibeHistory, types.GroupCouple, types.PaceLight)
	assert.Len(t, tips, 7)
	assert.Contains(t, tips[0], "museums")

	// relaxed and balanced add nothing beyond the universal pair
	tips = GenerateTips(types.VibeRelaxed, types.GroupSolo, types.PaceBalanced)
	assert.Len(t, tips, 2)
}
