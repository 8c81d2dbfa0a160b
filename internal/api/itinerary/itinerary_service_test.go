package itinerary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateItineraryIsTotal(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	ctx := context.Background()

	durations := []types.TripDuration{types.DurationOneDay, types.DurationWeekend, types.DurationThreePlusDays, "unknown"}
	groups := []types.TripGroup{types.GroupSolo, types.GroupCouple, types.GroupFamily, "unknown"}
	vibes := []types.TripVibe{types.VibeAdventure, types.VibeRelaxed, types.VibeFoodWine, types.VibeHistory, "unknown"}
	paces := []types.TripPace{types.PaceLight, types.PaceBalanced, types.PacePacked, "unknown"}

	for _, d := range durations {
		for _, g := range groups {
			for _, v := range vibes {
				for _, p := range paces {
					prefs := types.TripPreferences{Duration: d, Group: g, Vibe: v, Pace: p}
					it := svc.GenerateItinerary(ctx, prefs)

					require.NotNil(t, it, "prefs %+v", prefs)
					assert.NotEmpty(t, it.Title)
					assert.NotEmpty(t, it.Description)
					assert.NotEmpty(t, it.Tips)
					require.NotEmpty(t, it.Days)

					for i, day := range it.Days {
						assert.Equal(t, i+1, day.DayNumber, "days numbered 1..n for %+v", prefs)
						assert.NotEmpty(t, day.Title)
						assert.NotEmpty(t, day.Activities, "no empty day for %+v", prefs)
						assert.NotEmpty(t, day.Dining)
					}
				}
			}
		}
	}
}

func TestGenerateItineraryEchoesPreferences(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	prefs := types.TripPreferences{
		Duration: types.DurationWeekend,
		Group:    types.GroupCouple,
		Vibe:     types.VibeFoodWine,
		Pace:     types.PaceBalanced,
	}

	it := svc.GenerateItinerary(context.Background(), prefs)
	assert.Equal(t, prefs.Duration, it.Duration)
	assert.Equal(t, prefs.Group, it.Group)
	assert.Equal(t, prefs.Vibe, it.Vibe)
	assert.Equal(t, prefs.Pace, it.Pace)
}

func TestGenerateItineraryDayCounts(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	ctx := context.Background()

	tests := []struct {
		duration types.TripDuration
		days     int
	}{
		{types.DurationOneDay, 1},
		{types.DurationWeekend, 2},
		{types.DurationThreePlusDays, 3},
		{"unknown", 2},
	}
	for _, tt := range tests {
		it := svc.GenerateItinerary(ctx, types.TripPreferences{Duration: tt.duration})
		assert.Len(t, it.Days, tt.days, "duration %q", tt.duration)
	}
}

func TestGenerateItineraryIsDeterministic(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	ctx := context.Background()
	prefs := types.TripPreferences{
		Duration: types.DurationThreePlusDays,
		Group:    types.GroupFamily,
		Vibe:     types.VibeHistory,
		Pace:     types.PacePacked,
	}

	first := svc.GenerateItinerary(ctx, prefs)
	second := svc.GenerateItinerary(ctx, prefs)
	assert.Equal(t, first, second)
}

func TestGenerateItineraryOneDayAdventure(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	it := svc.GenerateItinerary(context.Background(), types.TripPreferences{
		Duration: types.DurationOneDay,
		Group:    types.GroupFamily,
		Vibe:     types.VibeAdventure,
		Pace:     types.PaceBalanced,
	})

	require.Len(t, it.Days, 1)
	day := it.Days[0]
	assert.Equal(t, 1, day.DayNumber)
	assert.Equal(t, "Your Auburn Day", day.Title)

	ids := make([]string, 0, len(day.Activities))
	for _, a := range day.Activities {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "arrival")
	assert.Contains(t, ids, "old-town-walk")
	require.NotEmpty(t, day.Dining)
	assert.Equal(t, "dinner-1", day.Dining[0].ID)
}

func TestGenerateItineraryWeekendFoodWineCouple(t *testing.T) {
	svc := NewServiceImpl(testLogger())
	it := svc.GenerateItinerary(context.Background(), types.TripPreferences{
		Duration: types.DurationWeekend,
		Group:    types.GroupCouple,
		Vibe:     types.VibeFoodWine,
		Pace:     types.PaceBalanced,
	})

	require.Len(t, it.Days, 2)

	// Day 1 winds down with a wine tasting before dinner, as a snack-slot
	// dining entry rather than an activity.
	var tasting *types.ItineraryDining
	for i := range it.Days[0].Dining {
		if it.Days[0].Dining[i].ID == "wine-tasting" {
			tasting = &it.Days[0].Dining[i]
		}
	}
	require.NotNil(t, tasting)
	assert.Equal(t, types.MealSnack, tasting.MealType)

	dayOneActivityIDs := make([]string, 0)
	for _, a := range it.Days[0].Activities {
		dayOneActivityIDs = append(dayOneActivityIDs, a.ID)
	}
	assert.Equal(t, []string{"arrival", "old-town-stroll"}, dayOneActivityIDs)

	dayTwoIDs := make([]string, 0)
	for _, a := range it.Days[1].Activities {
		dayTwoIDs = append(dayTwoIDs, a.ID)
	}
	assert.Contains(t, dayTwoIDs, "wine-tasting-2")

	assert.Equal(t, "Romantic Food & Wine Weekend", it.Title)
}

func TestComposeTitle(t *testing.T) {
	tests := []struct {
		vibe     types.TripVibe
		group    types.TripGroup
		duration types.TripDuration
		want     string
	}{
		{types.VibeAdventure, types.GroupFamily, types.DurationOneDay, "Family Adventure Day"},
		{types.VibeHistory, types.GroupSolo, types.DurationWeekend, "History Weekend"},
		{types.VibeRelaxed, types.GroupCouple, types.DurationThreePlusDays, "Romantic Getaway"},
		{types.VibeRelaxed, types.GroupSolo, types.DurationWeekend, "Your Auburn Weekend"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, composeTitle(tt.vibe, tt.group, tt.duration))
	}
}

func TestComposeDescription(t *testing.T) {
	desc := composeDescription(types.VibeAdventure, types.GroupFamily, types.DurationWeekend, types.PacePacked)
	assert.Contains(t, desc, "action-packed weekend")
	assert.Contains(t, desc, "families")
	assert.Contains(t, desc, "outdoor activities")

	desc = composeDescription(types.VibeRelaxed, types.GroupSolo, types.DurationOneDay, types.PaceLight)
	assert.Contains(t, desc, "relaxed day")
	assert.Contains(t, desc, "own pace")
	assert.Contains(t, desc, "Balanced mix")
}
