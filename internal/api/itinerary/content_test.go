package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func TestDayContentTableCoversEveryTemplateAndPosition(t *testing.T) {
	for _, template := range Templates() {
		for _, position := range Positions() {
			block, ok := dayContentTable[template][position]
			require.True(t, ok, "missing block for %s/%s", template, position)
			assert.NotEmpty(t, block.Title, "%s/%s has no title", template, position)
			assert.NotEmpty(t, block.Activities, "%s/%s has no activities", template, position)
			assert.NotEmpty(t, block.Dining, "%s/%s has no dining", template, position)
		}
	}
}

func TestDayContentActivityIDsUniqueWithinBlock(t *testing.T) {
	for _, template := range Templates() {
		for _, position := range Positions() {
			block := dayContentTable[template][position]
			seen := make(map[string]bool)
			for _, a := range block.Activities {
				assert.False(t, seen[a.ID], "%s/%s repeats activity %q", template, position, a.ID)
				seen[a.ID] = true
			}
		}
	}
}

func TestBuildDayLightPaceCapsActivities(t *testing.T) {
	for _, template := range Templates() {
		for day := 1; day <= 3; day++ {
			built := BuildDay(day, template, types.DurationThreePlusDays, types.PaceLight, types.GroupSolo, 3)
			assert.LessOrEqual(t, len(built.Activities), maxActivitiesLight,
				"%s day %d exceeds light cap", template, day)
		}
	}
}

func TestBuildDayPackedPaceAppendsExtra(t *testing.T) {
	balanced := BuildDay(2, TemplateOutdoorAdventure, types.DurationWeekend, types.PaceBalanced, types.GroupSolo, 2)
	packed := BuildDay(2, TemplateOutdoorAdventure, types.DurationWeekend, types.PacePacked, types.GroupSolo, 2)

	require.Equal(t, len(balanced.Activities)+1, len(packed.Activities))
	assert.Equal(t, "optional-bike", packed.Activities[len(packed.Activities)-1].ID)
}

func TestBuildDayPackedExtraSkippedOnFirstDay(t *testing.T) {
	packed := BuildDay(1, TemplateOutdoorAdventure, types.DurationWeekend, types.PacePacked, types.GroupSolo, 2)
	for _, a := range packed.Activities {
		assert.NotEqual(t, "optional-bike", a.ID)
	}
}

func TestBuildDayPaceVariantDescriptions(t *testing.T) {
	balanced := BuildDay(2, TemplateOutdoorAdventure, types.DurationWeekend, types.PaceBalanced, types.GroupSolo, 2)
	packed := BuildDay(2, TemplateOutdoorAdventure, types.DurationWeekend, types.PacePacked, types.GroupSolo, 2)
	light := BuildDay(2, TemplateOutdoorAdventure, types.DurationWeekend, types.PaceLight, types.GroupSolo, 2)

	find := func(day types.ItineraryDay, id string) *types.ItineraryActivity {
		for i := range day.Activities {
			if day.Activities[i].ID == id {
				return &day.Activities[i]
			}
		}
		return nil
	}

	b := find(balanced, "lake-clementine")
	p := find(packed, "lake-clementine")
	l := find(light, "lake-clementine")
	require.NotNil(t, b)
	require.NotNil(t, p)
	require.NotNil(t, l)

	assert.Contains(t, b.Description, "8-mile")
	assert.Contains(t, p.Description, "10-mile")
	assert.Contains(t, l.Description, "6-mile", "light pace uses the default wording")
}

func TestBuildDaySingleDayTripUsesFirstDayBlock(t *testing.T) {
	day := BuildDay(1, TemplateOutdoorAdventure, types.DurationOneDay, types.PaceBalanced, types.GroupFamily, 1)

	assert.Equal(t, "Your Auburn Day", day.Title)
	ids := make([]string, 0, len(day.Activities))
	for _, a := range day.Activities {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "arrival")
	assert.Contains(t, ids, "old-town-walk")
}

func TestBuildDayUnknownTemplateFallsBack(t *testing.T) {
	day := BuildDay(1, TemplateKey("mystery"), types.DurationWeekend, types.PaceBalanced, types.GroupSolo, 2)
	fallback := BuildDay(1, TemplateWeekendGetaway, types.DurationWeekend, types.PaceBalanced, types.GroupSolo, 2)

	assert.Equal(t, fallback, day)
	assert.NotEmpty(t, day.Activities)
}

func TestBuildDayNumbering(t *testing.T) {
	for day := 1; day <= 3; day++ {
		built := BuildDay(day, TemplateFamilyFun, types.DurationThreePlusDays, types.PaceBalanced, types.GroupFamily, 3)
		assert.Equal(t, day, built.DayNumber)
	}
}
