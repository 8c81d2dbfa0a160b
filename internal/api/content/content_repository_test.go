package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIntegrity(t *testing.T) {
	repo := NewRepository()

	activities := repo.GetActivities()
	require.Len(t, activities, 13)
	seen := make(map[string]bool)
	for _, a := range activities {
		assert.False(t, seen[a.ID], "duplicate activity %q", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Excerpt)
	}

	assert.Len(t, repo.GetAccommodations(), 2)
	assert.Len(t, repo.GetDining(), 3)
	assert.Len(t, repo.GetEvents(), 8)
	assert.Len(t, repo.GetEditorials(), 1)
}

func TestGetActivitiesBySubHub(t *testing.T) {
	repo := NewRepository()

	outdoor := repo.GetActivitiesBySubHub("outdoor-adventures")
	require.NotEmpty(t, outdoor)
	for _, a := range outdoor {
		assert.Equal(t, "outdoor-adventures", a.SubHub)
	}

	history := repo.GetActivitiesBySubHub("history-culture")
	assert.NotEmpty(t, history)

	assert.Empty(t, repo.GetActivitiesBySubHub("no-such-hub"))
}

func TestEventDatesAreUpcoming(t *testing.T) {
	repo := NewRepository()

	for _, e := range repo.GetEvents() {
		require.NotEmpty(t, e.Date, "event %q has no date", e.ID)
		parsed, err := time.Parse(time.RFC3339, e.Date)
		require.NoError(t, err, "event %q has malformed date", e.ID)
		assert.True(t, parsed.After(time.Now()), "event %q is in the past", e.ID)
	}
}

func TestGettersReturnCopies(t *testing.T) {
	repo := NewRepository()

	first := repo.GetDining()
	first[0].Title = "mutated"

	again := repo.GetDining()
	assert.Equal(t, "Mt Vernon Winery", again[0].Title)
}
