package attractions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func TestCatalogIntegrity(t *testing.T) {
	repo := NewRepository()
	all := repo.GetAll()

	require.Len(t, all, 23)

	seen := make(map[string]bool)
	for _, a := range all {
		assert.False(t, seen[a.ID], "duplicate id %q", a.ID)
		seen[a.ID] = true

		assert.NotEmpty(t, a.Name, "%s has no name", a.ID)
		assert.NotEmpty(t, a.Type, "%s has no type", a.ID)
		assert.NotEmpty(t, a.ShortDescription, "%s has no short description", a.ID)
		assert.NotEmpty(t, a.RelatedPages, "%s has no related pages", a.ID)
		assert.NotEmpty(t, a.ImageID, "%s has no image", a.ID)

		_, knownType := types.AttractionTypeLabels[a.Type]
		assert.True(t, knownType, "%s has unknown type %q", a.ID, a.Type)
		_, knownArea := types.LocationAreaLabels[a.LocationArea]
		assert.True(t, knownArea, "%s has unknown area %q", a.ID, a.LocationArea)
	}
}

func TestGetByID(t *testing.T) {
	repo := NewRepository()

	a, err := repo.GetByID("lake-clementine-trail")
	require.NoError(t, err)
	assert.Equal(t, "Lake Clementine Trail", a.Name)

	_, err = repo.GetByID("nonexistent")
	assert.ErrorIs(t, err, ErrAttractionNotFound)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewRepository()

	a, err := repo.GetByID("lake-clementine-trail")
	require.NoError(t, err)
	a.Name = "mutated"

	again, err := repo.GetByID("lake-clementine-trail")
	require.NoError(t, err)
	assert.Equal(t, "Lake Clementine Trail", again.Name)
}

func TestFilterQueries(t *testing.T) {
	repo := NewRepository()

	for _, a := range repo.GetByType(types.AttractionTrail) {
		assert.Equal(t, types.AttractionTrail, a.Type)
	}
	assert.NotEmpty(t, repo.GetByType(types.AttractionTrail))

	for _, a := range repo.GetByLocation(types.AreaOldTown) {
		assert.Equal(t, types.AreaOldTown, a.LocationArea)
	}
	assert.NotEmpty(t, repo.GetByLocation(types.AreaOldTown))

	for _, a := range repo.GetByDifficulty(types.DifficultyEasy) {
		assert.Equal(t, types.DifficultyEasy, a.Difficulty)
	}

	for _, a := range repo.GetFamilyFriendly() {
		assert.True(t, a.FamilyFriendly)
	}

	assert.Empty(t, repo.GetByType(types.AttractionType("volcano")), "unknown type yields empty slice, not nil panic")
}

func TestGetFeaturedRespectsLimit(t *testing.T) {
	repo := NewRepository()

	all := repo.GetFeatured(0)
	for _, a := range all {
		assert.True(t, a.Featured)
	}
	require.NotEmpty(t, all)

	capped := repo.GetFeatured(2)
	assert.Len(t, capped, 2)
	assert.Equal(t, all[:2], capped)
}

func TestGetForPage(t *testing.T) {
	repo := NewRepository()

	matches := repo.GetForPage("/things-to-do/outdoor-adventures")
	require.NotEmpty(t, matches)
	for _, a := range matches {
		assert.Contains(t, a.RelatedPages, "/things-to-do/outdoor-adventures")
	}

	assert.Empty(t, repo.GetForPage("/no-such-page"))
}

func TestGroupQueries(t *testing.T) {
	repo := NewRepository()

	outdoorTypes := map[types.AttractionType]bool{
		types.AttractionTrail: true, types.AttractionPark: true,
		types.AttractionViewpoint: true, types.AttractionWaterActivity: true,
	}
	outdoor := repo.GetOutdoor()
	require.NotEmpty(t, outdoor)
	for _, a := range outdoor {
		assert.True(t, outdoorTypes[a.Type], "%s is not an outdoor type", a.ID)
	}

	historyTypes := map[types.AttractionType]bool{
		types.AttractionMuseum: true, types.AttractionHistoricSite: true, types.AttractionCultural: true,
	}
	history := repo.GetHistoryCulture()
	require.NotEmpty(t, history)
	for _, a := range history {
		assert.True(t, historyTypes[a.Type], "%s is not a history type", a.ID)
	}

	foodTypes := map[types.AttractionType]bool{
		types.AttractionRestaurant: true, types.AttractionBrewery: true,
		types.AttractionWinery: true, types.AttractionMarket: true,
	}
	food := repo.GetFoodDrink()
	require.NotEmpty(t, food)
	for _, a := range food {
		assert.True(t, foodTypes[a.Type], "%s is not a food type", a.ID)
	}
}
