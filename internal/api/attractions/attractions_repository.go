package attractions

import (
	"errors"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

// ErrAttractionNotFound is returned when a lookup misses the catalog.
var ErrAttractionNotFound = errors.New("attraction not found")

// Ensure implementation satisfies the interface
var _ Repository = (*RepositoryImpl)(nil)

// Repository defines read-only queries over the attraction catalog. All
// queries are linear scans over a table that is constructed once and never
// mutated, so they are safe under any amount of concurrency. An empty result
// slice is a valid answer, not an error.
type Repository interface {
	GetAll() []types.Attraction
	GetByID(id string) (*types.Attraction, error)
	GetByType(attractionType types.AttractionType) []types.Attraction
	GetByLocation(area types.LocationArea) []types.Attraction
	GetByDifficulty(difficulty types.Difficulty) []types.Attraction
	GetFeatured(limit int) []types.Attraction
	GetFamilyFriendly() []types.Attraction
	GetForPage(pagePath string) []types.Attraction
	GetOutdoor() []types.Attraction
	GetHistoryCulture() []types.Attraction
	GetFoodDrink() []types.Attraction
}

// RepositoryImpl serves queries from the compiled catalog table.
type RepositoryImpl struct {
	attractions []types.Attraction
}

func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{attractions: catalog}
}

func (r *RepositoryImpl) GetAll() []types.Attraction {
	out := make([]types.Attraction, len(r.attractions))
	copy(out, r.attractions)
	return out
}

func (r *RepositoryImpl) GetByID(id string) (*types.Attraction, error) {
	for i := range r.attractions {
		if r.attractions[i].ID == id {
			a := r.attractions[i]
			return &a, nil
		}
	}
	return nil, ErrAttractionNotFound
}

func (r *RepositoryImpl) GetByType(attractionType types.AttractionType) []types.Attraction {
	return r.filter(func(a types.Attraction) bool { return a.Type == attractionType })
}

func (r *RepositoryImpl) GetByLocation(area types.LocationArea) []types.Attraction {
	return r.filter(func(a types.Attraction) bool { return a.LocationArea == area })
}

func (r *RepositoryImpl) GetByDifficulty(difficulty types.Difficulty) []types.Attraction {
	return r.filter(func(a types.Attraction) bool { return a.Difficulty == difficulty })
}

// GetFeatured returns featured attractions, capped to limit when limit > 0.
func (r *RepositoryImpl) GetFeatured(limit int) []types.Attraction {
	featured := r.filter(func(a types.Attraction) bool { return a.Featured })
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

func (r *RepositoryImpl) GetFamilyFriendly() []types.Attraction {
	return r.filter(func(a types.Attraction) bool { return a.FamilyFriendly })
}

func (r *RepositoryImpl) GetForPage(pagePath string) []types.Attraction {
	return r.filter(func(a types.Attraction) bool {
		for _, p := range a.RelatedPages {
			if p == pagePath {
				return true
			}
		}
		return false
	})
}

func (r *RepositoryImpl) GetOutdoor() []types.Attraction {
	return r.byTypes(types.AttractionTrail, types.AttractionPark, types.AttractionViewpoint, types.AttractionWaterActivity)
}

func (r *RepositoryImpl) GetHistoryCulture() []types.Attraction {
	return r.byTypes(types.AttractionMuseum, types.AttractionHistoricSite, types.AttractionCultural)
}

func (r *RepositoryImpl) GetFoodDrink() []types.Attraction {
	return r.byTypes(types.AttractionRestaurant, types.AttractionBrewery, types.AttractionWinery, types.AttractionMarket)
}

func (r *RepositoryImpl) byTypes(attractionTypes ...types.AttractionType) []types.Attraction {
	return r.filter(func(a types.Attraction) bool {
		for _, t := range attractionTypes {
			if a.Type == t {
				return true
			}
		}
		return false
	})
}

func (r *RepositoryImpl) filter(keep func(types.Attraction) bool) []types.Attraction {
	out := make([]types.Attraction, 0)
	for _, a := range r.attractions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
