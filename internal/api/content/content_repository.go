package content

import (
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

// Ensure implementation satisfies the interface
var _ Repository = (*RepositoryImpl)(nil)

// Repository exposes the curated content registry. Like the attraction
// catalog, the registry is built once at startup, so reads need no locking.
type Repository interface {
	GetActivities() []types.ContentActivity
	GetActivitiesBySubHub(subHub string) []types.ContentActivity
	GetAccommodations() []types.ContentAccommodation
	GetDining() []types.ContentDining
	GetEvents() []types.ContentEvent
	GetEditorials() []types.ContentEditorial
}

// RepositoryImpl serves the compiled registry tables.
type RepositoryImpl struct {
	activities     []types.ContentActivity
	accommodations []types.ContentAccommodation
	dining         []types.ContentDining
	events         []types.ContentEvent
	editorials     []types.ContentEditorial
}

func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{
		activities:     activities,
		accommodations: accommodations,
		dining:         dining,
		events:         events,
		editorials:     editorials,
	}
}

func (r *RepositoryImpl) GetActivities() []types.ContentActivity {
	out := make([]types.ContentActivity, len(r.activities))
	copy(out, r.activities)
	return out
}

func (r *RepositoryImpl) GetActivitiesBySubHub(subHub string) []types.ContentActivity {
	out := make([]types.ContentActivity, 0)
	for _, a := range r.activities {
		if a.SubHub == subHub {
			out = append(out, a)
		}
	}
	return out
}

func (r *RepositoryImpl) GetAccommodations() []types.ContentAccommodation {
	out := make([]types.ContentAccommodation, len(r.accommodations))
	copy(out, r.accommodations)
	return out
}

func (r *RepositoryImpl) GetDining() []types.ContentDining {
	out := make([]types.ContentDining, len(r.dining))
	copy(out, r.dining)
	return out
}

func (r *RepositoryImpl) GetEvents() []types.ContentEvent {
	out := make([]types.ContentEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *RepositoryImpl) GetEditorials() []types.ContentEditorial {
	out := make([]types.ContentEditorial, len(r.editorials))
	copy(out, r.editorials)
	return out
}
