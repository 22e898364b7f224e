package memory

import (
	"context"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

type PlantStateRepo struct {
	store *Store
}

func NewPlantStateRepo(store *Store) PlantStateRepo {
	return PlantStateRepo{store: store}
}

func (r PlantStateRepo) GetByPlantID(_ context.Context, plantID string) (garden.PlantState, error) {
	state, ok := r.store.plants[plantID]
	if !ok {
		return garden.PlantState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r PlantStateRepo) ListByOwnerID(_ context.Context, ownerID string) ([]garden.PlantState, error) {
	var out []garden.PlantState
	for _, state := range r.store.plants {
		if state.OwnerID == ownerID {
			out = append(out, state)
		}
	}
	return out, nil
}

func (r PlantStateRepo) SaveWithVersion(_ context.Context, state garden.PlantState, expectedVersion int64) error {
	current, exists := r.store.plants[state.PlantID]
	if expectedVersion == 0 {
		if exists {
			return ports.ErrConflict
		}
		r.store.plants[state.PlantID] = state
		return nil
	}
	if !exists || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.plants[state.PlantID] = state
	return nil
}
