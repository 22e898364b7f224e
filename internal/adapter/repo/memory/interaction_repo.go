package memory

import (
	"context"
	"sort"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

type InteractionRepo struct {
	store *Store
}

func NewInteractionRepo(store *Store) InteractionRepo {
	return InteractionRepo{store: store}
}

func (r InteractionRepo) Append(_ context.Context, records []garden.InteractionRecord) error {
	for _, rec := range records {
		r.store.interactions[rec.PlantID] = append(r.store.interactions[rec.PlantID], rec)
	}
	return nil
}

func (r InteractionRepo) ListByPlantID(_ context.Context, plantID string, q ports.InteractionQuery) ([]garden.InteractionRecord, error) {
	var out []garden.InteractionRecord
	for _, rec := range r.store.interactions[plantID] {
		if !q.From.IsZero() && rec.CreatedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && rec.CreatedAt.After(q.To) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}
