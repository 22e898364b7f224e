package memory

import (
	"context"

	"plantverse/internal/app/ports"
)

type CareExecutionRepo struct {
	store *Store
}

func NewCareExecutionRepo(store *Store) CareExecutionRepo {
	return CareExecutionRepo{store: store}
}

func (r CareExecutionRepo) GetByIdempotencyKey(_ context.Context, plantID, key string) (*ports.CareExecutionRecord, error) {
	rec, ok := r.store.executions[execKey(plantID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r CareExecutionRepo) SaveExecution(_ context.Context, execution ports.CareExecutionRecord) error {
	k := execKey(execution.PlantID, execution.IdempotencyKey)
	if _, exists := r.store.executions[k]; exists {
		return ports.ErrConflict
	}
	r.store.executions[k] = execution
	return nil
}
