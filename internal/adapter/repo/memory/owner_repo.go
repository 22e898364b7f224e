package memory

import (
	"context"

	"plantverse/internal/app/ports"
)

type OwnerRepo struct {
	store *Store
}

func NewOwnerRepo(store *Store) OwnerRepo {
	return OwnerRepo{store: store}
}

func (r OwnerRepo) Create(_ context.Context, owner ports.OwnerRecord) error {
	if _, exists := r.store.owners[owner.Username]; exists {
		return ports.ErrConflict
	}
	r.store.owners[owner.Username] = owner
	return nil
}

func (r OwnerRepo) GetByUsername(_ context.Context, username string) (ports.OwnerRecord, error) {
	owner, ok := r.store.owners[username]
	if !ok {
		return ports.OwnerRecord{}, ports.ErrNotFound
	}
	return owner, nil
}
