package ports

import (
	"context"
	"time"

	"plantverse/internal/domain/garden"
)

type CareResult struct {
	UpdatedState garden.PlantState
	Records      []garden.InteractionRecord
	Unlocked     []garden.BadgeID
}

// CareExecutionRecord makes care requests idempotent: a retried request
// carrying the same key replays the stored result instead of applying the
// action twice.
type CareExecutionRecord struct {
	PlantID        string
	IdempotencyKey string
	Action         string
	Result         CareResult
	AppliedAt      time.Time
}

type PlantStateRepository interface {
	GetByPlantID(ctx context.Context, plantID string) (garden.PlantState, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]garden.PlantState, error)
	SaveWithVersion(ctx context.Context, state garden.PlantState, expectedVersion int64) error
}

type InteractionQuery struct {
	Limit int
	From  time.Time
	To    time.Time
}

type InteractionRepository interface {
	Append(ctx context.Context, records []garden.InteractionRecord) error
	ListByPlantID(ctx context.Context, plantID string, q InteractionQuery) ([]garden.InteractionRecord, error)
}

type CareExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, plantID, key string) (*CareExecutionRecord, error)
	SaveExecution(ctx context.Context, execution CareExecutionRecord) error
}

type OwnerRecord struct {
	OwnerID   string
	Username  string
	Email     string
	CreatedAt time.Time
}

type OwnerRepository interface {
	Create(ctx context.Context, owner OwnerRecord) error
	GetByUsername(ctx context.Context, username string) (OwnerRecord, error)
}
