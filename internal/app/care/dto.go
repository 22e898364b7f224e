package care

import "plantverse/internal/domain/garden"

type Request struct {
	PlantID        string
	Action         garden.ActionType
	IdempotencyKey string
}

type Response struct {
	UpdatedState garden.PlantState          `json:"updated_state"`
	Records      []garden.InteractionRecord `json:"records"`
	Unlocked     []garden.BadgeID           `json:"unlocked_badges,omitempty"`
}
