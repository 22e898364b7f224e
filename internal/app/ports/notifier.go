package ports

import (
	"context"
	"time"
)

const (
	CareEventLevelUp       = "level_up"
	CareEventBadgeUnlocked = "badge_unlocked"
	CareEventPlantRevived  = "plant_revived"
)

type CareEvent struct {
	Type       string         `json:"type"`
	PlantID    string         `json:"plant_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// CareNotifier fans care events out to whoever is watching the garden.
// Delivery is best effort; the transition itself never depends on it.
type CareNotifier interface {
	Notify(ctx context.Context, event CareEvent) error
}
