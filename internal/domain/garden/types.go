package garden

import "time"

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

type ActionType string

const (
	ActionWater     ActionType = "water"
	ActionFeed      ActionType = "feed"
	ActionFertilize ActionType = "fertilize"
	ActionCheckSoil ActionType = "check_soil"
	ActionRain      ActionType = "rain"

	// ActionNone requests a decay-only tick.
	ActionNone ActionType = ""
)

// RecordDecay is the reserved action name used on interaction records
// produced by passive decay. It is not a member of the ActionType set.
const RecordDecay = "decay"

func IsValidAction(t ActionType) bool {
	switch t {
	case ActionWater, ActionFeed, ActionFertilize, ActionCheckSoil, ActionRain:
		return true
	default:
		return false
	}
}

// CareStats are the cumulative counters badge predicates run against.
// They live on the aggregate so the engine never has to query history.
type CareStats struct {
	TotalInteractions int    `json:"total_interactions"`
	MaxHealth         int    `json:"max_health"`
	DistinctCareDays  int    `json:"distinct_care_days"`
	LastCareDay       string `json:"last_care_day,omitempty"`
}

type PlantState struct {
	OwnerID     string    `json:"owner_id"`
	PlantID     string    `json:"plant_id"`
	Name        string    `json:"name"`
	Health      int       `json:"health"`
	XP          int       `json:"xp"`
	Level       int       `json:"level"`
	SoilQuality int       `json:"soil_quality"`
	Mood        Mood      `json:"mood"`
	Badges      []BadgeID `json:"badges"`
	Care        CareStats `json:"care"`
	Version     int64     `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
}

func (s PlantState) HasBadge(id BadgeID) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// InteractionRecord is the immutable log entry for one applied effect.
// EffectValue is the health delta actually applied after clamping, so a
// record always reconciles exactly with the stored state change.
type InteractionRecord struct {
	PlantID     string    `json:"plant_id"`
	Action      string    `json:"action_type"`
	EffectValue int       `json:"effect_value"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransitionResult struct {
	UpdatedState PlantState          `json:"updated_state"`
	Records      []InteractionRecord `json:"records"`
	Unlocked     []BadgeID           `json:"unlocked,omitempty"`
	ClockSkew    bool                `json:"clock_skew,omitempty"`
}
