package garden

type BadgeID string

const (
	BadgeFirstCare  BadgeID = "first_care"
	BadgeSeedling   BadgeID = "seedling"
	BadgeGardener   BadgeID = "gardener"
	BadgeGreenThumb BadgeID = "green_thumb"
	BadgeFullBloom  BadgeID = "full_bloom"
	BadgeWeekOfCare BadgeID = "week_of_care"
)

// BadgeStats is the view of cumulative plant stats a predicate sees.
type BadgeStats struct {
	Level             int
	TotalInteractions int
	MaxHealth         int
	DistinctCareDays  int
	Has               func(BadgeID) bool
}

// BadgeDef is a static achievement definition. Predicates are pure; an
// unlocked badge is never re-evaluated or removed.
type BadgeDef struct {
	ID       BadgeID
	Label    string
	Unlocked func(BadgeStats) bool
}

func DefaultBadges() []BadgeDef {
	return []BadgeDef{
		{ID: BadgeFirstCare, Label: "First Care", Unlocked: func(s BadgeStats) bool {
			return s.TotalInteractions >= 1
		}},
		{ID: BadgeSeedling, Label: "Seedling", Unlocked: func(s BadgeStats) bool {
			return s.Level >= 2
		}},
		{ID: BadgeGardener, Label: "Gardener", Unlocked: func(s BadgeStats) bool {
			return s.Level >= 5
		}},
		{ID: BadgeGreenThumb, Label: "Green Thumb", Unlocked: func(s BadgeStats) bool {
			return s.TotalInteractions >= 50
		}},
		{ID: BadgeFullBloom, Label: "Full Bloom", Unlocked: func(s BadgeStats) bool {
			return s.MaxHealth >= MaxStat
		}},
		{ID: BadgeWeekOfCare, Label: "Week of Care", Unlocked: func(s BadgeStats) bool {
			return s.DistinctCareDays >= 7
		}},
	}
}

// evaluateBadges returns the badges newly unlocked by the given state.
func (e Engine) evaluateBadges(state PlantState) []BadgeID {
	stats := BadgeStats{
		Level:             state.Level,
		TotalInteractions: state.Care.TotalInteractions,
		MaxHealth:         state.Care.MaxHealth,
		DistinctCareDays:  state.Care.DistinctCareDays,
		Has:               state.HasBadge,
	}

	var unlocked []BadgeID
	for _, def := range e.cfg.Badges {
		if state.HasBadge(def.ID) {
			continue
		}
		if def.Unlocked(stats) {
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

// LabelFor returns the human label of a configured badge.
func (e Engine) LabelFor(id BadgeID) string {
	for _, def := range e.cfg.Badges {
		if def.ID == id {
			return def.Label
		}
	}
	return string(id)
}
