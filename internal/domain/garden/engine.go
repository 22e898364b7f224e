package garden

import (
	"errors"
	"time"
)

var (
	ErrInvalidAction = errors.New("unrecognized action type")
	ErrInvalidState  = errors.New("plant state violates invariants")
)

// Engine computes pure, deterministic plant-state transitions. It holds no
// mutable state; all context (current state, action, reference time) is
// passed into Apply and the collaborators around it own persistence.
type Engine struct {
	cfg Tuning
}

func NewEngine(cfg Tuning) Engine {
	defaults := DefaultTuning()
	if cfg.Effects == nil {
		cfg.Effects = defaults.Effects
	}
	if len(cfg.LevelTable) == 0 {
		cfg.LevelTable = defaults.LevelTable
	}
	if len(cfg.Badges) == 0 {
		cfg.Badges = defaults.Badges
	}
	return Engine{cfg: cfg}
}

// NewPlantState returns the initial aggregate for a freshly planted plant.
func (e Engine) NewPlantState(ownerID, plantID, name string, now time.Time) PlantState {
	return PlantState{
		OwnerID:     ownerID,
		PlantID:     plantID,
		Name:        name,
		Health:      InitialHealth,
		XP:          0,
		Level:       1,
		SoilQuality: InitialSoilQuality,
		Mood:        e.MoodFor(InitialHealth),
		Care:        CareStats{MaxHealth: InitialHealth},
		Version:     1,
		LastUpdated: now,
	}
}

// Apply settles pending decay and, if an action is given, its effects, and
// returns the next state plus the log records that reconcile with it.
// Apply is all-or-nothing: on any error the input state is returned
// untouched and no records are emitted. A tick with now at or before
// LastUpdated is a valid no-op, so repeated ticks never double-decay.
func (e Engine) Apply(state PlantState, action ActionType, now time.Time) (TransitionResult, error) {
	if err := validateState(state); err != nil {
		return TransitionResult{}, err
	}
	if action != ActionNone && !IsValidAction(action) {
		return TransitionResult{}, ErrInvalidAction
	}

	decay := e.evaluateDecay(state.SoilQuality, state.LastUpdated, now)

	var effect EffectDelta
	if action != ActionNone {
		var err error
		effect, err = e.resolveAction(action, state.SoilQuality)
		if err != nil {
			return TransitionResult{}, err
		}
	}

	if action == ActionNone && decay.IsZero() {
		return TransitionResult{UpdatedState: state, ClockSkew: decay.ClockSkew}, nil
	}

	next := state
	next.Badges = append([]BadgeID(nil), state.Badges...)

	// Health is settled decay-first so each record carries the clamped
	// delta actually applied, not the raw one.
	healthAfterDecay := clampStat(state.Health + decay.Health)
	next.Health = clampStat(healthAfterDecay + effect.Health)
	next.SoilQuality = clampStat(state.SoilQuality + decay.Soil + effect.Soil)
	next.XP = state.XP + effect.XP
	if next.XP < 0 {
		next.XP = 0
	}

	// Level is a high-water mark over xp, never demoted.
	if lvl := e.LevelFor(next.XP); lvl > next.Level {
		next.Level = lvl
	}
	next.Mood = e.MoodFor(next.Health)

	if action != ActionNone {
		next.Care.TotalInteractions++
		if day := now.UTC().Format("2006-01-02"); day != next.Care.LastCareDay {
			next.Care.LastCareDay = day
			next.Care.DistinctCareDays++
		}
	}
	if next.Health > next.Care.MaxHealth {
		next.Care.MaxHealth = next.Health
	}

	unlocked := e.evaluateBadges(next)
	next.Badges = append(next.Badges, unlocked...)

	// A skewed reference time never moves LastUpdated backwards.
	if now.After(state.LastUpdated) {
		next.LastUpdated = now
	}
	next.Version++

	records := make([]InteractionRecord, 0, 2)
	if !decay.IsZero() {
		records = append(records, InteractionRecord{
			PlantID:     state.PlantID,
			Action:      RecordDecay,
			EffectValue: healthAfterDecay - state.Health,
			CreatedAt:   now,
		})
	}
	if action != ActionNone {
		records = append(records, InteractionRecord{
			PlantID:     state.PlantID,
			Action:      string(action),
			EffectValue: next.Health - healthAfterDecay,
			CreatedAt:   now,
		})
	}

	return TransitionResult{
		UpdatedState: next,
		Records:      records,
		Unlocked:     unlocked,
		ClockSkew:    decay.ClockSkew,
	}, nil
}

// validateState refuses to operate on pre-corrupted input rather than
// silently repairing it.
func validateState(state PlantState) error {
	if state.Health < MinStat || state.Health > MaxStat {
		return ErrInvalidState
	}
	if state.SoilQuality < MinStat || state.SoilQuality > MaxStat {
		return ErrInvalidState
	}
	if state.XP < 0 || state.Level < 1 {
		return ErrInvalidState
	}
	return nil
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
