package garden

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPlant(health, xp, soil int) PlantState {
	e := NewEngine(DefaultTuning())
	return PlantState{
		OwnerID:     "owner-1",
		PlantID:     "plant-1",
		Name:        "Fern",
		Health:      health,
		XP:          xp,
		Level:       e.LevelFor(xp),
		SoilQuality: soil,
		Mood:        e.MoodFor(health),
		Care:        CareStats{MaxHealth: health},
		Version:     1,
		LastUpdated: testNow,
	}
}

func TestApply_WaterScenario(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 0, 50)

	out, err := e.Apply(state, ActionWater, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Health != 60 || next.XP != 2 || next.SoilQuality != 50 {
		t.Fatalf("unexpected state after water: health=%d xp=%d soil=%d", next.Health, next.XP, next.SoilQuality)
	}
	if next.Mood != MoodNeutral {
		t.Fatalf("expected neutral mood, got %s", next.Mood)
	}
	if len(out.Records) != 1 || out.Records[0].Action != string(ActionWater) || out.Records[0].EffectValue != 10 {
		t.Fatalf("unexpected records: %+v", out.Records)
	}
}

func TestApply_FertilizeScalesWithSoil(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(20, 0, 80)

	out, err := e.Apply(state, ActionFertilize, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Health != 28 {
		t.Fatalf("expected health 28, got %d", next.Health)
	}
	if next.XP != 16 {
		t.Fatalf("expected xp 16, got %d", next.XP)
	}
	if next.SoilQuality != 75 {
		t.Fatalf("expected soil 75, got %d", next.SoilQuality)
	}
}

func TestApply_FertilizeOnDeadSoilIsValidNoop(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(40, 10, 0)

	out, err := e.Apply(state, ActionFertilize, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Health != 40 || next.XP != 10 {
		t.Fatalf("expected zero effect, got health=%d xp=%d", next.Health, next.XP)
	}
	if next.SoilQuality != 0 {
		t.Fatalf("soil must clamp at 0, got %d", next.SoilQuality)
	}
	if len(out.Records) != 1 || out.Records[0].EffectValue != 0 {
		t.Fatalf("expected one zero-effect record, got %+v", out.Records)
	}
}

func TestApply_NeglectDecay(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(40, 0, 40)

	out, err := e.Apply(state, ActionNone, testNow.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Health != 35 {
		t.Fatalf("expected health 35 after 5h at -1/h, got %d", next.Health)
	}
	if next.SoilQuality != 41 {
		t.Fatalf("expected soil to drift one step toward 50, got %d", next.SoilQuality)
	}
	if len(out.Records) != 1 || out.Records[0].Action != RecordDecay || out.Records[0].EffectValue != -5 {
		t.Fatalf("unexpected decay record: %+v", out.Records)
	}
	if !next.LastUpdated.Equal(testNow.Add(5 * time.Hour)) {
		t.Fatalf("expected last_updated advanced to now")
	}
}

func TestApply_CheckSoilOnlyLogs(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 5, 63)

	out, err := e.Apply(state, ActionCheckSoil, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Health != 50 || next.XP != 5 || next.SoilQuality != 63 {
		t.Fatalf("check_soil must not change stats: %+v", next)
	}
	if len(out.Records) != 1 || out.Records[0].EffectValue != 0 {
		t.Fatalf("expected exactly one zero-effect record, got %+v", out.Records)
	}
}

func TestApply_UnknownActionLeavesStateUntouched(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 0, 50)
	before := state

	_, err := e.Apply(state, ActionType("dance"), testNow.Add(time.Hour))
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if !reflect.DeepEqual(state, before) {
		t.Fatalf("input state must be unchanged on error")
	}
}

func TestApply_ZeroElapsedTickIsIdempotent(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(80, 120, 60)

	out, err := e.Apply(state, ActionNone, state.LastUpdated)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if !reflect.DeepEqual(out.UpdatedState, state) {
		t.Fatalf("zero-elapsed tick must return the state unchanged")
	}
	if len(out.Records) != 0 {
		t.Fatalf("zero-elapsed tick must not log, got %+v", out.Records)
	}
}

func TestApply_ClockSkewClampsToZero(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 0, 50)

	out, err := e.Apply(state, ActionWater, testNow.Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if !out.ClockSkew {
		t.Fatalf("expected clock skew flag")
	}
	if out.UpdatedState.Health != 60 {
		t.Fatalf("skew must not decay nor heal, got health %d", out.UpdatedState.Health)
	}
	if !out.UpdatedState.LastUpdated.Equal(testNow) {
		t.Fatalf("skew must not move last_updated backwards")
	}
}

func TestApply_InvalidStateRefused(t *testing.T) {
	e := NewEngine(DefaultTuning())

	cases := []func(*PlantState){
		func(s *PlantState) { s.Health = 101 },
		func(s *PlantState) { s.Health = -5 },
		func(s *PlantState) { s.SoilQuality = 120 },
		func(s *PlantState) { s.XP = -1 },
		func(s *PlantState) { s.Level = 0 },
	}
	for i, corrupt := range cases {
		state := testPlant(50, 0, 50)
		corrupt(&state)
		if _, err := e.Apply(state, ActionWater, testNow); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("case %d: expected ErrInvalidState, got %v", i, err)
		}
	}
}

func TestApply_HealthZeroIsRevivable(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(0, 0, 50)

	out, err := e.Apply(state, ActionRain, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if out.UpdatedState.Health != 15 {
		t.Fatalf("expected revival to 15, got %d", out.UpdatedState.Health)
	}
}

func TestApply_LevelIsHighWaterMark(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 0, 50)
	state.Level = 3 // earned earlier, xp since reduced elsewhere

	out, err := e.Apply(state, ActionWater, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if out.UpdatedState.Level != 3 {
		t.Fatalf("level must never demote, got %d", out.UpdatedState.Level)
	}
}

func TestApply_SequenceKeepsInvariants(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(50, 0, 50)
	actions := []ActionType{
		ActionWater, ActionFeed, ActionNone, ActionFertilize, ActionRain,
		ActionCheckSoil, ActionNone, ActionFeed, ActionFertilize, ActionWater,
	}

	now := testNow
	prevLevel := state.Level
	prevBadges := len(state.Badges)
	for i, action := range actions {
		now = now.Add(time.Duration(3*i+1) * time.Hour)
		out, err := e.Apply(state, action, now)
		if err != nil {
			t.Fatalf("step %d: apply error: %v", i, err)
		}
		next := out.UpdatedState
		if next.Health < MinStat || next.Health > MaxStat {
			t.Fatalf("step %d: health out of bounds: %d", i, next.Health)
		}
		if next.SoilQuality < MinStat || next.SoilQuality > MaxStat {
			t.Fatalf("step %d: soil out of bounds: %d", i, next.SoilQuality)
		}
		if next.XP < 0 {
			t.Fatalf("step %d: negative xp: %d", i, next.XP)
		}
		if next.Level < prevLevel {
			t.Fatalf("step %d: level demoted %d -> %d", i, prevLevel, next.Level)
		}
		if len(next.Badges) < prevBadges {
			t.Fatalf("step %d: badge set shrank", i)
		}
		if got := e.MoodFor(next.Health); next.Mood != got {
			t.Fatalf("step %d: stale mood %s for health %d", i, next.Mood, next.Health)
		}
		prevLevel = next.Level
		prevBadges = len(next.Badges)
		state = next
	}
}

func TestApply_DecayAndActionRecordsReconcile(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(3, 0, 50)

	// 5h of decay clamps at 0; the record must carry -3, not -5.
	out, err := e.Apply(state, ActionWater, testNow.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if len(out.Records) != 2 {
		t.Fatalf("expected decay + action records, got %+v", out.Records)
	}
	if out.Records[0].EffectValue != -3 {
		t.Fatalf("decay record must carry the clamped delta, got %d", out.Records[0].EffectValue)
	}
	if out.Records[1].EffectValue != 10 {
		t.Fatalf("action record must carry the applied delta, got %d", out.Records[1].EffectValue)
	}
	sum := out.Records[0].EffectValue + out.Records[1].EffectValue
	if state.Health+sum != out.UpdatedState.Health {
		t.Fatalf("records do not reconcile with stored health change")
	}
}

func TestApply_CareCountersAndBadges(t *testing.T) {
	e := NewEngine(DefaultTuning())
	state := testPlant(90, 0, 50)

	out, err := e.Apply(state, ActionWater, testNow)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	next := out.UpdatedState
	if next.Care.TotalInteractions != 1 || next.Care.DistinctCareDays != 1 {
		t.Fatalf("unexpected care counters: %+v", next.Care)
	}
	if !next.HasBadge(BadgeFirstCare) {
		t.Fatalf("expected first_care badge after first interaction")
	}
	if next.Care.MaxHealth != 100 {
		t.Fatalf("expected max health high-water 100, got %d", next.Care.MaxHealth)
	}
	if !next.HasBadge(BadgeFullBloom) {
		t.Fatalf("expected full_bloom once max health reached 100")
	}

	// Same-day second interaction must not add a distinct care day.
	out2, err := e.Apply(next, ActionFeed, testNow.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if out2.UpdatedState.Care.DistinctCareDays != 1 {
		t.Fatalf("same-day care must not increment distinct days")
	}
	if out2.UpdatedState.Care.TotalInteractions != 2 {
		t.Fatalf("expected total 2, got %d", out2.UpdatedState.Care.TotalInteractions)
	}
}
