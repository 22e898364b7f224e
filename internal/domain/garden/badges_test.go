package garden

import "testing"

func TestEvaluateBadges_Defaults(t *testing.T) {
	e := NewEngine(DefaultTuning())

	state := testPlant(50, 0, 50)
	state.Care = CareStats{TotalInteractions: 50, MaxHealth: 100, DistinctCareDays: 7}
	state.Level = 5

	unlocked := e.evaluateBadges(state)
	want := map[BadgeID]bool{
		BadgeFirstCare:  true,
		BadgeSeedling:   true,
		BadgeGardener:   true,
		BadgeGreenThumb: true,
		BadgeFullBloom:  true,
		BadgeWeekOfCare: true,
	}
	if len(unlocked) != len(want) {
		t.Fatalf("expected %d badges, got %v", len(want), unlocked)
	}
	for _, id := range unlocked {
		if !want[id] {
			t.Fatalf("unexpected badge %s", id)
		}
	}
}

func TestEvaluateBadges_AlreadyUnlockedSkipped(t *testing.T) {
	e := NewEngine(DefaultTuning())

	state := testPlant(50, 0, 50)
	state.Care = CareStats{TotalInteractions: 3, MaxHealth: 50, DistinctCareDays: 1}
	state.Badges = []BadgeID{BadgeFirstCare}

	if unlocked := e.evaluateBadges(state); len(unlocked) != 0 {
		t.Fatalf("unlocked badges must not re-fire, got %v", unlocked)
	}
}

func TestEvaluateBadges_NothingEarnedYet(t *testing.T) {
	e := NewEngine(DefaultTuning())

	state := testPlant(50, 0, 50)
	state.Care = CareStats{MaxHealth: 50}

	if unlocked := e.evaluateBadges(state); len(unlocked) != 0 {
		t.Fatalf("fresh plant must earn nothing, got %v", unlocked)
	}
}

func TestLabelFor(t *testing.T) {
	e := NewEngine(DefaultTuning())

	if got := e.LabelFor(BadgeGreenThumb); got != "Green Thumb" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := e.LabelFor(BadgeID("mystery")); got != "mystery" {
		t.Fatalf("unknown badge should fall back to its id, got %q", got)
	}
}
