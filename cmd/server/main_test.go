package main

import (
	"testing"

	"plantverse/internal/domain/garden"
)

func TestBuildTuning_Defaults(t *testing.T) {
	CLI.DecayPerHour = 1
	CLI.SoilBaseline = 50
	CLI.SoilDriftStep = 1

	cfg := buildTuning()
	if cfg.HealthDecayPerHour != garden.DefaultHealthDecayPerHour {
		t.Fatalf("decay: got %d", cfg.HealthDecayPerHour)
	}
	if cfg.SoilBaseline != garden.DefaultSoilBaseline {
		t.Fatalf("baseline: got %d", cfg.SoilBaseline)
	}
	if cfg.SoilDriftStep != garden.DefaultSoilDriftStep {
		t.Fatalf("drift step: got %d", cfg.SoilDriftStep)
	}
}

func TestBuildTuning_Overrides(t *testing.T) {
	CLI.DecayPerHour = 3
	CLI.SoilBaseline = 60
	CLI.SoilDriftStep = 2
	defer func() {
		CLI.DecayPerHour = 1
		CLI.SoilBaseline = 50
		CLI.SoilDriftStep = 1
	}()

	cfg := buildTuning()
	if cfg.HealthDecayPerHour != 3 || cfg.SoilBaseline != 60 || cfg.SoilDriftStep != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestBuildTuning_RejectsOutOfRangeBaseline(t *testing.T) {
	CLI.DecayPerHour = 1
	CLI.SoilBaseline = 150
	CLI.SoilDriftStep = 1
	defer func() { CLI.SoilBaseline = 50 }()

	cfg := buildTuning()
	if cfg.SoilBaseline != garden.DefaultSoilBaseline {
		t.Fatalf("out-of-range baseline must fall back to default, got %d", cfg.SoilBaseline)
	}
}
