package plants

import (
	"context"
	"errors"
	"testing"
	"time"

	"plantverse/internal/app/ports"
	"plantverse/internal/app/tick"
	"plantverse/internal/domain/garden"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubStateRepo struct {
	byPlant map[string]garden.PlantState
}

func (r *stubStateRepo) GetByPlantID(_ context.Context, plantID string) (garden.PlantState, error) {
	state, ok := r.byPlant[plantID]
	if !ok {
		return garden.PlantState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *stubStateRepo) ListByOwnerID(_ context.Context, ownerID string) ([]garden.PlantState, error) {
	var out []garden.PlantState
	for _, s := range r.byPlant {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state garden.PlantState, expectedVersion int64) error {
	current, ok := r.byPlant[state.PlantID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byPlant[state.PlantID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byPlant[state.PlantID] = state
	return nil
}

type stubLogRepo struct {
	records []garden.InteractionRecord
}

func (r *stubLogRepo) Append(_ context.Context, records []garden.InteractionRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *stubLogRepo) ListByPlantID(_ context.Context, _ string, _ ports.InteractionQuery) ([]garden.InteractionRecord, error) {
	return r.records, nil
}

func newUseCase(stateRepo *stubStateRepo, now time.Time) UseCase {
	engine := garden.NewEngine(garden.DefaultTuning())
	nowFn := func() time.Time { return now }
	return UseCase{
		TxManager: stubTxManager{},
		StateRepo: stateRepo,
		Tick: tick.UseCase{
			TxManager: stubTxManager{},
			StateRepo: stateRepo,
			LogRepo:   &stubLogRepo{},
			Engine:    engine,
			Now:       nowFn,
		},
		Engine: engine,
		Now:    nowFn,
	}
}

func TestCreate_Defaults(t *testing.T) {
	stateRepo := &stubStateRepo{byPlant: map[string]garden.PlantState{}}
	uc := newUseCase(stateRepo, testNow)

	out, err := uc.Create(context.Background(), CreateRequest{OwnerID: "owner-1", Name: "Monstera"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	plant := out.Plant
	if plant.PlantID == "" {
		t.Fatalf("expected generated plant id")
	}
	if plant.Health != 100 || plant.SoilQuality != 50 || plant.XP != 0 || plant.Level != 1 {
		t.Fatalf("unexpected initial state: %+v", plant)
	}
	if plant.Mood != garden.MoodHappy {
		t.Fatalf("expected happy mood, got %s", plant.Mood)
	}
	if _, ok := stateRepo.byPlant[plant.PlantID]; !ok {
		t.Fatalf("plant not persisted")
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newUseCase(&stubStateRepo{byPlant: map[string]garden.PlantState{}}, testNow)

	if _, err := uc.Create(context.Background(), CreateRequest{OwnerID: "", Name: "x"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Create(context.Background(), CreateRequest{OwnerID: "o", Name: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank name, got %v", err)
	}
}

func TestGet_SettlesDecayFirst(t *testing.T) {
	engine := garden.NewEngine(garden.DefaultTuning())
	state := engine.NewPlantState("owner-1", "plant-1", "Fern", testNow)
	state.Health = 40
	state.Mood = engine.MoodFor(40)
	stateRepo := &stubStateRepo{byPlant: map[string]garden.PlantState{"plant-1": state}}
	uc := newUseCase(stateRepo, testNow.Add(5*time.Hour))

	out, err := uc.Get(context.Background(), GetRequest{PlantID: "plant-1"})
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if out.Plant.Health != 35 {
		t.Fatalf("expected decayed health 35, got %d", out.Plant.Health)
	}
	if stateRepo.byPlant["plant-1"].Health != 35 {
		t.Fatalf("settled state must be persisted")
	}
}

func TestList_SettlesEachPlant(t *testing.T) {
	engine := garden.NewEngine(garden.DefaultTuning())
	a := engine.NewPlantState("owner-1", "plant-a", "Fern", testNow)
	a.Health = 40
	b := engine.NewPlantState("owner-1", "plant-b", "Cactus", testNow)
	b.Health = 90
	other := engine.NewPlantState("owner-2", "plant-c", "Ivy", testNow)
	stateRepo := &stubStateRepo{byPlant: map[string]garden.PlantState{
		"plant-a": a, "plant-b": b, "plant-c": other,
	}}
	uc := newUseCase(stateRepo, testNow.Add(2*time.Hour))

	out, err := uc.List(context.Background(), ListRequest{OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out.Plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(out.Plants))
	}
	for _, plant := range out.Plants {
		if plant.OwnerID != "owner-1" {
			t.Fatalf("foreign plant leaked into listing: %+v", plant)
		}
		if plant.LastUpdated.Before(testNow.Add(2 * time.Hour)) {
			t.Fatalf("plant %s not settled", plant.PlantID)
		}
	}
}
