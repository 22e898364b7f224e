package memory

import (
	"sync"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

type Store struct {
	mu           sync.RWMutex
	plants       map[string]garden.PlantState
	interactions map[string][]garden.InteractionRecord
	executions   map[string]ports.CareExecutionRecord
	owners       map[string]ports.OwnerRecord
}

func NewStore() *Store {
	return &Store{
		plants:       make(map[string]garden.PlantState),
		interactions: make(map[string][]garden.InteractionRecord),
		executions:   make(map[string]ports.CareExecutionRecord),
		owners:       make(map[string]ports.OwnerRecord),
	}
}

func execKey(plantID, key string) string {
	return plantID + "::" + key
}

func (s *Store) SeedState(state garden.PlantState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plants[state.PlantID] = state
}
