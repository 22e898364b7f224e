package inmemory

import (
	"sync"

	"plantverse/internal/domain/garden"
)

type Snapshot struct {
	CareTotal    uint64            `json:"care_total"`
	CareSuccess  uint64            `json:"care_success"`
	CareConflict uint64            `json:"care_conflict"`
	CareFailure  uint64            `json:"care_failure"`
	ByAction     map[string]uint64 `json:"by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byAction map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(action garden.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byAction[string(action)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CareSuccess:  r.success,
		CareConflict: r.conflict,
		CareFailure:  r.failure,
		CareTotal:    r.success + r.conflict + r.failure,
		ByAction:     make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
