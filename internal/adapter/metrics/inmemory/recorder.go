package inmemory

import (
	"sync"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
)

var _ ports.ActionMetrics = (*Recorder)(nil)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ConflictRate   float64           `json:"conflict_rate"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
}

// Recorder counts action use case results for the ops endpoint.
type Recorder struct {
	mu        sync.Mutex
	success   uint64
	conflict  uint64
	failure   uint64
	byOutcome map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{byOutcome: map[string]uint64{}}
}

func (r *Recorder) RecordSuccess(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byOutcome[outcome]++
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
		ActionSuccess:  r.success,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.conflict + r.failure,
		ByOutcome:      make(map[string]uint64, len(r.byOutcome)),
	}
	if out.ActionTotal > 0 {
		out.ConflictRate = float64(r.conflict) / float64(out.ActionTotal)
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
