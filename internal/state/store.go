package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/missionboard/internal/missions"
)

// ErrFetchPending is returned by Begin while another fetch is in flight.
var ErrFetchPending = errors.New("fetch already pending")

// Phase is the lifecycle of the most recent fetch.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// FetchError wraps the cause of a failed fetch.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed: %v", e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Snapshot represents the latest fetch outcome available to the UI.
type Snapshot struct {
	Phase       Phase
	Generation  uint64
	Result      missions.Result
	HasResult   bool
	LastError   error
	StartedAt   time.Time
	LastUpdated time.Time
}

// Err returns a *FetchError when the last fetch failed.
func (s Snapshot) Err() error {
	if s.Phase != PhaseFailed || s.LastError == nil {
		return nil
	}
	return &FetchError{Cause: s.LastError}
}

// Store coordinates the fetch goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

// Begin marks a fetch as pending and returns its generation. Only one fetch
// may be pending at a time.
func (s *Store) Begin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase == PhasePending {
		return 0, ErrFetchPending
	}
	s.snapshot.Generation++
	s.snapshot.Phase = PhasePending
	s.snapshot.StartedAt = s.clock()
	return s.snapshot.Generation, nil
}

// Complete records a successful fetch. Outcomes for stale generations are
// dropped and reported as false.
func (s *Store) Complete(gen uint64, result missions.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(gen) {
		return false
	}
	s.snapshot.Result = cloneResult(result)
	s.snapshot.HasResult = true
	s.snapshot.LastError = nil
	s.snapshot.Phase = PhaseSucceeded
	s.snapshot.LastUpdated = s.clock()
	return true
}

// Fail records a failed fetch. The previous result is kept.
func (s *Store) Fail(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current(gen) {
		return false
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	s.snapshot.LastError = err
	s.snapshot.Phase = PhaseFailed
	s.snapshot.LastUpdated = s.clock()
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Result = cloneResult(s.snapshot.Result)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func (s *Store) current(gen uint64) bool {
	return s.snapshot.Phase == PhasePending && gen == s.snapshot.Generation
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func cloneResult(r missions.Result) missions.Result {
	r.Data = missions.CloneAll(r.Data)
	return r
}
