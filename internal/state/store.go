package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/hiremap/internal/hiring"
)

// Phase describes where the record cache is in its load lifecycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Snapshot represents the cached records available to the UI.
type Snapshot struct {
	Phase     Phase
	Records   []hiring.Record
	LoadedAt  time.Time
	LastError error
	Loads     int // completed load attempts, successful or not
}

// HasRecords reports whether the cache holds at least one record.
func (s Snapshot) HasRecords() bool {
	return len(s.Records) > 0
}

// Store holds the flattened records for the session. Records are written once
// per successful load and only read afterwards.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin reports whether the caller should start a load and, if so, marks the
// store as loading. It returns false while a load is in flight or when
// records are already cached.
func (s *Store) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase == PhaseLoading || len(s.snapshot.Records) > 0 {
		return false
	}
	s.snapshot.Phase = PhaseLoading
	return true
}

// Complete records the outcome of a load started with Begin. On error the
// cache stays empty and the error is kept for display.
func (s *Store) Complete(records []hiring.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loads++
	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Records = nil
		s.snapshot.LastError = err
		return
	}
	s.snapshot.Phase = PhaseLoaded
	s.snapshot.Records = cloneRecords(records)
	s.snapshot.LastError = nil
}

// Reload drops cached records so the next Begin starts a fresh load, then
// calls Begin. It returns false while a load is already in flight.
func (s *Store) Reload() bool {
	s.mu.Lock()
	if s.snapshot.Phase == PhaseLoading {
		s.mu.Unlock()
		return false
	}
	s.snapshot.Records = nil
	s.snapshot.LastError = nil
	s.snapshot.Phase = PhaseEmpty
	s.mu.Unlock()
	return s.Begin()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []hiring.Record) []hiring.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]hiring.Record, len(records))
	copy(dup, records)
	return dup
}
