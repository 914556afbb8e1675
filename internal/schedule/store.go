// Package schedule keeps an in-memory list of saved beam designs. Each
// entry is a timestamped snapshot of the engine's inputs and results; the
// calculation engine itself has no awareness of this bookkeeping.
package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
)

// Entry is one saved design snapshot.
type Entry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`

	Inputs   beam.DesignInputs  `json:"inputs"`
	Loads    beam.LoadResult    `json:"loads"`
	Analysis beam.AnalysisResult `json:"analysis"`
	Design   beam.DesignResult  `json:"design"`
}

// Store holds saved designs for the lifetime of the process.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Save records a snapshot under a generated identifier and returns the
// stored entry. Slices inside the snapshot are copied so later mutation
// of the caller's values cannot alter the record.
func (s *Store) Save(name string, in beam.DesignInputs, loads beam.LoadResult, analysis beam.AnalysisResult, design beam.DesignResult) Entry {
	in.PointLoads = clone(in.PointLoads)
	loads.FactoredPointLoads = clone(loads.FactoredPointLoads)
	analysis.MomentCurve = clone(analysis.MomentCurve)
	analysis.ShearCurve = clone(analysis.ShearCurve)

	e := Entry{
		ID:       uuid.NewString(),
		Name:     name,
		SavedAt:  time.Now().UTC(),
		Inputs:   in,
		Loads:    loads,
		Analysis: analysis,
		Design:   design,
	}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	return e
}

// List returns the saved entries in insertion order.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.entries...)
}

// Get looks up an entry by id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Delete removes an entry by id, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append([]T(nil), in...)
}
