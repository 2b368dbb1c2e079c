package database

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/models"
	"github.com/Micah-Glenz/hierarchical-data-explorer/storage"
)

// record constrains a store's element type to structs embedding
// models.RecordMeta, reached through their pointer type.
type record[T any] interface {
	*T
	Meta() *models.RecordMeta
}

// Store holds one collection in memory and writes the whole collection back
// through its backend after every mutation. Reads are served from memory
// under a read lock, so a write's validation work never blocks them.
type Store[T any, P record[T]] struct {
	name    string
	backend storage.Backend
	now     func() time.Time

	mu      sync.RWMutex
	records []T
}

// NewStore loads the collection named name from the backend. A missing
// document yields an empty collection. The clock is injectable for tests;
// pass nil for time.Now.
func NewStore[T any, P record[T]](name string, backend storage.Backend, now func() time.Time) (*Store[T, P], error) {
	if now == nil {
		now = time.Now
	}
	s := &Store[T, P]{name: name, backend: backend, now: now}
	data, err := backend.Load(name)
	if errors.Is(err, storage.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("load", name, err)
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, errs.NewStorageError("decode", name, err)
	}
	return s, nil
}

func (s *Store[T, P]) Name() string { return s.name }

// persist marshals the full collection and saves it. Callers must hold the
// write lock.
func (s *Store[T, P]) persist() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return errs.NewStorageError("encode", s.name, err)
	}
	if err := s.backend.Save(s.name, data); err != nil {
		return errs.NewStorageError("save", s.name, err)
	}
	return nil
}

// NextID returns one past the highest ID ever assigned, counting soft-deleted
// records, so IDs are never reused.
func (s *Store[T, P]) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for i := range s.records {
		if id := P(&s.records[i]).Meta().ID; id > max {
			max = id
		}
	}
	return max + 1
}

// Append assigns the next ID and creation timestamps to rec, adds it to the
// collection, and persists. The stored record is returned.
func (s *Store[T, P]) Append(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta := P(&rec).Meta()
	max := 0
	for i := range s.records {
		if id := P(&s.records[i]).Meta().ID; id > max {
			max = id
		}
	}
	meta.ID = max + 1
	meta.CreatedAt = s.now()
	meta.UpdatedAt = meta.CreatedAt
	meta.IsDeleted = false
	meta.DeletedAt = nil

	s.records = append(s.records, rec)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		var zero T
		return zero, err
	}
	return rec, nil
}

// FindByID returns the record with the given ID. Soft-deleted records are
// only visible when includeDeleted is set.
func (s *Store[T, P]) FindByID(id int, includeDeleted bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		meta := P(&s.records[i]).Meta()
		if meta.ID != id {
			continue
		}
		if meta.IsDeleted && !includeDeleted {
			break
		}
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// FindAll returns a copy of the collection, excluding soft-deleted records
// unless includeDeleted is set.
func (s *Store[T, P]) FindAll(includeDeleted bool) []T {
	return s.FilterBy(func(T) bool { return true }, includeDeleted)
}

// FilterBy returns copies of the records matching pred.
func (s *Store[T, P]) FilterBy(pred func(T) bool, includeDeleted bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for i := range s.records {
		if P(&s.records[i]).Meta().IsDeleted && !includeDeleted {
			continue
		}
		if pred(s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}

// UpdateByID applies a mutation to the active record with the given ID,
// bumps its updated timestamp, and persists. Returns false when no active
// record matches.
func (s *Store[T, P]) UpdateByID(id int, apply func(*T)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	for i := range s.records {
		meta := P(&s.records[i]).Meta()
		if meta.ID != id || meta.IsDeleted {
			continue
		}
		prev := s.records[i]
		apply(&s.records[i])
		m := P(&s.records[i]).Meta()
		m.ID = id
		m.UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			s.records[i] = prev
			return zero, true, err
		}
		return s.records[i], true, nil
	}
	return zero, false, nil
}

// SoftDeleteByID marks the active record with the given ID as deleted.
// Returns false when no active record matches, so a second delete of the
// same ID reports not found.
func (s *Store[T, P]) SoftDeleteByID(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		meta := P(&s.records[i]).Meta()
		if meta.ID != id || meta.IsDeleted {
			continue
		}
		prev := s.records[i]
		now := s.now()
		meta.IsDeleted = true
		meta.DeletedAt = &now
		meta.UpdatedAt = now
		if err := s.persist(); err != nil {
			s.records[i] = prev
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// Stats reports record counts for the collection.
type Stats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Deleted int `json:"deleted"`
}

func (s *Store[T, P]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Total: len(s.records)}
	for i := range s.records {
		if P(&s.records[i]).Meta().IsDeleted {
			st.Deleted++
		} else {
			st.Active++
		}
	}
	return st
}
