// Package store keeps the client-side mirror of the customer list.
//
// The Store is the source of truth for what the list view shows. It is
// seeded once from the server and afterwards patched only with server
// responses: entries are always replaced by value, never edited in place.
package store

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// Store is an ordered list of records in the order the server returned them.
// It is owned by a single event loop and is not safe for concurrent use.
type Store struct {
	records []models.Record
	logger  logging.Logger
}

func New(logger logging.Logger) *Store {
	return &Store{logger: logger.With("module", "store")}
}

// ReplaceAll swaps the whole content, typically after the initial load.
func (s *Store) ReplaceAll(records []models.Record) {
	s.records = slices.Clone(records)
}

// ReplaceOne replaces the entry with the same ID as r. A record that is not
// in the store is ignored and logged; it reports whether a swap happened.
func (s *Store) ReplaceOne(ctx context.Context, r models.Record) bool {
	i := s.index(r.ID)
	if i < 0 {
		s.logger.Warn(ctx, "updated record is not in store, ignoring", "id", r.ID)
		return false
	}
	s.records[i] = r
	return true
}

// RemoveOne drops the entry with the given ID and reports whether it existed.
func (s *Store) RemoveOne(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// Snapshot returns a copy of the records in display order.
func (s *Store) Snapshot() []models.Record {
	return slices.Clone(s.records)
}

func (s *Store) Get(id string) (models.Record, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Record{}, false
	}
	return s.records[i], true
}

func (s *Store) Contains(id string) bool {
	return s.index(id) >= 0
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.records, func(r models.Record) bool { return r.ID == id })
}
