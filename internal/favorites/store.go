package favorites

import (
	"encoding/json"
	"fmt"

	"github.com/five82/recipebox/internal/kv"
	"github.com/five82/recipebox/internal/logging"
)

// Key is the storage key holding the favorites list.
const Key = "favorites"

// Store loads and persists the favorites set.
type Store struct {
	kv kv.Store
}

// NewStore returns a favorites store backed by s.
func NewStore(s kv.Store) *Store {
	return &Store{kv: s}
}

// Load returns the persisted favorites. A missing or unparseable value
// yields an empty set.
func (s *Store) Load() Set {
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		logging.Warn("read favorites failed", "err", err)
		return Set{}
	}
	if !ok {
		return Set{}
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logging.Debug("ignoring malformed favorites", "value", raw, "err", err)
		return Set{}
	}
	return NewSet(ids...)
}

// Persist writes set to storage as an ordered JSON array of ids.
func (s *Store) Persist(set Set) error {
	data, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.kv.Set(Key, string(data)); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

// Toggle flips id in current and persists the result before returning.
// The toggled set is returned even when persisting fails; the caller keeps
// it as the session's source of truth.
func (s *Store) Toggle(current Set, id int) (Set, error) {
	next := current.Toggle(id)
	if err := s.Persist(next); err != nil {
		logging.Warn("persist favorites failed", "id", id, "err", err)
		return next, err
	}
	return next, nil
}
