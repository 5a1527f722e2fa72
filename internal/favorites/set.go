// Package favorites tracks the user's favorite recipes and persists them
// through a key-value store.
package favorites

// Set is an immutable, insertion-ordered set of recipe ids.
// The zero value is an empty set.
type Set struct {
	ids []int
}

// NewSet builds a set from ids, dropping duplicates and keeping first
// occurrence order.
func NewSet(ids ...int) Set {
	var s Set
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of ids.
func (s Set) Len() int { return len(s.ids) }

// IDs returns the ids in insertion order.
func (s Set) IDs() []int {
	if len(s.ids) == 0 {
		return []int{}
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle returns a new set with id added when absent or removed when
// present. The receiver is not modified.
func (s Set) Toggle(id int) Set {
	out := make([]int, 0, len(s.ids)+1)
	found := false
	for _, v := range s.ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return Set{ids: out}
}

// Equal reports whether both sets hold the same ids, ignoring order.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
