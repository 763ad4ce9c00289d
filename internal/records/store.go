package records

// Store is the persistence abstraction behind Records.
// Implementations keep records in insertion order and never deduplicate on
// their own; Records decides what gets appended.
type Store interface {
	Contains(id FroggerID) bool
	Append(id FroggerID)
	List() []FroggerID
	Len() int
}

// InMemoryStore is a slice-backed implementation of Store.
type InMemoryStore struct {
	records []FroggerID
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make([]FroggerID, 0),
	}
}

// Contains implements Store.Contains with a linear scan.
func (s *InMemoryStore) Contains(id FroggerID) bool {
	for _, r := range s.records {
		if r == id {
			return true
		}
	}
	return false
}

// Append implements Store.Append.
func (s *InMemoryStore) Append(id FroggerID) {
	s.records = append(s.records, id)
}

// List implements Store.List. The returned slice is a copy.
func (s *InMemoryStore) List() []FroggerID {
	out := make([]FroggerID, len(s.records))
	copy(out, s.records)
	return out
}

// Len implements Store.Len.
func (s *InMemoryStore) Len() int {
	return len(s.records)
}
