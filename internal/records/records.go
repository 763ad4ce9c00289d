package records

import "sync"

// Records is a duplicate-free, insertion-ordered collection of FroggerIDs.
// It is safe for concurrent use.
type Records struct {
	mu    sync.RWMutex
	store Store
}

// New returns an empty Records backed by an InMemoryStore.
func New() *Records {
	return NewWithStore(NewInMemoryStore())
}

// NewWithStore returns a Records that uses the given Store.
func NewWithStore(store Store) *Records {
	return &Records{store: store}
}

// AddRecord appends id unless an equal record is already present.
// It reports whether the record was added.
func (r *Records) AddRecord(id FroggerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store.Contains(id) {
		return false
	}
	r.store.Append(id)
	return true
}

// Contains reports whether an equal record is present.
func (r *Records) Contains(id FroggerID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Contains(id)
}

// Records returns a snapshot of all records in insertion order.
func (r *Records) Records() []FroggerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.List()
}

// Len returns the number of records.
func (r *Records) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Len()
}
