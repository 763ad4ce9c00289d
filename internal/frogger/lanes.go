package frogger

import (
	"sort"
	"sync"

	"frogger/internal/road"
)

// LaneRepository defines the concurrency-safe contract for storing lanes.
type LaneRepository interface {
	// PutLane stores r under id, replacing any existing lane with that id.
	PutLane(id LaneID, r *road.Road)

	// GetLane returns the lane stored under id. The ok return is false if no
	// lane has that id.
	GetLane(id LaneID) (r *road.Road, ok bool)

	// ListLaneIDs returns all lane ids in ascending order.
	ListLaneIDs() []LaneID

	// LaneCount returns the number of stored lanes. Used for metrics.
	LaneCount() int
}

// InMemoryLaneRepository is a concurrency-safe in-memory LaneRepository.
// Stored roads are immutable, so they are handed out without copying.
type InMemoryLaneRepository struct {
	mu    sync.RWMutex
	lanes map[LaneID]*road.Road
}

// NewInMemoryLaneRepository returns an empty repository.
func NewInMemoryLaneRepository() *InMemoryLaneRepository {
	return &InMemoryLaneRepository{
		lanes: make(map[LaneID]*road.Road),
	}
}

// PutLane implements LaneRepository.PutLane.
func (r *InMemoryLaneRepository) PutLane(id LaneID, rd *road.Road) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lanes[id] = rd
}

// GetLane implements LaneRepository.GetLane.
func (r *InMemoryLaneRepository) GetLane(id LaneID) (*road.Road, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.lanes[id]
	return rd, ok
}

// ListLaneIDs implements LaneRepository.ListLaneIDs.
func (r *InMemoryLaneRepository) ListLaneIDs() []LaneID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]LaneID, 0, len(r.lanes))
	for id := range r.lanes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LaneCount implements LaneRepository.LaneCount.
func (r *InMemoryLaneRepository) LaneCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lanes)
}
