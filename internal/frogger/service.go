package frogger

import (
	"errors"
	"fmt"

	"frogger/internal/records"
	"frogger/internal/road"
)

// DefaultMaxLaneLength caps the number of positions a lane may have.
const DefaultMaxLaneLength = 64

var (
	// ErrInvalidLaneID is returned when a lane id is empty.
	ErrInvalidLaneID = errors.New("invalid lane id")

	// ErrLaneTooLong is returned when a lane has more positions than the
	// service allows.
	ErrLaneTooLong = errors.New("lane too long")
)

// Service ties the frogger record book and the road lanes together behind
// one API for the HTTP handler.
type Service struct {
	records       *records.Records
	lanes         LaneRepository
	maxLaneLength int
}

// NewService returns a Service over recs and lanes. If maxLaneLength <= 0,
// DefaultMaxLaneLength is used.
func NewService(recs *records.Records, lanes LaneRepository, maxLaneLength int) *Service {
	if maxLaneLength <= 0 {
		maxLaneLength = DefaultMaxLaneLength
	}
	return &Service{records: recs, lanes: lanes, maxLaneLength: maxLaneLength}
}

// RegisterFrogger validates id and adds it to the record book. added is
// false when an equal record already exists.
func (s *Service) RegisterFrogger(id records.FroggerID) (added bool, err error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	return s.records.AddRecord(id), nil
}

// Froggers returns all registered records in registration order.
func (s *Service) Froggers() []records.FroggerID {
	return s.records.Records()
}

// RecordCount returns the number of registered records.
func (s *Service) RecordCount() int {
	return s.records.Len()
}

// PutLane stores a lane built from flags under id.
func (s *Service) PutLane(id LaneID, flags []bool) error {
	return s.putRoad(id, road.New(flags))
}

// PutLaneLayout stores a lane parsed from layout under id.
func (s *Service) PutLaneLayout(id LaneID, layout string) error {
	rd, err := road.Parse(layout)
	if err != nil {
		return err
	}
	return s.putRoad(id, rd)
}

func (s *Service) putRoad(id LaneID, rd *road.Road) error {
	if id == "" {
		return ErrInvalidLaneID
	}
	if rd.Len() > s.maxLaneLength {
		return fmt.Errorf("%w: %d positions, max %d", ErrLaneTooLong, rd.Len(), s.maxLaneLength)
	}
	s.lanes.PutLane(id, rd)
	return nil
}

// Lane returns the lane stored under id.
func (s *Service) Lane(id LaneID) (*road.Road, bool) {
	return s.lanes.GetLane(id)
}

// LaneCount returns the number of stored lanes.
func (s *Service) LaneCount() int {
	return s.lanes.LaneCount()
}

// Position reports the occupancy of position on lane id. ok is false only
// when the lane does not exist; out-of-range positions are answered as
// invalid and unoccupied.
func (s *Service) Position(id LaneID, position int) (status PositionStatus, ok bool) {
	rd, ok := s.lanes.GetLane(id)
	if !ok {
		return PositionStatus{}, false
	}
	return PositionStatus{
		Position: position,
		Valid:    rd.IsValid(position),
		Occupied: rd.IsOccupied(position),
		State:    rd.Lookup(position).String(),
	}, true
}
