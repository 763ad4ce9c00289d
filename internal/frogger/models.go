package frogger

import (
	"frogger/internal/records"

	"github.com/google/uuid"
)

// LaneID names a lane on the road (e.g. "river-1", "highway-3").
type LaneID string

// PositionStatus is the answer to a single position query on a lane.
type PositionStatus struct {
	Position int    `json:"position"`
	Valid    bool   `json:"valid"`
	Occupied bool   `json:"occupied"`
	State    string `json:"state"`
}

// putLaneRequest is the body of PUT /lanes/{lane_id}. Exactly one of
// Occupied or Layout must be set.
type putLaneRequest struct {
	Occupied []bool  `json:"occupied"`
	Layout   *string `json:"layout"`
}

type laneResponse struct {
	LaneID   LaneID `json:"lane_id"`
	Length   int    `json:"length"`
	Occupied []bool `json:"occupied"`
	Layout   string `json:"layout"`
}

type addRecordResponse struct {
	Added bool      `json:"added"`
	Key   uuid.UUID `json:"key"`
}

type listRecordsResponse struct {
	Records []records.FroggerID `json:"records"`
	Count   int                 `json:"count"`
}
