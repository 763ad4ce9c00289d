package frogger

import (
	"errors"
	"strings"
	"testing"

	"frogger/internal/records"
	"frogger/internal/road"
)

func newTestService(maxLaneLength int) *Service {
	return NewService(records.New(), NewInMemoryLaneRepository(), maxLaneLength)
}

var (
	ann = records.FroggerID{FirstName: "Ann", LastName: "Lee", PhoneNumber: "5550001", ZipCode: "94016", State: "CA", Gender: "F"}
	raj = records.FroggerID{FirstName: "Raj", LastName: "Patel", PhoneNumber: "5550002", ZipCode: "10001", State: "NY", Gender: "M"}
)

func TestService_RegisterFrogger(t *testing.T) {
	svc := newTestService(0)

	steps := []struct {
		id    records.FroggerID
		added bool
		count int
	}{
		{ann, true, 1},
		{ann, false, 1},
		{raj, true, 2},
	}
	for i, step := range steps {
		added, err := svc.RegisterFrogger(step.id)
		if err != nil {
			t.Fatalf("step %d: RegisterFrogger: %v", i, err)
		}
		if added != step.added {
			t.Errorf("step %d: added=%v, want %v", i, added, step.added)
		}
		if svc.RecordCount() != step.count {
			t.Errorf("step %d: count=%d, want %d", i, svc.RecordCount(), step.count)
		}
	}

	got := svc.Froggers()
	if len(got) != 2 || got[0] != ann || got[1] != raj {
		t.Errorf("Froggers: got %v", got)
	}
}

func TestService_RegisterFrogger_invalid(t *testing.T) {
	svc := newTestService(0)

	added, err := svc.RegisterFrogger(records.FroggerID{FirstName: "Ann"})
	if !errors.Is(err, records.ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
	if added || svc.RecordCount() != 0 {
		t.Error("invalid record must not be stored")
	}
}

func TestService_PutLane(t *testing.T) {
	svc := newTestService(4)

	if err := svc.PutLane("river-1", []bool{false, true, false}); err != nil {
		t.Fatalf("PutLane: %v", err)
	}
	rd, ok := svc.Lane("river-1")
	if !ok || rd.String() != ".X." {
		t.Errorf("Lane: ok=%v layout=%v", ok, rd)
	}
	if svc.LaneCount() != 1 {
		t.Errorf("LaneCount: got %d", svc.LaneCount())
	}
}

func TestService_PutLane_errors(t *testing.T) {
	svc := newTestService(4)

	if err := svc.PutLane("", []bool{true}); !errors.Is(err, ErrInvalidLaneID) {
		t.Errorf("empty id: expected ErrInvalidLaneID, got %v", err)
	}

	err := svc.PutLane("river-1", make([]bool, 5))
	if !errors.Is(err, ErrLaneTooLong) {
		t.Errorf("expected ErrLaneTooLong, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "max 4") {
		t.Errorf("error should mention the limit: %v", err)
	}

	if err := svc.PutLaneLayout("river-1", ".?"); !errors.Is(err, road.ErrInvalidLayout) {
		t.Errorf("expected ErrInvalidLayout, got %v", err)
	}

	if svc.LaneCount() != 0 {
		t.Errorf("rejected lanes must not be stored, got %d", svc.LaneCount())
	}
}

func TestService_Position(t *testing.T) {
	svc := newTestService(0)
	if err := svc.PutLaneLayout("highway-1", ".X."); err != nil {
		t.Fatalf("PutLaneLayout: %v", err)
	}

	tests := []struct {
		position int
		want     PositionStatus
	}{
		{0, PositionStatus{Position: 0, Valid: true, Occupied: false, State: "free"}},
		{1, PositionStatus{Position: 1, Valid: true, Occupied: true, State: "occupied"}},
		{-1, PositionStatus{Position: -1, Valid: false, Occupied: false, State: "out_of_range"}},
		{3, PositionStatus{Position: 3, Valid: false, Occupied: false, State: "out_of_range"}},
	}
	for _, tt := range tests {
		got, ok := svc.Position("highway-1", tt.position)
		if !ok {
			t.Fatalf("Position(%d): ok false", tt.position)
		}
		if got != tt.want {
			t.Errorf("Position(%d): got %+v want %+v", tt.position, got, tt.want)
		}
	}

	if _, ok := svc.Position("missing", 0); ok {
		t.Error("expected ok false for missing lane")
	}
}
