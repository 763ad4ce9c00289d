package frogger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"frogger/internal/platform/metrics"
	"frogger/internal/records"
	"frogger/internal/road"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the record book and lanes over HTTP using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts the handler's endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/records", func(r chi.Router) {
		r.Post("/", h.AddRecord)
		r.Get("/", h.ListRecords)
	})
	r.Route("/lanes/{lane_id}", func(r chi.Router) {
		r.Put("/", h.PutLane)
		r.Get("/", h.GetLane)
		r.Get("/positions/{position}", h.GetPosition)
	})
}

// AddRecord handles POST /records.
// Body: {"first_name": "Ann", "last_name": "Lee", "phone_number": "...", ...}.
func (h *Handler) AddRecord(w http.ResponseWriter, r *http.Request) {
	var id records.FroggerID
	if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
		h.log.Debug("invalid record body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	added, err := h.svc.RegisterFrogger(id)
	if err != nil {
		if errors.Is(err, records.ErrInvalidRecord) {
			h.log.Debug("record rejected", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.Error("register frogger failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	key := id.Key()
	h.log.Debug("record submitted",
		slog.String("key", key.String()),
		slog.Bool("added", added))
	if h.metrics != nil {
		h.metrics.ObserveRecordAdd(added)
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, addRecordResponse{Added: added, Key: key})
}

// ListRecords handles GET /records.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	recs := h.svc.Froggers()
	h.writeJSON(w, http.StatusOK, listRecordsResponse{Records: recs, Count: len(recs)})
}

// PutLane handles PUT /lanes/{lane_id}.
// Body: {"occupied": [false, true]} or {"layout": ".X"}.
func (h *Handler) PutLane(w http.ResponseWriter, r *http.Request) {
	laneID := LaneID(chi.URLParam(r, "lane_id"))

	var req putLaneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid lane body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if (req.Layout == nil) == (req.Occupied == nil) {
		h.log.Debug("lane body needs exactly one of occupied or layout",
			slog.String("lane_id", string(laneID)))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var err error
	if req.Layout != nil {
		err = h.svc.PutLaneLayout(laneID, *req.Layout)
	} else {
		err = h.svc.PutLane(laneID, req.Occupied)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidLaneID), errors.Is(err, ErrLaneTooLong), errors.Is(err, road.ErrInvalidLayout):
			h.log.Info("lane rejected",
				slog.String("lane_id", string(laneID)),
				slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("put lane failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("lane stored", slog.String("lane_id", string(laneID)))
	w.WriteHeader(http.StatusNoContent)
}

// GetLane handles GET /lanes/{lane_id}.
func (h *Handler) GetLane(w http.ResponseWriter, r *http.Request) {
	laneID := LaneID(chi.URLParam(r, "lane_id"))

	rd, ok := h.svc.Lane(laneID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, laneResponse{
		LaneID:   laneID,
		Length:   rd.Len(),
		Occupied: rd.Occupied(),
		Layout:   rd.String(),
	})
}

// GetPosition handles GET /lanes/{lane_id}/positions/{position}.
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	laneID := LaneID(chi.URLParam(r, "lane_id"))

	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, ok := h.svc.Position(laneID, position)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if h.metrics != nil {
		h.metrics.ObservePositionQuery(status.State)
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response failed", slog.String("error", err.Error()))
	}
}
