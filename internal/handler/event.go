package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/academy-events/backend/internal/model"
)

func pathID(r *http.Request, name string) (int32, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

// ListEvents handles GET /api/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEvents(r.Context())
	if err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// SearchEvents handles GET /api/events/search?q=
// An empty query term matches every event.
func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.SearchEvents(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST /api/organizer/event
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if claims := organizerFrom(r); claims != nil && req.DepartmentID != claims.DepartmentID {
		writeError(w, http.StatusForbidden, "cannot create events for another department")
		return
	}

	if err := h.events.CreateEvent(r.Context(), req); err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "Event created successfully!"})
}

// UpdateEvent handles PUT /api/events/{event_id}
// Full-replace semantics: the body must carry every mutable field.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "event_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req model.EventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.events.UpdateEvent(r.Context(), eventID, req); err != nil {
		h.serviceError(w, r, err, "event not found")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Event updated successfully!"})
}
