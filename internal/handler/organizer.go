package handler

import (
	"net/http"

	"github.com/academy-events/backend/internal/model"
)

// Login handles POST /api/organizer/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.organizers.Login(r.Context(), req)
	if err != nil {
		h.serviceError(w, r, err, "organizer not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/organizer/{organizer_id}
// Returns the organizer record, its department's events, and all sponsors.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := pathID(r, "organizer_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid organizer id")
		return
	}

	dashboard, err := h.organizers.Dashboard(r.Context(), organizerID)
	if err != nil {
		h.serviceError(w, r, err, "Organizer not found")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
