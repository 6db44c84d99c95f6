package handler

import (
	"errors"
	"net/http"

	"github.com/academy-events/backend/internal/model"
	"github.com/academy-events/backend/internal/repository"
)

// SaveProfile handles POST /api/student/register
// Idempotently upserts the caller's profile keyed by the identity id.
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.students.SaveProfile(r.Context(), userFrom(r), req); err != nil {
		h.serviceError(w, r, err, "student not found")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Profile created"})
}

// GetProfile handles GET /api/student/profile
// Returns the caller's profile, or JSON null when none exists yet.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	student, err := h.students.GetProfile(r.Context(), userFrom(r).ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		h.serviceError(w, r, err, "student not found")
		return
	}

	writeJSON(w, http.StatusOK, student)
}
