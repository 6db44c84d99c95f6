package handler

import (
	"net/http"

	"github.com/academy-events/backend/internal/model"
)

// RegisterEvent handles POST /api/register_event
// Requires a verified identity with an existing student row.
func (h *Handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.registrations.Register(r.Context(), userFrom(r).ID, req); err != nil {
		h.serviceError(w, r, err, "Student not found")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Registered successfully!"})
}

// ListRegistrations handles GET /api/registrations/{student_id}
func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathID(r, "student_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	regs, err := h.registrations.ListByStudent(r.Context(), studentID)
	if err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}

// CancelRegistration handles DELETE /api/cancel_registration/{registration_id}
// The delete is scoped to the caller's student row; a missing or foreign id
// is a no-op that still reports success.
func (h *Handler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID, ok := pathID(r, "registration_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid registration id")
		return
	}

	if err := h.registrations.Cancel(r.Context(), userFrom(r).ID, registrationID); err != nil {
		h.serviceError(w, r, err, "Student not found")
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Registration canceled"})
}
