package handler

import (
	"net/http"

	"github.com/academy-events/backend/internal/model"
)

// ListDepartments handles GET /api/departments
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.reference.ListDepartments(r.Context())
	if err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	if departments == nil {
		departments = []model.Department{}
	}
	writeJSON(w, http.StatusOK, departments)
}

// ListSponsors handles GET /api/sponsors
func (h *Handler) ListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := h.reference.ListSponsors(r.Context())
	if err != nil {
		h.serviceError(w, r, err, "not found")
		return
	}

	if sponsors == nil {
		sponsors = []model.Sponsor{}
	}
	writeJSON(w, http.StatusOK, sponsors)
}
