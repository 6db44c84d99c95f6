// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/academy-events/backend/internal/auth"
	"github.com/academy-events/backend/internal/identity"
	"github.com/academy-events/backend/internal/model"
	"github.com/academy-events/backend/internal/repository"
	"github.com/academy-events/backend/internal/service"
)

// StudentService is the student-facing surface the handlers call.
type StudentService interface {
	SaveProfile(ctx context.Context, user *identity.User, req model.ProfileRequest) error
	GetProfile(ctx context.Context, supabaseID string) (*model.Student, error)
}

// EventService is the event surface the handlers call.
type EventService interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	SearchEvents(ctx context.Context, term string) ([]model.Event, error)
	CreateEvent(ctx context.Context, req model.EventRequest) error
	UpdateEvent(ctx context.Context, eventID int32, req model.EventRequest) error
}

// RegistrationService is the registration surface the handlers call.
type RegistrationService interface {
	Register(ctx context.Context, supabaseID string, req model.RegisterEventRequest) error
	ListByStudent(ctx context.Context, studentID int32) ([]model.Registration, error)
	Cancel(ctx context.Context, supabaseID string, registrationID int32) error
}

// OrganizerService is the organizer surface the handlers call.
type OrganizerService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Dashboard(ctx context.Context, organizerID int32) (*model.Dashboard, error)
}

// ReferenceService is the reference-data surface the handlers call.
type ReferenceService interface {
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListSponsors(ctx context.Context) ([]model.Sponsor, error)
}

// TokenParser validates organizer session tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Handler holds all HTTP handlers for the academy events API.
type Handler struct {
	students      StudentService
	events        EventService
	registrations RegistrationService
	organizers    OrganizerService
	reference     ReferenceService
	verifier      identity.Verifier
	tokens        TokenParser
	log           zerolog.Logger
}

// New constructs a Handler.
func New(
	students StudentService,
	events EventService,
	registrations RegistrationService,
	organizers OrganizerService,
	reference ReferenceService,
	verifier identity.Verifier,
	tokens TokenParser,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		students:      students,
		events:        events,
		registrations: registrations,
		organizers:    organizers,
		reference:     reference,
		verifier:      verifier,
		tokens:        tokens,
		log:           log,
	}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	return json.NewDecoder(r.Body).Decode(dst)
}

// serviceError maps layered sentinel errors to HTTP responses. notFoundMsg
// customises the 404 body per endpoint.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "already registered for this event")
	case errors.Is(err, repository.ErrEventFull):
		writeError(w, http.StatusConflict, "event is fully booked")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "Email and password required")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
