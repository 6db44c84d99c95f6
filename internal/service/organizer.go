package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/academy-events/backend/internal/auth"
	"github.com/academy-events/backend/internal/model"
	"github.com/academy-events/backend/internal/repository"
)

// OrganizerStore is the persistence surface OrganizerService needs.
type OrganizerStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Organizer, error)
	GetByID(ctx context.Context, organizerID int32) (*model.Organizer, error)
}

// DepartmentEventStore lists a department's events for the dashboard.
type DepartmentEventStore interface {
	ListByDepartment(ctx context.Context, departmentID int32) ([]model.Event, error)
}

// SponsorStore lists sponsors for the dashboard.
type SponsorStore interface {
	ListSponsors(ctx context.Context) ([]model.Sponsor, error)
}

// TokenIssuer mints organizer session tokens.
type TokenIssuer interface {
	Issue(organizerID, departmentID int32) (string, error)
}

// OrganizerService handles organizer login and the department dashboard.
type OrganizerService struct {
	organizers OrganizerStore
	events     DepartmentEventStore
	sponsors   SponsorStore
	tokens     TokenIssuer
}

// NewOrganizerService constructs an OrganizerService.
func NewOrganizerService(organizers OrganizerStore, events DepartmentEventStore, sponsors SponsorStore, tokens TokenIssuer) *OrganizerService {
	return &OrganizerService{organizers: organizers, events: events, sponsors: sponsors, tokens: tokens}
}

// Login checks the password against the stored bcrypt hash and mints a
// session token. Unknown email and wrong password both surface
// ErrInvalidCredentials.
func (s *OrganizerService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	organizer, err := s.organizers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !auth.CheckPassword(organizer.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(organizer.OrganizerID, organizer.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &model.LoginResponse{
		Message:   "Login successful",
		Organizer: organizer,
		Token:     token,
	}, nil
}

// Dashboard returns the organizer record, the events in its department, and
// the full sponsor list. A missing organizer surfaces repository.ErrNotFound
// before any further query runs.
func (s *OrganizerService) Dashboard(ctx context.Context, organizerID int32) (*model.Dashboard, error) {
	organizer, err := s.organizers.GetByID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListByDepartment(ctx, organizer.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("dashboard events: %w", err)
	}
	sponsors, err := s.sponsors.ListSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard sponsors: %w", err)
	}

	if events == nil {
		events = []model.Event{}
	}
	if sponsors == nil {
		sponsors = []model.Sponsor{}
	}
	return &model.Dashboard{Organizer: organizer, Events: events, Sponsors: sponsors}, nil
}
