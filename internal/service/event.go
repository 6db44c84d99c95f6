package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/academy-events/backend/internal/model"
	"github.com/academy-events/backend/internal/repository"
)

// EventStore is the persistence surface EventService needs.
type EventStore interface {
	List(ctx context.Context) ([]model.Event, error)
	Search(ctx context.Context, term string) ([]model.Event, error)
	Create(ctx context.Context, p repository.EventParams) error
	Update(ctx context.Context, eventID int32, p repository.EventParams) error
}

// EventService orchestrates event reads and organizer-driven writes.
type EventService struct {
	events EventStore
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// ListEvents returns every event, soonest first.
func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}

// SearchEvents returns events whose name contains term; empty term matches all.
func (s *EventService) SearchEvents(ctx context.Context, term string) ([]model.Event, error) {
	return s.events.Search(ctx, strings.TrimSpace(term))
}

// CreateEvent validates the body and inserts a full event row.
func (s *EventService) CreateEvent(ctx context.Context, req model.EventRequest) error {
	params, err := eventParams(req)
	if err != nil {
		return err
	}
	return s.events.Create(ctx, params)
}

// UpdateEvent validates the body and replaces every mutable field of the
// event. A body missing required fields is rejected rather than silently
// nulling columns.
func (s *EventService) UpdateEvent(ctx context.Context, eventID int32, req model.EventRequest) error {
	params, err := eventParams(req)
	if err != nil {
		return err
	}
	return s.events.Update(ctx, eventID, params)
}

func eventParams(req model.EventRequest) (repository.EventParams, error) {
	if err := validate.Struct(req); err != nil {
		return repository.EventParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return repository.EventParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	tod, err := model.ParseTimeOfDay(req.Time)
	if err != nil {
		return repository.EventParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return repository.EventParams{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Date:            date.Date,
		Time:            tod.Time,
		Venue:           req.Venue,
		DepartmentID:    req.DepartmentID,
		SponsorID:       req.SponsorID.Ptr(),
		MaxParticipants: req.MaxParticipants,
		Fee:             req.Fee,
		Type:            req.Type,
	}, nil
}
