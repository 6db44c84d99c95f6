package service

import (
	"context"
	"fmt"

	"github.com/academy-events/backend/internal/model"
)

// RegistrationStore is the persistence surface RegistrationService needs.
type RegistrationStore interface {
	Create(ctx context.Context, eventID, studentID int32) error
	ListByStudent(ctx context.Context, studentID int32) ([]model.Registration, error)
	Delete(ctx context.Context, registrationID, studentID int32) error
}

// RegistrationService orchestrates attendance registration and cancellation.
type RegistrationService struct {
	registrations RegistrationStore
	students      StudentStore
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(registrations RegistrationStore, students StudentStore) *RegistrationService {
	return &RegistrationService{registrations: registrations, students: students}
}

// Register resolves the caller's identity to a student row and registers it
// for the event. Surfaces repository.ErrNotFound when the identity has no
// student row or the event does not exist, ErrAlreadyRegistered on a
// duplicate, and ErrEventFull at capacity.
func (s *RegistrationService) Register(ctx context.Context, supabaseID string, req model.RegisterEventRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	student, err := s.students.GetBySupabaseID(ctx, supabaseID)
	if err != nil {
		return err
	}
	return s.registrations.Create(ctx, req.EventID, student.StudentID)
}

// ListByStudent returns a student's registrations with event details.
func (s *RegistrationService) ListByStudent(ctx context.Context, studentID int32) ([]model.Registration, error) {
	return s.registrations.ListByStudent(ctx, studentID)
}

// Cancel deletes a registration owned by the caller. Cancelling an id that
// does not exist, or that belongs to another student, is a silent no-op.
func (s *RegistrationService) Cancel(ctx context.Context, supabaseID string, registrationID int32) error {
	student, err := s.students.GetBySupabaseID(ctx, supabaseID)
	if err != nil {
		return err
	}
	return s.registrations.Delete(ctx, registrationID, student.StudentID)
}
