package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/academy-events/backend/internal/identity"
	"github.com/academy-events/backend/internal/model"
)

// StudentStore is the persistence surface StudentService needs.
type StudentStore interface {
	Upsert(ctx context.Context, supabaseID, email string, req model.ProfileRequest) error
	GetBySupabaseID(ctx context.Context, supabaseID string) (*model.Student, error)
}

// StudentService orchestrates student profile operations.
type StudentService struct {
	students StudentStore
}

// NewStudentService constructs a StudentService.
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// SaveProfile idempotently upserts the caller's profile. The identity id
// must be a UUID, which is what Supabase issues.
func (s *StudentService) SaveProfile(ctx context.Context, user *identity.User, req model.ProfileRequest) error {
	if _, err := uuid.Parse(user.ID); err != nil {
		return fmt.Errorf("%w: identity id is not a uuid", ErrInvalidInput)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.students.Upsert(ctx, user.ID, user.Email, req)
}

// GetProfile returns the caller's profile, or repository.ErrNotFound.
func (s *StudentService) GetProfile(ctx context.Context, supabaseID string) (*model.Student, error) {
	return s.students.GetBySupabaseID(ctx, supabaseID)
}
