package service

import (
	"context"

	"github.com/academy-events/backend/internal/model"
)

// ReferenceStore is the persistence surface for reference data.
type ReferenceStore interface {
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListSponsors(ctx context.Context) ([]model.Sponsor, error)
}

// ReferenceService exposes pre-seeded departments and sponsors.
type ReferenceService struct {
	ref ReferenceStore
}

// NewReferenceService constructs a ReferenceService.
func NewReferenceService(ref ReferenceStore) *ReferenceService {
	return &ReferenceService{ref: ref}
}

// ListDepartments returns all departments.
func (s *ReferenceService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	return s.ref.ListDepartments(ctx)
}

// ListSponsors returns all sponsors ordered by name.
func (s *ReferenceService) ListSponsors(ctx context.Context) ([]model.Sponsor, error) {
	return s.ref.ListSponsors(ctx)
}
