package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academy-events/backend/internal/model"
)

// OrganizerRepository handles persistence for organizer accounts.
type OrganizerRepository struct {
	db *pgxpool.Pool
}

// NewOrganizerRepository constructs an OrganizerRepository.
func NewOrganizerRepository(db *pgxpool.Pool) *OrganizerRepository {
	return &OrganizerRepository{db: db}
}

const organizerQuery = `SELECT o.organizer_id, o.email, o.password_hash, o.department_id, d.dept_name
	FROM organizers o
	JOIN departments d ON o.department_id = d.department_id`

func (r *OrganizerRepository) scanOne(row pgx.Row) (*model.Organizer, error) {
	var o model.Organizer
	err := row.Scan(&o.OrganizerID, &o.Email, &o.PasswordHash, &o.DepartmentID, &o.DeptName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	return &o, nil
}

// GetByEmail returns the organizer account for a login email, or ErrNotFound.
func (r *OrganizerRepository) GetByEmail(ctx context.Context, email string) (*model.Organizer, error) {
	return r.scanOne(r.db.QueryRow(ctx, organizerQuery+` WHERE o.email = $1`, email))
}

// GetByID returns an organizer by id, or ErrNotFound.
func (r *OrganizerRepository) GetByID(ctx context.Context, organizerID int32) (*model.Organizer, error) {
	return r.scanOne(r.db.QueryRow(ctx, organizerQuery+` WHERE o.organizer_id = $1`, organizerID))
}
