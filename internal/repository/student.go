package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academy-events/backend/internal/model"
)

// StudentRepository handles persistence for student profiles.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Upsert inserts a student keyed by the Supabase identity id. When the row
// already exists, name, phone, year and department are overwritten while
// email and supabase_id stay as first written.
func (r *StudentRepository) Upsert(ctx context.Context, supabaseID, email string, req model.ProfileRequest) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO students (supabase_id, first_name, last_name, email, phone, year, department_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (supabase_id) DO UPDATE SET
		   first_name    = EXCLUDED.first_name,
		   last_name     = EXCLUDED.last_name,
		   phone         = EXCLUDED.phone,
		   year          = EXCLUDED.year,
		   department_id = EXCLUDED.department_id`,
		supabaseID, req.FirstName, req.LastName, email, req.Phone, req.Year, req.DepartmentID.Ptr(),
	)
	if err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}
	return nil
}

// GetBySupabaseID returns the student for an identity, or ErrNotFound.
// The department join is outer so a student without a department still resolves.
func (r *StudentRepository) GetBySupabaseID(ctx context.Context, supabaseID string) (*model.Student, error) {
	var s model.Student
	err := r.db.QueryRow(ctx,
		`SELECT s.student_id, s.supabase_id, s.first_name, s.last_name, s.email,
		        s.phone, s.year, s.department_id, d.dept_name
		 FROM students s
		 LEFT JOIN departments d ON s.department_id = d.department_id
		 WHERE s.supabase_id = $1`,
		supabaseID,
	).Scan(&s.StudentID, &s.SupabaseID, &s.FirstName, &s.LastName, &s.Email,
		&s.Phone, &s.Year, &s.DepartmentID, &s.DeptName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}
