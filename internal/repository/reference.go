package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academy-events/backend/internal/model"
)

// ReferenceRepository reads the pre-seeded department and sponsor tables.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

// NewReferenceRepository constructs a ReferenceRepository.
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// ListDepartments returns all departments.
func (r *ReferenceRepository) ListDepartments(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.Query(ctx,
		`SELECT department_id, dept_name FROM departments`,
	)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.DepartmentID, &d.DeptName); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// ListSponsors returns all sponsors ordered by name.
func (r *ReferenceRepository) ListSponsors(ctx context.Context) ([]model.Sponsor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sponsor_id, name FROM sponsors ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	defer rows.Close()

	var sponsors []model.Sponsor
	for rows.Next() {
		var s model.Sponsor
		if err := rows.Scan(&s.SponsorID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}
