package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academy-events/backend/internal/model"
)

// EventParams carries the typed column values for an event insert or replace.
type EventParams struct {
	Name            string
	Description     string
	Date            pgtype.Date
	Time            pgtype.Time
	Venue           string
	DepartmentID    int32
	SponsorID       *int32
	MaxParticipants int
	Fee             float64
	Type            string
}

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `e.event_id, e.event_name, e.description, e.date, e.time, e.venue,
	e.department_id, e.sponsor_id, e.max_participants, e.registration_fee, e.event_type,
	d.dept_name, s.name`

const eventJoins = `FROM events e
	JOIN departments d ON e.department_id = d.department_id
	LEFT JOIN sponsors s ON e.sponsor_id = s.sponsor_id`

func scanEvents(rows pgx.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.EventID, &e.EventName, &e.Description, &e.Date, &e.Time,
			&e.Venue, &e.DepartmentID, &e.SponsorID, &e.MaxParticipants,
			&e.RegistrationFee, &e.EventType, &e.DepartmentName, &e.SponsorName); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// List returns all events with department and sponsor names, soonest first.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` `+eventJoins+` ORDER BY e.date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Search returns events whose name contains term; an empty term matches all.
func (r *EventRepository) Search(ctx context.Context, term string) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` `+eventJoins+`
		 WHERE e.event_name ILIKE $1
		 ORDER BY e.date ASC`,
		"%"+term+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListByDepartment returns a department's events, soonest first.
func (r *EventRepository) ListByDepartment(ctx context.Context, departmentID int32) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` `+eventJoins+`
		 WHERE e.department_id = $1
		 ORDER BY e.date ASC`,
		departmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list department events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Create inserts a full event row.
func (r *EventRepository) Create(ctx context.Context, p EventParams) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (event_name, description, date, time, venue,
		   department_id, sponsor_id, max_participants, registration_fee, event_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.Name, p.Description, p.Date, p.Time, p.Venue,
		p.DepartmentID, p.SponsorID, p.MaxParticipants, p.Fee, p.Type,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an event.
func (r *EventRepository) Update(ctx context.Context, eventID int32, p EventParams) error {
	_, err := r.db.Exec(ctx,
		`UPDATE events
		 SET event_name = $1, description = $2, date = $3, time = $4, venue = $5,
		     sponsor_id = $6, max_participants = $7, registration_fee = $8, event_type = $9
		 WHERE event_id = $10`,
		p.Name, p.Description, p.Date, p.Time, p.Venue,
		p.SponsorID, p.MaxParticipants, p.Fee, p.Type, eventID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}
