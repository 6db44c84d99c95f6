package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academy-events/backend/internal/model"
)

// RegistrationRepository handles persistence for event registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create registers a student for an event inside a serialised transaction.
//
// The event row is locked with SELECT ... FOR UPDATE so concurrent
// registrations for the same event are serialised: the duplicate check and
// the capacity check both run against a row no other transaction can be
// reading-for-update at the same time, which rules out overbooking from two
// requests observing the same free seat.
func (r *RegistrationRepository) Create(ctx context.Context, eventID, studentID int32) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var maxParticipants int
	err = tx.QueryRow(ctx,
		`SELECT max_participants FROM events WHERE event_id = $1 FOR UPDATE`,
		eventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	var dupCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&dupCount)
	if err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if dupCount > 0 {
		err = ErrAlreadyRegistered
		return err
	}

	var total int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`,
		eventID,
	).Scan(&total)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if total >= maxParticipants {
		err = ErrEventFull
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO registrations (event_id, student_id, payment_status)
		 VALUES ($1, $2, 'Pending')`,
		eventID, studentID,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListByStudent returns a student's registrations with event details,
// most recent first.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID int32) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.registration_id, r.event_id, r.student_id, r.registration_date,
		        r.payment_status, e.event_name, e.description, e.date, e.time,
		        e.venue, e.event_type, e.max_participants, e.registration_fee
		 FROM registrations r
		 JOIN events e ON r.event_id = e.event_id
		 WHERE r.student_id = $1
		 ORDER BY r.registration_date DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.RegistrationID, &reg.EventID, &reg.StudentID,
			&reg.RegistrationDate, &reg.PaymentStatus, &reg.EventName, &reg.Description,
			&reg.Date, &reg.Time, &reg.Venue, &reg.EventType,
			&reg.MaxParticipants, &reg.RegistrationFee); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// Delete removes a registration, scoped to the owning student. Deleting an
// id that does not exist, or that belongs to someone else, is a no-op.
func (r *RegistrationRepository) Delete(ctx context.Context, registrationID, studentID int32) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM registrations WHERE registration_id = $1 AND student_id = $2`,
		registrationID, studentID,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
