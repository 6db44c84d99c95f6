// Package repository implements all database queries for the academy events
// backend. It uses pgx directly (no ORM) for transparency and performance.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event is fully booked")

// ErrAlreadyRegistered is returned when a student registers twice for the
// same event.
var ErrAlreadyRegistered = errors.New("already registered for this event")
