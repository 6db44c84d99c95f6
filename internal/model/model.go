// Package model defines the core domain types for the academy events backend.
package model

// Department is reference data a student or event belongs to.
type Department struct {
	DepartmentID int32  `json:"department_id"`
	DeptName     string `json:"dept_name"`
}

// Sponsor is reference data optionally linked to an event.
type Sponsor struct {
	SponsorID int32  `json:"sponsor_id"`
	Name      string `json:"name"`
}

// Student is a registered profile keyed by the Supabase identity id.
type Student struct {
	StudentID    int32   `json:"student_id"`
	SupabaseID   string  `json:"supabase_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Year         int     `json:"year"`
	DepartmentID *int32  `json:"department_id"`
	DeptName     *string `json:"dept_name"`
}

// Event is a department event joined with its department and sponsor names.
type Event struct {
	EventID         int32     `json:"event_id"`
	EventName       string    `json:"event_name"`
	Description     string    `json:"description"`
	Date            Date      `json:"date"`
	Time            TimeOfDay `json:"time"`
	Venue           string    `json:"venue"`
	DepartmentID    int32     `json:"department_id"`
	SponsorID       *int32    `json:"sponsor_id"`
	MaxParticipants int       `json:"max_participants"`
	RegistrationFee float64   `json:"registration_fee"`
	EventType       string    `json:"event_type"`
	DepartmentName  string    `json:"department_name"`
	SponsorName     *string   `json:"sponsor_name"`
}

// Registration is a student's attendance record joined with its event details.
type Registration struct {
	RegistrationID   int32     `json:"registration_id"`
	EventID          int32     `json:"event_id"`
	StudentID        int32     `json:"student_id"`
	RegistrationDate Date      `json:"registration_date"`
	PaymentStatus    string    `json:"payment_status"`
	EventName        string    `json:"event_name"`
	Description      string    `json:"description"`
	Date             Date      `json:"date"`
	Time             TimeOfDay `json:"time"`
	Venue            string    `json:"venue"`
	EventType        string    `json:"event_type"`
	MaxParticipants  int       `json:"max_participants"`
	RegistrationFee  float64   `json:"registration_fee"`
}

// Organizer is an event organizer account. PasswordHash never serializes.
type Organizer struct {
	OrganizerID  int32  `json:"organizer_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	DepartmentID int32  `json:"department_id"`
	DeptName     string `json:"dept_name"`
}

// Dashboard bundles everything an organizer's landing page needs.
type Dashboard struct {
	Organizer *Organizer `json:"organizer"`
	Events    []Event    `json:"events"`
	Sponsors  []Sponsor  `json:"sponsors"`
}

// ProfileRequest is the payload for creating or updating a student profile.
type ProfileRequest struct {
	FirstName    string     `json:"first_name" validate:"required"`
	LastName     string     `json:"last_name" validate:"required"`
	Phone        string     `json:"phone"`
	Year         int        `json:"year"`
	DepartmentID OptionalID `json:"department_id"`
}

// EventRequest is the payload for creating or fully replacing an event.
// PUT is a full replace: every mutable field must be supplied.
type EventRequest struct {
	Name            string     `json:"name" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	Date            string     `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string     `json:"time" validate:"required"`
	Venue           string     `json:"venue" validate:"required"`
	DepartmentID    int32      `json:"department_id" validate:"required"`
	SponsorID       OptionalID `json:"sponsor_id"`
	MaxParticipants int        `json:"max_participants" validate:"required,gt=0"`
	Fee             float64    `json:"fee" validate:"gte=0"`
	Type            string     `json:"type" validate:"required"`
}

// RegisterEventRequest is the payload for registering attendance.
type RegisterEventRequest struct {
	EventID int32 `json:"event_id" validate:"required"`
}

// LoginRequest is the payload for organizer login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the organizer record and a signed session token.
type LoginResponse struct {
	Message   string     `json:"message"`
	Organizer *Organizer `json:"organizer"`
	Token     string     `json:"token"`
}

// MessageResponse is a standard JSON success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
