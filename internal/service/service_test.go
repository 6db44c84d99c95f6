package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academy-events/backend/internal/auth"
	"github.com/academy-events/backend/internal/identity"
	"github.com/academy-events/backend/internal/model"
	"github.com/academy-events/backend/internal/repository"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type fakeStudents struct {
	student *model.Student
	upserts []model.ProfileRequest
}

func (f *fakeStudents) Upsert(_ context.Context, _, _ string, req model.ProfileRequest) error {
	f.upserts = append(f.upserts, req)
	return nil
}

func (f *fakeStudents) GetBySupabaseID(_ context.Context, _ string) (*model.Student, error) {
	if f.student == nil {
		return nil, repository.ErrNotFound
	}
	return f.student, nil
}

type fakeEvents struct {
	events  []model.Event
	created []repository.EventParams
	updated map[int32]repository.EventParams
	calls   int
}

func (f *fakeEvents) List(context.Context) ([]model.Event, error) {
	f.calls++
	return f.events, nil
}

func (f *fakeEvents) Search(_ context.Context, term string) ([]model.Event, error) {
	f.calls++
	if term == "" {
		return f.events, nil
	}
	return nil, nil
}

func (f *fakeEvents) ListByDepartment(context.Context, int32) ([]model.Event, error) {
	f.calls++
	return f.events, nil
}

func (f *fakeEvents) Create(_ context.Context, p repository.EventParams) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeEvents) Update(_ context.Context, id int32, p repository.EventParams) error {
	if f.updated == nil {
		f.updated = map[int32]repository.EventParams{}
	}
	f.updated[id] = p
	return nil
}

type fakeRegistrations struct {
	createErr error
	created   [][2]int32
	deleted   [][2]int32
}

func (f *fakeRegistrations) Create(_ context.Context, eventID, studentID int32) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, [2]int32{eventID, studentID})
	return nil
}

func (f *fakeRegistrations) ListByStudent(context.Context, int32) ([]model.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrations) Delete(_ context.Context, registrationID, studentID int32) error {
	f.deleted = append(f.deleted, [2]int32{registrationID, studentID})
	return nil
}

type fakeOrganizers struct {
	organizer *model.Organizer
}

func (f *fakeOrganizers) GetByEmail(_ context.Context, email string) (*model.Organizer, error) {
	if f.organizer == nil || f.organizer.Email != email {
		return nil, repository.ErrNotFound
	}
	return f.organizer, nil
}

func (f *fakeOrganizers) GetByID(_ context.Context, id int32) (*model.Organizer, error) {
	if f.organizer == nil || f.organizer.OrganizerID != id {
		return nil, repository.ErrNotFound
	}
	return f.organizer, nil
}

type fakeSponsors struct {
	sponsors []model.Sponsor
	calls    int
}

func (f *fakeSponsors) ListSponsors(context.Context) ([]model.Sponsor, error) {
	f.calls++
	return f.sponsors, nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(int32, int32) (string, error) { return "session-token", nil }

// ─── Student ──────────────────────────────────────────────────────────────────

func TestSaveProfile(t *testing.T) {
	user := &identity.User{ID: "5f4d9c0a-0b7e-4d81-9c63-0a7e53f1f001", Email: "stu@example.edu"}
	valid := model.ProfileRequest{FirstName: "Asha", LastName: "Rao", Phone: "555-0100", Year: 2}

	t.Run("valid request upserts", func(t *testing.T) {
		students := &fakeStudents{}
		svc := NewStudentService(students)
		require.NoError(t, svc.SaveProfile(context.Background(), user, valid))
		require.Len(t, students.upserts, 1)
		assert.Equal(t, "Asha", students.upserts[0].FirstName)
	})

	t.Run("non-uuid identity rejected", func(t *testing.T) {
		svc := NewStudentService(&fakeStudents{})
		err := svc.SaveProfile(context.Background(), &identity.User{ID: "nope"}, valid)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		svc := NewStudentService(&fakeStudents{})
		err := svc.SaveProfile(context.Background(), user, model.ProfileRequest{LastName: "Rao"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// ─── Events ───────────────────────────────────────────────────────────────────

func validEventRequest() model.EventRequest {
	return model.EventRequest{
		Name:            "Tech Symposium",
		Description:     "Annual department showcase",
		Date:            "2026-03-14",
		Time:            "14:30:00",
		Venue:           "Main Hall",
		DepartmentID:    2,
		MaxParticipants: 120,
		Fee:             49.99,
		Type:            "Technical",
	}
}

func TestCreateEvent(t *testing.T) {
	t.Run("valid request inserts typed params", func(t *testing.T) {
		events := &fakeEvents{}
		svc := NewEventService(events)
		require.NoError(t, svc.CreateEvent(context.Background(), validEventRequest()))

		require.Len(t, events.created, 1)
		p := events.created[0]
		assert.Equal(t, "Tech Symposium", p.Name)
		assert.True(t, p.Date.Valid)
		assert.True(t, p.Time.Valid)
		assert.Equal(t, int64((14*3600+30*60)*1_000_000), p.Time.Microseconds)
		assert.Nil(t, p.SponsorID)
		assert.Equal(t, 49.99, p.Fee)
	})

	t.Run("bad time rejected", func(t *testing.T) {
		svc := NewEventService(&fakeEvents{})
		req := validEventRequest()
		req.Time = "half past two"
		assert.ErrorIs(t, svc.CreateEvent(context.Background(), req), ErrInvalidInput)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		svc := NewEventService(&fakeEvents{})
		req := validEventRequest()
		req.Date = "14/03/2026"
		assert.ErrorIs(t, svc.CreateEvent(context.Background(), req), ErrInvalidInput)
	})

	t.Run("missing venue rejected", func(t *testing.T) {
		svc := NewEventService(&fakeEvents{})
		req := validEventRequest()
		req.Venue = ""
		assert.ErrorIs(t, svc.CreateEvent(context.Background(), req), ErrInvalidInput)
	})
}

func TestUpdateEventRejectsPartialBody(t *testing.T) {
	// Full-replace semantics: a body missing required fields must not reach
	// the repository and null its columns.
	events := &fakeEvents{}
	svc := NewEventService(events)

	req := validEventRequest()
	req.Description = ""
	assert.ErrorIs(t, svc.UpdateEvent(context.Background(), 9, req), ErrInvalidInput)
	assert.Empty(t, events.updated)

	require.NoError(t, svc.UpdateEvent(context.Background(), 9, validEventRequest()))
	assert.Contains(t, events.updated, int32(9))
}

// ─── Registrations ────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	supabaseID := "5f4d9c0a-0b7e-4d81-9c63-0a7e53f1f001"

	t.Run("resolves student and registers", func(t *testing.T) {
		regs := &fakeRegistrations{}
		svc := NewRegistrationService(regs, &fakeStudents{student: &model.Student{StudentID: 42}})
		require.NoError(t, svc.Register(context.Background(), supabaseID, model.RegisterEventRequest{EventID: 7}))
		require.Len(t, regs.created, 1)
		assert.Equal(t, [2]int32{7, 42}, regs.created[0])
	})

	t.Run("identity without student row", func(t *testing.T) {
		svc := NewRegistrationService(&fakeRegistrations{}, &fakeStudents{})
		err := svc.Register(context.Background(), supabaseID, model.RegisterEventRequest{EventID: 7})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate surfaces conflict", func(t *testing.T) {
		regs := &fakeRegistrations{createErr: repository.ErrAlreadyRegistered}
		svc := NewRegistrationService(regs, &fakeStudents{student: &model.Student{StudentID: 42}})
		err := svc.Register(context.Background(), supabaseID, model.RegisterEventRequest{EventID: 7})
		assert.ErrorIs(t, err, repository.ErrAlreadyRegistered)
	})

	t.Run("missing event id rejected", func(t *testing.T) {
		svc := NewRegistrationService(&fakeRegistrations{}, &fakeStudents{student: &model.Student{StudentID: 42}})
		err := svc.Register(context.Background(), supabaseID, model.RegisterEventRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancelScopesDeleteToCaller(t *testing.T) {
	regs := &fakeRegistrations{}
	svc := NewRegistrationService(regs, &fakeStudents{student: &model.Student{StudentID: 42}})

	require.NoError(t, svc.Cancel(context.Background(), "any", 99))
	require.Len(t, regs.deleted, 1)
	assert.Equal(t, [2]int32{99, 42}, regs.deleted[0])
}

// ─── Organizer ────────────────────────────────────────────────────────────────

func testOrganizer(t *testing.T, password string) *model.Organizer {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &model.Organizer{
		OrganizerID:  7,
		Email:        "org@example.edu",
		PasswordHash: hash,
		DepartmentID: 3,
		DeptName:     "CSE",
	}
}

func TestLogin(t *testing.T) {
	organizer := testOrganizer(t, "s3cret")
	svc := NewOrganizerService(&fakeOrganizers{organizer: organizer}, &fakeEvents{}, &fakeSponsors{}, stubIssuer{})

	t.Run("success returns organizer and token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "org@example.edu", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "session-token", resp.Token)
		assert.Equal(t, int32(7), resp.Organizer.OrganizerID)
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "org@example.edu"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "org@example.edu", Password: "guess"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.edu", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("unknown organizer stops before further queries", func(t *testing.T) {
		events := &fakeEvents{}
		sponsors := &fakeSponsors{}
		svc := NewOrganizerService(&fakeOrganizers{}, events, sponsors, stubIssuer{})

		_, err := svc.Dashboard(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Zero(t, events.calls)
		assert.Zero(t, sponsors.calls)
	})

	t.Run("empty department still returns arrays", func(t *testing.T) {
		organizer := testOrganizer(t, "s3cret")
		svc := NewOrganizerService(&fakeOrganizers{organizer: organizer}, &fakeEvents{}, &fakeSponsors{}, stubIssuer{})

		dash, err := svc.Dashboard(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, dash.Events)
		assert.NotNil(t, dash.Sponsors)
		assert.Equal(t, organizer, dash.Organizer)
	})
}
