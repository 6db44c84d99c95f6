package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter builds the full API route tree.
func NewRouter(h *Handler, log zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(AccessLog(log))          // structured access log
	r.Use(CORS)                    // permissive CORS; real policy sits at the edge

	r.Get("/health", HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Public reads
		r.Get("/departments", h.ListDepartments)
		r.Get("/sponsors", h.ListSponsors)
		r.Get("/events", h.ListEvents)
		r.Get("/events/search", h.SearchEvents)
		r.Get("/registrations/{student_id}", h.ListRegistrations)

		// Organizer login and dashboard
		r.Post("/organizer/login", h.Login)
		r.Get("/organizer/{organizer_id}", h.Dashboard)

		// Student routes behind Supabase identity verification
		r.Group(func(r chi.Router) {
			r.Use(h.RequireIdentity)
			r.Post("/student/register", h.SaveProfile)
			r.Get("/student/profile", h.GetProfile)
			r.Post("/register_event", h.RegisterEvent)
			r.Delete("/cancel_registration/{registration_id}", h.CancelRegistration)
		})

		// Organizer-mutating routes behind the session token
		r.Group(func(r chi.Router) {
			r.Use(h.RequireOrganizer)
			r.Post("/organizer/event", h.CreateEvent)
			r.Put("/events/{event_id}", h.UpdateEvent)
		})
	})

	return r
}
