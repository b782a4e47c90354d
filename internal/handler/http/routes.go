package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withCORS, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/admin/signin", h.adminSignIn)
		r.Get("/api/version", h.getServerVersion)
	})

	// user routes: the token subject must own the addressed user_id
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.checkHash)

		r.Post("/api/fuel-entries", h.createFuelEntry)
		r.Post("/api/fuel-entries/bulk", h.createFuelEntries)
		r.Post("/api/fuel-entries/bulk/delete", h.deleteFuelEntries)

		r.Group(func(r chi.Router) {
			r.Use(h.ownerOnly)

			r.Get("/api/fuel-entries/{user_id}", h.listFuelEntries)
			r.Get("/api/fuel-entries/{user_id}/stats", h.userStats)
			r.Get("/api/fuel-entries/{user_id}/{id}", h.getFuelEntry)
			r.Put("/api/fuel-entries/{user_id}/{id}", h.updateFuelEntry)
			r.Delete("/api/fuel-entries/{user_id}/{id}", h.deleteFuelEntry)
		})
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/admin/dashboard", h.dashboard)
		r.Get("/api/admin/users", h.listUsers)
		r.Delete("/api/admin/users/{user_id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
