package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Init builds the router with the middleware pipeline applied to every
// route. The order is an observable contract: the failure boundary wraps
// everything, the request-id logger is attached before auth so rejections
// carry a request id, and the auth gate short-circuits before the
// request/response log lines are ever written.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.recoverPanic)
	router.Use(h.withRequestLogger)
	router.Use(h.auth)
	router.Use(h.withLogging)

	router.Get("/", h.probe)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	if h.docsEnabled {
		router.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		))
	}

	return router
}
