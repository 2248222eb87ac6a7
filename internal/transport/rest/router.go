package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Board      *BoardHandler
	Ideas      *IdeaHandler
	Reviews    *ReviewHandler
	Changelog  *ChangelogHandler
	Activities *ActivityHandler
	Projects   *ProjectHandler
	Overview   *OverviewHandler
}

// NewRouter wires the routes. global wraps every route; writeLimit, when
// not nil, wraps the board mutations only.
func NewRouter(h Handlers, global middleware.Middleware, writeLimit middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(global)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	limited := func(fn http.HandlerFunc) http.Handler {
		return middleware.Chain(writeLimit)(fn)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/board", func(r chi.Router) {
			r.Get("/", h.Board.Snapshot)
			r.Post("/load", h.Board.Load)
			r.Put("/search", h.Board.Search)
			r.Put("/filters", h.Board.SetFilters)
			r.Delete("/filters", h.Board.ClearFilters)
			r.Method(http.MethodPost, "/ideas", limited(h.Board.CreateIdea))
			r.Method(http.MethodPost, "/ideas/{id}/vote", limited(h.Board.Vote))
			r.Method(http.MethodPut, "/ideas/{id}/status", limited(h.Board.ChangeStatus))
		})

		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", h.Ideas.List)
			r.Post("/", h.Ideas.Create)
			r.Get("/{id}", h.Ideas.Get)
			r.Patch("/{id}", h.Ideas.Update)
			r.Delete("/{id}", h.Ideas.Delete)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.Reviews.List)
			r.Post("/", h.Reviews.Create)
			r.Get("/summary", h.Reviews.Summary)
			r.Get("/{id}", h.Reviews.Get)
			r.Patch("/{id}", h.Reviews.Update)
			r.Delete("/{id}", h.Reviews.Delete)
		})

		r.Route("/changelog", func(r chi.Router) {
			r.Get("/", h.Changelog.List)
			r.Post("/", h.Changelog.Publish)
			r.Get("/{id}", h.Changelog.Get)
			r.Patch("/{id}", h.Changelog.Update)
			r.Delete("/{id}", h.Changelog.Delete)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", h.Activities.List)
			r.Post("/", h.Activities.Create)
			r.Get("/{id}", h.Activities.Get)
			r.Patch("/{id}", h.Activities.Update)
			r.Delete("/{id}", h.Activities.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Projects.List)
			r.Post("/", h.Projects.Create)
			r.Get("/{id}", h.Projects.Get)
			r.Patch("/{id}", h.Projects.Update)
			r.Delete("/{id}", h.Projects.Delete)
		})

		r.Get("/roadmap", h.Overview.Roadmap)
		r.Put("/roadmap/{id}", h.Overview.Move)
		r.Get("/dashboard", h.Overview.Dashboard)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}
