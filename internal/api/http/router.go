package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	Directory      *handlers.DirectoryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	api := app.Group("/api")
	requireAuth := cfg.AuthMiddleware.Handle
	employer := auth.RequireRole(domain.RoleEmployer)
	candidate := auth.RequireRole(domain.RoleCandidate)

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", requireAuth, cfg.Auth.Logout)

	api.Get("/jobs", cfg.Jobs.List)
	api.Post("/jobs", requireAuth, employer, cfg.Jobs.Create)
	api.Get("/jobs/:id", cfg.Jobs.Get)
	api.Post("/jobs/:id/apply", requireAuth, candidate, cfg.Applications.Apply)
	api.Get("/jobs/:id/applications", requireAuth, employer, cfg.Applications.ListForJob)

	api.Get("/employers", cfg.Directory.Employers)
	api.Get("/candidates", cfg.Directory.Candidates)
	api.Get("/employer/:employerId/applicants", requireAuth, employer, cfg.Directory.Applicants)
}
