package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/northstar-app/northstar-backend/internal/config"
	"github.com/northstar-app/northstar-backend/internal/handlers"
	"github.com/northstar-app/northstar-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	goalHandler *handlers.GoalHandler,
	habitHandler *handlers.HabitHandler,
	dailyLogHandler *handlers.DailyLogHandler,
	todoHandler *handlers.TodoHandler,
	noteHandler *handlers.NoteHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes get the JWT middleware individually so it
	// never shadows the public ones above.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// All tracker resources require an authenticated caller.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/monthly-goals/:month", goalHandler.Get)
	protected.Post("/monthly-goals", goalHandler.Upsert)

	protected.Get("/habits", habitHandler.List)
	protected.Post("/habits", habitHandler.Create)
	protected.Delete("/habits/:id", habitHandler.Deactivate)

	protected.Get("/habit-completions", habitHandler.ListCompletions)
	protected.Post("/habit-completions/toggle", habitHandler.ToggleCompletion)

	protected.Get("/daily-logs/:date", dailyLogHandler.Get)
	protected.Post("/daily-logs", dailyLogHandler.Upsert)

	protected.Get("/todos", todoHandler.List)
	protected.Get("/todos/:date", todoHandler.ListByDate)
	protected.Post("/todos", todoHandler.Create)
	protected.Patch("/todos/:id", todoHandler.Update)
	protected.Delete("/todos/:id", todoHandler.Delete)

	protected.Get("/notes", noteHandler.List)
	protected.Post("/notes", noteHandler.Create)
	protected.Patch("/notes/:id", noteHandler.Update)
	protected.Delete("/notes/:id", noteHandler.Delete)
}
