package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/handler"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analysis    *handler.AnalysisHandler
	Title       *handler.TitleHandler
	Competition *handler.CompetitionHandler
	Schedule    *handler.ScheduleHandler
	Search      *handler.SearchHandler
	Trending    *handler.TrendingHandler
	Export      *handler.ExportHandler
	Health      *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	extractLimit := middleware.NewExtractRateLimiter().Handler()
	competitionLimit := middleware.NewCompetitionRateLimiter().Handler()
	titleLimit := middleware.NewTitleRateLimiter().Handler()
	searchWriteLimit := middleware.NewSearchWriteRateLimiter().Handler()
	exportLimit := middleware.NewExportRateLimiter().Handler()

	// Analysis pipeline stages. Extract and the full run hit the YouTube
	// API, so they share the strictest limiter.
	api.Post("/analysis/extract", h.Analysis.Extract, extractLimit)
	api.Post("/analysis/metrics", h.Analysis.CalculateMetrics)
	api.Post("/analysis/validate", h.Analysis.Validate)
	api.Post("/analysis/prioritize", h.Analysis.Prioritize)
	api.Post("/analysis/run", h.Analysis.Run, extractLimit)
	api.Post("/analysis/micro-subnichos", h.Analysis.MicroSubnichos)

	// Title generation
	api.Post("/titles/generate", h.Title.Generate, titleLimit)
	api.Post("/titles/remodel", h.Title.Remodel, titleLimit)

	// Competition comparison
	api.Post("/competition/compare", h.Competition.Compare, competitionLimit)

	// Publication schedule
	api.Post("/schedule", h.Schedule.Build)

	// Saved searches
	api.Get("/searches", h.Search.List)
	api.Post("/searches", h.Search.Create, searchWriteLimit)
	api.Get("/searches/:searchId", h.Search.Get)
	api.Put("/searches/:searchId", h.Search.Update, searchWriteLimit)
	api.Delete("/searches/:searchId", h.Search.Delete, searchWriteLimit)

	// Trending topics
	api.Post("/trending", h.Trending.Topics)

	// CSV export
	api.Post("/export/csv", h.Export.ExportCSV, exportLimit)
}
