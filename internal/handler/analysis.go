package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/youtube"
)

// AnalysisHandler exposes the pipeline stages as stateless endpoints plus a
// convenience full run. Each stage takes the previous stage's output in the
// request body, mirroring the UI-gated wizard chaining.
type AnalysisHandler struct {
	extract    *service.ExtractService
	metrics    *service.MetricsService
	validate   *service.ValidateService
	prioritize *service.PrioritizeService
}

func NewAnalysisHandler(extract *service.ExtractService, metrics *service.MetricsService, validate *service.ValidateService, prioritize *service.PrioritizeService) *AnalysisHandler {
	return &AnalysisHandler{
		extract:    extract,
		metrics:    metrics,
		validate:   validate,
		prioritize: prioritize,
	}
}

// Extract handles POST /api/analysis/extract
func (h *AnalysisHandler) Extract(c fiber.Ctx) error {
	var req model.ExtractRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	niche, errMsg := middleware.ValidateNiche(req.Niche)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}
	lang, errMsg := middleware.ValidateLanguage(req.Language)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	start := time.Now()
	result, err := h.extract.Extract(c.Context(), niche, lang, middleware.ClampChannelCount(req.MaxChannels))
	if err != nil {
		return youtubeErrorResponse(c, err)
	}
	observeStage("extract", start)

	Metrics.ExtractionsTotal.WithLabelValues(lang).Inc()
	return c.JSON(result)
}

// CalculateMetrics handles POST /api/analysis/metrics
func (h *AnalysisHandler) CalculateMetrics(c fiber.Ctx) error {
	var req model.MetricsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	start := time.Now()
	out := h.metrics.Calculate(req.Subnichos)
	observeStage("metrics", start)
	return c.JSON(out)
}

// Validate handles POST /api/analysis/validate
func (h *AnalysisHandler) Validate(c fiber.Ctx) error {
	var req model.ValidateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	start := time.Now()
	out := h.validate.Validate(req.Subnichos, req.Criteria)
	observeStage("validate", start)
	return c.JSON(out)
}

// Prioritize handles POST /api/analysis/prioritize
func (h *AnalysisHandler) Prioritize(c fiber.Ctx) error {
	var req model.PrioritizeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	start := time.Now()
	out := h.prioritize.Prioritize(req.Subnichos)
	observeStage("prioritize", start)
	return c.JSON(out)
}

// Run handles POST /api/analysis/run — the full chain in one call.
func (h *AnalysisHandler) Run(c fiber.Ctx) error {
	var req model.PipelineRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	niche, errMsg := middleware.ValidateNiche(req.Niche)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}
	lang, errMsg := middleware.ValidateLanguage(req.Language)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	start := time.Now()
	extracted, err := h.extract.Extract(c.Context(), niche, lang, middleware.ClampChannelCount(req.MaxChannels))
	if err != nil {
		return youtubeErrorResponse(c, err)
	}
	observeStage("extract", start)
	Metrics.ExtractionsTotal.WithLabelValues(lang).Inc()

	start = time.Now()
	calculated := h.metrics.Calculate(extracted.Subnichos)
	observeStage("metrics", start)

	start = time.Now()
	validated := h.validate.Validate(calculated, req.Criteria)
	observeStage("validate", start)

	start = time.Now()
	prioritized := h.prioritize.Prioritize(validated)
	observeStage("prioritize", start)

	return c.JSON(model.PipelineResponse{
		Prioritized: prioritized,
		Validated:   validated,
		Failures:    extracted.Failures,
	})
}

// MicroSubnichos handles POST /api/analysis/micro-subnichos
func (h *AnalysisHandler) MicroSubnichos(c fiber.Ctx) error {
	var req model.MicroSubnichoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if len(req.Channel.RecentTitles) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "canal precisa de títulos recentes")
	}
	return c.JSON(h.extract.MicroSubnichos(req.Channel, req.Language, req.Limit))
}

// observeStage records one pipeline stage execution. No-op until
// InitMetrics has run.
func observeStage(stage string, start time.Time) {
	if Metrics.PipelineDuration == nil {
		return
	}
	Metrics.PipelineDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// youtubeErrorResponse maps YouTube sentinel errors onto the API error
// taxonomy. Invalid-key and quota errors get distinct codes so the client
// can re-prompt for a new key.
func youtubeErrorResponse(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, youtube.ErrInvalidAPIKey):
		Metrics.YouTubeCallsTotal.WithLabelValues("invalid_key").Inc()
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_API_KEY", "Chave de API inválida. Informe uma nova chave.")
	case errors.Is(err, youtube.ErrQuotaExceeded):
		Metrics.YouTubeCallsTotal.WithLabelValues("quota").Inc()
		return middleware.ErrorResponse(c, fiber.StatusTooManyRequests, "QUOTA_EXCEEDED", "Cota da API do YouTube excedida. Tente mais tarde ou use outra chave.")
	default:
		Metrics.YouTubeCallsTotal.WithLabelValues("error").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "API_ERROR", "Falha ao consultar a API de vídeos")
	}
}
