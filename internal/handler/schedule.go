package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Build handles POST /api/schedule
func (h *ScheduleHandler) Build(c fiber.Ctx) error {
	var req model.ScheduleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if len(req.Recommendations) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "informe ao menos um microsubnicho")
	}
	if req.Cycles <= 0 || req.Cycles > middleware.MaxCycles {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "ciclos deve estar entre 1 e 52")
	}

	entries, err := h.svc.Schedule(req.Recommendations, req.Cadence, req.Cycles, req.Language)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
	}

	return c.JSON(fiber.Map{"cronograma": entries})
}
