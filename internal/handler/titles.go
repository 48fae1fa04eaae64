package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
)

type TitleHandler struct {
	svc *service.TitleService
}

func NewTitleHandler(svc *service.TitleService) *TitleHandler {
	return &TitleHandler{svc: svc}
}

// Generate handles POST /api/titles/generate
func (h *TitleHandler) Generate(c fiber.Ctx) error {
	var req model.TitleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Title == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "título original é obrigatório")
	}

	if req.Structured {
		return c.JSON(model.TitleResponse{
			Variations: h.svc.GenerateStructured(req.Title, req.Language, req.Emotion, req.Keywords, req.Count),
		})
	}
	return c.JSON(model.TitleResponse{
		Titles: h.svc.Generate(req.Title, req.Language, req.Emotion, req.Keywords, req.Count),
	})
}

// Remodel handles POST /api/titles/remodel — synonym substitution mode.
func (h *TitleHandler) Remodel(c fiber.Ctx) error {
	var req model.TitleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Title == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "título original é obrigatório")
	}

	return c.JSON(model.TitleResponse{
		Titles: h.svc.Remodel(req.Title, req.Language, req.Count),
	})
}
