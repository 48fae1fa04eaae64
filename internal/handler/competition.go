package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
)

type CompetitionHandler struct {
	svc *service.CompetitionService
}

func NewCompetitionHandler(svc *service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{svc: svc}
}

// Compare handles POST /api/competition/compare
func (h *CompetitionHandler) Compare(c fiber.Ctx) error {
	var req model.CompetitionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	subnicho, errMsg := middleware.ValidateNiche(req.Subnicho)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "subnicho é obrigatório")
	}
	if len(req.Languages) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "informe ao menos um idioma")
	}
	if len(req.Languages) > middleware.MaxLanguages {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "máximo de 8 idiomas por comparação")
	}

	langs := make([]string, 0, len(req.Languages))
	for _, l := range req.Languages {
		lang, errMsg := middleware.ValidateSupportedLanguage(l)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		langs = append(langs, lang)
	}

	comparisons, recommendation, err := h.svc.Compare(c.Context(), subnicho, langs, req.MaxVideos)
	if err != nil {
		return youtubeErrorResponse(c, err)
	}

	return c.JSON(model.CompetitionResponse{
		Comparisons:    comparisons,
		Recommendation: recommendation,
	})
}
