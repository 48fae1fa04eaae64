package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
)

type TrendingHandler struct {
	trending *service.TrendingService
}

func NewTrendingHandler(trending *service.TrendingService) *TrendingHandler {
	return &TrendingHandler{trending: trending}
}

type trendingRequest struct {
	Region string `json:"regiao"`
}

// Topics handles POST /api/trending. Upstream failures never surface as
// errors here; the service substitutes the fallback list and flags it.
func (h *TrendingHandler) Topics(c fiber.Ctx) error {
	var req trendingRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		}
	}

	region, errMsg := middleware.ValidateRegion(req.Region)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp := h.trending.Topics(c.Context(), region)
	return c.JSON(resp)
}
