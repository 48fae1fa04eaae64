package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/repository"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/pkg/hash"
)

// SearchHandler exposes saved-search CRUD. The owning user arrives in the
// X-Owner-ID header and is salted-hashed before it touches storage; updates
// must carry the version they read.
type SearchHandler struct {
	repo      *repository.SearchRepo
	ownerSalt string
}

func NewSearchHandler(repo *repository.SearchRepo, ownerSalt string) *SearchHandler {
	return &SearchHandler{repo: repo, ownerSalt: ownerSalt}
}

// ownerKey derives the storage key for an owner. The database never holds
// raw client identifiers.
func (h *SearchHandler) ownerKey(ownerID string) string {
	return hash.HashOwnerID(ownerID, h.ownerSalt)
}

type savedSearchRequest struct {
	Name    string             `json:"nome"`
	Params  model.SearchParams `json:"parametros"`
	Version int64              `json:"versao,omitempty"`
}

// List handles GET /api/searches
func (h *SearchHandler) List(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateOwnerID(c.Get("X-Owner-ID"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	searches, err := h.repo.List(c.Context(), h.ownerKey(ownerID))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list saved searches")
	}
	return c.JSON(searches)
}

// Get handles GET /api/searches/:searchId
func (h *SearchHandler) Get(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateOwnerID(c.Get("X-Owner-ID"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}
	id, errMsg := middleware.ValidateSearchID(c.Params("searchId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	s, err := h.repo.Get(c.Context(), id, h.ownerKey(ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Saved search not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch saved search")
	}
	return c.JSON(s)
}

// Create handles POST /api/searches
func (h *SearchHandler) Create(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateOwnerID(c.Get("X-Owner-ID"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	var req savedSearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > middleware.MaxSearchNameLen {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "nome deve ter entre 1 e 120 caracteres")
	}

	s, err := h.repo.Create(c.Context(), req.Name, req.Params, h.ownerKey(ownerID))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create saved search")
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// Update handles PUT /api/searches/:searchId
func (h *SearchHandler) Update(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateOwnerID(c.Get("X-Owner-ID"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}
	id, errMsg := middleware.ValidateSearchID(c.Params("searchId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req savedSearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > middleware.MaxSearchNameLen {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "nome deve ter entre 1 e 120 caracteres")
	}
	if req.Version <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "versao é obrigatória para atualização")
	}

	s, err := h.repo.Update(c.Context(), id, h.ownerKey(ownerID), req.Version, req.Name, req.Params)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionConflict):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "VERSION_CONFLICT",
				"A pesquisa foi modificada em outra sessão. Recarregue e tente novamente.")
		case errors.Is(err, pgx.ErrNoRows):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Saved search not found")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update saved search")
		}
	}
	return c.JSON(s)
}

// Delete handles DELETE /api/searches/:searchId
func (h *SearchHandler) Delete(c fiber.Ctx) error {
	ownerID, errMsg := middleware.ValidateOwnerID(c.Get("X-Owner-ID"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}
	id, errMsg := middleware.ValidateSearchID(c.Params("searchId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.repo.Delete(c.Context(), id, h.ownerKey(ownerID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Saved search not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete saved search")
	}
	return c.JSON(fiber.Map{"success": true})
}
