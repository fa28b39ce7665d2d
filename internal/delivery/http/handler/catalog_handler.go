package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
	r.Get("/catalog", h.List)
}

func (h *CatalogHandler) Search(c fiber.Ctx) error {
	q := c.Query("q")
	entries, err := h.uc.Search(c.Context(), q)
	if err != nil {
		return mapUsecaseError(err)
	}

	results := dto.NewCatalogList(entries)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CatalogSearchResponse{
		Query:   q,
		Count:   len(results),
		Results: results,
	})
}

func (h *CatalogHandler) List(c fiber.Ctx) error {
	entries, err := h.uc.List(c.Context(), c.Query("category"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCatalogList(entries))
}
