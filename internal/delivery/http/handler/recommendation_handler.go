package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(accounts fiber.Router, account fiber.Handler, jobs fiber.Router) {
	if accounts != nil {
		accounts.Get("/recommendations", account, h.Generate)
	}
	if jobs != nil {
		jobs.Get("/card", h.CatalogCard)
	}
}

func (h *RecommendationHandler) Generate(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}
	recs, err := h.uc.Generate(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationList(recs))
}

func (h *RecommendationHandler) CatalogCard(c fiber.Ctx) error {
	card, err := h.uc.CatalogCard(c.Context(), c.Query("title"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationResponse(card))
}
