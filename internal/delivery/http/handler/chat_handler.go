package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.Reply)
}

func (h *ChatHandler) Reply(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	out, err := h.uc.Reply(req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatResponse{Reply: out.Reply, Topic: out.Topic})
}
