package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AccountHandler struct {
	uc usecase.AccountUsecase
}

func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

func (h *AccountHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.SignUp)
	r.Post("/signin", h.SignIn)
}

func (h *AccountHandler) SignUp(c fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.uc.SignUp(c.Context(), usecase.SignUpInput{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewAccountResponse(a))
}

func (h *AccountHandler) SignIn(c fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.uc.SignIn(c.Context(), usecase.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAccountResponse(a))
}
