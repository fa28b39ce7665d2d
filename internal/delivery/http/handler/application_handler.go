package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, account fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/applications", account, h.Submit)
	r.Get("/applications", account, h.List)
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}

	var req dto.SubmitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.uc.Submit(c.Context(), email, usecase.SubmitApplicationInput{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Skills:      req.Skills,
		Experience:  req.Experience,
		CoverLetter: req.CoverLetter,
		ResumeFile:  req.ResumeFile,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}
	apps, err := h.uc.List(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
