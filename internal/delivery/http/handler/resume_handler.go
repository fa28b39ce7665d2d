package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router, account fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/resume", account, h.Analyze)
	r.Get("/resume", account, h.Latest)
}

// Analyze only looks at the upload's name and size; the content is never read.
func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}

	var (
		name string
		size int64
	)
	if fh, err := c.FormFile("file"); err == nil {
		name, size = fh.Filename, fh.Size
	}

	report, err := h.uc.Analyze(c.Context(), email, name, size)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume analyzed", dto.NewResumeReportResponse(report))
}

func (h *ResumeHandler) Latest(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}
	res, err := h.uc.Latest(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResultResponse(res))
}
