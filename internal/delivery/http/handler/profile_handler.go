package handler

import (
	"errors"
	"io"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/profile"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

var errNoPicture = errors.New("no picture uploaded")

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// RegisterRoutes expects r to be mounted under /accounts/:email.
func (h *ProfileHandler) RegisterRoutes(r fiber.Router, account fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/profile", account, h.GetProfile)
	r.Put("/profile", account, h.SaveProfile)
	r.Get("/profile/picture", account, h.GetPicture)
	r.Put("/profile/picture", account, h.SavePicture)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}
	p, err := h.uc.GetProfile(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) SaveProfile(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}

	var req dto.SaveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.uc.SaveProfile(c.Context(), email, usecase.SaveProfileInput{
		Name:      req.Name,
		Age:       req.Age,
		Education: req.Education,
		Skills:    req.Skills,
		Interests: req.Interests,
		Language:  req.Language,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile saved", dto.NewProfileResponse(p))
}

func (h *ProfileHandler) GetPicture(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}
	pic, err := h.uc.GetProfilePicture(c.Context(), email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPictureResponse(pic))
}

func (h *ProfileHandler) SavePicture(c fiber.Ctx) error {
	email, err := accountEmail(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, errNoPicture.Error(), nil, err)
	}
	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, errNoPicture.Error(), nil, err)
	}
	defer f.Close()

	// one byte past the limit is enough to reject oversized uploads
	data, err := io.ReadAll(io.LimitReader(f, profile.MaxPictureBytes+1))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid upload", nil, err)
	}

	pic, err := h.uc.SaveProfilePicture(c.Context(), email, fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile picture saved", dto.NewPictureResponse(pic))
}
