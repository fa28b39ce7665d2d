package handler

import (
	"errors"

	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resume"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// validationReasons are domain errors whose text is safe to show the client.
var validationReasons = []error{
	profile.ErrUnknownEducation,
	profile.ErrPictureNotImage,
	resume.ErrNoFile,
	resume.ErrUnsupportedFormat,
	catalog.ErrUnknownCategory,
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, resume.ErrFileTooLarge), errors.Is(err, profile.ErrPictureTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, tooLargeMessage(err), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, badRequestMessage(err), nil, err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Account not found", nil, err)
	case errors.Is(err, usecase.ErrPictureNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile picture not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No resume analysis yet", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrProfileIncomplete):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Complete your profile first", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequestMessage(err error) string {
	for _, reason := range validationReasons {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return "Bad request"
}

func tooLargeMessage(err error) string {
	if errors.Is(err, resume.ErrFileTooLarge) {
		return resume.ErrFileTooLarge.Error()
	}
	return profile.ErrPictureTooLarge.Error()
}

func accountEmail(c fiber.Ctx) (string, error) {
	email, ok := middleware.AccountEmail(c)
	if !ok {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid account email", nil, nil)
	}
	return email, nil
}
