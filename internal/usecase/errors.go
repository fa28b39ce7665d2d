package usecase

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrProfileIncomplete      = errors.New("complete your profile first")
	ErrPictureNotFound        = errors.New("profile picture not found")
	ErrResumeNotFound         = errors.New("no resume analysis yet")
	ErrJobNotFound            = errors.New("job not found")
)
