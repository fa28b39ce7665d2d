package profile

import (
	"errors"
	"strings"
	"time"
)

const MaxPictureBytes = 2 * 1024 * 1024

var (
	ErrPictureNotImage = errors.New("profile picture must be an image")
	ErrPictureTooLarge = errors.New("profile picture exceeds 2MB")
)

type Picture struct {
	FileName    string
	ContentType string
	Data        []byte
	UpdatedAt   time.Time
}

func ValidatePicture(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return ErrPictureNotImage
	}
	if size > MaxPictureBytes {
		return ErrPictureTooLarge
	}
	return nil
}
