package profile

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("profile not found")
	ErrPictureNotFound = errors.New("profile picture not found")
)

// Repository stores one profile and one picture per account email. Saves overwrite.
type Repository interface {
	Get(ctx context.Context, email string) (Profile, error)
	Upsert(ctx context.Context, email string, p Profile) error
	GetPicture(ctx context.Context, email string) (Picture, error)
	UpsertPicture(ctx context.Context, email string, pic Picture) error
}
