package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/profile"

	"github.com/rs/zerolog"
)

type SaveProfileInput struct {
	Name      string
	Age       string
	Education string
	Skills    string
	Interests string
	Language  string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, email string) (profile.Profile, error)
	SaveProfile(ctx context.Context, email string, in SaveProfileInput) (profile.Profile, error)
	GetProfilePicture(ctx context.Context, email string) (profile.Picture, error)
	SaveProfilePicture(ctx context.Context, email, fileName, contentType string, data []byte) (profile.Picture, error)
}

type Profile struct {
	accounts account.Repository
	profiles profile.Repository
	log      zerolog.Logger
	now      func() time.Time
}

func NewProfileUsecase(accounts account.Repository, profiles profile.Repository, log zerolog.Logger) *Profile {
	return &Profile{accounts: accounts, profiles: profiles, log: log, now: time.Now}
}

func (u *Profile) requireAccount(ctx context.Context, email string) (string, error) {
	return requireAccount(ctx, u.accounts, email)
}

// GetProfile returns an empty profile when none was saved yet.
func (u *Profile) GetProfile(ctx context.Context, email string) (profile.Profile, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return profile.Profile{}, err
	}
	p, err := u.profiles.Get(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, nil
		}
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return p, nil
}

// SaveProfile overwrites the whole profile. At least one field must be filled in.
// Copying the name onto the account is best effort once the profile is stored.
func (u *Profile) SaveProfile(ctx context.Context, email string, in SaveProfileInput) (profile.Profile, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return profile.Profile{}, err
	}

	edu, err := profile.ParseEducation(in.Education)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	lang := strings.TrimSpace(in.Language)
	if lang == "" {
		lang = profile.DefaultLanguage
	}

	p := profile.Profile{
		Name:      strings.TrimSpace(in.Name),
		Age:       strings.TrimSpace(in.Age),
		Education: edu,
		Skills:    strings.TrimSpace(in.Skills),
		Interests: strings.TrimSpace(in.Interests),
		Language:  lang,
		UpdatedAt: u.now().UTC(),
	}
	if !p.HasAnyField() {
		return profile.Profile{}, ErrInvalidInput
	}

	if err := u.profiles.Upsert(ctx, email, p); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if p.Name != "" {
		if err := u.accounts.UpdateName(ctx, email, p.Name); err != nil {
			u.log.Warn().Err(err).Str("email", email).Msg("account name not updated")
		}
	}
	return p, nil
}

func (u *Profile) GetProfilePicture(ctx context.Context, email string) (profile.Picture, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return profile.Picture{}, err
	}
	pic, err := u.profiles.GetPicture(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrPictureNotFound) {
			return profile.Picture{}, ErrPictureNotFound
		}
		return profile.Picture{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return pic, nil
}

func (u *Profile) SaveProfilePicture(ctx context.Context, email, fileName, contentType string, data []byte) (profile.Picture, error) {
	email, err := u.requireAccount(ctx, email)
	if err != nil {
		return profile.Picture{}, err
	}
	if err := profile.ValidatePicture(contentType, int64(len(data))); err != nil {
		return profile.Picture{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	pic := profile.Picture{
		FileName:    strings.TrimSpace(fileName),
		ContentType: strings.TrimSpace(contentType),
		Data:        data,
		UpdatedAt:   u.now().UTC(),
	}
	if err := u.profiles.UpsertPicture(ctx, email, pic); err != nil {
		return profile.Picture{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return pic, nil
}
