package usecase

import (
	"context"
	"testing"

	"career-guide/internal/domain/profile"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetMissingIsEmpty(t *testing.T) {
	uc := NewProfileUsecase(newMemAccounts("a@b.c"), newMemProfiles(), zerolog.Nop())

	p, err := uc.GetProfile(context.Background(), "A@B.C")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())

	_, err = uc.GetProfile(context.Background(), "nobody@b.c")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestProfile_SaveOverwritesAndRenames(t *testing.T) {
	accounts := newMemAccounts("a@b.c")
	profiles := newMemProfiles()
	uc := NewProfileUsecase(accounts, profiles, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.SaveProfile(ctx, "a@b.c", SaveProfileInput{Name: "Ravi", Skills: "python", Interests: "data"})
	require.NoError(t, err)

	p, err := uc.SaveProfile(ctx, "a@b.c", SaveProfileInput{Education: "bachelor’s", Age: "24"})
	require.NoError(t, err)
	assert.Equal(t, profile.EducationBachelors, p.Education)
	assert.Empty(t, p.Skills, "save replaces the whole profile")
	assert.Equal(t, profile.DefaultLanguage, p.Language)
	assert.Equal(t, p, profiles.profiles["a@b.c"])
	assert.Equal(t, "Ravi", accounts.byID["a@b.c"].Name)
}

func TestProfile_SaveKeepsProfileWhenRenameFails(t *testing.T) {
	accounts := newMemAccounts("a@b.c")
	accounts.nameErr = errBoom
	profiles := newMemProfiles()
	uc := NewProfileUsecase(accounts, profiles, zerolog.Nop())

	p, err := uc.SaveProfile(context.Background(), "a@b.c", SaveProfileInput{Name: "Ravi", Skills: "python"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", p.Name)
	assert.Equal(t, p, profiles.profiles["a@b.c"])
	assert.Empty(t, accounts.byID["a@b.c"].Name)
}

func TestProfile_SaveValidation(t *testing.T) {
	uc := NewProfileUsecase(newMemAccounts("a@b.c"), newMemProfiles(), zerolog.Nop())
	ctx := context.Background()

	_, err := uc.SaveProfile(ctx, "a@b.c", SaveProfileInput{Language: "Hindi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.SaveProfile(ctx, "a@b.c", SaveProfileInput{Education: "PhD"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, profile.ErrUnknownEducation)
}

func TestProfile_Picture(t *testing.T) {
	uc := NewProfileUsecase(newMemAccounts("a@b.c"), newMemProfiles(), zerolog.Nop())
	ctx := context.Background()

	_, err := uc.GetProfilePicture(ctx, "a@b.c")
	assert.ErrorIs(t, err, ErrPictureNotFound)

	_, err = uc.SaveProfilePicture(ctx, "a@b.c", "cv.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, profile.ErrPictureNotImage)

	big := make([]byte, profile.MaxPictureBytes+1)
	_, err = uc.SaveProfilePicture(ctx, "a@b.c", "me.png", "image/png", big)
	assert.ErrorIs(t, err, profile.ErrPictureTooLarge)

	_, err = uc.SaveProfilePicture(ctx, "a@b.c", "me.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	pic, err := uc.GetProfilePicture(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, pic.Data)
	assert.Equal(t, "image/png", pic.ContentType)
}
