package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/application"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SubmitApplicationInput struct {
	JobTitle    string
	Company     string
	Name        string
	Email       string
	Phone       string
	Skills      string
	Experience  string
	CoverLetter string
	ResumeFile  string
}

// ApplicationNotifier pushes a submitted application to the account's live sessions.
type ApplicationNotifier interface {
	NotifyApplication(email string, a application.Application)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, email string, in SubmitApplicationInput) (application.Application, error)
	List(ctx context.Context, email string) ([]application.Application, error)
}

type Application struct {
	accounts account.Repository
	apps     application.Repository
	notifier ApplicationNotifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewApplicationUsecase(accounts account.Repository, apps application.Repository, notifier ApplicationNotifier, log zerolog.Logger) *Application {
	return &Application{accounts: accounts, apps: apps, notifier: notifier, log: log, now: time.Now}
}

func (u *Application) Submit(ctx context.Context, email string, in SubmitApplicationInput) (application.Application, error) {
	email, err := requireAccount(ctx, u.accounts, email)
	if err != nil {
		return application.Application{}, err
	}

	a := application.Application{
		ID:           uuid.New(),
		AccountEmail: email,
		JobTitle:     strings.TrimSpace(in.JobTitle),
		Company:      strings.TrimSpace(in.Company),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Skills:       strings.TrimSpace(in.Skills),
		Experience:   strings.TrimSpace(in.Experience),
		CoverLetter:  strings.TrimSpace(in.CoverLetter),
		ResumeFile:   strings.TrimSpace(in.ResumeFile),
		Status:       application.StatusSubmitted,
		AppliedAt:    u.now().UTC(),
	}
	if a.JobTitle == "" || a.Company == "" || a.Name == "" || !strings.Contains(a.Email, "@") {
		return application.Application{}, ErrInvalidInput
	}
	if a.ResumeFile == "" {
		a.ResumeFile = application.NoResumeFile
	}

	if err := u.apps.Create(ctx, a); err != nil {
		return application.Application{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u.log.Info().
		Str("account", email).
		Str("job_title", a.JobTitle).
		Str("application_id", a.ID.String()).
		Msg("application submitted")
	if u.notifier != nil {
		u.notifier.NotifyApplication(email, a)
	}
	return a, nil
}

// List returns the account's applications, newest first.
func (u *Application) List(ctx context.Context, email string) ([]application.Application, error) {
	email, err := requireAccount(ctx, u.accounts, email)
	if err != nil {
		return nil, err
	}
	out, err := u.apps.ListByAccount(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return out, nil
}
