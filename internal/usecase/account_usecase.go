package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/profile"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type SignInInput struct {
	Email    string
	Password string
}

type AccountUsecase interface {
	SignUp(ctx context.Context, in SignUpInput) (account.Account, error)
	SignIn(ctx context.Context, in SignInInput) (account.Account, error)
}

type Account struct {
	accounts account.Repository
	profiles profile.Repository
	cost     int
	now      func() time.Time
}

func NewAccountUsecase(accounts account.Repository, profiles profile.Repository) *Account {
	return &Account{accounts: accounts, profiles: profiles, cost: bcrypt.DefaultCost, now: time.Now}
}

// SignUp creates the account and an empty profile for it.
func (u *Account) SignUp(ctx context.Context, in SignUpInput) (account.Account, error) {
	email := account.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || !strings.Contains(email, "@") || name == "" {
		return account.Account{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < minPasswordLength {
		return account.Account{}, ErrInvalidInput
	}

	if _, err := u.accounts.GetByEmail(ctx, email); err == nil {
		return account.Account{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, account.ErrNotFound) {
		return account.Account{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return account.Account{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := u.now().UTC()
	a := account.Account{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			return account.Account{}, ErrEmailAlreadyRegistered
		}
		return account.Account{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	empty := profile.Profile{Name: name, Language: profile.DefaultLanguage, UpdatedAt: now}
	if err := u.profiles.Upsert(ctx, email, empty); err != nil {
		return account.Account{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return sanitizeAccount(a), nil
}

func (u *Account) SignIn(ctx context.Context, in SignInInput) (account.Account, error) {
	email := account.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return account.Account{}, ErrInvalidInput
	}

	a, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}
	return sanitizeAccount(a), nil
}

func sanitizeAccount(a account.Account) account.Account {
	a.PasswordHash = ""
	return a
}
