package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-guide/internal/domain/account"
)

// requireAccount normalises email and checks the account exists.
func requireAccount(ctx context.Context, accounts account.Repository, email string) (string, error) {
	email = account.NormalizeEmail(email)
	if email == "" {
		return "", ErrInvalidInput
	}
	if _, err := accounts.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return email, nil
}
