package application

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	// ListByAccount returns newest first.
	ListByAccount(ctx context.Context, email string) ([]Application, error)
}
