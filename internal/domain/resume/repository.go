package resume

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume analysis not found")

type Repository interface {
	Get(ctx context.Context, email string) (Result, error)
	Upsert(ctx context.Context, email string, r Result) error
}
