package seeder

import (
	"context"

	"career-guide/internal/database"
)

// Seeder must be safe to run on every start.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
