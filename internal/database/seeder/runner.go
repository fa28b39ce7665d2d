package seeder

import (
	"context"
	"fmt"
	"time"

	"career-guide/internal/database"
	"career-guide/internal/logger"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	log := logger.Component("seeder")
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info().Str("seeder", s.Name()).Dur("took", time.Since(start)).Msg("seed complete")
	}
	return nil
}
