package seeder

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"
)

// JobCatalogSeeder loads the fixed catalog fixture. It does nothing once the
// table has rows, so a hand-edited catalog is never overwritten.
type JobCatalogSeeder struct {
	Entries []catalog.Entry
}

func (JobCatalogSeeder) Name() string { return "job_catalog" }

func (s JobCatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_catalog", "position", "title", "salary", "description", "category", "company"); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM job_catalog`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := s.Entries
	if entries == nil {
		entries = catalog.Fixture()
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, e := range entries {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_catalog (position, title, salary, description, category, company)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (title) DO NOTHING`,
			i+1,
			e.Title,
			e.Salary,
			e.Description,
			string(e.Category),
			e.Company,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", e.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
