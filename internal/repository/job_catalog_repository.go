package repository

import (
	"context"
	"errors"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"
)

var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

type JobCatalogRepository interface {
	List(ctx context.Context) ([]catalog.Entry, error)
	ListByCategory(ctx context.Context, c catalog.Category) ([]catalog.Entry, error)
	FindByTitle(ctx context.Context, title string) (catalog.Entry, error)
}

type PostgresJobCatalogRepository struct {
	db database.DB
}

func NewPostgresJobCatalogRepository(db database.DB) *PostgresJobCatalogRepository {
	return &PostgresJobCatalogRepository{db: db}
}

const catalogColumns = `title, salary, description, category, company`

// List returns entries in fixture order.
func (r *PostgresJobCatalogRepository) List(ctx context.Context) ([]catalog.Entry, error) {
	return r.query(ctx, `SELECT `+catalogColumns+` FROM job_catalog ORDER BY position ASC`)
}

func (r *PostgresJobCatalogRepository) ListByCategory(ctx context.Context, c catalog.Category) ([]catalog.Entry, error) {
	return r.query(ctx,
		`SELECT `+catalogColumns+` FROM job_catalog WHERE category = $1 ORDER BY position ASC`,
		string(c),
	)
}

func (r *PostgresJobCatalogRepository) FindByTitle(ctx context.Context, title string) (catalog.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+catalogColumns+` FROM job_catalog WHERE title = $1`, title)

	var (
		e   catalog.Entry
		cat string
	)
	if err := row.Scan(&e.Title, &e.Salary, &e.Description, &cat, &e.Company); err != nil {
		if isNoRows(err) {
			return catalog.Entry{}, ErrCatalogEntryNotFound
		}
		return catalog.Entry{}, err
	}
	e.Category = catalog.Category(cat)
	return e, nil
}

func (r *PostgresJobCatalogRepository) query(ctx context.Context, q string, args ...any) ([]catalog.Entry, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Entry, 0, 60)
	for rows.Next() {
		var (
			e   catalog.Entry
			cat string
		)
		if err := rows.Scan(&e.Title, &e.Salary, &e.Description, &cat, &e.Company); err != nil {
			return nil, err
		}
		e.Category = catalog.Category(cat)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
