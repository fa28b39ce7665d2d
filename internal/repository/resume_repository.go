package repository

import (
	"context"

	"career-guide/internal/database"
	"career-guide/internal/domain/resume"
)

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Get(ctx context.Context, email string) (resume.Result, error) {
	row := r.db.QueryRow(ctx,
		`SELECT file_name, skills, analyzed_at FROM resume_analyses WHERE email = $1`,
		email,
	)

	var res resume.Result
	if err := row.Scan(&res.FileName, &res.Skills, &res.AnalyzedAt); err != nil {
		if isNoRows(err) {
			return resume.Result{}, resume.ErrNotFound
		}
		return resume.Result{}, err
	}
	return res, nil
}

func (r *PostgresResumeRepository) Upsert(ctx context.Context, email string, res resume.Result) error {
	skills := res.Skills
	if skills == nil {
		skills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_analyses (email, file_name, skills, analyzed_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET
		   file_name = EXCLUDED.file_name,
		   skills = EXCLUDED.skills,
		   analyzed_at = EXCLUDED.analyzed_at`,
		email, res.FileName, skills, res.AnalyzedAt,
	)
	return err
}
