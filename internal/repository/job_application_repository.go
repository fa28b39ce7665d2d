package repository

import (
	"context"

	"career-guide/internal/database"
	"career-guide/internal/domain/application"
)

type PostgresJobApplicationRepository struct {
	db database.DB
}

func NewPostgresJobApplicationRepository(db database.DB) *PostgresJobApplicationRepository {
	return &PostgresJobApplicationRepository{db: db}
}

func (r *PostgresJobApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (
		   id, account_email, job_title, company, applicant_name, applicant_email,
		   phone, skills, experience, cover_letter, resume_file, status, applied_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.AccountEmail, a.JobTitle, a.Company, a.Name, a.Email,
		a.Phone, a.Skills, a.Experience, a.CoverLetter, a.ResumeFile, a.Status, a.AppliedAt,
	)
	return err
}

func (r *PostgresJobApplicationRepository) ListByAccount(ctx context.Context, email string) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_email, job_title, company, applicant_name, applicant_email,
		        phone, skills, experience, cover_letter, resume_file, status, applied_at
		 FROM job_applications
		 WHERE account_email = $1
		 ORDER BY applied_at DESC, id DESC`,
		email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(
			&a.ID, &a.AccountEmail, &a.JobTitle, &a.Company, &a.Name, &a.Email,
			&a.Phone, &a.Skills, &a.Experience, &a.CoverLetter, &a.ResumeFile, &a.Status, &a.AppliedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
