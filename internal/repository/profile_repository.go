package repository

import (
	"context"

	"career-guide/internal/database"
	"career-guide/internal/domain/profile"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Get(ctx context.Context, email string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT name, age, education, skills, interests, language, updated_at
		 FROM profiles
		 WHERE email = $1`,
		email,
	)

	var (
		p   profile.Profile
		edu string
	)
	if err := row.Scan(&p.Name, &p.Age, &edu, &p.Skills, &p.Interests, &p.Language, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	// Stored values were validated on write; an unknown one reads as unset.
	p.Education, _ = profile.ParseEducation(edu)
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, email string, p profile.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (email, name, age, education, skills, interests, language, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name,
		   age = EXCLUDED.age,
		   education = EXCLUDED.education,
		   skills = EXCLUDED.skills,
		   interests = EXCLUDED.interests,
		   language = EXCLUDED.language,
		   updated_at = EXCLUDED.updated_at`,
		email, p.Name, p.Age, string(p.Education), p.Skills, p.Interests, p.Language, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) GetPicture(ctx context.Context, email string) (profile.Picture, error) {
	row := r.db.QueryRow(ctx,
		`SELECT file_name, content_type, data, updated_at FROM profile_pictures WHERE email = $1`,
		email,
	)

	var pic profile.Picture
	if err := row.Scan(&pic.FileName, &pic.ContentType, &pic.Data, &pic.UpdatedAt); err != nil {
		if isNoRows(err) {
			return profile.Picture{}, profile.ErrPictureNotFound
		}
		return profile.Picture{}, err
	}
	return pic, nil
}

func (r *PostgresProfileRepository) UpsertPicture(ctx context.Context, email string, pic profile.Picture) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profile_pictures (email, file_name, content_type, data, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE SET
		   file_name = EXCLUDED.file_name,
		   content_type = EXCLUDED.content_type,
		   data = EXCLUDED.data,
		   updated_at = EXCLUDED.updated_at`,
		email, pic.FileName, pic.ContentType, pic.Data, pic.UpdatedAt,
	)
	return err
}
