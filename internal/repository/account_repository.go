package repository

import (
	"context"

	"career-guide/internal/database"
	"career-guide/internal/domain/account"
)

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (email, name, password_hash) VALUES ($1, $2, $3)`,
		a.Email, a.Name, a.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT email, name, password_hash, created_at, updated_at FROM accounts WHERE email = $1`,
		email,
	)

	var a account.Account
	if err := row.Scan(&a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isNoRows(err) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) UpdateName(ctx context.Context, email, name string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE accounts SET name = $2, updated_at = now() WHERE email = $1`,
		email, name,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}
