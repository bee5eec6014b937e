package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactvault/internal/common"
	"github.com/dmitrijs2005/contactvault/internal/dbx"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, password_hash, name)
         VALUES ($1, $2, $3)
		 RETURNING username
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.PasswordHash, user.Name).Scan(&user.UserName)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, password_hash, name, token FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.UserName, &user.PasswordHash, &user.Name, &user.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	query :=
		`SELECT username, password_hash, name, token FROM users
		 WHERE token = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&user.UserName, &user.PasswordHash, &user.Name, &user.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM users
		 WHERE username = $1
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, username).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users SET name = $2, token = $3
		 WHERE username = $1
		 RETURNING username, password_hash, name, token
		 `

	updated := &models.User{}
	err := r.db.QueryRowContext(ctx, query, user.UserName, user.Name, user.Token).
		Scan(&updated.UserName, &updated.PasswordHash, &updated.Name, &updated.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}
