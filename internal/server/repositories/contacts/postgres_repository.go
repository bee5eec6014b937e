package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

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

// Create inserts the contact with a store-assigned id.
func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {

	contact.ID = uuid.NewString()

	query :=
		`INSERT INTO contacts (id, username, first_name, last_name, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.ID, contact.OwnerUsername, contact.FirstName, contact.LastName, contact.Phone, contact.Email).
		Scan(&contact.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	query :=
		`SELECT id, username, first_name, last_name, phone, email FROM contacts
		 WHERE id = $1
		 `

	contact := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&contact.ID, &contact.OwnerUsername, &contact.FirstName, &contact.LastName, &contact.Phone, &contact.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`UPDATE contacts SET first_name = $2, last_name = $3, phone = $4, email = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING id, username, first_name, last_name, phone, email
		 `

	updated := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query,
		contact.ID, contact.FirstName, contact.LastName, contact.Phone, contact.Email).
		Scan(&updated.ID, &updated.OwnerUsername, &updated.FirstName, &updated.LastName, &updated.Phone, &updated.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}
