package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

// Repository is the contact slice of the credential store. Update persists
// every mutable field of the record; partial-update merging happens in the
// service layer before the row is written.
type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}
