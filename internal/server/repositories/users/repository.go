package users

import (
	"context"

	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

// Repository is the user slice of the credential store. Update persists the
// mutable fields (name, token); username is the immutable key.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
