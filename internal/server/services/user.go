// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login/logout, token resolution,
// and profile updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactvault/internal/common"
	"github.com/dmitrijs2005/contactvault/internal/dbx"
	"github.com/dmitrijs2005/contactvault/internal/logging"
	"github.com/dmitrijs2005/contactvault/internal/server/auth"
	"github.com/dmitrijs2005/contactvault/internal/server/config"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
	"github.com/dmitrijs2005/contactvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactvault/internal/server/validation"
)

// UserService provides account operations:
//   - Register: create users with a hashed password
//   - Login: verify credentials and persist a fresh session token
//   - ResolveToken: map a presented token to its user
//   - Logout / UpdateProfile: mutate the resolved identity
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	logger      logging.Logger

	// issueToken is a test seam; production uses auth.IssueToken.
	issueToken func() (string, error)
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      auth.NewPasswordHasher(cfg.BcryptCost),
		logger:      l.With("module", "user_service"),
		issueToken:  auth.IssueToken,
	}
}

// Register validates the request, rejects duplicate usernames, and stores the
// new user with a hashed password. The uniqueness check and the insert run in
// one transaction.
func (s *UserService) Register(ctx context.Context, req *validation.RegisterRequest) (*models.User, error) {

	if err := validation.ValidateRegister(req); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registering user", "username", req.Username)

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		count, err := repo.CountByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("error counting users: %w", err)
		}
		if count > 0 {
			return common.ErrorConflict
		}

		user, err = repo.Create(ctx, &models.User{
			UserName:     req.Username,
			PasswordHash: hash,
			Name:         req.Name,
		})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and, on success, issues a fresh opaque token
// and persists it on the user record. A concurrent login for the same user
// simply overwrites the token: most recent login wins.
func (s *UserService) Login(ctx context.Context, req *validation.LoginRequest) (*models.User, error) {

	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Logging in user", "username", req.Username)

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.issueToken()
	if err != nil {
		return nil, common.ErrorInternal
	}

	user.Token = sql.NullString{String: token, Valid: true}
	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return updated, nil
}

// ResolveToken maps an inbound raw token to its user. The token is looked up
// verbatim (exact match, no hashing). A missing or unknown token yields
// ErrorUnauthenticated; the lookup has no side effects.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {

	if token == "" {
		return nil, common.ErrorUnauthenticated
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Logout clears the stored token for the resolved identity.
func (s *UserService) Logout(ctx context.Context, user *models.User) (*models.User, error) {

	s.logger.Info(ctx, "Logging out user", "username", user.UserName)

	repo := s.repomanager.Users(s.db)

	user.Token = sql.NullString{}
	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return updated, nil
}

// UpdateProfile validates the request and persists the new display name for
// the resolved identity.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, req *validation.UpdateUserRequest) (*models.User, error) {

	if err := validation.ValidateUpdateUser(req); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Updating user", "username", user.UserName)

	repo := s.repomanager.Users(s.db)

	user.Name = req.Name
	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return updated, nil
}
