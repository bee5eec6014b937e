package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/contactvault/internal/common"
	"github.com/dmitrijs2005/contactvault/internal/logging"
	"github.com/dmitrijs2005/contactvault/internal/server/models"
	"github.com/dmitrijs2005/contactvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactvault/internal/server/validation"
)

// ContactService provides contact operations scoped to the authenticated
// owner: create, get, and partial update. Get and Update share one ownership
// rule: any non-owner is fully denied, the owner has full read/write.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ContactService {
	return &ContactService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "contact_service"),
	}
}

// Create validates the request and persists a contact owned by username.
func (s *ContactService) Create(ctx context.Context, username string, req *validation.CreateContactRequest) (*models.Contact, error) {

	if err := validation.ValidateCreateContact(req); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Creating contact", "username", username)

	repo := s.repomanager.Contacts(s.db)

	contact, err := repo.Create(ctx, &models.Contact{
		OwnerUsername: username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         req.Email,
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return contact, nil
}

// Get fetches a contact by id and enforces ownership: an absent id yields
// ErrorNotFound, a foreign owner yields ErrorForbidden. Existence is checked
// before ownership, so a non-owner probing a missing id still sees NotFound.
func (s *ContactService) Get(ctx context.Context, username string, id string) (*models.Contact, error) {

	repo := s.repomanager.Contacts(s.db)

	contact, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if contact.OwnerUsername != username {
		return nil, common.ErrorForbidden
	}

	return contact, nil
}

// Update validates the request, runs the same ownership check as Get, then
// merges the supplied fields into the stored record. Absent fields are left
// unchanged.
func (s *ContactService) Update(ctx context.Context, username string, id string, req *validation.UpdateContactRequest) (*models.Contact, error) {

	if err := validation.ValidateUpdateContact(req); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Updating contact", "username", username, "id", id)

	contact, err := s.Get(ctx, username, id)
	if err != nil {
		return nil, err
	}

	applyContactUpdate(contact, req)

	repo := s.repomanager.Contacts(s.db)

	updated, err := repo.Update(ctx, contact)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return updated, nil
}

func applyContactUpdate(c *models.Contact, req *validation.UpdateContactRequest) {
	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
}
