package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactvault/internal/dbx"
	"github.com/dmitrijs2005/contactvault/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactvault/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DB handle (either the
// pool or a transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
