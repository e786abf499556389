// Package repomanager vends repository implementations bound to a database
// handle and owns schema provisioning.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/lucaswang977/userauth/dbx"
	"github.com/lucaswang977/userauth/repositories/users"
)

// RepositoryManager hands out repositories over a DBTX, so the same
// constructor works for plain connections and transactions.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
