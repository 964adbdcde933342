// Package repomanager vends repository implementations and owns schema
// migrations, so services depend on one seam instead of per-entity
// constructors.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/aspira-project/aspira-backend/internal/dbx"
	"github.com/aspira-project/aspira-backend/internal/server/repositories/tokens"
	"github.com/aspira-project/aspira-backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tokens(db dbx.DBTX) tokens.Repository
}
