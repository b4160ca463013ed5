package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/dbx"
	"github.com/dmitrijs2005/authgate/internal/server/repositories/users"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// ForDriver returns the manager for a SQL-backed driver and the database/sql
// driver name to open it with.
func ForDriver(driver string) (RepositoryManager, string, error) {
	switch driver {
	case DriverPostgres:
		return NewPostgresRepositoryManager(), "pgx", nil
	case DriverSQLite:
		return NewSQLiteRepositoryManager(), "sqlite", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
