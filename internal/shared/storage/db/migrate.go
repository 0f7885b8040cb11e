package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// goose keeps dialect and filesystem in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded SQL migrations for dialect via goose.
// If database is nil, it's a no-op.
func RunMigrations(ctx context.Context, database *sql.DB, dialect Dialect) error {
	if database == nil {
		return nil
	}
	dir, err := migrationDir(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := useDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, dir)
}

// MigrationVersion reports the latest applied migration version.
func MigrationVersion(ctx context.Context, database *sql.DB, dialect Dialect) (int64, error) {
	if database == nil {
		return 0, fmt.Errorf("no database")
	}
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := useDialect(dialect); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, database)
}

func useDialect(dialect Dialect) error {
	goose.SetBaseFS(migrationFiles)
	return goose.SetDialect(string(dialect))
}

func migrationDir(dialect Dialect) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "migrations/postgres", nil
	case DialectSQLite:
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}
